package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nikhil/placement-hub/internal/llm"
	"github.com/nikhil/placement-hub/internal/types"
)

// fakeClient returns a canned response or error for every call.
type fakeClient struct {
	response string
	err      error
	calls    int
}

func (f *fakeClient) GenerateContent(_ context.Context, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeClient) GenerateJSON(_ context.Context, _, _ string, _ llm.ModelTier) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeClient) GetModel(llm.ModelTier) string { return "fake-model" }
func (f *fakeClient) Close() error                  { return nil }

func newTestService(client llm.Client) *Service {
	return NewService(nil, client, nil)
}

func TestComplete_ValidPayloadPassesThrough(t *testing.T) {
	svc := newTestService(&fakeClient{
		response: `{"recommended_job_ids": ["x"], "reasoning": "overlap"}`,
	})

	result := svc.complete(context.Background(), completionSpec{
		schema:   recommendationSchema,
		fallback: json.RawMessage(`{}`),
	})

	assert.False(t, result.Degraded)
	assert.JSONEq(t, `{"recommended_job_ids": ["x"], "reasoning": "overlap"}`, string(result.Result))
}

func TestComplete_GatewayFailureUsesFallback(t *testing.T) {
	fallback := json.RawMessage(`{"recommended_job_ids": [], "reasoning": "local"}`)
	svc := newTestService(&fakeClient{err: llm.ErrRateLimited})

	result := svc.complete(context.Background(), completionSpec{
		schema:   recommendationSchema,
		fallback: fallback,
	})

	assert.True(t, result.Degraded)
	assert.True(t, errors.Is(result.Cause, llm.ErrRateLimited))
	assert.Equal(t, fallback, result.Result)
}

func TestComplete_SchemaViolationUsesFallback(t *testing.T) {
	fallback := json.RawMessage(`{"recommended_job_ids": [], "reasoning": "local"}`)
	svc := newTestService(&fakeClient{response: `{"reasoning": 42}`})

	result := svc.complete(context.Background(), completionSpec{
		schema:   recommendationSchema,
		fallback: fallback,
	})

	assert.True(t, result.Degraded)
	assert.Equal(t, fallback, result.Result)
}

func TestComplete_NonJSONUsesFallback(t *testing.T) {
	fallback := json.RawMessage(`{"recommended_job_ids": [], "reasoning": "local"}`)
	svc := newTestService(&fakeClient{response: "I recommend the first job."})

	result := svc.complete(context.Background(), completionSpec{
		schema:   recommendationSchema,
		fallback: fallback,
	})

	assert.True(t, result.Degraded)
}

func TestParseJobIDs_SkipsGarbage(t *testing.T) {
	want := uuid.New()
	ids := parseJobIDs([]string{want.String(), "not-a-uuid", " " + want.String() + " ", ""})
	require.Len(t, ids, 3)
	assert.Equal(t, want, ids[0])
}

func gpa(v float64) *float64 { return &v }

func testSnapshot(gpaVal *float64, skillNames ...string) *studentSnapshot {
	skills := make([]types.StudentSkill, 0, len(skillNames))
	for _, name := range skillNames {
		skills = append(skills, types.StudentSkill{ID: uuid.New(), Name: name})
	}
	return &studentSnapshot{
		Profile: &types.Profile{UserID: uuid.New(), GPA: gpaVal},
		Skills:  skills,
	}
}

func testJob(minGPA *float64, required ...string) types.JobOpportunity {
	return types.JobOpportunity{
		ID:             uuid.New(),
		MinGPA:         minGPA,
		RequiredSkills: required,
		CreatedAt:      time.Now(),
	}
}

func TestHeuristicRecommendations(t *testing.T) {
	snap := testSnapshot(gpa(3.5), "React", "Node.js")

	match := testJob(gpa(3.0), "react")
	noSkillReq := testJob(nil)
	gpaBlocked := testJob(gpa(3.8), "react")
	noOverlap := testJob(nil, "cobol")

	rec := heuristicRecommendations(snap, []types.JobOpportunity{match, noSkillReq, gpaBlocked, noOverlap})

	assert.True(t, rec.Degraded)
	assert.ElementsMatch(t, []uuid.UUID{match.ID, noSkillReq.ID}, rec.RecommendedJobIDs)
}

func TestHeuristicRecommendations_CapsAtFive(t *testing.T) {
	snap := testSnapshot(nil)

	jobs := make([]types.JobOpportunity, 8)
	for i := range jobs {
		jobs[i] = testJob(nil)
	}

	rec := heuristicRecommendations(snap, jobs)
	assert.Len(t, rec.RecommendedJobIDs, 5)

	// Jobs arrive recency-ordered; the first five win.
	for i, id := range rec.RecommendedJobIDs {
		assert.Equal(t, jobs[i].ID, id)
	}
}

func TestHeuristicRecommendations_MissingStudentGPABlocksGPAJobs(t *testing.T) {
	snap := testSnapshot(nil, "React")
	job := testJob(gpa(3.0), "react")

	rec := heuristicRecommendations(snap, []types.JobOpportunity{job})
	assert.Empty(t, rec.RecommendedJobIDs)
}

func TestBuildToolPrompts_TargetJobFoldedIn(t *testing.T) {
	snap := testSnapshot(gpa(3.2), "Go")
	job := testJob(nil, "go")
	job.Title = "Backend Intern"

	system, user, err := buildToolPrompts(ToolRequest{Action: ActionSkillGapAnalysis}, snap, &job)
	require.NoError(t, err)
	assert.NotEmpty(t, system)
	assert.Contains(t, user, "Backend Intern")
	assert.Contains(t, user, "missing_skills")
}

func TestBuildToolPrompts_NoResumeTextPlaceholder(t *testing.T) {
	snap := testSnapshot(nil)

	_, user, err := buildToolPrompts(ToolRequest{Action: ActionResumeEnhance}, snap, nil)
	require.NoError(t, err)
	assert.Contains(t, user, "No resume provided")
}

func TestToolFallback_AlwaysValidAgainstSchema(t *testing.T) {
	actions := []ToolAction{
		ActionResumeEnhance, ActionSkillGapAnalysis,
		ActionMockInterview, ActionCareerRoadmap, ToolAction("bogus"),
	}
	for _, action := range actions {
		var decoded map[string]any
		require.NoError(t, json.Unmarshal(toolFallback(action), &decoded), string(action))
		assert.NotEmpty(t, decoded, string(action))
	}
}

func TestRunTool_UnknownAction(t *testing.T) {
	svc := newTestService(&fakeClient{})

	_, err := svc.RunTool(context.Background(), uuid.New(), ToolRequest{Action: "transmogrify"})
	var unknownErr *UnknownActionError
	require.True(t, errors.As(err, &unknownErr))
	assert.Equal(t, ToolAction("transmogrify"), unknownErr.Action)
}
