package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/nikhil/placement-hub/internal/llm"
	"github.com/nikhil/placement-hub/internal/prompts"
	"github.com/nikhil/placement-hub/internal/types"
)

// Recommendation is the advisor's answer to "which openings suit this
// student". Degraded marks locally computed fallback output.
type Recommendation struct {
	RecommendedJobIDs []uuid.UUID `json:"recommended_job_ids"`
	Reasoning         string      `json:"reasoning"`
	Degraded          bool        `json:"degraded,omitempty"`
}

// recommendationPayload is the wire shape the model is asked to produce.
// IDs arrive as strings and are parsed defensively.
type recommendationPayload struct {
	RecommendedJobIDs []string `json:"recommended_job_ids"`
	Reasoning         string   `json:"reasoning"`
}

// recommendStudentData is the student summary sent to the model.
type recommendStudentData struct {
	GPA         *float64      `json:"gpa"`
	Department  string        `json:"department"`
	YearOfStudy *int          `json:"year_of_study"`
	Skills      []promptSkill `json:"skills"`
	TechStack   []string      `json:"tech_stack"`
}

type promptSkill struct {
	Name        string `json:"name"`
	Category    string `json:"category"`
	Proficiency string `json:"proficiency"`
}

// Recommend ranks the active openings for a student. The student snapshot
// and job list load concurrently; the LLM call degrades to a local
// GPA-and-skill heuristic on any failure, so the only hard errors here are
// database ones and a missing profile.
func (s *Service) Recommend(ctx context.Context, studentID uuid.UUID) (*Recommendation, error) {
	var (
		snap *studentSnapshot
		jobs []types.JobOpportunity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		loaded, err := s.loadStudent(gctx, studentID)
		if err != nil {
			return err
		}
		snap = loaded
		return nil
	})
	g.Go(func() error {
		active, err := s.db.ListActiveJobs(gctx)
		if err != nil {
			return err
		}
		jobs = active
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	fallback := heuristicRecommendations(snap, jobs)
	fallbackJSON, err := json.Marshal(fallback)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fallback recommendations: %w", err)
	}

	studentJSON, err := json.Marshal(buildRecommendStudentData(snap))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal student data: %w", err)
	}
	jobsJSON, err := json.Marshal(jobs)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal jobs: %w", err)
	}

	result := s.complete(ctx, completionSpec{
		systemPrompt: prompts.MustGet("advisor.json", "recommend-system"),
		userPrompt: prompts.Format(prompts.MustGet("advisor.json", "recommend-user"), map[string]string{
			"StudentData": string(studentJSON),
			"Jobs":        string(jobsJSON),
		}),
		tier:     llm.TierStandard,
		schema:   recommendationSchema,
		fallback: fallbackJSON,
	})

	var payload recommendationPayload
	if err := json.Unmarshal(result.Result, &payload); err != nil {
		// Fallback payloads are marshaled above, so this only fires on a
		// model payload that passed the schema yet still fails decoding.
		s.logger.Warn("failed to decode recommendation payload, using heuristic", "error", err)
		return degraded(fallback), nil
	}

	ids := parseJobIDs(payload.RecommendedJobIDs)
	rec := &Recommendation{
		RecommendedJobIDs: ids,
		Reasoning:         payload.Reasoning,
		Degraded:          result.Degraded,
	}
	return rec, nil
}

func degraded(rec *Recommendation) *Recommendation {
	rec.Degraded = true
	return rec
}

// parseJobIDs converts the model's string IDs, skipping anything that is not
// a UUID. Staleness filtering against the live job list happens at the call
// site that holds that list.
func parseJobIDs(raw []string) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(raw))
	for _, r := range raw {
		id, err := uuid.Parse(strings.TrimSpace(r))
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

func buildRecommendStudentData(snap *studentSnapshot) recommendStudentData {
	skills := make([]promptSkill, 0, len(snap.Skills))
	for _, s := range snap.Skills {
		skills = append(skills, promptSkill{
			Name:        s.Name,
			Category:    s.Category,
			Proficiency: s.ProficiencyLevel,
		})
	}

	techStack := make([]string, 0)
	for _, p := range snap.Projects {
		techStack = append(techStack, p.TechStack...)
	}

	return recommendStudentData{
		GPA:         snap.Profile.GPA,
		Department:  snap.Profile.Department,
		YearOfStudy: snap.Profile.YearOfStudy,
		Skills:      skills,
		TechStack:   techStack,
	}
}

// heuristicRecommendations is the local fallback: GPA-eligible jobs with a
// case-insensitive skill overlap, or with no skill requirements at all.
// Jobs arrive in recency order and the first five survive.
func heuristicRecommendations(snap *studentSnapshot, jobs []types.JobOpportunity) *Recommendation {
	ids := make([]uuid.UUID, 0, 5)
	for _, job := range jobs {
		if len(ids) == 5 {
			break
		}
		if !gpaEligible(snap.Profile.GPA, job.MinGPA) {
			continue
		}
		if len(job.RequiredSkills) == 0 || hasSkillOverlap(snap.Skills, job.RequiredSkills) {
			ids = append(ids, job.ID)
		}
	}
	return &Recommendation{
		RecommendedJobIDs: ids,
		Reasoning:         "Fallback recommendations based on GPA and skill matching",
		Degraded:          true,
	}
}

func gpaEligible(studentGPA, minGPA *float64) bool {
	if minGPA == nil {
		return true
	}
	return studentGPA != nil && *studentGPA >= *minGPA
}

func hasSkillOverlap(skills []types.StudentSkill, required []string) bool {
	for _, req := range required {
		reqLower := strings.ToLower(req)
		for _, s := range skills {
			if strings.Contains(strings.ToLower(s.Name), reqLower) {
				return true
			}
		}
	}
	return false
}
