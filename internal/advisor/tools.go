package advisor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/nikhil/placement-hub/internal/llm"
	"github.com/nikhil/placement-hub/internal/prompts"
	"github.com/nikhil/placement-hub/internal/types"
)

// ToolAction identifies one career tool.
type ToolAction string

// Career tool actions.
const (
	ActionResumeEnhance    ToolAction = "resume_enhance"
	ActionSkillGapAnalysis ToolAction = "skill_gap_analysis"
	ActionMockInterview    ToolAction = "mock_interview"
	ActionCareerRoadmap    ToolAction = "career_roadmap"
)

// UnknownActionError marks a tool request naming no known action.
type UnknownActionError struct {
	Action ToolAction
}

func (e *UnknownActionError) Error() string {
	return fmt.Sprintf("unknown action: %s", e.Action)
}

// ToolRequest is one career tool invocation. ResumeText and TargetJobID are
// optional; a target job is folded into the prompt when present.
type ToolRequest struct {
	Action      ToolAction `json:"action" validate:"required,oneof=resume_enhance skill_gap_analysis mock_interview career_roadmap"`
	ResumeText  string     `json:"resume_text,omitempty"`
	TargetJobID *uuid.UUID `json:"target_job_id,omitempty"`
}

// ToolResult wraps a tool's payload with run metadata.
type ToolResult struct {
	Success     bool            `json:"success"`
	Action      ToolAction      `json:"action"`
	Result      json.RawMessage `json:"result"`
	Degraded    bool            `json:"degraded,omitempty"`
	GeneratedAt time.Time       `json:"generated_at"`
}

// toolStudentData is the student summary sent to the model for tools. It is
// richer than the recommendation summary: tools reason about portfolio
// content, not just matching signals.
type toolStudentData struct {
	Profile struct {
		Name        string   `json:"name"`
		Department  string   `json:"department"`
		YearOfStudy *int     `json:"year_of_study"`
		GPA         *float64 `json:"gpa"`
		Bio         string   `json:"bio"`
	} `json:"profile"`
	Skills   []promptSkill `json:"skills"`
	Projects []struct {
		Title       string   `json:"title"`
		Description string   `json:"description"`
		TechStack   []string `json:"tech_stack"`
		Status      string   `json:"status"`
	} `json:"projects"`
	Certifications []struct {
		Title        string `json:"title"`
		Organization string `json:"organization"`
	} `json:"certifications"`
}

// RunTool executes one career tool for a student. Gateway failures and
// malformed payloads degrade to the per-action static fallback; hard errors
// are reserved for database failures, a missing profile, and an unknown
// action.
func (s *Service) RunTool(ctx context.Context, studentID uuid.UUID, req ToolRequest) (*ToolResult, error) {
	if _, ok := toolPrompts[req.Action]; !ok {
		return nil, &UnknownActionError{Action: req.Action}
	}

	snap, err := s.loadStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	var targetJob *types.JobOpportunity
	if req.TargetJobID != nil {
		// A stale target job ID is not fatal; the tool just loses context.
		targetJob, err = s.db.GetJob(ctx, *req.TargetJobID)
		if err != nil {
			return nil, err
		}
	}

	systemPrompt, userPrompt, err := buildToolPrompts(req, snap, targetJob)
	if err != nil {
		return nil, err
	}

	result := s.complete(ctx, completionSpec{
		systemPrompt: systemPrompt,
		userPrompt:   userPrompt,
		tier:         toolTier(req.Action),
		schema:       toolResultSchema,
		fallback:     toolFallback(req.Action),
	})

	return &ToolResult{
		Success:     true,
		Action:      req.Action,
		Result:      result.Result,
		Degraded:    result.Degraded,
		GeneratedAt: time.Now().UTC(),
	}, nil
}

// toolPrompts maps each action to its prompt keys in advisor.json.
var toolPrompts = map[ToolAction][2]string{
	ActionResumeEnhance:    {"resume-enhance-system", "resume-enhance-user"},
	ActionSkillGapAnalysis: {"skill-gap-system", "skill-gap-user"},
	ActionMockInterview:    {"mock-interview-system", "mock-interview-user"},
	ActionCareerRoadmap:    {"career-roadmap-system", "career-roadmap-user"},
}

// toolTier picks the model tier per action. Roadmaps are long-form
// multi-phase output and get the advanced tier.
func toolTier(action ToolAction) llm.ModelTier {
	if action == ActionCareerRoadmap {
		return llm.TierAdvanced
	}
	return llm.TierStandard
}

func buildToolPrompts(req ToolRequest, snap *studentSnapshot, targetJob *types.JobOpportunity) (string, string, error) {
	keys := toolPrompts[req.Action]

	studentJSON, err := json.Marshal(buildToolStudentData(snap))
	if err != nil {
		return "", "", fmt.Errorf("failed to marshal student data: %w", err)
	}

	targetJobSection := ""
	if targetJob != nil {
		jobJSON, err := json.Marshal(targetJob)
		if err != nil {
			return "", "", fmt.Errorf("failed to marshal target job: %w", err)
		}
		targetJobSection = fmt.Sprintf("Target Job: %s\n\n", jobJSON)
	}

	resumeText := req.ResumeText
	if resumeText == "" {
		resumeText = "No resume provided"
	}

	userPrompt := prompts.Format(prompts.MustGet("advisor.json", keys[1]), map[string]string{
		"StudentData":      string(studentJSON),
		"ResumeText":       resumeText,
		"TargetJobSection": targetJobSection,
	})
	return prompts.MustGet("advisor.json", keys[0]), userPrompt, nil
}

func buildToolStudentData(snap *studentSnapshot) toolStudentData {
	var data toolStudentData
	data.Profile.Name = snap.Profile.FullName
	data.Profile.Department = snap.Profile.Department
	data.Profile.YearOfStudy = snap.Profile.YearOfStudy
	data.Profile.GPA = snap.Profile.GPA
	data.Profile.Bio = snap.Profile.Bio

	data.Skills = make([]promptSkill, 0, len(snap.Skills))
	for _, s := range snap.Skills {
		data.Skills = append(data.Skills, promptSkill{
			Name:        s.Name,
			Category:    s.Category,
			Proficiency: s.ProficiencyLevel,
		})
	}

	for _, p := range snap.Projects {
		data.Projects = append(data.Projects, struct {
			Title       string   `json:"title"`
			Description string   `json:"description"`
			TechStack   []string `json:"tech_stack"`
			Status      string   `json:"status"`
		}{p.Title, p.Description, p.TechStack, p.Status})
	}

	for _, c := range snap.Certifications {
		data.Certifications = append(data.Certifications, struct {
			Title        string `json:"title"`
			Organization string `json:"organization"`
		}{c.Title, c.IssuingOrganization})
	}

	return data
}
