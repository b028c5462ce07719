// Package profile computes profile-quality signals for students. The
// completion score drives the "finish your profile" nudge; it is unrelated
// to job match scoring.
package profile

import "github.com/nikhil/placement-hub/internal/types"

// Completion weights. The sum is exactly 100 but the score is capped anyway
// so a future weight tweak cannot overflow the scale.
const (
	basicInfoPoints      = 20
	bioPoints            = 10
	gpaPoints            = 10
	contactPoints        = 10
	projectsPoints       = 20
	skillsPoints         = 15
	certificationsPoints = 15

	minBioLength = 20
	maxScore     = 100
)

// CompletionScore returns how complete a student profile is, 0 to 100.
// Each section scores all-or-nothing on presence; bio must be a real
// write-up, not a placeholder, hence the length floor.
func CompletionScore(p *types.Profile, projects []types.Project, skills []types.StudentSkill, certs []types.Certification) int {
	if p == nil {
		return 0
	}

	score := 0
	if p.FullName != "" && p.Email != "" && p.Department != "" {
		score += basicInfoPoints
	}
	if len(p.Bio) > minBioLength {
		score += bioPoints
	}
	if p.GPA != nil && *p.GPA > 0 {
		score += gpaPoints
	}
	if p.Phone != "" || p.LinkedinURL != "" || p.GithubURL != "" {
		score += contactPoints
	}
	if len(projects) > 0 {
		score += projectsPoints
	}
	if len(skills) > 0 {
		score += skillsPoints
	}
	if len(certs) > 0 {
		score += certificationsPoints
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}
