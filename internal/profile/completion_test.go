package profile_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nikhil/placement-hub/internal/profile"
	"github.com/nikhil/placement-hub/internal/types"
)

func gpa(v float64) *float64 { return &v }

func fullProfile() *types.Profile {
	return &types.Profile{
		FullName:   "Asha Verma",
		Email:      "asha@example.edu",
		Department: "Computer Science",
		Bio:        strings.Repeat("building things ", 3),
		GPA:        gpa(3.6),
		Phone:      "+911234567890",
	}
}

func TestCompletionScore_Empty(t *testing.T) {
	assert.Equal(t, 0, profile.CompletionScore(&types.Profile{}, nil, nil, nil))
	assert.Equal(t, 0, profile.CompletionScore(nil, nil, nil, nil))
}

func TestCompletionScore_Full(t *testing.T) {
	score := profile.CompletionScore(fullProfile(),
		[]types.Project{{Title: "p"}},
		[]types.StudentSkill{{Name: "Go"}},
		[]types.Certification{{Title: "c"}})
	assert.Equal(t, 100, score)
}

func TestCompletionScore_SectionWeights(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*types.Profile)
		want   int
	}{
		{"missing department drops basics", func(p *types.Profile) { p.Department = "" }, 30},
		{"short bio scores nothing", func(p *types.Profile) { p.Bio = "hello" }, 40},
		{"zero gpa scores nothing", func(p *types.Profile) { p.GPA = gpa(0) }, 40},
		{"nil gpa scores nothing", func(p *types.Profile) { p.GPA = nil }, 40},
		{"no contact channels", func(p *types.Profile) { p.Phone = "" }, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := fullProfile()
			tt.mutate(p)
			assert.Equal(t, tt.want, profile.CompletionScore(p, nil, nil, nil))
		})
	}
}

func TestCompletionScore_ContactAlternatives(t *testing.T) {
	p := fullProfile()
	p.Phone = ""
	p.GithubURL = "https://github.com/asha"
	assert.Equal(t, 50, profile.CompletionScore(p, nil, nil, nil))
}

func TestCompletionScore_PortfolioSections(t *testing.T) {
	p := fullProfile()

	withProjects := profile.CompletionScore(p, []types.Project{{Title: "p"}}, nil, nil)
	assert.Equal(t, 70, withProjects)

	withSkills := profile.CompletionScore(p, nil, []types.StudentSkill{{Name: "Go"}}, nil)
	assert.Equal(t, 65, withSkills)

	withCerts := profile.CompletionScore(p, nil, nil, []types.Certification{{Title: "c"}})
	assert.Equal(t, 65, withCerts)
}
