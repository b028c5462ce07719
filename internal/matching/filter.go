package matching

import (
	"strings"

	"github.com/nikhil/placement-hub/internal/types"
)

// FilterAll is the sentinel that disables a categorical filter.
const FilterAll = "all"

// Query narrows the active job list. Zero values pass everything through.
type Query struct {
	Text         string
	JobType      string
	LocationType string
}

// Filter returns the jobs matching every active criterion. Text matches
// case-insensitively against title, company name, description, or any
// required skill; the categorical filters are exact matches unless set to
// "all" (or left empty). Filters AND together and commute.
func Filter(jobs []types.JobOpportunity, q Query) []types.JobOpportunity {
	text := strings.ToLower(strings.TrimSpace(q.Text))

	filtered := make([]types.JobOpportunity, 0, len(jobs))
	for _, job := range jobs {
		if text != "" && !matchesText(job, text) {
			continue
		}
		if !matchesCategory(job.JobType, q.JobType) {
			continue
		}
		if !matchesCategory(job.LocationType, q.LocationType) {
			continue
		}
		filtered = append(filtered, job)
	}
	return filtered
}

// matchesText reports whether the lowercased needle appears in any of the
// job's searchable text fields.
func matchesText(job types.JobOpportunity, needle string) bool {
	if strings.Contains(strings.ToLower(job.Title), needle) ||
		strings.Contains(strings.ToLower(job.CompanyName), needle) ||
		strings.Contains(strings.ToLower(job.Description), needle) {
		return true
	}
	for _, skill := range job.RequiredSkills {
		if strings.Contains(strings.ToLower(skill), needle) {
			return true
		}
	}
	return false
}

func matchesCategory(value, filter string) bool {
	if filter == "" || filter == FilterAll {
		return true
	}
	return value == filter
}
