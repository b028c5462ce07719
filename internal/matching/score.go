// Package matching implements the opportunity matching pipeline: the
// student/job match score, free-text and categorical filtering, and the
// recommendation-aware ordering of the browse list.
package matching

import (
	"time"

	"github.com/google/uuid"
	"github.com/nikhil/placement-hub/internal/types"
)

// Point values for each score component. The components sum to at most 100;
// Score clamps anyway so the weights can be tuned independently.
const (
	gpaFullPoints        = 30
	gpaNearPoints        = 15
	recommendedPoints    = 40
	internshipPoints     = 15
	recencyFullPoints    = 15
	recencyPartialPoints = 7
	recencyFullDays      = 7
	recencyPartialDays   = 30
	maxScore             = 100
)

// gpaNearMargin is how far below a job's minimum GPA still earns partial credit.
const gpaNearMargin = 0.5

// StudentInputs is the slice of a student profile the scorer needs.
type StudentInputs struct {
	GPA *float64
}

// RecommendedSet is the AI gateway's best-effort set of job IDs for one
// student. A nil map behaves as the empty set.
type RecommendedSet map[uuid.UUID]struct{}

// NewRecommendedSet builds a RecommendedSet from a list of job IDs.
func NewRecommendedSet(ids []uuid.UUID) RecommendedSet {
	set := make(RecommendedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether id is in the set. Safe on a nil set.
func (r RecommendedSet) Contains(id uuid.UUID) bool {
	_, ok := r[id]
	return ok
}

// Score computes the 0-100 suitability score for a (student, job) pair.
// Pure and deterministic given now; display-only, it never gates Apply.
//
// Components:
//   - GPA band: no requirement, or a student GPA at/above it, earns full
//     credit; within 0.5 below earns half. A missing GPA on either side is
//     treated permissively (incomplete profiles are not punished).
//   - Membership in the recommended set.
//   - Internship postings get a flat preference bump (not personalized).
//   - Posting recency: within 7 days full credit, within 30 partial.
func Score(job types.JobOpportunity, student StudentInputs, recommended RecommendedSet, now time.Time) int {
	score := 0

	switch {
	case job.MinGPA == nil:
		score += gpaFullPoints
	case student.GPA == nil:
		// No GPA on record: degrade to the no-requirement branch.
		score += gpaFullPoints
	case *student.GPA >= *job.MinGPA:
		score += gpaFullPoints
	case *student.GPA >= *job.MinGPA-gpaNearMargin:
		score += gpaNearPoints
	}

	if recommended.Contains(job.ID) {
		score += recommendedPoints
	}

	if job.JobType == types.JobTypeInternship {
		score += internshipPoints
	}

	days := now.Sub(job.CreatedAt).Hours() / 24
	switch {
	case days <= recencyFullDays:
		score += recencyFullPoints
	case days <= recencyPartialDays:
		score += recencyPartialPoints
	}

	if score > maxScore {
		score = maxScore
	}
	return score
}
