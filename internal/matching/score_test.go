package matching

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nikhil/placement-hub/internal/types"
	"github.com/stretchr/testify/assert"
)

func floatPtr(f float64) *float64 { return &f }

func testJob(minGPA *float64, jobType string, postedDaysAgo int, now time.Time) types.JobOpportunity {
	return types.JobOpportunity{
		ID:        uuid.New(),
		Title:     "Backend Engineer",
		JobType:   jobType,
		MinGPA:    minGPA,
		Status:    types.JobStatusActive,
		CreatedAt: now.AddDate(0, 0, -postedDaysAgo),
	}
}

func TestScore_GPAAboveMinimumInternshipRecent(t *testing.T) {
	now := time.Now()
	job := testJob(floatPtr(8.0), types.JobTypeInternship, 2, now)
	student := StudentInputs{GPA: floatPtr(8.5)}

	// 30 (gpa) + 0 (not recommended) + 15 (internship) + 15 (recent)
	assert.Equal(t, 60, Score(job, student, nil, now))
}

func TestScore_GPAWithinHalfPointOfMinimum(t *testing.T) {
	now := time.Now()
	job := testJob(floatPtr(8.0), types.JobTypeInternship, 2, now)
	student := StudentInputs{GPA: floatPtr(7.6)}

	// 15 (near-miss gpa) + 0 + 15 (internship) + 15 (recent)
	assert.Equal(t, 45, Score(job, student, nil, now))
}

func TestScore_RecommendedOldFullTimeNoGPARequirement(t *testing.T) {
	now := time.Now()
	job := testJob(nil, types.JobTypeFullTime, 40, now)
	student := StudentInputs{GPA: floatPtr(7.0)}
	recommended := NewRecommendedSet([]uuid.UUID{job.ID})

	// 30 (no requirement) + 40 (recommended) + 0 + 0 (stale posting)
	assert.Equal(t, 70, Score(job, student, recommended, now))
}

func TestScore_GPAFarBelowMinimum(t *testing.T) {
	now := time.Now()
	job := testJob(floatPtr(3.5), types.JobTypeFullTime, 40, now)
	student := StudentInputs{GPA: floatPtr(2.0)}

	assert.Equal(t, 0, Score(job, student, nil, now))
}

func TestScore_MissingStudentGPAIsPermissive(t *testing.T) {
	now := time.Now()
	job := testJob(floatPtr(3.5), types.JobTypeFullTime, 40, now)

	// An incomplete profile degrades to the no-requirement branch.
	assert.Equal(t, 30, Score(job, StudentInputs{}, nil, now))
}

func TestScore_PartialRecencyCredit(t *testing.T) {
	now := time.Now()
	job := testJob(nil, types.JobTypeFullTime, 20, now)

	// 30 (no requirement) + 7 (posted within 30 days)
	assert.Equal(t, 37, Score(job, StudentInputs{}, nil, now))
}

func TestScore_BoundsHold(t *testing.T) {
	now := time.Now()
	gpas := []*float64{nil, floatPtr(0), floatPtr(2.0), floatPtr(3.99), floatPtr(4.0)}
	jobTypes := []string{types.JobTypeInternship, types.JobTypeFullTime, types.JobTypePartTime, types.JobTypeContract}
	ages := []int{0, 3, 7, 8, 30, 31, 400}

	for _, minGPA := range gpas {
		for _, studentGPA := range gpas {
			for _, jobType := range jobTypes {
				for _, age := range ages {
					job := testJob(minGPA, jobType, age, now)
					for _, rec := range []RecommendedSet{nil, NewRecommendedSet([]uuid.UUID{job.ID})} {
						score := Score(job, StudentInputs{GPA: studentGPA}, rec, now)
						assert.GreaterOrEqual(t, score, 0)
						assert.LessOrEqual(t, score, 100)
					}
				}
			}
		}
	}
}

func TestScore_RecommendationNeverDecreasesScore(t *testing.T) {
	now := time.Now()
	jobs := []types.JobOpportunity{
		testJob(nil, types.JobTypeInternship, 1, now),
		testJob(floatPtr(3.0), types.JobTypeFullTime, 15, now),
		testJob(floatPtr(3.8), types.JobTypeContract, 90, now),
	}
	student := StudentInputs{GPA: floatPtr(3.2)}

	for _, job := range jobs {
		without := Score(job, student, nil, now)
		with := Score(job, student, NewRecommendedSet([]uuid.UUID{job.ID}), now)
		assert.GreaterOrEqual(t, with, without)
	}
}

func TestRecommendedSet_NilIsEmpty(t *testing.T) {
	var set RecommendedSet
	assert.False(t, set.Contains(uuid.New()))
}
