package matching

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nikhil/placement-hub/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func browseJobs() []types.JobOpportunity {
	now := time.Now()
	return []types.JobOpportunity{
		{
			ID:             uuid.New(),
			Title:          "Frontend Intern",
			CompanyName:    "Acme Labs",
			JobType:        types.JobTypeInternship,
			LocationType:   types.LocationRemote,
			Description:    "Build dashboards and design systems",
			RequiredSkills: []string{"React", "Node"},
			CreatedAt:      now.AddDate(0, 0, -1),
		},
		{
			ID:             uuid.New(),
			Title:          "Data Engineer",
			CompanyName:    "Northwind",
			JobType:        types.JobTypeFullTime,
			LocationType:   types.LocationOnSite,
			Description:    "Pipelines with Python and Spark",
			RequiredSkills: []string{"Python", "SQL"},
			CreatedAt:      now.AddDate(0, 0, -10),
		},
		{
			ID:             uuid.New(),
			Title:          "Platform Engineer",
			CompanyName:    "Reactor Systems",
			JobType:        types.JobTypeFullTime,
			LocationType:   types.LocationHybrid,
			Description:    "Kubernetes and Go services",
			RequiredSkills: []string{"Go", "Kubernetes"},
			CreatedAt:      now.AddDate(0, 0, -20),
		},
	}
}

func TestFilter_TextMatchesRequiredSkillOnly(t *testing.T) {
	jobs := browseJobs()

	// "react" appears in the first job only via its skill array, and in the
	// third via the company name.
	got := Filter(jobs, Query{Text: "react"})

	require.Len(t, got, 2)
	assert.Equal(t, "Frontend Intern", got[0].Title)
	assert.Equal(t, "Platform Engineer", got[1].Title)
}

func TestFilter_TextIsCaseInsensitive(t *testing.T) {
	jobs := browseJobs()

	assert.Equal(t, Filter(jobs, Query{Text: "PYTHON"}), Filter(jobs, Query{Text: "python"}))
	require.Len(t, Filter(jobs, Query{Text: "PYTHON"}), 1)
}

func TestFilter_EmptyQueryPassesThrough(t *testing.T) {
	jobs := browseJobs()

	assert.Equal(t, jobs, Filter(jobs, Query{}))
	assert.Equal(t, jobs, Filter(jobs, Query{JobType: FilterAll, LocationType: FilterAll}))
}

func TestFilter_CategoricalFilters(t *testing.T) {
	jobs := browseJobs()

	fullTime := Filter(jobs, Query{JobType: types.JobTypeFullTime})
	require.Len(t, fullTime, 2)

	remote := Filter(jobs, Query{LocationType: types.LocationRemote})
	require.Len(t, remote, 1)
	assert.Equal(t, "Frontend Intern", remote[0].Title)
}

func TestFilter_FiltersCompose(t *testing.T) {
	jobs := browseJobs()

	got := Filter(jobs, Query{Text: "engineer", JobType: types.JobTypeFullTime, LocationType: types.LocationHybrid})

	require.Len(t, got, 1)
	assert.Equal(t, "Platform Engineer", got[0].Title)
}

func TestFilter_Idempotent(t *testing.T) {
	jobs := browseJobs()
	q := Query{Text: "engineer", JobType: types.JobTypeFullTime}

	once := Filter(jobs, q)
	twice := Filter(once, q)

	assert.Equal(t, once, twice)
}

func TestFilter_OrderOfApplicationCommutes(t *testing.T) {
	jobs := browseJobs()

	textThenType := Filter(Filter(jobs, Query{Text: "engineer"}), Query{JobType: types.JobTypeFullTime})
	typeThenText := Filter(Filter(jobs, Query{JobType: types.JobTypeFullTime}), Query{Text: "engineer"})

	assert.Equal(t, textThenType, typeThenText)
}

func TestFilter_NoMatchesYieldsEmptySlice(t *testing.T) {
	got := Filter(browseJobs(), Query{Text: "haskell"})
	assert.Empty(t, got)
}
