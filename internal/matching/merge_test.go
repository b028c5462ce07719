package matching

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/nikhil/placement-hub/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jobAt(title string, daysAgo int, now time.Time) types.JobOpportunity {
	return types.JobOpportunity{
		ID:        uuid.New(),
		Title:     title,
		CreatedAt: now.AddDate(0, 0, -daysAgo),
	}
}

func TestMergeAndSort_RecommendedSortAheadOfNewer(t *testing.T) {
	now := time.Now()
	newest := jobAt("newest", 1, now)
	oldRecommended := jobAt("old recommended", 60, now)
	middle := jobAt("middle", 10, now)

	got := MergeAndSort(
		[]types.JobOpportunity{newest, oldRecommended, middle},
		NewRecommendedSet([]uuid.UUID{oldRecommended.ID}),
	)

	require.Len(t, got, 3)
	assert.Equal(t, "old recommended", got[0].Title)
	assert.Equal(t, "newest", got[1].Title)
	assert.Equal(t, "middle", got[2].Title)
}

func TestMergeAndSort_EmptySetDegradesToRecency(t *testing.T) {
	now := time.Now()
	a := jobAt("a", 30, now)
	b := jobAt("b", 1, now)
	c := jobAt("c", 10, now)

	got := MergeAndSort([]types.JobOpportunity{a, b, c}, nil)

	require.Len(t, got, 3)
	assert.Equal(t, []string{"b", "c", "a"}, []string{got[0].Title, got[1].Title, got[2].Title})
}

func TestMergeAndSort_RecencyWithinRecommendedPartition(t *testing.T) {
	now := time.Now()
	recOld := jobAt("rec old", 20, now)
	recNew := jobAt("rec new", 2, now)
	plain := jobAt("plain", 0, now)

	got := MergeAndSort(
		[]types.JobOpportunity{recOld, plain, recNew},
		NewRecommendedSet([]uuid.UUID{recOld.ID, recNew.ID}),
	)

	assert.Equal(t, []string{"rec new", "rec old", "plain"}, []string{got[0].Title, got[1].Title, got[2].Title})
}

func TestMergeAndSort_DoesNotMutateInput(t *testing.T) {
	now := time.Now()
	a := jobAt("a", 30, now)
	b := jobAt("b", 1, now)
	input := []types.JobOpportunity{a, b}

	_ = MergeAndSort(input, nil)

	assert.Equal(t, "a", input[0].Title)
	assert.Equal(t, "b", input[1].Title)
}

func TestValidRecommendations_DropsUnknownIDs(t *testing.T) {
	now := time.Now()
	active := []types.JobOpportunity{jobAt("a", 1, now), jobAt("b", 2, now)}
	stale := uuid.New()

	set := ValidRecommendations([]uuid.UUID{active[0].ID, stale}, active)

	assert.True(t, set.Contains(active[0].ID))
	assert.False(t, set.Contains(stale))
	assert.Len(t, set, 1)
}
