package matching

import (
	"sort"

	"github.com/google/uuid"
	"github.com/nikhil/placement-hub/internal/types"
)

// ValidRecommendations drops recommended IDs that are not in the given job
// list. The gateway occasionally returns stale or fabricated IDs; an unknown
// ID is harmless as a sort key but should never reach callers as a
// "recommendation".
func ValidRecommendations(ids []uuid.UUID, jobs []types.JobOpportunity) RecommendedSet {
	active := make(map[uuid.UUID]struct{}, len(jobs))
	for _, job := range jobs {
		active[job.ID] = struct{}{}
	}

	set := make(RecommendedSet)
	for _, id := range ids {
		if _, ok := active[id]; ok {
			set[id] = struct{}{}
		}
	}
	return set
}

// MergeAndSort orders the browse list: recommended jobs first, then by
// created_at descending within each partition. The sort is stable, so jobs
// that tie keep their incoming order. An empty or nil recommended set
// degrades to plain recency ordering.
func MergeAndSort(jobs []types.JobOpportunity, recommended RecommendedSet) []types.JobOpportunity {
	sorted := make([]types.JobOpportunity, len(jobs))
	copy(sorted, jobs)

	sort.SliceStable(sorted, func(i, j int) bool {
		ri := recommended.Contains(sorted[i].ID)
		rj := recommended.Contains(sorted[j].ID)
		if ri != rj {
			return ri
		}
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	return sorted
}
