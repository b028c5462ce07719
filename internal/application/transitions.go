// Package application implements the lifecycle of a student's application
// to a job posting.
//
// Valid status graph:
//
//	(no row) ──► applied ──► under_review ──► interview_scheduled ──► selected
//	                 │             │                    │
//	                 │             └──► shortlisted ────┼──────────► selected
//	                 │                       │          │
//	                 └───────────────────────┴──────────┴──────────► rejected
//
// selected and rejected are terminal. The initial state is the absence of an
// application row for the (student, job) pair; the database's uniqueness
// constraint on that pair is the sole idempotency authority for Apply.
package application

import (
	"fmt"

	"github.com/nikhil/placement-hub/internal/types"
)

// validTransitions lists every allowed (from, to) pair. Rejection is
// allowed from any non-terminal state; selection only after an interview
// or shortlisting.
var validTransitions = map[string][]string{
	types.StatusApplied:            {types.StatusUnderReview, types.StatusRejected},
	types.StatusUnderReview:        {types.StatusInterviewScheduled, types.StatusShortlisted, types.StatusRejected},
	types.StatusInterviewScheduled: {types.StatusSelected, types.StatusRejected},
	types.StatusShortlisted:        {types.StatusSelected, types.StatusRejected},
	// selected and rejected are terminal and have no outgoing transitions
}

// ParseStatus validates a raw status string, returning an error for unknown
// values.
func ParseStatus(s string) (string, error) {
	switch s {
	case types.StatusApplied, types.StatusUnderReview, types.StatusInterviewScheduled,
		types.StatusShortlisted, types.StatusSelected, types.StatusRejected:
		return s, nil
	}
	return "", fmt.Errorf("unknown application status %q", s)
}

// IsTransitionAllowed returns true when moving between the given statuses is permitted by the
// state machine.
func IsTransitionAllowed(from, to string) bool {
	allowed, ok := validTransitions[from]
	if !ok {
		return false // terminal state, no outgoing transitions
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal returns true when status admits no further transitions.
func IsTerminal(s string) bool {
	return s == types.StatusSelected || s == types.StatusRejected
}
