package application_test

import (
	"testing"

	"github.com/nikhil/placement-hub/internal/application"
	"github.com/nikhil/placement-hub/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allStatuses = []string{
	types.StatusApplied,
	types.StatusUnderReview,
	types.StatusInterviewScheduled,
	types.StatusShortlisted,
	types.StatusSelected,
	types.StatusRejected,
}

func TestParseStatus_ValidValues(t *testing.T) {
	for _, s := range allStatuses {
		got, err := application.ParseStatus(s)
		require.NoError(t, err, "ParseStatus(%q)", s)
		assert.Equal(t, s, got)
	}
}

func TestParseStatus_InvalidValues(t *testing.T) {
	for _, s := range []string{"", "UNKNOWN", "Applied", "hired"} {
		_, err := application.ParseStatus(s)
		assert.Error(t, err, "ParseStatus(%q)", s)
	}
}

func TestIsTransitionAllowed_ForwardPath(t *testing.T) {
	cases := []struct{ from, to string }{
		{types.StatusApplied, types.StatusUnderReview},
		{types.StatusUnderReview, types.StatusInterviewScheduled},
		{types.StatusUnderReview, types.StatusShortlisted},
		{types.StatusInterviewScheduled, types.StatusSelected},
		{types.StatusShortlisted, types.StatusSelected},
	}
	for _, c := range cases {
		assert.True(t, application.IsTransitionAllowed(c.from, c.to),
			"%s to %s should be allowed", c.from, c.to)
	}
}

func TestIsTransitionAllowed_RejectionFromAnyNonTerminal(t *testing.T) {
	nonTerminals := []string{
		types.StatusApplied,
		types.StatusUnderReview,
		types.StatusInterviewScheduled,
		types.StatusShortlisted,
	}
	for _, from := range nonTerminals {
		assert.True(t, application.IsTransitionAllowed(from, types.StatusRejected),
			"%s to rejected should be allowed", from)
	}
}

func TestIsTransitionAllowed_TerminalStatesHaveNoExits(t *testing.T) {
	for _, from := range []string{types.StatusSelected, types.StatusRejected} {
		for _, to := range allStatuses {
			assert.False(t, application.IsTransitionAllowed(from, to),
				"%s to %s should be forbidden (terminal)", from, to)
		}
	}
}

func TestIsTransitionAllowed_SkipLevelForbidden(t *testing.T) {
	cases := []struct{ from, to string }{
		{types.StatusApplied, types.StatusInterviewScheduled},
		{types.StatusApplied, types.StatusShortlisted},
		{types.StatusApplied, types.StatusSelected},
		{types.StatusUnderReview, types.StatusSelected},
	}
	for _, c := range cases {
		assert.False(t, application.IsTransitionAllowed(c.from, c.to),
			"%s to %s should be forbidden (skip-level)", c.from, c.to)
	}
}

func TestIsTransitionAllowed_BackwardsAndSelfForbidden(t *testing.T) {
	assert.False(t, application.IsTransitionAllowed(types.StatusUnderReview, types.StatusApplied))
	assert.False(t, application.IsTransitionAllowed(types.StatusSelected, types.StatusShortlisted))
	for _, s := range allStatuses {
		assert.False(t, application.IsTransitionAllowed(s, s), "%s to %s (self)", s, s)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, application.IsTerminal(types.StatusSelected))
	assert.True(t, application.IsTerminal(types.StatusRejected))
	for _, s := range []string{types.StatusApplied, types.StatusUnderReview, types.StatusInterviewScheduled, types.StatusShortlisted} {
		assert.False(t, application.IsTerminal(s))
	}
}
