package match

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIsFinishedStatus(t *testing.T) {
	for _, s := range []string{StatusFullTime, StatusAfterExtra, StatusPenalties, StatusPostponed, StatusCancelled} {
		require.True(t, IsFinishedStatus(s), "status=%s", s)
	}
	// Suspended and abandoned fixtures may still resume; they are not
	// finished for the live filter.
	for _, s := range []string{StatusNotStarted, StatusFirstHalf, StatusHalftime, StatusExtraTime, StatusSuspended, StatusAbandoned, ""} {
		require.False(t, IsFinishedStatus(s), "status=%s", s)
	}
}

func TestIsNotStartedStatus(t *testing.T) {
	require.True(t, IsNotStartedStatus(StatusNotStarted))
	require.True(t, IsNotStartedStatus(StatusTBD))
	require.False(t, IsNotStartedStatus(StatusFirstHalf))
	require.False(t, IsNotStartedStatus(StatusFullTime))
}

func TestHasEnrichment(t *testing.T) {
	full := RealMatch{
		Statistics: []TeamStatistics{{}},
		Lineups:    []Lineup{{}},
		Events:     []Event{{}},
	}
	require.True(t, full.HasEnrichment())

	// Any missing array makes the fixture under-enriched.
	partial := full
	partial.Events = nil
	require.False(t, partial.HasEnrichment())

	var empty RealMatch
	require.False(t, empty.HasEnrichment())
}
