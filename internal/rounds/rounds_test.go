package rounds

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/megagoal/megagoal-data/internal/match"
)

func fixtureIn(round, status string) match.RealMatch {
	return match.RealMatch{
		Fixture: match.Fixture{Status: match.Status{Short: status}},
		League:  match.League{Round: round},
	}
}

func roundLabels(groups []Group) []string {
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Round
	}
	return out
}

func TestBuildOrdersRegularRoundsNumerically(t *testing.T) {
	// Input arrives unordered; "Regular Season - 10" must sort after
	// "Regular Season - 2", which lexicographic ordering would get wrong.
	fixtures := []match.RealMatch{
		fixtureIn("Regular Season - 10", match.StatusNotStarted),
		fixtureIn("Regular Season - 2", match.StatusNotStarted),
		fixtureIn("Regular Season - 1", match.StatusNotStarted),
	}

	groups, _ := Build(fixtures)
	require.Equal(t, []string{
		"Regular Season - 1",
		"Regular Season - 2",
		"Regular Season - 10",
	}, roundLabels(groups))
}

func TestBuildKeepsOtherRoundsAfterRegular(t *testing.T) {
	fixtures := []match.RealMatch{
		fixtureIn("Semi-finals", match.StatusNotStarted),
		fixtureIn("Regular Season - 2", match.StatusNotStarted),
		fixtureIn("Final", match.StatusNotStarted),
		fixtureIn("Regular Season - 1", match.StatusNotStarted),
	}

	groups, _ := Build(fixtures)
	require.Equal(t, []string{
		"Regular Season - 1",
		"Regular Season - 2",
		"Semi-finals",
		"Final",
	}, roundLabels(groups))
}

func TestBuildPartitionsEveryFixtureOnce(t *testing.T) {
	fixtures := []match.RealMatch{
		fixtureIn("Regular Season - 1", match.StatusFullTime),
		fixtureIn("Regular Season - 1", match.StatusFullTime),
		fixtureIn("Regular Season - 2", match.StatusNotStarted),
		fixtureIn("Final", match.StatusNotStarted),
	}

	groups, _ := Build(fixtures)
	total := 0
	for _, g := range groups {
		total += len(g.Matches)
	}
	require.Equal(t, len(fixtures), total)
	require.Len(t, groups, 3)
	require.Len(t, groups[0].Matches, 2)
}

func TestBuildCurrentRoundIsLastPlayedRegular(t *testing.T) {
	fixtures := []match.RealMatch{
		fixtureIn("Regular Season - 1", match.StatusFullTime),
		fixtureIn("Regular Season - 2", match.StatusFullTime),
		fixtureIn("Regular Season - 2", match.StatusNotStarted),
		fixtureIn("Regular Season - 3", match.StatusNotStarted),
	}

	_, current := Build(fixtures)
	require.Equal(t, 1, current)
}

func TestBuildCurrentRoundIgnoresNonFullTime(t *testing.T) {
	// Only FT marks a round as played; AET and PEN do not.
	fixtures := []match.RealMatch{
		fixtureIn("Regular Season - 1", match.StatusFullTime),
		fixtureIn("Regular Season - 2", match.StatusAfterExtra),
		fixtureIn("Regular Season - 3", match.StatusPenalties),
	}

	_, current := Build(fixtures)
	require.Equal(t, 0, current)
}

func TestBuildCurrentRoundDefaultsToZero(t *testing.T) {
	fixtures := []match.RealMatch{
		fixtureIn("Regular Season - 1", match.StatusNotStarted),
		fixtureIn("Regular Season - 2", match.StatusNotStarted),
	}

	_, current := Build(fixtures)
	require.Equal(t, 0, current)
}

func TestBuildEmptyInput(t *testing.T) {
	groups, current := Build(nil)
	require.Empty(t, groups)
	require.Equal(t, 0, current)
}

func TestDisplayName(t *testing.T) {
	cases := []struct {
		round string
		want  string
	}{
		{"Regular Season - 7", "Round - 7"},
		{"League Stage - 3", "League R. - 3"},
		{"Group Stage - 1", "Group R. - 1"},
		{"Final", "Final"},
		{"Semi-finals", "Semi-finals"},
		// Anchored: label families with trailing text pass through.
		{"Regular Season - 7 (Replay)", "Regular Season - 7 (Replay)"},
		{"", ""},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, DisplayName(tc.round), "round=%q", tc.round)
	}
}
