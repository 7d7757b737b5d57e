package live

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/megagoal/megagoal-data/internal/match"
)

var now = time.Date(2025, 9, 14, 18, 0, 0, 0, time.UTC)

func dayFixture(id, leagueID int, leagueName, status string, kickoff time.Time) match.RealMatch {
	return match.RealMatch{
		Fixture: match.Fixture{
			ID:        id,
			Timestamp: kickoff.Unix(),
			Status:    match.Status{Short: status},
		},
		League: match.League{ID: leagueID, Name: leagueName, Season: 2025},
	}
}

func TestIsLive(t *testing.T) {
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	cases := []struct {
		name    string
		status  string
		kickoff time.Time
		want    bool
	}{
		{"in first half", match.StatusFirstHalf, past, true},
		{"at halftime", match.StatusHalftime, past, true},
		{"full time", match.StatusFullTime, past, false},
		{"after extra time", match.StatusAfterExtra, past, false},
		{"penalties decided", match.StatusPenalties, past, false},
		{"postponed", match.StatusPostponed, past, false},
		{"cancelled", match.StatusCancelled, past, false},
		// Stale provider status: kickoff passed but status still NS.
		{"stale not started", match.StatusNotStarted, past, true},
		// A future fixture is never live, whatever its status says.
		{"future not started", match.StatusNotStarted, future, false},
		{"future full time", match.StatusFullTime, future, false},
		{"kickoff exactly now", match.StatusNotStarted, now, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := dayFixture(1, 39, "Premier League", tc.status, tc.kickoff)
			require.Equal(t, tc.want, IsLive(&m, now))
		})
	}
}

func TestNewDayViewGroupsAndOrders(t *testing.T) {
	fixtures := []match.RealMatch{
		dayFixture(3, 140, "La Liga", match.StatusNotStarted, now.Add(2*time.Hour)),
		dayFixture(1, 10, "Friendlies", match.StatusFirstHalf, now.Add(-time.Hour)),
		dayFixture(2, 39, "Premier League", match.StatusFullTime, now.Add(-3*time.Hour)),
		dayFixture(4, 140, "La Liga", match.StatusFirstHalf, now.Add(-time.Hour)),
	}

	groups := NewDayView(fixtures).Groups()
	require.Len(t, groups, 3)

	// Leagues alphabetical, friendlies last.
	require.Equal(t, "La Liga", groups[0].League.Name)
	require.Equal(t, "Premier League", groups[1].League.Name)
	require.Equal(t, "Friendlies", groups[2].League.Name)

	// Matches within a league by kickoff ascending.
	require.Equal(t, 4, groups[0].Matches[0].Fixture.ID)
	require.Equal(t, 3, groups[0].Matches[1].Fixture.ID)

	require.Equal(t, "140_2025", groups[0].Key)
}

func TestNewDayViewBreaksKickoffTiesByFixtureID(t *testing.T) {
	kickoff := now.Add(-time.Hour)
	fixtures := []match.RealMatch{
		dayFixture(20, 39, "Premier League", match.StatusFirstHalf, kickoff),
		dayFixture(10, 39, "Premier League", match.StatusFirstHalf, kickoff),
	}

	groups := NewDayView(fixtures).Groups()
	require.Len(t, groups, 1)
	require.Equal(t, 10, groups[0].Matches[0].Fixture.ID)
	require.Equal(t, 20, groups[0].Matches[1].Fixture.ID)
}

func TestLiveGroupsDropsLeaguesWithoutLiveFixtures(t *testing.T) {
	fixtures := []match.RealMatch{
		dayFixture(1, 140, "La Liga", match.StatusFirstHalf, now.Add(-time.Hour)),
		dayFixture(2, 140, "La Liga", match.StatusNotStarted, now.Add(2*time.Hour)),
		dayFixture(3, 39, "Premier League", match.StatusFullTime, now.Add(-3*time.Hour)),
	}

	view := NewDayView(fixtures)
	liveGroups := view.LiveGroups(now)

	require.Len(t, liveGroups, 1)
	require.Equal(t, "La Liga", liveGroups[0].League.Name)
	require.Len(t, liveGroups[0].Matches, 1)
	require.Equal(t, 1, liveGroups[0].Matches[0].Fixture.ID)
}

func TestLiveGroupsLeavesOriginalViewIntact(t *testing.T) {
	fixtures := []match.RealMatch{
		dayFixture(1, 140, "La Liga", match.StatusFirstHalf, now.Add(-time.Hour)),
		dayFixture(2, 39, "Premier League", match.StatusFullTime, now.Add(-3*time.Hour)),
	}

	view := NewDayView(fixtures)
	_ = view.LiveGroups(now)

	// Toggling the filter off restores the full pre-filter view.
	groups := view.Groups()
	require.Len(t, groups, 2)
	require.Len(t, groups[0].Matches, 1)
	require.Len(t, groups[1].Matches, 1)
}

func TestLiveGroupsEmptyWhenNothingLive(t *testing.T) {
	fixtures := []match.RealMatch{
		dayFixture(1, 39, "Premier League", match.StatusNotStarted, now.Add(time.Hour)),
	}
	require.Empty(t, NewDayView(fixtures).LiveGroups(now))
}
