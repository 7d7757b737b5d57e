// Package live derives the in-progress subset of a day's fixtures and keeps
// the grouped-by-league day view that the live toggle filters.
//
// Liveness is computed, never stored: provider status codes lag between
// refreshes, so a status check alone would misclassify future fixtures whose
// status was fetched stale.
package live

import (
	"fmt"
	"sort"
	"time"

	"github.com/megagoal/megagoal-data/internal/config"
	"github.com/megagoal/megagoal-data/internal/match"
)

// IsLive reports whether a fixture is in progress at the given wall-clock
// time: its status is not in the finished set and its kickoff has passed.
// A stale "NS" on a fixture whose kickoff already passed still counts as
// live; a future fixture never does, whatever its status says.
func IsLive(m *match.RealMatch, now time.Time) bool {
	return !match.IsFinishedStatus(m.Fixture.Status.Short) &&
		m.Fixture.Timestamp <= now.Unix()
}

// LeagueGroup is one league-season bucket of a day view.
type LeagueGroup struct {
	Key     string            `json:"key"` // "<league id>_<season>"
	League  match.League      `json:"league"`
	Matches []match.RealMatch `json:"matches"`
}

// DayView is the grouped-by-league view of one day's fixtures. The original
// grouping is built once and cached so toggling the live filter off restores
// the exact pre-filter order and content instead of recomputing it.
type DayView struct {
	all  []LeagueGroup
	live []LeagueGroup
}

// NewDayView groups fixtures by (league id, season). Leagues are ordered by
// name, friendlies competitions last; matches within a league by kickoff
// ascending, fixture id breaking ties.
func NewDayView(fixtures []match.RealMatch) *DayView {
	buckets := make(map[string]*LeagueGroup)
	var order []string
	for _, m := range fixtures {
		key := fmt.Sprintf("%d_%d", m.League.ID, m.League.Season)
		g, ok := buckets[key]
		if !ok {
			g = &LeagueGroup{Key: key, League: m.League}
			buckets[key] = g
			order = append(order, key)
		}
		g.Matches = append(g.Matches, m)
	}

	sort.SliceStable(order, func(i, j int) bool {
		a, b := buckets[order[i]].League, buckets[order[j]].League
		fa, fb := config.IsFriendlyLeague(a.ID), config.IsFriendlyLeague(b.ID)
		if fa != fb {
			return !fa
		}
		return a.Name < b.Name
	})

	all := make([]LeagueGroup, 0, len(order))
	for _, key := range order {
		g := buckets[key]
		sort.SliceStable(g.Matches, func(i, j int) bool {
			if g.Matches[i].Fixture.Timestamp != g.Matches[j].Fixture.Timestamp {
				return g.Matches[i].Fixture.Timestamp < g.Matches[j].Fixture.Timestamp
			}
			return g.Matches[i].Fixture.ID < g.Matches[j].Fixture.ID
		})
		all = append(all, *g)
	}
	return &DayView{all: all}
}

// Groups returns the cached unfiltered grouping.
func (v *DayView) Groups() []LeagueGroup {
	return v.all
}

// LiveGroups recomputes the live subset at the given time. Leagues with no
// live fixture are dropped entirely, not shown as empty groups. The cached
// unfiltered grouping is untouched, so a later Groups call restores the
// pre-filter view exactly.
func (v *DayView) LiveGroups(now time.Time) []LeagueGroup {
	v.live = v.live[:0]
	for _, g := range v.all {
		var liveMatches []match.RealMatch
		for _, m := range g.Matches {
			if IsLive(&m, now) {
				liveMatches = append(liveMatches, m)
			}
		}
		if len(liveMatches) > 0 {
			v.live = append(v.live, LeagueGroup{Key: g.Key, League: g.League, Matches: liveMatches})
		}
	}
	return v.live
}
