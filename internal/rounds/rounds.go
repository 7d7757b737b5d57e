// Package rounds partitions a league-season's fixtures into ordered rounds
// and selects the round shown by default.
package rounds

import (
	"regexp"
	"sort"
	"strconv"

	"github.com/megagoal/megagoal-data/internal/match"
)

// Group is one named round bucket.
type Group struct {
	Round   string            `json:"round"`
	Matches []match.RealMatch `json:"matches"`
}

var regularSeasonRe = regexp.MustCompile(`^Regular Season - (\d+)$`)

// Build partitions fixtures by their verbatim round label and orders the
// groups: "Regular Season - N" rounds first, numerically ascending by N,
// then every other label in first-encountered input order. Each fixture
// lands in exactly one group. The returned index is the current round: the
// last regular-season round containing at least one full-time fixture, or 0
// when none does. Only FT triggers the selection; AET/PEN do not.
func Build(fixtures []match.RealMatch) ([]Group, int) {
	buckets := make(map[string][]match.RealMatch)
	var order []string
	for _, m := range fixtures {
		label := m.League.Round
		if _, ok := buckets[label]; !ok {
			order = append(order, label)
		}
		buckets[label] = append(buckets[label], m)
	}

	type numbered struct {
		label string
		n     int
	}
	var regular []numbered
	var other []string
	for _, label := range order {
		if sub := regularSeasonRe.FindStringSubmatch(label); sub != nil {
			n, _ := strconv.Atoi(sub[1])
			regular = append(regular, numbered{label: label, n: n})
		} else {
			other = append(other, label)
		}
	}
	sort.SliceStable(regular, func(i, j int) bool { return regular[i].n < regular[j].n })

	groups := make([]Group, 0, len(order))
	for _, r := range regular {
		groups = append(groups, Group{Round: r.label, Matches: buckets[r.label]})
	}
	for _, label := range other {
		groups = append(groups, Group{Round: label, Matches: buckets[label]})
	}

	// Scan the numbered rounds backward for the last one already played.
	current := 0
	for i := len(regular) - 1; i >= 0; i-- {
		if hasFullTime(buckets[regular[i].label]) {
			current = i
			break
		}
	}
	return groups, current
}

func hasFullTime(matches []match.RealMatch) bool {
	for _, m := range matches {
		if m.Fixture.Status.Short == match.StatusFullTime {
			return true
		}
	}
	return false
}

var (
	displayRegularRe = regexp.MustCompile(`^Regular Season - (\d+)$`)
	displayLeagueRe  = regexp.MustCompile(`^League Stage - (\d+)$`)
	displayGroupRe   = regexp.MustCompile(`^Group Stage - (\d+)$`)
)

// DisplayName shortens the known round label families for presentation.
// Matches are anchored on the whole label; anything else passes through
// unchanged.
func DisplayName(round string) string {
	if sub := displayRegularRe.FindStringSubmatch(round); sub != nil {
		return "Round - " + sub[1]
	}
	if sub := displayLeagueRe.FindStringSubmatch(round); sub != nil {
		return "League R. - " + sub[1]
	}
	if sub := displayGroupRe.FindStringSubmatch(round); sub != nil {
		return "Group R. - " + sub[1]
	}
	return round
}
