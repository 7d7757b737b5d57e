// Package match defines the football match types shared by the stores and
// the reconciliation engine: canonical fixtures from the external provider
// ("real matches") and per-user tracking records ("matches").
package match

// RealMatch is one canonical fixture from the external data provider,
// including enrichment arrays once they have been fetched.
type RealMatch struct {
	Fixture    Fixture          `json:"fixture"`
	League     League           `json:"league"`
	Teams      Teams            `json:"teams"`
	Goals      Goals            `json:"goals"`
	Score      Score            `json:"score"`
	Statistics []TeamStatistics `json:"statistics,omitempty"`
	Lineups    []Lineup         `json:"lineups,omitempty"`
	Events     []Event          `json:"events,omitempty"`

	// Usernames lists the users tracking this fixture. Populated only by
	// the completeness resolver, for display; never persisted.
	Usernames []string `json:"usernames,omitempty"`
}

// HasEnrichment reports whether all three enrichment arrays are present.
// A fixture is either fully enriched or not enriched at all; there is no
// valid partially-populated state to preserve, only to detect.
func (m *RealMatch) HasEnrichment() bool {
	return len(m.Statistics) > 0 && len(m.Lineups) > 0 && len(m.Events) > 0
}

// Fixture carries the identity, schedule, and status of a real match.
type Fixture struct {
	ID        int     `json:"id"`
	Referee   string  `json:"referee,omitempty"`
	Timezone  string  `json:"timezone,omitempty"`
	Date      string  `json:"date"`
	Timestamp int64   `json:"timestamp"` // kickoff, epoch seconds
	Periods   Periods `json:"periods"`
	Venue     Venue   `json:"venue"`
	Status    Status  `json:"status"`
}

// Periods holds the kickoff timestamps of each half, zero when not played.
type Periods struct {
	First  int64 `json:"first,omitempty"`
	Second int64 `json:"second,omitempty"`
}

// Venue is the stadium a fixture is played at.
type Venue struct {
	ID   int    `json:"id,omitempty"`
	Name string `json:"name,omitempty"`
	City string `json:"city,omitempty"`
}

// Status is the provider-assigned fixture status.
type Status struct {
	Long    string `json:"long,omitempty"`
	Short   string `json:"short"`
	Elapsed int    `json:"elapsed,omitempty"`
}

// League identifies the competition, season, and round of a fixture.
type League struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
	Logo    string `json:"logo,omitempty"`
	Flag    string `json:"flag,omitempty"`
	Season  int    `json:"season"`
	Round   string `json:"round"`
}

// Teams holds both sides of a fixture.
type Teams struct {
	Home Team `json:"home"`
	Away Team `json:"away"`
}

// Team is one side of a fixture.
type Team struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Logo   string `json:"logo,omitempty"`
	Winner *bool  `json:"winner,omitempty"`
}

// Goals is a home/away goal count. Nil means not yet known.
type Goals struct {
	Home *int `json:"home"`
	Away *int `json:"away"`
}

// Score breaks the final score down by phase.
type Score struct {
	Halftime  Goals `json:"halftime"`
	Fulltime  Goals `json:"fulltime"`
	Extratime Goals `json:"extratime"`
	Penalty   Goals `json:"penalty"`
}

// TeamStatistics is one team's stat block within a fixture.
type TeamStatistics struct {
	Team       Team        `json:"team"`
	Statistics []StatValue `json:"statistics"`
}

// StatValue is a single named statistic. Value is string, number, or null
// depending on the stat type, so it stays untyped.
type StatValue struct {
	Type  string `json:"type"`
	Value any    `json:"value"`
}

// Lineup is one team's lineup for a fixture.
type Lineup struct {
	Team        Team           `json:"team"`
	Formation   string         `json:"formation,omitempty"`
	StartXI     []LineupPlayer `json:"startXI"`
	Substitutes []LineupPlayer `json:"substitutes"`
	Coach       *Coach         `json:"coach,omitempty"`
}

// LineupPlayer wraps a player entry in a lineup.
type LineupPlayer struct {
	Player Player `json:"player"`
}

// Player is a lineup participant.
type Player struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Number int    `json:"number,omitempty"`
	Pos    string `json:"pos,omitempty"`
	Grid   string `json:"grid,omitempty"`
}

// Coach is a team's coach in a lineup.
type Coach struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Photo string `json:"photo,omitempty"`
}

// Event is a single in-match event (goal, card, substitution, VAR).
type Event struct {
	Time     EventTime `json:"time"`
	Team     Team      `json:"team"`
	Player   Player    `json:"player"`
	Assist   *Player   `json:"assist,omitempty"`
	Type     string    `json:"type"`
	Detail   string    `json:"detail"`
	Comments string    `json:"comments,omitempty"`
}

// EventTime is the match minute an event occurred at.
type EventTime struct {
	Elapsed int `json:"elapsed"`
	Extra   int `json:"extra,omitempty"`
}
