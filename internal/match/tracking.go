package match

// Tracked is a user's personal record of having watched a fixture. Identity
// is the (fixture id, username) pair; the league/team/goal fields are a
// denormalized snapshot taken at creation time and are not kept in sync with
// the canonical fixture beyond score/status updates.
type Tracked struct {
	Fixture  TrackedFixture `json:"fixture"`
	League   TrackedLeague  `json:"league"`
	Teams    TrackedTeams   `json:"teams"`
	Goals    Goals          `json:"goals"`
	Status   string         `json:"status,omitempty"`
	Location string         `json:"location,omitempty"` // opaque location id, empty = none
	Username string         `json:"username,omitempty"`
}

// TrackedFixture is the fixture reference carried by a tracking record.
type TrackedFixture struct {
	ID        int   `json:"id"`
	Timestamp int64 `json:"timestamp"`
}

// TrackedLeague is the league snapshot carried by a tracking record.
type TrackedLeague struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Round  string `json:"round"`
	Season int    `json:"season"`
}

// TrackedTeams holds both team snapshots of a tracking record.
type TrackedTeams struct {
	Home TrackedTeam `json:"home"`
	Away TrackedTeam `json:"away"`
}

// TrackedTeam is a minimal team snapshot.
type TrackedTeam struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Location is a user-defined place a match was watched at. MatchCount is
// derived from tracking records at query time, never stored.
type Location struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Private    bool   `json:"private"`
	Stadium    bool   `json:"stadium"`
	Official   bool   `json:"official"`
	MatchCount int    `json:"matchCount"`
}

// LeagueSettings is the per-league operational record: whether the league is
// actively followed and when its next fixture kicks off. NextMatch is
// recomputed from the fixture catalog by the maintenance sweep.
type LeagueSettings struct {
	LeagueID        int    `json:"league_id"`
	LeagueName      string `json:"league_name"`
	Country         string `json:"country,omitempty"`
	UpdateFrequency int    `json:"update_frequency"`
	IsActive        bool   `json:"is_active"`
	LastUpdate      string `json:"last_update,omitempty"`
	NextMatch       string `json:"next_match,omitempty"`
}
