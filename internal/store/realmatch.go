package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/megagoal/megagoal-data/internal/match"
)

// RealMatches reads the canonical fixture catalog. The engine never writes
// to it; ingestion happens out-of-band.
type RealMatches struct {
	pool *pgxpool.Pool
}

// NewRealMatches creates a fixture catalog reader.
func NewRealMatches(pool *pgxpool.Pool) *RealMatches {
	return &RealMatches{pool: pool}
}

// ByID returns a single fixture.
func (s *RealMatches) ByID(ctx context.Context, fixtureID int) (*match.RealMatch, error) {
	row := s.pool.QueryRow(ctx, "real_match_by_id", fixtureID)
	m, err := scanRealMatch(row)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("real match %d: %w", fixtureID, err)
	}
	return m, nil
}

// ByLeagueSeason returns all fixtures of one league-season ordered by
// kickoff then fixture id. The stable order pins the first-encountered
// ordering the round grouper relies on for non-numbered rounds.
func (s *RealMatches) ByLeagueSeason(ctx context.Context, leagueID, season int) ([]match.RealMatch, error) {
	rows, err := s.pool.Query(ctx, "real_matches_by_league_season", leagueID, season)
	if err != nil {
		return nil, fmt.Errorf("real matches league=%d season=%d: %w", leagueID, season, err)
	}
	return collectRealMatches(rows)
}

// ByTeamSeason returns all fixtures a team played in a season.
func (s *RealMatches) ByTeamSeason(ctx context.Context, teamID, season int) ([]match.RealMatch, error) {
	rows, err := s.pool.Query(ctx, "real_matches_by_team_season", teamID, season)
	if err != nil {
		return nil, fmt.Errorf("real matches team=%d season=%d: %w", teamID, season, err)
	}
	return collectRealMatches(rows)
}

// ByDate returns all fixtures kicking off on one UTC calendar day.
func (s *RealMatches) ByDate(ctx context.Context, day time.Time) ([]match.RealMatch, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.Add(24 * time.Hour)
	rows, err := s.pool.Query(ctx, "real_matches_by_range", start.Unix(), end.Unix())
	if err != nil {
		return nil, fmt.Errorf("real matches date=%s: %w", start.Format("2006-01-02"), err)
	}
	return collectRealMatches(rows)
}

// IncompleteCount counts fixtures from the id set whose statistics, lineups,
// and events are all absent. The count is independent of how many users track
// each fixture.
func (s *RealMatches) IncompleteCount(ctx context.Context, fixtureIDs []int) (int, error) {
	var n int
	if err := s.pool.QueryRow(ctx, "incomplete_count", fixtureIDs).Scan(&n); err != nil {
		return 0, fmt.Errorf("incomplete count: %w", err)
	}
	return n, nil
}

// IncompletePage returns one page of under-enriched fixtures from the id set,
// ordered by kickoff descending.
func (s *RealMatches) IncompletePage(ctx context.Context, fixtureIDs []int, limit, offset int) ([]match.RealMatch, error) {
	rows, err := s.pool.Query(ctx, "incomplete_page", fixtureIDs, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("incomplete page: %w", err)
	}
	return collectRealMatches(rows)
}

// --------------------------------------------------------------------------
// Row scanning
// --------------------------------------------------------------------------

func collectRealMatches(rows pgx.Rows) ([]match.RealMatch, error) {
	defer rows.Close()
	var out []match.RealMatch
	for rows.Next() {
		m, err := scanRealMatch(rows)
		if err != nil {
			return nil, fmt.Errorf("scan real match: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate real matches: %w", err)
	}
	return out, nil
}

// scanRealMatch reads one row in db.RealMatchColumns order.
func scanRealMatch(row pgx.Row) (*match.RealMatch, error) {
	var (
		m            match.RealMatch
		referee      *string
		timezone     *string
		periodFirst  *int64
		periodSecond *int64
		venueID      *int
		venueName    *string
		venueCity    *string
		statusLong   *string
		elapsed      *int
		homeTeamID   int
		awayTeamID   int
		teamsJSON    []byte
		goalsJSON    []byte
		scoreJSON    []byte
		statsJSON    []byte
		lineupsJSON  []byte
		eventsJSON   []byte
	)

	err := row.Scan(
		&m.Fixture.ID, &referee, &timezone, &m.Fixture.Date, &m.Fixture.Timestamp,
		&periodFirst, &periodSecond, &venueID, &venueName, &venueCity,
		&statusLong, &m.Fixture.Status.Short, &elapsed,
		&m.League.ID, &m.League.Name, &m.League.Country, &m.League.Logo, &m.League.Flag,
		&m.League.Season, &m.League.Round,
		&homeTeamID, &awayTeamID, &teamsJSON, &goalsJSON, &scoreJSON,
		&statsJSON, &lineupsJSON, &eventsJSON,
	)
	if err != nil {
		return nil, err
	}

	if referee != nil {
		m.Fixture.Referee = *referee
	}
	if timezone != nil {
		m.Fixture.Timezone = *timezone
	}
	if periodFirst != nil {
		m.Fixture.Periods.First = *periodFirst
	}
	if periodSecond != nil {
		m.Fixture.Periods.Second = *periodSecond
	}
	if venueID != nil {
		m.Fixture.Venue.ID = *venueID
	}
	if venueName != nil {
		m.Fixture.Venue.Name = *venueName
	}
	if venueCity != nil {
		m.Fixture.Venue.City = *venueCity
	}
	if statusLong != nil {
		m.Fixture.Status.Long = *statusLong
	}
	if elapsed != nil {
		m.Fixture.Status.Elapsed = *elapsed
	}

	if err := json.Unmarshal(teamsJSON, &m.Teams); err != nil {
		return nil, fmt.Errorf("teams json: %w", err)
	}
	if err := json.Unmarshal(goalsJSON, &m.Goals); err != nil {
		return nil, fmt.Errorf("goals json: %w", err)
	}
	if err := json.Unmarshal(scoreJSON, &m.Score); err != nil {
		return nil, fmt.Errorf("score json: %w", err)
	}
	if err := unmarshalEnrichment(statsJSON, &m.Statistics); err != nil {
		return nil, fmt.Errorf("statistics json: %w", err)
	}
	if err := unmarshalEnrichment(lineupsJSON, &m.Lineups); err != nil {
		return nil, fmt.Errorf("lineups json: %w", err)
	}
	if err := unmarshalEnrichment(eventsJSON, &m.Events); err != nil {
		return nil, fmt.Errorf("events json: %w", err)
	}
	return &m, nil
}

// unmarshalEnrichment tolerates the three equivalent "absent" encodings:
// SQL NULL, JSON null, and an empty array all leave the target nil.
func unmarshalEnrichment[T any](raw []byte, target *[]T) error {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var parsed []T
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return err
	}
	if len(parsed) > 0 {
		*target = parsed
	}
	return nil
}
