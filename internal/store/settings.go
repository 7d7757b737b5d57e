package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/megagoal/megagoal-data/internal/match"
)

// LeagueSettings stores the per-league operational records.
type LeagueSettings struct {
	pool *pgxpool.Pool
}

// NewLeagueSettings creates a league settings store.
func NewLeagueSettings(pool *pgxpool.Pool) *LeagueSettings {
	return &LeagueSettings{pool: pool}
}

// All returns every league settings row ordered by league id.
func (s *LeagueSettings) All(ctx context.Context) ([]match.LeagueSettings, error) {
	rows, err := s.pool.Query(ctx, "league_settings_all")
	if err != nil {
		return nil, fmt.Errorf("league settings: %w", err)
	}
	defer rows.Close()

	var out []match.LeagueSettings
	for rows.Next() {
		var ls match.LeagueSettings
		if err := rows.Scan(&ls.LeagueID, &ls.LeagueName, &ls.Country,
			&ls.UpdateFrequency, &ls.IsActive, &ls.LastUpdate, &ls.NextMatch); err != nil {
			return nil, fmt.Errorf("scan league settings: %w", err)
		}
		out = append(out, ls)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate league settings: %w", err)
	}
	return out, nil
}

// SetUpdateFrequency changes how often a league's fixtures are refreshed by
// the out-of-band updater.
func (s *LeagueSettings) SetUpdateFrequency(ctx context.Context, leagueID, frequency int) error {
	tag, err := s.pool.Exec(ctx, "league_settings_set_frequency", leagueID, frequency)
	if err != nil {
		return fmt.Errorf("set update frequency: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// SetActive toggles whether a league is actively followed.
func (s *LeagueSettings) SetActive(ctx context.Context, leagueID int, active bool) error {
	tag, err := s.pool.Exec(ctx, "league_settings_set_active", leagueID, active)
	if err != nil {
		return fmt.Errorf("set active: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// RefreshNextMatch recomputes next_match for every league from the earliest
// future fixture in the catalog, clearing it where no future fixture exists.
// Two independent statements; a failure between them leaves stale values that
// the next sweep corrects.
// It returns the number of rows touched across both statements.
func (s *LeagueSettings) RefreshNextMatch(ctx context.Context) (int64, error) {
	set, err := s.pool.Exec(ctx, "league_settings_refresh_next_match")
	if err != nil {
		return 0, fmt.Errorf("refresh next match: %w", err)
	}
	cleared, err := s.pool.Exec(ctx, "league_settings_clear_next_match")
	if err != nil {
		return set.RowsAffected(), fmt.Errorf("clear next match: %w", err)
	}
	return set.RowsAffected() + cleared.RowsAffected(), nil
}
