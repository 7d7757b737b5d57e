package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/megagoal/megagoal-data/internal/match"
)

// Tracking reads and writes per-user tracking records. Every mutating call
// is scoped by username so a record can only be deleted or relocated by the
// user that created it.
type Tracking struct {
	pool *pgxpool.Pool
}

// NewTracking creates a tracking record store.
func NewTracking(pool *pgxpool.Pool) *Tracking {
	return &Tracking{pool: pool}
}

// TrackedFixtureIDs returns the distinct fixture ids referenced by any
// tracking record, regardless of user.
func (s *Tracking) TrackedFixtureIDs(ctx context.Context) ([]int, error) {
	rows, err := s.pool.Query(ctx, "tracked_fixture_ids")
	if err != nil {
		return nil, fmt.Errorf("tracked fixture ids: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan fixture id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate fixture ids: %w", err)
	}
	return ids, nil
}

// UsernamesByFixture returns, for each fixture id in the set, the usernames
// tracking it. Fixture ids with no trackers are absent from the result.
func (s *Tracking) UsernamesByFixture(ctx context.Context, fixtureIDs []int) (map[int][]string, error) {
	rows, err := s.pool.Query(ctx, "usernames_by_fixture", fixtureIDs)
	if err != nil {
		return nil, fmt.Errorf("usernames by fixture: %w", err)
	}
	defer rows.Close()

	out := make(map[int][]string)
	for rows.Next() {
		var (
			id       int
			username string
		)
		if err := rows.Scan(&id, &username); err != nil {
			return nil, fmt.Errorf("scan username: %w", err)
		}
		out[id] = append(out[id], username)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate usernames: %w", err)
	}
	return out, nil
}

// TrackedFilter narrows a user's tracking list. Zero values disable a clause.
type TrackedFilter struct {
	TeamID int
	Season int
}

// ByUser returns tracking records of one user matching the filter, newest
// kickoff first.
func (s *Tracking) ByUser(ctx context.Context, username string, f TrackedFilter) ([]match.Tracked, error) {
	rows, err := s.pool.Query(ctx, "matches_by_user", username, f.TeamID, f.Season)
	if err != nil {
		return nil, fmt.Errorf("matches by user: %w", err)
	}
	defer rows.Close()

	var out []match.Tracked
	for rows.Next() {
		var (
			t          match.Tracked
			locationID *string
		)
		if err := rows.Scan(
			&t.Fixture.ID, &t.Fixture.Timestamp,
			&t.League.ID, &t.League.Name, &t.League.Round, &t.League.Season,
			&t.Teams.Home.ID, &t.Teams.Home.Name, &t.Teams.Away.ID, &t.Teams.Away.Name,
			&t.Goals.Home, &t.Goals.Away, &t.Status, &locationID,
		); err != nil {
			return nil, fmt.Errorf("scan tracked match: %w", err)
		}
		if locationID != nil {
			t.Location = *locationID
		}
		t.Username = username
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate tracked matches: %w", err)
	}
	return out, nil
}

// Create inserts a tracking record for the given user. Returns ErrDuplicate
// when the user already tracks the fixture.
func (s *Tracking) Create(ctx context.Context, username string, t *match.Tracked) error {
	var locationID *string
	if t.Location != "" {
		locationID = &t.Location
	}
	tag, err := s.pool.Exec(ctx, "match_insert",
		t.Fixture.ID, username, t.Fixture.Timestamp,
		t.League.ID, t.League.Name, t.League.Round, t.League.Season,
		t.Teams.Home.ID, t.Teams.Home.Name, t.Teams.Away.ID, t.Teams.Away.Name,
		t.Goals.Home, t.Goals.Away, t.Status, locationID,
	)
	if err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDuplicate
	}
	return nil
}

// Delete removes the user's tracking record for a fixture. Returns
// ErrNotFound when no record of that user exists for the fixture.
func (s *Tracking) Delete(ctx context.Context, username string, fixtureID int) error {
	tag, err := s.pool.Exec(ctx, "match_delete", fixtureID, username)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Relocate reassigns the location of the user's tracking record. An empty
// locationID clears the location.
func (s *Tracking) Relocate(ctx context.Context, username string, fixtureID int, locationID string) error {
	var loc *string
	if locationID != "" {
		loc = &locationID
	}
	tag, err := s.pool.Exec(ctx, "match_relocate", fixtureID, username, loc)
	if err != nil {
		return fmt.Errorf("relocate match: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
