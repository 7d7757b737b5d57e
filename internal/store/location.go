package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/megagoal/megagoal-data/internal/match"
)

// Locations stores user-defined watch locations. Private locations are only
// visible to their owner; match counts are derived from tracking records at
// query time.
type Locations struct {
	pool *pgxpool.Pool
}

// NewLocations creates a location store.
func NewLocations(pool *pgxpool.Pool) *Locations {
	return &Locations{pool: pool}
}

// ForUser returns all locations visible to the user: public ones plus the
// user's own private ones, each with its tracked-match count.
func (s *Locations) ForUser(ctx context.Context, username string) ([]match.Location, error) {
	rows, err := s.pool.Query(ctx, "locations_for_user", username)
	if err != nil {
		return nil, fmt.Errorf("locations for user: %w", err)
	}
	defer rows.Close()

	var out []match.Location
	for rows.Next() {
		var l match.Location
		if err := rows.Scan(&l.ID, &l.Name, &l.Username, &l.Private, &l.Stadium, &l.Official, &l.MatchCount); err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		out = append(out, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate locations: %w", err)
	}
	return out, nil
}

// Create inserts a location owned by the user and returns its generated id.
func (s *Locations) Create(ctx context.Context, username string, l *match.Location) (string, error) {
	id := uuid.NewString()
	_, err := s.pool.Exec(ctx, "location_insert", id, l.Name, username, l.Private, l.Stadium, l.Official)
	if err != nil {
		return "", fmt.Errorf("insert location: %w", err)
	}
	return id, nil
}
