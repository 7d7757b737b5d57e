// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/megagoal/megagoal-data/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// RealMatchColumns is the canonical fixture select list, shared by every
// real_matches read so row scanning stays uniform.
const RealMatchColumns = `fixture_id, referee, timezone, kickoff_date, kickoff_ts,
	period_first, period_second, venue_id, venue_name, venue_city,
	status_long, status_short, elapsed,
	league_id, league_name, league_country, league_logo, league_flag, season, round,
	home_team_id, away_team_id, teams, goals, score, statistics, lineups, events`

// EnrichmentMissing renders the single semantic "enrichment absent" condition
// for one JSONB array column: column missing from the document maps to SQL
// NULL, an explicit JSON null and an empty array both count as absent. The
// three per-field clauses are always combined with AND — building them from
// one helper keeps the filter from collapsing to "last clause wins".
func EnrichmentMissing(column string) string {
	return fmt.Sprintf("(%[1]s IS NULL OR %[1]s = 'null'::jsonb OR %[1]s = '[]'::jsonb)", column)
}

// IncompleteFilter matches fixtures with none of the three enrichment arrays.
var IncompleteFilter = EnrichmentMissing("statistics") +
	" AND " + EnrichmentMissing("lineups") +
	" AND " + EnrichmentMissing("events")

// registerPreparedStatements registers all statements the API and admin
// layers use. Prepared statements eliminate parse overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Fixture catalog reads
		"real_match_by_id": "SELECT " + RealMatchColumns +
			" FROM real_matches WHERE fixture_id = $1",
		"real_matches_by_league_season": "SELECT " + RealMatchColumns +
			" FROM real_matches WHERE league_id = $1 AND season = $2 ORDER BY kickoff_ts, fixture_id",
		"real_matches_by_team_season": "SELECT " + RealMatchColumns +
			" FROM real_matches WHERE (home_team_id = $1 OR away_team_id = $1) AND season = $2 ORDER BY kickoff_ts, fixture_id",
		"real_matches_by_range": "SELECT " + RealMatchColumns +
			" FROM real_matches WHERE kickoff_ts >= $1 AND kickoff_ts < $2 ORDER BY kickoff_ts, fixture_id",

		// Completeness resolver. Count and page share the same filter; the
		// count must never involve the tracking collection (one fixture
		// tracked by five users still counts once).
		"incomplete_count": "SELECT COUNT(*) FROM real_matches WHERE fixture_id = ANY($1) AND " + IncompleteFilter,
		"incomplete_page": "SELECT " + RealMatchColumns +
			" FROM real_matches WHERE fixture_id = ANY($1) AND " + IncompleteFilter +
			" ORDER BY kickoff_ts DESC, fixture_id DESC LIMIT $2 OFFSET $3",

		// Tracking records
		"tracked_fixture_ids": "SELECT DISTINCT fixture_id FROM matches",
		"usernames_by_fixture": "SELECT fixture_id, username FROM matches" +
			" WHERE fixture_id = ANY($1) ORDER BY fixture_id, username",
		// Optional team/season filter: zero disables a clause.
		"matches_by_user": "SELECT fixture_id, fixture_ts, league_id, league_name, round, season," +
			" home_team_id, home_team_name, away_team_id, away_team_name," +
			" goals_home, goals_away, status, location_id" +
			" FROM matches WHERE username = $1" +
			" AND ($2 = 0 OR home_team_id = $2 OR away_team_id = $2)" +
			" AND ($3 = 0 OR season = $3)" +
			" ORDER BY fixture_ts DESC, fixture_id DESC",
		"match_insert": "INSERT INTO matches (fixture_id, username, fixture_ts, league_id, league_name, round, season," +
			" home_team_id, home_team_name, away_team_id, away_team_name, goals_home, goals_away, status, location_id)" +
			" VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)" +
			" ON CONFLICT (fixture_id, username) DO NOTHING",
		"match_delete":   "DELETE FROM matches WHERE fixture_id = $1 AND username = $2",
		"match_relocate": "UPDATE matches SET location_id = $3 WHERE fixture_id = $1 AND username = $2",

		// Locations, with per-user visibility and derived match counts
		"locations_for_user": "SELECT l.id, l.name, l.username, l.private, l.stadium, l.official," +
			" COUNT(m.fixture_id) AS match_count" +
			" FROM locations l LEFT JOIN matches m ON m.location_id = l.id" +
			" WHERE NOT l.private OR l.username = $1" +
			" GROUP BY l.id, l.name, l.username, l.private, l.stadium, l.official" +
			" ORDER BY l.name",
		"location_insert": "INSERT INTO locations (id, name, username, private, stadium, official)" +
			" VALUES ($1, $2, $3, $4, $5, $6)",

		// League settings
		"league_settings_all": "SELECT league_id, league_name, country, update_frequency, is_active," +
			" COALESCE(to_char(last_update AT TIME ZONE 'UTC', 'YYYY-MM-DD\"T\"HH24:MI:SS\"Z\"'), '')," +
			" COALESCE(to_char(next_match AT TIME ZONE 'UTC', 'YYYY-MM-DD\"T\"HH24:MI:SS\"Z\"'), '')" +
			" FROM league_settings ORDER BY league_id",
		"league_settings_set_frequency": "UPDATE league_settings SET update_frequency = $2 WHERE league_id = $1",
		"league_settings_set_active":    "UPDATE league_settings SET is_active = $2 WHERE league_id = $1",

		// Maintenance: derive next_match from the earliest future fixture
		"league_settings_refresh_next_match": `
			UPDATE league_settings ls
			SET next_match = sub.next_kickoff
			FROM (
				SELECT league_id, to_timestamp(MIN(kickoff_ts)) AS next_kickoff
				FROM real_matches
				WHERE kickoff_ts >= EXTRACT(EPOCH FROM NOW())
				GROUP BY league_id
			) sub
			WHERE ls.league_id = sub.league_id`,
		"league_settings_clear_next_match": `
			UPDATE league_settings ls
			SET next_match = NULL
			WHERE NOT EXISTS (
				SELECT 1 FROM real_matches rm
				WHERE rm.league_id = ls.league_id
				  AND rm.kickoff_ts >= EXTRACT(EPOCH FROM NOW())
			)`,
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
