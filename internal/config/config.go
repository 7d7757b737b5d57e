// Package config provides centralized configuration loaded from environment
// variables. Shared by both cmd/api and cmd/admin.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// --------------------------------------------------------------------------
// League registry — static ids, matches the provider's catalog
// --------------------------------------------------------------------------

// TopLeagueIDs are the competitions surfaced by the team filters.
var TopLeagueIDs = []int{
	2,   // UEFA Champions League
	3,   // UEFA Europa League
	39,  // Premier League
	140, // La Liga
	143, // Copa del Rey
	45,  // FA Cup
	135, // Serie A
	78,  // Bundesliga
	61,  // Ligue 1
	556, // Super Lig
	531, // Primeira Liga
	848, // Eredivisie
	4,   // UEFA Europa Conference League
	1,   // World Cup
	9,   // Copa Libertadores
	40,  // Championship
	48,  // EFL Cup
	5,   // UEFA Nations League
	15,  // FIFA Club World Cup
	10,  // Friendlies
	667, // Friendlies Clubs
}

// friendlyLeagueIDs are the competitions sorted to the bottom of the daily
// grouped view.
var friendlyLeagueIDs = map[int]bool{
	10:  true, // Friendlies
	667: true, // Friendlies Clubs
}

// IsFriendlyLeague reports whether a league id is a friendlies competition.
func IsFriendlyLeague(id int) bool {
	return friendlyLeagueIDs[id]
}

// IsTopLeague reports whether a league id is in the top-league registry.
func IsTopLeague(id int) bool {
	for _, l := range TopLeagueIDs {
		if l == id {
			return true
		}
	}
	return false
}

// --------------------------------------------------------------------------
// Table names — single source of truth, matches schema.sql
// --------------------------------------------------------------------------

const (
	RealMatchesTable    = "real_matches"
	MatchesTable        = "matches"
	LocationsTable      = "locations"
	LeagueSettingsTable = "league_settings"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Database
	DatabaseURL    string
	DBPoolMinConns int
	DBPoolMaxConns int
	DBPoolMaxLife  time.Duration

	// API server
	APIHost     string
	APIPort     int
	Environment string // development, staging, production
	Debug       bool

	// CORS
	CORSAllowOrigins []string

	// Rate limiting
	RateLimitEnabled  bool
	RateLimitRequests int
	RateLimitWindow   time.Duration

	// Maintenance
	NextMatchRefreshInterval time.Duration

	// Cache
	CacheEnabled bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (*Config, error) {
	dbURL := envOr("MEGAGOAL_DATABASE_URL", envOr("DATABASE_URL", ""))
	if dbURL == "" {
		return nil, fmt.Errorf("MEGAGOAL_DATABASE_URL or DATABASE_URL must be set")
	}

	return &Config{
		DatabaseURL:    dbURL,
		DBPoolMinConns: envInt("DB_POOL_MIN_CONNS", 2),
		DBPoolMaxConns: envInt("DB_POOL_MAX_CONNS", 10),
		DBPoolMaxLife:  time.Duration(envInt("DB_POOL_MAX_LIFE_MINUTES", 30)) * time.Minute,

		APIHost:     envOr("API_HOST", "0.0.0.0"),
		APIPort:     envInt("API_PORT", envInt("PORT", 3150)),
		Environment: envOr("ENVIRONMENT", "development"),
		Debug:       envBool("DEBUG", false),

		CORSAllowOrigins: envList("CORS_ALLOW_ORIGINS", []string{
			"http://localhost:4200",
			"http://localhost:3000",
		}),

		RateLimitEnabled:  envBool("RATE_LIMIT_ENABLED", true),
		RateLimitRequests: envInt("RATE_LIMIT_REQUESTS", 100),
		RateLimitWindow:   time.Duration(envInt("RATE_LIMIT_WINDOW", 60)) * time.Second,

		NextMatchRefreshInterval: time.Duration(envInt("NEXT_MATCH_REFRESH_MINUTES", 30)) * time.Minute,

		CacheEnabled: envBool("CACHE_ENABLED", true),
	}, nil
}

// IsProduction returns true if running in production environment.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return fallback
}

func envList(key string, fallback []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		result := make([]string, 0, len(parts))
		for _, p := range parts {
			if trimmed := strings.TrimSpace(p); trimmed != "" {
				result = append(result, trimmed)
			}
		}
		if len(result) > 0 {
			return result
		}
	}
	return fallback
}
