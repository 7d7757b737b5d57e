package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadRequiresDatabaseURL(t *testing.T) {
	t.Setenv("MEGAGOAL_DATABASE_URL", "")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/megagoal")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 3150, cfg.APIPort)
	require.Equal(t, "development", cfg.Environment)
	require.False(t, cfg.IsProduction())
	require.True(t, cfg.RateLimitEnabled)
	require.Equal(t, 30*time.Minute, cfg.NextMatchRefreshInterval)
	require.Contains(t, cfg.CORSAllowOrigins, "http://localhost:4200")
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MEGAGOAL_DATABASE_URL", "postgres://db/megagoal")
	t.Setenv("API_PORT", "8080")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("CORS_ALLOW_ORIGINS", "https://megagoal.app, https://admin.megagoal.app")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, "postgres://db/megagoal", cfg.DatabaseURL)
	require.Equal(t, 8080, cfg.APIPort)
	require.True(t, cfg.IsProduction())
	require.Equal(t, []string{"https://megagoal.app", "https://admin.megagoal.app"}, cfg.CORSAllowOrigins)
}

func TestLeagueRegistry(t *testing.T) {
	require.True(t, IsFriendlyLeague(10))
	require.True(t, IsFriendlyLeague(667))
	require.False(t, IsFriendlyLeague(39))

	require.True(t, IsTopLeague(39))
	require.True(t, IsTopLeague(140))
	require.False(t, IsTopLeague(9999))
}
