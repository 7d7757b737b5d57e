// Package maintenance runs periodic background tasks as Go tickers.
// Replaces external cron — all scheduled work is driven from Go since the
// API is already a persistent, long-running service.
package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/megagoal/megagoal-data/internal/store"
)

// Config controls maintenance task intervals. Zero duration disables a task.
type Config struct {
	NextMatchInterval time.Duration // league_settings.next_match recomputation
}

// DefaultConfig returns sensible production defaults.
func DefaultConfig() Config {
	return Config{
		NextMatchInterval: 30 * time.Minute,
	}
}

// Start launches all configured maintenance tickers. Blocks until ctx is
// cancelled. Intended to be called with `go`.
func Start(ctx context.Context, pool *pgxpool.Pool, cfg Config, logger *slog.Logger) {
	logger.Info("Maintenance tickers started",
		"next_match", cfg.NextMatchInterval)

	settings := store.NewLeagueSettings(pool)

	tickers := make([]*time.Ticker, 0, 1)
	defer func() {
		for _, t := range tickers {
			t.Stop()
		}
	}()

	// Next match: keep league_settings.next_match pointing at the earliest
	// upcoming fixture of each active league
	if cfg.NextMatchInterval > 0 {
		t := time.NewTicker(cfg.NextMatchInterval)
		tickers = append(tickers, t)
		go runLoop(ctx, t.C, func() { refreshNextMatches(ctx, settings, logger) })
	}

	<-ctx.Done()
	logger.Info("Maintenance tickers stopped")
}

func runLoop(ctx context.Context, ch <-chan time.Time, fn func()) {
	for {
		select {
		case <-ch:
			fn()
		case <-ctx.Done():
			return
		}
	}
}

// --------------------------------------------------------------------------
// Task implementations
// --------------------------------------------------------------------------

// refreshNextMatches recomputes next_match for every active league and clears
// entries whose fixture has already kicked off. Also invoked on demand by the
// admin CLI.
func refreshNextMatches(ctx context.Context, settings *store.LeagueSettings, logger *slog.Logger) {
	start := time.Now()
	updated, err := settings.RefreshNextMatch(ctx)
	dur := time.Since(start).Round(time.Millisecond)

	if err != nil {
		logger.Warn("Next match refresh failed", "duration", dur, "error", err)
		return
	}
	if updated > 0 {
		logger.Info("Next match refresh", "updated", updated, "duration", dur)
	}
}
