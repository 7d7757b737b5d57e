// Command admin is the MegaGoal operations CLI.
//
// Usage:
//
//	megagoal-admin incomplete --page 1
//	megagoal-admin rounds --league 140 --season 2025
//	megagoal-admin settings list
//	megagoal-admin settings refresh
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/megagoal/megagoal-data/internal/config"
	"github.com/megagoal/megagoal-data/internal/db"
	"github.com/megagoal/megagoal-data/internal/reconcile"
	"github.com/megagoal/megagoal-data/internal/rounds"
	"github.com/megagoal/megagoal-data/internal/store"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "megagoal-admin",
		Short: "MegaGoal operations CLI",
	}

	root.AddCommand(incompleteCmd())
	root.AddCommand(roundsCmd())
	root.AddCommand(settingsCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// incomplete command
// --------------------------------------------------------------------------

func incompleteCmd() *cobra.Command {
	var page int
	cmd := &cobra.Command{
		Use:   "incomplete",
		Short: "List tracked fixtures whose enrichment data is missing",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPool(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				resolver := reconcile.NewResolver(
					store.NewRealMatches(pool.Pool),
					store.NewTracking(pool.Pool),
				)
				result, err := resolver.ResolveIncomplete(ctx, page)
				if err != nil {
					return err
				}
				logger.Info("Incomplete fixtures",
					"total", result.Total,
					"page", result.Page,
					"total_pages", result.TotalPages)
				for _, m := range result.Matches {
					fmt.Printf("%d\t%s\t%s vs %s\t%v\n",
						m.Fixture.ID,
						time.Unix(m.Fixture.Timestamp, 0).UTC().Format("2006-01-02"),
						m.Teams.Home.Name, m.Teams.Away.Name,
						m.Usernames)
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&page, "page", 1, "Page number (1-based, 50 per page)")
	return cmd
}

// --------------------------------------------------------------------------
// rounds command
// --------------------------------------------------------------------------

func roundsCmd() *cobra.Command {
	var leagueID, season int
	cmd := &cobra.Command{
		Use:   "rounds",
		Short: "Show the round grouping of a league-season",
		RunE: func(cmd *cobra.Command, args []string) error {
			if leagueID == 0 {
				return fmt.Errorf("--league is required")
			}
			return runWithPool(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				real := store.NewRealMatches(pool.Pool)
				matches, err := real.ByLeagueSeason(ctx, leagueID, season)
				if err != nil {
					return err
				}
				groups, current := rounds.Build(matches)
				logger.Info("Round grouping",
					"league_id", leagueID, "season", season,
					"rounds", len(groups), "current_round", current)
				for i, g := range groups {
					marker := " "
					if i == current {
						marker = "*"
					}
					fmt.Printf("%s %-30s %s (%d matches)\n",
						marker, g.Round, rounds.DisplayName(g.Round), len(g.Matches))
				}
				return nil
			})
		},
	}
	cmd.Flags().IntVar(&leagueID, "league", 0, "League ID")
	cmd.Flags().IntVar(&season, "season", time.Now().Year(), "Season year")
	return cmd
}

// --------------------------------------------------------------------------
// settings command
// --------------------------------------------------------------------------

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Inspect and maintain league settings",
	}
	cmd.AddCommand(settingsListCmd())
	cmd.AddCommand(settingsRefreshCmd())
	return cmd
}

func settingsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all league settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPool(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				settings, err := store.NewLeagueSettings(pool.Pool).All(ctx)
				if err != nil {
					return err
				}
				for _, s := range settings {
					active := "inactive"
					if s.IsActive {
						active = "active"
					}
					fmt.Printf("%-5d %-30s %-10s freq=%dh\n",
						s.LeagueID, s.LeagueName, active, s.UpdateFrequency)
				}
				return nil
			})
		},
	}
}

func settingsRefreshCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Recompute next_match for every league",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runWithPool(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				start := time.Now()
				updated, err := store.NewLeagueSettings(pool.Pool).RefreshNextMatch(ctx)
				if err != nil {
					return err
				}
				logger.Info("Next match refresh complete",
					"updated", updated,
					"duration", time.Since(start).Round(time.Millisecond))
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// runWithPool handles config loading, DB connection, and context cancellation.
func runWithPool(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
