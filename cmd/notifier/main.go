// Command notifier is the Matchfeed highlight notifier CLI.
//
// Usage:
//
//	matchfeed-notifier run
//	matchfeed-notifier check --game 2024020815
//	matchfeed-notifier seen list
//	matchfeed-notifier seen mark --game 2024020815
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/nordsport/matchfeed/internal/config"
	"github.com/nordsport/matchfeed/internal/db"
	"github.com/nordsport/matchfeed/internal/notifier"
	"github.com/nordsport/matchfeed/internal/provider/feed"
	"github.com/nordsport/matchfeed/internal/tracker"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "matchfeed-notifier",
		Short: "Matchfeed highlight notifier",
	}

	root.AddCommand(runCmd())
	root.AddCommand(checkCmd())
	root.AddCommand(seenCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// run command
// --------------------------------------------------------------------------

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run the highlight polling loop",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			store, cleanup, err := newStore(ctx, cfg)
			if err != nil {
				return err
			}
			defer cleanup()

			tr, err := tracker.New(ctx, store, cfg.RetryWindow)
			if err != nil {
				return fmt.Errorf("init tracker: %w", err)
			}
			logger.Info("Tracker loaded", "seen", tr.SeenCount(), "retry_window", cfg.RetryWindow)

			feedClient := feed.NewClient(cfg.FeedBaseURL, cfg.FeedAPIKey, cfg.FeedRatePerMinute, logger)

			var sender notifier.Sender
			if push := notifier.NewPushSender(cfg.PushEndpoint, cfg.PushAPIKey, logger); push != nil {
				sender = push
				logger.Info("Push sender configured", "endpoint", cfg.PushEndpoint)
			} else {
				logger.Info("Push sender disabled (no PUSH_ENDPOINT), logging only")
			}

			// Metrics listener
			if cfg.MetricsAddr != "" {
				go serveMetrics(ctx, cfg.MetricsAddr)
			}

			pipeline := notifier.NewPipeline(feedClient, tr, sender, logger)
			pipeline.Run(ctx, cfg.PollInterval)
			return nil
		},
	}
}

func serveMetrics(ctx context.Context, addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info("Metrics listener started", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Metrics listener failed", "error", err)
	}
}

// --------------------------------------------------------------------------
// check command
// --------------------------------------------------------------------------

func checkCmd() *cobra.Command {
	var gameID string
	cmd := &cobra.Command{
		Use:   "check",
		Short: "One-shot highlight correlation dry run for a game",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
			defer cancel()

			feedClient := feed.NewClient(cfg.FeedBaseURL, cfg.FeedAPIKey, cfg.FeedRatePerMinute, logger)

			// Dry run: in-memory seen-set, no sender.
			tr, err := tracker.New(ctx, tracker.NewMemStore(), cfg.RetryWindow)
			if err != nil {
				return fmt.Errorf("init tracker: %w", err)
			}
			pipeline := notifier.NewPipeline(feedClient, tr, nil, logger)

			game, err := feedClient.Game(ctx, gameID)
			if err != nil {
				return fmt.Errorf("fetch game: %w", err)
			}
			check, err := pipeline.CheckGame(ctx, *game)
			if err != nil {
				return fmt.Errorf("check game: %w", err)
			}

			logger.Info("Check complete",
				"game_id", gameID,
				"final_score", check.FinalScore,
				"goals", check.Goals,
				"unresolved", check.Unresolved)
			if check.Clip != nil {
				logger.Info("Clip correlated", "clip_id", check.Clip.ID, "title", check.Clip.Title)
			} else {
				logger.Info("No clip correlated yet")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&gameID, "game", "", "Game identifier")
	_ = cmd.MarkFlagRequired("game")
	return cmd
}

// --------------------------------------------------------------------------
// seen command
// --------------------------------------------------------------------------

func seenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seen",
		Short: "Inspect or mutate the seen-set",
	}
	cmd.AddCommand(seenListCmd())
	cmd.AddCommand(seenMarkCmd())
	return cmd
}

func seenListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List resolved game ids",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, store tracker.Store) error {
				ids, err := store.Load(ctx)
				if err != nil {
					return fmt.Errorf("load seen-set: %w", err)
				}
				for _, id := range ids {
					fmt.Println(id)
				}
				logger.Info("Seen-set listed", "count", len(ids))
				return nil
			})
		},
	}
}

func seenMarkCmd() *cobra.Command {
	var gameID string
	cmd := &cobra.Command{
		Use:   "mark",
		Short: "Manually resolve a game",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(func(ctx context.Context, store tracker.Store) error {
				tr, err := tracker.New(ctx, store, 0)
				if err != nil {
					return fmt.Errorf("init tracker: %w", err)
				}
				if tr.Resolved(gameID) {
					logger.Info("Already resolved", "game_id", gameID)
					return nil
				}
				if err := tr.MarkResolved(ctx, gameID); err != nil {
					return err
				}
				logger.Info("Marked resolved", "game_id", gameID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&gameID, "game", "", "Game identifier")
	_ = cmd.MarkFlagRequired("game")
	return cmd
}

// --------------------------------------------------------------------------
// Helpers
// --------------------------------------------------------------------------

// withStore opens the configured seen-set store, runs fn, and cleans up.
func withStore(fn func(ctx context.Context, store tracker.Store) error) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	store, cleanup, err := newStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	return fn(ctx, store)
}

// newStore selects the seen-set backend: Redis, then Postgres, then the
// append-only file (default).
func newStore(ctx context.Context, cfg *config.Config) (tracker.Store, func(), error) {
	switch {
	case cfg.RedisURL != "":
		store, err := tracker.NewRedisStore(ctx, cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("redis store: %w", err)
		}
		logger.Info("Seen-set store: redis")
		return store, func() { _ = store.Close() }, nil

	case cfg.DatabaseURL != "":
		pool, err := db.New(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres store: %w", err)
		}
		logger.Info("Seen-set store: postgres")
		return tracker.NewPGStore(pool.Pool), pool.Close, nil

	default:
		store, err := tracker.NewFileStore(cfg.SeenFilePath)
		if err != nil {
			return nil, nil, fmt.Errorf("file store: %w", err)
		}
		logger.Info("Seen-set store: file", "path", cfg.SeenFilePath)
		return store, func() { _ = store.Close() }, nil
	}
}
