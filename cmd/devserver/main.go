package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskdeck/internal/devserver"
	"github.com/thenoetrevino/taskdeck/internal/logging"
)

func main() {
	var (
		addr     string
		dbPath   string
		seed     bool
		latency  time.Duration
		logLevel string
	)

	cmd := &cobra.Command{
		Use:           "devserver",
		Short:         "Serve the task API over a local SQLite database",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger := logging.Setup(os.Stderr, level)

			// Set up signal handling for graceful shutdown
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			srv, db, err := devserver.Open(ctx, dbPath, seed,
				devserver.WithLogger(logger),
				devserver.WithLatency(latency))
			if err != nil {
				return err
			}
			defer db.Close()

			errCh := make(chan error, 1)
			go func() { errCh <- srv.Start(addr) }()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			slog.Info("devserver shutting down gracefully")
			shutdownCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
			defer stop()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default ~/.taskdeck/devserver.db, ':memory:' for a throwaway db)")
	cmd.Flags().BoolVar(&seed, "seed", true, "Seed demo data into an empty database")
	cmd.Flags().DurationVar(&latency, "latency", 0, "Artificial delay added to every response")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	if err := cmd.ExecuteContext(context.Background()); err != nil {
		slog.Error("devserver error", "error", err)
		os.Exit(1)
	}
}
