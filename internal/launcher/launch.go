package launcher

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/taskdeck/internal/app"
	"github.com/thenoetrevino/taskdeck/internal/config"
	"github.com/thenoetrevino/taskdeck/internal/tui/components"
	"github.com/thenoetrevino/taskdeck/internal/tui/core"
)

// shutdownGrace bounds how long in-flight requests may run after a signal
const shutdownGrace = 2 * time.Second

// Launch starts the TUI application
func Launch(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	components.InitStyles(cfg.ColorScheme)

	// Create root context with signal handling for graceful shutdown
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	application := app.New(cfg, app.WithRefetchOnInvalidate(true))
	defer func() {
		if err := application.Close(); err != nil {
			slog.Error("error closing app", "error", err)
		}
	}()

	tuiApp := core.New(ctx, application)
	defer tuiApp.Close()

	p := tea.NewProgram(tuiApp, tea.WithContext(ctx))

	// goroutine to monitor cancellation
	errChan := make(chan error, 1)
	go func() {
		_, err := p.Run()
		errChan <- err
	}()

	select {
	case err := <-errChan:
		if err != nil {
			return fmt.Errorf("error running program: %w", err)
		}
	case <-ctx.Done():
		slog.Info("shutdown signal received, cleaning up")
		// Drags and saves detach from ctx; give them a moment to land
		select {
		case <-errChan:
		case <-time.After(shutdownGrace):
		}
	}

	slog.Info("tui stopped", "base_url", cfg.API.BaseURL)
	return nil
}
