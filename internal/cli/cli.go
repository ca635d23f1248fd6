package cli

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/taskdeck/internal/app"
	"github.com/thenoetrevino/taskdeck/internal/config"
)

// CLI represents the CLI application context
type CLI struct {
	App    *app.App // Application container
	Config *config.Config

	// owned is false when the app was injected and belongs to the caller
	owned bool
}

// NewCLI loads the config and initializes the application container
func NewCLI(ctx context.Context) (*CLI, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return &CLI{
		App:    app.New(cfg),
		Config: cfg,
		owned:  true,
	}, nil
}

// Close cleans up CLI resources
func (c *CLI) Close() error {
	if !c.owned {
		return nil
	}
	return c.App.Close()
}
