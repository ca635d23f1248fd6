package cli

import (
	"context"

	"github.com/thenoetrevino/taskdeck/internal/app"
)

type contextKey struct{}

// WithCLI stores an existing CLI on ctx. Commands run with this context
// reuse it instead of building their own.
func WithCLI(ctx context.Context, c *CLI) context.Context {
	return context.WithValue(ctx, contextKey{}, c)
}

// WithApp stores an application container on ctx. The caller keeps
// ownership and closes it.
func WithApp(ctx context.Context, a *app.App) context.Context {
	return WithCLI(ctx, &CLI{App: a, Config: a.Config})
}

// GetCLIFromContext returns the CLI stored on ctx, or initializes a new one
func GetCLIFromContext(ctx context.Context) (*CLI, error) {
	if ctx != nil {
		if c, ok := ctx.Value(contextKey{}).(*CLI); ok && c != nil {
			return c, nil
		}
	} else {
		ctx = context.Background()
	}
	return NewCLI(ctx)
}
