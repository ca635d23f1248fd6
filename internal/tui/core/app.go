package core

import (
	"context"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/taskdeck/internal/app"
	"github.com/thenoetrevino/taskdeck/internal/tui"
	"github.com/thenoetrevino/taskdeck/internal/tui/handlers"
	"github.com/thenoetrevino/taskdeck/internal/tui/modelops"
	"github.com/thenoetrevino/taskdeck/internal/tui/render"
)

// App wraps the TUI Model and implements the tea.Model interface.
// This is the single entry point for the Bubble Tea application.
type App struct {
	model *tui.Model
}

// New creates a new App with an initialized Model.
func New(ctx context.Context, a *app.App) *App {
	model := tui.InitialModel(ctx, a)
	return &App{model: &model}
}

// Init starts the initial load and the store subscription.
// Implements tea.Model interface.
func (a *App) Init() tea.Cmd {
	a.model.SubscriptionStarted = true
	return tea.Batch(
		modelops.SubscribeToStore(a.model),
		modelops.LoadData(a.model),
	)
}

// Update delegates to the handlers package.
// Implements tea.Model interface.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return a, handlers.Update(a.model, msg)
}

// View delegates to the render package.
// Implements tea.Model interface.
func (a *App) View() tea.View {
	return render.View(a.model)
}

// Close releases the store subscription
func (a *App) Close() {
	a.model.Close()
}

// GetModel returns the underlying Model.
// This is primarily useful for testing purposes.
func (a *App) GetModel() *tui.Model {
	return a.model
}
