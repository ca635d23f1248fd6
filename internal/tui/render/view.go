package render

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/taskdeck/internal/tui"
	"github.com/thenoetrevino/taskdeck/internal/tui/state"
	"github.com/thenoetrevino/taskdeck/internal/tui/theme"
)

// View is the main view dispatcher that renders the current state of the application.
// This implements the "View" part of the Model-View-Update pattern.
func View(m *tui.Model) tea.View {
	var view tea.View
	view.AltScreen = true
	view.BackgroundColor = lipgloss.Color(theme.Background)

	// Wait for terminal size to be initialized
	if m.UiState.Width() == 0 {
		view.Content = "Loading..."
		return view
	}

	// The base view always stays visible under dialogs
	layers := []*lipgloss.Layer{
		lipgloss.NewLayer(ViewBase(m)),
	}

	var modalLayer *lipgloss.Layer
	switch m.UiState.Mode() {
	case state.TaskFormMode:
		modalLayer = RenderFormLayer(m)
	case state.DetailMode:
		modalLayer = RenderDetailLayer(m)
	case state.HelpMode:
		modalLayer = RenderHelpLayer(m)
	}
	if modalLayer != nil {
		layers = append(layers, modalLayer)
	}

	view.Content = lipgloss.NewCanvas(layers...).Render()
	return view
}

// ViewBase renders the tab bar, the active view and the status bar
func ViewBase(m *tui.Model) string {
	var body string
	if m.ListViewState.IsListView() {
		body = ViewList(m)
	} else {
		body = ViewBoard(m)
	}

	parts := []string{renderTabs(m)}
	if banner := renderLoadError(m); banner != "" {
		parts = append(parts, banner)
	}
	parts = append(parts, body, renderStatusBar(m))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
