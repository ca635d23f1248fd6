package handlers

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/taskdeck/internal/mutation"
	"github.com/thenoetrevino/taskdeck/internal/tui"
	"github.com/thenoetrevino/taskdeck/internal/tui/state"
)

// HandleHelpMode closes the help screen on any of its close keys
func HandleHelpMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch keyString(msg) {
	case m.Config.KeyMappings.ShowHelp, m.Config.KeyMappings.Quit, "esc", "enter":
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}

// HandleDetailMode handles the read-only task view
func HandleDetailMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	km := m.Config.KeyMappings
	switch keyString(msg) {
	case km.EditTask:
		task, ok := m.FindTask(m.UiState.DetailTaskID())
		if !ok {
			return nil
		}
		m.FormState.Load(mutation.FormFromTask(task), &task)
		return openForm(m)
	case km.ViewTask, km.Quit, "esc", "enter":
		m.UiState.SetMode(state.NormalMode)
	}
	return nil
}
