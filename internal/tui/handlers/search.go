package handlers

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/taskdeck/internal/tui"
	"github.com/thenoetrevino/taskdeck/internal/tui/state"
)

// HandleSearchMode edits the title search or the assignee filter.
// The list filters live while typing; esc restores the old value.
func HandleSearchMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.SearchState.End()
		m.UiState.SetMode(state.NormalMode)
		return nil
	case "esc":
		applyFilterText(m, m.SearchState.Original())
		m.SearchState.End()
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	cmd := m.SearchState.Update(msg)
	applyFilterText(m, m.SearchState.Value())
	return cmd
}

func applyFilterText(m *tui.Model, text string) {
	if m.UiState.Mode() == state.AssigneeFilterMode {
		m.ListViewState.SetAssignee(text)
		return
	}
	m.ListViewState.SetSearch(text)
}
