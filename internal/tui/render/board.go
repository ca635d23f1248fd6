package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/projections"
	"github.com/thenoetrevino/taskdeck/internal/tui"
	"github.com/thenoetrevino/taskdeck/internal/tui/components"
	"github.com/thenoetrevino/taskdeck/internal/tui/notifications"
	"github.com/thenoetrevino/taskdeck/internal/tui/state"
)

// ViewBoard renders the three status columns of the selected board
func ViewBoard(m *tui.Model) string {
	if len(m.Boards) == 0 {
		if m.Snapshot.Loading() {
			return components.SubtleStyle.Render("Loading boards...")
		}
		return components.SubtleStyle.Render("No boards")
	}

	cols := m.Columns()
	width := max(m.UiState.Width()/models.NumColumns-1, 1)
	height := bodyHeight(m)

	rendered := make([]string, 0, models.NumColumns)
	for i, opt := range models.Statuses() {
		selected := i == m.UiState.SelectedColumn()
		cursor := -1
		if selected {
			cursor = m.UiState.SelectedTask()
		}
		rendered = append(rendered, components.RenderColumn(components.ColumnProps{
			Title:        opt.Label,
			Tasks:        cols[i],
			Selected:     selected,
			SelectedTask: cursor,
			Width:        width,
			Height:       height,
		}))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// bodyHeight is the space between the tab bar and the status bar
func bodyHeight(m *tui.Model) int {
	h := m.UiState.Height() - components.ChromeLines
	if m.Snapshot.HasError() {
		h--
	}
	return max(h, 1)
}

func renderTabs(m *tui.Model) string {
	names := make([]string, 0, len(m.Boards))
	for _, b := range m.Boards {
		names = append(names, b.Name)
	}
	if len(names) == 0 {
		names = append(names, "taskdeck")
	}

	selected := m.UiState.SelectedBoard()
	if m.ListViewState.IsListView() {
		selected = -1
	}

	var note string
	if n, ok := m.NotificationState.Latest(); ok {
		note = notifications.RenderInlineFromState(n)
	}
	return components.RenderTabs(names, selected, m.UiState.Width(), note)
}

// renderLoadError shows why the last load failed. The data from the
// previous load stays on screen below it.
func renderLoadError(m *tui.Model) string {
	if !m.Snapshot.HasError() {
		return ""
	}
	return components.ErrorBannerStyle.Render("⚠ Could not load tasks: " + m.Snapshot.Error + " (r to retry)")
}

func renderStatusBar(m *tui.Model) string {
	var left string
	switch {
	case m.UiState.Mode() == state.SearchMode || m.UiState.Mode() == state.AssigneeFilterMode:
		left = m.SearchState.View()
	case m.ListViewState.IsListView():
		left = describeFilter(m)
	default:
		if b, ok := m.CurrentBoard(); ok {
			left = fmt.Sprintf("%s · %d tasks", b.Name, m.Columns().Total())
		}
	}

	return components.RenderStatusBar(components.StatusBarProps{
		Width:   m.UiState.Width(),
		Left:    left,
		Loading: m.Snapshot.Loading() || m.DragsInFlight > 0,
	})
}

func describeFilter(m *tui.Model) string {
	f := m.ListViewState.Filter()
	if f.IsZero() {
		return "all tasks"
	}

	var parts []string
	if f.Search != "" {
		parts = append(parts, "search: "+f.Search)
	}
	if f.Assignee != "" {
		parts = append(parts, "assignee: "+f.Assignee)
	}
	if f.Status != "" && f.Status != projections.AllStatuses {
		parts = append(parts, "status: "+statusLabel(f.Status))
	}
	if f.BoardID != 0 {
		parts = append(parts, "board: "+boardName(m, f.BoardID))
	}
	return strings.Join(parts, "  ")
}

func statusLabel(s models.Status) string {
	if s.Valid() {
		return s.Label()
	}
	return string(s)
}

func boardName(m *tui.Model, id int) string {
	for _, b := range m.Boards {
		if b.ID == id {
			return b.Name
		}
	}
	return fmt.Sprintf("Board %d", id)
}
