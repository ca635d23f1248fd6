package render

import (
	"github.com/thenoetrevino/taskdeck/internal/tui"
	"github.com/thenoetrevino/taskdeck/internal/tui/components"
)

// ViewList renders the filtered task table
func ViewList(m *tui.Model) string {
	return components.RenderList(components.ListProps{
		Tasks:        m.ListTasks(),
		SelectedRow:  m.ListViewState.SelectedRow(),
		ScrollOffset: m.ListViewState.ScrollOffset(),
		Width:        m.UiState.Width(),
		Height:       bodyHeight(m),
	})
}
