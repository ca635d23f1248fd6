package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/tui/theme"
)

// ColumnProps describes one kanban column to render
type ColumnProps struct {
	Title    string
	Tasks    []models.Task
	Selected bool
	// SelectedTask is the cursor index in this column, -1 for none
	SelectedTask int
	Width        int
	Height       int
}

// VisibleTasks returns how many cards fit in a column of the given height
func VisibleTasks(height int) int {
	available := height - columnBorderOverhead - headerLines - 2*indicatorLines
	return max(available/TaskCardHeight, 1)
}

// ScrollOffset returns the first visible index that keeps selected on screen
func ScrollOffset(selected, total, visible int) int {
	if selected < visible || total <= visible {
		return 0
	}
	return min(selected-visible+1, total-visible)
}

// RenderColumn renders a complete column with its title and tasks
//
// Layout:
//
//	{Column Name} ({count})
//	▲ (if scrolled down)
//	{Task 1}
//	{Task 2}
//	...
//	▼ (if more tasks below)
func RenderColumn(p ColumnProps) string {
	width := max(p.Width, minColumnWidth)
	cardWidth := width - 4 // border + horizontal padding

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("%s (%d)", p.Title, len(p.Tasks))))
	b.WriteString("\n")

	if len(p.Tasks) == 0 {
		b.WriteString(lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Subtle)).
			Italic(true).
			Padding(1, 0).
			Render("No tasks"))
	} else {
		visible := VisibleTasks(p.Height)
		offset := 0
		if p.SelectedTask >= 0 {
			offset = ScrollOffset(p.SelectedTask, len(p.Tasks), visible)
		}
		end := min(offset+visible, len(p.Tasks))

		indicator := IndicatorStyle.Width(cardWidth)
		if offset > 0 {
			b.WriteString(indicator.Render("▲ more above"))
		}
		b.WriteString("\n")

		for i := offset; i < end; i++ {
			b.WriteString(RenderTask(p.Tasks[i], p.Selected && i == p.SelectedTask, cardWidth))
			b.WriteString("\n")
		}

		if end < len(p.Tasks) {
			b.WriteString(indicator.Render("▼ more below"))
		}
	}

	style := ColumnStyle.Width(width)
	if p.Selected {
		style = style.BorderForeground(lipgloss.Color(theme.SelectedBorder))
	}
	if p.Height > 0 {
		style = style.Height(max(p.Height-columnBorderOverhead, 1))
	}

	return style.Render(strings.TrimRight(b.String(), "\n"))
}
