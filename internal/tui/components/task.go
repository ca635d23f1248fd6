package components

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/tui/theme"
)

// RenderTask renders a single task as a card
//
//	┏━━━━━━━━━━━━━━━━━━━━━┓
//	┃ {Task Title}        ┃
//	┃ priority  @assignee ┃
//	┗━━━━━━━━━━━━━━━━━━━━━┛
//
// This has a fixed height; width is the outer card width.
func RenderTask(task models.Task, selected bool, width int) string {
	bg := theme.TaskBg
	border := theme.CardBorder
	if selected {
		bg = theme.SelectedBg
		border = theme.SelectedBorder
	}

	inner := max(width-2, 4)
	base := lipgloss.NewStyle().Background(lipgloss.Color(bg))

	title := base.Bold(true).Render(" " + Truncate(task.Title, inner-1))

	meta := " " + PriorityBadge(task.Priority, bg)
	if task.Assignee.FullName != "" {
		meta += base.Foreground(lipgloss.Color(theme.Subtle)).
			Render("  @" + Truncate(task.Assignee.FullName, inner-len(task.Priority)-5))
	}

	return TaskStyle.
		BorderForeground(lipgloss.Color(border)).
		BorderBackground(lipgloss.Color(bg)).
		Background(lipgloss.Color(bg)).
		Width(width).
		Render(title + "\n" + meta)
}

// Truncate shortens s to at most n cells, marking the cut with an ellipsis
func Truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > n {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}
