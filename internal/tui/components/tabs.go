package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

// maxTabName keeps long board names from pushing the other tabs off screen
const maxTabName = 24

// RenderTabs draws one tab per board, highlighting selected (-1 for none).
// The rest of the row is filled with the tab baseline and ends with the
// notification, if any.
//
//	╭────────────────╮╭─────────╮
//	│ Infrastructure ││ Web app │──────────────  ✓ Saved
func RenderTabs(names []string, selected int, width int, notification string) string {
	tabs := make([]string, len(names))
	for i, name := range names {
		style := TabStyle
		if i == selected {
			style = ActiveTabStyle
		}
		tabs[i] = style.Render(Truncate(name, maxTabName))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)

	fill := width - lipgloss.Width(row) - lipgloss.Width(notification) - 2
	parts := []string{row, TabGapStyle.Render(strings.Repeat(" ", max(fill, 0)))}
	if notification != "" {
		parts = append(parts, notification)
	}
	return lipgloss.JoinHorizontal(lipgloss.Bottom, parts...)
}
