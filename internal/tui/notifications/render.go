package notifications

import (
	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/taskdeck/internal/tui/state"
)

// Render renders a notification banner based on severity level
func Render(severity Severity, message string) string {
	st := severity.style()

	headerText := st.icon + " " + st.title
	maxWidth := max(lipgloss.Width(headerText), lipgloss.Width(message))

	header := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Bold(true).
		Width(maxWidth).
		Render(headerText)

	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Width(maxWidth).
		Render(message)

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(st.background)).
		Background(lipgloss.Color(st.background)).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}

// RenderInline renders a compact single-line notification (for the tab bar)
func RenderInline(severity Severity, message string) string {
	st := severity.style()

	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(st.foreground)).
		Background(lipgloss.Color(st.background)).
		Padding(0, 1).
		Render(st.icon + " " + message)
}

// RenderInlineFromState renders a compact inline notification from state
func RenderInlineFromState(n state.Notification) string {
	return RenderInline(FromLevel(n.Level), n.Message)
}
