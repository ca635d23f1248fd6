package components

import (
	"strings"

	"charm.land/lipgloss/v2"
)

type StatusBarProps struct {
	Width int
	// Left is the view-specific text, e.g. the active filters
	Left string
	// Loading shows a sync marker on the right
	Loading bool
}

// RenderStatusBar renders a status bar with left and right aligned text
func RenderStatusBar(props StatusBarProps) string {
	leftText := " taskdeck"
	if props.Left != "" {
		leftText += "  " + props.Left
	}
	rightText := "press ? for help "
	if props.Loading {
		rightText = "syncing…  " + rightText
	}

	gapWidth := max(props.Width-lipgloss.Width(leftText)-lipgloss.Width(rightText), 1)

	return StatusBarStyle.Render(leftText + strings.Repeat(" ", gapWidth) + rightText)
}
