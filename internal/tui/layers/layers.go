// Package layers provides utility functions for creating and managing UI layers
package layers

import "charm.land/lipgloss/v2"

const (
	// FormMinWidth and FormMaxWidth bound the task form dialog
	FormMinWidth = 50
	FormMaxWidth = 80

	// DetailMaxWidth bounds the task detail dialog
	DetailMaxWidth = 90

	// dialogMargin is kept free around a dialog on each side
	dialogMargin = 4
)

// CreateCenteredLayer creates a layer positioned at the center of the screen.
// Returns nil if content is empty.
func CreateCenteredLayer(content string, screenWidth int, screenHeight int) *lipgloss.Layer {
	if content == "" {
		return nil
	}

	x, y := centerOffset(content, screenWidth, screenHeight)
	return lipgloss.NewLayer(content).X(x).Y(y)
}

// centerOffset returns the top-left corner that centers content on screen
func centerOffset(content string, screenWidth int, screenHeight int) (x, y int) {
	x = max((screenWidth-lipgloss.Width(content))/2, 0)
	y = max((screenHeight-lipgloss.Height(content))/2, 0)
	return x, y
}

// DialogWidth clamps the preferred dialog width to [minWidth, maxWidth] and
// to what the screen can show
func DialogWidth(screenWidth, minWidth, maxWidth int) int {
	width := min(max(screenWidth*2/3, minWidth), maxWidth)
	return max(min(width, screenWidth-dialogMargin), 1)
}
