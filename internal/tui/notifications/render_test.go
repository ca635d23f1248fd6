package notifications

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/taskdeck/internal/tui/state"
)

func TestFromLevel(t *testing.T) {
	assert.Equal(t, Info, FromLevel(state.LevelInfo))
	assert.Equal(t, Warning, FromLevel(state.LevelWarning))
	assert.Equal(t, Error, FromLevel(state.LevelError))
	assert.Equal(t, Info, FromLevel(state.NotificationLevel(42)))
}

func TestRender_ContainsTitleAndMessage(t *testing.T) {
	out := Render(Error, "move failed")

	assert.Contains(t, out, "Error")
	assert.Contains(t, out, "move failed")
}

func TestRenderInlineFromState(t *testing.T) {
	out := RenderInlineFromState(state.Notification{Level: state.LevelWarning, Message: "stale"})

	assert.Contains(t, out, "⚠")
	assert.Contains(t, out, "stale")
}
