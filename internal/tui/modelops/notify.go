package modelops

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/taskdeck/internal/tui"
	"github.com/thenoetrevino/taskdeck/internal/tui/state"
)

// Notify shows a notification and schedules its dismissal
func Notify(m *tui.Model, level state.NotificationLevel, message string) tea.Cmd {
	id := m.NotificationState.Add(level, message)
	return tea.Tick(state.NotificationTTL, func(time.Time) tea.Msg {
		return tui.DismissNotificationMsg{ID: id}
	})
}
