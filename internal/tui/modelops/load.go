package modelops

import (
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/taskdeck/internal/tui"
)

// LoadData fetches tasks, boards and users. The task list reaches the
// model through the store subscription; boards and users come back in
// the message.
func LoadData(m *tui.Model) tea.Cmd {
	ctx := m.Ctx
	a := m.App
	return func() tea.Msg {
		err := a.LoadInitial(ctx)
		if err != nil {
			slog.Warn("initial load incomplete", "error", err)
		}

		msg := tui.DataLoadedMsg{Err: err}
		if boards, bErr := a.Resources.ListBoards(ctx); bErr == nil {
			msg.Boards = boards
		}
		msg.Users = a.Resources.UsersSnapshot()
		return msg
	}
}

// ReloadTasks refetches the task list
func ReloadTasks(m *tui.Model) tea.Cmd {
	ctx := m.Ctx
	a := m.App
	return func() tea.Msg {
		return tui.TasksReloadedMsg{Err: a.ReloadTasks(ctx)}
	}
}

// SubscribeToStore waits for the next store snapshot.
// Returns nil if the subscription is not set up.
func SubscribeToStore(m *tui.Model) tea.Cmd {
	if m.StoreChan == nil {
		return nil
	}

	ch := m.StoreChan
	ctx := m.Ctx
	return func() tea.Msg {
		select {
		case snap, ok := <-ch:
			if !ok {
				return nil
			}
			return tui.StoreChangedMsg{Snapshot: snap}
		case <-ctx.Done():
			return nil
		}
	}
}
