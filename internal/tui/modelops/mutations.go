package modelops

import (
	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/tui"
)

// CommitDrag sends a card that was already moved in the board shadow.
// The caller counts the drag as in flight until DragResultMsg arrives.
func CommitDrag(m *tui.Model, taskID int, status models.Status) tea.Cmd {
	shadow := m.Shadow
	if shadow == nil {
		return nil
	}
	ctx := m.Ctx
	return func() tea.Msg {
		err := shadow.Commit(ctx, taskID, status)
		return tui.DragResultMsg{TaskID: taskID, Status: status, Err: err}
	}
}

// MoveStatus changes a task's status outside the board shadow
func MoveStatus(m *tui.Model, taskID int, status models.Status) tea.Cmd {
	ctx := m.Ctx
	coord := m.App.Coordinator
	return func() tea.Msg {
		err := coord.MoveStatus(ctx, taskID, status)
		return tui.StatusMovedMsg{TaskID: taskID, Status: status, Err: err}
	}
}

// SaveTask submits the open form as a create or an edit
func SaveTask(m *tui.Model) tea.Cmd {
	ctx := m.Ctx
	coord := m.App.Coordinator
	form := m.FormState.TaskForm()
	original, isEdit := m.FormState.Original()

	return func() tea.Msg {
		if isEdit {
			task, err := coord.Edit(ctx, original, form)
			return tui.TaskSavedMsg{Task: task, IsEdit: true, Err: err}
		}
		task, err := coord.Create(ctx, form)
		return tui.TaskSavedMsg{Task: task, Err: err}
	}
}
