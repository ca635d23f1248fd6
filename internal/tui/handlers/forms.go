package handlers

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/huh/v2"

	"github.com/thenoetrevino/taskdeck/internal/mutation"
	"github.com/thenoetrevino/taskdeck/internal/tui"
	"github.com/thenoetrevino/taskdeck/internal/tui/huhforms"
	"github.com/thenoetrevino/taskdeck/internal/tui/modelops"
	"github.com/thenoetrevino/taskdeck/internal/tui/state"
)

// OpenCreateForm opens the task form on the selected board
func OpenCreateForm(m *tui.Model) tea.Cmd {
	boardID := m.CurrentBoardID()
	if m.ListViewState.IsListView() && m.ListViewState.Filter().BoardID != 0 {
		boardID = m.ListViewState.Filter().BoardID
	}

	m.FormState.Load(mutation.NewTaskForm(boardID), nil)
	return openForm(m)
}

// OpenEditForm opens the task form for the task under the cursor
func OpenEditForm(m *tui.Model) tea.Cmd {
	task, ok := m.CurrentTask()
	if !ok {
		return nil
	}
	m.FormState.Load(mutation.FormFromTask(task), &task)
	return openForm(m)
}

func openForm(m *tui.Model) tea.Cmd {
	form := buildForm(m)
	m.FormState.SetForm(form)
	m.UiState.SetMode(state.TaskFormMode)
	return form.Init()
}

func buildForm(m *tui.Model) *huh.Form {
	fs := m.FormState
	form := huhforms.CreateTaskForm(huhforms.TaskFormValues{
		Title:       &fs.Title,
		Description: &fs.Description,
		Priority:    &fs.Priority,
		Status:      &fs.Status,
		AssigneeID:  &fs.AssigneeID,
		BoardID:     &fs.BoardID,
		Confirm:     &fs.Confirm,
	}, huhforms.TaskFormOptions{
		Users:            m.Users,
		Boards:           m.Boards,
		IsEdit:           fs.IsEdit(),
		DescriptionLines: max(m.UiState.Height()/4, 3),
	})
	return form.WithTheme(huhforms.CreateTheme(m.Config.ColorScheme, fs.IsEdit()))
}

// UpdateTaskForm handles all messages when in TaskFormMode.
// Forms need ALL messages, not just key presses.
func UpdateTaskForm(m *tui.Model, msg tea.Msg) tea.Cmd {
	form := m.FormState.Form()
	if form == nil || m.FormState.Submitting() {
		if m.FormState.Submitting() {
			return nil
		}
		m.UiState.SetMode(state.NormalMode)
		return nil
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		switch keyString(keyMsg) {
		case "esc", "ctrl+c":
			closeForm(m)
			return nil
		case m.Config.KeyMappings.SaveForm:
			m.FormState.Confirm = true
			return submitForm(m)
		}
	}

	model, cmd := form.Update(msg)
	if f, ok := model.(*huh.Form); ok {
		m.FormState.SetForm(f)
		form = f
	}

	switch form.State {
	case huh.StateCompleted:
		if !m.FormState.Confirm {
			closeForm(m)
			return nil
		}
		return submitForm(m)
	case huh.StateAborted:
		closeForm(m)
		return nil
	}
	return cmd
}

// submitForm validates locally, then hands the save to a command. The
// form stays on screen until TaskSavedMsg arrives.
func submitForm(m *tui.Model) tea.Cmd {
	values := m.FormState.TaskForm()
	if err := mutation.Validate(values, m.FormState.IsEdit()); err != nil {
		return tea.Batch(ReopenForm(m), modelops.Notify(m, state.LevelError, err.Error()))
	}
	m.FormState.SetSubmitting(true)
	return modelops.SaveTask(m)
}

// ReopenForm rebuilds the huh form from the current values so a
// rejected save can be corrected.
func ReopenForm(m *tui.Model) tea.Cmd {
	if m.UiState.Mode() != state.TaskFormMode {
		return nil
	}
	m.FormState.Confirm = true
	return openForm(m)
}

func closeForm(m *tui.Model) {
	m.FormState.Reset()
	m.UiState.SetMode(state.NormalMode)
}
