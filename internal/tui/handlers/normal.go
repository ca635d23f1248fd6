package handlers

import (
	"errors"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/tui"
	"github.com/thenoetrevino/taskdeck/internal/tui/components"
	"github.com/thenoetrevino/taskdeck/internal/tui/modelops"
	"github.com/thenoetrevino/taskdeck/internal/tui/state"
)

// ============================================================================
// NORMAL MODE HANDLERS
// ============================================================================

// HandleNormalMode dispatches key events in NormalMode to the active view.
func HandleNormalMode(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	key := keyString(msg)
	km := m.Config.KeyMappings

	// Shared by both views
	switch key {
	case km.Quit, "ctrl+c":
		return tea.Quit
	case km.ShowHelp:
		m.UiState.SetMode(state.HelpMode)
		return nil
	case km.ToggleView:
		m.ListViewState.ToggleView()
		return nil
	case km.Refresh:
		return modelops.ReloadTasks(m)
	case km.AddTask:
		return OpenCreateForm(m)
	case km.EditTask:
		return OpenEditForm(m)
	case km.ViewTask, "enter":
		return handleViewTask(m)
	}

	if m.ListViewState.IsListView() {
		return handleListKeys(m, key)
	}
	return handleBoardKeys(m, key)
}

func handleViewTask(m *tui.Model) tea.Cmd {
	task, ok := m.CurrentTask()
	if !ok {
		return nil
	}
	m.UiState.ShowDetail(task.ID)
	return nil
}

// ============================================================================
// BOARD VIEW
// ============================================================================

func handleBoardKeys(m *tui.Model, key string) tea.Cmd {
	km := m.Config.KeyMappings

	switch key {
	case km.PrevColumn, "left":
		if col := m.UiState.SelectedColumn(); col > 0 {
			m.UiState.SetSelectedColumn(col - 1)
			m.UiState.ClampSelection(len(m.CurrentColumnTasks()))
		}
	case km.NextColumn, "right":
		if col := m.UiState.SelectedColumn(); col < models.NumColumns-1 {
			m.UiState.SetSelectedColumn(col + 1)
			m.UiState.ClampSelection(len(m.CurrentColumnTasks()))
		}
	case km.PrevTask, "up":
		if idx := m.UiState.SelectedTask(); idx > 0 {
			m.UiState.SetSelectedTask(idx - 1)
		}
	case km.NextTask, "down":
		if idx := m.UiState.SelectedTask(); idx < len(m.CurrentColumnTasks())-1 {
			m.UiState.SetSelectedTask(idx + 1)
		}
	case km.PrevBoard:
		if len(m.Boards) > 0 {
			m.SelectBoard((m.UiState.SelectedBoard() - 1 + len(m.Boards)) % len(m.Boards))
		}
	case km.NextBoard:
		if len(m.Boards) > 0 {
			m.SelectBoard((m.UiState.SelectedBoard() + 1) % len(m.Boards))
		}
	case km.MoveTaskLeft:
		return dragTask(m, -1, 0)
	case km.MoveTaskRight:
		return dragTask(m, 1, 0)
	case km.MoveTaskUp:
		return dragTask(m, 0, -1)
	case km.MoveTaskDown:
		return dragTask(m, 0, 1)
	}
	return nil
}

// dragTask moves the selected card by dCol columns or dIdx rows. The
// shadow changes at once and the cursor follows the card. Only a column
// change reaches the server, in a command.
func dragTask(m *tui.Model, dCol, dIdx int) tea.Cmd {
	task, ok := m.CurrentTask()
	if !ok || m.Shadow == nil {
		return nil
	}

	fromCol := m.UiState.SelectedColumn()
	fromIdx := m.UiState.SelectedTask()
	toCol := fromCol + dCol

	switch {
	case toCol < 0:
		return modelops.Notify(m, state.LevelWarning, models.ErrAlreadyFirstColumn.Error())
	case toCol >= models.NumColumns:
		return modelops.Notify(m, state.LevelWarning, models.ErrAlreadyLastColumn.Error())
	}

	cols := m.Columns()
	toIdx := fromIdx + dIdx
	if dCol != 0 {
		toIdx = min(fromIdx, len(cols[toCol]))
	} else if toIdx < 0 || toIdx >= len(cols[fromCol]) {
		return nil
	}

	status := models.Statuses()[toCol].Value
	changed, err := m.Shadow.Patch(task.ID, status, toIdx)
	if err != nil {
		return modelops.Notify(m, state.LevelError, err.Error())
	}
	if !changed {
		return nil
	}

	m.UiState.SetSelectedColumn(toCol)
	m.UiState.SetSelectedTask(toIdx)
	if toCol == fromCol {
		return nil
	}
	m.DragsInFlight++
	return modelops.CommitDrag(m, task.ID, status)
}

// ============================================================================
// LIST VIEW
// ============================================================================

func handleListKeys(m *tui.Model, key string) tea.Cmd {
	km := m.Config.KeyMappings
	rows := len(m.ListTasks())

	switch key {
	case km.PrevTask, "up":
		m.ListViewState.MoveUp()
	case km.NextTask, "down":
		m.ListViewState.MoveDown(rows, listVisibleRows(m))
	case km.Search:
		m.UiState.SetMode(state.SearchMode)
		return m.SearchState.Begin("/ ", m.ListViewState.Filter().Search)
	case km.FilterAssignee:
		m.UiState.SetMode(state.AssigneeFilterMode)
		return m.SearchState.Begin("@ ", m.ListViewState.Filter().Assignee)
	case km.CycleStatus:
		m.ListViewState.CycleStatus()
	case km.CycleBoard:
		m.ListViewState.CycleBoard(m.Boards)
	case km.ClearFilters:
		m.ListViewState.ClearFilters()
	case km.MoveTaskLeft:
		return moveListTask(m, models.Status.Prev)
	case km.MoveTaskRight:
		return moveListTask(m, models.Status.Next)
	}
	return nil
}

func moveListTask(m *tui.Model, step func(models.Status) (models.Status, error)) tea.Cmd {
	task, ok := m.CurrentTask()
	if !ok {
		return nil
	}
	next, err := step(task.Status)
	if err != nil {
		level := state.LevelWarning
		if !errors.Is(err, models.ErrAlreadyFirstColumn) && !errors.Is(err, models.ErrAlreadyLastColumn) {
			level = state.LevelError
		}
		return modelops.Notify(m, level, err.Error())
	}
	return modelops.MoveStatus(m, task.ID, next)
}

// listVisibleRows is the table height left by the tab bar and status bar
func listVisibleRows(m *tui.Model) int {
	return components.ListVisibleRows(m.UiState.Height() - components.ChromeLines)
}
