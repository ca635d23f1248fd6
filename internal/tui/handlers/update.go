package handlers

import (
	"errors"
	"log/slog"

	tea "charm.land/bubbletea/v2"

	"github.com/thenoetrevino/taskdeck/internal/mutation"
	"github.com/thenoetrevino/taskdeck/internal/tui"
	"github.com/thenoetrevino/taskdeck/internal/tui/modelops"
	"github.com/thenoetrevino/taskdeck/internal/tui/state"
)

// Update is the main update dispatcher that handles all messages and updates the model.
// This implements the "Update" part of the Model-View-Update pattern.
func Update(m *tui.Model, msg tea.Msg) tea.Cmd {
	select {
	case <-m.Ctx.Done():
		return tea.Quit
	default:
	}

	// Start listening for store changes on first update
	var cmd tea.Cmd
	if m.StoreChan != nil && !m.SubscriptionStarted {
		m.SubscriptionStarted = true
		cmd = modelops.SubscribeToStore(m)
	}

	switch msg := msg.(type) {
	case tui.StoreChangedMsg:
		m.Snapshot = msg.Snapshot
		m.SyncShadow()
		m.ListViewState.Clamp(len(m.ListTasks()))
		return modelops.SubscribeToStore(m)

	case tui.DataLoadedMsg:
		return tea.Batch(cmd, handleDataLoaded(m, msg))

	case tui.TasksReloadedMsg:
		m.Snapshot = m.App.Store.Snapshot()
		if msg.Err != nil {
			return tea.Batch(cmd, modelops.Notify(m, state.LevelError, "Reload failed: "+msg.Err.Error()))
		}
		return cmd

	case tui.DragResultMsg:
		return tea.Batch(cmd, handleDragResult(m, msg))

	case tui.StatusMovedMsg:
		if msg.Err != nil {
			return tea.Batch(cmd, modelops.Notify(m, state.LevelError, "Move failed: "+msg.Err.Error()))
		}
		return cmd

	case tui.TaskSavedMsg:
		return tea.Batch(cmd, handleTaskSaved(m, msg))

	case tui.DismissNotificationMsg:
		m.NotificationState.Dismiss(msg.ID)
		return cmd

	case tea.WindowSizeMsg:
		m.UiState.SetSize(msg.Width, msg.Height)
		return cmd
	}

	// Forms need every message, not just keys
	if m.UiState.Mode() == state.TaskFormMode {
		return tea.Batch(cmd, UpdateTaskForm(m, msg))
	}

	if keyMsg, ok := msg.(tea.KeyPressMsg); ok {
		return tea.Batch(cmd, HandleKeyMsg(m, keyMsg))
	}

	// Cursor blink and similar messages for the filter input
	if m.UiState.Mode() == state.SearchMode || m.UiState.Mode() == state.AssigneeFilterMode {
		return tea.Batch(cmd, m.SearchState.Update(msg))
	}

	return cmd
}

// HandleKeyMsg dispatches key messages to the appropriate mode handler.
func HandleKeyMsg(m *tui.Model, msg tea.KeyPressMsg) tea.Cmd {
	switch m.UiState.Mode() {
	case state.NormalMode:
		return HandleNormalMode(m, msg)
	case state.DetailMode:
		return HandleDetailMode(m, msg)
	case state.HelpMode:
		return HandleHelpMode(m, msg)
	case state.SearchMode, state.AssigneeFilterMode:
		return HandleSearchMode(m, msg)
	}
	return nil
}

func handleDataLoaded(m *tui.Model, msg tui.DataLoadedMsg) tea.Cmd {
	m.Snapshot = m.App.Store.Snapshot()
	if msg.Boards != nil {
		m.SetBoards(msg.Boards)
	}
	if msg.Users != nil {
		m.Users = msg.Users
	}
	m.SyncShadow()

	if msg.Err != nil {
		// The board keeps showing whatever was loaded; the render layer
		// shows the store error inline
		slog.Warn("tui load failed", "error", msg.Err)
		return modelops.Notify(m, state.LevelError, "Load failed: "+msg.Err.Error())
	}
	return nil
}

func handleDragResult(m *tui.Model, msg tui.DragResultMsg) tea.Cmd {
	m.DragsInFlight = max(m.DragsInFlight-1, 0)
	m.Snapshot = m.App.Store.Snapshot()

	if msg.Err != nil {
		// Commit has already reset the shadow; resync in case another
		// drag finished in between
		m.SyncShadow()
		return modelops.Notify(m, state.LevelError, "Move failed, card restored: "+msg.Err.Error())
	}

	m.SyncShadow()
	return nil
}

func handleTaskSaved(m *tui.Model, msg tui.TaskSavedMsg) tea.Cmd {
	m.FormState.SetSubmitting(false)

	switch {
	case msg.Err == nil:
		delete(m.StaleTasks, msg.Task.ID)
		m.UiState.SetMode(state.NormalMode)
		m.FormState.Reset()
		verb := "Created"
		if msg.IsEdit {
			verb = "Updated"
		}
		return modelops.Notify(m, state.LevelInfo, verb+" "+msg.Task.Title)

	case errors.Is(msg.Err, mutation.ErrStaleEdit):
		m.StaleTasks[msg.Task.ID] = true
		m.UiState.SetMode(state.NormalMode)
		m.FormState.Reset()
		return modelops.Notify(m, state.LevelWarning, "Edit not saved: "+msg.Err.Error())

	default:
		// Keep the form open so the input is not lost
		return tea.Batch(ReopenForm(m), modelops.Notify(m, state.LevelError, msg.Err.Error()))
	}
}
