package tui

import (
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/store"
)

// DataLoadedMsg carries the result of the initial load
type DataLoadedMsg struct {
	Boards []models.Board
	Users  []models.User
	Err    error
}

// TasksReloadedMsg reports a finished manual reload
type TasksReloadedMsg struct {
	Err error
}

// StoreChangedMsg is sent whenever the task store publishes a new snapshot
type StoreChangedMsg struct {
	Snapshot store.Snapshot
}

// DragResultMsg reports the server's answer to a board drag
type DragResultMsg struct {
	TaskID int
	Status models.Status
	Err    error
}

// TaskSavedMsg reports a finished create or edit
type TaskSavedMsg struct {
	Task   models.Task
	IsEdit bool
	Err    error
}

// DismissNotificationMsg removes a notification after its TTL
type DismissNotificationMsg struct {
	ID int
}

// StatusMovedMsg reports a status change made from the list view
type StatusMovedMsg struct {
	TaskID int
	Status models.Status
	Err    error
}
