package store

import "github.com/thenoetrevino/taskdeck/internal/models"

// Snapshot is a point-in-time copy of the store.
// Items is owned by the snapshot and safe to read without locking.
type Snapshot struct {
	Items   []models.Task
	Status  LoadStatus
	Error   string
	Version uint64
}

// Get returns the task with the given id
func (s Snapshot) Get(id int) (models.Task, bool) {
	for _, t := range s.Items {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// Loading reports whether a load is in flight
func (s Snapshot) Loading() bool {
	return s.Status == Loading
}

// HasError reports whether the last load failed
func (s Snapshot) HasError() bool {
	return s.Status == Failed
}
