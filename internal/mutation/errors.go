package mutation

import "errors"

// Coordinator errors
var (
	// ErrStaleEdit marks an edit the server rejected. The local copy keeps
	// the edited values until the next reload.
	ErrStaleEdit = errors.New("edit not saved, local copy is stale")

	// ErrTaskNotFound is returned when the task is not in the board shadow
	ErrTaskNotFound = errors.New("task not found on board")
)
