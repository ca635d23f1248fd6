package events

import (
	"strconv"
	"strings"
	"time"
)

// EventType indicates what kind of change occurred
type EventType string

const (
	// EventInvalidate marks the listed keys as stale
	EventInvalidate EventType = "invalidate"
	// EventStoreReloaded is published after the task store finished a reload
	EventStoreReloaded EventType = "store_reloaded"
)

// Key is a query-key path such as "tasks", "tasks/42" or "boards/2/tasks".
// Segments are separated by '/'.
type Key string

// Resource keys used by the caches and the task store
func TasksKey() Key { return "tasks" }
func TaskKey(id int) Key { return join("tasks", id) }
func BoardsKey() Key { return "boards" }
func BoardTasksKey(id int) Key { return join("boards", id) + "/tasks" }
func TeamsKey() Key { return "teams" }
func TeamKey(id int) Key { return join("teams", id) }
func UsersKey() Key { return "users" }
func UserTasksKey(id int) Key { return join("users", id) + "/tasks" }

func join(resource string, id int) Key {
	return Key(resource + "/" + strconv.Itoa(id))
}

// HasPrefix reports whether prefix matches k on whole segments,
// so "tasks" matches "tasks/4" but not "tasksets".
func (k Key) HasPrefix(prefix Key) bool {
	if prefix == "" {
		return false
	}
	if k == prefix {
		return true
	}
	return strings.HasPrefix(string(k), string(prefix)+"/")
}

// Segments splits the key into its path segments
func (k Key) Segments() []string {
	if k == "" {
		return nil
	}
	return strings.Split(string(k), "/")
}

// Event represents a change notification
type Event struct {
	Type       EventType
	Keys       []Key     // Query keys affected by the change
	TaskID     int       // Task that changed, 0 when not task-specific
	BoardID    int       // Board of the task, 0 when unknown
	Timestamp  time.Time // When the event occurred
	SequenceID int64     // Monotonically increasing sequence number, assigned by the bus
}

// Invalidate builds an invalidation event for the given keys
func Invalidate(taskID, boardID int, keys ...Key) Event {
	return Event{
		Type:      EventInvalidate,
		Keys:      keys,
		TaskID:    taskID,
		BoardID:   boardID,
		Timestamp: time.Now(),
	}
}

// Matches reports whether any key of the event is a prefix of k
func (e Event) Matches(k Key) bool {
	for _, key := range e.Keys {
		if k.HasPrefix(key) {
			return true
		}
	}
	return false
}
