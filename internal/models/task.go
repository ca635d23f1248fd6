package models

// AssigneeUser is the denormalized user summary embedded in a Task.
// It is copied from the user list at mutation time and never dereferenced live.
type AssigneeUser struct {
	ID        int    `json:"id"`
	FullName  string `json:"fullName"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

// Task represents a single task as served by the remote API.
// ID 0 means the server has not assigned an id yet.
// BoardName is filled in by the server and never computed client-side.
type Task struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Priority    Priority     `json:"priority"`
	Status      Status       `json:"status"`
	Assignee    AssigneeUser `json:"assignee"`
	BoardID     int          `json:"boardId"`
	BoardName   string       `json:"boardName"`
}

// GetID returns the task id (used by quiet CLI output)
func (t Task) GetID() int {
	return t.ID
}

// WithStatus returns a copy of the task with the status replaced
func (t Task) WithStatus(status Status) Task {
	t.Status = status
	return t
}
