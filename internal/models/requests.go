package models

// CreateTaskRequest is the body of POST /tasks/create
type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	AssigneeID  int      `json:"assigneeId"`
	BoardID     int      `json:"boardId"`
}

// UpdateTaskRequest is the body of PUT /tasks/update/{taskId}.
// It fully replaces the editable fields of a task.
type UpdateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Priority    Priority `json:"priority"`
	Status      Status   `json:"status"`
	AssigneeID  int      `json:"assigneeId"`
}

// UpdateTaskStatusRequest is the body of PUT /tasks/updateStatus/{taskId}
type UpdateTaskStatusRequest struct {
	Status Status `json:"status"`
}

// CreateTaskResponse is returned by the create endpoint
type CreateTaskResponse struct {
	ID int `json:"id"`
}

// MessageResponse is returned by the update endpoints
type MessageResponse struct {
	Message string `json:"message"`
}
