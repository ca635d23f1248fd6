package mutation

import (
	"strings"

	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// TaskForm is the user's input for creating or editing a task.
// Zero ids mean "not chosen".
type TaskForm struct {
	Title       string
	Description string
	BoardID     int
	Priority    models.Priority
	Status      models.Status
	AssigneeID  int
}

// NewTaskForm returns a create form with the default priority and status
func NewTaskForm(boardID int) TaskForm {
	return TaskForm{
		BoardID:  boardID,
		Priority: models.DefaultPriority,
		Status:   models.DefaultStatus,
	}
}

// FormFromTask prefills an edit form from an existing task
func FormFromTask(t models.Task) TaskForm {
	return TaskForm{
		Title:       t.Title,
		Description: t.Description,
		BoardID:     t.BoardID,
		Priority:    t.Priority,
		Status:      t.Status,
		AssigneeID:  t.Assignee.ID,
	}
}

// ValidationError lists the required fields a form is missing and the
// fields holding values the API does not accept
type ValidationError struct {
	Missing []string
	Invalid []string
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		parts = append(parts, "missing required fields: "+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "invalid fields: "+strings.Join(e.Invalid, ", "))
	}
	return strings.Join(parts, "; ")
}

// Unwrap lets callers treat form errors like server-side validation failures
func (e *ValidationError) Unwrap() error {
	return gateway.ErrValidation
}

// Validate checks the required fields. Board is required only on create.
// A whitespace-only title counts as missing.
func Validate(form TaskForm, isEdit bool) error {
	var missing, invalid []string
	if strings.TrimSpace(form.Title) == "" {
		missing = append(missing, "title")
	}
	switch {
	case form.Priority == "":
		missing = append(missing, "priority")
	case !form.Priority.Valid():
		invalid = append(invalid, "priority")
	}
	switch {
	case form.Status == "":
		missing = append(missing, "status")
	case !form.Status.Valid():
		invalid = append(invalid, "status")
	}
	if form.AssigneeID == 0 {
		missing = append(missing, "assignee")
	}
	if !isEdit && form.BoardID == 0 {
		missing = append(missing, "board")
	}

	if len(missing) > 0 || len(invalid) > 0 {
		return &ValidationError{Missing: missing, Invalid: invalid}
	}
	return nil
}

// ValidateTaskForm reports whether the form may be submitted
func ValidateTaskForm(form TaskForm, isEdit bool) bool {
	return Validate(form, isEdit) == nil
}

// ResolveAssignee looks the user up in users. A missing user yields the
// zero-value placeholder rather than an error.
func ResolveAssignee(users []models.User, id int) models.AssigneeUser {
	for _, u := range users {
		if u.ID == id {
			return u.Assignee()
		}
	}
	return models.AssigneeUser{}
}

// TransformTaskData builds the local task for a form. taskID is 0 for a
// task the server has not created yet. BoardName is left empty: only the
// server fills it in.
func TransformTaskData(form TaskForm, users []models.User, taskID int) models.Task {
	return models.Task{
		ID:          taskID,
		Title:       form.Title,
		Description: form.Description,
		Priority:    form.Priority,
		Status:      form.Status,
		Assignee:    ResolveAssignee(users, form.AssigneeID),
		BoardID:     form.BoardID,
		BoardName:   "",
	}
}

func (f TaskForm) createRequest() models.CreateTaskRequest {
	return models.CreateTaskRequest{
		Title:       f.Title,
		Description: f.Description,
		Priority:    f.Priority,
		AssigneeID:  f.AssigneeID,
		BoardID:     f.BoardID,
	}
}

func (f TaskForm) updateRequest() models.UpdateTaskRequest {
	return models.UpdateTaskRequest{
		Title:       f.Title,
		Description: f.Description,
		Priority:    f.Priority,
		Status:      f.Status,
		AssigneeID:  f.AssigneeID,
	}
}
