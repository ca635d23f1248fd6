package mutation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

func validForm() TaskForm {
	return TaskForm{
		Title:      "X",
		BoardID:    2,
		Priority:   models.PriorityHigh,
		Status:     models.StatusBacklog,
		AssigneeID: 1,
	}
}

func TestValidateTaskForm(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TaskForm)
		isEdit bool
		want   bool
	}{
		{"complete create", func(*TaskForm) {}, false, true},
		{"missing title", func(f *TaskForm) { f.Title = "" }, false, false},
		{"blank title", func(f *TaskForm) { f.Title = "   " }, false, false},
		{"missing priority", func(f *TaskForm) { f.Priority = "" }, false, false},
		{"missing status", func(f *TaskForm) { f.Status = "" }, false, false},
		{"unknown priority", func(f *TaskForm) { f.Priority = "Urgent" }, false, false},
		{"unknown status", func(f *TaskForm) { f.Status = "Archived" }, true, false},
		{"missing assignee", func(f *TaskForm) { f.AssigneeID = 0 }, false, false},
		{"missing board on create", func(f *TaskForm) { f.BoardID = 0 }, false, false},
		{"missing board on edit", func(f *TaskForm) { f.BoardID = 0 }, true, true},
		{"missing assignee on edit", func(f *TaskForm) { f.AssigneeID = 0 }, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.mutate(&f)
			assert.Equal(t, tt.want, ValidateTaskForm(f, tt.isEdit))
		})
	}
}

func TestValidate_ListsMissingFields(t *testing.T) {
	err := Validate(TaskForm{}, false)

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{"title", "priority", "status", "assignee", "board"}, vErr.Missing)
	assert.ErrorIs(t, err, gateway.ErrValidation)
	assert.Equal(t, "missing required fields: title, priority, status, assignee, board", err.Error())
}

func TestValidate_ListsInvalidValues(t *testing.T) {
	f := validForm()
	f.Title = ""
	f.Priority = "Urgent"
	f.Status = "Archived"

	err := Validate(f, false)

	var vErr *ValidationError
	assert.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{"title"}, vErr.Missing)
	assert.Equal(t, []string{"priority", "status"}, vErr.Invalid)
	assert.ErrorIs(t, err, gateway.ErrValidation)
	assert.Equal(t, "missing required fields: title; invalid fields: priority, status", err.Error())
}

// Titles are trimmed before the required check, so a title made only of
// whitespace is rejected even though it is a non-empty string.
func TestValidate_WhitespaceTitleIsMissing(t *testing.T) {
	for _, title := range []string{" ", "\t", " \n "} {
		f := validForm()
		f.Title = title

		err := Validate(f, true)

		var vErr *ValidationError
		if assert.True(t, errors.As(err, &vErr), "title %q", title) {
			assert.Equal(t, []string{"title"}, vErr.Missing)
		}
	}

	f := validForm()
	f.Title = " x "
	assert.NoError(t, Validate(f, true), "surrounding spaces are fine")
}

func TestResolveAssignee(t *testing.T) {
	users := []models.User{
		{ID: 1, FullName: "Ada", Email: "ada@x.io", AvatarURL: "a.png", TeamID: 3},
		{ID: 2, FullName: "Grace"},
	}

	assert.Equal(t,
		models.AssigneeUser{ID: 1, FullName: "Ada", Email: "ada@x.io", AvatarURL: "a.png"},
		ResolveAssignee(users, 1))

	// Unknown id yields the zero placeholder, not an error
	assert.Equal(t, models.AssigneeUser{}, ResolveAssignee(users, 9))
	assert.Equal(t, models.AssigneeUser{}, ResolveAssignee(nil, 1))
}

func TestTransformTaskData(t *testing.T) {
	users := []models.User{{ID: 1, FullName: "Ada"}}
	form := validForm()
	form.Description = "desc"

	got := TransformTaskData(form, users, 0)

	assert.Equal(t, models.Task{
		ID:          0,
		Title:       "X",
		Description: "desc",
		Priority:    models.PriorityHigh,
		Status:      models.StatusBacklog,
		Assignee:    models.AssigneeUser{ID: 1, FullName: "Ada"},
		BoardID:     2,
		BoardName:   "",
	}, got)

	assert.Equal(t, 7, TransformTaskData(form, users, 7).ID)
}

func TestFormFromTask_RoundTrip(t *testing.T) {
	task := models.Task{
		ID: 5, Title: "T", Description: "D", Priority: models.PriorityLow,
		Status: models.StatusDone, Assignee: models.AssigneeUser{ID: 3}, BoardID: 4,
	}
	form := FormFromTask(task)

	assert.Equal(t, TaskForm{
		Title: "T", Description: "D", BoardID: 4, Priority: models.PriorityLow,
		Status: models.StatusDone, AssigneeID: 3,
	}, form)
	assert.True(t, ValidateTaskForm(form, true))
}

func TestNewTaskForm_Defaults(t *testing.T) {
	f := NewTaskForm(3)
	assert.Equal(t, 3, f.BoardID)
	assert.Equal(t, models.PriorityMedium, f.Priority)
	assert.Equal(t, models.StatusBacklog, f.Status)
}
