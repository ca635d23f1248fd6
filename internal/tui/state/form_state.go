package state

import (
	"charm.land/huh/v2"

	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/mutation"
)

// FormState manages the task form. The huh form writes into the exported
// value fields through pointers, so a FormState must not be copied while a
// form is open.
type FormState struct {
	form *huh.Form

	// original is the task being edited, nil when creating
	original *models.Task

	Title       string
	Description string
	Priority    models.Priority
	Status      models.Status
	AssigneeID  int
	BoardID     int
	Confirm     bool

	// submitting is true while the save request is in flight
	submitting bool
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// Load fills the values from form and records what is being edited.
func (s *FormState) Load(form mutation.TaskForm, original *models.Task) {
	s.Title = form.Title
	s.Description = form.Description
	s.Priority = form.Priority
	s.Status = form.Status
	s.AssigneeID = form.AssigneeID
	s.BoardID = form.BoardID
	s.Confirm = true
	s.original = original
	s.submitting = false
}

// TaskForm returns the current values as a mutation form.
func (s *FormState) TaskForm() mutation.TaskForm {
	return mutation.TaskForm{
		Title:       s.Title,
		Description: s.Description,
		BoardID:     s.BoardID,
		Priority:    s.Priority,
		Status:      s.Status,
		AssigneeID:  s.AssigneeID,
	}
}

// Form returns the open huh form, or nil.
func (s *FormState) Form() *huh.Form {
	return s.form
}

// SetForm sets the open huh form.
func (s *FormState) SetForm(form *huh.Form) {
	s.form = form
}

// Original returns the task being edited.
func (s *FormState) Original() (models.Task, bool) {
	if s.original == nil {
		return models.Task{}, false
	}
	return *s.original, true
}

// IsEdit reports whether the form edits an existing task.
func (s *FormState) IsEdit() bool {
	return s.original != nil
}

// Submitting reports whether a save is in flight.
func (s *FormState) Submitting() bool {
	return s.submitting
}

// SetSubmitting marks a save as in flight or finished.
func (s *FormState) SetSubmitting(v bool) {
	s.submitting = v
}

// Reset closes the form and clears every value.
func (s *FormState) Reset() {
	*s = FormState{}
}
