package huhforms

import (
	"errors"
	"strings"

	"charm.land/huh/v2"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// TaskFormValues are the pointers the task form writes into
type TaskFormValues struct {
	Title       *string
	Description *string
	Priority    *models.Priority
	Status      *models.Status
	AssigneeID  *int
	BoardID     *int
	Confirm     *bool
}

// TaskFormOptions are the choices offered by the select fields
type TaskFormOptions struct {
	Users  []models.User
	Boards []models.Board
	// IsEdit swaps the board select for a status select
	IsEdit           bool
	DescriptionLines int
}

// CreateTaskForm creates a huh form for adding or editing a task
func CreateTaskForm(v TaskFormValues, opts TaskFormOptions) *huh.Form {
	var fields []huh.Field

	fields = append(fields,
		huh.NewInput().
			Key("title").
			Title("Title").
			Placeholder("Enter task title...").
			Validate(requireText("title")).
			Value(v.Title),
	)

	fields = append(fields,
		huh.NewText().
			Key("description").
			Title("Description").
			Placeholder("Markdown is supported...").
			CharLimit(5000).
			Lines(max(opts.DescriptionLines, 3)).
			Value(v.Description),
	)

	priorityOptions := make([]huh.Option[models.Priority], 0, 3)
	for _, o := range models.Priorities() {
		priorityOptions = append(priorityOptions, huh.NewOption(o.Label, o.Value))
	}
	fields = append(fields,
		huh.NewSelect[models.Priority]().
			Key("priority").
			Title("Priority").
			Options(priorityOptions...).
			Value(v.Priority),
	)

	if opts.IsEdit {
		statusOptions := make([]huh.Option[models.Status], 0, models.NumColumns)
		for _, o := range models.Statuses() {
			statusOptions = append(statusOptions, huh.NewOption(o.Label, o.Value))
		}
		fields = append(fields,
			huh.NewSelect[models.Status]().
				Key("status").
				Title("Status").
				Options(statusOptions...).
				Value(v.Status),
		)
	} else {
		boardOptions := make([]huh.Option[int], 0, len(opts.Boards))
		for _, b := range opts.Boards {
			boardOptions = append(boardOptions, huh.NewOption(b.Name, b.ID))
		}
		fields = append(fields,
			huh.NewSelect[int]().
				Key("board").
				Title("Board").
				Options(boardOptions...).
				Validate(requireID("board")).
				Value(v.BoardID),
		)
	}

	fields = append(fields,
		huh.NewSelect[int]().
			Key("assignee").
			Title("Assignee").
			Options(AssigneeOptions(opts.Users)...).
			Validate(requireID("assignee")).
			Value(v.AssigneeID),
	)

	fields = append(fields,
		huh.NewConfirm().
			Key("confirm").
			Title("Save this task?").
			Affirmative("Yes").
			Negative("No").
			Value(v.Confirm),
	)

	form := huh.NewForm(huh.NewGroup(fields...))
	return form.WithKeyMap(CreateKeyMapWithShiftEnter()).WithShowHelp(false)
}

// AssigneeOptions lists users by name. A placeholder with id 0 comes first
// so an unset assignee is visible in the form.
func AssigneeOptions(users []models.User) []huh.Option[int] {
	options := make([]huh.Option[int], 0, len(users)+1)
	options = append(options, huh.NewOption("Choose an assignee", 0))
	for _, u := range users {
		options = append(options, huh.NewOption(u.FullName, u.ID))
	}
	return options
}

func requireText(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(field + " is required")
		}
		return nil
	}
}

func requireID(field string) func(int) error {
	return func(id int) error {
		if id == 0 {
			return errors.New(field + " is required")
		}
		return nil
	}
}
