package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// TaskViewProps describes the task detail dialog content
type TaskViewProps struct {
	Task  models.Task
	Width int
	// Stale marks a task whose last edit failed to save
	Stale bool
}

// RenderTaskView renders the detail view of one task
func RenderTaskView(p TaskViewProps) string {
	t := p.Task

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("#%d %s", t.ID, t.Title)))
	if p.Stale {
		b.WriteString("  ")
		b.WriteString(ErrorBannerStyle.Render("not saved"))
	}
	b.WriteString("\n\n")

	field := func(label, value string) {
		b.WriteString(SubtleStyle.Render(fmt.Sprintf("%-10s", label)))
		b.WriteString(value)
		b.WriteString("\n")
	}
	field("Board", t.BoardName)
	field("Status", t.Status.Label())
	field("Priority", PriorityBadge(t.Priority, ""))
	if t.Assignee.ID == 0 {
		field("Assignee", "Unassigned")
	} else {
		field("Assignee", t.Assignee.FullName)
	}

	b.WriteString("\n")
	b.WriteString(RenderDescription(DescriptionProps{
		Description: t.Description,
		Width:       p.Width,
	}))

	return b.String()
}
