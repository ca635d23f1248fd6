package components

import (
	"fmt"
	"strings"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// ListProps describes the task table of the list view
type ListProps struct {
	Tasks        []models.Task
	SelectedRow  int
	ScrollOffset int
	Width        int
	Height       int
}

// list column widths; the title takes what is left
const (
	listIDWidth       = 6
	listStatusWidth   = 12
	listPriorityWidth = 8
	listAssignee      = 18
	listBoardWidth    = 16
)

// ListVisibleRows returns how many rows fit under the header
func ListVisibleRows(height int) int {
	return max(height-2, 1)
}

// RenderList renders the tasks as a table with a header row
func RenderList(p ListProps) string {
	titleWidth := max(p.Width-listIDWidth-listStatusWidth-listPriorityWidth-listAssignee-listBoardWidth-6, 10)

	var b strings.Builder
	b.WriteString(TitleStyle.Render(fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s %s",
		listIDWidth, "ID",
		titleWidth, "Title",
		listStatusWidth, "Status",
		listPriorityWidth, "Priority",
		listAssignee, "Assignee",
		"Board")))
	b.WriteString("\n")

	if len(p.Tasks) == 0 {
		b.WriteString(SubtleStyle.Italic(true).Render("No tasks match the current filters"))
		return b.String()
	}

	visible := ListVisibleRows(p.Height)
	end := min(p.ScrollOffset+visible, len(p.Tasks))
	for i := p.ScrollOffset; i < end; i++ {
		t := p.Tasks[i]
		assignee := t.Assignee.FullName
		if assignee == "" {
			assignee = "-"
		}
		row := fmt.Sprintf("%-*s %-*s %-*s %-*s %-*s %s",
			listIDWidth, fmt.Sprintf("#%d", t.ID),
			titleWidth, Truncate(t.Title, titleWidth),
			listStatusWidth, t.Status.Label(),
			listPriorityWidth, string(t.Priority),
			listAssignee, Truncate(assignee, listAssignee),
			Truncate(t.BoardName, listBoardWidth))
		if i == p.SelectedRow {
			row = SelectedRowStyle.Render(row)
		}
		b.WriteString(row)
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
