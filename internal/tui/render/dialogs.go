package render

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/thenoetrevino/taskdeck/internal/config"
	"github.com/thenoetrevino/taskdeck/internal/tui"
	"github.com/thenoetrevino/taskdeck/internal/tui/components"
	"github.com/thenoetrevino/taskdeck/internal/tui/layers"
)

// RenderFormLayer renders the huh task form as a centered dialog
func RenderFormLayer(m *tui.Model) *lipgloss.Layer {
	form := m.FormState.Form()
	if form == nil {
		return nil
	}

	title := "New task"
	if m.FormState.IsEdit() {
		if original, ok := m.FormState.Original(); ok {
			title = fmt.Sprintf("Edit #%d", original.ID)
		}
	}
	footer := "ctrl+s save · esc cancel"
	if m.FormState.Submitting() {
		footer = "Saving..."
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		components.TitleStyle.Render(title),
		"",
		form.View(),
		components.SubtleStyle.Render(footer),
	)

	width := layers.DialogWidth(m.UiState.Width(), layers.FormMinWidth, layers.FormMaxWidth)
	box := components.FormBoxStyle.Width(width).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// RenderDetailLayer renders the task detail dialog
func RenderDetailLayer(m *tui.Model) *lipgloss.Layer {
	id := m.UiState.DetailTaskID()
	task, ok := m.FindTask(id)

	width := layers.DialogWidth(m.UiState.Width(), layers.FormMinWidth, layers.DetailMaxWidth)
	var content string
	if ok {
		content = components.RenderTaskView(components.TaskViewProps{
			Task:  task,
			Width: width - 6,
			Stale: m.StaleTasks[id],
		})
	} else {
		content = components.SubtleStyle.Render(fmt.Sprintf("Task %d is no longer available", id))
	}

	box := components.DetailBoxStyle.Width(width).Render(content)
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

// RenderHelpLayer renders the key reference
func RenderHelpLayer(m *tui.Model) *lipgloss.Layer {
	box := components.HelpBoxStyle.Render(helpText(m.Config.KeyMappings))
	return layers.CreateCenteredLayer(box, m.UiState.Width(), m.UiState.Height())
}

func helpText(km config.KeyMappings) string {
	sections := []struct {
		title string
		keys  [][2]string
	}{
		{"Board", [][2]string{
			{km.PrevColumn + "/" + km.NextColumn, "previous/next column"},
			{km.PrevTask + "/" + km.NextTask, "previous/next task"},
			{km.MoveTaskLeft + "/" + km.MoveTaskRight, "move task to previous/next column"},
			{km.MoveTaskUp + "/" + km.MoveTaskDown, "reorder task"},
			{km.PrevBoard + "/" + km.NextBoard, "previous/next board"},
		}},
		{"Tasks", [][2]string{
			{km.AddTask, "new task"},
			{km.EditTask, "edit task"},
			{displayKey(km.ViewTask) + "/enter", "view task"},
			{km.SaveForm, "save form"},
		}},
		{"List", [][2]string{
			{km.ToggleView, "toggle board/list"},
			{km.Search, "search titles"},
			{km.FilterAssignee, "filter by assignee"},
			{km.CycleStatus, "cycle status filter"},
			{km.CycleBoard, "cycle board filter"},
			{km.ClearFilters, "clear filters"},
		}},
		{"Other", [][2]string{
			{km.Refresh, "reload tasks"},
			{km.ShowHelp, "toggle help"},
			{km.Quit, "quit"},
		}},
	}

	var b strings.Builder
	b.WriteString(components.TitleStyle.Render("Keyboard shortcuts"))
	for _, s := range sections {
		b.WriteString("\n\n")
		b.WriteString(components.TitleStyle.Render(s.title))
		for _, k := range s.keys {
			b.WriteString(fmt.Sprintf("\n  %-12s %s", k[0], k[1]))
		}
	}
	return b.String()
}

func displayKey(k string) string {
	if k == " " {
		return "space"
	}
	return k
}
