package board

import (
	"context"
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/handler"
	"github.com/thenoetrevino/taskdeck/internal/cli/styles"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/projections"
)

// ShowCmd returns the board show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a board as kanban columns",
		Long: `Show the tasks of a board grouped into Backlog, In progress and Done.
Each column is sorted by priority, highest first.

Examples:
  taskdeck boards show 1
  taskdeck boards show --id 1 --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runShow),
	}

	cmd.Flags().Int("id", 0, "Board ID (can also be provided as positional argument)")

	return cmd
}

// boardView is the JSON shape of a board with its columns
type boardView struct {
	Board   models.Board                   `json:"board"`
	Columns map[models.Status][]models.Task `json:"columns"`
}

// GetID returns the board id (used by quiet output)
func (v boardView) GetID() int {
	return v.Board.ID
}

func runShow(ctx context.Context, c *cli.CLI, p *handler.FlagParser, out *cli.OutputFormatter) error {
	boardID, err := p.ParseID("id")
	if err != nil {
		return err
	}

	tasks, err := c.App.Resources.ListTasksForBoard(ctx, boardID)
	if err != nil {
		return err
	}
	cols := projections.GroupByBoard(tasks, boardID)

	view := boardView{
		Board:   findBoard(ctx, c, boardID),
		Columns: make(map[models.Status][]models.Task, models.NumColumns),
	}
	for _, opt := range models.Statuses() {
		view.Columns[opt.Value] = cols.Column(opt.Value)
	}

	return out.Render(view, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, renderColumns(view.Board.Name, cols))
		return err
	})
}

// findBoard looks the board up in the cached board list. The task list is
// authoritative, so a missing board only loses its name.
func findBoard(ctx context.Context, c *cli.CLI, boardID int) models.Board {
	boards, err := c.App.Resources.ListBoards(ctx)
	if err == nil {
		for _, b := range boards {
			if b.ID == boardID {
				return b
			}
		}
	}
	return models.Board{ID: boardID, Name: fmt.Sprintf("Board %d", boardID)}
}

func renderColumns(name string, cols projections.Columns) string {
	rendered := make([]string, 0, models.NumColumns)
	for _, opt := range models.Statuses() {
		tasks := cols.Column(opt.Value)

		var b strings.Builder
		b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("%s (%d)", opt.Label, len(tasks))))
		b.WriteString("\n")
		if len(tasks) == 0 {
			b.WriteString(styles.SubtitleStyle.Render("empty"))
		}
		for i, t := range tasks {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(styles.RenderTaskLine(t))
		}
		rendered = append(rendered, styles.ColumnStyle.Render(b.String()))
	}

	header := styles.TitleStyle.Render(name)
	return lipgloss.JoinVertical(lipgloss.Left, header, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
}
