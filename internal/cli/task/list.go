package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/handler"
	"github.com/thenoetrevino/taskdeck/internal/cli/styles"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/projections"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long: `List every task, optionally narrowed by title, assignee, status or board.
Filters combine with AND. Text filters are case-insensitive substrings.

Examples:
  taskdeck task list
  taskdeck task list --search=login --status=InProgress
  taskdeck task list --assignee=ada --board=2 --json
  taskdeck task list --status=done --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runList),
	}

	cmd.Flags().String("search", "", "Only tasks whose title contains this text")
	cmd.Flags().String("assignee", "", "Only tasks whose assignee name contains this text")
	cmd.Flags().String("status", "", "Only tasks with this status: Backlog, InProgress, Done or all")
	cmd.Flags().Int("board", 0, "Only tasks of this board ID")

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, p *handler.FlagParser, out *cli.OutputFormatter) error {
	status, err := p.ParseStatus("status")
	if err != nil {
		return err
	}

	filter := projections.Filter{
		Search:   p.ParseStringOptional("search"),
		Assignee: p.ParseStringOptional("assignee"),
		Status:   status,
		BoardID:  p.ParseIntOptional("board"),
	}

	if err := c.App.ReloadTasks(ctx); err != nil {
		return err
	}
	tasks := c.App.Projector.List(filter)

	return out.Render(tasks, func(w io.Writer) error {
		return printTasks(w, tasks)
	})
}

func printTasks(w io.Writer, tasks []models.Task) error {
	if len(tasks) == 0 {
		_, err := fmt.Fprintln(w, "No tasks found")
		return err
	}

	fmt.Fprintf(w, "Found %d tasks:\n\n", len(tasks))
	for _, t := range tasks {
		fmt.Fprintf(w, "  %-12s %s\n", t.Status.Label(), styles.RenderTaskLine(t))
	}
	return nil
}
