package task

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/handler"
	"github.com/thenoetrevino/taskdeck/internal/mutation"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new task",
		Long: `Create a new task on a board. New tasks always start in Backlog.

Examples:
  # Simple task (human-readable output)
  taskdeck task create --title="Fix bug" --board=1

  # JSON output for agents
  taskdeck task create --title="Fix bug" --board=1 --json

  # Quiet mode for bash capture
  TASK_ID=$(taskdeck task create --title="Fix bug" --board=1 --quiet)

  # Full example with all options
  taskdeck task create \
    --title="Add authentication" \
    --description="Implement JWT auth" \
    --priority=high \
    --assignee=2 \
    --board=1
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runCreate),
	}

	cmd.Flags().String("title", "", "Task title (required)")
	cmd.Flags().Int("board", 0, "Board ID (required)")
	cmd.Flags().String("description", "", "Task description in markdown (use - for stdin)")
	cmd.Flags().String("priority", "", "Priority: Low, Medium or High (default Medium)")
	cmd.Flags().Int("assignee", 0, "Assignee user ID")

	return cmd
}

func runCreate(ctx context.Context, c *cli.CLI, p *handler.FlagParser, out *cli.OutputFormatter) error {
	priority, err := p.ParsePriority("priority")
	if err != nil {
		return err
	}
	description, err := p.ParseText("description")
	if err != nil {
		return err
	}

	form := mutation.NewTaskForm(p.ParseIntOptional("board"))
	form.Title = p.ParseStringOptional("title")
	form.Description = description
	form.AssigneeID = p.ParseIntOptional("assignee")
	if priority != "" {
		form.Priority = priority
	}

	// The assignee summary is copied from the user list
	if form.AssigneeID != 0 {
		if _, err := c.App.Resources.ListUsers(ctx); err != nil {
			return err
		}
	}

	task, err := c.App.Coordinator.Create(ctx, form)
	if err != nil {
		return err
	}

	return out.Render(task, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✅ Created task %d: %s\n", task.ID, task.Title)
		return err
	})
}
