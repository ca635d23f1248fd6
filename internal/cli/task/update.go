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

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update [id]",
		Short: "Update a task",
		Long: `Update the title, description, priority, status or assignee of a task.
Only the flags you pass are changed. The board of a task cannot change.

Examples:
  taskdeck task update 12 --title="New title"
  taskdeck task update --id=12 --priority=high --status=InProgress
  taskdeck task update 12 --assignee=3
  taskdeck task update 12 --unassign
`,
		Args: cobra.MaximumNArgs(1),
		RunE: handler.Command(runUpdate),
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cmd.Flags().String("title", "", "New title")
	cmd.Flags().String("description", "", "New description in markdown (use - for stdin)")
	cmd.Flags().String("priority", "", "New priority: Low, Medium or High")
	cmd.Flags().String("status", "", "New status: Backlog, InProgress or Done")
	cmd.Flags().Int("assignee", 0, "New assignee user ID")
	cmd.Flags().Bool("unassign", false, "Remove the assignee")

	return cmd
}

func runUpdate(ctx context.Context, c *cli.CLI, p *handler.FlagParser, out *cli.OutputFormatter) error {
	taskID, err := p.ParseID("id")
	if err != nil {
		return err
	}
	priority, err := p.ParsePriority("priority")
	if err != nil {
		return err
	}
	status, err := p.ParseStatus("status")
	if err != nil {
		return err
	}

	original, err := c.App.Resources.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	form := mutation.FormFromTask(original)
	if p.Changed("title") {
		form.Title = p.ParseStringOptional("title")
	}
	if p.Changed("description") {
		if form.Description, err = p.ParseText("description"); err != nil {
			return err
		}
	}
	if priority != "" {
		form.Priority = priority
	}
	if status != "" {
		form.Status = status
	}
	if p.Changed("assignee") {
		form.AssigneeID = p.ParseIntOptional("assignee")
	}
	unassign, _ := p.Bool("unassign")
	if unassign {
		form.AssigneeID = 0
	}

	if form.AssigneeID != 0 {
		if _, err := c.App.Resources.ListUsers(ctx); err != nil {
			return err
		}
	}

	task, err := c.App.Coordinator.Edit(ctx, original, form)
	if err != nil {
		return err
	}

	return out.Render(task, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✅ Updated task %d: %s\n", task.ID, task.Title)
		return err
	})
}
