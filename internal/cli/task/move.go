package task

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/handler"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// MoveCmd returns the task move subcommand
func MoveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "move [id] [next|prev|status]",
		Short: "Move a task to another column",
		Long: `Change the status of a task. The target is next, prev, or a status name.

Examples:
  taskdeck task move 12 next
  taskdeck task move 12 Done
  taskdeck task move --id=12 --to=prev --json
`,
		Args: cobra.MaximumNArgs(2),
		RunE: handler.Command(runMove),
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")
	cmd.Flags().String("to", "", "Target: next, prev, Backlog, InProgress or Done")

	return cmd
}

func runMove(ctx context.Context, c *cli.CLI, p *handler.FlagParser, out *cli.OutputFormatter) error {
	taskID, err := p.ParseID("id")
	if err != nil {
		return err
	}

	target := p.ParseStringOptional("to")
	if args := p.Args(); len(args) > 1 {
		target = args[1]
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return p.Usage("MISSING_TARGET", "a target column is required: next, prev or a status")
	}

	task, err := c.App.Resources.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	status, err := resolveTarget(task.Status, target)
	if err != nil {
		return err
	}

	if err := c.App.Coordinator.MoveStatus(ctx, taskID, status); err != nil {
		return err
	}
	moved := task.WithStatus(status)

	return out.Render(moved, func(w io.Writer) error {
		_, err := fmt.Fprintf(w, "✅ Moved task %d to %s\n", moved.ID, status.Label())
		return err
	})
}

// resolveTarget turns next/prev into a status relative to current
func resolveTarget(current models.Status, target string) (models.Status, error) {
	switch strings.ToLower(target) {
	case "next", "right":
		return current.Next()
	case "prev", "left":
		return current.Prev()
	default:
		return models.ParseStatus(target)
	}
}
