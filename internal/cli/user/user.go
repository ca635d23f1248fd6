package user

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/handler"
	"github.com/thenoetrevino/taskdeck/internal/cli/styles"
)

// UserCmd returns the user parent command
func UserCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "users",
		Aliases: []string{"user"},
		Short:   "Browse users and their tasks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List users",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(runList),
	})

	tasks := &cobra.Command{
		Use:   "tasks [id]",
		Short: "List the tasks assigned to a user",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(runTasks),
	}
	tasks.Flags().Int("id", 0, "User ID (can also be provided as positional argument)")
	cmd.AddCommand(tasks)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, _ *handler.FlagParser, out *cli.OutputFormatter) error {
	users, err := c.App.Resources.ListUsers(ctx)
	if err != nil {
		return err
	}

	return out.Render(users, func(w io.Writer) error {
		if len(users) == 0 {
			_, err := fmt.Fprintln(w, "No users found")
			return err
		}
		fmt.Fprintf(w, "Found %d users:\n\n", len(users))
		for _, u := range users {
			fmt.Fprintf(w, "  [%d] %s %s %s\n", u.ID, styles.TitleStyle.Render(u.FullName),
				styles.SubtitleStyle.Render(u.TeamName),
				styles.SubtitleStyle.Render(fmt.Sprintf("(%d tasks)", u.TasksCount)))
		}
		return nil
	})
}

func runTasks(ctx context.Context, c *cli.CLI, p *handler.FlagParser, out *cli.OutputFormatter) error {
	userID, err := p.ParseID("id")
	if err != nil {
		return err
	}

	tasks, err := c.App.Resources.ListTasksForUser(ctx, userID)
	if err != nil {
		return err
	}

	return out.Render(tasks, func(w io.Writer) error {
		if len(tasks) == 0 {
			_, err := fmt.Fprintf(w, "No tasks assigned to user %d\n", userID)
			return err
		}
		fmt.Fprintf(w, "Found %d tasks:\n\n", len(tasks))
		for _, t := range tasks {
			fmt.Fprintf(w, "  %-12s %s\n", t.Status.Label(), styles.RenderTaskLine(t))
		}
		return nil
	})
}
