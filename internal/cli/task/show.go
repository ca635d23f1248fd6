package task

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/handler"
	"github.com/thenoetrevino/taskdeck/internal/cli/styles"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/tui/components"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show [id]",
		Short: "Show task details",
		Long:  "Display all details of a task including its board, assignee and rendered description.",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(runShow),
	}

	cmd.Flags().Int("id", 0, "Task ID (can also be provided as positional argument)")

	return cmd
}

func runShow(ctx context.Context, c *cli.CLI, p *handler.FlagParser, out *cli.OutputFormatter) error {
	taskID, err := p.ParseID("id")
	if err != nil {
		return err
	}

	task, err := c.App.Resources.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	return out.Render(task, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, renderTaskCard(task))
		return err
	})
}

func renderTaskCard(t models.Task) string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("#%d %s", t.ID, t.Title)))
	b.WriteString("\n\n")
	b.WriteString(styles.RenderField("Board", fmt.Sprintf("%s (%d)", t.BoardName, t.BoardID)))
	b.WriteString("\n")
	b.WriteString(styles.RenderField("Status", t.Status.Label()))
	b.WriteString("\n")
	b.WriteString(styles.LabelStyle.Render("Priority:") + " " + styles.RenderPriority(t.Priority))
	b.WriteString("\n")
	b.WriteString(styles.RenderField("Assignee", assigneeLabel(t.Assignee)))

	b.WriteString("\n")
	b.WriteString(styles.SectionStyle.Render("Description"))
	b.WriteString("\n")
	b.WriteString(components.RenderDescription(components.DescriptionProps{
		Description: t.Description,
		Width:       styles.CardWidth - 6,
	}))

	return styles.RenderCard(b.String())
}

func assigneeLabel(a models.AssigneeUser) string {
	if a.ID == 0 {
		return "Unassigned"
	}
	if a.Email == "" {
		return a.FullName
	}
	return fmt.Sprintf("%s <%s>", a.FullName, a.Email)
}
