package board

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

// ListCmd returns the board list subcommand
func ListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List boards",
		Long: `List all boards sorted by name.

Examples:
  taskdeck boards list
  taskdeck boards list --json
  taskdeck boards list --quiet
`,
		Args: cobra.NoArgs,
		RunE: handler.Command(runList),
	}
}

func runList(ctx context.Context, c *cli.CLI, _ *handler.FlagParser, out *cli.OutputFormatter) error {
	boards, err := c.App.Resources.ListBoards(ctx)
	if err != nil {
		return err
	}
	boards = projections.SortBoards(boards, c.Config.Locale)

	return out.Render(boards, func(w io.Writer) error {
		return printBoards(w, boards)
	})
}

func printBoards(w io.Writer, boards []models.Board) error {
	if len(boards) == 0 {
		_, err := fmt.Fprintln(w, "No boards found")
		return err
	}

	fmt.Fprintf(w, "Found %d boards:\n\n", len(boards))
	for _, b := range boards {
		fmt.Fprintf(w, "  [%d] %s %s\n", b.ID, styles.TitleStyle.Render(b.Name),
			styles.SubtitleStyle.Render(fmt.Sprintf("(%d tasks)", b.TaskCount)))
	}
	return nil
}
