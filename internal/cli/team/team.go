package team

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
)

// TeamCmd returns the team parent command
func TeamCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "teams",
		Aliases: []string{"team"},
		Short:   "Browse teams",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List teams",
		Args:  cobra.NoArgs,
		RunE:  handler.Command(runList),
	})

	show := &cobra.Command{
		Use:   "show [id]",
		Short: "Show a team with its members and boards",
		Args:  cobra.MaximumNArgs(1),
		RunE:  handler.Command(runShow),
	}
	show.Flags().Int("id", 0, "Team ID (can also be provided as positional argument)")
	cmd.AddCommand(show)

	return cmd
}

func runList(ctx context.Context, c *cli.CLI, _ *handler.FlagParser, out *cli.OutputFormatter) error {
	teams, err := c.App.Resources.ListTeams(ctx)
	if err != nil {
		return err
	}

	return out.Render(teams, func(w io.Writer) error {
		if len(teams) == 0 {
			_, err := fmt.Fprintln(w, "No teams found")
			return err
		}
		fmt.Fprintf(w, "Found %d teams:\n\n", len(teams))
		for _, t := range teams {
			fmt.Fprintf(w, "  [%d] %s %s\n", t.ID, styles.TitleStyle.Render(t.Name),
				styles.SubtitleStyle.Render(fmt.Sprintf("(%d users, %d boards)", t.UsersCount, t.BoardsCount)))
		}
		return nil
	})
}

func runShow(ctx context.Context, c *cli.CLI, p *handler.FlagParser, out *cli.OutputFormatter) error {
	teamID, err := p.ParseID("id")
	if err != nil {
		return err
	}

	team, err := c.App.Resources.GetTeam(ctx, teamID)
	if err != nil {
		return err
	}

	return out.Render(team, func(w io.Writer) error {
		_, err := fmt.Fprintln(w, renderTeam(team))
		return err
	})
}

func renderTeam(t models.TeamDetails) string {
	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(t.Name))
	if t.Description != "" {
		b.WriteString("\n")
		b.WriteString(styles.SubtitleStyle.Render(t.Description))
	}

	b.WriteString("\n")
	b.WriteString(styles.SectionStyle.Render(fmt.Sprintf("Members (%d)", len(t.Users))))
	for _, u := range t.Users {
		fmt.Fprintf(&b, "\n  [%d] %s %s", u.ID, u.FullName, styles.SubtitleStyle.Render(u.Email))
	}

	b.WriteString("\n")
	b.WriteString(styles.SectionStyle.Render(fmt.Sprintf("Boards (%d)", len(t.Boards))))
	for _, bd := range t.Boards {
		fmt.Fprintf(&b, "\n  [%d] %s", bd.ID, bd.Name)
	}

	return styles.RenderCard(b.String())
}
