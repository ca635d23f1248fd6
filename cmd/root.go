package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/cli/board"
	"github.com/thenoetrevino/taskdeck/internal/cli/configure"
	"github.com/thenoetrevino/taskdeck/internal/cli/task"
	"github.com/thenoetrevino/taskdeck/internal/cli/team"
	"github.com/thenoetrevino/taskdeck/internal/cli/user"
	"github.com/thenoetrevino/taskdeck/internal/config"
	"github.com/thenoetrevino/taskdeck/internal/launcher"
	"github.com/thenoetrevino/taskdeck/internal/logging"
)

// NewRootCmd builds the taskdeck command tree
func NewRootCmd() *cobra.Command {
	var logCloser io.Closer

	rootCmd := &cobra.Command{
		Use:   "taskdeck",
		Short: "taskdeck - a terminal client for a shared task tracker",
		Long: `taskdeck keeps a local copy of your team's tasks in sync with the task API.

Run without arguments to open the kanban board, or use the subcommands
for scripting. Every subcommand accepts --json and --quiet.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			closer, err := logging.Init(cfg.Log.Level)
			if err != nil {
				// Logging is best effort; commands still work without it
				slog.Debug("file logging unavailable", "error", err)
				return nil
			}
			logCloser = closer
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if logCloser != nil {
				return logCloser.Close()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return launcher.Launch(cmd.Context())
		},
	}

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n\n%s", err, cmd.UsageString())
		return cli.Exit(cli.ExitUsage, err)
	})

	cli.AddOutputFlags(rootCmd)

	rootCmd.AddCommand(board.BoardCmd())
	rootCmd.AddCommand(task.TaskCmd())
	rootCmd.AddCommand(team.TeamCmd())
	rootCmd.AddCommand(user.UserCmd())
	rootCmd.AddCommand(configure.ConfigCmd())

	return rootCmd
}

// Execute runs the root command and returns the process exit code
func Execute() int {
	err := NewRootCmd().ExecuteContext(context.Background())
	if err == nil {
		return cli.ExitSuccess
	}

	// Command errors are already reported by the output formatter
	var exitErr *cli.CodedError
	if !errors.As(err, &exitErr) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return cli.ExitCode(err)
}
