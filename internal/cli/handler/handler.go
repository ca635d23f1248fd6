// Package handler provides command execution abstraction to reduce boilerplate
package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskdeck/internal/cli"
)

// RunFunc executes one command against an initialized CLI
type RunFunc func(ctx context.Context, c *cli.CLI, p *FlagParser, out *cli.OutputFormatter) error

// Command wraps common command execution logic: output flags, CLI
// lookup and cleanup, and mapping errors to exit codes.
// Returns a cobra RunE compatible function
func Command(run RunFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		formatter := cli.NewOutputFormatter(cmd)

		cliInstance, err := cli.GetCLIFromContext(ctx)
		if err != nil {
			if fmtErr := formatter.Error("INITIALIZATION_ERROR", err.Error()); fmtErr != nil {
				slog.Error("failed to format error message", "error", fmtErr)
			}
			return cli.Exit(cli.ExitDataErr, err)
		}
		defer func() {
			if err := cliInstance.Close(); err != nil {
				slog.Error("failed to close CLI", "error", err)
			}
		}()

		err = run(ctx, cliInstance, NewFlagParser(cmd, args, formatter), formatter)
		if err == nil {
			return nil
		}

		// Already reported
		var exitErr *cli.CodedError
		if errors.As(err, &exitErr) {
			return err
		}
		return formatter.Fail(err)
	}
}
