// Package cli holds helpers for command tests. It is separate from
// testutil so packages imported by the cli package can use testutil
// without an import cycle.
package cli

import (
	"context"
	"database/sql"
	"testing"

	"github.com/spf13/cobra"

	"github.com/thenoetrevino/taskdeck/internal/app"
	taskcli "github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/testutil"
)

// SetupCLITest starts a seeded test API and returns its database and an
// app pointed at it
func SetupCLITest(t *testing.T) (*sql.DB, *app.App) {
	t.Helper()
	a, db := testutil.NewTestApp(t)
	return db, a
}

// ExecuteCLICommand runs cmd against testApp and returns its stdout
func ExecuteCLICommand(t *testing.T, testApp *app.App, cmd *cobra.Command, args []string) (string, error) {
	t.Helper()
	stdout, _, err := ExecuteCLICommandFull(t, context.Background(), testApp, cmd, args)
	return stdout, err
}

// ExecuteCLICommandFull runs cmd against testApp and returns both streams
func ExecuteCLICommandFull(t *testing.T, ctx context.Context, testApp *app.App, cmd *cobra.Command, args []string) (string, string, error) {
	t.Helper()

	if testApp == nil {
		t.Fatal("testApp cannot be nil - SetupCLITest must be called first")
	}

	// Subcommands run without the root, so they need the output flags here
	if cmd.PersistentFlags().Lookup("json") == nil && cmd.Flags().Lookup("json") == nil {
		taskcli.AddOutputFlags(cmd)
	}
	testutil.SetupCobraCommand(cmd, args)
	cmd.SetContext(taskcli.WithApp(ctx, testApp))

	return testutil.ExecuteCommand(t, cmd)
}
