package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskdeck/internal/testutil/cli"
)

func TestUserCommands(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	t.Run("list", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, UserCmd(), []string{"list"})

		require.NoError(t, err)
		assert.Contains(t, output, "Found 4 users")
		assert.Contains(t, output, "Ada Byron")
		assert.Contains(t, output, "Platform")
	})

	t.Run("tasks quiet", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, UserCmd(), []string{"tasks", "1", "--quiet"})

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"1", "3"}, strings.Fields(output))
	})

	t.Run("tasks by flag", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, UserCmd(), []string{"tasks", "--id", "2"})

		require.NoError(t, err)
		assert.Contains(t, output, "Rotate TLS certificates")
	})
}
