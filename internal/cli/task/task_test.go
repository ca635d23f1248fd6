package task

import (
	"encoding/json"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taskcli "github.com/thenoetrevino/taskdeck/internal/cli"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/testutil/cli"
)

type taskEnvelope struct {
	Success bool        `json:"success"`
	Data    models.Task `json:"data"`
}

type listEnvelope struct {
	Success bool          `json:"success"`
	Data    []models.Task `json:"data"`
}

type errorEnvelope struct {
	Success bool `json:"success"`
	Error   struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func quietIDs(output string) []string {
	return strings.Fields(strings.TrimSpace(output))
}

func TestListTask_Positive(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	t.Run("human readable", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), nil)

		require.NoError(t, err)
		assert.Contains(t, output, "Found 8 tasks")
		assert.Contains(t, output, "Upgrade CI runners")
		assert.Contains(t, output, "Product tour")
	})

	t.Run("quiet mode", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--quiet"})

		require.NoError(t, err)
		assert.Len(t, quietIDs(output), 8)
	})

	t.Run("filter by status", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "backlog", "--quiet"})

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"2", "4", "5", "8"}, quietIDs(output))
	})

	t.Run("status all matches everything", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "all", "--quiet"})

		require.NoError(t, err)
		assert.Len(t, quietIDs(output), 8)
	})

	t.Run("filters combine", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{
			"--assignee", "ADA", "--board", "1", "--search", "ci", "--json",
		})

		require.NoError(t, err)
		var env listEnvelope
		require.NoError(t, json.Unmarshal([]byte(output), &env))
		assert.True(t, env.Success)
		require.Len(t, env.Data, 1)
		assert.Equal(t, "Upgrade CI runners", env.Data[0].Title)
		assert.Equal(t, "Infrastructure", env.Data[0].BoardName)
	})

	t.Run("no matches", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--search", "nothing like this"})

		require.NoError(t, err)
		assert.Contains(t, output, "No tasks found")
	})
}

func TestListTask_InvalidStatus(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	_, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "Blocked"})

	require.Error(t, err)
	assert.Equal(t, taskcli.ExitValidation, taskcli.ExitCode(err))
}

func TestShowTask(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	t.Run("positional id", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"4"})

		require.NoError(t, err)
		assert.Contains(t, output, "Fix login redirect")
		assert.Contains(t, output, "Alan Kay")
		assert.Contains(t, output, "Web app")
	})

	t.Run("json", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"--id", "5", "--json"})

		require.NoError(t, err)
		var env taskEnvelope
		require.NoError(t, json.Unmarshal([]byte(output), &env))
		assert.Equal(t, "Dark mode", env.Data.Title)
		assert.Zero(t, env.Data.Assignee.ID)
	})

	t.Run("unassigned task", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"5"})

		require.NoError(t, err)
		assert.Contains(t, output, "Unassigned")
		assert.Contains(t, output, "No description")
	})

	t.Run("not found", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"999"})

		require.Error(t, err)
		assert.Equal(t, taskcli.ExitNotFound, taskcli.ExitCode(err))
	})

	t.Run("invalid id", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, ShowCmd(), []string{"abc"})

		require.Error(t, err)
		assert.Equal(t, taskcli.ExitUsage, taskcli.ExitCode(err))
	})
}

func TestCreateTask(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	t.Run("quiet prints the new id", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Write tests", "--board", "1", "--quiet",
		})

		require.NoError(t, err)
		id, err := strconv.Atoi(strings.TrimSpace(output))
		require.NoError(t, err)
		assert.Greater(t, id, 8)

		stored, ok := app.Store.Get(id)
		require.True(t, ok, "created task should be in the store")
		assert.Equal(t, models.StatusBacklog, stored.Status)
		assert.Equal(t, models.PriorityMedium, stored.Priority)
	})

	t.Run("json with assignee and priority", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, CreateCmd(), []string{
			"--title", "Audit logs", "--board", "2", "--assignee", "2", "--priority", "high", "--json",
		})

		require.NoError(t, err)
		var env taskEnvelope
		require.NoError(t, json.Unmarshal([]byte(output), &env))
		assert.True(t, env.Success)
		assert.Equal(t, models.PriorityHigh, env.Data.Priority)
		assert.Equal(t, "Grace Hopper", env.Data.Assignee.FullName)
		assert.Equal(t, 2, env.Data.BoardID)
	})

	t.Run("description from stdin", func(t *testing.T) {
		cmd := CreateCmd()
		cmd.SetIn(strings.NewReader("piped **markdown**\n"))

		output, err := cli.ExecuteCLICommand(t, app, cmd, []string{
			"--title", "From pipe", "--board", "3", "--description", "-", "--json",
		})

		require.NoError(t, err)
		var env taskEnvelope
		require.NoError(t, json.Unmarshal([]byte(output), &env))
		assert.Equal(t, "piped **markdown**", env.Data.Description)
	})
}

func TestCreateTask_Negative(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	tests := []struct {
		name string
		args []string
		code int
	}{
		{"missing title", []string{"--board", "1"}, taskcli.ExitValidation},
		{"blank title", []string{"--title", "   ", "--board", "1"}, taskcli.ExitValidation},
		{"missing board", []string{"--title", "Orphan"}, taskcli.ExitValidation},
		{"bad priority", []string{"--title", "X", "--board", "1", "--priority", "urgent"}, taskcli.ExitValidation},
		{"unknown board", []string{"--title", "X", "--board", "99"}, taskcli.ExitValidation},
	}

	before := app.Store.Len()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := cli.ExecuteCLICommandFull(t, t.Context(), app, CreateCmd(), append(tt.args, "--json"))

			require.Error(t, err)
			assert.Equal(t, tt.code, taskcli.ExitCode(err))

			var env errorEnvelope
			require.NoError(t, json.Unmarshal([]byte(stdout), &env))
			assert.False(t, env.Success)
			assert.NotEmpty(t, env.Error.Message)
		})
	}
	assert.Equal(t, before, app.Store.Len(), "failed creates must not touch the store")
}

func TestUpdateTask(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	t.Run("changes only the given fields", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{
			"2", "--title", "Rotate all certificates", "--priority", "high", "--json",
		})

		require.NoError(t, err)
		var env taskEnvelope
		require.NoError(t, json.Unmarshal([]byte(output), &env))
		assert.Equal(t, "Rotate all certificates", env.Data.Title)
		assert.Equal(t, models.PriorityHigh, env.Data.Priority)
		assert.Equal(t, models.StatusBacklog, env.Data.Status)
		assert.Equal(t, "Grace Hopper", env.Data.Assignee.FullName)
		assert.Equal(t, 1, env.Data.BoardID)
	})

	t.Run("server keeps the edit", func(t *testing.T) {
		remote, err := app.Gateway.GetTask(t.Context(), 2)

		require.NoError(t, err)
		assert.Equal(t, "Rotate all certificates", remote.Title)
		assert.Equal(t, models.PriorityHigh, remote.Priority)
	})

	t.Run("reassign and unassign", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"5", "--assignee", "1", "--json"})
		require.NoError(t, err)
		var env taskEnvelope
		require.NoError(t, json.Unmarshal([]byte(output), &env))
		assert.Equal(t, "Ada Byron", env.Data.Assignee.FullName)

		output, err = cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"5", "--unassign", "--json"})
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal([]byte(output), &env))
		assert.Zero(t, env.Data.Assignee.ID)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"999", "--title", "Nope"})

		require.Error(t, err)
		assert.Equal(t, taskcli.ExitNotFound, taskcli.ExitCode(err))
	})

	t.Run("blank title rejected", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, UpdateCmd(), []string{"1", "--title", ""})

		require.Error(t, err)
		assert.Equal(t, taskcli.ExitValidation, taskcli.ExitCode(err))
	})
}

func TestMoveTask(t *testing.T) {
	_, app := cli.SetupCLITest(t)

	t.Run("next", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"2", "next"})

		require.NoError(t, err)
		assert.Contains(t, output, "Moved task 2 to In progress")
	})

	t.Run("explicit status with flags", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"--id", "4", "--to", "done", "--json"})

		require.NoError(t, err)
		var env taskEnvelope
		require.NoError(t, json.Unmarshal([]byte(output), &env))
		assert.Equal(t, models.StatusDone, env.Data.Status)
	})

	t.Run("prev from first column", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"8", "prev"})

		require.Error(t, err)
		assert.Equal(t, taskcli.ExitValidation, taskcli.ExitCode(err))
	})

	t.Run("next from last column", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"7", "next"})

		require.Error(t, err)
		assert.Equal(t, taskcli.ExitValidation, taskcli.ExitCode(err))
	})

	t.Run("missing target", func(t *testing.T) {
		_, err := cli.ExecuteCLICommand(t, app, MoveCmd(), []string{"1"})

		require.Error(t, err)
		assert.Equal(t, taskcli.ExitUsage, taskcli.ExitCode(err))
	})

	t.Run("list reflects moves", func(t *testing.T) {
		output, err := cli.ExecuteCLICommand(t, app, ListCmd(), []string{"--status", "InProgress", "--quiet"})

		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"1", "2", "6"}, quietIDs(output))
	})
}

func TestResolveTarget(t *testing.T) {
	tests := []struct {
		current models.Status
		target  string
		want    models.Status
		wantErr error
	}{
		{models.StatusBacklog, "next", models.StatusInProgress, nil},
		{models.StatusInProgress, "RIGHT", models.StatusDone, nil},
		{models.StatusDone, "prev", models.StatusInProgress, nil},
		{models.StatusBacklog, "left", models.StatusBacklog, models.ErrAlreadyFirstColumn},
		{models.StatusDone, "next", models.StatusDone, models.ErrAlreadyLastColumn},
		{models.StatusBacklog, "inprogress", models.StatusInProgress, nil},
		{models.StatusBacklog, "Blocked", "", models.ErrInvalidStatus},
	}

	for _, tt := range tests {
		t.Run(string(tt.current)+"->"+tt.target, func(t *testing.T) {
			got, err := resolveTarget(tt.current, tt.target)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
