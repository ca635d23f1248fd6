package render

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskdeck/internal/config"
	"github.com/thenoetrevino/taskdeck/internal/testutil/tuitest"
	"github.com/thenoetrevino/taskdeck/internal/tui/state"
)

func TestView_WaitsForSize(t *testing.T) {
	m := tuitest.NewModel(t, 0, 0)

	view := View(m)
	assert.Equal(t, "Loading...", view.Content)
	assert.True(t, view.AltScreen)
}

func TestView_Board(t *testing.T) {
	m := tuitest.NewModel(t, 150, 40)

	content := View(m).Content
	assert.Contains(t, content, "Infrastructure")
	assert.Contains(t, content, "Backlog (1)")
	assert.Contains(t, content, "In progress (1)")
	assert.Contains(t, content, "Rotate TLS certificates")
	assert.Contains(t, content, "press ? for help")
}

func TestView_LoadErrorKeepsTasks(t *testing.T) {
	m := tuitest.NewModel(t, 150, 40)

	m.App.Store.FailLoad(errors.New("connection refused"))
	m.Snapshot = m.App.Store.Snapshot()
	require.True(t, m.Snapshot.HasError())

	content := View(m).Content
	assert.Contains(t, content, "Could not load tasks")
	assert.Contains(t, content, "Rotate TLS certificates")
}

func TestView_List(t *testing.T) {
	m := tuitest.NewModel(t, 150, 40)
	m.ListViewState.ToggleView()
	m.ListViewState.SetAssignee("alan")

	content := View(m).Content
	assert.Contains(t, content, "Fix login redirect")
	assert.Contains(t, content, "Paginate task table")
	assert.NotContains(t, content, "Product tour")
	assert.Contains(t, content, "assignee: alan")
}

func TestView_Dialogs(t *testing.T) {
	m := tuitest.NewModel(t, 150, 40)

	m.UiState.SetMode(state.HelpMode)
	assert.Contains(t, View(m).Content, "Keyboard shortcuts")

	m.UiState.ShowDetail(1)
	content := View(m).Content
	assert.Contains(t, content, "#1 Upgrade CI runners")
	assert.Contains(t, content, "Ada Byron")

	m.UiState.ShowDetail(999)
	assert.Contains(t, View(m).Content, "no longer available")
}

func TestDescribeFilter(t *testing.T) {
	m := tuitest.NewModel(t, 150, 40)
	assert.Equal(t, "all tasks", describeFilter(m))

	m.ListViewState.CycleStatus()
	m.ListViewState.CycleBoard(m.Boards)
	assert.Equal(t, "status: Backlog  board: Infrastructure", describeFilter(m))
}

func TestHelpText_UsesConfiguredKeys(t *testing.T) {
	km := config.DefaultKeyMappings()
	km.AddTask = "n"

	text := helpText(km)
	assert.Contains(t, text, "n            new task")
	assert.Contains(t, text, "space/enter")
}
