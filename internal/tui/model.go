package tui

import (
	"context"

	"github.com/thenoetrevino/taskdeck/internal/app"
	"github.com/thenoetrevino/taskdeck/internal/config"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/mutation"
	"github.com/thenoetrevino/taskdeck/internal/projections"
	"github.com/thenoetrevino/taskdeck/internal/store"
	"github.com/thenoetrevino/taskdeck/internal/tui/state"
)

// Model represents the application state for the TUI
type Model struct {
	// Ctx is cancelled when the program shuts down
	Ctx context.Context

	App    *app.App
	Config *config.Config

	UiState           *state.UIState
	ListViewState     *state.ListViewState
	SearchState       *state.SearchState
	FormState         *state.FormState
	NotificationState *state.NotificationState

	// Boards are sorted for display; UiState.SelectedBoard indexes them
	Boards []models.Board
	Users  []models.User

	// Shadow holds the kanban columns of the selected board
	Shadow *mutation.BoardShadow

	// Snapshot is the last store snapshot the model has seen
	Snapshot store.Snapshot

	StoreChan           <-chan store.Snapshot
	unsubscribe         func()
	SubscriptionStarted bool

	// DragsInFlight counts board commits awaiting the server
	DragsInFlight int

	// StaleTasks marks tasks whose last edit the server rejected
	StaleTasks map[int]bool
}

// InitialModel creates the TUI model on top of an application container.
// Data is fetched by the commands returned from Init.
func InitialModel(ctx context.Context, a *app.App) Model {
	storeChan, unsubscribe := a.Store.Subscribe()

	return Model{
		Ctx:               ctx,
		App:               a,
		Config:            a.Config,
		UiState:           state.NewUIState(),
		ListViewState:     state.NewListViewState(),
		SearchState:       state.NewSearchState(),
		FormState:         state.NewFormState(),
		NotificationState: state.NewNotificationState(),
		Snapshot:          a.Store.Snapshot(),
		StoreChan:         storeChan,
		unsubscribe:       unsubscribe,
		StaleTasks:        make(map[int]bool),
	}
}

// Close stops the store subscription
func (m *Model) Close() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
}

// SetBoards replaces the board list, keeping the selected board when it still exists
func (m *Model) SetBoards(boards []models.Board) {
	current := m.CurrentBoardID()
	m.Boards = projections.SortBoards(boards, m.Config.Locale)

	for i, b := range m.Boards {
		if b.ID == current {
			if i != m.UiState.SelectedBoard() {
				m.UiState.SetSelectedBoard(i)
			}
			m.ensureShadow()
			return
		}
	}
	m.SelectBoard(0)
}

// SelectBoard switches the kanban view to the board at index
func (m *Model) SelectBoard(index int) {
	if len(m.Boards) == 0 {
		m.Shadow = nil
		return
	}
	index = max(0, min(index, len(m.Boards)-1))
	m.UiState.SetSelectedBoard(index)
	m.ensureShadow()
}

func (m *Model) ensureShadow() {
	board, ok := m.CurrentBoard()
	if !ok {
		m.Shadow = nil
		return
	}
	if m.Shadow == nil || m.Shadow.BoardID() != board.ID {
		m.Shadow = m.App.Coordinator.NewBoardShadow(m.App.Store, board.ID)
	}
}

// CurrentBoard returns the selected board
func (m *Model) CurrentBoard() (models.Board, bool) {
	idx := m.UiState.SelectedBoard()
	if idx < 0 || idx >= len(m.Boards) {
		return models.Board{}, false
	}
	return m.Boards[idx], true
}

// CurrentBoardID returns the selected board id, or 0
func (m *Model) CurrentBoardID() int {
	b, ok := m.CurrentBoard()
	if !ok {
		return 0
	}
	return b.ID
}

// Columns returns the kanban columns of the selected board
func (m *Model) Columns() projections.Columns {
	if m.Shadow == nil {
		return projections.Columns{}
	}
	return m.Shadow.Columns()
}

// CurrentColumnTasks returns the tasks of the selected column
func (m *Model) CurrentColumnTasks() []models.Task {
	cols := m.Columns()
	idx := m.UiState.SelectedColumn()
	if idx < 0 || idx >= models.NumColumns {
		return nil
	}
	return cols[idx]
}

// CurrentTask returns the task under the cursor in the active view
func (m *Model) CurrentTask() (models.Task, bool) {
	if m.ListViewState.IsListView() {
		rows := m.ListTasks()
		idx := m.ListViewState.SelectedRow()
		if idx < 0 || idx >= len(rows) {
			return models.Task{}, false
		}
		return rows[idx], true
	}

	tasks := m.CurrentColumnTasks()
	idx := m.UiState.SelectedTask()
	if idx < 0 || idx >= len(tasks) {
		return models.Task{}, false
	}
	return tasks[idx], true
}

// ListTasks returns the filtered rows of the list view
func (m *Model) ListTasks() []models.Task {
	return m.App.Projector.List(m.ListViewState.Filter())
}

// FindTask returns a task from the last seen snapshot
func (m *Model) FindTask(id int) (models.Task, bool) {
	return m.Snapshot.Get(id)
}

// SyncShadow regroups the board from the store unless a drag is pending
func (m *Model) SyncShadow() {
	if m.Shadow == nil || m.DragsInFlight > 0 {
		return
	}
	m.Shadow.Reset()
	m.UiState.ClampSelection(len(m.CurrentColumnTasks()))
}
