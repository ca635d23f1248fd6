package projections

import (
	"sync"

	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/store"
)

// Source is the read side of the task store
type Source interface {
	Snapshot() store.Snapshot
	Version() uint64
}

// Projector memoizes projections of the task store. A projection is
// recomputed only when the store version or its inputs change.
// Returned slices are shared with the memo and must be treated as read-only.
type Projector struct {
	src Source

	mu    sync.Mutex
	board struct {
		valid   bool
		version uint64
		boardID int
		cols    Columns
	}
	list struct {
		valid   bool
		version uint64
		filter  Filter
		tasks   []models.Task
	}
	computations int
}

// NewProjector creates a projector over src
func NewProjector(src Source) *Projector {
	return &Projector{src: src}
}

// Board returns the kanban columns of one board
func (p *Projector) Board(boardID int) Columns {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.board.valid && p.board.boardID == boardID && p.board.version == p.src.Version() {
		return p.board.cols
	}

	snap := p.src.Snapshot()
	p.board.cols = GroupByBoard(snap.Items, boardID)
	p.board.boardID = boardID
	p.board.version = snap.Version
	p.board.valid = true
	p.computations++
	return p.board.cols
}

// List returns the filtered task list
func (p *Projector) List(f Filter) []models.Task {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.list.valid && p.list.filter == f && p.list.version == p.src.Version() {
		return p.list.tasks
	}

	snap := p.src.Snapshot()
	p.list.tasks = FilterTasks(snap.Items, f)
	p.list.filter = f
	p.list.version = snap.Version
	p.list.valid = true
	p.computations++
	return p.list.tasks
}

// Computations returns how many projections were actually computed
func (p *Projector) Computations() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.computations
}
