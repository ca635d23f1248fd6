package store

import (
	"context"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// LoadStatus is the lifecycle state of the task list
type LoadStatus int

const (
	Idle LoadStatus = iota
	Loading
	Succeeded
	Failed
)

func (s LoadStatus) String() string {
	switch s {
	case Idle:
		return "idle"
	case Loading:
		return "loading"
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// FetchFunc loads the full task list from the source of truth
type FetchFunc func(ctx context.Context) ([]models.Task, error)

// Reader is the read-only view of the store handed to projections and views
type Reader interface {
	Snapshot() Snapshot
	Get(id int) (models.Task, bool)
	Len() int
	Version() uint64
	Subscribe() (<-chan Snapshot, func())
}

// Writer is the narrow write surface used by the mutation coordinator
type Writer interface {
	Get(id int) (models.Task, bool)
	ApplyLocalUpdate(task models.Task) bool
	ApplyLocalInsert(task models.Task)
}

// Compile-time verification that *Store implements both views
var (
	_ Reader = (*Store)(nil)
	_ Writer = (*Store)(nil)
)

// Store is the single owned container of the task list.
// Items are unique by id and every change bumps the version.
// Safe for concurrent use; the last write wins.
type Store struct {
	mu sync.RWMutex

	// items holds tasks in load/insert order
	items []models.Task

	// index maps task id to its position in items
	index map[int]int

	status    LoadStatus
	lastError string
	version   uint64

	subs      map[int]chan Snapshot
	nextSubID int
}

// New creates an empty store in the Idle state
func New() *Store {
	return &Store{
		index: make(map[int]int),
		subs:  make(map[int]chan Snapshot),
	}
}

// ============================================================================
// Load lifecycle
// ============================================================================

// Load runs fetch through the Loading -> Succeeded/Failed lifecycle.
// On failure the previous items stay in place and the error is recorded.
func (s *Store) Load(ctx context.Context, fetch FetchFunc) error {
	s.BeginLoad()

	tasks, err := fetch(ctx)
	if err != nil {
		s.FailLoad(err)
		return err
	}

	s.CompleteLoad(tasks)
	return nil
}

// BeginLoad transitions to Loading
func (s *Store) BeginLoad() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = Loading
	s.changed()
}

// CompleteLoad replaces the items wholesale and clears the error.
// Duplicate ids in tasks collapse to the last occurrence.
func (s *Store) CompleteLoad(tasks []models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make([]models.Task, 0, len(tasks))
	s.index = make(map[int]int, len(tasks))
	for _, t := range tasks {
		if pos, ok := s.index[t.ID]; ok {
			s.items[pos] = t
			continue
		}
		s.index[t.ID] = len(s.items)
		s.items = append(s.items, t)
	}

	s.status = Succeeded
	s.lastError = ""
	s.changed()

	slog.Debug("task store loaded", "tasks", len(s.items), "version", s.version)
}

// FailLoad transitions to Failed, keeping the items as they were
func (s *Store) FailLoad(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.status = Failed
	if err != nil {
		s.lastError = err.Error()
	} else {
		s.lastError = "unknown error"
	}
	s.changed()

	slog.Warn("task store load failed", "error", s.lastError, "kept_tasks", len(s.items))
}

// ============================================================================
// Local writes
// ============================================================================

// ApplyLocalUpdate replaces the item with the same id in place.
// Returns false and changes nothing when no such item exists.
func (s *Store) ApplyLocalUpdate(task models.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	pos, ok := s.index[task.ID]
	if !ok {
		slog.Debug("local update for unknown task ignored", "task_id", task.ID)
		return false
	}

	s.items[pos] = task
	s.changed()
	return true
}

// ApplyLocalInsert appends task, or replaces the existing item with its id
func (s *Store) ApplyLocalInsert(task models.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if pos, ok := s.index[task.ID]; ok {
		s.items[pos] = task
	} else {
		s.index[task.ID] = len(s.items)
		s.items = append(s.items, task)
	}
	s.changed()
}

// ============================================================================
// Read side
// ============================================================================

// Snapshot returns an immutable copy of the current state
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Get returns the task with the given id
func (s *Store) Get(id int) (models.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pos, ok := s.index[id]
	if !ok {
		return models.Task{}, false
	}
	return s.items[pos], true
}

// Len returns the number of tasks held
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.items)
}

// Version returns the change counter
func (s *Store) Version() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.version
}

// Status returns the current load status
func (s *Store) Status() LoadStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

// Subscribe delivers the latest snapshot after every change.
// Delivery coalesces: a slow reader only ever sees the newest snapshot.
func (s *Store) Subscribe() (<-chan Snapshot, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan Snapshot, 1)
	id := s.nextSubID
	s.nextSubID++
	s.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if sub, ok := s.subs[id]; ok {
				delete(s.subs, id)
				close(sub)
			}
		})
	}
}

// changed bumps the version and notifies subscribers. Caller holds mu.
func (s *Store) changed() {
	s.version++
	if len(s.subs) == 0 {
		return
	}

	snap := s.snapshotLocked()
	for _, ch := range s.subs {
		// Replace any undelivered snapshot with the newer one
		select {
		case <-ch:
		default:
		}
		select {
		case ch <- snap:
		default:
		}
	}
}

func (s *Store) snapshotLocked() Snapshot {
	items := make([]models.Task, len(s.items))
	copy(items, s.items)
	return Snapshot{
		Items:   items,
		Status:  s.status,
		Error:   s.lastError,
		Version: s.version,
	}
}
