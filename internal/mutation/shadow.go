package mutation

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/taskdeck/internal/events"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/projections"
	"github.com/thenoetrevino/taskdeck/internal/store"
)

// BoardShadow is the kanban view's private copy of one board's columns.
// Drags change it at once; the store only learns about a drag after the
// server confirmed it, and a failed drag resets the shadow from the store.
type BoardShadow struct {
	coord   *Coordinator
	source  store.Reader
	boardID int

	mu      sync.Mutex
	columns projections.Columns
}

// NewBoardShadow creates a shadow of boardID synced from source
func (c *Coordinator) NewBoardShadow(source store.Reader, boardID int) *BoardShadow {
	b := &BoardShadow{
		coord:   c,
		source:  source,
		boardID: boardID,
	}
	b.Reset()
	return b
}

// BoardID returns the board this shadow mirrors
func (b *BoardShadow) BoardID() int {
	return b.boardID
}

// Columns returns a copy of the current columns
func (b *BoardShadow) Columns() projections.Columns {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.columns.Clone()
}

// Reset discards local changes and regroups the board from the store
func (b *BoardShadow) Reset() {
	snap := b.source.Snapshot()
	cols := projections.GroupByBoard(snap.Items, b.boardID)

	b.mu.Lock()
	b.columns = cols
	b.mu.Unlock()
}

// Patch moves a task to toIndex of the toStatus column in the shadow only.
// It returns false when the task is already at that position.
func (b *BoardShadow) Patch(taskID int, toStatus models.Status, toIndex int) (bool, error) {
	changed, _, err := b.patch(taskID, toStatus, toIndex)
	return changed, err
}

// patch also reports whether the task left its column
func (b *BoardShadow) patch(taskID int, toStatus models.Status, toIndex int) (changed, moved bool, err error) {
	toCol := toStatus.Column()
	if toCol < 0 {
		return false, false, fmt.Errorf("%w: %q", models.ErrInvalidStatus, toStatus)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	fromCol, fromIdx, ok := b.columns.Locate(taskID)
	if !ok {
		return false, false, fmt.Errorf("%w: %d", ErrTaskNotFound, taskID)
	}
	if fromCol == toCol && fromIdx == toIndex {
		return false, false, nil
	}

	task := b.columns[fromCol][fromIdx]
	src := b.columns[fromCol]
	b.columns[fromCol] = append(src[:fromIdx:fromIdx], src[fromIdx+1:]...)

	task.Status = toStatus
	dst := b.columns[toCol]
	toIndex = max(0, min(toIndex, len(dst)))
	dst = append(dst[:toIndex:toIndex], append([]models.Task{task}, dst[toIndex:]...)...)
	b.columns[toCol] = dst
	return true, fromCol != toCol, nil
}

// Commit sends the status of a patched task to the server. On failure the
// shadow snaps back to the store; on success the new status is written
// through to the store.
func (b *BoardShadow) Commit(ctx context.Context, taskID int, status models.Status) error {
	c := b.coord
	c.metrics.IncOptimisticApplies()

	ctx, cancel := c.detach(ctx)
	defer cancel()

	if _, err := c.api.UpdateTaskStatus(ctx, taskID, models.UpdateTaskStatusRequest{Status: status}); err != nil {
		b.Reset()
		c.metrics.IncRollbacks()
		slog.Warn("drag rejected, board reset", "task_id", taskID, "status", status, "error", err)
		return fmt.Errorf("failed to move task: %w", err)
	}

	if task, ok := c.store.Get(taskID); ok {
		c.store.ApplyLocalUpdate(task.WithStatus(status))
	}
	c.invalidate(taskID, b.boardID, events.TasksKey(), events.TaskKey(taskID))
	return nil
}

// Drag patches the shadow and commits the move. Dropping a task where it
// already is does nothing. A reorder inside one column stays local since
// the status is unchanged; the next Reset restores priority order.
func (b *BoardShadow) Drag(ctx context.Context, taskID int, toStatus models.Status, toIndex int) error {
	_, moved, err := b.patch(taskID, toStatus, toIndex)
	if err != nil || !moved {
		return err
	}
	return b.Commit(ctx, taskID, toStatus)
}
