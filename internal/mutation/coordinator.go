package mutation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/thenoetrevino/taskdeck/internal/events"
	"github.com/thenoetrevino/taskdeck/internal/metrics"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/store"
)

// DefaultTimeout bounds a mutation once it is detached from its caller
const DefaultTimeout = 30 * time.Second

// publishRetries is how many times an invalidation publish is attempted
const publishRetries = 3

// TaskAPI is the write side of the gateway
type TaskAPI interface {
	CreateTask(ctx context.Context, req models.CreateTaskRequest) (int, error)
	UpdateTask(ctx context.Context, taskID int, req models.UpdateTaskRequest) (string, error)
	UpdateTaskStatus(ctx context.Context, taskID int, req models.UpdateTaskStatusRequest) (string, error)
}

// UsersSource supplies the current user list used to resolve assignees
type UsersSource interface {
	UsersSnapshot() []models.User
}

// UsersFunc adapts a plain function to UsersSource
type UsersFunc func() []models.User

// UsersSnapshot implements UsersSource
func (f UsersFunc) UsersSnapshot() []models.User { return f() }

// Option is a functional option for configuring a Coordinator
type Option func(*Coordinator)

// WithMetrics records optimistic applies, rollbacks and invalidations
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Coordinator) {
		c.metrics = m
	}
}

// WithTimeout overrides DefaultTimeout
func WithTimeout(d time.Duration) Option {
	return func(c *Coordinator) {
		if d > 0 {
			c.timeout = d
		}
	}
}

// Coordinator applies task mutations locally and reconciles them with the API.
// Requests outlive the view that started them: the caller's cancellation is
// ignored and the coordinator's own timeout applies instead.
type Coordinator struct {
	api     TaskAPI
	store   store.Writer
	users   UsersSource
	pub     events.EventPublisher
	metrics *metrics.Metrics
	timeout time.Duration
}

// NewCoordinator creates a coordinator. pub may be nil when nothing listens
// for invalidations.
func NewCoordinator(api TaskAPI, st store.Writer, users UsersSource, pub events.EventPublisher, opts ...Option) *Coordinator {
	c := &Coordinator{
		api:     api,
		store:   st,
		users:   users,
		pub:     pub,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Coordinator) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
}

func (c *Coordinator) userList() []models.User {
	if c.users == nil {
		return nil
	}
	return c.users.UsersSnapshot()
}

// invalidate publishes the keys. A lost invalidation only delays a refetch,
// so failures are logged and swallowed.
func (c *Coordinator) invalidate(taskID, boardID int, keys ...events.Key) {
	c.metrics.IncInvalidations()
	if err := events.PublishWithRetry(c.pub, events.Invalidate(taskID, boardID, keys...), publishRetries); err != nil {
		slog.Warn("invalidation not published", "task_id", taskID, "keys", keys, "error", err)
	}
}

// Create validates the form and creates the task. The task is inserted
// into the store only after the server confirmed it and assigned an id.
func (c *Coordinator) Create(ctx context.Context, form TaskForm) (models.Task, error) {
	if err := Validate(form, false); err != nil {
		return models.Task{}, err
	}

	task := TransformTaskData(form, c.userList(), 0)

	ctx, cancel := c.detach(ctx)
	defer cancel()

	id, err := c.api.CreateTask(ctx, form.createRequest())
	if err != nil {
		slog.Warn("task create failed", "board_id", form.BoardID, "error", err)
		return models.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	task.ID = id
	c.store.ApplyLocalInsert(task)
	c.invalidate(id, task.BoardID, events.TasksKey(), events.BoardTasksKey(task.BoardID))

	slog.Info("task created", "task_id", id, "board_id", task.BoardID)
	return task, nil
}

// Edit applies the edited values to the store immediately, then saves them.
// The board never changes on edit. A failed save keeps the local values and
// returns an error wrapping ErrStaleEdit.
func (c *Coordinator) Edit(ctx context.Context, original models.Task, form TaskForm) (models.Task, error) {
	if err := Validate(form, true); err != nil {
		return original, err
	}

	edited := TransformTaskData(form, c.userList(), original.ID)
	edited.BoardID = original.BoardID
	edited.BoardName = original.BoardName

	if c.store.ApplyLocalUpdate(edited) {
		c.metrics.IncOptimisticApplies()
	}

	ctx, cancel := c.detach(ctx)
	defer cancel()

	req := form.updateRequest()
	if _, err := c.api.UpdateTask(ctx, original.ID, req); err != nil {
		slog.Warn("task edit failed, local copy kept", "task_id", original.ID, "error", err)
		return edited, fmt.Errorf("%w: %w", ErrStaleEdit, err)
	}

	c.invalidate(edited.ID, edited.BoardID,
		events.TasksKey(), events.TaskKey(edited.ID), events.BoardTasksKey(edited.BoardID))
	return edited, nil
}

// MoveStatus changes only the status of a task. The store is patched first
// and restored to the pre-move copy if the server rejects the change.
func (c *Coordinator) MoveStatus(ctx context.Context, taskID int, status models.Status) error {
	if !status.Valid() {
		return &ValidationError{Invalid: []string{"status"}}
	}

	prev, known := c.store.Get(taskID)
	if known {
		if c.store.ApplyLocalUpdate(prev.WithStatus(status)) {
			c.metrics.IncOptimisticApplies()
		}
	}

	ctx, cancel := c.detach(ctx)
	defer cancel()

	if _, err := c.api.UpdateTaskStatus(ctx, taskID, models.UpdateTaskStatusRequest{Status: status}); err != nil {
		if known {
			c.store.ApplyLocalUpdate(prev)
			c.metrics.IncRollbacks()
		}
		slog.Warn("task move failed", "task_id", taskID, "status", status, "error", err)
		return fmt.Errorf("failed to move task: %w", err)
	}

	keys := []events.Key{events.TasksKey(), events.TaskKey(taskID)}
	if known && prev.BoardID != 0 {
		keys = append(keys, events.BoardTasksKey(prev.BoardID))
	}
	c.invalidate(taskID, prev.BoardID, keys...)
	return nil
}
