package mutation

import (
	"context"
	"sync"

	"github.com/thenoetrevino/taskdeck/internal/events"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// fakeAPI records calls and lets each test script the responses
type fakeAPI struct {
	mu sync.Mutex

	createCalls []models.CreateTaskRequest
	updateCalls []models.UpdateTaskRequest
	statusCalls []models.UpdateTaskStatusRequest
	ctxErrs     []error

	createFn func(models.CreateTaskRequest) (int, error)
	updateFn func(int, models.UpdateTaskRequest) error
	statusFn func(int, models.UpdateTaskStatusRequest) error
}

func (f *fakeAPI) CreateTask(ctx context.Context, req models.CreateTaskRequest) (int, error) {
	f.mu.Lock()
	f.createCalls = append(f.createCalls, req)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	fn := f.createFn
	f.mu.Unlock()
	if fn != nil {
		return fn(req)
	}
	return 1, nil
}

func (f *fakeAPI) UpdateTask(ctx context.Context, id int, req models.UpdateTaskRequest) (string, error) {
	f.mu.Lock()
	f.updateCalls = append(f.updateCalls, req)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	fn := f.updateFn
	f.mu.Unlock()
	if fn != nil {
		if err := fn(id, req); err != nil {
			return "", err
		}
	}
	return "ok", nil
}

func (f *fakeAPI) UpdateTaskStatus(ctx context.Context, id int, req models.UpdateTaskStatusRequest) (string, error) {
	f.mu.Lock()
	f.statusCalls = append(f.statusCalls, req)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	fn := f.statusFn
	f.mu.Unlock()
	if fn != nil {
		if err := fn(id, req); err != nil {
			return "", err
		}
	}
	return "ok", nil
}

func (f *fakeAPI) statusCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.statusCalls)
}

// recordingPublisher keeps every published event
type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
}

func (r *recordingPublisher) Publish(e events.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
	return nil
}

func (r *recordingPublisher) Subscribe() (<-chan events.Event, func()) {
	ch := make(chan events.Event)
	close(ch)
	return ch, func() {}
}

func (r *recordingPublisher) Close() error { return nil }

func (r *recordingPublisher) keys() []events.Key {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []events.Key
	for _, e := range r.events {
		out = append(out, e.Keys...)
	}
	return out
}
