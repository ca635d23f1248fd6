package querycache

import (
	"context"
	"log/slog"
	"sync"

	"github.com/thenoetrevino/taskdeck/internal/events"
)

// Invalidator is anything that can drop entries by key prefix
type Invalidator interface {
	Name() string
	Invalidate(prefix events.Key) int
}

// Registry fans invalidation events out to every registered cache
type Registry struct {
	mu     sync.RWMutex
	caches []Invalidator
}

// NewRegistry creates a registry over the given caches
func NewRegistry(caches ...Invalidator) *Registry {
	return &Registry{caches: caches}
}

// Register adds a cache
func (r *Registry) Register(c Invalidator) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caches = append(r.caches, c)
}

// Apply invalidates every key of an invalidation event and returns
// how many entries were marked stale
func (r *Registry) Apply(e events.Event) int {
	if e.Type != events.EventInvalidate {
		return 0
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, key := range e.Keys {
		for _, c := range r.caches {
			total += c.Invalidate(key)
		}
	}

	slog.Debug("caches invalidated",
		"keys", e.Keys,
		"entries", total,
		"sequence", e.SequenceID)
	return total
}

// Run applies events from pub until ctx is done or the bus closes
func (r *Registry) Run(ctx context.Context, pub events.EventPublisher) {
	ch, unsubscribe := pub.Subscribe()
	defer unsubscribe()
	r.Consume(ctx, ch)
}

// Consume applies events from an existing subscription until ctx is done
// or the channel closes
func (r *Registry) Consume(ctx context.Context, ch <-chan events.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			r.Apply(e)
		}
	}
}
