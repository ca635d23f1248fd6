package querycache

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/thenoetrevino/taskdeck/internal/events"
)

// DefaultStaleTime is how long a fetched value is served without refetching
const DefaultStaleTime = 5 * time.Minute

// FetchFunc loads the value for one key from the API
type FetchFunc[T any] func(ctx context.Context) (T, error)

type entry[T any] struct {
	value     T
	fetchedAt time.Time
	stale     bool
}

// Cache is a read-through cache of one resource keyed by query key.
// Concurrent Gets for the same key share a single fetch.
type Cache[T any] struct {
	name      string
	staleTime time.Duration
	now       func() time.Time

	mu      sync.Mutex
	entries map[events.Key]entry[T]
	// epoch changes on every invalidation so an in-flight fetch that
	// started before it is stored as already stale
	epoch uint64

	group singleflight.Group
}

// New creates a cache. A staleTime <= 0 uses DefaultStaleTime.
func New[T any](name string, staleTime time.Duration) *Cache[T] {
	if staleTime <= 0 {
		staleTime = DefaultStaleTime
	}
	return &Cache[T]{
		name:      name,
		staleTime: staleTime,
		now:       time.Now,
		entries:   make(map[events.Key]entry[T]),
	}
}

// Name identifies the cache in logs
func (c *Cache[T]) Name() string {
	return c.name
}

// Get returns the cached value for key while it is fresh, otherwise fetches it.
// When a refetch fails the previous value, if any, is returned with the error.
func (c *Cache[T]) Get(ctx context.Context, key events.Key, fetch FetchFunc[T]) (T, error) {
	c.mu.Lock()
	e, ok := c.entries[key]
	if ok && !e.stale && c.now().Sub(e.fetchedAt) < c.staleTime {
		c.mu.Unlock()
		return e.value, nil
	}
	epoch := c.epoch
	c.mu.Unlock()

	v, err, shared := c.group.Do(string(key), func() (any, error) {
		value, err := fetch(ctx)
		if err != nil {
			return value, err
		}

		c.mu.Lock()
		c.entries[key] = entry[T]{
			value:     value,
			fetchedAt: c.now(),
			stale:     c.epoch != epoch,
		}
		c.mu.Unlock()
		return value, nil
	})

	if err != nil {
		slog.Debug("cache fetch failed", "cache", c.name, "key", key, "error", err)
		if ok {
			return e.value, err
		}
		var zero T
		return zero, err
	}

	if shared {
		slog.Debug("cache fetch shared", "cache", c.name, "key", key)
	}
	return v.(T), nil
}

// Peek returns the cached value for key regardless of staleness
func (c *Cache[T]) Peek(key events.Key) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return e.value, ok
}

// Set stores a value as freshly fetched
func (c *Cache[T]) Set(key events.Key, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{value: value, fetchedAt: c.now()}
}

// Invalidate marks every entry whose key has the given prefix as stale.
// Stale values stay readable through Peek until they are refetched.
func (c *Cache[T]) Invalidate(prefix events.Key) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.epoch++
	n := 0
	for key, e := range c.entries {
		if key.HasPrefix(prefix) && !e.stale {
			e.stale = true
			c.entries[key] = e
			n++
		}
	}
	return n
}

// Keys lists the cached keys in sorted order
func (c *Cache[T]) Keys() []events.Key {
	c.mu.Lock()
	defer c.mu.Unlock()

	keys := make([]events.Key, 0, len(c.entries))
	for k := range c.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// IsFresh reports whether key holds a value that Get would serve without fetching
func (c *Cache[T]) IsFresh(key events.Key) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	return ok && !e.stale && c.now().Sub(e.fetchedAt) < c.staleTime
}
