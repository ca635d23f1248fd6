package querycache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thenoetrevino/taskdeck/internal/events"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

func counting(calls *atomic.Int32, value string) FetchFunc[string] {
	return func(context.Context) (string, error) {
		calls.Add(1)
		return value, nil
	}
}

// ============================================================================
// Cache
// ============================================================================

func TestCache_ServesFreshValue(t *testing.T) {
	c := New[string]("test", time.Minute)
	var calls atomic.Int32

	v1, err := c.Get(context.Background(), "boards", counting(&calls, "a"))
	require.NoError(t, err)
	v2, err := c.Get(context.Background(), "boards", counting(&calls, "b"))
	require.NoError(t, err)

	assert.Equal(t, "a", v1)
	assert.Equal(t, "a", v2)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_RefetchesAfterStaleTime(t *testing.T) {
	c := New[string]("test", time.Minute)
	now := time.Now()
	c.now = func() time.Time { return now }
	var calls atomic.Int32

	_, _ = c.Get(context.Background(), "boards", counting(&calls, "a"))
	now = now.Add(2 * time.Minute)
	v, err := c.Get(context.Background(), "boards", counting(&calls, "b"))

	require.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCache_DefaultStaleTime(t *testing.T) {
	c := New[string]("test", 0)
	assert.Equal(t, DefaultStaleTime, c.staleTime)
}

func TestCache_InvalidatePrefix(t *testing.T) {
	c := New[string]("test", time.Minute)
	c.Set(events.TasksKey(), "all")
	c.Set(events.TaskKey(1), "one")
	c.Set(events.TaskKey(2), "two")
	c.Set(events.BoardTasksKey(1), "board")

	n := c.Invalidate(events.TasksKey())
	assert.Equal(t, 3, n)

	assert.False(t, c.IsFresh(events.TaskKey(1)))
	assert.True(t, c.IsFresh(events.BoardTasksKey(1)))

	// Stale values stay peekable
	v, ok := c.Peek(events.TaskKey(2))
	assert.True(t, ok)
	assert.Equal(t, "two", v)
}

func TestCache_InvalidatedKeyRefetches(t *testing.T) {
	c := New[string]("test", time.Minute)
	var calls atomic.Int32

	_, _ = c.Get(context.Background(), "users", counting(&calls, "a"))
	c.Invalidate("users")
	v, err := c.Get(context.Background(), "users", counting(&calls, "b"))

	require.NoError(t, err)
	assert.Equal(t, "b", v)
	assert.Equal(t, int32(2), calls.Load())
}

func TestCache_FailedRefetchReturnsPrevious(t *testing.T) {
	c := New[string]("test", time.Minute)
	c.Set("teams", "old")
	c.Invalidate("teams")

	v, err := c.Get(context.Background(), "teams", func(context.Context) (string, error) {
		return "", errors.New("down")
	})

	require.Error(t, err)
	assert.Equal(t, "old", v)
	assert.False(t, c.IsFresh("teams"))
}

func TestCache_InvalidationDuringFetchLeavesStale(t *testing.T) {
	c := New[string]("test", time.Minute)

	_, err := c.Get(context.Background(), "boards", func(context.Context) (string, error) {
		c.Invalidate("boards")
		return "racing", nil
	})

	require.NoError(t, err)
	assert.False(t, c.IsFresh("boards"))
}

func TestCache_ConcurrentGetsShareFetch(t *testing.T) {
	c := New[string]("test", time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})

	fetch := func(context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "v", nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := c.Get(context.Background(), "boards", fetch)
			assert.NoError(t, err)
			assert.Equal(t, "v", v)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.LessOrEqual(t, calls.Load(), int32(5))
	assert.GreaterOrEqual(t, calls.Load(), int32(1))
}

// ============================================================================
// Registry
// ============================================================================

func TestRegistry_ApplyAcrossCaches(t *testing.T) {
	a := New[string]("a", time.Minute)
	b := New[int]("b", time.Minute)
	a.Set(events.TaskKey(42), "x")
	b.Set(events.BoardTasksKey(2), 1)
	b.Set(events.BoardTasksKey(3), 1)

	reg := NewRegistry(a, b)
	n := reg.Apply(events.Invalidate(42, 2, events.TasksKey(), events.BoardTasksKey(2)))

	assert.Equal(t, 2, n)
	assert.False(t, a.IsFresh(events.TaskKey(42)))
	assert.False(t, b.IsFresh(events.BoardTasksKey(2)))
	assert.True(t, b.IsFresh(events.BoardTasksKey(3)))
}

func TestRegistry_IgnoresOtherEventTypes(t *testing.T) {
	a := New[string]("a", time.Minute)
	a.Set(events.TasksKey(), "x")

	reg := NewRegistry(a)
	n := reg.Apply(events.Event{Type: events.EventStoreReloaded, Keys: []events.Key{events.TasksKey()}})

	assert.Equal(t, 0, n)
	assert.True(t, a.IsFresh(events.TasksKey()))
}

func TestRegistry_RunConsumesBus(t *testing.T) {
	bus := events.NewBus(8)
	a := New[string]("a", time.Minute)
	a.Set(events.UsersKey(), "x")

	reg := NewRegistry()
	reg.Register(a)

	done := make(chan struct{})
	go func() {
		reg.Run(context.Background(), bus)
		close(done)
	}()

	require.Eventually(t, func() bool {
		_ = bus.Publish(events.Invalidate(0, 0, events.UsersKey()))
		return !a.IsFresh(events.UsersKey())
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, bus.Close())
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after bus close")
	}
}

// ============================================================================
// Resources
// ============================================================================

type fakeSource struct {
	boardCalls atomic.Int32
	users      []models.User
}

func (f *fakeSource) ListBoards(context.Context) ([]models.Board, error) {
	f.boardCalls.Add(1)
	return []models.Board{{ID: 1, Name: "Core"}}, nil
}
func (f *fakeSource) ListTasksForBoard(_ context.Context, boardID int) ([]models.Task, error) {
	return []models.Task{{ID: 1, BoardID: boardID}}, nil
}
func (f *fakeSource) ListTeams(context.Context) ([]models.Team, error) { return nil, nil }
func (f *fakeSource) GetTeam(_ context.Context, id int) (models.TeamDetails, error) {
	return models.TeamDetails{ID: id}, nil
}
func (f *fakeSource) ListUsers(context.Context) ([]models.User, error) { return f.users, nil }
func (f *fakeSource) ListTasksForUser(context.Context, int) ([]models.Task, error) {
	return nil, nil
}
func (f *fakeSource) GetTask(_ context.Context, id int) (models.Task, error) {
	return models.Task{ID: id}, nil
}

func TestResources_BoardTasksInvalidatedByBoardKey(t *testing.T) {
	src := &fakeSource{}
	res, reg := NewResources(src, time.Minute)

	tasks, err := res.ListTasksForBoard(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 2, tasks[0].BoardID)
	assert.True(t, res.BoardTasks.IsFresh(events.BoardTasksKey(2)))

	reg.Apply(events.Invalidate(1, 2, events.TasksKey(), events.BoardTasksKey(2)))
	assert.False(t, res.BoardTasks.IsFresh(events.BoardTasksKey(2)))
}

func TestResources_BoardsCached(t *testing.T) {
	src := &fakeSource{}
	res, _ := NewResources(src, time.Minute)

	_, _ = res.ListBoards(context.Background())
	_, _ = res.ListBoards(context.Background())
	assert.Equal(t, int32(1), src.boardCalls.Load())
}

func TestResources_UsersSnapshot(t *testing.T) {
	src := &fakeSource{users: []models.User{{ID: 1, FullName: "Ada"}}}
	res, _ := NewResources(src, time.Minute)

	assert.Empty(t, res.UsersSnapshot())
	_, err := res.ListUsers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Ada", res.UsersSnapshot()[0].FullName)
}
