package events_test

import (
	"sync"
	"testing"

	"github.com/thenoetrevino/taskdeck/internal/events"
)

// MockEventPublisher is a mock implementation of events.EventPublisher for testing.
// It records all published events for verification in tests.
type MockEventPublisher struct {
	mu sync.Mutex

	// Recorded events
	SentEvents []events.Event

	CloseCalled bool
}

// NewMockEventPublisher creates a new mock event publisher.
func NewMockEventPublisher() *MockEventPublisher {
	return &MockEventPublisher{SentEvents: []events.Event{}}
}

// Publish records the event for later verification.
func (m *MockEventPublisher) Publish(event events.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.SentEvents = append(m.SentEvents, event)
	return nil
}

// Subscribe returns a closed channel.
func (m *MockEventPublisher) Subscribe() (<-chan events.Event, func()) {
	ch := make(chan events.Event)
	close(ch)
	return ch, func() {}
}

// Close marks the publisher as closed.
func (m *MockEventPublisher) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CloseCalled = true
	return nil
}

// KeysPublished returns every key across all recorded events, in order.
func (m *MockEventPublisher) KeysPublished() []events.Key {
	m.mu.Lock()
	defer m.mu.Unlock()
	var keys []events.Key
	for _, e := range m.SentEvents {
		keys = append(keys, e.Keys...)
	}
	return keys
}

// Compile-time interface verification
var _ events.EventPublisher = (*MockEventPublisher)(nil)

func TestPublishWithRetry_RecordsOnMock(t *testing.T) {
	mock := NewMockEventPublisher()

	err := events.PublishWithRetry(mock, events.Invalidate(42, 2, events.TasksKey(), events.TaskKey(42)), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	keys := mock.KeysPublished()
	if len(keys) != 2 || keys[0] != "tasks" || keys[1] != "tasks/42" {
		t.Errorf("unexpected keys: %v", keys)
	}
}
