package events

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultQueueSize is the per-subscriber buffer used when none is configured
const DefaultQueueSize = 64

// Bus is an in-process fan-out of events to any number of subscribers.
// Publishing never blocks: when a subscriber's queue is full the event is
// dropped for that subscriber and a warning is logged.
type Bus struct {
	mu        sync.Mutex
	subs      map[int]chan Event
	nextSubID int
	queueSize int
	closed    bool

	sequence atomic.Int64
	dropped  atomic.Int64
}

// NewBus creates a bus whose subscribers each get a queue of queueSize events
func NewBus(queueSize int) *Bus {
	if queueSize <= 0 {
		queueSize = DefaultQueueSize
	}
	return &Bus{
		subs:      make(map[int]chan Event),
		queueSize: queueSize,
	}
}

// Publish stamps the event with the next sequence id and delivers it
func (b *Bus) Publish(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBusClosed
	}

	event.SequenceID = b.sequence.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.dropped.Add(1)
			slog.Warn("event dropped, subscriber queue full",
				"subscriber", id,
				"event_type", event.Type,
				"sequence", event.SequenceID)
		}
	}

	slog.Debug("event published",
		"event_type", event.Type,
		"keys", event.Keys,
		"sequence", event.SequenceID,
		"subscribers", len(b.subs))

	return nil
}

// Subscribe registers a subscriber. Calling the returned function more
// than once is safe.
func (b *Bus) Subscribe() (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event, b.queueSize)
	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextSubID
	b.nextSubID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

// Close closes every subscriber channel. Further publishes fail with ErrBusClosed.
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	for id, ch := range b.subs {
		close(ch)
		delete(b.subs, id)
	}
	return nil
}

// LastSequence returns the sequence id of the most recent event
func (b *Bus) LastSequence() int64 {
	return b.sequence.Load()
}

// Dropped returns how many deliveries were dropped because of full queues
func (b *Bus) Dropped() int64 {
	return b.dropped.Load()
}
