package events

// EventPublisher defines the interface for publishing and receiving
// invalidation events. Consumers depend on this instead of *Bus so tests
// can record what was published.
type EventPublisher interface {
	// Publish delivers an event to every current subscriber
	Publish(event Event) error

	// Subscribe registers a new subscriber. The returned function
	// unsubscribes and closes the channel.
	Subscribe() (<-chan Event, func())

	// Close stops delivery and closes all subscriber channels
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
