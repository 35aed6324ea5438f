package events

// EventPublisher defines the interface for publishing and receiving board events.
// Consumers depend on this interface rather than the concrete Bus.
type EventPublisher interface {
	// Publish delivers an event to every current subscriber without blocking
	Publish(event Event)

	// Subscribe registers a subscriber with the given channel buffer.
	// The returned function unsubscribes and closes the channel.
	Subscribe(buffer int) (<-chan Event, func())

	// Close unsubscribes everyone and rejects further subscriptions
	Close() error
}

// Compile-time verification that *Bus implements EventPublisher
var _ EventPublisher = (*Bus)(nil)
