package events

import "context"

// EventPublisher defines the interface for sending and receiving events.
// Consumers depend on this interface rather than on Broker so tests can
// substitute a recorder.
type EventPublisher interface {
	// SendEvent queues an event for delivery to listeners
	SendEvent(event Event) error

	// Listen registers a listener; the channel is closed when ctx is done
	// or the publisher is closed
	Listen(ctx context.Context) (<-chan Event, error)

	// Close stops delivery and closes every listener channel
	Close() error
}

// Compile-time verification that *Broker implements EventPublisher
var _ EventPublisher = (*Broker)(nil)
