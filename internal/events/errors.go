package events

import "errors"

var (
	// ErrQueueFull is returned by SendEvent when the event queue has no room
	ErrQueueFull = errors.New("event queue full")

	// ErrBrokerClosed is returned when sending to or listening on a closed broker
	ErrBrokerClosed = errors.New("event broker closed")
)
