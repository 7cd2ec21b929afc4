package events

import (
	"errors"
	"log/slog"
)

// Publish announces a change without blocking the write that caused it.
//
// ErrQueueFull is not an error here: the queue already holds undelivered
// change events, and listeners resync everything on delivery, so the
// queued events cover this change too. ErrBrokerClosed is returned as is.
func Publish(client EventPublisher, event Event) error {
	if client == nil {
		return nil
	}

	err := client.SendEvent(event)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrQueueFull):
		slog.Debug("event queue full, change covered by pending events",
			"event_type", event.Type,
			"board_id", event.BoardID)
		return nil
	case errors.Is(err, ErrBrokerClosed):
		slog.Debug("event broker closed, change not announced",
			"event_type", event.Type,
			"board_id", event.BoardID)
		return err
	default:
		slog.Warn("event publish failed",
			"event_type", event.Type,
			"board_id", event.BoardID,
			"error", err)
		return err
	}
}
