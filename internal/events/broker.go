package events

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Broker delivers events to in-process listeners.
// Events sent within one debounce window are coalesced into a single
// delivery, so a burst of writes causes one refresh per listener.
type Broker struct {
	mu sync.Mutex

	// Batching configuration
	eventQueue chan Event
	debounce   time.Duration
	closed     bool // Prevent double-close panics

	// Listeners
	listeners      map[int]chan Event
	nextListenerID int
	listenerBuffer int

	// Owned by the batcher goroutine
	sequence int64

	// Context for graceful shutdown
	ctx    context.Context
	cancel context.CancelFunc

	// Batching goroutine
	batcherDone chan struct{}
}

// Option configures a Broker
type Option func(*Broker)

// WithDebounce sets the batching window. Zero delivers every event as it arrives.
func WithDebounce(d time.Duration) Option {
	return func(b *Broker) {
		b.debounce = d
	}
}

// WithQueueSize sets how many undelivered events SendEvent accepts
func WithQueueSize(n int) Option {
	return func(b *Broker) {
		if n > 0 {
			b.eventQueue = make(chan Event, n)
		}
	}
}

// NewBroker creates a broker and starts its delivery goroutine.
// Close must be called to stop it.
func NewBroker(opts ...Option) *Broker {
	ctx, cancel := context.WithCancel(context.Background())

	b := &Broker{
		eventQueue:     make(chan Event, 100),
		debounce:       100 * time.Millisecond,
		listeners:      make(map[int]chan Event),
		listenerBuffer: 10,
		ctx:            ctx,
		cancel:         cancel,
		batcherDone:    make(chan struct{}),
	}
	for _, opt := range opts {
		opt(b)
	}

	go b.startBatcher()

	return b
}

// SendEvent queues an event for delivery.
// Returns ErrQueueFull if the queue is full (non-blocking send).
func (b *Broker) SendEvent(event Event) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return ErrBrokerClosed
	}

	select {
	case b.eventQueue <- event:
		return nil
	default:
		return ErrQueueFull
	}
}

// Listen registers a listener. The returned channel is closed when ctx is
// done or the broker is closed. A listener that falls behind misses events
// rather than blocking delivery to the others.
func (b *Broker) Listen(ctx context.Context) (<-chan Event, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil, ErrBrokerClosed
	}

	id := b.nextListenerID
	b.nextListenerID++
	ch := make(chan Event, b.listenerBuffer)
	b.listeners[id] = ch

	go func() {
		select {
		case <-ctx.Done():
			b.removeListener(id)
		case <-b.ctx.Done():
		}
	}()

	return ch, nil
}

// removeListener closes and forgets a listener, once
func (b *Broker) removeListener(id int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if ch, ok := b.listeners[id]; ok {
		delete(b.listeners, id)
		close(ch)
	}
}

// startBatcher runs in a goroutine and delivers events from the queue.
// With a debounce window it sends a single event per window if any events
// are pending. If events from multiple boards are batched together, the
// delivered event carries an empty BoardID (all boards).
func (b *Broker) startBatcher() {
	defer close(b.batcherDone)

	if b.debounce <= 0 {
		for event := range b.eventQueue {
			b.deliver(event)
		}
		return
	}

	ticker := time.NewTicker(b.debounce)
	defer ticker.Stop()

	var pending bool
	var batch Event

	// Helper to flush pending events
	flushPending := func() {
		if pending {
			b.deliver(batch)
			pending = false
		}
	}

	for {
		select {
		case event, ok := <-b.eventQueue:
			if !ok {
				// Queue closed - flush and exit
				flushPending()
				return
			}

			if !pending {
				pending = true
				batch = event
			} else if batch.BoardID != event.BoardID {
				// Different board detected - deliver as "all boards"
				batch.BoardID = ""
			}

		case <-ticker.C:
			flushPending()
		}
	}
}

// deliver stamps the event and fans it out without blocking
func (b *Broker) deliver(event Event) {
	b.sequence++
	event.SequenceID = b.sequence
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.listeners {
		select {
		case ch <- event:
		default:
			slog.Warn("event listener full, dropping event",
				"listener", id,
				"event_type", event.Type,
				"sequence", event.SequenceID)
		}
	}
}

// Close flushes pending events, stops the delivery goroutine and closes
// every listener channel. It is safe to call more than once.
func (b *Broker) Close() error {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil
	}
	b.closed = true

	// Close the event queue to signal no more events coming.
	// This allows the batcher to flush pending events before exiting.
	close(b.eventQueue)
	b.mu.Unlock()

	// Wait for batcher to finish (it will flush pending events)
	<-b.batcherDone

	// Stop per-listener goroutines
	b.cancel()

	b.mu.Lock()
	defer b.mu.Unlock()

	for id, ch := range b.listeners {
		delete(b.listeners, id)
		close(ch)
	}
	return nil
}
