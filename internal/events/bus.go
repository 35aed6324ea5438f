// Package events provides in-process change notifications for the board
package events

import (
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultSubscriberBuffer is the channel buffer used when Subscribe is given a non-positive size
const DefaultSubscriberBuffer = 10

// subscriber is a single registered listener
type subscriber struct {
	ch        chan Event
	closeOnce sync.Once // Ensures ch is closed only once
}

func (s *subscriber) close() {
	s.closeOnce.Do(func() { close(s.ch) })
}

// Bus fans out events to subscribers.
// Slow subscribers miss events rather than block the publisher.
type Bus struct {
	mu              sync.RWMutex
	subscribers     map[*subscriber]bool
	closed          bool
	sequenceCounter atomic.Int64
	metrics         *Metrics
	logger          *slog.Logger
}

// NewBus creates an event bus. metrics and logger may be nil.
func NewBus(metrics *Metrics, logger *slog.Logger) *Bus {
	if metrics == nil {
		metrics = NewMetrics()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Bus{
		subscribers: make(map[*subscriber]bool),
		metrics:     metrics,
		logger:      logger,
	}
}

// Publish stamps the event with a sequence number and timestamp and sends it
// to every subscriber whose buffer has room.
func (b *Bus) Publish(event Event) {
	event.SequenceID = b.sequenceCounter.Add(1)
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	b.metrics.IncEventsPublished()

	b.mu.RLock()
	defer b.mu.RUnlock()

	for s := range b.subscribers {
		// Non-blocking send - if subscriber is slow, skip
		select {
		case s.ch <- event:
		default:
			b.metrics.IncEventsDropped()
			b.logger.Debug("subscriber queue full, event dropped",
				"event_type", event.Type,
				"sequence_id", event.SequenceID)
		}
	}
}

// Subscribe registers a new subscriber. On a closed bus the returned channel
// is already closed.
func (b *Bus) Subscribe(buffer int) (<-chan Event, func()) {
	if buffer <= 0 {
		buffer = DefaultSubscriberBuffer
	}
	s := &subscriber{ch: make(chan Event, buffer)}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		s.close()
		return s.ch, func() {}
	}
	b.subscribers[s] = true
	count := len(b.subscribers)
	b.mu.Unlock()

	b.metrics.SetSubscribers(int32(count))

	return s.ch, func() { b.unsubscribe(s) }
}

func (b *Bus) unsubscribe(s *subscriber) {
	b.mu.Lock()
	delete(b.subscribers, s)
	count := len(b.subscribers)
	b.mu.Unlock()

	b.metrics.SetSubscribers(int32(count))
	s.close()
}

// Close unsubscribes all subscribers
func (b *Bus) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.closed = true
	for s := range b.subscribers {
		s.close()
		delete(b.subscribers, s)
	}
	b.metrics.SetSubscribers(0)
	return nil
}

// LastSequence returns the sequence number of the most recent event
func (b *Bus) LastSequence() int64 {
	return b.sequenceCounter.Load()
}
