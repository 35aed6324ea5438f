package events

import (
	"sync/atomic"
	"time"
)

// Metrics tracks engine statistics using atomic operations for thread-safety
type Metrics struct {
	CommandsTotal   atomic.Int64
	CommandsFailed  atomic.Int64
	Mutations       atomic.Int64
	PersistFailures atomic.Int64
	EventsPublished atomic.Int64
	EventsDropped   atomic.Int64
	Subscribers     atomic.Int32
	StartTime       time.Time
}

// NewMetrics creates a new Metrics instance
func NewMetrics() *Metrics {
	return &Metrics{
		StartTime: time.Now(),
	}
}

// IncCommandsTotal increments the command counter
func (m *Metrics) IncCommandsTotal() {
	m.CommandsTotal.Add(1)
}

// IncCommandsFailed increments the failed command counter
func (m *Metrics) IncCommandsFailed() {
	m.CommandsFailed.Add(1)
}

// IncMutations increments the applied mutation counter
func (m *Metrics) IncMutations() {
	m.Mutations.Add(1)
}

// IncPersistFailures increments the snapshot write failure counter
func (m *Metrics) IncPersistFailures() {
	m.PersistFailures.Add(1)
}

// IncEventsPublished increments the events published counter
func (m *Metrics) IncEventsPublished() {
	m.EventsPublished.Add(1)
}

// IncEventsDropped increments the dropped events counter
func (m *Metrics) IncEventsDropped() {
	m.EventsDropped.Add(1)
}

// SetSubscribers sets the current subscriber count
func (m *Metrics) SetSubscribers(count int32) {
	m.Subscribers.Store(count)
}

// MetricsSnapshot represents a point-in-time snapshot of metrics
type MetricsSnapshot struct {
	CommandsTotal   int64     `json:"commands_total"`
	CommandsFailed  int64     `json:"commands_failed"`
	Mutations       int64     `json:"mutations"`
	PersistFailures int64     `json:"persist_failures"`
	EventsPublished int64     `json:"events_published"`
	EventsDropped   int64     `json:"events_dropped"`
	Subscribers     int32     `json:"subscribers"`
	StartTime       time.Time `json:"start_time"`
	UptimeSeconds   int64     `json:"uptime_seconds"`
}

// Snapshot returns a point-in-time snapshot of all metrics
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		CommandsTotal:   m.CommandsTotal.Load(),
		CommandsFailed:  m.CommandsFailed.Load(),
		Mutations:       m.Mutations.Load(),
		PersistFailures: m.PersistFailures.Load(),
		EventsPublished: m.EventsPublished.Load(),
		EventsDropped:   m.EventsDropped.Load(),
		Subscribers:     m.Subscribers.Load(),
		StartTime:       m.StartTime,
		UptimeSeconds:   int64(time.Since(m.StartTime).Seconds()),
	}
}
