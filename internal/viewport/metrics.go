package viewport

import "sync/atomic"

// Metrics holds lightweight counters for layout activity.
type Metrics struct {
	Recomputes          atomic.Int64
	ProgrammaticScrolls atomic.Int64
	SuppressedEvents    atomic.Int64
	UserScrollEvents    atomic.Int64
	AspectUpdates       atomic.Int64
	AspectSkips         atomic.Int64
}

// MetricsSnapshot is an immutable copy of the counters.
type MetricsSnapshot struct {
	Recomputes          int64
	ProgrammaticScrolls int64
	SuppressedEvents    int64
	UserScrollEvents    int64
	AspectUpdates       int64
	AspectSkips         int64
}

// NewMetrics creates a new metrics collector.
func NewMetrics() *Metrics { return &Metrics{} }

// Snapshot returns the current counter values.
func (m *Metrics) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Recomputes:          m.Recomputes.Load(),
		ProgrammaticScrolls: m.ProgrammaticScrolls.Load(),
		SuppressedEvents:    m.SuppressedEvents.Load(),
		UserScrollEvents:    m.UserScrollEvents.Load(),
		AspectUpdates:       m.AspectUpdates.Load(),
		AspectSkips:         m.AspectSkips.Load(),
	}
}

// Sub returns the delta between two snapshots.
func (s MetricsSnapshot) Sub(prev MetricsSnapshot) MetricsSnapshot {
	return MetricsSnapshot{
		Recomputes:          s.Recomputes - prev.Recomputes,
		ProgrammaticScrolls: s.ProgrammaticScrolls - prev.ProgrammaticScrolls,
		SuppressedEvents:    s.SuppressedEvents - prev.SuppressedEvents,
		UserScrollEvents:    s.UserScrollEvents - prev.UserScrollEvents,
		AspectUpdates:       s.AspectUpdates - prev.AspectUpdates,
		AspectSkips:         s.AspectSkips - prev.AspectSkips,
	}
}
