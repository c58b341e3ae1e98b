// Package metrics provides lightweight, zero-dependency counters and
// gauges for the qdsv signature engine. Counter and Gauge use atomic
// operations for lock-free concurrent access.
//
// Metrics are entirely optional instrumentation: nothing in fe127, scalar,
// bobjr, kummer, or qdsa depends on this package being wired up, and the
// zero value of every exported counter/gauge is a safe, inert no-op target.
package metrics

import "sync/atomic"

// Counter is a monotonically incrementing counter.
type Counter struct {
	name  string
	value atomic.Int64
}

// NewCounter returns a new Counter with the given name.
func NewCounter(name string) *Counter {
	return &Counter{name: name}
}

// Inc increments the counter by 1.
func (c *Counter) Inc() { c.value.Add(1) }

// Add increments the counter by n. Negative values are silently ignored
// because counters are monotonically increasing.
func (c *Counter) Add(n int64) {
	if n > 0 {
		c.value.Add(n)
	}
}

// Value returns the current counter value.
func (c *Counter) Value() int64 { return c.value.Load() }

// Name returns the metric name.
func (c *Counter) Name() string { return c.name }

// Gauge is a value that can go up and down.
type Gauge struct {
	name  string
	value atomic.Int64
}

// NewGauge returns a new Gauge with the given name.
func NewGauge(name string) *Gauge {
	return &Gauge{name: name}
}

// Set sets the gauge to the given value.
func (g *Gauge) Set(v int64) { g.value.Store(v) }

// Inc increments the gauge by 1.
func (g *Gauge) Inc() { g.value.Add(1) }

// Dec decrements the gauge by 1.
func (g *Gauge) Dec() { g.value.Add(-1) }

// Value returns the current gauge value.
func (g *Gauge) Value() int64 { return g.value.Load() }

// Name returns the metric name.
func (g *Gauge) Name() string { return g.name }
