// Package clock provides the millisecond counters used for cooldown gating.
// Counters are uint32 and wrap after about 49 days; callers compute elapsed
// time as now - then in uint32.
package clock

import (
	"sync/atomic"
	"time"
)

// Monotonic counts milliseconds since it was created
type Monotonic struct {
	start time.Time
}

// NewMonotonic starts a counter at zero
func NewMonotonic() *Monotonic {
	return &Monotonic{start: time.Now()}
}

// Millis returns the elapsed milliseconds, truncated to 32 bits
func (m *Monotonic) Millis() uint32 {
	return uint32(time.Since(m.start).Milliseconds())
}

// Manual is a counter that only moves when told to
type Manual struct {
	now atomic.Uint32
}

// NewManual returns a counter starting at ms
func NewManual(ms uint32) *Manual {
	m := &Manual{}
	m.now.Store(ms)
	return m
}

func (m *Manual) Millis() uint32 {
	return m.now.Load()
}

// Set moves the counter to ms
func (m *Manual) Set(ms uint32) {
	m.now.Store(ms)
}

// Advance moves the counter forward by ms, wrapping at 32 bits
func (m *Manual) Advance(ms uint32) {
	m.now.Add(ms)
}
