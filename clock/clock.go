// Package clock abstracts the time operations the demos depend on,
// so tests can run them against a manual clock.
package clock

import (
	"sync"
	"time"
)

// Clock is the minimal time source used by timer and bench.
type Clock interface {
	// Now returns the current time. The System clock's value carries a
	// monotonic reading, so differences between two Now calls are immune to
	// wall-clock adjustments.
	Now() time.Time

	// Sleep blocks the calling goroutine for at least d.
	Sleep(d time.Duration)
}

// systemClock implements Clock using the standard time package.
type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// System is the real, monotonic clock.
var System Clock = systemClock{}

// Manual is a Clock that only moves when told to. Sleep advances it
// instantly by the requested duration. Safe for concurrent use.
type Manual struct {
	mu  sync.Mutex
	now time.Time
}

// NewManual returns a Manual clock set to start.
func NewManual(start time.Time) *Manual {
	return &Manual{now: start}
}

// Now returns the manual clock's current time.
func (m *Manual) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.now
}

// Sleep advances the clock by d without blocking. Non-positive d is a no-op,
// matching time.Sleep.
func (m *Manual) Sleep(d time.Duration) {
	m.Advance(d)
}

// Advance moves the clock forward by d. Non-positive d is ignored.
func (m *Manual) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	m.mu.Lock()
	m.now = m.now.Add(d)
	m.mu.Unlock()
}
