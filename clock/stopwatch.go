package clock

import "time"

// Stopwatch measures elapsed time on a Clock from the moment it was started.
type Stopwatch struct {
	c     Clock
	start time.Time
}

// Start returns a Stopwatch running on c. A nil c means System.
func Start(c Clock) Stopwatch {
	if c == nil {
		c = System
	}

	return Stopwatch{c: c, start: c.Now()}
}

// Elapsed returns the time passed since Start. A zero Stopwatch reports 0.
func (s Stopwatch) Elapsed() time.Duration {
	if s.c == nil {
		return 0
	}

	return s.c.Now().Sub(s.start)
}
