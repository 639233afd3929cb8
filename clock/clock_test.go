package clock_test

import (
	"sync"
	"testing"
	"time"

	"github.com/katalvlaran/labworks/clock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var epoch = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// TestManualAdvance checks Sleep/Advance semantics, including non-positive input.
func TestManualAdvance(t *testing.T) {
	m := clock.NewManual(epoch)
	require.Equal(t, epoch, m.Now())

	m.Sleep(2 * time.Second)
	require.Equal(t, epoch.Add(2*time.Second), m.Now())

	m.Advance(-time.Hour)
	m.Sleep(0)
	require.Equal(t, epoch.Add(2*time.Second), m.Now())
}

// TestManualConcurrent advances from many goroutines; the sum must be exact.
func TestManualConcurrent(t *testing.T) {
	m := clock.NewManual(epoch)
	const n = 100
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			m.Advance(time.Millisecond)
		}()
	}
	wg.Wait()
	require.Equal(t, epoch.Add(n*time.Millisecond), m.Now())
}

// TestStopwatchManual measures exactly what the manual clock advanced.
func TestStopwatchManual(t *testing.T) {
	m := clock.NewManual(epoch)
	sw := clock.Start(m)
	m.Advance(1500 * time.Millisecond)
	require.Equal(t, 1500*time.Millisecond, sw.Elapsed())
	require.InDelta(t, 1.5, sw.Elapsed().Seconds(), 1e-12)
}

// TestStopwatchSystem sleeps briefly on the real clock.
func TestStopwatchSystem(t *testing.T) {
	sw := clock.Start(nil) // nil selects System
	clock.System.Sleep(10 * time.Millisecond)
	el := sw.Elapsed()
	assert.GreaterOrEqual(t, el, 10*time.Millisecond)
	assert.Less(t, el, 510*time.Millisecond)
}

// TestZeroStopwatch reports zero instead of panicking.
func TestZeroStopwatch(t *testing.T) {
	var sw clock.Stopwatch
	require.Zero(t, sw.Elapsed())
}
