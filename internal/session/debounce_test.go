package session

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDebouncerCoalescesBurst(t *testing.T) {
	var fires atomic.Int64
	d := NewDebouncer(100*time.Millisecond, time.Second, func() { fires.Add(1) })
	defer d.Stop()

	// A burst of rapid triggers well inside the quiescence window.
	for i := 0; i < 10; i++ {
		d.Trigger()
		time.Sleep(10 * time.Millisecond)
	}

	require.Eventually(t, func() bool { return fires.Load() == 1 },
		2*time.Second, 10*time.Millisecond)

	// No second fire without a new trigger.
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, int64(1), fires.Load())
}

func TestDebouncerQuietFires(t *testing.T) {
	fired := make(chan struct{}, 1)
	d := NewDebouncer(50*time.Millisecond, time.Second, func() { fired <- struct{}{} })
	defer d.Stop()

	d.Trigger()
	select {
	case <-fired:
	case <-time.After(2 * time.Second):
		t.Fatal("debouncer never fired after quiescence")
	}
}

func TestDebouncerMaxWaitCeiling(t *testing.T) {
	var fires atomic.Int64
	d := NewDebouncer(150*time.Millisecond, 400*time.Millisecond, func() { fires.Add(1) })
	defer d.Stop()

	// Trigger faster than the quiescence window for well over the ceiling:
	// without the ceiling this would never fire.
	stop := time.After(time.Second)
loop:
	for {
		select {
		case <-stop:
			break loop
		default:
			d.Trigger()
			time.Sleep(50 * time.Millisecond)
		}
	}

	assert.GreaterOrEqual(t, fires.Load(), int64(1))
}

func TestDebouncerFlush(t *testing.T) {
	var fires atomic.Int64
	d := NewDebouncer(time.Hour, 0, func() { fires.Add(1) })
	defer d.Stop()

	// Flush with nothing pending is a no-op.
	d.Flush()
	assert.Equal(t, int64(0), fires.Load())

	d.Trigger()
	d.Flush()
	assert.Equal(t, int64(1), fires.Load())

	// The burst is consumed; a second flush does nothing.
	d.Flush()
	assert.Equal(t, int64(1), fires.Load())
}

func TestDebouncerStop(t *testing.T) {
	var fires atomic.Int64
	d := NewDebouncer(30*time.Millisecond, 0, func() { fires.Add(1) })

	d.Trigger()
	d.Stop()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(0), fires.Load())

	// Triggers after Stop are ignored.
	d.Trigger()
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, int64(0), fires.Load())
}
