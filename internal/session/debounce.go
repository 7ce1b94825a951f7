package session

import (
	"sync"
	"time"
)

// Debouncer coalesces bursts of triggers into one callback after a
// quiescence window, with a max-wait ceiling so a burst that never goes
// quiet still fires. The ceiling bounds worst-case staleness during
// continuous drawing.
type Debouncer struct {
	mu       sync.Mutex
	quiet    time.Duration
	maxWait  time.Duration
	timer    *time.Timer
	deadline time.Time // ceiling for the current burst
	fn       func()
	stopped  bool
}

// NewDebouncer creates a debouncer that fires fn after quiet of
// inactivity, or at latest maxWait after the first trigger of a burst.
// maxWait <= 0 disables the ceiling.
func NewDebouncer(quiet, maxWait time.Duration, fn func()) *Debouncer {
	return &Debouncer{quiet: quiet, maxWait: maxWait, fn: fn}
}

// Trigger (re)arms the debouncer. Repeated calls within the quiescence
// window coalesce; the first call of a burst fixes the max-wait deadline.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}

	now := time.Now()
	if d.timer == nil {
		if d.maxWait > 0 {
			d.deadline = now.Add(d.maxWait)
		} else {
			d.deadline = time.Time{}
		}
		d.timer = time.AfterFunc(d.wait(now), d.fire)
		return
	}

	d.timer.Reset(d.wait(now))
}

func (d *Debouncer) wait(now time.Time) time.Duration {
	w := d.quiet
	if !d.deadline.IsZero() {
		if until := d.deadline.Sub(now); until < w {
			w = until
		}
	}
	if w < 0 {
		w = 0
	}
	return w
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.deadline = time.Time{}
	fn := d.fn
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

// Flush fires immediately if a burst is pending.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	pending := d.timer != nil
	if pending {
		d.timer.Stop()
	}
	d.mu.Unlock()

	if pending {
		d.fire()
	}
}

// Stop cancels any pending fire; the debouncer cannot be reused after.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.mu.Unlock()
}
