package scroll

import (
	"sync"
	"time"
)

// DefaultResizeDelay is the quiet period resize recomputation waits for.
// Interactive window dragging fires a burst of intermediate resize events;
// only the last one should trigger a scroll-region recomputation.
const DefaultResizeDelay = 200 * time.Millisecond

// Debouncer coalesces rapid-fire triggers into a single callback after a
// quiet period. Each Trigger cancels and re-arms one pending timer, so at
// most one invocation is ever outstanding.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given quiet period. A
// non-positive delay uses DefaultResizeDelay.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultResizeDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet period, cancelling any previously
// pending invocation. fn runs on a timer goroutine; callers that must touch
// event-loop-owned state should have fn hand the work back to the loop.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
}

// Pending reports whether an invocation is currently scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels any pending invocation.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
