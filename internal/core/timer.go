package core

import (
	"fmt"
	"time"
)

// Clock is the time source used by timers.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock with its monotonic component.
type SystemClock struct{}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a clock that only moves when told to.
// Games set it from the frame count on every tick, which keeps the simulation
// deterministic regardless of how late the platform delivers ticks.
type ManualClock struct {
	now time.Time
}

// NewManualClock creates a manual clock starting at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current clock reading.
func (c *ManualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// Set moves the clock to t.
func (c *ManualClock) Set(t time.Time) {
	c.now = t
}

// Timer is an edge-triggered interval gate.
// Due reports true at most once per interval and must be consumed before it can
// fire again. An inactive timer never fires.
type Timer struct {
	clock    Clock
	interval time.Duration
	epoch    time.Time
	active   bool
}

// NewTimer creates a timer that starts counting from the clock's current time.
// A negative interval is a programming error and panics.
func NewTimer(clock Clock, interval time.Duration, active bool) *Timer {
	if interval < 0 {
		panic(fmt.Sprintf("core: negative timer interval %v", interval))
	}
	return &Timer{
		clock:    clock,
		interval: interval,
		epoch:    clock.Now(),
		active:   active,
	}
}

// Due returns true if the timer is active and at least one interval has elapsed
// since it last fired. A true result resets the firing epoch to now.
func (t *Timer) Due() bool {
	if !t.active {
		return false
	}
	now := t.clock.Now()
	if now.Sub(t.epoch) < t.interval {
		return false
	}
	t.epoch = now
	return true
}

// Reset restarts the interval from the current time.
func (t *Timer) Reset() {
	t.epoch = t.clock.Now()
}

// SetActive arms or disarms the timer. Arming does not reset the epoch.
func (t *Timer) SetActive(active bool) {
	t.active = active
}

// Active reports whether the timer can fire.
func (t *Timer) Active() bool {
	return t.active
}

// Interval returns the firing interval.
func (t *Timer) Interval() time.Duration {
	return t.interval
}

// Elapsed returns the time since the timer last fired or was reset.
func (t *Timer) Elapsed() time.Duration {
	return t.clock.Now().Sub(t.epoch)
}
