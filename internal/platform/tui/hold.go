package tui

import (
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// DefaultHoldTimeout covers the usual keyboard auto-repeat delay, so a held key
// is not released between the first press and the first repeat.
const DefaultHoldTimeout = 550 * time.Millisecond

// holdTracker turns the press/repeat stream of a terminal into down/up events.
// Terminals never report a key release, so a key counts as released once no
// press or repeat has arrived for the timeout.
type holdTracker struct {
	key     core.Key
	timeout time.Duration
	held    bool
	last    time.Time
}

func newHoldTracker(k core.Key, timeout time.Duration) holdTracker {
	return holdTracker{key: k, timeout: timeout}
}

// Press records a press or repeat. It returns a KeyDown event only for the
// first press of a hold.
func (h *holdTracker) Press(now time.Time) (core.Event, bool) {
	h.last = now
	if h.held {
		return core.Event{}, false
	}
	h.held = true
	return core.Press(h.key), true
}

// Release ends a hold immediately.
func (h *holdTracker) Release() (core.Event, bool) {
	if !h.held {
		return core.Event{}, false
	}
	h.held = false
	return core.Release(h.key), true
}

// Expire releases the key if the hold timed out.
func (h *holdTracker) Expire(now time.Time) (core.Event, bool) {
	if !h.held || now.Sub(h.last) < h.timeout {
		return core.Event{}, false
	}
	return h.Release()
}

// Held reports whether the key is considered down.
func (h *holdTracker) Held() bool {
	return h.held
}
