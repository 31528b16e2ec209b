package core

// Key identifies a physical key the game cares about, abstracted from the
// concrete device or terminal encoding.
type Key int

const (
	KeyNone   Key = iota
	KeyEscape     // Esc - leave the game
	KeyLeft       // Left arrow, A - rotate counter-clockwise
	KeyRight      // Right arrow, D - rotate clockwise
	KeyUp         // Up arrow, W - thrust while held
	KeyFire       // Enter, Space - fire a bullet
)

// String returns a human-readable name for the key.
func (k Key) String() string {
	switch k {
	case KeyNone:
		return "none"
	case KeyEscape:
		return "escape"
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyFire:
		return "fire"
	default:
		return "unknown"
	}
}

// ParseKey converts a name produced by Key.String back into a Key.
func ParseKey(s string) (Key, bool) {
	for k := KeyEscape; k <= KeyFire; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return KeyNone, false
}

// EventKind is the type of an input event.
type EventKind int

const (
	EventQuit    EventKind = iota // Window closed or Ctrl+C
	EventKeyDown                  // Key pressed
	EventKeyUp                    // Key released
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventQuit:
		return "quit"
	case EventKeyDown:
		return "keydown"
	case EventKeyUp:
		return "keyup"
	default:
		return "unknown"
	}
}

// ParseEventKind converts a name produced by EventKind.String back into a kind.
func ParseEventKind(s string) (EventKind, bool) {
	for k := EventQuit; k <= EventKeyUp; k++ {
		if k.String() == s {
			return k, true
		}
	}
	return EventQuit, false
}

// Event is a single discrete input event.
type Event struct {
	Kind EventKind
	Key  Key // KeyNone for EventQuit
}

// Quit returns a quit event.
func Quit() Event { return Event{Kind: EventQuit} }

// Press returns a key-press event.
func Press(k Key) Event { return Event{Kind: EventKeyDown, Key: k} }

// Release returns a key-release event.
func Release(k Key) Event { return Event{Kind: EventKeyUp, Key: k} }

// InputFrame holds every input event received since the previous simulation tick,
// in arrival order. Games drain it completely before running physics.
type InputFrame struct {
	Events []Event
}

// NewInputFrame creates an empty input frame.
func NewInputFrame(events ...Event) InputFrame {
	return InputFrame{Events: events}
}

// Push appends an event to the frame.
func (f *InputFrame) Push(e Event) {
	f.Events = append(f.Events, e)
}

// Len returns the number of pending events.
func (f InputFrame) Len() int {
	return len(f.Events)
}

// Clear drops all events for the next frame, keeping the backing storage.
func (f *InputFrame) Clear() {
	f.Events = f.Events[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	events := make([]Event, len(f.Events))
	copy(events, f.Events)
	return InputFrame{Events: events}
}
