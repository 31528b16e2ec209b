package headless

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Source supplies the input events for one frame.
// Frames are numbered from 0; frame n is the (n+1)th call to Step.
type Source interface {
	Poll(frame uint64) []core.Event
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(frame uint64) []core.Event

// Poll calls f(frame).
func (f SourceFunc) Poll(frame uint64) []core.Event {
	return f(frame)
}

// ScriptFile is the YAML structure of an input script.
//
//	events:
//	  - {frame: 0, kind: keydown, key: up}
//	  - {frame: 30, kind: keydown, key: fire}
//	  - {frame: 90, kind: keyup, key: up}
//	  - {frame: 600, kind: quit}
type ScriptFile struct {
	Events []ScriptEvent `yaml:"events"`
}

// ScriptEvent is one scripted input event.
type ScriptEvent struct {
	Frame uint64 `yaml:"frame"`
	Kind  string `yaml:"kind"`
	Key   string `yaml:"key,omitempty"`
}

// Script is a Source that replays frame-indexed events.
// Events scheduled for the same frame are delivered in file order.
type Script struct {
	frames map[uint64][]core.Event
	last   uint64
	count  int
}

// ParseScript parses a YAML input script.
// Unknown kinds or keys are rejected so a typo cannot silently drop input.
func ParseScript(data []byte) (*Script, error) {
	var f ScriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("headless: parse script: %w", err)
	}

	// Events are grouped per frame in file order, so the file need not be
	// sorted and error indexes match the file.
	s := &Script{frames: make(map[uint64][]core.Event)}
	for i, e := range f.Events {
		ev, err := e.event()
		if err != nil {
			return nil, fmt.Errorf("headless: script event %d: %w", i, err)
		}
		s.add(e.Frame, ev)
	}
	return s, nil
}

// LoadScript reads and parses a YAML input script from path.
func LoadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("headless: read script: %w", err)
	}
	return ParseScript(data)
}

// NewScript builds a script from events keyed by frame.
func NewScript(frames map[uint64][]core.Event) *Script {
	s := &Script{frames: make(map[uint64][]core.Event, len(frames))}
	for frame, events := range frames {
		for _, ev := range events {
			s.add(frame, ev)
		}
	}
	return s
}

func (s *Script) add(frame uint64, ev core.Event) {
	s.frames[frame] = append(s.frames[frame], ev)
	if frame > s.last {
		s.last = frame
	}
	s.count++
}

// Poll returns the events scheduled for frame.
func (s *Script) Poll(frame uint64) []core.Event {
	return s.frames[frame]
}

// LastFrame returns the highest frame that has an event.
func (s *Script) LastFrame() uint64 {
	return s.last
}

// Len returns the total number of scripted events.
func (s *Script) Len() int {
	return s.count
}

func (e ScriptEvent) event() (core.Event, error) {
	kind, ok := core.ParseEventKind(e.Kind)
	if !ok {
		return core.Event{}, fmt.Errorf("unknown kind %q", e.Kind)
	}
	if kind == core.EventQuit {
		return core.Quit(), nil
	}

	key, ok := core.ParseKey(e.Key)
	if !ok {
		return core.Event{}, fmt.Errorf("unknown key %q for %s", e.Key, kind)
	}
	return core.Event{Kind: kind, Key: key}, nil
}
