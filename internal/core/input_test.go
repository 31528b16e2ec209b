package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeyRoundTrip(t *testing.T) {
	for _, k := range []Key{KeyEscape, KeyLeft, KeyRight, KeyUp, KeyFire} {
		parsed, ok := ParseKey(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, parsed)
	}

	_, ok := ParseKey("space")
	assert.False(t, ok)
}

func TestEventKindRoundTrip(t *testing.T) {
	for _, k := range []EventKind{EventQuit, EventKeyDown, EventKeyUp} {
		parsed, ok := ParseEventKind(k.String())
		assert.True(t, ok, k.String())
		assert.Equal(t, k, parsed)
	}

	_, ok := ParseEventKind("press")
	assert.False(t, ok)
}

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame(Press(KeyUp))
	f.Push(Press(KeyLeft))
	f.Push(Release(KeyUp))

	assert.Equal(t, 3, f.Len())
	assert.Equal(t, []Event{
		{Kind: EventKeyDown, Key: KeyUp},
		{Kind: EventKeyDown, Key: KeyLeft},
		{Kind: EventKeyUp, Key: KeyUp},
	}, f.Events)
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame(Quit())
	clone := f.Clone()

	f.Clear()
	assert.Equal(t, 0, f.Len())
	assert.Equal(t, []Event{Quit()}, clone.Events)
}
