package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()
	tests := []struct {
		msg      tea.KeyMsg
		expected Action
	}{
		{tea.KeyMsg{Type: tea.KeyUp}, ActionThrust},
		{runeKey("w"), ActionThrust},
		{tea.KeyMsg{Type: tea.KeyDown}, ActionCutThrust},
		{tea.KeyMsg{Type: tea.KeyLeft}, ActionRotateLeft},
		{runeKey("a"), ActionRotateLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, ActionRotateRight},
		{runeKey("d"), ActionRotateRight},
		{tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")}, ActionFire},
		{tea.KeyMsg{Type: tea.KeyEnter}, ActionFire},
		{tea.KeyMsg{Type: tea.KeyEsc}, ActionEscape},
		{runeKey("q"), ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlS}, ActionScreenshot},
		{runeKey("x"), ActionNone},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, keys.Action(tc.msg), "key %q", tc.msg.String())
	}
}

func TestHoldTracker(t *testing.T) {
	start := time.Unix(0, 0)
	h := newHoldTracker(core.KeyUp, 500*time.Millisecond)

	ev, ok := h.Press(start)
	require.True(t, ok)
	assert.Equal(t, core.Press(core.KeyUp), ev)

	_, ok = h.Press(start.Add(400 * time.Millisecond))
	assert.False(t, ok, "repeats do not re-send key down")

	_, ok = h.Expire(start.Add(800 * time.Millisecond))
	assert.False(t, ok, "timeout counts from the last repeat")

	ev, ok = h.Expire(start.Add(900 * time.Millisecond))
	require.True(t, ok)
	assert.Equal(t, core.Release(core.KeyUp), ev)
	assert.False(t, h.Held())

	_, ok = h.Release()
	assert.False(t, ok, "already released")
}

type modelHarness struct {
	t     *testing.T
	m     Model
	game  *asteroids.Game
	clock *core.ManualClock
}

func newHarness(t *testing.T) *modelHarness {
	t.Helper()
	game := asteroids.New(config.DefaultAsteroidsConfig())
	clock := core.NewManualClock(time.Unix(0, 0))
	m := NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 25, TickRate: 60, Seed: 1}, Options{
		ScreenshotDir: t.TempDir(),
		HoldTimeout:   500 * time.Millisecond,
		Clock:         clock,
	})
	require.NotNil(t, m.Init())
	return &modelHarness{t: t, m: m, game: game, clock: clock}
}

func (h *modelHarness) send(msg tea.Msg) tea.Cmd {
	next, cmd := h.m.Update(msg)
	h.m = next.(Model)
	return cmd
}

func (h *modelHarness) tick() tea.Cmd {
	h.clock.Advance(time.Second / 60)
	return h.send(TickMsg(h.clock.Now()))
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModelQueuesInputUntilTick(t *testing.T) {
	h := newHarness(t)

	h.send(tea.KeyMsg{Type: tea.KeyLeft})
	h.send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune(" ")})
	assert.Equal(t, 0.0, h.game.Snapshot().Ship.Heading, "nothing applies before the tick")

	cmd := h.tick()
	require.NotNil(t, cmd)
	assert.False(t, isQuit(cmd))

	snap := h.game.Snapshot()
	assert.Equal(t, 22.5, snap.Ship.Heading)
	assert.Len(t, snap.Bullets, 1)
	assert.Equal(t, uint64(1), snap.Frame)
}

func TestModelSynthesizesThrustRelease(t *testing.T) {
	h := newHarness(t)

	h.send(tea.KeyMsg{Type: tea.KeyUp})
	h.tick()
	assert.Equal(t, "ship_acc", h.game.Snapshot().Ship.Visual)

	// Auto-repeat keeps the hold alive.
	for i := 0; i < 20; i++ {
		h.send(tea.KeyMsg{Type: tea.KeyUp})
		h.tick()
	}
	assert.Equal(t, "ship_acc", h.game.Snapshot().Ship.Visual)

	h.clock.Advance(500 * time.Millisecond)
	h.tick()
	assert.Equal(t, "ship_flying", h.game.Snapshot().Ship.Visual)
}

func TestModelCutThrust(t *testing.T) {
	h := newHarness(t)

	h.send(tea.KeyMsg{Type: tea.KeyUp})
	h.tick()
	h.send(tea.KeyMsg{Type: tea.KeyDown})
	h.tick()
	assert.Equal(t, "ship_flying", h.game.Snapshot().Ship.Visual)
}

func TestModelEscapeQuitsAfterTick(t *testing.T) {
	h := newHarness(t)

	assert.Nil(t, h.send(tea.KeyMsg{Type: tea.KeyEsc}))
	cmd := h.tick()

	assert.True(t, isQuit(cmd))
	assert.False(t, h.game.State().Running)
	assert.Empty(t, h.m.View())
}

func TestModelQuitIsImmediate(t *testing.T) {
	h := newHarness(t)
	h.tick()

	cmd := h.send(runeKey("q"))

	assert.True(t, isQuit(cmd))
	assert.False(t, h.game.State().Running)
}

func TestModelResizeKeepsGame(t *testing.T) {
	h := newHarness(t)
	for i := 0; i < 5; i++ {
		h.tick()
	}

	h.send(tea.WindowSizeMsg{Width: 100, Height: 31})
	h.tick()

	assert.Equal(t, uint64(6), h.game.State().Frame)
	assert.Equal(t, 100, h.m.screen.Width())
	assert.Equal(t, 30, h.m.screen.Height())
}

func TestModelView(t *testing.T) {
	h := newHarness(t)
	h.tick()

	view := h.m.View()
	lines := strings.Split(view, "\n")
	assert.Len(t, lines, 25)
	assert.Contains(t, view, "Rocks 0/5")
	assert.Contains(t, lines[len(lines)-1], "thrust")
}

func TestModelScreenshot(t *testing.T) {
	h := newHarness(t)
	h.tick()

	assert.Nil(t, h.send(tea.KeyMsg{Type: tea.KeyCtrlS}))

	entries, err := os.ReadDir(h.m.opts.ScreenshotDir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.True(t, strings.HasPrefix(entries[0].Name(), "asteroids_"))

	data, err := os.ReadFile(h.m.opts.ScreenshotDir + "/" + entries[0].Name())
	require.NoError(t, err)
	assert.Contains(t, string(data), "Bullets 0/10")
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorCyan)
	s.DrawText(2, 0, "cd", core.ColorDefault)
	s.DrawText(0, 1, "xyz", core.Color(200))

	out := RenderScreen(s)
	assert.Equal(t, 2, strings.Count(out, "\n")+1)
	assert.Contains(t, out, "cd")
	assert.Contains(t, out, "xyz")
}
