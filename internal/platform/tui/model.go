package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// helpRows is the number of terminal rows used by the help line.
const helpRows = 1

// Options configures the game screen.
type Options struct {
	// Logger receives session events. Defaults to a discarding logger, since the
	// terminal belongs to the game while it runs.
	Logger *log.Logger
	// ScreenshotDir is where ctrl+s writes screen captures.
	// Defaults to ~/.asteroids/screenshots.
	ScreenshotDir string
	// HoldTimeout is how long thrust stays on after the last up-key repeat.
	HoldTimeout time.Duration
	// Clock drives the hold timeout. Defaults to the system clock.
	Clock core.Clock
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	config     core.RuntimeConfig
	opts       Options
	keys       KeyMap
	help       help.Model
	thrust     holdTracker
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.HoldTimeout <= 0 {
		opts.HoldTimeout = DefaultHoldTimeout
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock{}
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-helpRows, 0)),
		config:     cfg,
		opts:       opts,
		keys:       DefaultKeyMap(),
		help:       h,
		thrust:     newHoldTracker(core.KeyUp, opts.HoldTimeout),
		inputFrame: core.NewInputFrame(),
		logger:     opts.Logger,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("session started", "game", m.game.ID(), "fps", m.config.TickRate, "seed", m.config.Seed)

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey queues the input event for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case ActionQuit:
		// Quitting is immediate; the game still sees the quit event.
		m.inputFrame.Push(core.Quit())
		m.game.Step(m.inputFrame)
		m.inputFrame.Clear()
		m.quitting = true
		m.logger.Info("session stopped", "reason", "quit", "frame", m.game.State().Frame)
		return m, tea.Quit
	case ActionScreenshot:
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
	case ActionEscape:
		m.inputFrame.Push(core.Press(core.KeyEscape))
	case ActionThrust:
		if ev, ok := m.thrust.Press(m.opts.Clock.Now()); ok {
			m.inputFrame.Push(ev)
		}
	case ActionCutThrust:
		if ev, ok := m.thrust.Release(); ok {
			m.inputFrame.Push(ev)
		}
	case ActionRotateLeft:
		m.inputFrame.Push(core.Press(core.KeyLeft))
	case ActionRotateRight:
		m.inputFrame.Push(core.Press(core.KeyRight))
	case ActionFire:
		m.inputFrame.Push(core.Press(core.KeyFire))
	}

	return m, nil
}

// handleResize processes window resize events.
// The playfield is in logical units, so the game keeps running and only the
// scale of the drawing changes.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-helpRows, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick runs one simulation frame with every event queued since the last tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if ev, ok := m.thrust.Expire(m.opts.Clock.Now()); ok {
		m.inputFrame.Push(ev)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.inputFrame.Clear()

	if !m.gameState.Running {
		m.quitting = true
		m.logger.Info("session stopped", "reason", "escape", "frame", m.gameState.Frame)
		return m, tea.Quit
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current screen to a timestamped text file.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	dir := m.opts.ScreenshotDir
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("tui: screenshot dir: %w", err)
		}
		dir = filepath.Join(home, ".asteroids", "screenshots")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("tui: create screenshot dir: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405.000")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("tui: write screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for the game.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
