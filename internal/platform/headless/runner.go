// Package headless runs games without a terminal UI.
// It drives the same Step/Render contract as the TUI from a scripted input
// source, which makes runs reproducible and easy to test.
package headless

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// StopReason tells why a run ended.
type StopReason int

const (
	StopQuit       StopReason = iota // The game stopped running after a quit input
	StopFrameLimit                   // MaxFrames reached
	StopCancelled                    // Context cancelled
)

func (r StopReason) String() string {
	switch r {
	case StopQuit:
		return "quit"
	case StopFrameLimit:
		return "frame limit"
	case StopCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Sink receives every simulated frame after it has been rendered.
type Sink interface {
	Present(screen *core.Screen, state core.GameState) error
}

// WriterSink writes every Nth frame as plain text.
type WriterSink struct {
	W     io.Writer
	Every uint64 // Write frames whose number is a multiple of Every; 0 disables
}

// Present writes the screen if the frame is selected.
func (s WriterSink) Present(screen *core.Screen, state core.GameState) error {
	if s.Every == 0 || state.Frame%s.Every != 0 {
		return nil
	}
	_, err := fmt.Fprintf(s.W, "-- frame %d --\n%s\n", state.Frame, screen.String())
	return err
}

// Options configures a Runner.
type Options struct {
	// MaxFrames stops the run after this many frames. 0 means no limit.
	MaxFrames uint64
	// Realtime paces frames with a ticker at the runtime frame duration.
	// Without it frames run back to back, which is what tests and batch runs want.
	Realtime bool
	// Sink, if set, receives every frame after rendering.
	Sink Sink
	// Logger defaults to a discarding logger.
	Logger *log.Logger
}

// Result summarizes a finished run.
type Result struct {
	Frames uint64
	Reason StopReason
	State  core.GameState
}

// Runner drives a game frame by frame until it quits, hits the frame limit,
// or its context is cancelled.
type Runner struct {
	game   registry.Game
	source Source
	cfg    core.RuntimeConfig
	opts   Options
	screen *core.Screen
	logger *log.Logger
	frames uint64
}

// NewRunner creates a runner. A nil source supplies no input.
func NewRunner(game registry.Game, source Source, cfg core.RuntimeConfig, opts Options) *Runner {
	if source == nil {
		source = SourceFunc(func(uint64) []core.Event { return nil })
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		game:   game,
		source: source,
		cfg:    cfg,
		opts:   opts,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		logger: logger,
	}
}

// Run resets the game and steps it until a stop condition.
// A frame that has started always completes before cancellation is observed.
func (r *Runner) Run(ctx context.Context) (Result, error) {
	r.game.Reset(r.cfg)
	r.frames = 0
	r.logger.Info("run started",
		"game", r.game.ID(),
		"fps", r.cfg.TickRate,
		"seed", r.cfg.Seed,
		"max_frames", r.opts.MaxFrames,
		"realtime", r.opts.Realtime,
	)

	var tick <-chan time.Time
	if r.opts.Realtime {
		ticker := time.NewTicker(r.cfg.FrameDuration())
		defer ticker.Stop()
		tick = ticker.C
	}

	started := time.Now()
	state := r.game.State()
	reason := StopQuit
	for state.Running {
		if r.opts.MaxFrames > 0 && r.frames >= r.opts.MaxFrames {
			reason = StopFrameLimit
			break
		}
		if err := wait(ctx, tick); err != nil {
			reason = StopCancelled
			break
		}

		var err error
		state, err = r.Step()
		if err != nil {
			return r.result(reason, state), err
		}
	}

	r.logger.Info("run stopped",
		"reason", reason,
		"frames", r.frames,
		"elapsed", time.Since(started).Round(time.Millisecond),
	)
	return r.result(reason, state), nil
}

// Step runs a single frame: poll the source, step the game, then present the
// rendered screen to the sink.
func (r *Runner) Step() (core.GameState, error) {
	events := r.source.Poll(r.frames)
	// Sources may hand out their own storage; the game gets a private copy.
	res := r.game.Step(core.NewInputFrame(events...).Clone())
	r.frames++

	if len(events) > 0 {
		r.logger.Debug("input", "frame", res.State.Frame, "events", len(events))
	}
	if rate := uint64(r.cfg.TickRate); rate > 0 && r.frames%rate == 0 {
		r.logger.Debug("tick", "frame", res.State.Frame)
	}

	if r.opts.Sink != nil {
		r.game.Render(r.screen)
		if err := r.opts.Sink.Present(r.screen, res.State); err != nil {
			return res.State, fmt.Errorf("headless: present frame %d: %w", res.State.Frame, err)
		}
	}
	return res.State, nil
}

// Screen renders the current game state and returns the buffer.
func (r *Runner) Screen() *core.Screen {
	r.game.Render(r.screen)
	return r.screen
}

func (r *Runner) result(reason StopReason, state core.GameState) Result {
	return Result{Frames: r.frames, Reason: reason, State: state}
}

// wait blocks until the next tick, or just checks ctx when there is no ticker.
func wait(ctx context.Context, tick <-chan time.Time) error {
	if tick == nil {
		return ctx.Err()
	}
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-tick:
		return nil
	}
}
