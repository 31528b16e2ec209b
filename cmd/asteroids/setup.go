package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// loadConfig loads the game config and applies the difficulty preset.
// Any failure here aborts startup.
func loadConfig() (config.AsteroidsConfig, error) {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return config.AsteroidsConfig{}, err
	}

	cfg, err := config.LoadAsteroids(flagConfig)
	if err != nil {
		return config.AsteroidsConfig{}, err
	}
	config.ApplyAsteroidsPreset(&cfg, preset)
	if flagFPS > 0 {
		cfg.Loop.FPS = flagFPS
	}
	return cfg, nil
}

// runtimeConfig builds the per-session runtime settings.
func runtimeConfig(cfg config.AsteroidsConfig, width, height int) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: cfg.Loop.FPS,
		Seed:     flagSeed,
	}
}

// newLogger creates the CLI logger. Logs go to --log-file when set, otherwise
// to fallback. The returned close func is always safe to call.
func newLogger(fallback io.Writer) (*log.Logger, func() error, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	out := fallback
	closeFn := func() error { return nil }
	if flagLogFile != "" {
		f, openErr := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if openErr != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", openErr)
		}
		out = f
		closeFn = f.Close
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "asteroids",
		Level:           level,
	})
	return logger, closeFn, nil
}
