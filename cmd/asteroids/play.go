package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var flagScreenshotDir string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start a game in the terminal.

Controls:
  Up/W        - Thrust (released shortly after the last key repeat)
  Down/S      - Cut thrust
  Left/A      - Rotate left
  Right/D     - Rotate right
  Space/Enter - Fire
  Esc         - Leave the game
  Ctrl+S      - Save a screenshot
  Q/Ctrl+C    - Quit

Difficulty options:
  easy   - Fewer rocks, slower spawns
  normal - Config values as loaded
  hard   - More rocks, faster spawns, fewer bullets

Examples:
  asteroids play
  asteroids play --difficulty easy
  asteroids play --config ./my-asteroids.yaml --log-file ./asteroids.log`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagScreenshotDir, "screenshots", "", "Screenshot directory (default ~/.asteroids/screenshots)")
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The terminal belongs to the game, so logs are dropped unless --log-file is set.
	logger, closeLog, err := newLogger(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	game, err := registry.Create(asteroids.ID, cfg)
	if err != nil {
		return err
	}

	return tui.Run(game, runtimeConfig(cfg, width, height), tui.Options{
		Logger:        logger,
		ScreenshotDir: flagScreenshotDir,
	})
}
