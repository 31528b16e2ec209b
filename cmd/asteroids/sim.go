package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/headless"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var (
	flagFrames   uint64
	flagScript   string
	flagRealtime bool
	flagWidth    int
	flagHeight   int
	flagEvery    uint64
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless, scripted simulation",
	Long: `Run the game without a terminal UI and print the final frame.

The script is a YAML file of frame-indexed input events. Frames count from 0.

  events:
    - {frame: 0, kind: keydown, key: up}
    - {frame: 30, kind: keydown, key: fire}
    - {frame: 45, kind: keyup, key: up}
    - {frame: 600, kind: quit}

Kinds: keydown, keyup, quit. Keys: escape, left, right, up, fire.

Examples:
  asteroids sim --frames 600 --seed 42
  asteroids sim --script ./input.yaml --seed 42 --every 60
  asteroids sim --realtime --frames 300 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagFrames, "frames", 600, "Stop after this many frames (0 = until quit)")
	simCmd.Flags().StringVar(&flagScript, "script", "", "Path to an input script YAML")
	simCmd.Flags().BoolVar(&flagRealtime, "realtime", false, "Pace frames at the configured fps")
	simCmd.Flags().IntVar(&flagWidth, "width", 80, "Output width in characters")
	simCmd.Flags().IntVar(&flagHeight, "height", 24, "Output height in characters")
	simCmd.Flags().Uint64Var(&flagEvery, "every", 0, "Also print every Nth frame (0 = final frame only)")
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	var source headless.Source
	if flagScript != "" {
		script, scriptErr := headless.LoadScript(flagScript)
		if scriptErr != nil {
			return scriptErr
		}
		logger.Info("script loaded", "path", flagScript, "events", script.Len(), "last_frame", script.LastFrame())
		source = script
	}
	if flagFrames == 0 && source == nil {
		return fmt.Errorf("--frames 0 needs a --script that quits")
	}

	game, err := registry.Create(asteroids.ID, cfg)
	if err != nil {
		return err
	}

	opts := headless.Options{
		MaxFrames: flagFrames,
		Realtime:  flagRealtime,
		Logger:    logger,
	}
	if flagEvery > 0 {
		opts.Sink = headless.WriterSink{W: cmd.OutOrStdout(), Every: flagEvery}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	runner := headless.NewRunner(game, source, runtimeConfig(cfg, flagWidth, flagHeight), opts)
	res, err := runner.Run(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), runner.Screen().String())
	fmt.Fprintf(cmd.OutOrStdout(), "stopped after %d frames (%s)\n", res.Frames, res.Reason)
	return nil
}
