// asteroids is a terminal Asteroids game.
//
// Usage:
//
//	asteroids play           - Play in the terminal
//	asteroids sim            - Run a headless, scripted simulation
//	asteroids config         - Print the effective configuration
//	asteroids list           - List available games
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate from the config
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Path to a custom config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Append logs to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import games to register them
	_ "github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids in your terminal",
	Long: `Fly a ship around a wrap-around playfield and shoot at drifting rocks.

Available commands:
  play     - Play in the terminal
  sim      - Run a headless, scripted simulation
  config   - Print the effective configuration
  list     - Show all available games

Examples:
  asteroids play
  asteroids play --difficulty hard
  asteroids sim --frames 600 --script ./input.yaml --seed 42
  asteroids config --config ./my-asteroids.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (play picks one from the clock when 0; sim always uses it as given)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}
