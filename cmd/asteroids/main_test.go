package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

// execute runs the root command with fresh flag values.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	flagFPS, flagSeed = 0, 0
	flagConfig, flagDifficulty = "", ""
	flagLogLevel, flagLogFile = "error", ""
	flagFrames, flagScript, flagRealtime = 600, "", false
	flagWidth, flagHeight, flagEvery = 80, 24, 0
	flagDefaults = false

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestSimFrameLimit(t *testing.T) {
	out, err := execute(t, "sim", "--frames", "30", "--seed", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "Rocks 1/5")
	assert.Contains(t, out, "stopped after 30 frames (frame limit)")
}

func TestSimScriptQuits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.yaml")
	script := "events:\n  - {frame: 0, kind: keydown, key: fire}\n  - {frame: 5, kind: quit}\n"
	require.NoError(t, os.WriteFile(path, []byte(script), 0o600))

	out, err := execute(t, "sim", "--frames", "0", "--script", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Bullets 1/10")
	assert.Contains(t, out, "stopped after 6 frames (quit)")
}

func TestSimUsesLoadedConfig(t *testing.T) {
	out, err := execute(t, "sim", "--frames", "30", "--difficulty", "hard")
	require.NoError(t, err)

	// Hard spawns every 150ms: frames 9, 18 and 27.
	assert.Contains(t, out, "Rocks 3/8")
}

func TestSimSeedZeroIsReproducible(t *testing.T) {
	first, err := execute(t, "sim", "--frames", "120", "--every", "40")
	require.NoError(t, err)
	second, err := execute(t, "sim", "--frames", "120", "--every", "40")
	require.NoError(t, err)
	assert.Equal(t, first, second)

	usage := rootCmd.PersistentFlags().Lookup("seed").Usage
	assert.Contains(t, usage, "sim always uses it as given")
}

func TestSimPrintsEveryNthFrame(t *testing.T) {
	out, err := execute(t, "sim", "--frames", "4", "--every", "2", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "-- frame 2 --")
	assert.Contains(t, out, "-- frame 4 --")
}

func TestSimNeedsAStopCondition(t *testing.T) {
	_, err := execute(t, "sim", "--frames", "0")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--frames 0")
}

func TestSimRejectsBadScript(t *testing.T) {
	_, err := execute(t, "sim", "--script", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read script")
}

func TestConfigAppliesPreset(t *testing.T) {
	out, err := execute(t, "config", "--difficulty", "hard", "--fps", "30")
	require.NoError(t, err)

	var cfg config.AsteroidsConfig
	require.NoError(t, yaml.Unmarshal([]byte(out), &cfg))
	assert.Equal(t, 8, cfg.Rocks.MaxBig)
	assert.Equal(t, 150, cfg.Rocks.SpawnIntervalMs)
	assert.Equal(t, 30, cfg.Loop.FPS)
}

func TestConfigDefaults(t *testing.T) {
	out, err := execute(t, "config", "--defaults")
	require.NoError(t, err)
	assert.Equal(t, string(config.DefaultYAML()), out)
}

func TestStartupErrorsAbort(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"unknown difficulty", []string{"config", "--difficulty", "insane"}, "unknown difficulty"},
		{"missing config file", []string{"config", "--config", "/nonexistent/asteroids.yaml"}, "failed to read"},
		{"bad log level", []string{"sim", "--frames", "1", "--log-level", "loud"}, "invalid --log-level"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := execute(t, tc.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sim.log")

	_, err := execute(t, "sim", "--frames", "2", "--log-file", path, "--log-level", "info")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run started")
	assert.Contains(t, string(data), "run stopped")
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)
	assert.Contains(t, out, "asteroids")
	assert.Contains(t, out, "Asteroids")
}
