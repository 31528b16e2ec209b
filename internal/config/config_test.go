package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cfg AsteroidsConfig
	require.NoError(t, yaml.Unmarshal(DefaultYAML(), &cfg))
	assert.Equal(t, DefaultAsteroidsConfig(), cfg)
}

func TestDefaultsAreValid(t *testing.T) {
	cfg := DefaultAsteroidsConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 650.0, cfg.PlayfieldHeight())
	assert.Equal(t, int64(100), cfg.AccelInterval().Milliseconds())
	assert.Equal(t, int64(5000), cfg.BulletTTL().Milliseconds())
	assert.Equal(t, int64(300), cfg.SpawnInterval().Milliseconds())
}

func TestLoadCustomPathOverridesOnlyNamedKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("rocks:\n  max_big: 7\nbullets:\n  capacity: 4\n"), 0o600))

	cfg, err := LoadAsteroids(path)
	require.NoError(t, err)

	assert.Equal(t, 7, cfg.Rocks.MaxBig)
	assert.Equal(t, 4, cfg.Bullets.Capacity)
	assert.Equal(t, 300, cfg.Rocks.SpawnIntervalMs, "untouched keys keep defaults")
	assert.Equal(t, 22.5, cfg.Ship.AngleStep)
}

func TestLoadCustomPathErrors(t *testing.T) {
	_, err := LoadAsteroids(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read")

	bad := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("rocks: [1, 2"), 0o600))
	_, err = LoadAsteroids(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "invalid.yaml")
	yml := "loop:\n  fps: 0\nrocks:\n  spawn_interval_ms: -1\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o600))

	_, err := LoadAsteroids(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loop.fps")
	assert.Contains(t, err.Error(), "rocks.spawn_interval_ms")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*AsteroidsConfig)
		wantErr string
	}{
		{"hud swallows playfield", func(c *AsteroidsConfig) { c.Playfield.HUDHeight = 700 }, "playfield.height"},
		{"zero angle step", func(c *AsteroidsConfig) { c.Ship.AngleStep = 0 }, "ship.angle_step"},
		{"negative ttl", func(c *AsteroidsConfig) { c.Bullets.TTLMs = -5 }, "bullets.ttl_ms"},
		{"empty tiny rock", func(c *AsteroidsConfig) { c.Rocks.Sizes.Tiny = Size{} }, "rocks.sizes.tiny"},
		{"big rock too wide", func(c *AsteroidsConfig) { c.Rocks.Sizes.Big.W = 1195 }, "rocks.sizes.big width"},
		{"ship too large", func(c *AsteroidsConfig) { c.Ship.Size = Size{W: 500, H: 500} }, "ship.size"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestPresets(t *testing.T) {
	p, err := ParsePreset("hard")
	require.NoError(t, err)
	cfg := DefaultAsteroidsConfig()
	ApplyAsteroidsPreset(&cfg, p)
	assert.Equal(t, 8, cfg.Rocks.MaxBig)
	assert.Equal(t, 150, cfg.Rocks.SpawnIntervalMs)
	require.NoError(t, cfg.Validate())

	p, err = ParsePreset("")
	require.NoError(t, err)
	cfg = DefaultAsteroidsConfig()
	ApplyAsteroidsPreset(&cfg, p)
	assert.Equal(t, DefaultAsteroidsConfig(), cfg)

	_, err = ParsePreset("nightmare")
	assert.Error(t, err)
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultAsteroidsConfig())
	require.NoError(t, err)

	var back AsteroidsConfig
	require.NoError(t, yaml.Unmarshal(data, &back))
	assert.Equal(t, DefaultAsteroidsConfig(), back)
}
