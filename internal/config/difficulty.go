package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset validates a preset name. An empty name means "keep the config as loaded".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", name)
	}
}

// ApplyAsteroidsPreset adjusts rock pressure for a difficulty preset.
// Normal and the empty preset leave the loaded values untouched.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rocks.MaxBig = 3
		cfg.Rocks.SpawnIntervalMs = 1000
	case DifficultyHard:
		cfg.Rocks.MaxBig = 8
		cfg.Rocks.SpawnIntervalMs = 150
		cfg.Bullets.Capacity = 6
	}
}
