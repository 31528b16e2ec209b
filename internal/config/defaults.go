package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default asteroids configuration.
// It mirrors defaults/asteroids.yaml and is used if the embedded YAML fails to parse.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Playfield: PlayfieldConfig{
			Width:     1200,
			Height:    700,
			HUDHeight: 50,
		},
		Loop: LoopConfig{
			FPS: 60,
		},
		Ship: ShipConfig{
			AngleStep:       22.5,
			AccelIntervalMs: 100,
			MaxSpeed:        10,
			Size:            Size{W: 48, H: 48},
		},
		Bullets: BulletsConfig{
			Capacity: 10,
			TTLMs:    5000,
			MinSpeed: 3,
			Size:     Size{W: 15, H: 15},
		},
		Rocks: RocksConfig{
			MaxBig:          5,
			SpawnIntervalMs: 300,
			SpawnInset:      5,
			Sizes: RockSizes{
				Big:    Size{W: 96, H: 96},
				Medium: Size{W: 64, H: 64},
				Small:  Size{W: 40, H: 40},
				Tiny:   Size{W: 24, H: 24},
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultAsteroidsYAML
}
