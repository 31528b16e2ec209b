// Package config provides YAML-based game configuration loading and
// difficulty presets for the asteroids game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// AsteroidsConfig contains all tunable parameters for the asteroids game.
// Durations are expressed in milliseconds to keep the YAML flat.
type AsteroidsConfig struct {
	Playfield PlayfieldConfig `yaml:"playfield"`
	Loop      LoopConfig      `yaml:"loop"`
	Ship      ShipConfig      `yaml:"ship"`
	Bullets   BulletsConfig   `yaml:"bullets"`
	Rocks     RocksConfig     `yaml:"rocks"`
}

// PlayfieldConfig defines the logical window and the HUD strip reserved below it.
type PlayfieldConfig struct {
	Width     float64 `yaml:"width"`
	Height    float64 `yaml:"height"`     // Full window height including the HUD
	HUDHeight float64 `yaml:"hud_height"` // Reserved at the bottom, not part of the playfield
}

// LoopConfig defines the frame loop.
type LoopConfig struct {
	FPS int `yaml:"fps"`
}

// ShipConfig defines ship control and size.
type ShipConfig struct {
	AngleStep       float64 `yaml:"angle_step"`        // Degrees per rotation step
	AccelIntervalMs int     `yaml:"accel_interval_ms"` // Time between thrust impulses
	MaxSpeed        float64 `yaml:"max_speed"`         // Per-axis speed cap for thrust
	Size            Size    `yaml:"size"`
}

// BulletsConfig defines the projectile pool.
type BulletsConfig struct {
	Capacity int     `yaml:"capacity"`
	TTLMs    int     `yaml:"ttl_ms"`
	MinSpeed float64 `yaml:"min_speed"`
	Size     Size    `yaml:"size"`
}

// RocksConfig defines the rock spawner and the per-class sizes.
type RocksConfig struct {
	MaxBig          int       `yaml:"max_big"`
	SpawnIntervalMs int       `yaml:"spawn_interval_ms"`
	SpawnInset      float64   `yaml:"spawn_inset"`
	Sizes           RockSizes `yaml:"sizes"`
}

// RockSizes holds the bounding box of every rock size class.
type RockSizes struct {
	Big    Size `yaml:"big"`
	Medium Size `yaml:"medium"`
	Small  Size `yaml:"small"`
	Tiny   Size `yaml:"tiny"`
}

// Size is a bounding box size in playfield units.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// PlayfieldHeight returns the height available to entities.
func (c AsteroidsConfig) PlayfieldHeight() float64 {
	return c.Playfield.Height - c.Playfield.HUDHeight
}

// AccelInterval returns the ship thrust interval.
func (c AsteroidsConfig) AccelInterval() time.Duration {
	return time.Duration(c.Ship.AccelIntervalMs) * time.Millisecond
}

// BulletTTL returns the bullet time-to-live.
func (c AsteroidsConfig) BulletTTL() time.Duration {
	return time.Duration(c.Bullets.TTLMs) * time.Millisecond
}

// SpawnInterval returns the rock spawn interval.
func (c AsteroidsConfig) SpawnInterval() time.Duration {
	return time.Duration(c.Rocks.SpawnIntervalMs) * time.Millisecond
}

// Validate reports every problem with the configuration at once.
// A config that passes can be used to build a game without panics.
func (c AsteroidsConfig) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Playfield.Width > 0, "playfield.width must be positive, got %v", c.Playfield.Width)
	check(c.Playfield.HUDHeight >= 0, "playfield.hud_height must not be negative, got %v", c.Playfield.HUDHeight)
	check(c.PlayfieldHeight() > 0, "playfield.height must exceed hud_height, got %v <= %v", c.Playfield.Height, c.Playfield.HUDHeight)
	check(c.Loop.FPS > 0, "loop.fps must be positive, got %d", c.Loop.FPS)

	check(c.Ship.AngleStep > 0 && c.Ship.AngleStep <= 360, "ship.angle_step must be in (0, 360], got %v", c.Ship.AngleStep)
	check(c.Ship.AccelIntervalMs >= 0, "ship.accel_interval_ms must not be negative, got %d", c.Ship.AccelIntervalMs)
	check(c.Ship.MaxSpeed > 0, "ship.max_speed must be positive, got %v", c.Ship.MaxSpeed)
	check(c.Ship.Size.valid(), "ship.size must be positive, got %+v", c.Ship.Size)

	check(c.Bullets.Capacity >= 0, "bullets.capacity must not be negative, got %d", c.Bullets.Capacity)
	check(c.Bullets.TTLMs >= 0, "bullets.ttl_ms must not be negative, got %d", c.Bullets.TTLMs)
	check(c.Bullets.MinSpeed >= 0, "bullets.min_speed must not be negative, got %v", c.Bullets.MinSpeed)
	check(c.Bullets.Size.valid(), "bullets.size must be positive, got %+v", c.Bullets.Size)

	check(c.Rocks.MaxBig >= 0, "rocks.max_big must not be negative, got %d", c.Rocks.MaxBig)
	check(c.Rocks.SpawnIntervalMs >= 0, "rocks.spawn_interval_ms must not be negative, got %d", c.Rocks.SpawnIntervalMs)
	check(c.Rocks.SpawnInset >= 0, "rocks.spawn_inset must not be negative, got %v", c.Rocks.SpawnInset)
	for _, rs := range []struct {
		name string
		size Size
	}{
		{"big", c.Rocks.Sizes.Big},
		{"medium", c.Rocks.Sizes.Medium},
		{"small", c.Rocks.Sizes.Small},
		{"tiny", c.Rocks.Sizes.Tiny},
	} {
		check(rs.size.valid(), "rocks.sizes.%s must be positive, got %+v", rs.name, rs.size)
	}

	// A big rock plus the inset on both sides has to fit, and there must be room
	// left over that the ship does not cover, or spawn placement never terminates.
	big := c.Rocks.Sizes.Big
	inset := 2 * c.Rocks.SpawnInset
	check(big.W+inset < c.Playfield.Width, "rocks.sizes.big width %v plus inset does not fit playfield width %v", big.W, c.Playfield.Width)
	check(big.H+inset < c.PlayfieldHeight(), "rocks.sizes.big height %v plus inset does not fit playfield height %v", big.H, c.PlayfieldHeight())
	check(c.Ship.Size.W*3 < c.Playfield.Width && c.Ship.Size.H*3 < c.PlayfieldHeight(),
		"ship.size %+v is too large for the playfield", c.Ship.Size)

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid asteroids config: %w", errors.Join(errs...))
	}
	return nil
}

func (s Size) valid() bool {
	return s.W > 0 && s.H > 0
}
