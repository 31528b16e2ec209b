package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Sizes supplies the bounding box of every entity kind.
// It stands in for sprite metadata: the simulation only needs box sizes to
// compute wrap edges and overlap.
type Sizes interface {
	Ship() core.Vec2
	Bullet() core.Vec2
	Rock(size RockSize) core.Vec2
}

// ConfigSizes reads entity sizes from the game configuration.
type ConfigSizes struct {
	cfg config.AsteroidsConfig
}

// NewConfigSizes wraps a configuration as a Sizes provider.
func NewConfigSizes(cfg config.AsteroidsConfig) ConfigSizes {
	return ConfigSizes{cfg: cfg}
}

func vec(s config.Size) core.Vec2 {
	return core.Vec2{X: s.W, Y: s.H}
}

// Ship returns the ship bounding box size.
func (s ConfigSizes) Ship() core.Vec2 { return vec(s.cfg.Ship.Size) }

// Bullet returns the bullet bounding box size.
func (s ConfigSizes) Bullet() core.Vec2 { return vec(s.cfg.Bullets.Size) }

// Rock returns the bounding box size for a rock size class.
func (s ConfigSizes) Rock(size RockSize) core.Vec2 {
	switch size {
	case RockMedium:
		return vec(s.cfg.Rocks.Sizes.Medium)
	case RockSmall:
		return vec(s.cfg.Rocks.Sizes.Small)
	case RockTiny:
		return vec(s.cfg.Rocks.Sizes.Tiny)
	default:
		return vec(s.cfg.Rocks.Sizes.Big)
	}
}
