package asteroids

import (
	"math"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Bullet is a projectile with a fixed velocity and a limited lifetime.
type Bullet struct {
	Heading  float64   // Degrees at firing time
	Velocity core.Vec2 // Fixed at creation
	box      core.Box
	life     *core.Timer
}

// Box returns the bullet's bounding box.
func (b *Bullet) Box() core.Box { return b.box }

// BulletParams holds the tunables of the projectile pool.
type BulletParams struct {
	Capacity int
	TTL      time.Duration
	MinSpeed float64 // Per-axis floor for nonzero velocity components
	Size     core.Vec2
}

// BulletManager owns every active bullet. Membership in the active set is the
// only handle on a bullet; nothing else keeps references across frames.
type BulletManager struct {
	field  Playfield
	clock  core.Clock
	params BulletParams
	active []*Bullet
}

// NewBulletManager creates an empty bullet pool.
func NewBulletManager(field Playfield, clock core.Clock, p BulletParams) *BulletManager {
	return &BulletManager{
		field:  field,
		clock:  clock,
		params: p,
		active: make([]*Bullet, 0, p.Capacity),
	}
}

// Fire launches a bullet for the intent. At capacity the call does nothing and
// returns false; that is a normal outcome, not an error.
func (m *BulletManager) Fire(in FireIntent) bool {
	if len(m.active) >= m.params.Capacity {
		return false
	}

	m.active = append(m.active, &Bullet{
		Heading:  in.Heading,
		Velocity: bulletVelocity(in.Heading, in.Velocity, m.params.MinSpeed),
		box:      core.BoxAt(in.Origin, m.params.Size.X, m.params.Size.Y),
		life:     core.NewTimer(m.clock, m.params.TTL, true),
	})
	return true
}

// UpdateAll expires bullets whose lifetime is over and moves the rest.
func (m *BulletManager) UpdateAll() {
	alive := m.active[:0]
	for _, b := range m.active {
		if b.life.Due() {
			continue
		}
		b.box = m.field.Advance(b.box, b.Velocity)
		alive = append(alive, b)
	}
	// Drop references held past the new length.
	for i := len(alive); i < len(m.active); i++ {
		m.active[i] = nil
	}
	m.active = alive
}

// Len returns the number of active bullets.
func (m *BulletManager) Len() int {
	return len(m.active)
}

// Capacity returns the maximum number of simultaneous bullets.
func (m *BulletManager) Capacity() int {
	return m.params.Capacity
}

// Bullets returns the active bullets. The slice is owned by the manager and is
// only valid until the next Fire or UpdateAll.
func (m *BulletManager) Bullets() []*Bullet {
	return m.active
}

// bulletVelocity derives a bullet velocity from the ship's heading and velocity.
// Each nonzero axis is pushed out to at least minSpeed in magnitude so a bullet
// always leaves the ship, even when fired while drifting backwards.
func bulletVelocity(heading float64, inherited core.Vec2, minSpeed float64) core.Vec2 {
	v := inherited.Sub(core.Heading(heading))
	return core.Vec2{
		X: floorSpeed(v.X, minSpeed),
		Y: floorSpeed(v.Y, minSpeed),
	}
}

func floorSpeed(v, min float64) float64 {
	if v == 0 || math.Abs(v) >= min {
		return v
	}
	return math.Copysign(min, v)
}
