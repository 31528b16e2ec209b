package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// EntityKind distinguishes the entity variants in a snapshot.
type EntityKind int

const (
	EntityShip EntityKind = iota
	EntityRock
	EntityBullet
)

// EntityView is the render-facing state of one entity.
// Visual names the sprite set and Frame picks the image within it.
type EntityView struct {
	Kind     EntityKind
	Box      core.Box
	Velocity core.Vec2
	Heading  float64
	Visual   string
	Frame    int
}

// Snapshot is a read-only copy of everything a renderer needs for one frame.
type Snapshot struct {
	Frame          uint64
	Running        bool
	Playfield      Playfield
	Ship           EntityView
	Rocks          []EntityView
	Bullets        []EntityView
	RockCap        int
	BulletCapacity int
}

// Snapshot returns the current state of all entities.
// It only reads; calling it any number of times does not affect the simulation.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Frame:     g.frame,
		Running:   g.running,
		Playfield: g.field,
		Ship: EntityView{
			Kind:     EntityShip,
			Box:      g.ship.Box(),
			Velocity: g.ship.Velocity(),
			Heading:  g.ship.Heading(),
			Visual:   g.ship.Mode().String(),
			Frame:    g.ship.Frame(),
		},
		Rocks:          make([]EntityView, 0, g.rocks.Len()),
		Bullets:        make([]EntityView, 0, g.bullets.Len()),
		RockCap:        g.cfg.Rocks.MaxBig,
		BulletCapacity: g.bullets.Capacity(),
	}

	for _, r := range g.rocks.Rocks() {
		snap.Rocks = append(snap.Rocks, EntityView{
			Kind:     EntityRock,
			Box:      r.Box(),
			Velocity: r.Velocity,
			Heading:  float64(r.Angle),
			Visual:   "rocks_" + r.Size.String(),
			Frame:    r.Variant,
		})
	}
	for _, b := range g.bullets.Bullets() {
		snap.Bullets = append(snap.Bullets, EntityView{
			Kind:     EntityBullet,
			Box:      b.Box(),
			Velocity: b.Velocity,
			Heading:  b.Heading,
			Visual:   "bullets",
		})
	}
	return snap
}
