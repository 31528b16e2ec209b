package asteroids

import (
	"fmt"
	"math"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ShipMode is the flight state of the ship.
type ShipMode int

const (
	ShipFlying       ShipMode = iota // Coasting, no thrust
	ShipAccelerating                 // Thrust impulses applied on the accel timer
)

// String returns the visual-state name of the mode.
func (m ShipMode) String() string {
	if m == ShipAccelerating {
		return "ship_acc"
	}
	return "ship_flying"
}

// ShipCommand is a single control input to the ship, dispatched once per event.
type ShipCommand int

const (
	ShipRotateLeft ShipCommand = iota
	ShipRotateRight
	ShipThrustOn
	ShipThrustOff
	ShipFire
)

// FireIntent asks the owner of the bullet pool to launch a bullet.
// The ship produces it; it never touches the pool itself.
type FireIntent struct {
	Heading  float64   // Degrees at firing time
	Velocity core.Vec2 // Ship velocity inherited by the bullet
	Origin   core.Vec2 // Ship center
}

// ShipParams holds the tunables of the ship controller.
type ShipParams struct {
	AngleStep     float64       // Degrees per rotation step
	MaxSpeed      float64       // Per-axis thrust cap
	AccelInterval time.Duration // Time between thrust impulses
	Size          core.Vec2
}

// Ship is the player-controlled entity.
type Ship struct {
	field    Playfield
	params   ShipParams
	box      core.Box
	heading  float64 // Degrees in [0, 360)
	frame    int     // Sprite frame index, follows heading
	frames   int     // Number of sprite frames in a full turn
	mode     ShipMode
	velocity core.Vec2
	accel    *core.Timer
}

// NewShip creates a stationary ship at the center of the playfield, heading 0.
// A non-positive angle step is a programming error and panics.
func NewShip(field Playfield, clock core.Clock, p ShipParams) *Ship {
	if p.AngleStep <= 0 {
		panic(fmt.Sprintf("asteroids: invalid ship angle step %v", p.AngleStep))
	}
	frames := int(math.Round(360 / p.AngleStep))
	if frames < 1 {
		frames = 1
	}
	return &Ship{
		field:  field,
		params: p,
		box:    core.BoxAt(field.Center(), p.Size.X, p.Size.Y),
		frames: frames,
		accel:  core.NewTimer(clock, p.AccelInterval, true),
	}
}

// Apply dispatches a command. The returned intent is valid only when ok is true,
// which happens for ShipFire.
func (s *Ship) Apply(cmd ShipCommand) (intent FireIntent, ok bool) {
	switch cmd {
	case ShipRotateLeft:
		s.Rotate(1)
	case ShipRotateRight:
		s.Rotate(-1)
	case ShipThrustOn:
		s.SetMode(ShipAccelerating)
	case ShipThrustOff:
		s.SetMode(ShipFlying)
	case ShipFire:
		return s.Fire(), true
	}
	return FireIntent{}, false
}

// Rotate turns the ship one angle step in the given direction (+1 or -1)
// and advances the sprite frame the same way. Rotation has no physical effect
// other than changing the heading used by later thrust and shots.
func (s *Ship) Rotate(dir int) {
	if dir == 0 {
		return
	}
	step := math.Copysign(s.params.AngleStep, float64(dir))
	s.heading = math.Mod(s.heading+step, 360)
	if s.heading < 0 {
		s.heading += 360
	}

	s.frame = (s.frame + sign(dir)) % s.frames
	if s.frame < 0 {
		s.frame += s.frames
	}
}

// SetMode switches between flying and accelerating.
func (s *Ship) SetMode(m ShipMode) {
	s.mode = m
}

// Fire returns a request for a bullet launched from the ship's current state.
func (s *Ship) Fire() FireIntent {
	return FireIntent{
		Heading:  s.heading,
		Velocity: s.velocity,
		Origin:   s.box.Center(),
	}
}

// Tick runs one frame of ship physics. When moving is false nothing happens.
// While accelerating, each due accel-timer tick applies an impulse of
// -(sin h, cos h); an impulse that would take either axis to MaxSpeed or beyond is
// dropped entirely. The position then advances through the wrap-around motion model.
func (s *Ship) Tick(moving bool) {
	if !moving {
		return
	}
	if s.mode == ShipAccelerating && s.accel.Due() {
		next := s.velocity.Sub(core.Heading(s.heading))
		if math.Abs(next.X) < s.params.MaxSpeed && math.Abs(next.Y) < s.params.MaxSpeed {
			s.velocity = next
		}
	}
	s.box = s.field.Advance(s.box, s.velocity)
}

// Box returns the ship's bounding box.
func (s *Ship) Box() core.Box { return s.box }

// Heading returns the heading in degrees.
func (s *Ship) Heading() float64 { return s.heading }

// Frame returns the sprite frame index matching the heading.
func (s *Ship) Frame() int { return s.frame }

// Frames returns the number of sprite frames in a full turn.
func (s *Ship) Frames() int { return s.frames }

// Mode returns the current flight mode.
func (s *Ship) Mode() ShipMode { return s.mode }

// Velocity returns the current velocity.
func (s *Ship) Velocity() core.Vec2 { return s.velocity }

func sign(v int) int {
	if v < 0 {
		return -1
	}
	return 1
}
