package asteroids

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// RockSize is the size class of a rock. It is fixed at creation.
type RockSize int

const (
	RockBig RockSize = iota
	RockMedium
	RockSmall
	RockTiny
)

// rockClass describes everything that depends only on the size class.
type rockClass struct {
	name        string
	speed       float64 // Signed; velocity is speed * (sin a, cos a)
	points      int
	variantLow  int // Sprite variants, inclusive range
	variantHigh int
}

var rockClasses = map[RockSize]rockClass{
	RockBig:    {name: "big", speed: -3.0, points: 0, variantLow: 0, variantHigh: 0},
	RockMedium: {name: "medium", speed: -4.0, points: 0, variantLow: 1, variantHigh: 2},
	RockSmall:  {name: "small", speed: -4.0, points: 0, variantLow: 3, variantHigh: 5},
	RockTiny:   {name: "tiny", speed: -5.0, points: 20, variantLow: 6, variantHigh: 9},
}

func (s RockSize) class() rockClass {
	if c, ok := rockClasses[s]; ok {
		return c
	}
	return rockClasses[RockBig]
}

// String returns the size class name.
func (s RockSize) String() string { return s.class().name }

// Speed returns the signed speed for the size class.
func (s RockSize) Speed() float64 { return s.class().speed }

// Points returns the score value of the size class. Only tiny rocks are worth anything.
func (s RockSize) Points() int { return s.class().points }

// Rock is a drifting obstacle.
type Rock struct {
	Size     RockSize
	Variant  int       // Sprite variant within the size class
	Angle    int       // Travel direction in whole degrees
	Velocity core.Vec2 // Fixed at creation
	box      core.Box
}

// Box returns the rock's bounding box.
func (r *Rock) Box() core.Box { return r.box }

// RockField is the set of live rocks.
type RockField struct {
	field Playfield
	rocks []*Rock
}

// NewRockField creates an empty rock set.
func NewRockField(field Playfield) *RockField {
	return &RockField{field: field}
}

// Add inserts a rock.
func (f *RockField) Add(r *Rock) {
	f.rocks = append(f.rocks, r)
}

// Remove deletes a rock, reporting whether it was present. Collision handling
// uses this together with Spawner.Fragment to split rocks.
func (f *RockField) Remove(r *Rock) bool {
	for i, cur := range f.rocks {
		if cur == r {
			copy(f.rocks[i:], f.rocks[i+1:])
			f.rocks[len(f.rocks)-1] = nil
			f.rocks = f.rocks[:len(f.rocks)-1]
			return true
		}
	}
	return false
}

// UpdateAll moves every rock through the wrap-around motion model.
func (f *RockField) UpdateAll() {
	for _, r := range f.rocks {
		r.box = f.field.Advance(r.box, r.Velocity)
	}
}

// Len returns the rock population.
func (f *RockField) Len() int {
	return len(f.rocks)
}

// Rocks returns the live rocks. The slice is owned by the field.
func (f *RockField) Rocks() []*Rock {
	return f.rocks
}

// SpawnerParams holds the tunables of the rock spawner.
type SpawnerParams struct {
	MaxBig   int           // Population cap for spawning
	Interval time.Duration // Minimum time between spawns
	Inset    float64       // Minimum distance between a new rock and the playfield edges
}

// Spawner creates big rocks on a timer, away from the ship.
type Spawner struct {
	field  Playfield
	sizes  Sizes
	rng    *rand.Rand
	timer  *core.Timer
	params SpawnerParams
}

// NewSpawner creates a rock spawner. The spawn timer starts counting immediately.
// A big rock that cannot fit inside the playfield with the inset is a
// programming error and panics; config validation rejects such setups earlier.
func NewSpawner(field Playfield, sizes Sizes, clock core.Clock, rng *rand.Rand, p SpawnerParams) *Spawner {
	big := sizes.Rock(RockBig)
	if big.X+2*p.Inset >= field.Width || big.Y+2*p.Inset >= field.Height {
		panic(fmt.Sprintf("asteroids: big rock %vx%v with inset %v does not fit playfield %vx%v",
			big.X, big.Y, p.Inset, field.Width, field.Height))
	}
	return &Spawner{
		field:  field,
		sizes:  sizes,
		rng:    rng,
		timer:  core.NewTimer(clock, p.Interval, true),
		params: p,
	}
}

// MaybeSpawn creates a big rock when the spawn timer is due and the population is
// below the cap. The rock is placed uniformly inside the inset playfield and
// re-placed until its box no longer overlaps the ship.
func (s *Spawner) MaybeSpawn(population int, ship core.Box) (*Rock, bool) {
	if !s.timer.Due() {
		return nil, false
	}
	if population >= s.params.MaxBig {
		return nil, false
	}

	r := s.newRock(RockBig)
	s.place(r)
	for r.box.Intersects(ship) {
		s.place(r)
	}
	return r, true
}

// Fragment creates a rock of the given size centered at c, with the same
// velocity rule as spawned rocks. It is the building block for splitting a
// destroyed rock into smaller classes.
func (s *Spawner) Fragment(size RockSize, c core.Vec2) *Rock {
	r := s.newRock(size)
	r.box = core.BoxAt(c, r.box.W, r.box.H)
	return r
}

// newRock picks a variant and a random travel direction for a size class.
func (s *Spawner) newRock(size RockSize) *Rock {
	class := size.class()
	dims := s.sizes.Rock(size)

	variant := class.variantLow
	if n := class.variantHigh - class.variantLow + 1; n > 1 {
		variant += s.rng.Intn(n)
	}

	angle := s.rng.Intn(360)
	return &Rock{
		Size:     size,
		Variant:  variant,
		Angle:    angle,
		Velocity: core.Heading(float64(angle)).Scale(class.speed),
		box:      core.Box{W: dims.X, H: dims.Y},
	}
}

// place moves the rock to a uniformly random position that keeps its whole box
// at least Inset away from every playfield edge.
func (s *Spawner) place(r *Rock) {
	inset := s.params.Inset
	r.box.X = inset + s.rng.Float64()*(s.field.Width-r.box.W-2*inset)
	r.box.Y = inset + s.rng.Float64()*(s.field.Height-r.box.H-2*inset)
}
