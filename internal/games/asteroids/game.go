// Package asteroids implements an Asteroids-style arcade game.
// The player rotates and thrusts a ship around a wrap-around playfield and fires
// at rocks that spawn on a timer, away from the ship.
package asteroids

import (
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "asteroids"

// clockEpoch is where every game's simulation clock starts. Only differences
// between readings matter.
var clockEpoch = time.Unix(0, 0).UTC()

// Game implements the asteroids frame loop on top of the ship, bullet and rock
// components. It owns every entity for the lifetime of a session.
type Game struct {
	cfg     config.AsteroidsConfig
	runtime core.RuntimeConfig
	clock   *core.ManualClock
	field   Playfield
	sizes   Sizes
	ship    *Ship
	bullets *BulletManager
	rocks   *RockField
	spawner *Spawner
	running bool
	frame   uint64
}

// New creates a game with the given configuration. Call Reset before stepping.
func New(cfg config.AsteroidsConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return ID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Asteroids"
}

// Reset initializes or restarts the game.
// The simulation clock is derived from the frame count on every Step, so identical seeds
// and inputs always produce identical runs.
func (g *Game) Reset(rt core.RuntimeConfig) {
	g.runtime = rt
	g.clock = core.NewManualClock(clockEpoch)
	g.field = Playfield{Width: g.cfg.Playfield.Width, Height: g.cfg.PlayfieldHeight()}
	g.sizes = NewConfigSizes(g.cfg)
	rng := rand.New(rand.NewSource(rt.Seed))

	g.ship = NewShip(g.field, g.clock, ShipParams{
		AngleStep:     g.cfg.Ship.AngleStep,
		MaxSpeed:      g.cfg.Ship.MaxSpeed,
		AccelInterval: g.cfg.AccelInterval(),
		Size:          g.sizes.Ship(),
	})
	g.bullets = NewBulletManager(g.field, g.clock, BulletParams{
		Capacity: g.cfg.Bullets.Capacity,
		TTL:      g.cfg.BulletTTL(),
		MinSpeed: g.cfg.Bullets.MinSpeed,
		Size:     g.sizes.Bullet(),
	})
	g.rocks = NewRockField(g.field)
	g.spawner = NewSpawner(g.field, g.sizes, g.clock, rng, SpawnerParams{
		MaxBig:   g.cfg.Rocks.MaxBig,
		Interval: g.cfg.SpawnInterval(),
		Inset:    g.cfg.Rocks.SpawnInset,
	})

	g.running = true
	g.frame = 0
}

// Step advances the game by one frame:
// drain input, run the spawner, then move the ship, rocks and bullets.
// Once a quit is requested the game stops simulating and further steps are no-ops.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if !g.running {
		return core.StepResult{State: g.State()}
	}

	g.frame++
	g.clock.Set(clockEpoch.Add(g.runtime.FrameTime(g.frame)))

	for _, ev := range in.Events {
		g.handleEvent(ev)
	}

	if r, ok := g.spawner.MaybeSpawn(g.rocks.Len(), g.ship.Box()); ok {
		g.rocks.Add(r)
	}

	if g.running {
		g.ship.Tick(true)
		g.rocks.UpdateAll()
		g.bullets.UpdateAll()
	}

	return core.StepResult{State: g.State()}
}

// handleEvent applies a single input event.
func (g *Game) handleEvent(ev core.Event) {
	if ev.Kind == core.EventQuit || (ev.Kind == core.EventKeyDown && ev.Key == core.KeyEscape) {
		g.running = false
		return
	}

	cmd, ok := commandFor(ev)
	if !ok {
		return
	}
	if intent, fire := g.ship.Apply(cmd); fire {
		g.bullets.Fire(intent)
	}
}

// commandFor maps an input event to a ship command.
// Thrust follows the up key: on while held, off when released.
func commandFor(ev core.Event) (ShipCommand, bool) {
	switch ev.Kind {
	case core.EventKeyDown:
		switch ev.Key {
		case core.KeyUp:
			return ShipThrustOn, true
		case core.KeyLeft:
			return ShipRotateLeft, true
		case core.KeyRight:
			return ShipRotateRight, true
		case core.KeyFire:
			return ShipFire, true
		}
	case core.EventKeyUp:
		if ev.Key == core.KeyUp {
			return ShipThrustOff, true
		}
	}
	return 0, false
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Running: g.running,
		Frame:   g.frame,
	}
}

func init() {
	registry.Register(registry.Entry{
		ID:      ID,
		Title:   "Asteroids",
		Summary: "Fly a wrap-around ship and shoot timed rock waves",
		New: func(cfg config.AsteroidsConfig) registry.Game {
			return New(cfg)
		},
	})
}
