// Package registry maps game IDs to constructors.
// Games register from init(); the CLI creates them with the configuration it
// loaded, so no game keeps package-level settings.
package registry

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Game is the contract between a simulation and the platforms that drive it.
// Games never touch the terminal: the platform maps input, paces ticks and
// displays the screen.
type Game interface {
	ID() string
	Title() string

	// Reset starts a new session for the given screen size, tick rate and seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances one fixed tick. Every event in the frame is applied before
	// any physics runs.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current state into dst without changing it.
	Render(dst *core.Screen)

	State() core.GameState
}

// Factory builds a game from a validated configuration.
type Factory func(cfg config.AsteroidsConfig) Game

// Entry describes a registered game.
type Entry struct {
	ID      string
	Title   string
	Summary string
	New     Factory
}

// ErrUnknownGame is returned by Create for an ID nobody registered.
var ErrUnknownGame = errors.New("unknown game")

// Registry holds game entries. The zero value is not usable; call New.
type Registry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]Entry)}
}

// Add registers an entry. IDs must be unique and non-empty.
func (r *Registry) Add(e Entry) error {
	if strings.TrimSpace(e.ID) == "" {
		return errors.New("registry: empty game id")
	}
	if e.New == nil {
		return fmt.Errorf("registry: game %q has no factory", e.ID)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.entries[e.ID]; exists {
		return fmt.Errorf("registry: game %q already registered", e.ID)
	}
	r.entries[e.ID] = e
	return nil
}

// Lookup returns the entry for id.
func (r *Registry) Lookup(id string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.entries[id]
	return e, ok
}

// Create validates cfg and builds the game registered under id.
func (r *Registry) Create(id string, cfg config.AsteroidsConfig) (Game, error) {
	e, ok := r.Lookup(id)
	if !ok {
		return nil, fmt.Errorf("registry: %w %q", ErrUnknownGame, id)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("registry: create %q: %w", id, err)
	}
	return e.New(cfg), nil
}

// List returns every entry sorted by ID.
func (r *Registry) List() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e)
	}
	slices.SortFunc(out, func(a, b Entry) int { return strings.Compare(a.ID, b.ID) })
	return out
}

// Default is the registry games add themselves to.
var Default = New()

// Register adds an entry to Default and panics on failure, which only happens
// for a broken init().
func Register(e Entry) {
	if err := Default.Add(e); err != nil {
		panic(err)
	}
}

// Create builds a game from Default.
func Create(id string, cfg config.AsteroidsConfig) (Game, error) {
	return Default.Create(id, cfg)
}

// List returns the entries of Default.
func List() []Entry {
	return Default.List()
}
