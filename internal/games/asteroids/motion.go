package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Playfield is the wrap-around area entities live in.
// Exiting one edge re-enters from the opposite edge; nothing is ever clamped.
type Playfield struct {
	Width  float64
	Height float64
}

// Bounds returns the playfield as a box anchored at the origin.
func (p Playfield) Bounds() core.Box {
	return core.Box{W: p.Width, H: p.Height}
}

// Center returns the middle of the playfield.
func (p Playfield) Center() core.Vec2 {
	return core.Vec2{X: p.Width / 2, Y: p.Height / 2}
}

// Advance moves a bounding box by one velocity step and wraps each axis on its
// edges: once the trailing edge leaves one side, the box re-enters with its
// leading edge on the opposite side.
//
// After Advance the box always satisfies -W <= X <= Width and -H <= Y <= Height.
func (p Playfield) Advance(b core.Box, v core.Vec2) core.Box {
	b = b.Translate(v)

	if b.Right() < 0 {
		b.X = p.Width
	}
	if b.Left() > p.Width {
		b.X = -b.W
	}
	if b.Bottom() < 0 {
		b.Y = p.Height
	}
	if b.Top() > p.Height {
		b.Y = -b.H
	}
	return b
}
