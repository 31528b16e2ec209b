// Package core provides fundamental types and utilities for the asteroids game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in playfield units. Used for velocities and position deltas.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Box is an axis-aligned bounding box in playfield units.
// X and Y are the top-left corner, matching how sprites are placed.
type Box struct {
	X, Y float64
	W, H float64
}

// BoxAt returns a box of the given size centered on c.
func BoxAt(c Vec2, w, h float64) Box {
	return Box{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.X }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.Y }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.X + b.W }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.Y + b.H }

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: b.X + b.W/2, Y: b.Y + b.H/2}
}

// Translate returns the box moved by d.
func (b Box) Translate(d Vec2) Box {
	b.X += d.X
	b.Y += d.Y
	return b
}

// Intersects returns true if this box overlaps with another.
// Touching edges do not count as overlap.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Heading returns the unit direction (sin a, cos a) for an angle in degrees.
// Components within 1e-9 of zero are snapped to exactly zero so that axis-aligned
// headings produce axis-aligned vectors.
func Heading(deg float64) Vec2 {
	rad := deg * math.Pi / 180
	return Vec2{X: snapZero(math.Sin(rad)), Y: snapZero(math.Cos(rad))}
}

func snapZero(v float64) float64 {
	if math.Abs(v) < 1e-9 {
		return 0
	}
	return v
}
