// Package core provides fundamental types and utilities for the memerun engine.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Box is an axis-aligned bounding box in world units.
// X and Y address the top-left corner; the playfield grows right and down.
type Box struct {
	X, Y float64
	W, H float64
}

// NewBox creates a box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Intersects reports true rectangle overlap. Touching edges do not count.
func (b Box) Intersects(o Box) bool {
	return b.X < o.Right() && b.Right() > o.X &&
		b.Y < o.Bottom() && b.Bottom() > o.Y
}

// Overlaps is the relaxed spacing test used at spawn time.
// Centers must be closer than the half-extent sum plus margin on both axes;
// margin inflates the required separation uniformly for any pair of shapes.
func Overlaps(a, b Box, margin float64) bool {
	ax, ay := a.Center()
	bx, by := b.Center()
	return math.Abs(ax-bx) < a.W/2+b.W/2+margin &&
		math.Abs(ay-by) < a.H/2+b.H/2+margin
}

// Rect is an integer rectangle in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}

// ClampF restricts a float64 value to be within [lo, hi].
// When hi < lo the result is lo, so degenerate ranges collapse to their start.
func ClampF(val, lo, hi float64) float64 {
	if val > hi {
		val = hi
	}
	if val < lo {
		val = lo
	}
	return val
}
