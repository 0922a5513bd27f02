// Package core provides fundamental types and utilities for the platformer.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned block of screen cells.
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

// Inset shrinks the rectangle by n cells on every side.
func (r Rect) Inset(n int) Rect {
	return Rect{X: r.X + n, Y: r.Y + n, W: Max(0, r.W-2*n), H: Max(0, r.H-2*n)}
}

// Projection maps a continuous world rectangle onto a block of screen cells.
// World origin (0, 0) lands on the top-left cell of Cells.
type Projection struct {
	WorldW, WorldH float64
	Cells          Rect
}

// NewProjection creates a projection of a worldW x worldH area into cells.
func NewProjection(worldW, worldH float64, cells Rect) Projection {
	return Projection{WorldW: worldW, WorldH: worldH, Cells: cells}
}

// Point maps a world position to a cell, clamped inside Cells.
func (p Projection) Point(x, y float64) (int, int) {
	if p.Cells.W <= 0 || p.Cells.H <= 0 || p.WorldW <= 0 || p.WorldH <= 0 {
		return p.Cells.X, p.Cells.Y
	}
	cx := int(math.Floor(x / p.WorldW * float64(p.Cells.W)))
	cy := int(math.Floor(y / p.WorldH * float64(p.Cells.H)))
	return p.Cells.X + Clamp(cx, 0, p.Cells.W-1), p.Cells.Y + Clamp(cy, 0, p.Cells.H-1)
}

// Box maps a world rectangle to the cells it covers. The result is at
// least one cell wide and high so small actors stay visible.
func (p Projection) Box(x, y, w, h float64) Rect {
	x0, y0 := p.Point(x, y)
	x1, y1 := p.Point(x+w, y+h)
	return Rect{X: x0, Y: y0, W: Max(1, x1-x0), H: Max(1, y1-y0)}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
