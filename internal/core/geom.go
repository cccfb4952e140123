// Package core provides fundamental types and utilities for the jumper platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect represents an axis-aligned bounding box in integer world units.
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

// Intersects returns true if this rectangle overlaps with another.
// Touching edges do not count as overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.OverlapsX(other) && r.Y < other.Bottom() && other.Y < r.Bottom()
}

// OverlapsX reports whether the horizontal spans of r and other overlap
// (strictly, so rectangles that only share an edge do not).
func (r Rect) OverlapsX(other Rect) bool {
	return r.Right() > other.X && r.X < other.Right()
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Viewport maps a world of WorldW x WorldH units onto a grid of
// ScreenW x ScreenH cells.
type Viewport struct {
	WorldW, WorldH   int
	ScreenW, ScreenH int
}

// Project converts a world rectangle into screen cells. Any rectangle with a
// positive size covers at least one cell so thin platforms stay visible.
func (v Viewport) Project(r Rect) Rect {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return Rect{}
	}
	x0 := floorDiv(r.X*v.ScreenW, v.WorldW)
	y0 := floorDiv(r.Y*v.ScreenH, v.WorldH)
	x1 := floorDiv(r.Right()*v.ScreenW, v.WorldW)
	y1 := floorDiv(r.Bottom()*v.ScreenH, v.WorldH)
	if r.W > 0 && x1 <= x0 {
		x1 = x0 + 1
	}
	if r.H > 0 && y1 <= y0 {
		y1 = y0 + 1
	}
	return NewRect(x0, y0, x1-x0, y1-y0)
}

// floorDiv divides rounding toward negative infinity, so objects partially
// above the top edge map to negative rows rather than row 0.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
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

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
