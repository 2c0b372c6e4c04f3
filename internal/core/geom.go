// Package core provides fundamental types shared by the simulation and the
// frontends. It has no external dependencies so that simulation code stays
// pure and testable.
package core

// Box is an axis-aligned bounding box in world units, described by its
// center and half extents. World space has y pointing up.
type Box struct {
	CX, CY float32 // Center
	HW, HH float32 // Half width and half height
}

// NewBox creates a box centered on (cx, cy) with the given full width and height.
func NewBox(cx, cy, w, h float32) Box {
	return Box{CX: cx, CY: cy, HW: w / 2, HH: h / 2}
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float32 {
	return b.CX - b.HW
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float32 {
	return b.CX + b.HW
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float32 {
	return b.CY - b.HH
}

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float32 {
	return b.CY + b.HH
}

// OverlapsX reports whether the horizontal extents of two boxes overlap.
// Touching edges count as overlap.
func (b Box) OverlapsX(other Box) bool {
	return !(other.Right() < b.Left() || other.Left() > b.Right())
}

// Rect is an integer rectangle in screen cells, used for drawing.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate one past the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate one past the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
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

// ClampF32 restricts a float32 value to be within [min, max].
func ClampF32(val, min, max float32) float32 {
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
