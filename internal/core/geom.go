// Package core provides fundamental types and utilities shared by the
// simulation packages and the terminal platform. It has no Bubble Tea
// dependency so game logic stays pure and testable.
package core

import "math"

// Rect represents an integer axis-aligned box, in field pixels or screen cells.
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
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is a floating-point axis-aligned box centered on (CX, CY).
// Physics bodies are tracked by their center like arcade sprites.
type Box struct {
	CX, CY float64
	W, H   float64
}

// Left returns the x-coordinate of the left edge.
func (b Box) Left() float64 { return b.CX - b.W/2 }

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 { return b.CX + b.W/2 }

// Top returns the y-coordinate of the top edge.
func (b Box) Top() float64 { return b.CY - b.H/2 }

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 { return b.CY + b.H/2 }

// Moved returns a copy of the box shifted by (dx, dy).
func (b Box) Moved(dx, dy float64) Box {
	b.CX += dx
	b.CY += dy
	return b
}

// Overlaps reports whether two boxes share any area.
func (b Box) Overlaps(o Box) bool {
	return b.Left() < o.Right() && o.Left() < b.Right() &&
		b.Top() < o.Bottom() && o.Top() < b.Bottom()
}

// PixelBounds returns the inclusive pixel range covered by the box.
// Edges that land exactly on a pixel boundary do not claim the next pixel.
func (b Box) PixelBounds() (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(b.Left()))
	y0 = int(math.Floor(b.Top()))
	x1 = int(math.Ceil(b.Right())) - 1
	y1 = int(math.Ceil(b.Bottom())) - 1
	return x0, y0, x1, y1
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
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
