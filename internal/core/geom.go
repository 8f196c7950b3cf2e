// Package core holds the types shared by games and the platform: geometry,
// the character screen, input frames, events and game state. It imports
// nothing outside the standard library so game logic stays testable without
// a terminal.
package core

// Rect is an axis-aligned rectangle in integer coordinates. The right and
// bottom edges are exclusive.
type Rect struct {
	X, Y int
	W, H int
}

// NewRect creates a rectangle with top-left corner (x, y) and size w x h.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right is the first x past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom is the first y past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Intersects reports whether r and o share at least one point. Rectangles
// that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.Right() && o.X < r.Right() &&
		r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Center returns the middle point, rounded toward the top-left.
func (r Rect) Center() (int, int) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Translate returns r moved by (dx, dy).
func (r Rect) Translate(dx, dy int) Rect {
	r.X += dx
	r.Y += dy
	return r
}

// Grow returns r extended by dx on the left and right and by dy on the top
// and bottom.
func (r Rect) Grow(dx, dy int) Rect {
	return Rect{X: r.X - dx, Y: r.Y - dy, W: r.W + 2*dx, H: r.H + 2*dy}
}
