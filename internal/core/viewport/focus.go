// Package viewport maps the sparse integer world grid onto a pixel viewport.
//
// It holds the focus (the world point centered on screen), the bounded
// navigation history of focuses, and the pure coordinate transform between
// world cells and screen pixels.
package viewport

import "fmt"

// Focus is the world point centered in the viewport. X and Y are fractional
// so that panning scrolls smoothly instead of jumping a whole tile.
type Focus struct {
	Layer int
	X     float64
	Y     float64
}

// NewFocus returns a focus on layer at (x, y).
func NewFocus(layer int, x, y float64) Focus {
	return Focus{Layer: layer, X: x, Y: y}
}

// Moved returns a copy of f shifted by (dx, dy).
func (f Focus) Moved(dx, dy float64) Focus {
	f.X += dx
	f.Y += dy
	return f
}

// Equal reports exact field equality. No epsilon is applied: two focuses that
// differ by any amount are distinct history entries.
func (f Focus) Equal(o Focus) bool {
	return f.Layer == o.Layer && f.X == o.X && f.Y == o.Y
}

// Cell returns the grid cell nearest to the focus.
func (f Focus) Cell() (x, y int) {
	return int(round(f.X)), int(round(f.Y))
}

func (f Focus) String() string {
	return fmt.Sprintf("%d %g %g", f.Layer, f.X, f.Y)
}
