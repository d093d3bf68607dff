// Package selection implements the keyboard place-selection cursor.
package selection

import "github.com/colonyops/mudmap/internal/core/viewport"

// Viewport is the part of the map view the cursor needs to keep itself on
// screen.
type Viewport interface {
	Transform() viewport.Transform
	// Move pans the current focus by a fractional number of tiles.
	Move(dx, dy float64)
}

// Cursor is an integer grid cell addressed from the keyboard. It is
// independent of the focus and may point at an empty cell.
type Cursor struct {
	X       int
	Y       int
	Enabled bool
}

// NewCursor places a disabled cursor on the cell nearest to f.
func NewCursor(f viewport.Focus) *Cursor {
	x, y := f.Cell()
	return &Cursor{X: x, Y: y}
}

// Set moves the cursor to (x, y) and pans vp so the cell stays visible.
func (c *Cursor) Set(x, y int, vp Viewport) {
	c.X, c.Y = x, y
	ScrollIntoView(vp, x, y)
}

// Move shifts the cursor by (dx, dy) cells and pans vp so it stays visible.
func (c *Cursor) Move(dx, dy int, vp Viewport) {
	c.Set(c.X+dx, c.Y+dy, vp)
}

// Toggle flips visibility without moving the cursor.
func (c *Cursor) Toggle() { c.Enabled = !c.Enabled }

// SetEnabled sets visibility without moving the cursor.
func (c *Cursor) SetEnabled(b bool) { c.Enabled = b }

// At reports whether the cursor is visible and on cell (x, y).
func (c *Cursor) At(x, y int) bool {
	return c.Enabled && c.X == x && c.Y == y
}

// ScrollIntoView pans vp by the minimal delta that brings cell (x, y) back
// inside the visible band. It reports whether a pan happened.
func ScrollIntoView(vp Viewport, x, y int) bool {
	dx, dy := ScrollDelta(vp.Transform(), x, y)
	if dx == 0 && dy == 0 {
		return false
	}
	vp.Move(dx, dy)
	return true
}

// ScrollDelta returns the focus shift, in tiles, that moves cell (x, y) onto
// the nearest edge of the band [0, size-tile] on each axis. A cell already
// inside the band yields zero on that axis.
func ScrollDelta(t viewport.Transform, x, y int) (dx, dy float64) {
	sx, sy := t.ScreenX(x), t.ScreenY(y)
	ts := float64(t.TileSize)
	w, h := t.Screen.Width, t.Screen.Height

	if sx < 0 {
		dx = float64(sx) / ts
	} else if sx > w-t.TileSize {
		dx = float64(sx-w)/ts + 1
	}

	// screen y is mirrored, so the focus moves the opposite way
	if sy < 0 {
		dy = float64(-sy) / ts
	} else if sy > h-t.TileSize {
		dy = float64(-(sy-h))/ts - 1
	}

	return dx, dy
}
