// Package zoom holds the clamped tile size of the map view.
package zoom

import "math"

const (
	MinTileSize     = 10
	MaxTileSize     = 200
	DefaultTileSize = 120

	// ControlMax is the upper end of a bound display control (a slider
	// ranging 0..ControlMax).
	ControlMax = 100
)

// Control is a displayed zoom widget kept in sync with the tile size.
type Control interface {
	SetValue(v int)
}

// Controller owns the tile size in pixels. The size is always within
// [MinTileSize, MaxTileSize].
type Controller struct {
	size    int
	control Control
}

// New returns a controller at the clamped size.
func New(size int) *Controller {
	return &Controller{size: Clamp(size)}
}

// Clamp limits v to [MinTileSize, MaxTileSize].
func Clamp(v int) int {
	return min(max(v, MinTileSize), MaxTileSize)
}

// ControlValue maps a tile size onto the 0..ControlMax control range.
func ControlValue(size int) int {
	return int(math.Round(float64(ControlMax) * float64(size) / MaxTileSize))
}

// TileSize returns the current tile size.
func (c *Controller) TileSize() int { return c.size }

// Bind attaches a display control and syncs it immediately.
func (c *Controller) Bind(ctrl Control) {
	c.control = ctrl
	c.sync()
}

// Set clamps v and applies it. It reports whether the size changed.
func (c *Controller) Set(v int) bool {
	v = Clamp(v)
	if v == c.size {
		c.sync()
		return false
	}
	c.size = v
	c.sync()
	return true
}

// SetFromControl applies a value dragged on the bound control.
func (c *Controller) SetFromControl(value int) bool {
	return c.Set(int(float64(MaxTileSize) * float64(value) / ControlMax))
}

// Increment grows the tile size by one pixel; it is a no-op at MaxTileSize.
func (c *Controller) Increment() bool {
	if c.size >= MaxTileSize {
		return false
	}
	return c.Set(c.size + 1)
}

// Decrement shrinks the tile size by one pixel; it is a no-op at MinTileSize.
func (c *Controller) Decrement() bool {
	if c.size <= MinTileSize {
		return false
	}
	return c.Set(c.size - 1)
}

func (c *Controller) sync() {
	if c.control != nil {
		c.control.SetValue(ControlValue(c.size))
	}
}
