// Package world defines the read-only view of a MUD world that the map
// viewport consumes: places on a layered integer grid, their areas, risk
// levels and exits.
package world

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNotFound is returned when no place occupies a grid cell. It is an
	// expected outcome for most cells of a sparse map.
	ErrNotFound = errors.New("place not found")
	// ErrDuplicatePlace is returned when two places claim the same cell.
	ErrDuplicatePlace = errors.New("cell already occupied")
)

// Store resolves grid cells to places.
type Store interface {
	// Place returns the place at (x, y) on layer.
	// Returns ErrNotFound if the cell is empty.
	Place(layer, x, y int) (*Place, error)

	// Home returns the configured home position of the world.
	Home() Home

	// PathColor returns the color used for exits and paths.
	PathColor() Color
}

// Home is the fallback position shown when no navigation history exists.
type Home struct {
	Layer int     `yaml:"layer" json:"layer"`
	X     float64 `yaml:"x" json:"x"`
	Y     float64 `yaml:"y" json:"y"`
}

// Area groups places and tints their tiles.
type Area struct {
	ID    int
	Name  string
	Color Color
}

// RiskLevel classifies how dangerous a place is.
type RiskLevel struct {
	ID          int
	Description string
	Color       Color
}

// Exit is an outgoing connection of a place.
type Exit struct {
	Direction Direction
	// Target is the name of the connected place, informational only.
	Target string
}

// Place is one occupied grid cell.
type Place struct {
	Name  string
	Layer int
	X     int
	Y     int
	Area  *Area      // nil if the place has no area
	Risk  *RiskLevel // nil if the place has no risk level
	Exits []Exit
	// RecLevelMin and RecLevelMax are the recommended character levels.
	RecLevelMin int
	RecLevelMax int
}

// Color is an opaque RGB color.
type Color struct {
	R, G, B uint8
}

// RGB returns the color with the given components.
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b} }

// Hex returns the color as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func (c Color) String() string { return c.Hex() }

// ParseColor parses #rrggbb or rrggbb.
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return Color{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// MarshalText implements encoding.TextMarshaler.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Color) UnmarshalText(b []byte) error {
	parsed, err := ParseColor(string(b))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
