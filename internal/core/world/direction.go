package world

import (
	"fmt"
	"strings"
)

// Direction is the direction tag of an exit.
type Direction int

const (
	DirUnknown Direction = iota
	DirNorth
	DirNorthEast
	DirEast
	DirSouthEast
	DirSouth
	DirSouthWest
	DirWest
	DirNorthWest
	DirUp
	DirDown
)

var directionAbbrev = map[Direction]string{
	DirNorth:     "n",
	DirNorthEast: "ne",
	DirEast:      "e",
	DirSouthEast: "se",
	DirSouth:     "s",
	DirSouthWest: "sw",
	DirWest:      "w",
	DirNorthWest: "nw",
	DirUp:        "u",
	DirDown:      "d",
}

var directionNames = map[string]Direction{
	"north":     DirNorth,
	"northeast": DirNorthEast,
	"east":      DirEast,
	"southeast": DirSouthEast,
	"south":     DirSouth,
	"southwest": DirSouthWest,
	"west":      DirWest,
	"northwest": DirNorthWest,
	"up":        DirUp,
	"down":      DirDown,
}

// ParseDirection accepts an abbreviation ("ne") or a full name ("northeast").
func ParseDirection(s string) (Direction, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d, abbr := range directionAbbrev {
		if abbr == s {
			return d, nil
		}
	}
	if d, ok := directionNames[strings.ReplaceAll(s, "-", "")]; ok {
		return d, nil
	}
	return DirUnknown, fmt.Errorf("unknown exit direction %q", s)
}

// Abbrev returns the short tag of d, or "?" when unknown.
func (d Direction) Abbrev() string {
	if s, ok := directionAbbrev[d]; ok {
		return s
	}
	return "?"
}

func (d Direction) String() string { return d.Abbrev() }

// Compass reports whether d is one of the eight planar compass directions.
func (d Direction) Compass() bool {
	return d >= DirNorth && d <= DirNorthWest
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Direction) UnmarshalText(b []byte) error {
	parsed, err := ParseDirection(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.Abbrev()), nil
}
