package action

import (
	"fmt"
	"strings"
)

// Type identifies the map view operation a keybinding triggers.
type Type string

const (
	TypeNone            Type = ""
	TypeToggleSelection Type = "toggle_selection"
	TypeSelectNorth     Type = "select_north"
	TypeSelectSouth     Type = "select_south"
	TypeSelectEast      Type = "select_east"
	TypeSelectWest      Type = "select_west"
	TypeZoomIn          Type = "zoom_in"
	TypeZoomOut         Type = "zoom_out"
	TypeBack            Type = "back"
	TypeHome            Type = "home"
)

func (t Type) String() string { return string(t) }

// ParseType parses a config action name.
func ParseType(s string) (Type, error) {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if !IsConfigAction(t) {
		return TypeNone, fmt.Errorf("unknown action %q", s)
	}
	return t, nil
}
