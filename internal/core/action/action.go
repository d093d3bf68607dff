// Package action names the map view operations that keys can be bound to.
package action

import "strings"

// Action is a resolved keybinding.
type Action struct {
	Type Type
	Key  string
	Help string
}

// configActions are action types that can be set via the YAML config action field.
var configActions = map[Type]bool{
	TypeToggleSelection: true,
	TypeSelectNorth:     true,
	TypeSelectSouth:     true,
	TypeSelectEast:      true,
	TypeSelectWest:      true,
	TypeZoomIn:          true,
	TypeZoomOut:         true,
	TypeBack:            true,
	TypeHome:            true,
}

// IsConfigAction reports whether t is a valid action for use in YAML config.
func IsConfigAction(t Type) bool {
	return configActions[t]
}

// Step returns the selection cursor delta of a select_* action. World y
// grows north.
func (t Type) Step() (dx, dy int, ok bool) {
	switch t {
	case TypeSelectNorth:
		return 0, 1, true
	case TypeSelectSouth:
		return 0, -1, true
	case TypeSelectEast:
		return 1, 0, true
	case TypeSelectWest:
		return -1, 0, true
	default:
		return 0, 0, false
	}
}

// Keymap resolves pressed keys to actions.
type Keymap map[string]Action

// Resolve returns the action bound to key. Keys are matched lowercased so
// that "W" and "w" behave the same, as single-letter bindings did in the
// legacy editor.
func (k Keymap) Resolve(key string) (Action, bool) {
	if a, ok := k[key]; ok {
		return a, true
	}
	a, ok := k[strings.ToLower(key)]
	return a, ok
}
