// Package viewstate reads and writes the per-world view-state sidecar file:
// the zoom level, the place-selection flag, the last shown position and the
// navigation history.
//
// The format is line oriented:
//
//	# comment
//	ver 1.1
//	tile_size 120
//	enable_place_selection false
//	lp <layer> <neg_x> <y>
//	pcv <layer> <neg_x> <y>
//
// The world x coordinate is stored negated, for compatibility with files of
// the first MUD Map generation. Lines starting with "#" or "//" and blank
// lines are ignored, as are unknown directives.
package viewstate

import (
	"fmt"

	"github.com/colonyops/mudmap/internal/core/viewport"
)

const (
	VersionMajor = 1
	VersionMinor = 1

	// Header is the comment written on the first line of every file.
	Header = "# MUD Map (v2) world meta data file"

	// Suffix is appended to the world file name to form the sidecar path.
	Suffix = "_meta"
)

// Directive names.
const (
	dirVersion   = "ver"
	dirTileSize  = "tile_size"
	dirSelection = "enable_place_selection"
	dirLast      = "lp"
	dirPrevious  = "pcv"
)

// State is the persisted view state of one world.
type State struct {
	// Version is the file format version, zero if the file had none.
	Version Version
	// TileSize is zero when the file does not set it.
	TileSize int
	// SelectionEnabled reports whether the place selection was shown.
	// HasSelection is false when the file does not set it.
	SelectionEnabled bool
	HasSelection     bool
	// Current is the last shown position, nil if absent or malformed.
	Current *viewport.Focus
	// Previous holds history entries below the current one in file order,
	// oldest first. Replaying them in order with History.Push, followed by
	// Current, rebuilds the saved stack.
	Previous []viewport.Focus
	// Warnings lists lines that were skipped while reading.
	Warnings []Warning
}

// Version is a major.minor file format version.
type Version struct {
	Major int
	Minor int
}

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// IsZero reports whether no version was read.
func (v Version) IsZero() bool { return v == Version{} }

// Warning describes a line that could not be applied.
type Warning struct {
	Line      int
	Directive string
	Err       error
}

func (w Warning) Error() string {
	return fmt.Sprintf("line %d (%s): %v", w.Line, w.Directive, w.Err)
}

func (w Warning) Unwrap() error { return w.Err }

// FromHistory captures a history for saving. The front entry becomes Current
// and the remaining entries are stored oldest first.
func FromHistory(h *viewport.History, tileSize int, selectionEnabled bool) State {
	st := State{
		Version:          Version{Major: VersionMajor, Minor: VersionMinor},
		TileSize:         tileSize,
		SelectionEnabled: selectionEnabled,
		HasSelection:     true,
	}

	if cur, ok := h.Current(); ok {
		st.Current = &cur
	}
	for i := h.Len() - 1; i >= 1; i-- {
		st.Previous = append(st.Previous, h.At(i))
	}
	return st
}

// Replay pushes the stored positions onto h: every previous entry in file
// order, then the current one. Duplicates of the entry on top are skipped by
// History.Push. It reports whether a current position was present; when it
// was not, the caller falls back to the world's home position.
func (s State) Replay(h *viewport.History) bool {
	for _, f := range s.Previous {
		h.Push(f)
	}
	if s.Current == nil {
		return false
	}
	h.Push(*s.Current)
	return true
}
