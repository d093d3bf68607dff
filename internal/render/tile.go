// Package render decides what to draw for one frame of the map viewport.
//
// The renderer walks the visible tile range, resolves every cell against a
// world.Store and issues drawing calls to a Canvas. It never rasterizes;
// hosts provide a Canvas for their surface (a terminal, an image, or the
// recording DrawList used for export and tests).
package render

import (
	"math"

	"github.com/colonyops/mudmap/internal/core/world"
)

const (
	// BaseBorder is the area and risk border width at full size.
	BaseBorder = 10
	// RiskStroke is the stroke width of the risk level frame.
	RiskStroke = 3
	// SelectionStroke is the stroke width of the selection brackets and the
	// inset of the brackets from the tile edge.
	SelectionStroke = 3
	// TextMinTileSize is the smallest tile size that shows labels.
	TextMinTileSize = 60
	// ExitDotRadius is the radius of an exit marker.
	ExitDotRadius = 3
)

var (
	TileCenterColor = world.RGB(207, 190, 134)
	SelectionColor  = world.RGB(255, 0, 0)
	TextColor       = world.RGB(0, 0, 0)
)

// TileSpec holds the per-frame drawing parameters derived from the tile size.
type TileSpec struct {
	TileSize   int
	AreaBorder int
	RiskBorder int
	DrawText   bool
}

// Spec derives the tile parameters for tile size ts. Borders scale linearly
// between half and full BaseBorder as ts grows from 60 to 100.
func Spec(ts int) TileSpec {
	scale := min(max(float64(ts-20)/80, 0.5), 1.0)
	border := int(math.Floor(BaseBorder*scale + 0.5))
	return TileSpec{
		TileSize:   ts,
		AreaBorder: border,
		RiskBorder: border,
		DrawText:   ts >= TextMinTileSize,
	}
}

// LabelWidth is the pixel width available to a label line.
func (s TileSpec) LabelWidth() int {
	return s.TileSize - 2*(s.AreaBorder+SelectionStroke)
}

// LabelLines is the line budget passed to Wrap for a font with the given
// line height. Wrap may emit one more line than the budget, the last one
// being the abbreviated remainder.
func (s TileSpec) LabelLines(lineHeight int) int {
	if lineHeight <= 0 {
		return 0
	}
	return int(math.Floor(float64(s.TileSize-2*(s.RiskBorder+s.AreaBorder))/float64(lineHeight))) - 1
}

// exitOffsets gives the marker position of each compass exit relative to
// the top-left corner of the tile, as fractions of the tile plus border
// adjustments. Non-compass directions have no marker.
var exitOffsets = map[world.Direction]func(ts, b int) (int, int){
	world.DirNorth:     func(ts, b int) (int, int) { return ts / 2, b },
	world.DirNorthEast: func(ts, b int) (int, int) { return ts - b, b },
	world.DirEast:      func(ts, b int) (int, int) { return ts - b, ts / 2 },
	world.DirSouthEast: func(ts, b int) (int, int) { return ts - b, ts - b },
	world.DirSouth:     func(ts, b int) (int, int) { return ts / 2, ts - b },
	world.DirSouthWest: func(ts, b int) (int, int) { return b, ts - b },
	world.DirWest:      func(ts, b int) (int, int) { return b, ts / 2 },
	world.DirNorthWest: func(ts, b int) (int, int) { return b, b },
}

// ExitOffset returns the marker offset of an exit in direction d inside a
// tile. ok is false for directions without a marker.
func (s TileSpec) ExitOffset(d world.Direction) (dx, dy int, ok bool) {
	fn, ok := exitOffsets[d]
	if !ok {
		return 0, 0, false
	}
	dx, dy = fn(s.TileSize, s.RiskBorder)
	return dx, dy, true
}
