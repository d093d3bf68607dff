package viewport

import "math"

// Screen is the pixel size of the viewport.
type Screen struct {
	Width  int
	Height int
}

// Transform converts between world cells and viewport pixels for a given
// tile size, focus and screen. It is a plain value; every method is pure.
//
// Screen y grows downward while world y grows north, so the y axis is
// mirrored and anchored at the bottom edge of the screen.
//
// ScreenX/ScreenY and PlaceX/PlaceY are not exact inverses. The forward
// direction snaps to the grid anchor with half-up rounding while the inverse
// uses ceil. The pair is kept as is so that pointer picking matches the
// legacy rendering pixel for pixel: ScreenX(PlaceX(px)) lands in
// [px-TileSize-1, px], the extra pixel coming from float truncation.
type Transform struct {
	TileSize int
	Focus    Focus
	Screen   Screen
}

// round rounds half up, like Java's Math.round. math.Round rounds half away
// from zero, which moves the grid anchor by one tile for negative halves.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// remint returns the signed fractional remainder v - round(v), in [-0.5, 0.5).
func remint(v float64) float64 {
	return v - round(v)
}

func (t Transform) ts() float64 { return float64(t.TileSize) }

// centerX is half the screen width measured in tiles.
func (t Transform) centerX() float64 {
	return float64(t.Screen.Width) / t.ts() / 2
}

// centerY is half the screen height measured in tiles.
func (t Transform) centerY() float64 {
	return float64(t.Screen.Height) / t.ts() / 2
}

// ScreenX returns the left pixel edge of world column wx.
func (t Transform) ScreenX(wx int) int {
	c := t.centerX()
	offset := round(t.Focus.X) - round(c)
	return int((float64(wx) - offset + remint(c) - remint(t.Focus.X)) * t.ts())
}

// ScreenY returns the top pixel edge of world row wy.
func (t Transform) ScreenY(wy int) int {
	c := t.centerY()
	offset := round(t.Focus.Y) - round(c)
	return int((-float64(wy)+offset-remint(c)+remint(t.Focus.Y))*t.ts() + float64(t.Screen.Height))
}

// PlaceX returns the world column under screen pixel px.
func (t Transform) PlaceX(px int) int {
	return int(math.Ceil((float64(px)-float64(t.Screen.Width)/2)/t.ts()+t.Focus.X)) - 1
}

// PlaceY returns the world row under screen pixel py.
func (t Transform) PlaceY(py int) int {
	return int(-math.Ceil((float64(py)-float64(t.Screen.Height)/2)/t.ts()-t.Focus.Y)) + 1
}

// Origin anchors the tile grid of one frame. Tile (i, j) of the frame covers
// world cell (OffsetX+i, Rows-j+OffsetY) and has its top-left pixel at
// ((i+ShiftX)*TileSize, (j+ShiftY)*TileSize).
type Origin struct {
	OffsetX int
	OffsetY int
	Rows    int
	ShiftX  float64
	ShiftY  float64
}

// GridOrigin computes the frame anchor used by the renderer. The x offset is
// anchored with round and the y offset with floor; both agree with
// ScreenX/ScreenY for every cell.
func (t Transform) GridOrigin() Origin {
	cx, cy := t.centerX(), t.centerY()
	return Origin{
		OffsetX: int(round(t.Focus.X) - round(cx)),
		OffsetY: int(round(t.Focus.Y) - math.Floor(cy)),
		Rows:    int(float64(t.Screen.Height) / t.ts()),
		ShiftX:  remint(cx) - remint(t.Focus.X),
		ShiftY:  remint(cy) + remint(t.Focus.Y),
	}
}

// Columns returns the number of tiles spanning the screen width, fractional.
func (t Transform) Columns() float64 { return float64(t.Screen.Width) / t.ts() }

// RowsF returns the number of tiles spanning the screen height, fractional.
func (t Transform) RowsF() float64 { return float64(t.Screen.Height) / t.ts() }

// Bounds is an inclusive rectangle of world cells.
type Bounds struct {
	MinX, MinY int
	MaxX, MaxY int
}

// Contains reports whether cell (x, y) lies within b.
func (b Bounds) Contains(x, y int) bool {
	return x >= b.MinX && x <= b.MaxX && y >= b.MinY && y <= b.MaxY
}

// VisibleBounds returns the world cells touched by the viewport.
func (t Transform) VisibleBounds() Bounds {
	return Bounds{
		MinX: t.PlaceX(0),
		MaxX: t.PlaceX(t.Screen.Width - 1),
		MinY: t.PlaceY(t.Screen.Height - 1),
		MaxY: t.PlaceY(0),
	}
}
