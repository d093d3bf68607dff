package render

import "github.com/colonyops/mudmap/internal/core/world"

// Rect is a pixel rectangle with its top-left corner at (X, Y).
type Rect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Canvas receives the drawing decisions of a frame.
type Canvas interface {
	Clear(w, h int)
	FillRect(r Rect, c world.Color)
	StrokeRect(r Rect, width int, c world.Color)
	Line(x1, y1, x2, y2, width int, c world.Color)
	// Text draws s with its baseline starting at (x, y).
	Text(x, y int, s string, c world.Color)
	Dot(x, y, radius int, c world.Color)
}

// OpKind names a recorded drawing operation.
type OpKind string

const (
	OpClear      OpKind = "clear"
	OpFillRect   OpKind = "fill_rect"
	OpStrokeRect OpKind = "stroke_rect"
	OpLine       OpKind = "line"
	OpText       OpKind = "text"
	OpDot        OpKind = "dot"
)

// Op is one recorded drawing operation. Only the fields relevant to Kind are
// set.
type Op struct {
	Kind  OpKind      `json:"op"`
	Rect  *Rect       `json:"rect,omitempty"`
	X1    int         `json:"x1,omitempty"`
	Y1    int         `json:"y1,omitempty"`
	X2    int         `json:"x2,omitempty"`
	Y2    int         `json:"y2,omitempty"`
	Width int         `json:"width,omitempty"`
	Text  string      `json:"text,omitempty"`
	Color world.Color `json:"color"`
}

// DrawList is a Canvas that records every operation in order.
type DrawList struct {
	Ops []Op `json:"ops"`
}

var _ Canvas = (*DrawList)(nil)

// Clear starts a new list. Ops slices taken from earlier frames stay intact.
func (d *DrawList) Clear(w, h int) {
	d.Ops = []Op{{Kind: OpClear, Rect: &Rect{W: w, H: h}}}
}

func (d *DrawList) FillRect(r Rect, c world.Color) {
	d.Ops = append(d.Ops, Op{Kind: OpFillRect, Rect: &r, Color: c})
}

func (d *DrawList) StrokeRect(r Rect, width int, c world.Color) {
	d.Ops = append(d.Ops, Op{Kind: OpStrokeRect, Rect: &r, Width: width, Color: c})
}

func (d *DrawList) Line(x1, y1, x2, y2, width int, c world.Color) {
	d.Ops = append(d.Ops, Op{Kind: OpLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Width: width, Color: c})
}

func (d *DrawList) Text(x, y int, s string, c world.Color) {
	d.Ops = append(d.Ops, Op{Kind: OpText, X1: x, Y1: y, Text: s, Color: c})
}

func (d *DrawList) Dot(x, y, radius int, c world.Color) {
	d.Ops = append(d.Ops, Op{Kind: OpDot, X1: x, Y1: y, Width: radius, Color: c})
}

// Filter returns the recorded operations of the given kind.
func (d *DrawList) Filter(kind OpKind) []Op {
	var out []Op
	for _, op := range d.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}
