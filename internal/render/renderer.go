package render

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/colonyops/mudmap/internal/core/selection"
	"github.com/colonyops/mudmap/internal/core/viewport"
	"github.com/colonyops/mudmap/internal/core/world"
)

// Frame is everything a single render pass reads.
type Frame struct {
	Transform viewport.Transform
	Store     world.Store
	Cursor    selection.Cursor
}

// Stats summarizes a render pass.
type Stats struct {
	Tiles  int `json:"tiles"`
	Places int `json:"places"`
	Failed int `json:"failed"`
	// Err joins the errors of failed tiles.
	Err error `json:"-"`
}

// Colors are the configurable renderer colors.
type Colors struct {
	TileCenter world.Color
	Selection  world.Color
}

// DefaultColors returns the stock tile-center and selection colors.
func DefaultColors() Colors {
	return Colors{TileCenter: TileCenterColor, Selection: SelectionColor}
}

// Renderer issues the drawing calls for one frame at a time.
type Renderer struct {
	metrics Metrics
	colors  Colors
	log     zerolog.Logger
}

func New(metrics Metrics, colors Colors, log zerolog.Logger) *Renderer {
	return &Renderer{metrics: metrics, colors: colors, log: log}
}

// Render draws f onto c. Every tile intersecting the screen is visited, plus
// one margin tile on each side so partially visible places are drawn. A tile
// that fails to resolve or draw is logged and counted; the pass continues.
func (r *Renderer) Render(c Canvas, f Frame) Stats {
	t := f.Transform
	spec := Spec(t.TileSize)
	o := t.GridOrigin()

	c.Clear(t.Screen.Width+1, t.Screen.Height+1)

	var (
		stats Stats
		errs  []error
	)
	cols, rows := t.Columns(), t.RowsF()
	for tx := -1; float64(tx) < cols+1; tx++ {
		for ty := -1; float64(ty) < rows+1; ty++ {
			wx := tx + o.OffsetX
			wy := o.Rows - ty + o.OffsetY
			px, py := t.ScreenX(wx), t.ScreenY(wy)
			stats.Tiles++

			drawn, err := r.drawCell(c, f, spec, wx, wy, px, py)
			switch {
			case err != nil:
				stats.Failed++
				errs = append(errs, err)
				r.log.Warn().Err(err).
					Int("layer", t.Focus.Layer).
					Int("x", wx).
					Int("y", wy).
					Msg("tile skipped")
			case drawn:
				stats.Places++
			}

			if f.Cursor.At(wx, wy) {
				r.drawSelection(c, px, py, t.TileSize)
			}
		}
	}

	stats.Err = errors.Join(errs...)
	return stats
}

func (r *Renderer) drawCell(c Canvas, f Frame, spec TileSpec, wx, wy, px, py int) (drawn bool, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			drawn = false
			err = fmt.Errorf("draw place at %d,%d: %v", wx, wy, rec)
		}
	}()

	p, err := f.Store.Place(f.Transform.Focus.Layer, wx, wy)
	if err != nil {
		if errors.Is(err, world.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("resolve place at %d,%d: %w", wx, wy, err)
	}

	r.drawPlace(c, f.Store.PathColor(), spec, p, px, py)
	return true, nil
}

func (r *Renderer) drawPlace(c Canvas, pathColor world.Color, spec TileSpec, p *world.Place, px, py int) {
	ts := spec.TileSize
	ab := spec.AreaBorder

	if p.Area != nil {
		c.FillRect(Rect{X: px, Y: py, W: ts, H: ts}, p.Area.Color)
	}

	inner := Rect{X: px + ab, Y: py + ab, W: ts - 2*ab, H: ts - 2*ab}
	if spec.DrawText {
		c.FillRect(inner, r.colors.TileCenter)
	}
	if p.Risk != nil {
		c.StrokeRect(inner, RiskStroke, p.Risk.Color)
	}

	for _, e := range p.Exits {
		if dx, dy, ok := spec.ExitOffset(e.Direction); ok {
			c.Dot(px+dx, py+dy, ExitDotRadius, pathColor)
		}
	}

	if !spec.DrawText || p.Name == "" {
		return
	}
	lh := r.metrics.LineHeight()
	i := 0
	for line := range Wrap(p.Name, r.metrics, spec.LabelWidth(), spec.LabelLines(lh)) {
		c.Text(px+spec.RiskBorder+RiskStroke, py+spec.RiskBorder+lh*(1+i), line, TextColor)
		i++
	}
}

// drawSelection draws four corner brackets inside the tile at (px, py).
func (r *Renderer) drawSelection(c Canvas, px, py, ts int) {
	const s = SelectionStroke
	col := r.colors.Selection

	left, right := px+s, px+ts-s
	top, bottom := py+s, py+ts-s
	quarter, threeQuarter := ts/4, ts*3/4

	// top left
	c.Line(left, top, left, top+quarter, s, col)
	c.Line(left, top, left+quarter, top, s, col)
	// top right
	c.Line(right, top, right, top+quarter, s, col)
	c.Line(right, top, px-s+threeQuarter, top, s, col)
	// bottom left
	c.Line(left, bottom, left, py-s+threeQuarter, s, col)
	c.Line(left, bottom, left+quarter, bottom, s, col)
	// bottom right
	c.Line(right, bottom, right, py-s+threeQuarter, s, col)
	c.Line(right, bottom, px-s+threeQuarter, bottom, s, col)
}
