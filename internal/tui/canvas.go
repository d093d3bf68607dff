package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/mudmap/internal/core/styles"
	"github.com/colonyops/mudmap/internal/core/world"
	"github.com/colonyops/mudmap/internal/render"
)

const (
	dotRune  = '•'
	wideRest = -1 // second half of a double-width rune
)

// Cell is one terminal cell of the map.
type Cell struct {
	Rune rune // 0 for blank
	FG   world.Color
	BG   world.Color
	// Filled is false for cells showing the map background.
	Filled bool
}

// CellCanvas rasterizes draw calls onto a grid of terminal cells, each
// covering CellWidth x CellHeight pixels of the virtual viewport. A cell is
// filled when its center lies inside a filled rectangle.
type CellCanvas struct {
	cw, ch     int
	cols, rows int
	cells      []Cell
}

var _ render.Canvas = (*CellCanvas)(nil)

func NewCellCanvas(cellWidth, cellHeight int) *CellCanvas {
	return &CellCanvas{cw: max(cellWidth, 1), ch: max(cellHeight, 1)}
}

// Size returns the grid size in cells.
func (c *CellCanvas) Size() (cols, rows int) { return c.cols, c.rows }

// At returns the cell at (col, row). ok is false outside the grid.
func (c *CellCanvas) At(col, row int) (cell Cell, ok bool) {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return Cell{}, false
	}
	return c.cells[row*c.cols+col], true
}

func (c *CellCanvas) cell(col, row int) *Cell {
	if col < 0 || row < 0 || col >= c.cols || row >= c.rows {
		return nil
	}
	return &c.cells[row*c.cols+col]
}

func (c *CellCanvas) Clear(width, height int) {
	c.cols, c.rows = max(width/c.cw, 0), max(height/c.ch, 0)
	c.cells = make([]Cell, c.cols*c.rows)
}

// span returns the cells in [from, to] whose centers lie in [lo, hi).
func span(lo, hi, size int) (from, to int) {
	half := float64(size) / 2
	from = int(math.Ceil((float64(lo) - half) / float64(size)))
	to = int(math.Ceil((float64(hi)-half)/float64(size))) - 1
	return from, to
}

func (c *CellCanvas) FillRect(r render.Rect, col world.Color) {
	c0, c1 := span(r.X, r.X+r.W, c.cw)
	r0, r1 := span(r.Y, r.Y+r.H, c.ch)
	for row := r0; row <= r1; row++ {
		for cx := c0; cx <= c1; cx++ {
			if cl := c.cell(cx, row); cl != nil {
				cl.BG, cl.Filled = col, true
			}
		}
	}
}

// StrokeRect colors the outermost ring of cells covered by r. Strokes are
// thinner than a cell, so the width only matters for rectangles too small to
// cover any cell center.
func (c *CellCanvas) StrokeRect(r render.Rect, _ int, col world.Color) {
	c0, c1 := span(r.X, r.X+r.W, c.cw)
	r0, r1 := span(r.Y, r.Y+r.H, c.ch)
	for row := r0; row <= r1; row++ {
		for cx := c0; cx <= c1; cx++ {
			if row != r0 && row != r1 && cx != c0 && cx != c1 {
				continue
			}
			if cl := c.cell(cx, row); cl != nil {
				cl.BG, cl.Filled = col, true
			}
		}
	}
}

// Line walks the cells between both end points.
func (c *CellCanvas) Line(x1, y1, x2, y2, _ int, col world.Color) {
	cx0, cy0 := floorDiv(x1, c.cw), floorDiv(y1, c.ch)
	cx1, cy1 := floorDiv(x2, c.cw), floorDiv(y2, c.ch)

	dx, dy := abs(cx1-cx0), -abs(cy1-cy0)
	sx, sy := sign(cx1-cx0), sign(cy1-cy0)
	e := dx + dy
	for {
		if cl := c.cell(cx0, cy0); cl != nil {
			cl.BG, cl.Filled = col, true
		}
		if cx0 == cx1 && cy0 == cy1 {
			return
		}
		if e2 := 2 * e; e2 >= dy {
			e += dy
			cx0 += sx
		} else {
			e += dx
			cy0 += sy
		}
	}
}

// Text writes s with its baseline at pixel y, so the text occupies the cell
// row above the baseline.
func (c *CellCanvas) Text(x, y int, s string, col world.Color) {
	row := floorDiv(y-1, c.ch)
	cx := floorDiv(x, c.cw)
	for _, r := range s {
		w := ansi.StringWidth(string(r))
		if w == 0 {
			continue
		}
		if cl := c.cell(cx, row); cl != nil {
			cl.Rune, cl.FG = r, col
		}
		if w == 2 {
			if cl := c.cell(cx+1, row); cl != nil {
				cl.Rune = wideRest
			}
		}
		cx += w
	}
}

func (c *CellCanvas) Dot(x, y, _ int, col world.Color) {
	if cl := c.cell(floorDiv(x, c.cw), floorDiv(y, c.ch)); cl != nil {
		cl.Rune, cl.FG = dotRune, col
	}
}

// String renders the grid, styling runs of equal cells together.
func (c *CellCanvas) String() string {
	var b strings.Builder
	for row := 0; row < c.rows; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		line := c.cells[row*c.cols : (row+1)*c.cols]
		for start := 0; start < len(line); {
			end := runEnd(line, start)
			b.WriteString(renderRun(line[start:end]))
			start = end
		}
	}
	return b.String()
}

// runEnd returns the end of the run starting at start: cells sharing the
// background whose glyphs, if any, share one foreground.
func runEnd(line []Cell, start int) int {
	first := line[start]
	var fg *world.Color
	end := start
	for ; end < len(line); end++ {
		cl := line[end]
		if cl.Filled != first.Filled || (cl.Filled && cl.BG != first.BG) {
			break
		}
		if cl.Rune > 0 {
			if fg != nil && *fg != cl.FG {
				break
			}
			fg = &cl.FG
		}
	}
	return end
}

func renderRun(run []Cell) string {
	var text strings.Builder
	var fg *world.Color
	for i, cl := range run {
		switch {
		case cl.Rune == 0:
			text.WriteByte(' ')
		case cl.Rune > 0:
			text.WriteRune(cl.Rune)
			fg = &run[i].FG
		}
	}

	style := styles.MapBackground
	if run[0].Filled {
		style = lipgloss.NewStyle().Background(lipgloss.Color(run[0].BG.Hex()))
	}
	if fg != nil {
		style = style.Foreground(lipgloss.Color(fg.Hex()))
	}
	return style.Render(text.String())
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
