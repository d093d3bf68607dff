package tui

import (
	"strings"

	"github.com/colonyops/mudmap/internal/core/styles"
	"github.com/colonyops/mudmap/internal/core/zoom"
)

// zoomGauge is the status bar zoom slider. It is bound to the session's zoom
// controller and redrawn from the value it is given.
type zoomGauge struct {
	value int
	width int
}

var _ zoom.Control = (*zoomGauge)(nil)

func newZoomGauge(width int) *zoomGauge {
	return &zoomGauge{width: width}
}

func (g *zoomGauge) SetValue(v int) { g.value = v }

// Value returns the control value in 0..zoom.ControlMax.
func (g *zoomGauge) Value() int { return g.value }

// ValueAt maps a click offset within the gauge to a control value.
func (g *zoomGauge) ValueAt(offset int) int {
	if g.width <= 1 {
		return zoom.ControlMax
	}
	offset = min(max(offset, 0), g.width-1)
	return offset * zoom.ControlMax / (g.width - 1)
}

func (g *zoomGauge) View() string {
	full := g.value * g.width / zoom.ControlMax
	full = min(max(full, 0), g.width)
	return styles.GaugeFullStyle.Render(strings.Repeat("█", full)) +
		styles.GaugeEmptyStyle.Render(strings.Repeat("░", g.width-full))
}
