package render

import (
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// Metrics measures label text in pixels.
type Metrics interface {
	StringWidth(s string) int
	CharWidth(r rune) int
	LineHeight() int
}

// FaceMetrics measures text with a font face.
type FaceMetrics struct {
	Face font.Face
}

// DefaultMetrics measures with the 7x13 bitmap face.
func DefaultMetrics() FaceMetrics {
	return FaceMetrics{Face: basicfont.Face7x13}
}

func (m FaceMetrics) StringWidth(s string) int {
	return font.MeasureString(m.Face, s).Ceil()
}

func (m FaceMetrics) CharWidth(r rune) int {
	adv, ok := m.Face.GlyphAdvance(r)
	if !ok {
		return 0
	}
	return adv.Ceil()
}

func (m FaceMetrics) LineHeight() int {
	return m.Face.Metrics().Height.Ceil()
}

// CellMetrics measures text drawn on a grid of terminal cells, each cell
// covering CellWidth x CellHeight pixels of the virtual viewport.
type CellMetrics struct {
	CellWidth  int
	CellHeight int
}

func (m CellMetrics) StringWidth(s string) int {
	return ansi.StringWidth(s) * m.CellWidth
}

func (m CellMetrics) CharWidth(r rune) int {
	return ansi.StringWidth(string(r)) * m.CellWidth
}

func (m CellMetrics) LineHeight() int {
	return m.CellHeight
}
