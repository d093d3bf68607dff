package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/colonyops/mudmap/internal/core/world"
)

func TestSpec(t *testing.T) {
	tests := []struct {
		ts       int
		border   int
		drawText bool
	}{
		{ts: 10, border: 5},
		{ts: 59, border: 5},
		{ts: 60, border: 5, drawText: true},
		{ts: 80, border: 8, drawText: true},
		{ts: 100, border: 10, drawText: true},
		{ts: 120, border: 10, drawText: true},
		{ts: 200, border: 10, drawText: true},
	}

	for _, tt := range tests {
		s := Spec(tt.ts)
		assert.Equal(t, tt.border, s.AreaBorder, "area border at %d", tt.ts)
		assert.Equal(t, tt.border, s.RiskBorder, "risk border at %d", tt.ts)
		assert.Equal(t, tt.drawText, s.DrawText, "draw text at %d", tt.ts)
	}
}

func TestTileSpec_LabelLayout(t *testing.T) {
	s := Spec(120)
	assert.Equal(t, 94, s.LabelWidth())
	assert.Equal(t, 5, s.LabelLines(13))
	assert.Equal(t, 0, s.LabelLines(0))
}

func TestTileSpec_ExitOffset(t *testing.T) {
	s := Spec(100)

	tests := []struct {
		dir    world.Direction
		dx, dy int
		ok     bool
	}{
		{world.DirNorth, 50, 10, true},
		{world.DirNorthEast, 90, 10, true},
		{world.DirEast, 90, 50, true},
		{world.DirSouthEast, 90, 90, true},
		{world.DirSouth, 50, 90, true},
		{world.DirSouthWest, 10, 90, true},
		{world.DirWest, 10, 50, true},
		{world.DirNorthWest, 10, 10, true},
		{world.DirUp, 0, 0, false},
		{world.DirDown, 0, 0, false},
		{world.DirUnknown, 0, 0, false},
	}

	for _, tt := range tests {
		dx, dy, ok := s.ExitOffset(tt.dir)
		assert.Equal(t, tt.ok, ok, tt.dir.String())
		assert.Equal(t, tt.dx, dx, tt.dir.String())
		assert.Equal(t, tt.dy, dy, tt.dir.String())
	}
}
