package world

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore_PlaceLookup(t *testing.T) {
	s := NewMemoryStore("test", Home{Layer: 1, X: 2, Y: 3})
	require.NoError(t, s.Add(&Place{Name: "Gate", Layer: 1, X: 0, Y: 0}))
	require.NoError(t, s.Add(&Place{Name: "Cellar", Layer: 2, X: 0, Y: 0}))

	p, err := s.Place(1, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, "Gate", p.Name)

	_, err = s.Place(1, 5, 5)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.Equal(t, Home{Layer: 1, X: 2, Y: 3}, s.Home())
	assert.Equal(t, []int{1, 2}, s.Layers())
	assert.Equal(t, 2, s.Len())
}

func TestMemoryStore_RejectsDuplicateCell(t *testing.T) {
	s := NewMemoryStore("test", Home{})
	require.NoError(t, s.Add(&Place{Name: "A", X: 1, Y: 1}))

	err := s.Add(&Place{Name: "B", X: 1, Y: 1})
	assert.True(t, errors.Is(err, ErrDuplicatePlace))
}

func TestParseColor(t *testing.T) {
	c, err := ParseColor("#cfbe86")
	require.NoError(t, err)
	assert.Equal(t, RGB(207, 190, 134), c)
	assert.Equal(t, "#cfbe86", c.Hex())

	c, err = ParseColor("FF0000")
	require.NoError(t, err)
	assert.Equal(t, RGB(255, 0, 0), c)

	_, err = ParseColor("#fff")
	assert.Error(t, err)
	_, err = ParseColor("#gg0000")
	assert.Error(t, err)
}

func TestParseDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    Direction
		compass bool
		wantErr bool
	}{
		{in: "n", want: DirNorth, compass: true},
		{in: "NE", want: DirNorthEast, compass: true},
		{in: "south-west", want: DirSouthWest, compass: true},
		{in: "northwest", want: DirNorthWest, compass: true},
		{in: "u", want: DirUp},
		{in: "down", want: DirDown},
		{in: "sideways", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDirection(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.compass, got.Compass())
		})
	}
}
