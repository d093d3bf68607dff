package action

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseType(t *testing.T) {
	got, err := ParseType(" Zoom_In ")
	require.NoError(t, err)
	assert.Equal(t, TypeZoomIn, got)

	_, err = ParseType("fly")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown action "fly"`)

	_, err = ParseType("")
	require.Error(t, err)
}

func TestType_Step(t *testing.T) {
	tests := []struct {
		typ    Type
		dx, dy int
		ok     bool
	}{
		{TypeSelectNorth, 0, 1, true},
		{TypeSelectSouth, 0, -1, true},
		{TypeSelectEast, 1, 0, true},
		{TypeSelectWest, -1, 0, true},
		{TypeZoomIn, 0, 0, false},
	}

	for _, tt := range tests {
		dx, dy, ok := tt.typ.Step()
		assert.Equal(t, tt.ok, ok, tt.typ.String())
		assert.Equal(t, tt.dx, dx, tt.typ.String())
		assert.Equal(t, tt.dy, dy, tt.typ.String())
	}
}

func TestKeymap_Resolve(t *testing.T) {
	km := Keymap{
		"w":      {Type: TypeSelectNorth, Key: "w"},
		"ctrl+h": {Type: TypeHome, Key: "ctrl+h"},
	}

	a, ok := km.Resolve("W")
	require.True(t, ok)
	assert.Equal(t, TypeSelectNorth, a.Type)

	a, ok = km.Resolve("ctrl+h")
	require.True(t, ok)
	assert.Equal(t, TypeHome, a.Type)

	_, ok = km.Resolve("q")
	assert.False(t, ok)
}
