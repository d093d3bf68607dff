package zoom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingControl struct {
	values []int
}

func (r *recordingControl) SetValue(v int) { r.values = append(r.values, v) }

func (r *recordingControl) last() int { return r.values[len(r.values)-1] }

func TestSet_Clamps(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{in: -5, want: MinTileSize},
		{in: 0, want: MinTileSize},
		{in: 10, want: 10},
		{in: 57, want: 57},
		{in: 200, want: 200},
		{in: 201, want: MaxTileSize},
		{in: 10000, want: MaxTileSize},
	}

	for _, tt := range tests {
		c := New(DefaultTileSize)
		c.Set(tt.in)
		assert.Equal(t, tt.want, c.TileSize(), "Set(%d)", tt.in)
	}
}

func TestIncrementDecrement_StayInBounds(t *testing.T) {
	for start := MinTileSize; start <= MaxTileSize; start++ {
		c := New(start)
		for i := 0; i < 300; i++ {
			c.Increment()
			assert.LessOrEqual(t, c.TileSize(), MaxTileSize)
		}
		for i := 0; i < 300; i++ {
			c.Decrement()
			assert.GreaterOrEqual(t, c.TileSize(), MinTileSize)
		}
	}
}

func TestIncrementAtMaxIsNoop(t *testing.T) {
	c := New(MaxTileSize)
	assert.False(t, c.Increment())
	assert.Equal(t, MaxTileSize, c.TileSize())

	c = New(MinTileSize)
	assert.False(t, c.Decrement())
	assert.Equal(t, MinTileSize, c.TileSize())
}

func TestBoundControlFollowsTileSize(t *testing.T) {
	ctrl := &recordingControl{}
	c := New(120)
	c.Bind(ctrl)
	assert.Equal(t, 60, ctrl.last())

	c.Set(201)
	assert.Equal(t, 100, ctrl.last())

	c.Set(11)
	assert.Equal(t, 6, ctrl.last(), "round(100*11/200) = round(5.5)")

	c.Decrement()
	assert.Equal(t, 5, ctrl.last())
}

func TestSetFromControl(t *testing.T) {
	c := New(DefaultTileSize)

	assert.True(t, c.SetFromControl(25))
	assert.Equal(t, 50, c.TileSize())

	c.SetFromControl(0)
	assert.Equal(t, MinTileSize, c.TileSize())

	c.SetFromControl(100)
	assert.Equal(t, MaxTileSize, c.TileSize())
}

func TestNew_ClampsInitialSize(t *testing.T) {
	assert.Equal(t, MinTileSize, New(1).TileSize())
	assert.Equal(t, MaxTileSize, New(999).TileSize())
}
