package mapview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/mudmap/internal/core/viewport"
)

func TestSession_GotoBackHome(t *testing.T) {
	s := openSession(t, Options{})
	home := s.Focus()
	a := viewport.NewFocus(0, 1, 2)
	b := viewport.NewFocus(0, 3, 4)

	s.Goto(a)
	s.Goto(b)
	s.Goto(b)
	assert.Equal(t, []viewport.Focus{b, a, home}, s.History(), "duplicate goto is ignored")

	s.Back()
	assert.Equal(t, a, s.Focus())
	s.Back()
	assert.Equal(t, home, s.Focus())
	s.Back()
	assert.Equal(t, home, s.Focus(), "leaving the last entry goes home")
	assert.Len(t, s.History(), 1)

	s.Goto(a)
	s.Home()
	assert.Equal(t, []viewport.Focus{home, a, home}, s.History())
}

func TestSession_MoveDoesNotRecordHistory(t *testing.T) {
	s := openSession(t, Options{})
	start := s.Focus()

	s.Move(0.5, -0.25)

	assert.Len(t, s.History(), 1)
	assert.Equal(t, start.Moved(0.5, -0.25), s.Focus())
}

func TestSession_MoveSelectionScrollsIntoView(t *testing.T) {
	s := openSession(t, Options{SelectionEnabled: true})
	s.Goto(viewport.NewFocus(0, 0, 0))
	s.SetSelection(0, 0)
	start := s.Focus()

	s.MoveSelection(1, 0)
	s.MoveSelection(1, 0)
	assert.Equal(t, start, s.Focus(), "visible cells do not pan")

	s.MoveSelection(1, 0)
	assert.Greater(t, s.Focus().X, start.X)
	assert.Equal(t, start.Y, s.Focus().Y)

	tr := s.Transform()
	sx := tr.ScreenX(s.Cursor().X)
	assert.GreaterOrEqual(t, sx, tr.Screen.Width-tr.TileSize-1)
	assert.LessOrEqual(t, sx, tr.Screen.Width-tr.TileSize)
	assert.Len(t, s.History(), 2, "auto-scroll pans without history")
}

func TestSession_SelectionToggle(t *testing.T) {
	s := openSession(t, Options{})

	s.ToggleSelection()
	assert.True(t, s.Cursor().Enabled)
	s.SetSelectionEnabled(false)
	assert.False(t, s.Cursor().Enabled)

	s.TakeRedraw()
	s.SetSelectionEnabled(false)
	assert.False(t, s.TakeRedraw())
}

type recordingControl struct{ values []int }

func (c *recordingControl) SetValue(v int) { c.values = append(c.values, v) }

func TestSession_Zoom(t *testing.T) {
	s := openSession(t, Options{})
	ctrl := &recordingControl{}
	s.BindZoomControl(ctrl)
	require.Equal(t, []int{60}, ctrl.values)

	assert.True(t, s.ZoomIn())
	assert.Equal(t, 121, s.TileSize())
	assert.True(t, s.ZoomOut())
	assert.True(t, s.ZoomOut())
	assert.Equal(t, 119, s.TileSize())

	assert.True(t, s.SetTileSize(1000))
	assert.Equal(t, 200, s.TileSize())
	assert.False(t, s.ZoomIn(), "no-op at the upper bound")
	assert.Equal(t, 100, ctrl.values[len(ctrl.values)-1])

	s.TakeRedraw()
	assert.True(t, s.SetZoomFromControl(25))
	assert.Equal(t, 50, s.TileSize())
	assert.True(t, s.TakeRedraw())

	assert.True(t, s.SetTileSize(0))
	assert.Equal(t, 10, s.TileSize())
	assert.False(t, s.ZoomOut(), "no-op at the lower bound")
}
