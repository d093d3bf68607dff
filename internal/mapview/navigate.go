package mapview

import (
	"github.com/colonyops/mudmap/internal/core/viewport"
	"github.com/colonyops/mudmap/internal/core/zoom"
)

// Move pans the current focus by a fractional number of tiles. Panning never
// creates a history entry.
func (s *Session) Move(dx, dy float64) {
	if dx == 0 && dy == 0 {
		return
	}
	s.history.MoveCurrent(dx, dy)
	s.RequestRedraw()
}

// Goto jumps to f, pushing it onto the history.
func (s *Session) Goto(f viewport.Focus) {
	if s.history.Push(f) {
		s.RequestRedraw()
	}
}

// Back returns to the previous focus. Leaving the last entry goes home.
func (s *Session) Back() {
	s.history.Pop(s.homeFocus())
	s.RequestRedraw()
}

// Home jumps to the world's home position.
func (s *Session) Home() {
	s.Goto(s.homeFocus())
}

// SetSelection moves the selection cursor to (x, y), scrolling it into view.
func (s *Session) SetSelection(x, y int) {
	s.cursor.Set(x, y, s)
	s.RequestRedraw()
}

// MoveSelection shifts the selection cursor, scrolling it into view.
func (s *Session) MoveSelection(dx, dy int) {
	s.cursor.Move(dx, dy, s)
	s.RequestRedraw()
}

// ToggleSelection shows or hides the selection cursor.
func (s *Session) ToggleSelection() {
	s.cursor.Toggle()
	s.RequestRedraw()
}

// SetSelectionEnabled shows or hides the selection cursor.
func (s *Session) SetSelectionEnabled(b bool) {
	if s.cursor.Enabled == b {
		return
	}
	s.cursor.SetEnabled(b)
	s.RequestRedraw()
}

// ZoomIn grows tiles by one pixel.
func (s *Session) ZoomIn() bool { return s.zoomed(s.zoom.Increment()) }

// ZoomOut shrinks tiles by one pixel.
func (s *Session) ZoomOut() bool { return s.zoomed(s.zoom.Decrement()) }

// SetTileSize sets the zoom level, clamped to the supported range.
func (s *Session) SetTileSize(v int) bool { return s.zoomed(s.zoom.Set(v)) }

// SetZoomFromControl applies a value from the bound zoom control.
func (s *Session) SetZoomFromControl(value int) bool {
	return s.zoomed(s.zoom.SetFromControl(value))
}

// BindZoomControl attaches a displayed zoom control and syncs it.
func (s *Session) BindZoomControl(ctrl zoom.Control) {
	s.zoom.Bind(ctrl)
}

func (s *Session) zoomed(changed bool) bool {
	if changed {
		s.RequestRedraw()
	}
	return changed
}
