package mapview

import (
	"github.com/colonyops/mudmap/internal/core/action"
)

// HandleKey runs the action bound to key. It reports whether the key was
// bound. Selection movement is ignored while the selection is hidden.
func (s *Session) HandleKey(key string) bool {
	a, ok := s.keymap.Resolve(key)
	if !ok {
		return false
	}
	s.Apply(a.Type)
	return true
}

// OnKey is HandleKey for a typed character.
func (s *Session) OnKey(r rune) bool {
	return s.HandleKey(string(r))
}

// Apply runs a single action.
func (s *Session) Apply(t action.Type) {
	if dx, dy, ok := t.Step(); ok {
		if s.cursor.Enabled {
			s.MoveSelection(dx, dy)
		}
		return
	}

	switch t {
	case action.TypeToggleSelection:
		s.ToggleSelection()
	case action.TypeZoomIn:
		s.ZoomIn()
	case action.TypeZoomOut:
		s.ZoomOut()
	case action.TypeBack:
		s.Back()
	case action.TypeHome:
		s.Home()
	}
}

// DoubleClick moves the selection to the cell under pixel (px, py). It does
// nothing while the selection is hidden.
func (s *Session) DoubleClick(px, py int) bool {
	if !s.cursor.Enabled {
		return false
	}
	t := s.Transform()
	s.SetSelection(t.PlaceX(px), t.PlaceY(py))
	return true
}

// PointerEnter records the pointer entering the view at (x, y).
func (s *Session) PointerEnter(x, y int) {
	s.pointer = pointer{inside: true, x: x, y: y}
}

// PointerExit records the pointer leaving the view. Drags are ignored until
// it enters again.
func (s *Session) PointerExit() {
	s.pointer.inside = false
}

// PointerMove records the pointer position without panning.
func (s *Session) PointerMove(x, y int) {
	s.pointer.x, s.pointer.y = x, y
}

// PointerDrag pans the view by the pointer motion since the last event. The
// map follows the pointer, so dragging right moves the focus west and
// dragging down moves it north. The position is tracked even while the
// pointer is outside the view so a drag that re-enters starts from where it
// left off.
func (s *Session) PointerDrag(x, y int) {
	dx := float64(x - s.pointer.x)
	dy := float64(y - s.pointer.y)
	s.pointer.x, s.pointer.y = x, y
	if !s.pointer.inside {
		return
	}
	ts := float64(s.zoom.TileSize())
	s.Move(-dx/ts, dy/ts)
}
