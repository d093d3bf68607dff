package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

const (
	// wheelStep is the tile size change per wheel notch.
	wheelStep = 5
	// gaugeOffset is the column of the zoom gauge in the status bar.
	gaugeOffset = 1
)

// pixel returns the virtual viewport pixel at the center of a cell.
func (m Model) pixel(col, row int) (px, py int) {
	return col*m.cellW + m.cellW/2, row*m.cellH + m.cellH/2
}

func (m Model) mapRows() int {
	return max(m.height-statusLines, 0)
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Y >= m.mapRows() {
		m.handleStatusMouse(msg)
		return
	}

	px, py := m.pixel(msg.X, msg.Y)
	s := m.session

	if m.offMap {
		m.offMap = false
		s.PointerEnter(px, py)
	}

	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		s.SetTileSize(s.TileSize() + wheelStep)
	case msg.Button == tea.MouseButtonWheelDown:
		s.SetTileSize(s.TileSize() - wheelStep)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		s.PointerEnter(px, py)
		if m.isDoubleClick(msg.X, msg.Y) {
			s.DoubleClick(px, py)
		}
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		s.PointerDrag(px, py)
	case msg.Action == tea.MouseActionMotion:
		s.PointerMove(px, py)
	}
}

// isDoubleClick records a left press and reports whether it completes a
// double click on the same cell.
func (m *Model) isDoubleClick(col, row int) bool {
	now := m.now()
	prev := m.lastClick
	if prev.col == col && prev.row == row && !prev.at.IsZero() && now.Sub(prev.at) <= m.doubleClick {
		m.lastClick = click{}
		return true
	}
	m.lastClick = click{col: col, row: row, at: now}
	return false
}

// handleStatusMouse lets the zoom gauge act as a slider.
func (m *Model) handleStatusMouse(msg tea.MouseMsg) {
	m.offMap = true
	m.session.PointerExit()

	if msg.Button != tea.MouseButtonLeft {
		return
	}
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionMotion {
		return
	}
	offset := msg.X - gaugeOffset
	if offset < 0 || offset >= m.gauge.width {
		return
	}
	m.session.SetZoomFromControl(m.gauge.ValueAt(offset))
}
