package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/colonyops/mudmap/internal/core/styles"
	"github.com/colonyops/mudmap/internal/core/world"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	lines := strings.Split(m.frame, "\n")
	if len(lines) > m.mapRows() {
		lines = lines[:m.mapRows()]
	}
	for len(lines) < m.mapRows() {
		lines = append(lines, styles.MapBackground.Render(strings.Repeat(" ", m.width)))
	}

	if m.help.ShowAll {
		helpLines := strings.Split(styles.HelpStyle.Render(m.help.View(m.keyMap)), "\n")
		start := max(len(lines)-len(helpLines), 0)
		for i := start; i < len(lines); i++ {
			lines[i] = helpLines[i-start]
		}
	}

	return strings.Join(append(lines, m.statusBar()), "\n")
}

func (m Model) statusBar() string {
	s := m.session
	f := s.Focus()

	parts := []string{
		m.gauge.View(),
		fmt.Sprintf("%s %dpx", styles.IconZoom, s.TileSize()),
		label(styles.IconLayers, fmt.Sprintf("%d", f.Layer)),
		label(styles.IconMap, fmt.Sprintf("%.2f, %.2f", f.X, f.Y)),
	}

	if c := s.Cursor(); c.Enabled {
		where := fmt.Sprintf("%d, %d", c.X, c.Y)
		p, err := s.SelectedPlace()
		switch {
		case err == nil:
			where += " " + styles.StatusValueStyle.Render(p.Name)
		case !errors.Is(err, world.ErrNotFound):
			where += " " + styles.ErrorStyle.Render("?")
		}
		parts = append(parts, label(styles.IconCursor, where))
	}

	if m.stats.Failed > 0 {
		parts = append(parts, styles.WarningStyle.Render(fmt.Sprintf("%d tiles failed", m.stats.Failed)))
	}
	if m.notice != "" {
		parts = append(parts, styles.StatusLabelStyle.Render(m.notice))
	}

	left := strings.Join(parts, styles.StatusLabelStyle.Render("  "))
	right := m.help.ShortHelpView(m.keyMap.ShortHelp())

	inner := max(m.width-2, 0)
	gap := inner - lipgloss.Width(left) - lipgloss.Width(right)
	var bar string
	if gap >= 1 {
		bar = left + strings.Repeat(" ", gap) + right
	} else {
		bar = ansi.Truncate(left, inner, "…")
	}
	return styles.StatusBarStyle.Width(m.width).Render(bar)
}

func label(icon, value string) string {
	return styles.StatusLabelStyle.Render(icon+" ") + styles.StatusValueStyle.Render(value)
}
