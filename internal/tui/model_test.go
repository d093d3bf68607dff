package tui

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/mudmap/internal/core/config"
	"github.com/colonyops/mudmap/internal/core/viewport"
	"github.com/colonyops/mudmap/internal/core/world"
	"github.com/colonyops/mudmap/internal/data/worldfile"
	"github.com/colonyops/mudmap/internal/mapview"
	"github.com/colonyops/mudmap/pkg/tuitest"
)

func newTestModel(t *testing.T, opts Opts) Model {
	t.Helper()

	cfg, err := config.Load("", t.TempDir())
	require.NoError(t, err)

	store := world.NewMemoryStore("test", world.Home{})
	require.NoError(t, store.Add(&world.Place{Name: "Gate"}))

	nop := zerolog.Nop()
	s, err := mapview.Open(context.Background(), store, mapview.Options{
		Keymap: cfg.Keymap(),
		Logger: &nop,
	})
	require.NoError(t, err)

	opts.CellWidth, opts.CellHeight = 10, 20
	if opts.DoubleClick == 0 {
		opts.DoubleClick = 400 * time.Millisecond
	}
	m := New(context.Background(), s, opts)
	m, _ = update(t, m, tuitest.WindowSize(80, 31))
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestModel_ResizeAndPaint(t *testing.T) {
	m := newTestModel(t, Opts{})

	assert.Equal(t, viewport.Screen{Width: 800, Height: 600}, m.Session().Screen())
	assert.Equal(t, 1, m.Stats().Places)

	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Gate")
	assert.Contains(t, view, "120px")
	assert.Len(t, tuitest.Lines(m.View()), 31)
}

func TestModel_Keys(t *testing.T) {
	m := newTestModel(t, Opts{})

	m, _ = update(t, m, tuitest.KeyPress("+"))
	assert.Equal(t, 121, m.Session().TileSize())

	m, _ = update(t, m, tuitest.Key(tea.KeyUp))
	assert.Equal(t, viewport.NewFocus(0, 0, 1), m.Session().Focus())
	m, _ = update(t, m, tuitest.Key(tea.KeyLeft))
	assert.Equal(t, viewport.NewFocus(0, -1, 1), m.Session().Focus())

	m, _ = update(t, m, tuitest.KeyPress("p"))
	assert.True(t, m.Session().Cursor().Enabled)
	assert.Contains(t, tuitest.StripANSI(m.View()), "0, 0 Gate", "status bar names the selected place")

	_, cmd := update(t, m, tuitest.KeyPress("q"))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestModel_Help(t *testing.T) {
	m := newTestModel(t, Opts{})
	assert.NotContains(t, m.View(), "zoom in")

	m, _ = update(t, m, tuitest.KeyPress("?"))
	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "zoom in")
	assert.Contains(t, view, "pan north")
	assert.Len(t, tuitest.Lines(m.View()), 31)
}

func TestModel_MouseDrag(t *testing.T) {
	m := newTestModel(t, Opts{})

	m, _ = update(t, m, tuitest.Press(10, 5))
	m, _ = update(t, m, tuitest.Drag(22, 5))
	assert.Equal(t, viewport.NewFocus(0, -1, 0), m.Session().Focus())

	m, _ = update(t, m, tea.BlurMsg{})
	m, _ = update(t, m, tuitest.Drag(40, 5))
	assert.Equal(t, viewport.NewFocus(0, -1, 0), m.Session().Focus(), "drags after blur are ignored")
	assert.Len(t, m.Session().History(), 1)
}

func TestModel_DragReentersFromStatusBar(t *testing.T) {
	m := newTestModel(t, Opts{})

	m, _ = update(t, m, tuitest.Press(10, 5))
	m, _ = update(t, m, tuitest.Drag(22, 5))
	assert.Equal(t, viewport.NewFocus(0, -1, 0), m.Session().Focus())

	m, _ = update(t, m, tuitest.Drag(40, 30))
	assert.Equal(t, viewport.NewFocus(0, -1, 0), m.Session().Focus(), "status bar drags do not pan")
	assert.Equal(t, 120, m.Session().TileSize())

	m, _ = update(t, m, tuitest.Drag(40, 5))
	assert.Equal(t, viewport.NewFocus(0, -1, 0), m.Session().Focus(), "re-entering starts a new drag")

	m, _ = update(t, m, tuitest.Drag(52, 5))
	assert.Equal(t, viewport.NewFocus(0, -2, 0), m.Session().Focus())
}

func TestModel_MouseWheelZooms(t *testing.T) {
	m := newTestModel(t, Opts{})

	m, _ = update(t, m, tuitest.Wheel(1, 1, tea.MouseButtonWheelUp))
	assert.Equal(t, 125, m.Session().TileSize())
	m, _ = update(t, m, tuitest.Wheel(1, 1, tea.MouseButtonWheelDown))
	assert.Equal(t, 120, m.Session().TileSize())
}

func TestModel_DoubleClick(t *testing.T) {
	m := newTestModel(t, Opts{})
	now := time.Unix(1000, 0)
	m.now = func() time.Time { return now }

	press := tuitest.Press(52, 16)

	m, _ = update(t, m, tuitest.KeyPress("p"))
	m, _ = update(t, m, press)
	assert.Equal(t, 0, m.Session().Cursor().X, "a single click does not select")

	now = now.Add(100 * time.Millisecond)
	m, _ = update(t, m, press)
	c := m.Session().Cursor()
	assert.Equal(t, 1, c.X)
	assert.Equal(t, 0, c.Y)

	// too slow
	m, _ = update(t, m, tuitest.Press(30, 10))
	now = now.Add(time.Second)
	m, _ = update(t, m, tuitest.Press(30, 10))
	assert.Equal(t, c, m.Session().Cursor())
}

func TestModel_GaugeSetsZoom(t *testing.T) {
	m := newTestModel(t, Opts{})
	assert.Equal(t, 60, m.gauge.Value())

	m, _ = update(t, m, tuitest.Press(gaugeOffset+gaugeWidth-1, 30))
	assert.Equal(t, 200, m.Session().TileSize())
	assert.Equal(t, 100, m.gauge.Value())

	m, _ = update(t, m, tuitest.Press(gaugeOffset, 30))
	assert.Equal(t, 10, m.Session().TileSize(), "zero on the slider clamps to the minimum")
}

func TestModel_WorldChanged(t *testing.T) {
	m := newTestModel(t, Opts{})

	next := world.NewMemoryStore("next", world.Home{})
	require.NoError(t, next.Add(&world.Place{Name: "Tower"}))

	m, _ = update(t, m, worldChangedMsg{store: next})
	view := tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Tower")
	assert.Contains(t, view, "world reloaded")

	m, _ = update(t, m, worldChangedMsg{err: errors.New("bad yaml")})
	view = tuitest.StripANSI(m.View())
	assert.Contains(t, view, "Tower", "the previous world stays")
	assert.Contains(t, view, "reload failed: bad yaml")
}

func TestModel_WatcherReloads(t *testing.T) {
	path := filepath.Join(t.TempDir(), "avalon.yaml")
	require.NoError(t, os.WriteFile(path, []byte("places:\n  - {name: Gate}\n"), 0o644))

	w, err := worldfile.NewWatcher(path)
	require.NoError(t, err)
	defer w.Close() //nolint:errcheck

	m := newTestModel(t, Opts{Watcher: w})
	cmd := m.Init()
	require.NotNil(t, cmd)

	require.NoError(t, os.WriteFile(path, []byte("places:\n  - {name: Tower}\n"), 0o644))

	done := make(chan tea.Msg, 1)
	go func() { done <- cmd() }()

	select {
	case msg := <-done:
		changed, ok := msg.(worldChangedMsg)
		require.True(t, ok)
		require.NoError(t, changed.err)
		p, err := changed.store.Place(0, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, "Tower", p.Name)
	case <-time.After(5 * time.Second):
		t.Fatal("timeout waiting for reload")
	}
}

func TestModel_NoWatcher(t *testing.T) {
	m := newTestModel(t, Opts{})
	assert.Nil(t, m.Init())
}

func TestModel_OnFrame(t *testing.T) {
	var frames []FrameInfo
	m := newTestModel(t, Opts{OnFrame: func(f FrameInfo) { frames = append(frames, f) }})
	require.Len(t, frames, 1)
	assert.Equal(t, 120, frames[0].TileSize)
	assert.Equal(t, 800, frames[0].Width)
	assert.Equal(t, 1, frames[0].Stats.Places)

	// nothing changed, nothing painted
	m, _ = update(t, m, tuitest.KeyPress("x"))
	assert.Len(t, frames, 1)

	_, _ = update(t, m, tuitest.KeyPress("-"))
	require.Len(t, frames, 2)
	assert.Equal(t, 119, frames[1].TileSize)
}
