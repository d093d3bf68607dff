// Package tui implements the Bubble Tea terminal map viewer.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/colonyops/mudmap/internal/core/logging"
	"github.com/colonyops/mudmap/internal/core/world"
	"github.com/colonyops/mudmap/internal/data/worldfile"
	"github.com/colonyops/mudmap/internal/mapview"
	"github.com/colonyops/mudmap/internal/render"
)

// statusLines is the number of terminal rows below the map.
const statusLines = 1

// gaugeWidth is the width of the zoom slider in cells.
const gaugeWidth = 10

// Opts configure the viewer.
type Opts struct {
	CellWidth   int
	CellHeight  int
	DoubleClick time.Duration
	// Watcher, when set, reloads the world on change.
	Watcher *worldfile.Watcher
	// Reload loads a changed world file. Defaults to worldfile.Load.
	Reload func(path string) (world.Store, error)
	Colors render.Colors
	// OnFrame, when set, receives a summary of every painted frame.
	OnFrame func(FrameInfo)
}

// FrameInfo summarizes a painted frame.
type FrameInfo struct {
	Layer    int          `json:"layer"`
	X        float64      `json:"x"`
	Y        float64      `json:"y"`
	TileSize int          `json:"tile_size"`
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	Stats    render.Stats `json:"stats"`
}

// Model is the Bubble Tea model of the map viewer.
type Model struct {
	ctx      context.Context
	session  *mapview.Session
	renderer *render.Renderer
	canvas   *CellCanvas
	gauge    *zoomGauge
	keys     hostKeys
	help     help.Model
	keyMap   keyMap
	log      zerolog.Logger

	cellW, cellH int
	width        int
	height       int

	doubleClick time.Duration
	lastClick   click
	offMap      bool // pointer left the map for the status bar
	now         func() time.Time

	watcher *worldfile.Watcher
	reload  func(path string) (world.Store, error)
	onFrame func(FrameInfo)

	frame  string
	stats  render.Stats
	notice string
}

// click is the last left press, used to detect double clicks.
type click struct {
	col, row int
	at       time.Time
}

// worldChangedMsg carries a reloaded world.
type worldChangedMsg struct {
	store world.Store
	err   error
}

// New creates the viewer for an open session.
func New(ctx context.Context, session *mapview.Session, opts Opts) Model {
	if opts.CellWidth < 1 {
		opts.CellWidth = 10
	}
	if opts.CellHeight < 1 {
		opts.CellHeight = 20
	}
	if opts.Reload == nil {
		opts.Reload = func(path string) (world.Store, error) { return worldfile.Load(path) }
	}
	if opts.Colors == (render.Colors{}) {
		opts.Colors = render.DefaultColors()
	}

	log := logging.Component("tui")
	metrics := render.CellMetrics{CellWidth: opts.CellWidth, CellHeight: opts.CellHeight}
	keys := defaultHostKeys().withoutConflicts(session.Keymap())

	m := Model{
		ctx:         ctx,
		session:     session,
		renderer:    render.New(metrics, opts.Colors, log),
		canvas:      NewCellCanvas(opts.CellWidth, opts.CellHeight),
		gauge:       newZoomGauge(gaugeWidth),
		keys:        keys,
		help:        help.New(),
		keyMap:      newKeyMap(keys, session.Keymap()),
		log:         log,
		cellW:       opts.CellWidth,
		cellH:       opts.CellHeight,
		doubleClick: opts.DoubleClick,
		now:         time.Now,
		watcher:     opts.Watcher,
		reload:      opts.Reload,
		onFrame:     opts.OnFrame,
	}
	session.BindZoomControl(m.gauge)
	return m
}

// Session returns the session driven by the viewer.
func (m Model) Session() *mapview.Session { return m.session }

// Stats returns the statistics of the last painted frame.
func (m Model) Stats() render.Stats { return m.stats }

func (m Model) Init() tea.Cmd {
	return m.waitForChange()
}

// waitForChange returns a command that blocks until the watched world file
// changes and then reloads it.
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	events := m.watcher.Events()
	reload := m.reload
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		store, err := reload(ev.Path)
		return worldChangedMsg{store: store, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.session.Resize(m.width*m.cellW, max(m.height-statusLines, 0)*m.cellH)

	case tea.KeyMsg:
		if m.handleKey(msg) {
			return m, tea.Quit
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.BlurMsg:
		m.session.PointerExit()

	case worldChangedMsg:
		if msg.err != nil {
			m.log.Warn().Ctx(m.ctx).Err(msg.err).Msg("world reload failed")
			m.notice = fmt.Sprintf("reload failed: %v", msg.err)
		} else {
			m.session.SetStore(msg.store)
			m.notice = "world reloaded"
		}
		cmd = m.waitForChange()
	}

	m.paint()
	return m, cmd
}

// handleKey reports whether the viewer should quit.
func (m *Model) handleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return true
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.session.RequestRedraw()
	case key.Matches(msg, m.keys.Up):
		m.session.Move(0, 1)
	case key.Matches(msg, m.keys.Down):
		m.session.Move(0, -1)
	case key.Matches(msg, m.keys.Left):
		m.session.Move(-1, 0)
	case key.Matches(msg, m.keys.Right):
		m.session.Move(1, 0)
	default:
		m.notice = ""
		m.session.HandleKey(msg.String())
	}
	return false
}

// paint renders a new frame when the session asked for one.
func (m *Model) paint() {
	if !m.session.TakeRedraw() {
		return
	}
	m.stats = m.renderer.Render(m.canvas, m.session.Frame())
	m.frame = m.canvas.String()

	if m.onFrame != nil {
		f := m.session.Focus()
		screen := m.session.Screen()
		m.onFrame(FrameInfo{
			Layer:    f.Layer,
			X:        f.X,
			Y:        f.Y,
			TileSize: m.session.TileSize(),
			Width:    screen.Width,
			Height:   screen.Height,
			Stats:    m.stats,
		})
	}
}
