// Package mapview owns the state of one open map view: focus history,
// selection cursor and zoom. It turns input events into navigation and keeps
// a coalesced redraw flag for the host.
//
// A Session is not safe for concurrent use. Hosts call it from their single
// event loop.
package mapview

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/rs/zerolog"

	"github.com/colonyops/mudmap/internal/core/action"
	"github.com/colonyops/mudmap/internal/core/logging"
	"github.com/colonyops/mudmap/internal/core/selection"
	"github.com/colonyops/mudmap/internal/core/viewport"
	"github.com/colonyops/mudmap/internal/core/viewstate"
	"github.com/colonyops/mudmap/internal/core/world"
	"github.com/colonyops/mudmap/internal/core/zoom"
	"github.com/colonyops/mudmap/internal/render"
)

// Options configure a new session.
type Options struct {
	// WorldFile is the path of the world being viewed. Its view state sidecar
	// is read on Open and written on Close. Empty disables persistence.
	WorldFile string
	// TileSize and SelectionEnabled apply when no saved state sets them.
	TileSize         int
	SelectionEnabled bool
	Screen           viewport.Screen
	Keymap           action.Keymap
	// Notify is called whenever a redraw is requested.
	Notify func()
	Logger *zerolog.Logger
}

// Session is the live view of one world.
type Session struct {
	store    world.Store
	history  *viewport.History
	cursor   *selection.Cursor
	zoom     *zoom.Controller
	screen   viewport.Screen
	keymap   action.Keymap
	metaPath string
	log      zerolog.Logger

	dirty  bool
	notify func()

	pointer pointer
}

// pointer tracks the last known pointer position so drags can be turned
// into relative pans. Only drags inside the view pan.
type pointer struct {
	inside bool
	x, y   int
}

// Open creates a session for store and restores the saved view state of
// opts.WorldFile. A missing sidecar is not an error. Any other load failure
// is logged and returned; the session is usable regardless and starts at the
// world's home position.
func Open(ctx context.Context, store world.Store, opts Options) (*Session, error) {
	log := logging.Component("mapview")
	if opts.Logger != nil {
		log = *opts.Logger
	}

	size := opts.TileSize
	if size == 0 {
		size = zoom.DefaultTileSize
	}

	s := &Session{
		store:   store,
		history: viewport.NewHistory(),
		zoom:    zoom.New(size),
		screen:  opts.Screen,
		keymap:  opts.Keymap,
		notify:  opts.Notify,
		log:     log,
	}
	if opts.WorldFile != "" {
		s.metaPath = viewstate.MetaPath(opts.WorldFile)
	}

	selectionEnabled := opts.SelectionEnabled
	loadErr := s.restore(ctx, &selectionEnabled)

	if s.history.Empty() {
		s.history.Push(s.homeFocus())
	}
	cur, _ := s.history.Current()
	s.cursor = selection.NewCursor(cur)
	s.cursor.SetEnabled(selectionEnabled)

	s.RequestRedraw()
	return s, loadErr
}

func (s *Session) restore(ctx context.Context, selectionEnabled *bool) error {
	if s.metaPath == "" {
		return nil
	}

	st, err := viewstate.Load(s.metaPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.log.Debug().Ctx(ctx).Str("path", s.metaPath).Msg("no saved view state")
			return nil
		}
		s.log.Warn().Ctx(ctx).Err(err).Str("path", s.metaPath).Msg("view state not loaded")
		return fmt.Errorf("restore view state: %w", err)
	}

	for _, w := range st.Warnings {
		s.log.Warn().Ctx(ctx).
			Err(w.Err).
			Str("path", s.metaPath).
			Int("line", w.Line).
			Str("directive", w.Directive).
			Msg("view state line skipped")
	}

	if st.TileSize != 0 {
		s.zoom.Set(st.TileSize)
	}
	if st.HasSelection {
		*selectionEnabled = st.SelectionEnabled
	}
	if !st.Replay(s.history) {
		s.history.Push(s.homeFocus())
	}
	return nil
}

// Close saves the view state next to the world file. A failed save is logged
// and returned; the in-memory state is unaffected.
func (s *Session) Close(ctx context.Context) error {
	if s.metaPath == "" {
		return nil
	}

	if err := viewstate.Save(s.metaPath, s.Snapshot()); err != nil {
		s.log.Error().Ctx(ctx).Err(err).Str("path", s.metaPath).Msg("view state not saved")
		return fmt.Errorf("save view state: %w", err)
	}
	s.log.Debug().Ctx(ctx).Str("path", s.metaPath).Msg("view state saved")
	return nil
}

// Snapshot returns the current view state as it would be saved.
func (s *Session) Snapshot() viewstate.State {
	return viewstate.FromHistory(s.history, s.zoom.TileSize(), s.cursor.Enabled)
}

// MetaPath returns the view state sidecar path, empty when persistence is off.
func (s *Session) MetaPath() string { return s.metaPath }

func (s *Session) homeFocus() viewport.Focus {
	h := s.store.Home()
	return viewport.NewFocus(h.Layer, h.X, h.Y)
}

// Store returns the world being viewed.
func (s *Session) Store() world.Store { return s.store }

// SetStore swaps the world, for example after the world file was reloaded.
// Navigation state is kept.
func (s *Session) SetStore(store world.Store) {
	s.store = store
	s.RequestRedraw()
}

// Focus returns the current focus.
func (s *Session) Focus() viewport.Focus {
	f, _ := s.history.Current()
	return f
}

// History returns the navigation history, front first.
func (s *Session) History() []viewport.Focus { return s.history.Entries() }

// Cursor returns a copy of the selection cursor.
func (s *Session) Cursor() selection.Cursor { return *s.cursor }

// TileSize returns the current zoom level in pixels per tile.
func (s *Session) TileSize() int { return s.zoom.TileSize() }

// Screen returns the viewport size.
func (s *Session) Screen() viewport.Screen { return s.screen }

// Keymap returns the active key bindings.
func (s *Session) Keymap() action.Keymap { return s.keymap }

// Transform returns the coordinate transform for the current state.
func (s *Session) Transform() viewport.Transform {
	return viewport.Transform{
		TileSize: s.zoom.TileSize(),
		Focus:    s.Focus(),
		Screen:   s.screen,
	}
}

// Frame returns everything the renderer needs for the next paint.
func (s *Session) Frame() render.Frame {
	return render.Frame{
		Transform: s.Transform(),
		Store:     s.store,
		Cursor:    *s.cursor,
	}
}

// Resize sets the viewport size in pixels.
func (s *Session) Resize(width, height int) {
	next := viewport.Screen{Width: width, Height: height}
	if next == s.screen {
		return
	}
	s.screen = next
	s.RequestRedraw()
}

// RequestRedraw marks the view dirty and notifies the host. Repeated
// requests before the next paint collapse into one.
func (s *Session) RequestRedraw() {
	s.dirty = true
	if s.notify != nil {
		s.notify()
	}
}

// TakeRedraw reports whether a redraw was requested since the last call and
// clears the flag.
func (s *Session) TakeRedraw() bool {
	d := s.dirty
	s.dirty = false
	return d
}

// SelectedPlace returns the place under the selection cursor. It returns
// world.ErrNotFound for an empty cell.
func (s *Session) SelectedPlace() (*world.Place, error) {
	return s.store.Place(s.Focus().Layer, s.cursor.X, s.cursor.Y)
}
