package world

import (
	"fmt"
	"sort"
	"sync"
)

type cellKey struct {
	layer, x, y int
}

// MemoryStore is an in-memory Store indexed by grid cell. It is safe for
// concurrent use.
type MemoryStore struct {
	mu        sync.RWMutex
	name      string
	home      Home
	pathColor Color
	places    map[cellKey]*Place
}

// DefaultPathColor is used when a world does not configure one.
var DefaultPathColor = RGB(0, 255, 0)

// NewMemoryStore returns an empty store with the given home position.
func NewMemoryStore(name string, home Home) *MemoryStore {
	return &MemoryStore{
		name:      name,
		home:      home,
		pathColor: DefaultPathColor,
		places:    make(map[cellKey]*Place),
	}
}

// Name returns the world name.
func (s *MemoryStore) Name() string { return s.name }

// Add indexes p at its cell. Returns ErrDuplicatePlace if the cell is taken.
func (s *MemoryStore) Add(p *Place) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := cellKey{p.Layer, p.X, p.Y}
	if existing, ok := s.places[key]; ok {
		return fmt.Errorf("add %q at %d/%d,%d (holds %q): %w", p.Name, p.Layer, p.X, p.Y, existing.Name, ErrDuplicatePlace)
	}
	s.places[key] = p
	return nil
}

// Place implements Store.
func (s *MemoryStore) Place(layer, x, y int) (*Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.places[cellKey{layer, x, y}]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

// Home implements Store.
func (s *MemoryStore) Home() Home {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.home
}

// SetHome changes the home position.
func (s *MemoryStore) SetHome(h Home) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.home = h
}

// PathColor implements Store.
func (s *MemoryStore) PathColor() Color {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pathColor
}

// SetPathColor changes the exit color.
func (s *MemoryStore) SetPathColor(c Color) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pathColor = c
}

// Len returns the number of places.
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.places)
}

// Layers returns the distinct layer ids in ascending order.
func (s *MemoryStore) Layers() []int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int]struct{})
	for k := range s.places {
		seen[k.layer] = struct{}{}
	}
	layers := make([]int, 0, len(seen))
	for l := range seen {
		layers = append(layers, l)
	}
	sort.Ints(layers)
	return layers
}
