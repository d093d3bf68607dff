// Package worldfile loads read-only YAML world descriptions into a
// world.MemoryStore and watches them for changes.
package worldfile

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/mudmap/internal/core/world"
)

// Document is the on-disk layout of a world file.
type Document struct {
	Name       string       `yaml:"name"`
	Home       world.Home   `yaml:"home"`
	PathColor  *world.Color `yaml:"path_color"`
	Areas      []AreaDoc    `yaml:"areas"`
	RiskLevels []RiskDoc    `yaml:"risk_levels"`
	Places     []PlaceDoc   `yaml:"places"`
}

type AreaDoc struct {
	ID    int         `yaml:"id"`
	Name  string      `yaml:"name"`
	Color world.Color `yaml:"color"`
}

type RiskDoc struct {
	ID          int         `yaml:"id"`
	Description string      `yaml:"description"`
	Color       world.Color `yaml:"color"`
}

type PlaceDoc struct {
	Name  string    `yaml:"name"`
	Layer int       `yaml:"layer"`
	X     int       `yaml:"x"`
	Y     int       `yaml:"y"`
	Area  *int      `yaml:"area"`
	Risk  *int      `yaml:"risk"`
	Exits []ExitDoc `yaml:"exits"`
	// Levels is the recommended character level range, [min, max].
	Levels []int `yaml:"levels"`
}

type ExitDoc struct {
	Direction world.Direction `yaml:"direction"`
	Target    string          `yaml:"target"`
}

// Load reads and indexes the world file at path. A world without a name is
// named after its file.
func Load(path string) (*world.MemoryStore, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("read world file: %w", err)
	}
	defer func() { _ = f.Close() }()

	doc, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	if doc.Name == "" {
		doc.Name = Name(path)
	}

	store, err := Build(doc)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	return store, nil
}

// Name derives a world name from its file path.
func Name(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Decode reads a world document. Unknown keys are rejected so typos do not
// silently drop data. An empty input decodes to an empty world.
func Decode(r io.Reader) (Document, error) {
	var doc Document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return Document{}, fmt.Errorf("decode world: %w", err)
	}
	return doc, nil
}

// Build indexes doc into a new store. Every invalid place is reported, not
// only the first.
func Build(doc Document) (*world.MemoryStore, error) {
	s := world.NewMemoryStore(doc.Name, doc.Home)
	if doc.PathColor != nil {
		s.SetPathColor(*doc.PathColor)
	}

	areas := make(map[int]*world.Area, len(doc.Areas))
	for _, a := range doc.Areas {
		if _, dup := areas[a.ID]; dup {
			return nil, fmt.Errorf("area %d defined twice", a.ID)
		}
		areas[a.ID] = &world.Area{ID: a.ID, Name: a.Name, Color: a.Color}
	}

	risks := make(map[int]*world.RiskLevel, len(doc.RiskLevels))
	for _, r := range doc.RiskLevels {
		if _, dup := risks[r.ID]; dup {
			return nil, fmt.Errorf("risk level %d defined twice", r.ID)
		}
		risks[r.ID] = &world.RiskLevel{ID: r.ID, Description: r.Description, Color: r.Color}
	}

	var errs []error
	for i, pd := range doc.Places {
		p, err := pd.place(areas, risks)
		if err != nil {
			errs = append(errs, fmt.Errorf("place %d (%s): %w", i, pd.Name, err))
			continue
		}
		if err := s.Add(p); err != nil {
			errs = append(errs, fmt.Errorf("place %d: %w", i, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return s, nil
}

func (pd PlaceDoc) place(areas map[int]*world.Area, risks map[int]*world.RiskLevel) (*world.Place, error) {
	p := &world.Place{Name: pd.Name, Layer: pd.Layer, X: pd.X, Y: pd.Y}

	if pd.Area != nil {
		a, ok := areas[*pd.Area]
		if !ok {
			return nil, fmt.Errorf("unknown area %d", *pd.Area)
		}
		p.Area = a
	}
	if pd.Risk != nil {
		r, ok := risks[*pd.Risk]
		if !ok {
			return nil, fmt.Errorf("unknown risk level %d", *pd.Risk)
		}
		p.Risk = r
	}

	switch len(pd.Levels) {
	case 0:
	case 2:
		if pd.Levels[0] > pd.Levels[1] {
			return nil, fmt.Errorf("level range %d-%d is inverted", pd.Levels[0], pd.Levels[1])
		}
		p.RecLevelMin, p.RecLevelMax = pd.Levels[0], pd.Levels[1]
	default:
		return nil, fmt.Errorf("levels must be [min, max]")
	}

	for _, e := range pd.Exits {
		p.Exits = append(p.Exits, world.Exit{Direction: e.Direction, Target: e.Target})
	}
	return p, nil
}
