package viewstate

import (
	"fmt"
	"os"
	"path/filepath"
)

// MetaPath returns the sidecar view-state path for a world file.
func MetaPath(worldFile string) string {
	return worldFile + Suffix
}

// Load reads the view state at path. A missing file yields an error matching
// fs.ErrNotExist, which callers treat as "nothing saved yet".
func Load(path string) (State, error) {
	f, err := os.Open(path)
	if err != nil {
		return State{}, fmt.Errorf("open view state: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Read(f)
}

// Save writes st to path atomically: the data goes to a temporary file in the
// same directory which then replaces path.
func Save(path string, st State) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create view state dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp view state: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if err := Write(tmp, st); err != nil {
		_ = tmp.Close()
		cleanup()
		return err
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("close temp view state: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("replace view state: %w", err)
	}
	return nil
}
