package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/colonyops/mudmap/internal/core/config"
)

// resolveWorld turns a command argument into a world file path. Paths that
// exist are used as given; anything else is looked up in the worlds
// directory, with and without a YAML extension.
func resolveWorld(cfg *config.Config, arg string) (string, error) {
	if arg == "" {
		return "", errors.New("world file required")
	}
	if _, err := os.Stat(arg); err == nil {
		return filepath.Abs(arg)
	}

	for _, name := range []string{arg, arg + ".yaml", arg + ".yml"} {
		path := filepath.Join(cfg.Worlds.Dir, name)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}
	return "", fmt.Errorf("world %q not found in %s", arg, cfg.Worlds.Dir)
}

// findWorlds returns the world files under the worlds directory matching the
// configured pattern, sorted by path. A missing directory yields no worlds.
func findWorlds(cfg *config.Config) ([]string, error) {
	if _, err := os.Stat(cfg.Worlds.Dir); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	matches, err := doublestar.Glob(os.DirFS(cfg.Worlds.Dir), cfg.Worlds.Pattern, doublestar.WithFilesOnly())
	if err != nil {
		return nil, fmt.Errorf("glob worlds: %w", err)
	}

	paths := make([]string, len(matches))
	for i, m := range matches {
		paths[i] = filepath.Join(cfg.Worlds.Dir, filepath.FromSlash(m))
	}
	slices.Sort(paths)
	return paths, nil
}
