// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/hay-kot/criterio"

	"github.com/colonyops/mudmap/internal/core/world"
	"github.com/colonyops/mudmap/internal/core/zoom"
)

// TileSize validates that v lies within the zoom range.
func TileSize(v int) error {
	if v < zoom.MinTileSize || v > zoom.MaxTileSize {
		return fmt.Errorf("must be between %d and %d, got %d", zoom.MinTileSize, zoom.MaxTileSize, v)
	}
	return nil
}

// HexColor validates a #rrggbb color.
func HexColor(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("color is required")
	}
	_, err := world.ParseColor(s)
	return err
}

// Glob validates a doublestar pattern.
func Glob(pattern string) error {
	if strings.TrimSpace(pattern) == "" {
		return fmt.Errorf("pattern is required")
	}
	if !doublestar.ValidatePattern(pattern) {
		return fmt.Errorf("invalid glob pattern %q", pattern)
	}
	return nil
}

// Positive validates that v is at least 1.
func Positive(v int) error {
	if v < 1 {
		return fmt.Errorf("must be at least 1, got %d", v)
	}
	return nil
}

// TileSizeField returns a criterio validator for tile sizes.
func TileSizeField(field string, v int) error {
	return criterio.Run(field, v, TileSize)
}

// HexColorField returns a criterio validator for colors.
func HexColorField(field, s string) error {
	return criterio.Run(field, s, HexColor)
}
