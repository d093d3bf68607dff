package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/hay-kot/criterio"

	"github.com/colonyops/mudmap/internal/core/styles"
	"github.com/colonyops/mudmap/internal/core/validate"
)

// ValidationWarning represents a non-fatal configuration issue.
type ValidationWarning struct {
	Category string `json:"category"`
	Item     string `json:"item,omitempty"`
	Message  string `json:"message"`
}

// ValidateDeep performs comprehensive validation of the configuration including
// glob patterns, theme names and file accessibility. The configPath argument
// specifies the config file location to validate (empty string skips config file check).
// This calls Validate() first for basic structural validation, then adds I/O checks.
func (c *Config) ValidateDeep(configPath string) error {
	if err := c.Validate(); err != nil {
		return err
	}

	return criterio.ValidateStruct(
		c.validateFileAccess(configPath),
		c.validateView(),
		c.validateWorlds(),
		c.validateTUI(),
	)
}

// Warnings returns non-fatal configuration issues.
func (c *Config) Warnings() []ValidationWarning {
	var warnings []ValidationWarning

	if c.TUI.CellWidth > c.TUI.CellHeight {
		warnings = append(warnings, ValidationWarning{
			Category: "TUI",
			Item:     "cell_width",
			Message:  "cells wider than tall will render tiles stretched",
		})
	}

	if c.Colors.TileCenter == c.Colors.Selection {
		warnings = append(warnings, ValidationWarning{
			Category: "Colors",
			Message:  "selection color equals tile center color; selection may be hard to see",
		})
	}

	actions := make(map[string]bool, len(c.Keybindings))
	for _, kb := range c.Keybindings {
		actions[kb.Action] = true
	}
	for _, action := range []string{ActionBack, ActionHome} {
		if !actions[action] {
			warnings = append(warnings, ValidationWarning{
				Category: "Keybindings",
				Item:     action,
				Message:  "no key is bound to this action",
			})
		}
	}

	return warnings
}

// validateFileAccess checks the config file and data directories.
func (c *Config) validateFileAccess(configPath string) error {
	return criterio.ValidateStruct(
		validateConfigFile(configPath),
		criterio.Run("data_dir", c.DataDir, isDirectoryOrNotExist),
		criterio.Run("worlds.dir", c.Worlds.Dir, isDirectoryOrNotExist),
	)
}

func validateConfigFile(configPath string) error {
	if configPath == "" {
		return nil
	}

	info, err := os.Stat(configPath)
	if os.IsNotExist(err) {
		return nil // not found is fine, using defaults
	}
	if err != nil {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("cannot access: %w", err))
	}
	if info.IsDir() {
		return criterio.NewFieldErrors("config_file", fmt.Errorf("%s is a directory, not a file", configPath))
	}
	return nil
}

// isDirectoryOrNotExist validates that a path is a directory or doesn't exist.
func isDirectoryOrNotExist(path string) error {
	if path == "" {
		return nil
	}
	info, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil // will be created
	}
	if err != nil {
		return fmt.Errorf("cannot access: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("exists but is not a directory")
	}
	return nil
}

func (c *Config) validateView() error {
	return criterio.ValidateStruct(
		validate.TileSizeField("view.tile_size", c.View.TileSize),
		validate.HexColorField("colors.tile_center", c.Colors.TileCenter),
		validate.HexColorField("colors.selection", c.Colors.Selection),
	)
}

func (c *Config) validateWorlds() error {
	var errs criterio.FieldErrorsBuilder

	if err := validate.Glob(c.Worlds.Pattern); err != nil {
		errs = errs.Append("worlds.pattern", err)
	} else if !strings.Contains(c.Worlds.Pattern, ".") && !strings.Contains(c.Worlds.Pattern, "{") {
		// a pattern without an extension also matches view state sidecars
		errs = errs.Append("worlds.pattern", fmt.Errorf("pattern %q should select a file extension", c.Worlds.Pattern))
	}

	return errs.ToError()
}

func (c *Config) validateTUI() error {
	var errs criterio.FieldErrorsBuilder

	if _, ok := styles.GetPalette(c.TUI.Theme); !ok {
		errs = errs.Append("tui.theme", fmt.Errorf("unknown theme %q, expected one of %s",
			c.TUI.Theme, strings.Join(styles.ThemeNames(), ", ")))
	}

	if err := validate.Positive(c.TUI.CellWidth); err != nil {
		errs = errs.Append("tui.cell_width", err)
	}
	if err := validate.Positive(c.TUI.CellHeight); err != nil {
		errs = errs.Append("tui.cell_height", err)
	}

	return errs.ToError()
}
