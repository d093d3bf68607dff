// Package config handles configuration loading and validation for mudmap.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/colonyops/mudmap/internal/core/action"
	"github.com/colonyops/mudmap/internal/core/styles"
	"github.com/colonyops/mudmap/internal/core/validate"
	"github.com/colonyops/mudmap/internal/core/world"
	"github.com/colonyops/mudmap/internal/core/zoom"
)

// Built-in action names for keybindings.
const (
	ActionToggleSelection = string(action.TypeToggleSelection)
	ActionSelectNorth     = string(action.TypeSelectNorth)
	ActionSelectSouth     = string(action.TypeSelectSouth)
	ActionSelectEast      = string(action.TypeSelectEast)
	ActionSelectWest      = string(action.TypeSelectWest)
	ActionZoomIn          = string(action.TypeZoomIn)
	ActionZoomOut         = string(action.TypeZoomOut)
	ActionBack            = string(action.TypeBack)
	ActionHome            = string(action.TypeHome)
)

// defaultKeybindings provides built-in keybindings that users can override.
var defaultKeybindings = map[string]Keybinding{
	"p":         {Action: ActionToggleSelection, Help: "toggle selection"},
	"w":         {Action: ActionSelectNorth, Help: "selection north"},
	"a":         {Action: ActionSelectWest, Help: "selection west"},
	"s":         {Action: ActionSelectSouth, Help: "selection south"},
	"d":         {Action: ActionSelectEast, Help: "selection east"},
	"+":         {Action: ActionZoomIn, Help: "zoom in"},
	"-":         {Action: ActionZoomOut, Help: "zoom out"},
	"b":         {Action: ActionBack, Help: "back"},
	"backspace": {Action: ActionBack, Help: "back"},
	"h":         {Action: ActionHome, Help: "home"},
}

// Config holds the application configuration.
type Config struct {
	View        ViewConfig            `yaml:"view"`
	Colors      ColorsConfig          `yaml:"colors"`
	Keybindings map[string]Keybinding `yaml:"keybindings"`
	Worlds      WorldsConfig          `yaml:"worlds"`
	TUI         TUIConfig             `yaml:"tui"`
	DataDir     string                `yaml:"-"` // set by caller, not from config file
}

// ViewConfig holds the initial view settings used when a world has no saved
// view state.
type ViewConfig struct {
	TileSize         int  `yaml:"tile_size"`
	SelectionEnabled bool `yaml:"selection_enabled"`
}

// ColorsConfig holds the map colors as #rrggbb strings.
type ColorsConfig struct {
	TileCenter string `yaml:"tile_center"`
	Selection  string `yaml:"selection"`
}

// WorldsConfig tells mudmap where to find world files.
type WorldsConfig struct {
	Dir     string `yaml:"dir"`     // defaults to <data-dir>/worlds
	Pattern string `yaml:"pattern"` // doublestar pattern relative to Dir
}

// TUIConfig holds terminal viewer settings.
type TUIConfig struct {
	Theme string `yaml:"theme"`
	// CellWidth and CellHeight are the pixels of the virtual viewport covered
	// by one terminal cell.
	CellWidth   int           `yaml:"cell_width"`
	CellHeight  int           `yaml:"cell_height"`
	DoubleClick time.Duration `yaml:"double_click"`
	WatchWorld  *bool         `yaml:"watch_world"` // nil = enabled
}

// Keybinding defines a viewer keybinding action.
type Keybinding struct {
	Action string `yaml:"action"` // built-in action name
	Help   string `yaml:"help"`   // help text shown in the viewer
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		View: ViewConfig{
			TileSize: zoom.DefaultTileSize,
		},
		Colors: ColorsConfig{
			TileCenter: "#cfbe86",
			Selection:  "#ff0000",
		},
		Keybindings: map[string]Keybinding{},
		Worlds: WorldsConfig{
			Pattern: "**/*.{yaml,yml}",
		},
		TUI: TUIConfig{
			Theme:       styles.DefaultTheme,
			CellWidth:   10,
			CellHeight:  20,
			DoubleClick: 400 * time.Millisecond,
		},
	}
}

// DefaultKeybindings returns a copy of the built-in keybindings.
func DefaultKeybindings() map[string]Keybinding {
	return mergeKeybindings(defaultKeybindings, nil)
}

// Load reads configuration from the given path and sets the data directory.
// If configPath is empty or doesn't exist, returns defaults with the provided dataDir.
func Load(configPath, dataDir string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.DataDir = dataDir

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			data, err := os.ReadFile(configPath)
			if err != nil {
				return nil, fmt.Errorf("read config file: %w", err)
			}

			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return nil, fmt.Errorf("parse config file: %w", err)
			}

			// Re-set dataDir since Unmarshal may have cleared it
			cfg.DataDir = dataDir
		}
	}

	// Merge user keybindings into defaults (user config overrides defaults)
	cfg.Keybindings = mergeKeybindings(defaultKeybindings, cfg.Keybindings)

	// Apply defaults for zero values
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func (c *Config) applyDefaults() {
	defaults := DefaultConfig()
	if c.View.TileSize == 0 {
		c.View.TileSize = defaults.View.TileSize
	}
	if c.Colors.TileCenter == "" {
		c.Colors.TileCenter = defaults.Colors.TileCenter
	}
	if c.Colors.Selection == "" {
		c.Colors.Selection = defaults.Colors.Selection
	}
	if c.Worlds.Pattern == "" {
		c.Worlds.Pattern = defaults.Worlds.Pattern
	}
	if c.Worlds.Dir == "" && c.DataDir != "" {
		c.Worlds.Dir = filepath.Join(c.DataDir, "worlds")
	}
	if c.TUI.Theme == "" {
		c.TUI.Theme = defaults.TUI.Theme
	}
	if c.TUI.CellWidth == 0 {
		c.TUI.CellWidth = defaults.TUI.CellWidth
	}
	if c.TUI.CellHeight == 0 {
		c.TUI.CellHeight = defaults.TUI.CellHeight
	}
	if c.TUI.DoubleClick == 0 {
		c.TUI.DoubleClick = defaults.TUI.DoubleClick
	}
}

// mergeKeybindings merges user keybindings into defaults.
// User keybindings override defaults for the same key. Keys are matched
// case-insensitively.
func mergeKeybindings(defaults, user map[string]Keybinding) map[string]Keybinding {
	result := make(map[string]Keybinding, len(defaults)+len(user))

	// Copy defaults first
	for k, v := range defaults {
		result[strings.ToLower(k)] = v
	}

	// Override with user config
	for k, v := range user {
		result[strings.ToLower(k)] = v
	}

	return result
}

// Keymap returns the resolved key to action mapping of the configured
// keybindings.
func (c *Config) Keymap() action.Keymap {
	km := make(action.Keymap, len(c.Keybindings))
	for key, kb := range c.Keybindings {
		km[key] = action.Action{Type: action.Type(kb.Action), Key: key, Help: kb.Help}
	}
	return km
}

// TileCenterColor returns the parsed tile-center color. Validate guarantees
// it parses.
func (c *Config) TileCenterColor() world.Color {
	col, _ := world.ParseColor(c.Colors.TileCenter)
	return col
}

// SelectionColor returns the parsed selection color.
func (c *Config) SelectionColor() world.Color {
	col, _ := world.ParseColor(c.Colors.Selection)
	return col
}

// WatchWorld reports whether the viewer reloads world files on change.
func (c *Config) WatchWorld() bool {
	return c.TUI.WatchWorld == nil || *c.TUI.WatchWorld
}

// LogFile returns the default log file path.
func (c *Config) LogFile() string {
	return filepath.Join(c.DataDir, "mudmap.log")
}

func isValidAction(name string) bool {
	return action.IsConfigAction(action.Type(name))
}

// Validate checks that the configuration is structurally valid.
func (c *Config) Validate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data directory cannot be empty")
	}

	if err := validate.TileSize(c.View.TileSize); err != nil {
		return fmt.Errorf("view.tile_size: %w", err)
	}

	if err := validate.HexColor(c.Colors.TileCenter); err != nil {
		return fmt.Errorf("colors.tile_center: %w", err)
	}
	if err := validate.HexColor(c.Colors.Selection); err != nil {
		return fmt.Errorf("colors.selection: %w", err)
	}

	if c.TUI.CellWidth < 1 || c.TUI.CellHeight < 1 {
		return fmt.Errorf("tui cell size must be at least 1x1")
	}
	if c.TUI.DoubleClick < 0 {
		return fmt.Errorf("tui.double_click cannot be negative")
	}

	for key, kb := range c.Keybindings {
		if kb.Action == "" {
			return fmt.Errorf("keybinding %q must have an action", key)
		}
		if !isValidAction(kb.Action) {
			return fmt.Errorf("keybinding %q has invalid action %q", key, kb.Action)
		}
	}

	return nil
}
