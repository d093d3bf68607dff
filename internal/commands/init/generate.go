package initcmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigOptions are the answers collected by the wizard.
type ConfigOptions struct {
	WorldsDir        string
	Theme            string
	TileSize         int
	SelectionEnabled bool
}

// generatedConfig mirrors the subset of the config file the wizard writes.
type generatedConfig struct {
	View struct {
		TileSize         int  `yaml:"tile_size"`
		SelectionEnabled bool `yaml:"selection_enabled"`
	} `yaml:"view"`
	Worlds struct {
		Dir string `yaml:"dir"`
	} `yaml:"worlds"`
	TUI struct {
		Theme string `yaml:"theme"`
	} `yaml:"tui"`
}

const configHeader = `# mudmap configuration
# Run 'mudmap config validate' after editing.
`

// GenerateConfig renders the config file contents for opts.
func GenerateConfig(opts ConfigOptions) ([]byte, error) {
	var gc generatedConfig
	gc.View.TileSize = opts.TileSize
	gc.View.SelectionEnabled = opts.SelectionEnabled
	gc.Worlds.Dir = opts.WorldsDir
	gc.TUI.Theme = opts.Theme

	var buf bytes.Buffer
	buf.WriteString(configHeader)
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(gc); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteConfig writes content to path, creating parent directories.
func WriteConfig(content []byte, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return os.WriteFile(path, content, 0o644)
}
