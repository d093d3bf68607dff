package initcmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/mudmap/internal/core/config"
	"github.com/colonyops/mudmap/internal/printer"
)

func TestWizard_Defaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config", "config.yaml")
	dataDir := filepath.Join(dir, "data")

	var out bytes.Buffer
	ctx := printer.NewContext(context.Background(), printer.New(&out))

	err := NewWizard(WizardOptions{ConfigPath: configPath, DataDir: dataDir, Yes: true}).Run(ctx)
	require.NoError(t, err)

	cfg, err := config.Load(configPath, dataDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "worlds"), cfg.Worlds.Dir)
	assert.Equal(t, 120, cfg.View.TileSize)
	assert.DirExists(t, cfg.Worlds.Dir)
	assert.Contains(t, out.String(), "Created config")
}

func TestWizard_ExistingConfig(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("view:\n  tile_size: 80\n"), 0o644))

	ctx := printer.NewContext(context.Background(), printer.New(&bytes.Buffer{}))

	err := NewWizard(WizardOptions{ConfigPath: configPath, DataDir: dir, Yes: true}).Run(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--force")

	err = NewWizard(WizardOptions{
		ConfigPath: configPath,
		DataDir:    dir,
		Yes:        true,
		Force:      true,
		WorldsDir:  filepath.Join(dir, "maps"),
	}).Run(ctx)
	require.NoError(t, err)

	backup, err := os.ReadFile(configPath + ".bak")
	require.NoError(t, err)
	assert.Contains(t, string(backup), "tile_size: 80")

	cfg, err := config.Load(configPath, dir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "maps"), cfg.Worlds.Dir)
}

func TestGenerateConfig(t *testing.T) {
	content, err := GenerateConfig(ConfigOptions{
		WorldsDir:        "/srv/worlds",
		Theme:            "gruvbox",
		TileSize:         60,
		SelectionEnabled: true,
	})
	require.NoError(t, err)

	s := string(content)
	assert.Contains(t, s, "# mudmap configuration")
	assert.Contains(t, s, "tile_size: 60")
	assert.Contains(t, s, "selection_enabled: true")
	assert.Contains(t, s, "dir: /srv/worlds")
	assert.Contains(t, s, "theme: gruvbox")
}

func TestBackupConfig_Missing(t *testing.T) {
	path, err := BackupConfig(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Empty(t, path)
}
