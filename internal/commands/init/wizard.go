package initcmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/colonyops/mudmap/internal/core/styles"
	"github.com/colonyops/mudmap/internal/core/validate"
	"github.com/colonyops/mudmap/internal/core/zoom"
	"github.com/colonyops/mudmap/internal/printer"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	DataDir    string
	Yes        bool   // skip prompts, use defaults
	Force      bool   // overwrite existing config
	WorldsDir  string // pre-specified worlds dir ("" = prompt)
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
}

// NewWizard creates a new init wizard.
func NewWizard(opts WizardOptions) *Wizard {
	return &Wizard{opts: opts}
}

// DefaultWorldsDir is the worlds directory offered by the wizard.
func (w *Wizard) DefaultWorldsDir() string {
	return filepath.Join(w.opts.DataDir, "worlds")
}

// Run executes the wizard.
func (w *Wizard) Run(ctx context.Context) error {
	p := printer.Ctx(ctx)

	if ConfigExists(w.opts.ConfigPath) && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite? (a backup will be created)").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			p.Infof("Init cancelled")
			return nil
		}
	}

	opts := ConfigOptions{
		WorldsDir: w.opts.WorldsDir,
		Theme:     styles.DefaultTheme,
		TileSize:  zoom.DefaultTileSize,
	}
	if opts.WorldsDir == "" {
		opts.WorldsDir = w.DefaultWorldsDir()
	}

	if !w.opts.Yes {
		var err error
		opts, err = w.promptUser(opts)
		if err != nil {
			return err
		}
	}
	opts.WorldsDir = expandHome(opts.WorldsDir)

	backupPath, err := BackupConfig(w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("backup config: %w", err)
	}
	if backupPath != "" {
		p.Successf("Backed up config to: %s", backupPath)
	}

	content, err := GenerateConfig(opts)
	if err != nil {
		return err
	}
	if err := WriteConfig(content, w.opts.ConfigPath); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	p.Successf("Created config: %s", w.opts.ConfigPath)

	if err := os.MkdirAll(opts.WorldsDir, 0o755); err != nil {
		p.Warnf("Failed to create worlds directory: %v", err)
	} else {
		p.Successf("Worlds directory: %s", opts.WorldsDir)
	}

	p.Printf("")
	p.Section("Init Validation")
	for _, item := range RunChecks(w.opts.ConfigPath, w.opts.DataDir) {
		switch item.Status {
		case StatusPass:
			p.Successf("%s: %s", item.Label, item.Detail)
		case StatusWarn:
			p.Warnf("%s: %s", item.Label, item.Detail)
		case StatusFail:
			p.Errorf("%s: %s", item.Label, item.Detail)
		}
	}

	p.Printf("")
	p.Section("Next Steps")
	p.Printf("  1. Put world files into %s", opts.WorldsDir)
	p.Printf("  2. Run 'mudmap ls' to list them")
	p.Printf("  3. Run 'mudmap <world>' to open one")
	return nil
}

func (w *Wizard) promptUser(opts ConfigOptions) (ConfigOptions, error) {
	tileSize := strconv.Itoa(opts.TileSize)

	themes := make([]huh.Option[string], 0)
	for _, name := range styles.ThemeNames() {
		themes = append(themes, huh.NewOption(name, name))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Worlds directory").
			Description("Where mudmap looks for world files").
			Value(&opts.WorldsDir),
		huh.NewSelect[string]().
			Title("Theme").
			Options(themes...).
			Value(&opts.Theme),
		huh.NewInput().
			Title("Default tile size").
			Description(fmt.Sprintf("Pixels per tile, %d to %d", zoom.MinTileSize, zoom.MaxTileSize)).
			Validate(func(s string) error {
				v, err := strconv.Atoi(strings.TrimSpace(s))
				if err != nil {
					return fmt.Errorf("not a number")
				}
				return validate.TileSize(v)
			}).
			Value(&tileSize),
		huh.NewConfirm().
			Title("Show the place selection?").
			Description("Can be toggled in the viewer with 'p'").
			Value(&opts.SelectionEnabled),
	))
	if err := form.Run(); err != nil {
		return opts, err
	}

	v, err := strconv.Atoi(strings.TrimSpace(tileSize))
	if err != nil {
		return opts, fmt.Errorf("parse tile size: %w", err)
	}
	opts.TileSize = v
	return opts, nil
}

func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}
