package initcmd

import (
	"os"

	"github.com/colonyops/mudmap/internal/core/config"
)

// Status is the outcome of a single check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// CheckItem is one line of the post-install report.
type CheckItem struct {
	Label  string
	Status Status
	Detail string
}

// RunChecks verifies that the written config loads and that its worlds
// directory is usable.
func RunChecks(configPath, dataDir string) []CheckItem {
	cfg, err := config.Load(configPath, dataDir)
	if err != nil {
		return []CheckItem{{Label: "Config file", Status: StatusFail, Detail: err.Error()}}
	}

	items := []CheckItem{{Label: "Config file", Status: StatusPass, Detail: configPath}}

	info, err := os.Stat(cfg.Worlds.Dir)
	switch {
	case err != nil:
		items = append(items, CheckItem{Label: "Worlds directory", Status: StatusWarn, Detail: cfg.Worlds.Dir + " does not exist"})
	case !info.IsDir():
		items = append(items, CheckItem{Label: "Worlds directory", Status: StatusFail, Detail: cfg.Worlds.Dir + " is not a directory"})
	default:
		items = append(items, CheckItem{Label: "Worlds directory", Status: StatusPass, Detail: cfg.Worlds.Dir})
	}

	for _, w := range cfg.Warnings() {
		items = append(items, CheckItem{Label: w.Category, Status: StatusWarn, Detail: w.Message})
	}
	return items
}
