package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/mudmap/internal/core/viewstate"
	"github.com/colonyops/mudmap/internal/data/worldfile"
	"github.com/colonyops/mudmap/pkg/iojson"
)

type LsCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
}

// NewLsCmd creates a new ls command
func NewLsCmd(flags *Flags) *LsCmd {
	return &LsCmd{flags: flags}
}

// Register adds the ls command to the application
func (cmd *LsCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "ls",
		Usage:     "List world files",
		UsageText: "mudmap ls [--json]",
		Description: `Displays a table of the world files in the worlds directory together with
the position saved in their view state, if any.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "json",
				Usage:       "output as JSON lines",
				Destination: &cmd.jsonOutput,
			},
		},
		Action: cmd.run,
	})

	return app
}

// worldInfo is the JSON output format for mudmap ls --json.
type worldInfo struct {
	Name     string `json:"name"`
	Path     string `json:"path"`
	Position string `json:"position,omitempty"`
	TileSize int    `json:"tile_size,omitempty"`
	History  int    `json:"history"`
}

func (cmd *LsCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	paths, err := findWorlds(cfg)
	if err != nil {
		return err
	}

	if len(paths) == 0 {
		if !cmd.jsonOutput {
			fmt.Fprintf(os.Stderr, "No worlds found in %s\n", cfg.Worlds.Dir)
		}
		return nil
	}

	out := c.Root().Writer

	infos := make([]worldInfo, 0, len(paths))
	for _, path := range paths {
		infos = append(infos, cmd.buildWorldInfo(ctx, path))
	}

	if cmd.jsonOutput {
		for _, info := range infos {
			if err := iojson.WriteLine(out, info); err != nil {
				return fmt.Errorf("encode world: %w", err)
			}
		}
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NAME\tPOSITION\tZOOM\tPATH")
	for _, info := range infos {
		pos, zoom := "-", "-"
		if info.Position != "" {
			pos = info.Position
		}
		if info.TileSize > 0 {
			zoom = fmt.Sprintf("%dpx", info.TileSize)
		}
		rel, err := filepath.Rel(cfg.Worlds.Dir, info.Path)
		if err != nil {
			rel = info.Path
		}
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", info.Name, pos, zoom, rel)
	}
	return w.Flush()
}

func (cmd *LsCmd) buildWorldInfo(ctx context.Context, path string) worldInfo {
	info := worldInfo{
		Name: worldfile.Name(path),
		Path: path,
	}

	st, err := viewstate.Load(viewstate.MetaPath(path))
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return info
	case err != nil:
		log.Warn().Ctx(ctx).Err(err).Str("path", path).Msg("view state unreadable")
		return info
	}

	if st.Current != nil {
		info.Position = st.Current.String()
	}
	info.TileSize = st.TileSize
	info.History = len(st.Previous)
	if st.Current != nil {
		info.History++
	}
	return info
}
