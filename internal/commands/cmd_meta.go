package commands

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/mudmap/internal/core/styles"
	"github.com/colonyops/mudmap/internal/core/viewstate"
	"github.com/colonyops/mudmap/internal/data/worldfile"
	"github.com/colonyops/mudmap/internal/printer"
	"github.com/colonyops/mudmap/pkg/iojson"
)

type MetaCmd struct {
	flags *Flags

	// flags
	jsonOutput bool
	width      int
}

// NewMetaCmd creates a new meta command
func NewMetaCmd(flags *Flags) *MetaCmd {
	return &MetaCmd{flags: flags}
}

// Register adds the meta command to the application
func (cmd *MetaCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:  "meta",
		Usage: "Inspect saved view state",
		Description: `Reads the view state file saved next to a world file.

Use 'mudmap meta show <world>' to print the saved position and history.
Use 'mudmap meta reset <world>' to forget it.`,
		Commands: []*cli.Command{
			{
				Name:      "show",
				Usage:     "Show the saved view state of a world",
				UsageText: "mudmap meta show [--json] <world>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:        "json",
						Usage:       "output as JSON",
						Destination: &cmd.jsonOutput,
					},
					&cli.IntFlag{
						Name:        "width",
						Usage:       "word wrap width of the rendered output",
						Value:       80,
						Destination: &cmd.width,
					},
				},
				ShellComplete: WorldNameCompleter(cmd.flags),
				Action:        cmd.runShow,
			},
			{
				Name:          "reset",
				Usage:         "Delete the saved view state of a world",
				UsageText:     "mudmap meta reset <world>",
				ShellComplete: WorldNameCompleter(cmd.flags),
				Action:        cmd.runReset,
			},
		},
	})

	return app
}

// metaInfo is the JSON output format for mudmap meta show --json.
type metaInfo struct {
	World            string        `json:"world"`
	Path             string        `json:"path"`
	Version          string        `json:"version,omitempty"`
	TileSize         int           `json:"tile_size,omitempty"`
	SelectionEnabled *bool         `json:"selection_enabled,omitempty"`
	Current          *focusInfo    `json:"current,omitempty"`
	Previous         []focusInfo   `json:"previous"`
	Warnings         []warningInfo `json:"warnings,omitempty"`
}

type focusInfo struct {
	Layer int     `json:"layer"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
}

type warningInfo struct {
	Line    int    `json:"line"`
	Message string `json:"message"`
}

func (cmd *MetaCmd) runShow(ctx context.Context, c *cli.Command) error {
	path, err := resolveWorld(cmd.flags.Config, c.Args().First())
	if err != nil {
		return err
	}

	metaPath := viewstate.MetaPath(path)
	st, err := viewstate.Load(metaPath)
	if errors.Is(err, fs.ErrNotExist) {
		if cmd.jsonOutput {
			return iojson.WriteError(c.Root().Writer, "no view state saved", map[string]any{"path": metaPath})
		}
		printer.Ctx(ctx).Infof("No view state saved for %s", worldfile.Name(path))
		return nil
	}
	if err != nil {
		return fmt.Errorf("load view state: %w", err)
	}

	info := buildMetaInfo(worldfile.Name(path), metaPath, st)
	if cmd.jsonOutput {
		return iojson.WriteLine(c.Root().Writer, info)
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styles.GlamourStyle()),
		glamour.WithWordWrap(cmd.width),
	)
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}
	out, err := r.Render(metaMarkdown(info))
	if err != nil {
		return fmt.Errorf("render view state: %w", err)
	}
	_, err = fmt.Fprint(c.Root().Writer, out)
	return err
}

func (cmd *MetaCmd) runReset(ctx context.Context, c *cli.Command) error {
	path, err := resolveWorld(cmd.flags.Config, c.Args().First())
	if err != nil {
		return err
	}

	p := printer.Ctx(ctx)
	metaPath := viewstate.MetaPath(path)
	if err := os.Remove(metaPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.Infof("No view state saved for %s", worldfile.Name(path))
			return nil
		}
		return fmt.Errorf("remove view state: %w", err)
	}
	p.Successf("Removed %s", metaPath)
	return nil
}

func buildMetaInfo(world, metaPath string, st viewstate.State) metaInfo {
	info := metaInfo{
		World:    world,
		Path:     metaPath,
		TileSize: st.TileSize,
		Previous: make([]focusInfo, 0, len(st.Previous)),
	}
	if !st.Version.IsZero() {
		info.Version = st.Version.String()
	}
	if st.HasSelection {
		info.SelectionEnabled = &st.SelectionEnabled
	}
	if st.Current != nil {
		info.Current = &focusInfo{Layer: st.Current.Layer, X: st.Current.X, Y: st.Current.Y}
	}
	for _, f := range st.Previous {
		info.Previous = append(info.Previous, focusInfo{Layer: f.Layer, X: f.X, Y: f.Y})
	}
	for _, w := range st.Warnings {
		info.Warnings = append(info.Warnings, warningInfo{Line: w.Line, Message: fmt.Sprintf("%s: %v", w.Directive, w.Err)})
	}
	return info
}

func metaMarkdown(info metaInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", info.World)
	fmt.Fprintf(&b, "`%s`\n\n", info.Path)

	b.WriteString("| Setting | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Version | %s |\n", orDash(info.Version))
	if info.TileSize > 0 {
		fmt.Fprintf(&b, "| Zoom | %dpx |\n", info.TileSize)
	} else {
		b.WriteString("| Zoom | - |\n")
	}
	switch {
	case info.SelectionEnabled == nil:
		b.WriteString("| Selection | - |\n")
	case *info.SelectionEnabled:
		b.WriteString("| Selection | shown |\n")
	default:
		b.WriteString("| Selection | hidden |\n")
	}

	b.WriteString("\n## History\n\n")
	if info.Current == nil && len(info.Previous) == 0 {
		b.WriteString("Nothing saved, the viewer starts at home.\n")
	}
	if info.Current != nil {
		fmt.Fprintf(&b, "- **%s** (current)\n", formatFocusInfo(*info.Current))
	}
	for i := len(info.Previous) - 1; i >= 0; i-- {
		fmt.Fprintf(&b, "- %s\n", formatFocusInfo(info.Previous[i]))
	}

	if len(info.Warnings) > 0 {
		b.WriteString("\n## Skipped lines\n\n")
		for _, w := range info.Warnings {
			fmt.Fprintf(&b, "- line %d: %s\n", w.Line, w.Message)
		}
	}
	return b.String()
}

func formatFocusInfo(f focusInfo) string {
	return fmt.Sprintf("layer %d at %g, %g", f.Layer, f.X, f.Y)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
