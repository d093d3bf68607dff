package commands

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/mudmap/internal/core/logging"
	"github.com/colonyops/mudmap/internal/core/viewport"
	"github.com/colonyops/mudmap/internal/data/worldfile"
	"github.com/colonyops/mudmap/internal/mapview"
	"github.com/colonyops/mudmap/internal/render"
	"github.com/colonyops/mudmap/pkg/iojson"
)

type RenderCmd struct {
	flags *Flags

	// flags
	width     int
	height    int
	statsOnly bool
	request   iojson.FileReader[renderRequest]
}

// NewRenderCmd creates a new render command
func NewRenderCmd(flags *Flags) *RenderCmd {
	return &RenderCmd{flags: flags}
}

// Register adds the render command to the application
func (cmd *RenderCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "render",
		Usage:     "Render a single frame without a terminal",
		UsageText: "mudmap render [options] <world>",
		Description: `Renders one frame of a world at its saved position and prints the
drawing operations and statistics as JSON.

A JSON request passed with --file overrides the position, zoom and selection:

  {"tile_size": 80, "focus": {"layer": 0, "x": 3, "y": -2}, "selection": {"x": 3, "y": -2}}

The saved view state is read but never written.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:        "width",
				Usage:       "viewport width in pixels",
				Value:       800,
				Destination: &cmd.width,
			},
			&cli.IntFlag{
				Name:        "height",
				Usage:       "viewport height in pixels",
				Value:       600,
				Destination: &cmd.height,
			},
			&cli.BoolFlag{
				Name:        "stats",
				Usage:       "print statistics only",
				Destination: &cmd.statsOnly,
			},
			cmd.request.Flag(),
		},
		ShellComplete: WorldNameCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

// renderRequest overrides the restored view of a world.
type renderRequest struct {
	TileSize  int        `json:"tile_size,omitempty"`
	Focus     *focusInfo `json:"focus,omitempty"`
	Selection *struct {
		X int `json:"x"`
		Y int `json:"y"`
	} `json:"selection,omitempty"`
}

// renderOutput is the JSON output format for mudmap render.
type renderOutput struct {
	World    string       `json:"world"`
	Width    int          `json:"width"`
	Height   int          `json:"height"`
	TileSize int          `json:"tile_size"`
	Focus    focusInfo    `json:"focus"`
	Stats    render.Stats `json:"stats"`
	Errors   []string     `json:"errors,omitempty"`
	Ops      []render.Op  `json:"ops,omitempty"`
}

func (cmd *RenderCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	if cmd.width < 1 || cmd.height < 1 {
		return fmt.Errorf("viewport must be at least 1x1, got %dx%d", cmd.width, cmd.height)
	}

	path, err := resolveWorld(cfg, c.Args().First())
	if err != nil {
		return err
	}

	var req renderRequest
	if cmd.request.Provided() {
		req, err = cmd.request.Read()
		if err != nil {
			return fmt.Errorf("read request: %w", err)
		}
	}

	store, err := worldfile.Load(path)
	if err != nil {
		return fmt.Errorf("load world: %w", err)
	}

	ctx = logging.WithWorld(ctx, store.Name())
	ctx = logging.WithWorldFile(ctx, path)

	session, err := mapview.Open(ctx, store, mapview.Options{
		WorldFile:        path,
		TileSize:         cfg.View.TileSize,
		SelectionEnabled: cfg.View.SelectionEnabled,
		Screen:           viewport.Screen{Width: cmd.width, Height: cmd.height},
		Keymap:           cfg.Keymap(),
	})
	if err != nil {
		log.Warn().Ctx(ctx).Err(err).Msg("view state not restored")
	}

	applyRenderRequest(session, req)

	dl := &render.DrawList{}
	colors := render.Colors{TileCenter: cfg.TileCenterColor(), Selection: cfg.SelectionColor()}
	stats := render.New(render.DefaultMetrics(), colors, logging.Component("render")).Render(dl, session.Frame())

	f := session.Focus()
	out := renderOutput{
		World:    store.Name(),
		Width:    cmd.width,
		Height:   cmd.height,
		TileSize: session.TileSize(),
		Focus:    focusInfo{Layer: f.Layer, X: f.X, Y: f.Y},
		Stats:    stats,
	}
	if stats.Err != nil {
		out.Errors = splitErrors(stats.Err)
	}
	if !cmd.statsOnly {
		out.Ops = dl.Ops
	}

	return iojson.WriteLine(c.Root().Writer, out)
}

func applyRenderRequest(s *mapview.Session, req renderRequest) {
	if req.TileSize > 0 {
		s.SetTileSize(req.TileSize)
	}
	if req.Focus != nil {
		s.Goto(viewport.NewFocus(req.Focus.Layer, req.Focus.X, req.Focus.Y))
	}
	if req.Selection != nil {
		s.SetSelectionEnabled(true)
		s.SetSelection(req.Selection.X, req.Selection.Y)
	}
}

// splitErrors flattens an errors.Join result into messages.
func splitErrors(err error) []string {
	if joined, ok := err.(interface{ Unwrap() []error }); ok {
		var msgs []string
		for _, e := range joined.Unwrap() {
			msgs = append(msgs, e.Error())
		}
		return msgs
	}
	return []string{err.Error()}
}
