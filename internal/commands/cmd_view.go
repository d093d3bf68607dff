package commands

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/colonyops/mudmap/internal/core/logging"
	"github.com/colonyops/mudmap/internal/data/worldfile"
	"github.com/colonyops/mudmap/internal/mapview"
	"github.com/colonyops/mudmap/internal/profiler"
	"github.com/colonyops/mudmap/internal/render"
	"github.com/colonyops/mudmap/internal/tui"
)

type ViewCmd struct {
	flags *Flags

	// flags
	noWatch      bool
	profilerPort int
}

// NewViewCmd creates a new view command
func NewViewCmd(flags *Flags) *ViewCmd {
	return &ViewCmd{flags: flags}
}

// Flags returns the viewer flags for registration on the root command
func (cmd *ViewCmd) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:        "no-watch",
			Usage:       "do not reload the world when its file changes",
			Sources:     cli.EnvVars("MUDMAP_NO_WATCH"),
			Destination: &cmd.noWatch,
		},
		&cli.IntFlag{
			Name:        "profiler-port",
			Usage:       "enable pprof HTTP endpoint on specified port (e.g., 6060)",
			Sources:     cli.EnvVars("MUDMAP_PROFILER_PORT"),
			Destination: &cmd.profilerPort,
		},
	}
}

// Register adds the view command to the application
func (cmd *ViewCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "view",
		Usage:     "Open the interactive map viewer",
		UsageText: "mudmap view [options] <world>",
		Description: `Opens a world in the terminal map viewer.

The world is a path to a world file or a name looked up in the worlds
directory. The last position, zoom level and history are restored from the
world's view state file and saved again on exit.`,
		Flags:         cmd.Flags(),
		ShellComplete: WorldNameCompleter(cmd.flags),
		Action:        cmd.run,
	})

	return app
}

// Run executes the viewer. Exported for use as default command.
func (cmd *ViewCmd) Run(ctx context.Context, c *cli.Command) error {
	return cmd.run(ctx, c)
}

func (cmd *ViewCmd) run(ctx context.Context, c *cli.Command) error {
	cfg := cmd.flags.Config

	path, err := resolveWorld(cfg, c.Args().First())
	if err != nil {
		return err
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
		Keymap:           cfg.Keymap(),
	})
	if err != nil {
		// the session starts at home
		log.Warn().Ctx(ctx).Err(err).Msg("view state not restored")
	}

	opts := tui.Opts{
		CellWidth:   cfg.TUI.CellWidth,
		CellHeight:  cfg.TUI.CellHeight,
		DoubleClick: cfg.TUI.DoubleClick,
		Colors: render.Colors{
			TileCenter: cfg.TileCenterColor(),
			Selection:  cfg.SelectionColor(),
		},
	}

	if cfg.WatchWorld() && !cmd.noWatch {
		watcher, err := worldfile.NewWatcher(path)
		if err != nil {
			log.Warn().Ctx(ctx).Err(err).Msg("world file not watched")
		} else {
			defer func() { _ = watcher.Close() }()
			opts.Watcher = watcher
		}
	}

	if cmd.profilerPort > 0 {
		var last atomic.Pointer[tui.FrameInfo]
		opts.OnFrame = func(f tui.FrameInfo) { last.Store(&f) }

		stop, err := cmd.startProfiler(ctx, func() any { return last.Load() })
		if err != nil {
			return err
		}
		defer stop()
	}

	p := tea.NewProgram(
		tui.New(ctx, session, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithReportFocus(),
		tea.WithContext(ctx),
	)

	_, runErr := p.Run()
	if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
		runErr = nil
	}

	closeErr := session.Close(ctx)
	if closeErr != nil {
		log.Error().Ctx(ctx).Err(closeErr).Msg("view state not saved")
	}

	if runErr != nil {
		return fmt.Errorf("run viewer: %w", runErr)
	}
	return closeErr
}

// startProfiler serves pprof and the last painted frame until stop is called.
func (cmd *ViewCmd) startProfiler(ctx context.Context, frame func() any) (stop func(), err error) {
	srv := profiler.New(cmd.profilerPort)
	srv.Publish("frame", frame)
	if err := srv.Start(ctx); err != nil {
		return nil, fmt.Errorf("start profiler: %w", err)
	}
	log.Info().
		Str("url", fmt.Sprintf("http://%s/debug/pprof/", srv.Addr())).
		Msg("profiler endpoint available")

	return func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("failed to shutdown profiler server")
		}
	}, nil
}
