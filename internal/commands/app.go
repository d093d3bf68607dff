package commands

import (
	"github.com/urfave/cli/v3"
)

const (
	AppName  = "mudmap"
	AppUsage = "Browse MUD world maps in the terminal"

	appDescription = `mudmap shows the places of a MUD world as a tile map you can pan, zoom and
select places on. Each world remembers where you left it.

Run 'mudmap <world>' to open a world from the worlds directory or a path.
Run 'mudmap ls' to list the known worlds.`
)

// NewRoot builds the root command with the global flags bound to flags.
func NewRoot(flags *Flags, version string) *cli.Command {
	return &cli.Command{
		Name:        AppName,
		Usage:       AppUsage,
		UsageText:   "mudmap [global options] [command [command options]] [world]",
		Description: appDescription,
		Version:     version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("MUDMAP_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file (defaults to <data-dir>/mudmap.log)",
				Sources:     cli.EnvVars("MUDMAP_LOG_FILE"),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("MUDMAP_CONFIG"),
				Value:       DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
			&cli.StringFlag{
				Name:        "data-dir",
				Usage:       "path to data directory",
				Sources:     cli.EnvVars("MUDMAP_DATA_DIR"),
				Value:       DefaultDataDir(),
				Destination: &flags.DataDir,
			},
		},
	}
}

// RegisterAll adds every subcommand to root and the viewer flags to the root
// flags. It returns the view command so it can serve as the default action.
func RegisterAll(root *cli.Command, flags *Flags) (*cli.Command, *ViewCmd) {
	viewCmd := NewViewCmd(flags)

	root = viewCmd.Register(root)
	root = NewLsCmd(flags).Register(root)
	root = NewMetaCmd(flags).Register(root)
	root = NewRenderCmd(flags).Register(root)
	root = NewInitCmd(flags).Register(root)
	root = NewConfigValidateCmd(flags).Register(root)

	root.Flags = append(root.Flags, viewCmd.Flags()...)
	return root, viewCmd
}
