package commands

import (
	"context"

	"github.com/urfave/cli/v3"

	initcmd "github.com/colonyops/mudmap/internal/commands/init"
)

type InitCmd struct {
	flags     *Flags
	yes       bool
	force     bool
	worldsDir string
}

func NewInitCmd(flags *Flags) *InitCmd {
	return &InitCmd{flags: flags}
}

func (cmd *InitCmd) Register(app *cli.Command) *cli.Command {
	app.Commands = append(app.Commands, &cli.Command{
		Name:      "init",
		Usage:     "Initialize mudmap configuration with an interactive wizard",
		UsageText: "mudmap init [options]",
		Description: `Sets up mudmap for first-time use with an interactive wizard.

The wizard will:
  - Generate ~/.config/mudmap/config.yaml
  - Create the worlds directory

Use --yes to accept all defaults without prompts.
Use --force to overwrite existing configuration.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "yes",
				Aliases:     []string{"y"},
				Usage:       "accept defaults without prompting",
				Destination: &cmd.yes,
			},
			&cli.BoolFlag{
				Name:        "force",
				Aliases:     []string{"f"},
				Usage:       "overwrite existing configuration",
				Destination: &cmd.force,
			},
			&cli.StringFlag{
				Name:        "worlds-dir",
				Usage:       "directory containing world files",
				Destination: &cmd.worldsDir,
			},
		},
		Action: cmd.run,
	})
	return app
}

func (cmd *InitCmd) run(ctx context.Context, _ *cli.Command) error {
	wizard := initcmd.NewWizard(initcmd.WizardOptions{
		ConfigPath: cmd.flags.ConfigPath,
		DataDir:    cmd.flags.DataDir,
		Yes:        cmd.yes,
		Force:      cmd.force,
		WorldsDir:  cmd.worldsDir,
	})
	return wizard.Run(ctx)
}
