package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/colonyops/mudmap/internal/data/worldfile"
)

// WorldNameCompleter returns a ShellCompleteFunc that suggests the worlds in
// the worlds directory as positional completions.
//
// When the user's last typed argument starts with "-", it falls back to the
// default flag completion behavior.
func WorldNameCompleter(flags *Flags) cli.ShellCompleteFunc {
	return func(ctx context.Context, cmd *cli.Command) {
		if args := cmd.Args(); args.Present() {
			last := args.Slice()[args.Len()-1]
			if len(last) > 0 && last[0] == '-' {
				cli.DefaultCompleteWithFlags(ctx, cmd)
				return
			}
		}

		if flags.Config == nil {
			return
		}
		paths, err := findWorlds(flags.Config)
		if err != nil {
			return
		}

		w := cmd.Root().Writer
		for _, p := range paths {
			_, _ = fmt.Fprintln(w, worldfile.Name(p))
		}
	}
}
