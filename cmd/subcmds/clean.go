package subcmds

import (
	"github.com/mitander/kalandra/actions"
	"github.com/mitander/kalandra/config"
	"github.com/mitander/kalandra/logger"

	"github.com/urfave/cli/v2"
)

func CleanCmd() *cli.Command {
	return &cli.Command{
		Name:  "clean",
		Usage: "Remove per-target log artifacts from earlier campaigns",
		Action: func(ctx *cli.Context) error {
			level := logger.InfoLevel
			if ctx.Bool("debug") {
				level = logger.DebugLevel
			}
			log := logger.New(level)

			cfg, err := config.Load()
			if err != nil {
				return cli.Exit("error: "+err.Error(), 1)
			}

			action := actions.NewCleanAction(cfg, config.DefaultRoster(), log)
			if err := action.Execute(); err != nil {
				return cli.Exit("error: "+err.Error(), 1)
			}

			return nil
		},
	}
}
