package cmd

import (
	"github.com/mitander/kalandra/cmd/subcmds"

	"github.com/urfave/cli/v2"
)

func NewApp() *cli.App {
	return &cli.App{
		Name:      "kalandra-fuzz",
		Usage:     "Fuzz campaign orchestrator for the kalandra protocol stack",
		Version:   "1.0.0",
		ArgsUsage: "[seconds|quick]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug logging",
			},
		},
		// Bare invocation runs the campaign, matching `kalandra-fuzz 600`.
		Action: subcmds.RunAction,
		Commands: []*cli.Command{
			subcmds.RunCmd(),
			subcmds.ListCmd(),
			subcmds.CleanCmd(),
		},
	}
}
