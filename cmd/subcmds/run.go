package subcmds

import (
	"os"

	"github.com/mitander/kalandra/actions"
	"github.com/mitander/kalandra/config"
	"github.com/mitander/kalandra/exec"
	"github.com/mitander/kalandra/logger"
	"github.com/mitander/kalandra/report"

	"github.com/urfave/cli/v2"
)

func RunCmd() *cli.Command {
	return &cli.Command{
		Name:      "run",
		Usage:     "Run the full fuzz campaign across the target roster",
		ArgsUsage: "[seconds|quick]",
		Action:    RunAction,
	}
}

// RunAction is also the app's default action, so `kalandra-fuzz 600`
// and `kalandra-fuzz run 600` behave identically.
func RunAction(ctx *cli.Context) error {
	level := logger.InfoLevel
	if ctx.Bool("debug") {
		level = logger.DebugLevel
	}
	log := logger.New(level)

	// An invalid budget is campaign-fatal: fail here, before any engine
	// subprocess is launched or log file created.
	budget, err := config.ResolveDuration(ctx.Args().First())
	if err != nil {
		return cli.Exit("error: "+err.Error()+"\nusage: kalandra-fuzz [seconds|quick]", 1)
	}
	log.Info(budget.Describe())

	cfg, err := config.Load()
	if err != nil {
		return cli.Exit("error: "+err.Error(), 1)
	}

	if err := exec.Preflight(cfg.Engine); err != nil {
		log.Warn("engine preflight failed, every target will fail to launch",
			logger.Err(err),
			logger.String("hint", "cargo install cargo-fuzz"))
	}

	roster := config.DefaultRoster()
	runner := exec.NewEngineRunner(cfg.Engine)
	campaign := actions.NewCampaignAction(cfg, roster, runner, log)

	outcomes := campaign.Execute(ctx.Context, budget)

	reporter := report.NewReporter(os.Stdout, cfg)
	if err := reporter.Report(outcomes); err != nil {
		return cli.Exit("error: "+err.Error(), 1)
	}

	return nil
}
