package actions

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/mitander/kalandra/config"
	"github.com/mitander/kalandra/exec"
	"github.com/mitander/kalandra/logger"
	"github.com/mitander/kalandra/models"
	"github.com/mitander/kalandra/watcher"
)

// CampaignAction runs the roster sequentially, one engine subprocess
// alive at a time. A failing target never stops the campaign; the
// verdict belongs to the reporter, not to any single run.
type CampaignAction struct {
	cfg    *config.Config
	roster []models.Target
	runner exec.Runner
	log    logger.Logger

	// Console receives the live engine output stream (and the per-target
	// banner). Defaults to stdout; tests substitute a buffer.
	Console io.Writer
}

func NewCampaignAction(cfg *config.Config, roster []models.Target, runner exec.Runner, log logger.Logger) *CampaignAction {
	return &CampaignAction{
		cfg:    cfg,
		roster: roster,
		runner: runner,
		log:    log,
	}
}

// Execute yields one Outcome per roster entry, in roster order. An
// interrupt fails the in-flight target and stops launching further ones;
// outcomes gathered so far are still returned for reporting.
func (a *CampaignAction) Execute(ctx context.Context, budget config.Duration) []models.Outcome {
	outcomes := make([]models.Outcome, 0, len(a.roster))

	for _, target := range a.roster {
		if ctx.Err() != nil {
			break
		}
		outcomes = append(outcomes, a.runTarget(ctx, target, budget.Seconds))
	}

	return outcomes
}

func (a *CampaignAction) runTarget(ctx context.Context, target models.Target, seconds int) models.Outcome {
	targetLog := a.log.WithTarget(target.Name)
	targetLog.Info("fuzzing...", logger.Int("max_total_time", seconds))
	fmt.Fprintf(a.console(), "\n──── %s ────\n", target.Name)

	logPath := a.cfg.LogPath(target)
	start := time.Now()

	code, err := a.fuzzTarget(ctx, target, seconds, logPath)

	outcome := models.Outcome{
		Target:   target,
		ExitCode: code,
		LogPath:  logPath,
		Duration: time.Since(start),
		Err:      err,
	}

	if err != nil {
		outcome.Status = models.StatusFailed
		targetLog.Error("failed", logger.Err(err), logger.Int("exit_code", code))
	} else {
		outcome.Status = models.StatusPassed
		targetLog.Info("passed", logger.Duration("duration", outcome.Duration))
	}

	return outcome
}

// fuzzTarget owns the log handle for one run: opened before the engine
// starts, closed on every exit path, truncated on rerun of the same
// target. Output is duplicated to the console and the log byte for byte.
func (a *CampaignAction) fuzzTarget(ctx context.Context, target models.Target, seconds int, logPath string) (int, error) {
	logFile, err := os.Create(logPath)
	if err != nil {
		return -1, errors.Wrapf(err, "failed to create log %s", logPath)
	}
	defer logFile.Close()

	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.watchArtifacts(runCtx, target)

	out := io.MultiWriter(a.console(), logFile)
	return a.runner.Run(runCtx, target, seconds, out)
}

// watchArtifacts reports crashing inputs in real time while the engine
// runs. Best effort only: the directory usually does not exist until the
// first crash, and a dead watcher never fails the target.
func (a *CampaignAction) watchArtifacts(ctx context.Context, target models.Target) {
	dir := a.cfg.ArtifactDir(target)

	w, err := watcher.New(dir)
	if err != nil {
		a.log.Debug("artifact watch unavailable", logger.Err(err))
		return
	}

	targetLog := a.log.WithTarget(target.Name)
	w.OnArtifact(func(path string) {
		targetLog.Warn("new crash artifact", logger.String("artifact", path))
	})

	go func() {
		defer w.Stop()
		if err := w.Start(ctx); err != nil {
			a.log.Debug("artifact watch unavailable", logger.Err(err))
		}
	}()
}

func (a *CampaignAction) console() io.Writer {
	if a.Console != nil {
		return a.Console
	}
	return os.Stdout
}
