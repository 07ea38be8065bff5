package actions

import (
	"os"

	"github.com/pkg/errors"

	"github.com/mitander/kalandra/config"
	"github.com/mitander/kalandra/logger"
	"github.com/mitander/kalandra/models"
)

// CleanAction removes the per-target log artifacts from earlier
// campaigns. Engine-managed state (corpus, crash artifacts) is left
// alone.
type CleanAction struct {
	cfg    *config.Config
	roster []models.Target
	log    logger.Logger
}

func NewCleanAction(cfg *config.Config, roster []models.Target, log logger.Logger) *CleanAction {
	return &CleanAction{
		cfg:    cfg,
		roster: roster,
		log:    log,
	}
}

func (a *CleanAction) Execute() error {
	for _, target := range a.roster {
		logPath := a.cfg.LogPath(target)

		err := os.Remove(logPath)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return errors.Wrapf(err, "failed to remove %s", logPath)
		}

		a.log.Info("removed", logger.String("log", logPath))
	}

	return nil
}
