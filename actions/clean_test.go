package actions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitander/kalandra/logger"
)

func TestCleanAction_RemovesLogs(t *testing.T) {
	cfg := testConfig(t)
	roster := testRoster("a", "b")

	logA := cfg.LogPath(roster[0])
	require.NoError(t, os.WriteFile(logA, []byte("old output"), 0o644))

	action := NewCleanAction(cfg, roster, logger.New(logger.ErrorLevel))
	require.NoError(t, action.Execute())

	_, err := os.Stat(logA)
	assert.True(t, os.IsNotExist(err))
}

func TestCleanAction_IgnoresMissingLogs(t *testing.T) {
	cfg := testConfig(t)
	action := NewCleanAction(cfg, testRoster("never-ran"), logger.New(logger.ErrorLevel))

	assert.NoError(t, action.Execute())
}

func TestCleanAction_LeavesUnrelatedFiles(t *testing.T) {
	cfg := testConfig(t)
	unrelated := filepath.Join(cfg.LogDir, "notes.txt")
	require.NoError(t, os.WriteFile(unrelated, []byte("keep me"), 0o644))

	action := NewCleanAction(cfg, testRoster("a"), logger.New(logger.ErrorLevel))
	require.NoError(t, action.Execute())

	_, err := os.Stat(unrelated)
	assert.NoError(t, err)
}
