package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitander/kalandra/config"
	"github.com/mitander/kalandra/models"
)

func init() {
	color.NoColor = true
}

func testConfig() *config.Config {
	return &config.Config{Engine: "cargo", LogDir: ".", FuzzDir: "fuzz"}
}

func TestReporter_AllPassing(t *testing.T) {
	var out bytes.Buffer
	reporter := NewReporter(&out, testConfig())

	err := reporter.Report([]models.Outcome{
		{Target: models.Target{Name: "a"}, Status: models.StatusPassed, LogPath: "fuzz-a.log"},
		{Target: models.Target{Name: "b"}, Status: models.StatusPassed, LogPath: "fuzz-b.log"},
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "passed: 2  failed: 0")
	assert.Contains(t, out.String(), "all targets passed")
	assert.Contains(t, out.String(), "cargo fuzz cmin")
	assert.Contains(t, out.String(), "cargo fuzz coverage")
	assert.NotContains(t, out.String(), "failed targets:")
}

func TestReporter_WithFailures(t *testing.T) {
	var out bytes.Buffer
	reporter := NewReporter(&out, testConfig())

	err := reporter.Report([]models.Outcome{
		{Target: models.Target{Name: "a"}, Status: models.StatusPassed, LogPath: "fuzz-a.log"},
		{Target: models.Target{Name: "b"}, Status: models.StatusFailed, ExitCode: 1, LogPath: "fuzz-b.log"},
		{Target: models.Target{Name: "c"}, Status: models.StatusPassed, LogPath: "fuzz-c.log"},
	})

	require.Error(t, err)
	var failedErr *CampaignFailedError
	require.ErrorAs(t, err, &failedErr)
	assert.Equal(t, 1, failedErr.Failed)

	assert.Contains(t, out.String(), "passed: 2  failed: 1")
	assert.Contains(t, out.String(), "failed targets:")
	assert.Contains(t, out.String(), "b (log: fuzz-b.log)")
	assert.Equal(t, 1, strings.Count(out.String(), "b (log: fuzz-b.log)"))

	// Remediation hints reference the engine-managed artifact dir.
	assert.Contains(t, out.String(), "fuzz/artifacts/b")
	assert.Contains(t, out.String(), "replay")
	assert.NotContains(t, out.String(), "all targets passed")
}

func TestReporter_TableListsEveryTargetInOrder(t *testing.T) {
	var out bytes.Buffer
	reporter := NewReporter(&out, testConfig())

	_ = reporter.Report([]models.Outcome{
		{Target: models.Target{Name: "first"}, Status: models.StatusFailed, ExitCode: 137, LogPath: "fuzz-first.log"},
		{Target: models.Target{Name: "second"}, Status: models.StatusPassed, LogPath: "fuzz-second.log"},
	})

	rendered := out.String()
	assert.Contains(t, rendered, "first")
	assert.Contains(t, rendered, "second")
	assert.Less(t, strings.Index(rendered, "first"), strings.Index(rendered, "second"))
	assert.Contains(t, rendered, "PASS")
	assert.Contains(t, rendered, "FAIL")
}

func TestCampaignFailedError(t *testing.T) {
	err := &CampaignFailedError{Failed: 3}
	assert.Equal(t, "3 fuzz target(s) failed", err.Error())
}
