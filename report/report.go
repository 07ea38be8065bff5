package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/mitander/kalandra/config"
	"github.com/mitander/kalandra/models"
)

// CampaignFailedError carries no detail on purpose: by the time it is
// raised every failure has already been itemized in the summary. Its
// only job is to drive the non-zero exit code.
type CampaignFailedError struct {
	Failed int
}

func (e *CampaignFailedError) Error() string {
	return strconv.Itoa(e.Failed) + " fuzz target(s) failed"
}

var (
	passStatus = color.New(color.FgGreen, color.Bold)
	failStatus = color.New(color.FgRed, color.Bold)
)

// Reporter renders the end-of-campaign summary and decides the overall
// verdict. It is the single place where per-target failures become a
// campaign failure.
type Reporter struct {
	out io.Writer
	cfg *config.Config
}

func NewReporter(out io.Writer, cfg *config.Config) *Reporter {
	return &Reporter{out: out, cfg: cfg}
}

// Report prints the summary for a completed campaign and returns
// *CampaignFailedError iff at least one target failed.
func (r *Reporter) Report(outcomes []models.Outcome) error {
	summary := models.Summarize(outcomes)

	fmt.Fprintf(r.out, "\ncampaign results\n\n")
	r.renderTable(outcomes)
	fmt.Fprintf(r.out, "\npassed: %d  failed: %d  (%s total)\n", summary.Passed, summary.Failed, summary.Duration.Round(time.Second))

	if summary.Failed > 0 {
		r.renderFailures(summary)
		return &CampaignFailedError{Failed: summary.Failed}
	}

	r.renderFollowUps()
	return nil
}

func (r *Reporter) renderTable(outcomes []models.Outcome) {
	table := tablewriter.NewWriter(r.out)
	table.SetHeader([]string{"Target", "Status", "Log"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_LEFT})

	for _, o := range outcomes {
		status := failStatus.Sprint(models.StatusFailed.String())
		if o.Passed() {
			status = passStatus.Sprint(models.StatusPassed.String())
		}
		table.Append([]string{o.Target.Name, status, o.LogPath})
	}

	table.Render()
}

func (r *Reporter) renderFailures(summary models.Summary) {
	fmt.Fprintf(r.out, "\nfailed targets:\n")
	for _, o := range summary.FailedOutcomes {
		fmt.Fprintf(r.out, "  %s (log: %s)\n", o.Target.Name, o.LogPath)
	}

	fmt.Fprintf(r.out, "\nto investigate:\n")
	for _, o := range summary.FailedOutcomes {
		fmt.Fprintf(r.out, "  ls %s\n", r.cfg.ArtifactDir(o.Target))
		fmt.Fprintf(r.out, "  %s fuzz run %s %s/<crash-file>  # replay\n",
			r.cfg.Engine, o.Target.Name, r.cfg.ArtifactDir(o.Target))
		fmt.Fprintf(r.out, "  less %s\n", o.LogPath)
	}
}

func (r *Reporter) renderFollowUps() {
	fmt.Fprintf(r.out, "\nall targets passed. next steps:\n")
	fmt.Fprintf(r.out, "  %s fuzz cmin <target>      # minimize corpora\n", r.cfg.Engine)
	fmt.Fprintf(r.out, "  %s fuzz coverage <target>  # measure coverage\n", r.cfg.Engine)
	fmt.Fprintf(r.out, "  kalandra-fuzz 86400        # run a longer campaign\n")
}
