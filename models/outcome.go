package models

import "time"

type Status int

const (
	StatusPassed Status = iota
	StatusFailed
)

func (s Status) String() string {
	if s == StatusPassed {
		return "PASS"
	}
	return "FAIL"
}

// Outcome is the immutable per-target result record. Classification is
// based solely on the engine's exit status; log content is never inspected.
type Outcome struct {
	Target   Target
	Status   Status
	ExitCode int
	LogPath  string
	Duration time.Duration
	Err      error
}

func (o *Outcome) Passed() bool {
	return o.Status == StatusPassed
}

// Summary aggregates a campaign's outcomes. FailedOutcomes preserves
// roster order.
type Summary struct {
	Passed         int
	Failed         int
	FailedOutcomes []Outcome
	Duration       time.Duration
}

// Summarize folds outcomes into a Summary. It is the only aggregation
// point; nothing mutates counters during the campaign itself.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		s.Duration += o.Duration
		if o.Passed() {
			s.Passed++
			continue
		}
		s.Failed++
		s.FailedOutcomes = append(s.FailedOutcomes, o)
	}
	return s
}
