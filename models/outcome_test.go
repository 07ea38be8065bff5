package models

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "PASS", StatusPassed.String())
	assert.Equal(t, "FAIL", StatusFailed.String())
}

func TestOutcome_Passed(t *testing.T) {
	passed := Outcome{Status: StatusPassed}
	failed := Outcome{Status: StatusFailed, ExitCode: 1}

	assert.True(t, passed.Passed())
	assert.False(t, failed.Passed())
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		name           string
		outcomes       []Outcome
		expectedPassed int
		expectedFailed int
		failedNames    []string
	}{
		{
			name:           "empty campaign",
			outcomes:       nil,
			expectedPassed: 0,
			expectedFailed: 0,
		},
		{
			name: "all passing",
			outcomes: []Outcome{
				{Target: Target{Name: "a"}, Status: StatusPassed},
				{Target: Target{Name: "b"}, Status: StatusPassed},
			},
			expectedPassed: 2,
			expectedFailed: 0,
		},
		{
			name: "middle target fails",
			outcomes: []Outcome{
				{Target: Target{Name: "a"}, Status: StatusPassed},
				{Target: Target{Name: "b"}, Status: StatusFailed, ExitCode: 1},
				{Target: Target{Name: "c"}, Status: StatusPassed},
			},
			expectedPassed: 2,
			expectedFailed: 1,
			failedNames:    []string{"b"},
		},
		{
			name: "failures keep roster order",
			outcomes: []Outcome{
				{Target: Target{Name: "a"}, Status: StatusFailed, ExitCode: 137},
				{Target: Target{Name: "b"}, Status: StatusPassed},
				{Target: Target{Name: "c"}, Status: StatusFailed, Err: errors.New("launch failed")},
			},
			expectedPassed: 1,
			expectedFailed: 2,
			failedNames:    []string{"a", "c"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := Summarize(tt.outcomes)

			assert.Equal(t, tt.expectedPassed, summary.Passed)
			assert.Equal(t, tt.expectedFailed, summary.Failed)

			var names []string
			for _, o := range summary.FailedOutcomes {
				names = append(names, o.Target.Name)
			}
			assert.Equal(t, tt.failedNames, names)
		})
	}
}

func TestSummarize_AccumulatesDuration(t *testing.T) {
	summary := Summarize([]Outcome{
		{Status: StatusPassed, Duration: 2 * time.Second},
		{Status: StatusFailed, Duration: 3 * time.Second},
	})

	assert.Equal(t, 5*time.Second, summary.Duration)
}

func TestTarget_LogName(t *testing.T) {
	target := Target{Name: "sequencer_fuzzer"}
	assert.Equal(t, "fuzz-sequencer_fuzzer.log", target.LogName())
}
