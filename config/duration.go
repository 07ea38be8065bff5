package config

import "strconv"

const (
	// DefaultSeconds is the per-target budget when no argument is given.
	DefaultSeconds = 3600
	// QuickSeconds is the per-target budget in quick mode.
	QuickSeconds = 60
	// QuickToken selects quick mode and wins over numeric parsing.
	QuickToken = "quick"
)

type DurationSource int

const (
	SourceDefault DurationSource = iota
	SourceQuick
	SourceExplicit
)

// Duration is the validated per-target time budget plus where it came
// from, so the caller can tell the operator before any target runs.
type Duration struct {
	Seconds int
	Source  DurationSource
}

func (d Duration) Describe() string {
	switch d.Source {
	case SourceQuick:
		return "quick mode: " + strconv.Itoa(d.Seconds) + "s per target"
	case SourceExplicit:
		return "fuzzing each target for " + strconv.Itoa(d.Seconds) + "s"
	default:
		return "no duration given, defaulting to " + strconv.Itoa(d.Seconds) + "s per target"
	}
}

type InvalidDurationFormatError struct {
	Token string
}

func (e *InvalidDurationFormatError) Error() string {
	return "invalid duration " + strconv.Quote(e.Token) + ": expected a whole number of seconds or " + strconv.Quote(QuickToken)
}

type InvalidDurationValueError struct {
	Token string
}

func (e *InvalidDurationValueError) Error() string {
	return "invalid duration " + strconv.Quote(e.Token) + ": must be a positive number of seconds"
}

// ResolveDuration turns the single optional CLI token into a budget.
// An empty token means the argument was absent. Any error here is
// campaign-fatal: no target may run on an invalid budget.
func ResolveDuration(token string) (Duration, error) {
	if token == "" {
		return Duration{Seconds: DefaultSeconds, Source: SourceDefault}, nil
	}
	if token == QuickToken {
		return Duration{Seconds: QuickSeconds, Source: SourceQuick}, nil
	}
	for _, r := range token {
		if r < '0' || r > '9' {
			return Duration{}, &InvalidDurationFormatError{Token: token}
		}
	}
	seconds, err := strconv.Atoi(token)
	if err != nil || seconds == 0 {
		// Digit-only but unusable: zero, or too large to represent.
		return Duration{}, &InvalidDurationValueError{Token: token}
	}
	return Duration{Seconds: seconds, Source: SourceExplicit}, nil
}
