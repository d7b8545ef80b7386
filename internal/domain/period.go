package domain

import (
	"errors"
	"fmt"
)

var ErrUnknownPeriodMode = errors.New("unknown period mode")

// PeriodMode is the time bucketing granularity used when charting.
type PeriodMode string

const (
	PeriodNone    PeriodMode = "None"
	PeriodMonthly PeriodMode = "Monthly"
	PeriodWeekly  PeriodMode = "Weekly"
)

// ParsePeriodMode accepts exactly "None", "Monthly" or "Weekly".
func ParsePeriodMode(s string) (PeriodMode, error) {
	switch m := PeriodMode(s); m {
	case PeriodNone, PeriodMonthly, PeriodWeekly:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownPeriodMode, s)
}
