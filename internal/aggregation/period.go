package aggregation

import (
	"fmt"
	"time"

	"finance-ledger/internal/domain"
)

// PeriodKey identifies a time bucket. Index is the ISO week for weekly keys and
// the month number for monthly keys; both fields are zero in None mode.
type PeriodKey struct {
	Year  int
	Index int
	mode  domain.PeriodMode
}

// PeriodKeyFor maps a date to its bucket. It panics on a mode outside the closed set;
// modes from user input must go through domain.ParsePeriodMode first.
func PeriodKeyFor(date time.Time, mode domain.PeriodMode) PeriodKey {
	switch mode {
	case domain.PeriodNone:
		return PeriodKey{mode: mode}
	case domain.PeriodWeekly:
		year, week := date.ISOWeek()
		return PeriodKey{Year: year, Index: week, mode: mode}
	case domain.PeriodMonthly:
		return PeriodKey{Year: date.Year(), Index: int(date.Month()), mode: mode}
	}
	panic(unknownMode(mode))
}

// mustKnownMode panics unless mode is one of the closed set, whatever the input size.
func mustKnownMode(mode domain.PeriodMode) {
	switch mode {
	case domain.PeriodNone, domain.PeriodWeekly, domain.PeriodMonthly:
		return
	}
	panic(unknownMode(mode))
}

func unknownMode(mode domain.PeriodMode) string {
	return fmt.Sprintf("aggregation: unknown period mode %q", mode)
}

func (k PeriodKey) String() string {
	switch k.mode {
	case domain.PeriodWeekly:
		return fmt.Sprintf("%d-W%02d", k.Year, k.Index)
	case domain.PeriodMonthly:
		return fmt.Sprintf("%d-%02d", k.Year, k.Index)
	}
	return "all"
}
