package aggregation

import "finance-ledger/internal/domain"

// Summarize returns income and expense totals per period, in first-appearance order.
func Summarize(txs []domain.Transaction, mode domain.PeriodMode) []domain.PeriodSummary {
	sums := Aggregate(txs, mode)

	out := make([]domain.PeriodSummary, 0, sums.Len())
	for _, key := range sums.order {
		period := sums.periods[key]
		out = append(out, domain.PeriodSummary{
			Period:  key.String(),
			Income:  period.TotalOf(domain.Income),
			Expense: period.TotalOf(domain.Expense),
		})
	}
	return out
}
