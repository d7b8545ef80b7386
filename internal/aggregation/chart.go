package aggregation

import "finance-ledger/internal/domain"

// BuildChart runs the whole pipeline: aggregate, normalize, project.
// Nothing is cached; every call recomputes from txs.
func BuildChart(txs []domain.Transaction, mode domain.PeriodMode, palette Palette, currency string) domain.Chart {
	return Project(Normalize(Aggregate(txs, mode), mode), palette, currency)
}
