package aggregation

import (
	"fmt"

	"finance-ledger/internal/domain"
)

// Project orders, colors and titles a breakdown for a chart renderer.
// Income slices come first, then expenses; each group keeps the breakdown's order.
func Project(b domain.Breakdown, palette Palette, currency string) domain.Chart {
	chart := domain.Chart{
		Title:        Title(b, currency),
		Mode:         b.Mode,
		Slices:       make([]domain.Slice, 0, len(b.Shares)),
		TotalIncome:  b.TotalIncome,
		TotalExpense: b.TotalExpense,
	}

	var incomeIdx, expenseIdx int
	for _, s := range b.Shares {
		if s.Bucket.Kind != domain.Income {
			continue
		}
		chart.Slices = append(chart.Slices, domain.Slice{
			Label:   s.Bucket.Label(),
			Percent: s.Percent,
			Color:   pick(palette.Income, incomeIdx),
		})
		incomeIdx++
	}
	for _, s := range b.Shares {
		if s.Bucket.Kind == domain.Income {
			continue
		}
		chart.Slices = append(chart.Slices, domain.Slice{
			Label:   s.Bucket.Label(),
			Percent: s.Percent,
			Color:   pick(palette.Expense, expenseIdx),
		})
		expenseIdx++
	}

	return chart
}

// Title renders the two-line income/expense headline.
func Title(b domain.Breakdown, currency string) string {
	return fmt.Sprintf("Income: %s\nExpenses: %s",
		domain.FormatAmount(currency, b.TotalIncome),
		domain.FormatAmount(currency, b.TotalExpense))
}
