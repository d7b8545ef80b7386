package aggregation

import (
	"github.com/shopspring/decimal"

	"finance-ledger/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Normalize turns summed amounts into percentage shares.
//
// In None mode every share is the bucket's sum over the grand total and the totals are
// the raw income and expense sums. In Weekly and Monthly mode each bucket's share of its
// own period's total is averaged over the periods in which the bucket appears, while the
// reported totals are averaged over all periods. An unknown mode panics.
func Normalize(sums *PeriodSums, mode domain.PeriodMode) domain.Breakdown {
	mustKnownMode(mode)
	if mode == domain.PeriodNone {
		return normalizeRaw(sums)
	}
	return normalizeAveraged(sums, mode)
}

func normalizeRaw(sums *PeriodSums) domain.Breakdown {
	out := domain.Breakdown{
		Mode:         domain.PeriodNone,
		Periods:      sums.Len(),
		Shares:       []domain.Share{},
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	// Collapse every period into one set of buckets; None mode has a single period
	// but sums built under another mode are accepted too.
	merged := newBucketSums()
	for _, key := range sums.order {
		period := sums.periods[key]
		for _, bucket := range period.order {
			merged.add(bucket, period.sums[bucket])
		}
	}

	grand := divisor(merged.Total())
	for _, bucket := range merged.order {
		out.Shares = append(out.Shares, domain.Share{
			Bucket:  bucket,
			Percent: percent(merged.sums[bucket], grand),
		})
	}
	out.TotalIncome = merged.TotalOf(domain.Income)
	out.TotalExpense = merged.TotalOf(domain.Expense)

	return out
}

func normalizeAveraged(sums *PeriodSums, mode domain.PeriodMode) domain.Breakdown {
	out := domain.Breakdown{
		Mode:         mode,
		Periods:      sums.Len(),
		Shares:       []domain.Share{},
		TotalIncome:  decimal.Zero,
		TotalExpense: decimal.Zero,
	}

	type accumulator struct {
		total decimal.Decimal
		count int64
	}
	var order []domain.Bucket
	acc := make(map[domain.Bucket]*accumulator)

	income, expense := decimal.Zero, decimal.Zero
	for _, key := range sums.order {
		period := sums.periods[key]
		total := divisor(period.Total())
		for _, bucket := range period.order {
			a, ok := acc[bucket]
			if !ok {
				a = &accumulator{total: decimal.Zero}
				acc[bucket] = a
				order = append(order, bucket)
			}
			a.total = a.total.Add(period.sums[bucket].Div(total).Mul(hundred))
			a.count++
		}
		income = income.Add(period.TotalOf(domain.Income))
		expense = expense.Add(period.TotalOf(domain.Expense))
	}

	for _, bucket := range order {
		a := acc[bucket]
		out.Shares = append(out.Shares, domain.Share{
			Bucket:  bucket,
			Percent: a.total.Div(decimal.NewFromInt(a.count)).InexactFloat64(),
		})
	}

	n := decimal.NewFromInt(int64(sums.Len()))
	if sums.Len() == 0 {
		n = decimal.NewFromInt(1)
	}
	out.TotalIncome = income.Div(n)
	out.TotalExpense = expense.Div(n)

	return out
}

// divisor guards against a zero total; the resulting shares are then the raw amounts.
func divisor(total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.NewFromInt(1)
	}
	return total
}

func percent(amount, total decimal.Decimal) float64 {
	return amount.Div(total).Mul(hundred).InexactFloat64()
}
