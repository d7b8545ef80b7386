package aggregation

import (
	"github.com/shopspring/decimal"

	"finance-ledger/internal/domain"
)

// BucketSums holds summed amounts per bucket, remembering first-appearance order.
type BucketSums struct {
	order []domain.Bucket
	sums  map[domain.Bucket]decimal.Decimal
}

func newBucketSums() *BucketSums {
	return &BucketSums{sums: make(map[domain.Bucket]decimal.Decimal)}
}

func (b *BucketSums) add(bucket domain.Bucket, amount decimal.Decimal) {
	sum, ok := b.sums[bucket]
	if !ok {
		b.order = append(b.order, bucket)
	}
	b.sums[bucket] = sum.Add(amount)
}

// Buckets returns the buckets in first-appearance order.
func (b *BucketSums) Buckets() []domain.Bucket {
	return append([]domain.Bucket(nil), b.order...)
}

// Sum returns the summed amount of a bucket and whether it was seen at all.
func (b *BucketSums) Sum(bucket domain.Bucket) (decimal.Decimal, bool) {
	sum, ok := b.sums[bucket]
	return sum, ok
}

// Total is the sum over every bucket.
func (b *BucketSums) Total() decimal.Decimal {
	total := decimal.Zero
	for _, bucket := range b.order {
		total = total.Add(b.sums[bucket])
	}
	return total
}

// TotalOf is the sum over every bucket of the given kind.
func (b *BucketSums) TotalOf(kind domain.Kind) decimal.Decimal {
	total := decimal.Zero
	for _, bucket := range b.order {
		if bucket.Kind == kind {
			total = total.Add(b.sums[bucket])
		}
	}
	return total
}

// PeriodSums maps period keys to their bucket sums, remembering first-appearance order.
type PeriodSums struct {
	Mode    domain.PeriodMode
	order   []PeriodKey
	periods map[PeriodKey]*BucketSums
}

// Periods returns the period keys in first-appearance order.
func (p *PeriodSums) Periods() []PeriodKey {
	return append([]PeriodKey(nil), p.order...)
}

// Period returns the bucket sums recorded for key, or nil.
func (p *PeriodSums) Period(key PeriodKey) *BucketSums {
	return p.periods[key]
}

// Len is the number of distinct periods.
func (p *PeriodSums) Len() int {
	return len(p.order)
}

// Aggregate groups transactions by period and bucket in a single pass and sums their
// amounts. The input slice is not modified.
func Aggregate(txs []domain.Transaction, mode domain.PeriodMode) *PeriodSums {
	mustKnownMode(mode)
	result := &PeriodSums{
		Mode:    mode,
		periods: make(map[PeriodKey]*BucketSums),
	}

	for _, tx := range txs {
		key := PeriodKeyFor(tx.Date, mode)
		sums, ok := result.periods[key]
		if !ok {
			sums = newBucketSums()
			result.periods[key] = sums
			result.order = append(result.order, key)
		}
		sums.add(domain.Bucket{Kind: tx.Kind, Category: tx.Category}, tx.Amount)
	}

	return result
}
