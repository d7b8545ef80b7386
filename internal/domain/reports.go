package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// IncomeLabelPrefix marks income slices so they never collide with a same-named expense.
const IncomeLabelPrefix = "Income: "

// Bucket is the aggregation key: a category tagged with its kind.
type Bucket struct {
	Kind     Kind
	Category string
}

// Label is the display name of the bucket.
func (b Bucket) Label() string {
	if b.Kind == Income {
		return IncomeLabelPrefix + b.Category
	}
	return b.Category
}

// Share is a bucket's percentage (0-100) of the charted totals.
type Share struct {
	Bucket  Bucket
	Percent float64
}

// Breakdown is the normalized result of an aggregation run.
type Breakdown struct {
	Mode         PeriodMode
	Periods      int
	Shares       []Share
	TotalIncome  decimal.Decimal
	TotalExpense decimal.Decimal
}

// Slice is one wedge handed to the chart renderer.
type Slice struct {
	Label   string  `json:"label"`
	Percent float64 `json:"percent"`
	Color   string  `json:"color"`
}

// Chart is the top-level structure passed to a rendering sink.
type Chart struct {
	Title        string          `json:"title"`
	Mode         PeriodMode      `json:"mode"`
	Slices       []Slice         `json:"slices"`
	TotalIncome  decimal.Decimal `json:"total_income"`
	TotalExpense decimal.Decimal `json:"total_expense"`
}

// MarshalJSON writes the totals as numbers with two decimals, like the slice percents.
func (c Chart) MarshalJSON() ([]byte, error) {
	type chart Chart
	return json.Marshal(struct {
		chart
		TotalIncome  json.Number `json:"total_income"`
		TotalExpense json.Number `json:"total_expense"`
	}{
		chart:        chart(c),
		TotalIncome:  jsonAmount(c.TotalIncome),
		TotalExpense: jsonAmount(c.TotalExpense),
	})
}

// PeriodSummary holds the income and expense totals of one period.
type PeriodSummary struct {
	Period  string
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// Net is income minus expense.
func (p PeriodSummary) Net() decimal.Decimal {
	return p.Income.Sub(p.Expense)
}

func (p PeriodSummary) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Period  string      `json:"period"`
		Income  json.Number `json:"income"`
		Expense json.Number `json:"expense"`
		Net     json.Number `json:"net"`
	}{
		Period:  p.Period,
		Income:  jsonAmount(p.Income),
		Expense: jsonAmount(p.Expense),
		Net:     jsonAmount(p.Net()),
	})
}

func jsonAmount(amt decimal.Decimal) json.Number {
	return json.Number(amt.StringFixed(2))
}
