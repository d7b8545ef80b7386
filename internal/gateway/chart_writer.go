package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"finance-ledger/internal/domain"
)

// ChartWriter is a rendering sink for a projected chart.
type ChartWriter interface {
	Render(ctx context.Context, chart domain.Chart) error
}

// SummaryWriter is a rendering sink for per-period income and expense totals.
type SummaryWriter interface {
	RenderSummary(ctx context.Context, mode domain.PeriodMode, rows []domain.PeriodSummary) error
}

// JSONChartWriter renders the chart as indented JSON.
type JSONChartWriter struct {
	w io.Writer
}

func NewJSONChartWriter(w io.Writer) *JSONChartWriter {
	return &JSONChartWriter{w: w}
}

func (cw *JSONChartWriter) Render(ctx context.Context, chart domain.Chart) error {
	output, err := json.MarshalIndent(chart, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode chart: %w", err)
	}
	if _, err := fmt.Fprintln(cw.w, string(output)); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

func (cw *JSONChartWriter) RenderSummary(ctx context.Context, mode domain.PeriodMode, rows []domain.PeriodSummary) error {
	if rows == nil {
		rows = []domain.PeriodSummary{}
	}
	output, err := json.MarshalIndent(struct {
		Mode    domain.PeriodMode      `json:"mode"`
		Periods []domain.PeriodSummary `json:"periods"`
	}{Mode: mode, Periods: rows}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode summary: %w", err)
	}
	if _, err := fmt.Fprintln(cw.w, string(output)); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

// TextChartWriter renders the title followed by one aligned row per slice.
type TextChartWriter struct {
	w io.Writer
}

func NewTextChartWriter(w io.Writer) *TextChartWriter {
	return &TextChartWriter{w: w}
}

func (cw *TextChartWriter) Render(ctx context.Context, chart domain.Chart) error {
	if _, err := fmt.Fprintf(cw.w, "%s\n\n", chart.Title); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	if len(chart.Slices) == 0 {
		if _, err := fmt.Fprintln(cw.w, "(no transactions)"); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
		return nil
	}

	// tabwriter buffers until Flush, so write errors surface there.
	tw := tabwriter.NewWriter(cw.w, 0, 0, 2, ' ', 0)
	for _, s := range chart.Slices {
		if _, err := fmt.Fprintf(tw, "%s\t%.1f%%\t%s\n", s.Label, s.Percent, s.Color); err != nil {
			return fmt.Errorf("failed to write chart: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

// RenderSummary prints one aligned row per period with income, expense and net.
func (cw *TextChartWriter) RenderSummary(ctx context.Context, mode domain.PeriodMode, rows []domain.PeriodSummary) error {
	if len(rows) == 0 {
		if _, err := fmt.Fprintln(cw.w, "(no transactions)"); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(cw.w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintf(tw, "%s\tIncome\tExpense\tNet\t\n", mode); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	for _, r := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n",
			r.Period, r.Income.StringFixed(2), r.Expense.StringFixed(2), r.Net().StringFixed(2)); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}
	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}
