package usecase

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"

	"github.com/rs/zerolog"

	"finance-ledger/internal/aggregation"
	"finance-ledger/internal/domain"
)

var ErrTransactionNotFound = errors.New("transaction not found")

// Settings configures a LedgerUseCase.
type Settings struct {
	// Path is the CSV file backing the ledger.
	Path     string
	Currency string
	Palette  aggregation.Palette
}

// LedgerUseCase holds the session's ordered record set and keeps the backing file in sync.
type LedgerUseCase struct {
	repo     TransactionRepository
	settings Settings
	logger   zerolog.Logger
	entries  []domain.Transaction
}

// NewLedgerUseCase creates a new instance of the usecase.
func NewLedgerUseCase(repo TransactionRepository, settings Settings, logger zerolog.Logger) *LedgerUseCase {
	return &LedgerUseCase{
		repo:     repo,
		settings: settings,
		logger:   logger.With().Str("component", "ledger").Logger(),
	}
}

// Open loads the backing file. A missing file starts an empty ledger.
func (uc *LedgerUseCase) Open(ctx context.Context) error {
	entries, err := uc.repo.Load(ctx, uc.settings.Path)
	if errors.Is(err, fs.ErrNotExist) {
		uc.logger.Warn().Str("file", uc.settings.Path).Msg("ledger file does not exist, starting empty")
		uc.entries = nil
		return nil
	}
	if err != nil {
		return fmt.Errorf("could not open ledger: %w", err)
	}

	uc.entries = entries
	uc.logger.Info().Str("file", uc.settings.Path).Int("count", len(entries)).Msg("ledger opened")
	return nil
}

// Entries returns a copy of the current records in ledger order.
func (uc *LedgerUseCase) Entries() []domain.Transaction {
	return append([]domain.Transaction(nil), uc.entries...)
}

// Add appends a validated record and persists the ledger.
// The session is left unchanged when the save fails.
func (uc *LedgerUseCase) Add(ctx context.Context, tx domain.Transaction) error {
	next := append(uc.Entries(), tx)
	if err := uc.save(ctx, next); err != nil {
		return err
	}
	uc.entries = next

	uc.logger.Info().Str("date", tx.Date.Format(domain.DateLayout)).Str("category", tx.Category).
		Str("amount", tx.Amount.StringFixed(2)).Str("type", string(tx.Kind)).Msg("transaction added")
	return nil
}

// Delete removes the first record matching tx and persists the ledger.
// A record with the same ID wins over one that merely has the same values.
func (uc *LedgerUseCase) Delete(ctx context.Context, tx domain.Transaction) error {
	idx := uc.find(tx)
	if idx < 0 {
		return fmt.Errorf("%w: %s %s %s %s", ErrTransactionNotFound,
			tx.Date.Format(domain.DateLayout), tx.Category, tx.Amount.StringFixed(2), tx.Kind)
	}

	next := append(uc.Entries()[:idx], uc.entries[idx+1:]...)
	if err := uc.save(ctx, next); err != nil {
		return err
	}
	uc.entries = next

	uc.logger.Info().Str("category", tx.Category).Msg("transaction deleted")
	return nil
}

// Import replaces every record with the contents of another ledger file.
func (uc *LedgerUseCase) Import(ctx context.Context, path string) error {
	entries, err := uc.repo.Load(ctx, path)
	if err != nil {
		return fmt.Errorf("could not import %s: %w", path, err)
	}

	if err := uc.save(ctx, entries); err != nil {
		return err
	}
	uc.entries = entries

	uc.logger.Info().Str("from", path).Int("count", len(entries)).Msg("ledger imported")
	return nil
}

// Export writes the records, sorted by date, to another file.
func (uc *LedgerUseCase) Export(ctx context.Context, path string) error {
	sorted := uc.Entries()
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	if err := uc.repo.Save(ctx, path, sorted); err != nil {
		return fmt.Errorf("could not export to %s: %w", path, err)
	}

	uc.logger.Info().Str("to", path).Int("count", len(sorted)).Msg("ledger exported")
	return nil
}

// Chart recomputes the pie chart for the current records.
func (uc *LedgerUseCase) Chart(mode domain.PeriodMode) domain.Chart {
	chart := aggregation.BuildChart(uc.entries, mode, uc.settings.Palette, uc.settings.Currency)

	uc.logger.Debug().Str("mode", string(mode)).Int("records", len(uc.entries)).
		Int("slices", len(chart.Slices)).Msg("chart computed")
	return chart
}

// Summary totals income and expense for each period of the current records.
func (uc *LedgerUseCase) Summary(mode domain.PeriodMode) []domain.PeriodSummary {
	rows := aggregation.Summarize(uc.entries, mode)

	uc.logger.Debug().Str("mode", string(mode)).Int("records", len(uc.entries)).
		Int("periods", len(rows)).Msg("summary computed")
	return rows
}

func (uc *LedgerUseCase) find(tx domain.Transaction) int {
	if tx.ID != "" {
		for i, e := range uc.entries {
			if e.ID == tx.ID {
				return i
			}
		}
	}
	for i, e := range uc.entries {
		if e.SameValue(tx) {
			return i
		}
	}
	return -1
}

func (uc *LedgerUseCase) save(ctx context.Context, entries []domain.Transaction) error {
	if err := uc.repo.Save(ctx, uc.settings.Path, entries); err != nil {
		return fmt.Errorf("could not save ledger: %w", err)
	}
	return nil
}
