package gateway

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/rs/zerolog"

	"finance-ledger/internal/domain"
)

// csvHeader is the column layout of a ledger file.
var csvHeader = []string{"Date", "Category", "Amount", "Transaction Type"}

// CSVTransactionRepository implements the TransactionRepository interface for CSV files.
type CSVTransactionRepository struct {
	logger   zerolog.Logger
	currency string
}

// NewCSVTransactionRepository creates a new repository instance. Amounts are written
// behind the given currency symbol.
func NewCSVTransactionRepository(logger zerolog.Logger, currency string) *CSVTransactionRepository {
	return &CSVTransactionRepository{
		logger:   logger.With().Str("component", "csv_repository").Logger(),
		currency: currency,
	}
}

// Load reads and parses a ledger CSV file, sorted by date.
// Rows with an unparseable date are skipped; any other malformed row fails the load.
func (r *CSVTransactionRepository) Load(ctx context.Context, path string) ([]domain.Transaction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open transaction file %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(csvHeader)
	reader.TrimLeadingSpace = true
	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, fmt.Errorf("failed to read header from %s: %w", path, err)
	}

	var transactions []domain.Transaction
	for row := 2; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading record from %s: %w", path, err)
		}

		if _, err := domain.ParseDate(record[0]); err != nil {
			r.logger.Warn().Str("file", path).Int("row", row).Str("date", record[0]).Msg("skipping row with invalid date")
			continue
		}

		tx, err := domain.NewTransaction(record[0], record[1], record[2], record[3])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, row, err)
		}
		transactions = append(transactions, tx)
	}

	sort.SliceStable(transactions, func(i, j int) bool {
		return transactions[i].Date.Before(transactions[j].Date)
	})

	r.logger.Debug().Str("file", path).Int("count", len(transactions)).Msg("loaded transactions")
	return transactions, nil
}

// Save writes the transactions to path in the given order, replacing the file.
func (r *CSVTransactionRepository) Save(ctx context.Context, path string, transactions []domain.Transaction) error {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)
	if err := writer.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, tx := range transactions {
		record := []string{
			tx.Date.Format(domain.DateLayout),
			tx.Category,
			domain.FormatAmount(r.currency, tx.Amount),
			string(tx.Kind),
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush records: %w", err)
	}

	if err := atomicWrite(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write transaction file %s: %w", path, err)
	}

	r.logger.Debug().Str("file", path).Int("count", len(transactions)).Msg("saved transactions")
	return nil
}

// atomicWrite writes data next to path and renames it into place.
func atomicWrite(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Join(err, os.Remove(tmp.Name()))
	}
	return nil
}
