package gateway

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finance-ledger/internal/domain"
)

func TestCSVTransactionRepository_Load(t *testing.T) {
	tests := []struct {
		name     string
		lines    []string
		expected []domain.Transaction
		wantErr  error
	}{
		{
			name: "valid transactions sorted by date",
			lines: []string{
				"Date,Category,Amount,Transaction Type",
				"2024-01-10,Salary,$100.00,Income",
				"2024-01-05,Food,$10.00,Expense",
				`2024-01-07,Rent,"$1,200.50",Expense`,
			},
			expected: []domain.Transaction{
				{Date: mustParseDate("2024-01-05"), Category: "Food", Amount: decimal.RequireFromString("10"), Kind: domain.Expense},
				{Date: mustParseDate("2024-01-07"), Category: "Rent", Amount: decimal.RequireFromString("1200.5"), Kind: domain.Expense},
				{Date: mustParseDate("2024-01-10"), Category: "Salary", Amount: decimal.RequireFromString("100"), Kind: domain.Income},
			},
		},
		{
			name: "empty file with header only",
			lines: []string{
				"Date,Category,Amount,Transaction Type",
			},
			expected: nil,
		},
		{
			name: "rows with invalid dates are skipped",
			lines: []string{
				"Date,Category,Amount,Transaction Type",
				"not-a-date,Food,$10.00,Expense",
				"2024-01-05,Food,$12.00,Expense",
				"05/01/2024,Food,$10.00,Expense",
			},
			expected: []domain.Transaction{
				{Date: mustParseDate("2024-01-05"), Category: "Food", Amount: decimal.RequireFromString("12"), Kind: domain.Expense},
			},
		},
		{
			name: "invalid amount format",
			lines: []string{
				"Date,Category,Amount,Transaction Type",
				"2024-01-05,Food,invalid_amount,Expense",
			},
			wantErr: domain.ErrInvalidAmount,
		},
		{
			name: "invalid transaction type",
			lines: []string{
				"Date,Category,Amount,Transaction Type",
				"2024-01-05,Food,$1.00,Refund",
			},
			wantErr: domain.ErrInvalidKind,
		},
		{
			name: "empty category",
			lines: []string{
				"Date,Category,Amount,Transaction Type",
				"2024-01-05,,$1.00,Expense",
			},
			wantErr: domain.ErrEmptyCategory,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeLines(t, tt.lines)

			repo := NewCSVTransactionRepository(zerolog.Nop(), "$")
			got, err := repo.Load(context.Background(), path)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			require.Len(t, got, len(tt.expected))
			for i := range tt.expected {
				assert.True(t, got[i].SameValue(tt.expected[i]), "transaction[%d] = %+v, want %+v", i, got[i], tt.expected[i])
				assert.NotEmpty(t, got[i].ID)
			}
		})
	}
}

func TestCSVTransactionRepository_Load_FileErrors(t *testing.T) {
	repo := NewCSVTransactionRepository(zerolog.Nop(), "$")
	ctx := context.Background()

	t.Run("file not found", func(t *testing.T) {
		_, err := repo.Load(ctx, filepath.Join(t.TempDir(), "nonexistent_file.csv"))
		assert.Error(t, err)
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("file with no header", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "empty.csv")
		require.NoError(t, os.WriteFile(path, nil, 0o644))

		_, err := repo.Load(ctx, path)
		assert.Error(t, err)
	})

	t.Run("wrong column count", func(t *testing.T) {
		path := writeLines(t, []string{
			"Date,Category,Amount,Transaction Type",
			"2024-01-05,Food,$1.00",
		})

		_, err := repo.Load(ctx, path)
		assert.Error(t, err)
	})
}

func TestCSVTransactionRepository_SaveAndLoad(t *testing.T) {
	repo := NewCSVTransactionRepository(zerolog.Nop(), "$")
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "data.csv")

	txs := []domain.Transaction{
		mustTransaction(t, "2024-01-05", "Food, drinks", "10.5", "Expense"),
		mustTransaction(t, "2024-01-10", "Salary", "2500", "Income"),
	}

	require.NoError(t, repo.Save(ctx, path, txs))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"Date,Category,Amount,Transaction Type",
		`2024-01-05,"Food, drinks",$10.50,Expense`,
		"2024-01-10,Salary,$2500.00,Income",
	}, "\n")+"\n", string(raw))

	got, err := repo.Load(ctx, path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range txs {
		assert.True(t, got[i].SameValue(txs[i]))
	}

	// Last write wins.
	require.NoError(t, repo.Save(ctx, path, txs[:1]))
	got, err = repo.Load(ctx, path)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	leftovers, err := filepath.Glob(filepath.Join(filepath.Dir(path), "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestCSVTransactionRepository_SaveEmpty(t *testing.T) {
	repo := NewCSVTransactionRepository(zerolog.Nop(), "€")
	path := filepath.Join(t.TempDir(), "data.csv")

	require.NoError(t, repo.Save(context.Background(), path, nil))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Date,Category,Amount,Transaction Type\n", string(raw))
}

// Helper functions

func writeLines(t *testing.T, lines []string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ledger.csv")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644))
	return path
}

func mustParseDate(dateStr string) time.Time {
	t, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		panic(err)
	}
	return t
}

func mustTransaction(t *testing.T, date, category, amount, kind string) domain.Transaction {
	t.Helper()
	tx, err := domain.NewTransaction(date, category, amount, kind)
	require.NoError(t, err)
	return tx
}

// Benchmark tests

func BenchmarkLoad(b *testing.B) {
	lines := []string{"Date,Category,Amount,Transaction Type"}
	for i := 0; i < 1000; i++ {
		lines = append(lines, "2024-01-05,Food,$10.00,Expense")
	}

	path := filepath.Join(b.TempDir(), "benchmark.csv")
	if err := os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0o644); err != nil {
		b.Fatalf("Failed to create temp file: %v", err)
	}

	repo := NewCSVTransactionRepository(zerolog.Nop(), "$")
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := repo.Load(ctx, path); err != nil {
			b.Fatalf("Error in benchmark: %v", err)
		}
	}
}
