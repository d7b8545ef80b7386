package usecase

import (
	"context"

	"finance-ledger/internal/domain"
)

// TransactionRepository defines the interface for loading and storing the ledger.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go TransactionRepository
type TransactionRepository interface {
	Load(ctx context.Context, path string) ([]domain.Transaction, error)
	Save(ctx context.Context, path string, transactions []domain.Transaction) error
}
