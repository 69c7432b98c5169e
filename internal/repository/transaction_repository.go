package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"commerce-admin/internal/domain"

	"go.uber.org/zap"
)

// TransactionRepository defines the interface for transaction data access.
// Transactions are seeded once and read-only afterwards.
type TransactionRepository interface {
	List(ctx context.Context) ([]domain.Transaction, error)
	Replace(ctx context.Context, transactions []domain.Transaction) error
}

type transactionRepository struct {
	collections CollectionRepository
	logger      *zap.Logger
}

// NewTransactionRepository creates a new instance of TransactionRepository
func NewTransactionRepository(collections CollectionRepository, logger *zap.Logger) TransactionRepository {
	return &transactionRepository{collections: collections, logger: logger}
}

func (r *transactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	raw, err := r.collections.Get(ctx, KeyTransactions)
	if err != nil {
		if err == ErrCollectionNotFound {
			return []domain.Transaction{}, nil
		}
		return nil, err
	}

	var transactions []domain.Transaction
	if err := json.Unmarshal(raw, &transactions); err != nil {
		r.logger.Warn("Failed to parse stored transactions, falling back to empty",
			zap.Error(err))
		return []domain.Transaction{}, nil
	}

	return transactions, nil
}

func (r *transactionRepository) Replace(ctx context.Context, transactions []domain.Transaction) error {
	raw, err := json.Marshal(transactions)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	return r.collections.Put(ctx, KeyTransactions, raw)
}
