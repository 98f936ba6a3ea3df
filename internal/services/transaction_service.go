package services

import (
	"context"
	"errors"
	"fmt"

	"ledger-copilot/internal/models"
	"ledger-copilot/internal/repositories"

	"github.com/google/uuid"
)

// RecentTransactionLimit is how many transactions the listing endpoint returns
const RecentTransactionLimit = 100

var ErrInvalidDateRange = errors.New("start date must not be after end date")

type transactionService struct {
	txnRepo repositories.TransactionRepositoryInterface
}

func NewTransactionService(txnRepo repositories.TransactionRepositoryInterface) TransactionServiceInterface {
	return &transactionService{txnRepo: txnRepo}
}

// ListRecent returns the tenant's latest transactions with their category loaded
func (s *transactionService) ListRecent(ctx context.Context, tenantID uuid.UUID) ([]models.Transaction, error) {
	transactions, _, err := s.txnRepo.GetWithFilters(ctx, models.TransactionFilters{
		TenantID: tenantID,
		Limit:    RecentTransactionLimit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, nil
}

func (s *transactionService) Search(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	if filters.StartDate != nil && filters.EndDate != nil && filters.StartDate.After(*filters.EndDate) {
		return nil, 0, ErrInvalidDateRange
	}

	transactions, total, err := s.txnRepo.GetWithFilters(ctx, filters)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to search transactions: %w", err)
	}
	if transactions == nil {
		transactions = []models.Transaction{}
	}
	return transactions, total, nil
}
