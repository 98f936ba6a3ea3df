package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ledger-copilot/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TransactionRepository handles database operations for tenant transactions
type TransactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) WithTx(tx *gorm.DB) TransactionRepositoryInterface {
	return &TransactionRepository{db: tx}
}

func (r *TransactionRepository) Create(ctx context.Context, transaction *models.Transaction) error {
	if transaction == nil {
		return errors.New("transaction cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w: %w", ErrPersistence, err)
	}
	return nil
}

// InsertIgnoringConflicts inserts transactions keyed by (tenant_id,
// provider_transaction_id). Rows that already exist are left untouched.
// It returns the number of rows actually inserted.
func (r *TransactionRepository) InsertIgnoringConflicts(ctx context.Context, transactions []models.Transaction) (int64, error) {
	if len(transactions) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "provider_transaction_id"}},
			DoNothing: true,
		}).
		Create(&transactions)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to insert transactions: %w: %w", ErrPersistence, result.Error)
	}

	return result.RowsAffected, nil
}

// GetRecentByTenant returns the most recently posted transactions for a tenant.
func (r *TransactionRepository) GetRecentByTenant(ctx context.Context, tenantID uuid.UUID, limit int) ([]models.Transaction, error) {
	var transactions []models.Transaction

	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("posted_date DESC, created_at DESC").
		Limit(limit).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get recent transactions: %w: %w", ErrPersistence, err)
	}

	return transactions, nil
}

func (r *TransactionRepository) GetWithFilters(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error) {
	var transactions []models.Transaction
	var total int64

	filters.Normalize()

	query := r.db.WithContext(ctx).Model(&models.Transaction{}).Where("tenant_id = ?", filters.TenantID)

	if filters.StartDate != nil {
		query = query.Where("posted_date >= ?", *filters.StartDate)
	}
	if filters.EndDate != nil {
		query = query.Where("posted_date <= ?", *filters.EndDate)
	}
	if filters.Uncategorized {
		query = query.Where("category_id IS NULL")
	} else if filters.CategoryID != nil {
		query = query.Where("category_id = ?", *filters.CategoryID)
	}
	if filters.Search != "" {
		query = query.Where("LOWER(name) LIKE LOWER(?)", "%"+filters.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w: %w", ErrPersistence, err)
	}

	if err := query.
		Preload("Category").
		Order("posted_date DESC, created_at DESC").
		Offset(filters.Offset).
		Limit(filters.Limit).
		Find(&transactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get transactions: %w: %w", ErrPersistence, err)
	}

	return transactions, total, nil
}

// FindByIDs returns the subset of ids that exist for the tenant.
func (r *TransactionRepository) FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]models.Transaction, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var transactions []models.Transaction
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to find transactions: %w: %w", ErrPersistence, err)
	}

	return transactions, nil
}

// UpdateCategory assigns a category to the given tenant transactions. Only the
// category assignment of a transaction is ever mutated.
func (r *TransactionRepository) UpdateCategory(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID, categoryID uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).Model(&models.Transaction{}).
		Where("tenant_id = ? AND id IN ?", tenantID, ids).
		Updates(map[string]interface{}{
			"category_id": categoryID,
			"updated_at":  time.Now().UTC(),
		})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to update transaction categories: %w: %w", ErrPersistence, result.Error)
	}

	return result.RowsAffected, nil
}

func (r *TransactionRepository) DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&models.Transaction{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete transactions: %w: %w", ErrPersistence, result.Error)
	}
	return result.RowsAffected, nil
}
