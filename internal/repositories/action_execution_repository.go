package repositories

import (
	"context"
	"errors"
	"fmt"

	"ledger-copilot/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActionExecutionRepository handles database operations for execution records
type ActionExecutionRepository struct {
	db *gorm.DB
}

// NewActionExecutionRepository creates a new action execution repository
func NewActionExecutionRepository(db *gorm.DB) ActionExecutionRepositoryInterface {
	return &ActionExecutionRepository{db: db}
}

func (r *ActionExecutionRepository) WithTx(tx *gorm.DB) ActionExecutionRepositoryInterface {
	return &ActionExecutionRepository{db: tx}
}

func (r *ActionExecutionRepository) Create(ctx context.Context, execution *models.ActionExecution) error {
	if execution == nil {
		return errors.New("action execution cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(execution).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrProposalNotPending
		}
		return fmt.Errorf("failed to create action execution: %w: %w", ErrPersistence, err)
	}
	return nil
}

func (r *ActionExecutionRepository) GetByProposalID(ctx context.Context, tenantID, proposalID uuid.UUID) (*models.ActionExecution, error) {
	var execution models.ActionExecution
	err := r.db.WithContext(ctx).
		Where("proposal_id = ? AND tenant_id = ?", proposalID, tenantID).
		First(&execution).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrExecutionNotFound
		}
		return nil, fmt.Errorf("failed to get action execution: %w: %w", ErrPersistence, err)
	}
	return &execution, nil
}

func (r *ActionExecutionRepository) DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&models.ActionExecution{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete action executions: %w: %w", ErrPersistence, result.Error)
	}
	return result.RowsAffected, nil
}
