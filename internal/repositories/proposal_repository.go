package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ledger-copilot/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const DefaultProposalListLimit = 50

// ProposalRepository handles database operations for proposals
type ProposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new proposal repository
func NewProposalRepository(db *gorm.DB) ProposalRepositoryInterface {
	return &ProposalRepository{db: db}
}

func (r *ProposalRepository) WithTx(tx *gorm.DB) ProposalRepositoryInterface {
	return &ProposalRepository{db: tx}
}

// Create persists a new proposal. The status is always proposed.
func (r *ProposalRepository) Create(ctx context.Context, proposal *models.Proposal) error {
	if proposal == nil {
		return errors.New("proposal cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(proposal).Error; err != nil {
		return fmt.Errorf("failed to create proposal: %w: %w", ErrPersistence, err)
	}
	return nil
}

// GetByID loads a proposal for the tenant. A proposal owned by another
// tenant is reported as not found.
func (r *ProposalRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&proposal).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w: %w", ErrPersistence, err)
	}
	return &proposal, nil
}

// CompareAndSetStatus moves a proposal from one status to another in a single
// conditional UPDATE. When the row is not in the expected status nothing is
// written and ErrProposalNotPending is returned, so concurrent callers racing
// on the same proposal observe exactly one winner.
func (r *ProposalRepository) CompareAndSetStatus(ctx context.Context, tenantID, id uuid.UUID, from, to string, result models.JSONBMap) error {
	if !models.CanTransitionProposal(from, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
	}

	updates := map[string]interface{}{
		"status":     to,
		"updated_at": time.Now().UTC(),
	}
	if result != nil {
		updates["result"] = result
	}

	res := r.db.WithContext(ctx).Model(&models.Proposal{}).
		Where("id = ? AND tenant_id = ? AND status = ?", id, tenantID, from).
		Updates(updates)
	if res.Error != nil {
		return fmt.Errorf("failed to update proposal status: %w: %w", ErrPersistence, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrProposalNotPending
	}

	return nil
}

func (r *ProposalRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID, limit int) ([]models.Proposal, error) {
	if limit <= 0 || limit > DefaultProposalListLimit {
		limit = DefaultProposalListLimit
	}

	var proposals []models.Proposal
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("created_at DESC").
		Limit(limit).
		Find(&proposals).Error; err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w: %w", ErrPersistence, err)
	}
	return proposals, nil
}

func (r *ProposalRepository) DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&models.Proposal{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete proposals: %w: %w", ErrPersistence, result.Error)
	}
	return result.RowsAffected, nil
}
