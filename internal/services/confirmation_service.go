package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ledger-copilot/internal/models"
	"ledger-copilot/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrProposalNotFound   = repositories.ErrProposalNotFound
	ErrProposalNotPending = repositories.ErrProposalNotPending
)

type ConfirmInput struct {
	TenantID   uuid.UUID
	UserID     uuid.UUID
	ProposalID uuid.UUID
	Confirm    bool
}

type ExecutionResult struct {
	ExecutionID uuid.UUID
	Status      string
	Result      models.JSONBMap
}

// ConfirmationService applies a pending proposal at most once. Every call runs
// in a single database transaction and the proposed -> confirmed|rejected
// step is a conditional UPDATE, so concurrent callers see one winner.
type ConfirmationService struct {
	db            *gorm.DB
	proposalRepo  repositories.ProposalRepositoryInterface
	txnRepo       repositories.TransactionRepositoryInterface
	categoryRepo  repositories.CategoryRepositoryInterface
	executionRepo repositories.ActionExecutionRepositoryInterface
	auditLogger   AuditLoggerInterface
	auditService  AuditServiceInterface
	metrics       MetricsRecorderInterface
}

func NewConfirmationService(
	db *gorm.DB,
	proposalRepo repositories.ProposalRepositoryInterface,
	txnRepo repositories.TransactionRepositoryInterface,
	categoryRepo repositories.CategoryRepositoryInterface,
	executionRepo repositories.ActionExecutionRepositoryInterface,
	auditLogger AuditLoggerInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
) ConfirmationServiceInterface {
	return &ConfirmationService{
		db:            db,
		proposalRepo:  proposalRepo,
		txnRepo:       txnRepo,
		categoryRepo:  categoryRepo,
		executionRepo: executionRepo,
		auditLogger:   auditLogger,
		auditService:  auditService,
		metrics:       metrics,
	}
}

// confirmOutcome carries what the transaction decided out to the audit step,
// which runs only after commit.
type confirmOutcome struct {
	result       *ExecutionResult
	updatedCount int64
	missingIDs   []string
}

func (s *ConfirmationService) Confirm(ctx context.Context, input ConfirmInput) (*ExecutionResult, error) {
	start := time.Now()

	var outcome confirmOutcome
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if input.Confirm {
			outcome, err = s.execute(ctx, tx, input)
		} else {
			outcome, err = s.reject(ctx, tx, input)
		}
		return err
	})

	s.metrics.RecordProcessingTime("confirmation", time.Since(start))
	if err != nil {
		status := "error"
		if errors.Is(err, ErrProposalNotPending) {
			status = "not_pending"
		} else if errors.Is(err, ErrProposalNotFound) {
			status = "not_found"
		}
		s.metrics.IncrementCounter("confirmations_total", map[string]string{"status": status})
		return nil, err
	}

	s.metrics.IncrementCounter("confirmations_total", map[string]string{"status": outcome.result.Status})
	s.audit(ctx, input, outcome)

	return outcome.result, nil
}

func (s *ConfirmationService) reject(ctx context.Context, tx *gorm.DB, input ConfirmInput) (confirmOutcome, error) {
	proposals := s.proposalRepo.WithTx(tx)

	if _, err := proposals.GetByID(ctx, input.TenantID, input.ProposalID); err != nil {
		return confirmOutcome{}, err
	}

	if err := proposals.CompareAndSetStatus(ctx, input.TenantID, input.ProposalID,
		models.ProposalStatusProposed, models.ProposalStatusRejected, nil); err != nil {
		return confirmOutcome{}, err
	}

	execution, err := s.recordExecution(ctx, tx, input, models.ExecutionStatusRejected, models.JSONBMap{})
	if err != nil {
		return confirmOutcome{}, err
	}

	return confirmOutcome{result: &ExecutionResult{
		ExecutionID: execution.ID,
		Status:      models.ExecutionStatusRejected,
		Result:      models.JSONBMap{},
	}}, nil
}

func (s *ConfirmationService) execute(ctx context.Context, tx *gorm.DB, input ConfirmInput) (confirmOutcome, error) {
	proposals := s.proposalRepo.WithTx(tx)

	proposal, err := proposals.GetByID(ctx, input.TenantID, input.ProposalID)
	if err != nil {
		return confirmOutcome{}, err
	}

	if err := proposals.CompareAndSetStatus(ctx, input.TenantID, input.ProposalID,
		models.ProposalStatusProposed, models.ProposalStatusConfirmed, nil); err != nil {
		return confirmOutcome{}, err
	}

	action, err := proposal.Action()
	if err != nil {
		return s.fail(ctx, tx, input, models.JSONBMap{"error": err.Error()}, nil)
	}

	category, err := s.resolveCategory(ctx, tx, input.TenantID, action)
	if err != nil {
		if errors.Is(err, repositories.ErrCategoryNotFound) {
			return s.fail(ctx, tx, input, models.JSONBMap{
				"error":         "category no longer exists",
				"category_name": action.CategoryName,
			}, nil)
		}
		return confirmOutcome{}, err
	}

	ids, missing, err := s.resolveTransactions(ctx, tx, input.TenantID, action.TransactionIDs)
	if err != nil {
		return confirmOutcome{}, err
	}
	if len(missing) > 0 {
		return s.fail(ctx, tx, input, models.JSONBMap{
			"error":                   "referenced transactions no longer exist",
			"missing_transaction_ids": missing,
		}, missing)
	}

	updated, err := s.txnRepo.WithTx(tx).UpdateCategory(ctx, input.TenantID, ids, category.ID)
	if err != nil {
		return confirmOutcome{}, err
	}

	result := models.JSONBMap{
		"updated_count":   updated,
		"transaction_ids": action.TransactionIDs,
		"category_id":     category.ID.String(),
		"category_name":   category.Name,
	}

	if err := proposals.CompareAndSetStatus(ctx, input.TenantID, input.ProposalID,
		models.ProposalStatusConfirmed, models.ProposalStatusExecuted, result); err != nil {
		return confirmOutcome{}, err
	}

	execution, err := s.recordExecution(ctx, tx, input, models.ExecutionStatusExecuted, result)
	if err != nil {
		return confirmOutcome{}, err
	}

	return confirmOutcome{
		result: &ExecutionResult{
			ExecutionID: execution.ID,
			Status:      models.ExecutionStatusExecuted,
			Result:      result,
		},
		updatedCount: updated,
	}, nil
}

// fail moves a confirmed proposal to failed without touching any transaction.
func (s *ConfirmationService) fail(ctx context.Context, tx *gorm.DB, input ConfirmInput, result models.JSONBMap, missing []string) (confirmOutcome, error) {
	if err := s.proposalRepo.WithTx(tx).CompareAndSetStatus(ctx, input.TenantID, input.ProposalID,
		models.ProposalStatusConfirmed, models.ProposalStatusFailed, result); err != nil {
		return confirmOutcome{}, err
	}

	execution, err := s.recordExecution(ctx, tx, input, models.ExecutionStatusFailed, result)
	if err != nil {
		return confirmOutcome{}, err
	}

	return confirmOutcome{
		result: &ExecutionResult{
			ExecutionID: execution.ID,
			Status:      models.ExecutionStatusFailed,
			Result:      result,
		},
		missingIDs: missing,
	}, nil
}

func (s *ConfirmationService) resolveCategory(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, action *models.RecategorizeAction) (*models.Category, error) {
	categories := s.categoryRepo.WithTx(tx)

	if categoryID, err := uuid.Parse(action.CategoryID); err == nil {
		return categories.GetByID(ctx, tenantID, categoryID)
	}
	return categories.FindByName(ctx, tenantID, action.CategoryName)
}

// resolveTransactions re-reads the referenced rows inside the transaction and
// reports ids that no longer exist for the tenant.
func (s *ConfirmationService) resolveTransactions(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, rawIDs []string) ([]uuid.UUID, []string, error) {
	ids := make([]uuid.UUID, 0, len(rawIDs))
	var missing []string

	for _, raw := range rawIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			missing = append(missing, raw)
			continue
		}
		ids = append(ids, id)
	}

	found, err := s.txnRepo.WithTx(tx).FindByIDs(ctx, tenantID, ids)
	if err != nil {
		return nil, nil, err
	}

	present := make(map[uuid.UUID]struct{}, len(found))
	for _, t := range found {
		present[t.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := present[id]; !ok {
			missing = append(missing, id.String())
		}
	}

	return ids, missing, nil
}

func (s *ConfirmationService) recordExecution(ctx context.Context, tx *gorm.DB, input ConfirmInput, status string, result models.JSONBMap) (*models.ActionExecution, error) {
	execution := &models.ActionExecution{
		ProposalID: input.ProposalID,
		TenantID:   input.TenantID,
		ExecutedBy: input.UserID,
		Status:     status,
		Result:     result,
	}

	if err := s.executionRepo.WithTx(tx).Create(ctx, execution); err != nil {
		return nil, fmt.Errorf("failed to record execution: %w", err)
	}
	return execution, nil
}

func (s *ConfirmationService) audit(ctx context.Context, input ConfirmInput, outcome confirmOutcome) {
	entry := AuditEntry{
		TenantID:   &input.TenantID,
		UserID:     &input.UserID,
		Resource:   models.AuditResourceProposal,
		ResourceID: input.ProposalID.String(),
		Metadata: models.JSONBMap{
			"execution_id": outcome.result.ExecutionID.String(),
			"status":       outcome.result.Status,
		},
	}

	switch outcome.result.Status {
	case models.ExecutionStatusRejected:
		s.auditLogger.LogProposalRejected(ctx, input.ProposalID, input.TenantID, input.UserID)
		entry.Action = models.AuditActionProposalRejected
	case models.ExecutionStatusExecuted:
		s.auditLogger.LogProposalConfirmed(ctx, input.ProposalID, input.TenantID, input.UserID)
		s.auditLogger.LogProposalExecuted(ctx, input.ProposalID, input.TenantID, outcome.updatedCount)
		entry.Action = models.AuditActionProposalExecuted
		entry.Metadata["updated_count"] = outcome.updatedCount
	case models.ExecutionStatusFailed:
		s.auditLogger.LogProposalConfirmed(ctx, input.ProposalID, input.TenantID, input.UserID)
		s.auditLogger.LogProposalFailed(ctx, input.ProposalID, input.TenantID, outcome.missingIDs)
		entry.Action = models.AuditActionProposalFailed
		entry.Metadata["result"] = outcome.result.Result
	}

	s.auditService.Record(ctx, entry)
}
