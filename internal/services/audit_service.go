package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ledger-copilot/internal/models"
	"ledger-copilot/internal/repositories"

	"github.com/google/uuid"
)

const (
	DefaultAuditPageSize = 50
	MaxAuditPageSize     = 200
)

var (
	ErrInvalidAuditLog = errors.New("invalid audit log")
)

var validAuditActions = map[string]bool{
	models.AuditActionLogin:             true,
	models.AuditActionFailedLogin:       true,
	models.AuditActionProposalCreated:   true,
	models.AuditActionProposalRefused:   true,
	models.AuditActionProposalConfirmed: true,
	models.AuditActionProposalRejected:  true,
	models.AuditActionProposalExecuted:  true,
	models.AuditActionProposalFailed:    true,
	models.AuditActionWebhookIngested:   true,
	models.AuditActionWebhookDeduped:    true,
	models.AuditActionDemoBootstrap:     true,
	models.AuditActionDemoReset:         true,
}

// AuditEntry describes one audit trail row
type AuditEntry struct {
	TenantID   *uuid.UUID
	UserID     *uuid.UUID
	Action     string
	Resource   string
	ResourceID string
	IPAddress  string
	Metadata   models.JSONBMap
}

// AuditService persists the audit trail. Writes are best effort: a failed
// write is logged and never fails the operation being audited.
type AuditService struct {
	repo   repositories.AuditLogRepositoryInterface
	logger *slog.Logger
}

func NewAuditService(repo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	return &AuditService{
		repo:   repo,
		logger: logger,
	}
}

// ValidateActivityType validates that the activity type is one of the allowed types
func ValidateActivityType(action string) error {
	if !validAuditActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

func (s *AuditService) Record(ctx context.Context, entry AuditEntry) {
	if err := ValidateActivityType(entry.Action); err != nil {
		s.logger.WarnContext(ctx, "refusing to record audit entry", "error", err)
		return
	}

	log := &models.AuditLog{
		TenantID:   entry.TenantID,
		UserID:     entry.UserID,
		Action:     entry.Action,
		Resource:   entry.Resource,
		ResourceID: entry.ResourceID,
		IPAddress:  entry.IPAddress,
		Metadata:   entry.Metadata,
	}
	if correlationID := getCorrelationID(ctx); correlationID != "" {
		log.SetMetadata("correlation_id", correlationID)
	}

	if err := s.repo.Create(ctx, log); err != nil {
		s.logger.WarnContext(ctx, "failed to persist audit log",
			"error", err,
			"action", entry.Action,
			"resource_id", entry.ResourceID)
	}
}

// GetTenantActivity returns a page of the tenant's audit trail, newest first
func (s *AuditService) GetTenantActivity(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if tenantID == uuid.Nil {
		return nil, 0, ErrInvalidAuditLog
	}

	if limit <= 0 {
		limit = DefaultAuditPageSize
	}
	if limit > MaxAuditPageSize {
		limit = MaxAuditPageSize
	}
	if offset < 0 {
		offset = 0
	}

	logs, total, err := s.repo.GetByTenant(ctx, tenantID, offset, limit)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get tenant activity: %w", err)
	}
	return logs, total, nil
}
