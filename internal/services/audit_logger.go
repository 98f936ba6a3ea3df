package services

import (
	"context"
	"log/slog"
	"time"

	"ledger-copilot/internal/models"

	"github.com/google/uuid"
)

type contextKey string

const correlationIDKey contextKey = "correlation_id"

// WithCorrelationID attaches the request trace id to ctx for audit events.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return context.WithValue(ctx, correlationIDKey, correlationID)
}

type AuditLogger struct {
	logger *slog.Logger
}

func NewAuditLogger(logger *slog.Logger) AuditLoggerInterface {
	return &AuditLogger{
		logger: logger,
	}
}

func (al *AuditLogger) LogProposalCreated(ctx context.Context, proposal *models.Proposal) {
	al.logger.InfoContext(ctx, "proposal created",
		slog.String("event_type", models.AuditActionProposalCreated),
		slog.String("proposal_id", proposal.ID.String()),
		slog.String("tenant_id", proposal.TenantID.String()),
		slog.String("user_id", proposal.UserID.String()),
		slog.String("provider", proposal.Provider),
		slog.String("model", proposal.Model),
		slog.String("request_id", proposal.RequestID),
		slog.Int("transaction_count", len(proposal.ReferencedTransactionIDs)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogProposalRejectedByValidator(ctx context.Context, tenantID, userID uuid.UUID, provider string, reason error) {
	al.logger.WarnContext(ctx, "proposal rejected by validator",
		slog.String("event_type", models.AuditActionProposalRefused),
		slog.String("tenant_id", tenantID.String()),
		slog.String("user_id", userID.String()),
		slog.String("provider", provider),
		slog.String("reason", reason.Error()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogProposalConfirmed(ctx context.Context, proposalID, tenantID, userID uuid.UUID) {
	al.logger.InfoContext(ctx, "proposal confirmed",
		slog.String("event_type", models.AuditActionProposalConfirmed),
		slog.String("proposal_id", proposalID.String()),
		slog.String("tenant_id", tenantID.String()),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogProposalRejected(ctx context.Context, proposalID, tenantID, userID uuid.UUID) {
	al.logger.InfoContext(ctx, "proposal rejected",
		slog.String("event_type", models.AuditActionProposalRejected),
		slog.String("proposal_id", proposalID.String()),
		slog.String("tenant_id", tenantID.String()),
		slog.String("user_id", userID.String()),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogProposalExecuted(ctx context.Context, proposalID, tenantID uuid.UUID, updatedCount int64) {
	al.logger.InfoContext(ctx, "proposal executed",
		slog.String("event_type", models.AuditActionProposalExecuted),
		slog.String("proposal_id", proposalID.String()),
		slog.String("tenant_id", tenantID.String()),
		slog.Int64("updated_count", updatedCount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogProposalFailed(ctx context.Context, proposalID, tenantID uuid.UUID, missingIDs []string) {
	al.logger.WarnContext(ctx, "proposal failed",
		slog.String("event_type", models.AuditActionProposalFailed),
		slog.String("proposal_id", proposalID.String()),
		slog.String("tenant_id", tenantID.String()),
		slog.Any("missing_transaction_ids", missingIDs),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogWebhookIngested(ctx context.Context, tenantID uuid.UUID, idempotencyKey string, factCount int, insertedCount int64) {
	al.logger.InfoContext(ctx, "webhook ingested",
		slog.String("event_type", models.AuditActionWebhookIngested),
		slog.String("tenant_id", tenantID.String()),
		slog.String("idempotency_key", idempotencyKey),
		slog.Int("fact_count", factCount),
		slog.Int64("inserted_count", insertedCount),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

func (al *AuditLogger) LogWebhookDeduped(ctx context.Context, tenantID uuid.UUID, idempotencyKey string) {
	al.logger.InfoContext(ctx, "webhook deduped",
		slog.String("event_type", models.AuditActionWebhookDeduped),
		slog.String("tenant_id", tenantID.String()),
		slog.String("idempotency_key", idempotencyKey),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", getCorrelationID(ctx)),
	)
}

// CorrelationIDFromContext returns the id attached by WithCorrelationID, or ""
func CorrelationIDFromContext(ctx context.Context) string {
	return getCorrelationID(ctx)
}

func getCorrelationID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	if correlationID, ok := ctx.Value(correlationIDKey).(string); ok {
		return correlationID
	}

	return ""
}
