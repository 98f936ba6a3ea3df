package services

import (
	"context"
	"time"

	"ledger-copilot/internal/dto"
	"ledger-copilot/internal/llm"
	"ledger-copilot/internal/models"

	"github.com/google/uuid"
)

// AuditLoggerInterface emits structured audit events to the application log
type AuditLoggerInterface interface {
	LogProposalCreated(ctx context.Context, proposal *models.Proposal)
	LogProposalRejectedByValidator(ctx context.Context, tenantID, userID uuid.UUID, provider string, reason error)
	LogProposalConfirmed(ctx context.Context, proposalID, tenantID, userID uuid.UUID)
	LogProposalRejected(ctx context.Context, proposalID, tenantID, userID uuid.UUID)
	LogProposalExecuted(ctx context.Context, proposalID, tenantID uuid.UUID, updatedCount int64)
	LogProposalFailed(ctx context.Context, proposalID, tenantID uuid.UUID, missingIDs []string)
	LogWebhookIngested(ctx context.Context, tenantID uuid.UUID, idempotencyKey string, factCount int, insertedCount int64)
	LogWebhookDeduped(ctx context.Context, tenantID uuid.UUID, idempotencyKey string)
}

// AuditServiceInterface persists audit trail rows
type AuditServiceInterface interface {
	Record(ctx context.Context, entry AuditEntry)
	GetTenantActivity(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
}

// MetricsRecorderInterface defines the contract for recording metrics
type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// TokenServiceInterface defines the contract for JWT token operations
type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
}

// PasswordServiceInterface defines the contract for password hashing
type PasswordServiceInterface interface {
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
}

// AuthServiceInterface defines the contract for authentication operations
type AuthServiceInterface interface {
	Login(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.TokenResponse, error)
}

// GroundingServiceInterface builds the tenant-scoped context a provider is shown
type GroundingServiceInterface interface {
	Build(ctx context.Context, tenantID uuid.UUID) (*GroundingContext, error)
}

// ProposalValidatorInterface checks a provider tool call before it is stored
type ProposalValidatorInterface interface {
	Validate(ctx context.Context, tenantID uuid.UUID, groundingCtx *GroundingContext, call *llm.ToolCall) (*models.RecategorizeAction, error)
}

// ProposalServiceInterface orchestrates the propose flow
type ProposalServiceInterface interface {
	Propose(ctx context.Context, input ProposeInput) (*ProposeOutcome, error)
	ListProposals(ctx context.Context, tenantID uuid.UUID, limit int) ([]models.Proposal, error)
}

// ConfirmationServiceInterface applies or rejects a pending proposal
type ConfirmationServiceInterface interface {
	Confirm(ctx context.Context, input ConfirmInput) (*ExecutionResult, error)
}

// WebhookServiceInterface ingests signed provider deliveries
type WebhookServiceInterface interface {
	Ingest(ctx context.Context, body []byte, signature string) (*IngestResult, error)
}

// TransactionServiceInterface exposes tenant transaction reads
type TransactionServiceInterface interface {
	ListRecent(ctx context.Context, tenantID uuid.UUID) ([]models.Transaction, error)
	Search(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
}

// CategoryServiceInterface exposes tenant category reads
type CategoryServiceInterface interface {
	ListCategories(ctx context.Context, tenantID uuid.UUID) ([]models.Category, error)
	GetSummaries(ctx context.Context, tenantID uuid.UUID) ([]models.CategorySummary, error)
}

// DemoServiceInterface seeds and removes the demo dataset
type DemoServiceInterface interface {
	Bootstrap(ctx context.Context) (*dto.DemoBootstrapResponse, error)
	Reset(ctx context.Context) *dto.DemoResetResponse
}

// WebhookSimulatorInterface produces synthetic signed deliveries for manual testing
type WebhookSimulatorInterface interface {
	GeneratePayload(itemID string, count int) *dto.WebhookPayload
}
