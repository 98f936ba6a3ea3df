package repositories

import (
	"context"
	"time"

	"ledger-copilot/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TenantRepositoryInterface defines the contract for tenant repository operations
type TenantRepositoryInterface interface {
	WithTx(tx *gorm.DB) TenantRepositoryInterface
	Create(ctx context.Context, tenant *models.Tenant) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Tenant, error)
	FindByName(ctx context.Context, name string) (*models.Tenant, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	WithTx(tx *gorm.DB) UserRepositoryInterface
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	UpdateLastLogin(ctx context.Context, userID uuid.UUID, at time.Time) error
	DeleteByEmails(ctx context.Context, emails []string) (int64, error)
}

// CategoryRepositoryInterface defines the contract for tenant category operations
type CategoryRepositoryInterface interface {
	WithTx(tx *gorm.DB) CategoryRepositoryInterface
	Create(ctx context.Context, category *models.Category) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Category, error)
	FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*models.Category, error)
	ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]models.Category, error)
	GetSummaries(ctx context.Context, tenantID uuid.UUID) ([]models.CategorySummary, error)
	DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	WithTx(tx *gorm.DB) TransactionRepositoryInterface
	Create(ctx context.Context, transaction *models.Transaction) error
	InsertIgnoringConflicts(ctx context.Context, transactions []models.Transaction) (int64, error)
	GetRecentByTenant(ctx context.Context, tenantID uuid.UUID, limit int) ([]models.Transaction, error)
	GetWithFilters(ctx context.Context, filters models.TransactionFilters) ([]models.Transaction, int64, error)
	FindByIDs(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID) ([]models.Transaction, error)
	UpdateCategory(ctx context.Context, tenantID uuid.UUID, ids []uuid.UUID, categoryID uuid.UUID) (int64, error)
	DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// ProviderItemRepositoryInterface defines the contract for provider item operations
type ProviderItemRepositoryInterface interface {
	WithTx(tx *gorm.DB) ProviderItemRepositoryInterface
	Create(ctx context.Context, item *models.ProviderItem) error
	GetByProviderItemID(ctx context.Context, providerItemID string) (*models.ProviderItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) error
	DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// ProposalRepositoryInterface is the durable, tenant-scoped proposal store.
// Status only changes through CompareAndSetStatus.
type ProposalRepositoryInterface interface {
	WithTx(tx *gorm.DB) ProposalRepositoryInterface
	Create(ctx context.Context, proposal *models.Proposal) error
	GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Proposal, error)
	CompareAndSetStatus(ctx context.Context, tenantID, id uuid.UUID, from, to string, result models.JSONBMap) error
	ListByTenant(ctx context.Context, tenantID uuid.UUID, limit int) ([]models.Proposal, error)
	DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// ActionExecutionRepositoryInterface defines the contract for execution records
type ActionExecutionRepositoryInterface interface {
	WithTx(tx *gorm.DB) ActionExecutionRepositoryInterface
	Create(ctx context.Context, execution *models.ActionExecution) error
	GetByProposalID(ctx context.Context, tenantID, proposalID uuid.UUID) (*models.ActionExecution, error)
	DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// WebhookEventRepositoryInterface defines the contract for webhook dedup records
type WebhookEventRepositoryInterface interface {
	WithTx(tx *gorm.DB) WebhookEventRepositoryInterface
	InsertIfAbsent(ctx context.Context, event *models.WebhookEvent) (bool, error)
	MarkProcessed(ctx context.Context, id uuid.UUID, at time.Time) error
	GetByKey(ctx context.Context, tenantID uuid.UUID, provider, idempotencyKey string) (*models.WebhookEvent, error)
	DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(ctx context.Context, log *models.AuditLog) error
	GetByTenant(ctx context.Context, tenantID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByAction(ctx context.Context, action string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByResource(ctx context.Context, resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error)
	DeleteOlderThan(ctx context.Context, duration time.Duration) (int64, error)
}
