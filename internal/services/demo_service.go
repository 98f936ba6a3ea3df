package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"ledger-copilot/internal/dto"
	"ledger-copilot/internal/models"
	"ledger-copilot/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DemoTenantAName   = "Tenant A"
	DemoTenantBName   = "Tenant B"
	DemoUserAEmail    = "user-a@demo.local"
	DemoUserBEmail    = "user-b@demo.local"
	DemoUserAPass     = "demo-password-a"
	DemoUserBPass     = "demo-password-b"
	DemoItemIDTenantA = "item-demo-tenant-a"

	DemoResetOK      = "reset_ok"
	DemoResetPartial = "reset_partial"
)

var demoUserEmails = []string{DemoUserAEmail, DemoUserBEmail}

// DemoRepositories groups the stores the demo dataset touches
type DemoRepositories struct {
	Tenants      repositories.TenantRepositoryInterface
	Users        repositories.UserRepositoryInterface
	Items        repositories.ProviderItemRepositoryInterface
	Categories   repositories.CategoryRepositoryInterface
	Transactions repositories.TransactionRepositoryInterface
	Proposals    repositories.ProposalRepositoryInterface
	Executions   repositories.ActionExecutionRepositoryInterface
	Events       repositories.WebhookEventRepositoryInterface
	AuditLogs    repositories.AuditLogRepositoryInterface
}

// DemoService seeds two isolated tenants with a connected item and a few
// transactions, and removes them again. Both operations are safe to repeat.
type DemoService struct {
	db              *gorm.DB
	repos           DemoRepositories
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	auditService    AuditServiceInterface
	logger          *slog.Logger
}

func NewDemoService(
	db *gorm.DB,
	repos DemoRepositories,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	auditService AuditServiceInterface,
	logger *slog.Logger,
) DemoServiceInterface {
	return &DemoService{
		db:              db,
		repos:           repos,
		passwordService: passwordService,
		tokenService:    tokenService,
		auditService:    auditService,
		logger:          logger,
	}
}

func (s *DemoService) Bootstrap(ctx context.Context) (*dto.DemoBootstrapResponse, error) {
	var tenantA, tenantB *models.Tenant
	var userA, userB *models.User
	var item *models.ProviderItem

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if tenantA, err = s.ensureTenant(ctx, tx, DemoTenantAName); err != nil {
			return err
		}
		if tenantB, err = s.ensureTenant(ctx, tx, DemoTenantBName); err != nil {
			return err
		}

		if item, err = s.ensureItem(ctx, tx, tenantA.ID); err != nil {
			return err
		}
		// An existing item keeps its owner; the seeded facts follow it.
		itemTenantID := item.TenantID

		if userA, err = s.ensureUser(ctx, tx, DemoUserAEmail, DemoUserAPass, itemTenantID); err != nil {
			return err
		}
		if userB, err = s.ensureUser(ctx, tx, DemoUserBEmail, DemoUserBPass, tenantB.ID); err != nil {
			return err
		}

		coffee, err := s.ensureCategory(ctx, tx, itemTenantID, "Coffee")
		if err != nil {
			return err
		}
		if _, err := s.ensureCategory(ctx, tx, itemTenantID, "Dining"); err != nil {
			return err
		}

		return s.seedTransactions(ctx, tx, item, coffee.ID)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to bootstrap demo data: %w", err)
	}

	token, _, err := s.tokenService.GenerateAccessToken(userA)
	if err != nil {
		return nil, fmt.Errorf("failed to issue demo token: %w", err)
	}

	s.auditService.Record(ctx, AuditEntry{
		TenantID:   &item.TenantID,
		Action:     models.AuditActionDemoBootstrap,
		Resource:   models.AuditResourceTenant,
		ResourceID: item.TenantID.String(),
	})
	s.logger.InfoContext(ctx, "demo data bootstrapped",
		"tenant_a", tenantA.ID,
		"tenant_b", tenantB.ID)

	return &dto.DemoBootstrapResponse{
		Tenants: []dto.DemoTenant{
			{ID: tenantA.ID.String(), Name: tenantA.Name},
			{ID: tenantB.ID.String(), Name: tenantB.Name},
		},
		Users: []dto.DemoUser{
			{ID: userA.ID.String(), Email: userA.Email, TenantID: item.TenantID.String()},
			{ID: userB.ID.String(), Email: userB.Email, TenantID: tenantB.ID.String()},
		},
		PlaidItemIDTenantA: DemoItemIDTenantA,
		TokenUserA:         token,
	}, nil
}

func (s *DemoService) ensureTenant(ctx context.Context, tx *gorm.DB, name string) (*models.Tenant, error) {
	tenants := s.repos.Tenants.WithTx(tx)

	tenant, err := tenants.FindByName(ctx, name)
	if err == nil {
		return tenant, nil
	}
	if !errors.Is(err, repositories.ErrTenantNotFound) {
		return nil, err
	}

	tenant = &models.Tenant{Name: name}
	if err := tenants.Create(ctx, tenant); err != nil {
		return nil, err
	}
	return tenant, nil
}

func (s *DemoService) ensureUser(ctx context.Context, tx *gorm.DB, email, password string, tenantID uuid.UUID) (*models.User, error) {
	users := s.repos.Users.WithTx(tx)

	user, err := users.GetByEmail(ctx, email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, repositories.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.passwordService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user = &models.User{
		Email:        email,
		PasswordHash: hash,
		TenantID:     &tenantID,
		Role:         models.RoleMember,
	}
	if err := users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *DemoService) ensureItem(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID) (*models.ProviderItem, error) {
	items := s.repos.Items.WithTx(tx)

	item, err := items.GetByProviderItemID(ctx, DemoItemIDTenantA)
	if err == nil {
		return item, nil
	}
	if !errors.Is(err, repositories.ErrProviderItemNotFound) {
		return nil, err
	}

	item = &models.ProviderItem{
		TenantID:       tenantID,
		ProviderItemID: DemoItemIDTenantA,
		Status:         models.ProviderItemStatusConnected,
	}
	if err := items.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *DemoService) ensureCategory(ctx context.Context, tx *gorm.DB, tenantID uuid.UUID, name string) (*models.Category, error) {
	categories := s.repos.Categories.WithTx(tx)

	category, err := categories.FindByName(ctx, tenantID, name)
	if err == nil {
		return category, nil
	}
	if !errors.Is(err, repositories.ErrCategoryNotFound) {
		return nil, err
	}

	category = &models.Category{TenantID: tenantID, Name: name}
	if err := categories.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *DemoService) seedTransactions(ctx context.Context, tx *gorm.DB, item *models.ProviderItem, coffeeID uuid.UUID) error {
	itemPK := item.ID
	categoryID := coffeeID

	facts := []models.Transaction{
		{
			TenantID:              item.TenantID,
			ProviderItemID:        &itemPK,
			ProviderTransactionID: "txn-a-1",
			Name:                  "Starbucks",
			Amount:                decimal.RequireFromString("-5.50"),
			Currency:              models.DefaultCurrency,
			PostedDate:            time.Date(2025, time.February, 1, 0, 0, 0, 0, time.UTC),
			CategoryID:            &categoryID,
		},
		{
			TenantID:              item.TenantID,
			ProviderItemID:        &itemPK,
			ProviderTransactionID: "txn-a-2",
			Name:                  "Starbucks",
			Amount:                decimal.RequireFromString("-4.25"),
			Currency:              models.DefaultCurrency,
			PostedDate:            time.Date(2025, time.February, 2, 0, 0, 0, 0, time.UTC),
		},
	}

	_, err := s.repos.Transactions.WithTx(tx).InsertIgnoringConflicts(ctx, facts)
	return err
}

// Reset deletes the demo tenants and everything they own, children first.
// Every step runs even when an earlier one fails.
func (s *DemoService) Reset(ctx context.Context) *dto.DemoResetResponse {
	response := &dto.DemoResetResponse{Steps: []dto.DemoResetStep{}}

	record := func(step string, err error) {
		entry := dto.DemoResetStep{Step: step, OK: err == nil}
		if err != nil {
			entry.Error = err.Error()
			s.logger.WarnContext(ctx, "demo reset step failed", "step", step, "error", err)
		}
		response.Steps = append(response.Steps, entry)
	}
	deleteRows := func(step string, fn func(context.Context, uuid.UUID) (int64, error), tenantID uuid.UUID) {
		_, err := fn(ctx, tenantID)
		record(step, err)
	}

	for _, name := range []string{DemoTenantAName, DemoTenantBName} {
		tenant, err := s.repos.Tenants.FindByName(ctx, name)
		if err != nil {
			if !errors.Is(err, repositories.ErrTenantNotFound) {
				record("find tenant "+name, err)
			}
			continue
		}

		deleteRows("delete action executions for "+name, s.repos.Executions.DeleteByTenant, tenant.ID)
		deleteRows("delete proposals for "+name, s.repos.Proposals.DeleteByTenant, tenant.ID)
		deleteRows("delete webhook events for "+name, s.repos.Events.DeleteByTenant, tenant.ID)
		deleteRows("delete transactions for "+name, s.repos.Transactions.DeleteByTenant, tenant.ID)
		deleteRows("delete categories for "+name, s.repos.Categories.DeleteByTenant, tenant.ID)
		deleteRows("delete provider items for "+name, s.repos.Items.DeleteByTenant, tenant.ID)
		deleteRows("delete audit logs for "+name, s.repos.AuditLogs.DeleteByTenant, tenant.ID)
		record("delete tenant "+name, s.repos.Tenants.Delete(ctx, tenant.ID))
	}

	_, err := s.repos.Users.DeleteByEmails(ctx, demoUserEmails)
	record("delete demo users", err)

	response.Status = DemoResetOK
	for _, step := range response.Steps {
		if !step.OK {
			response.Status = DemoResetPartial
			break
		}
	}

	s.auditService.Record(ctx, AuditEntry{
		Action:   models.AuditActionDemoReset,
		Resource: models.AuditResourceTenant,
		Metadata: models.JSONBMap{"status": response.Status},
	})

	return response
}
