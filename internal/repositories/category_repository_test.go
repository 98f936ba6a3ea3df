package repositories

import (
	"context"
	"testing"
	"time"

	"ledger-copilot/internal/database"
	"ledger-copilot/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestCategoryRepository(t *testing.T) {
	suite.Run(t, new(CategoryRepositorySuite))
}

type CategoryRepositorySuite struct {
	suite.Suite
	db      *database.DB
	repo    CategoryRepositoryInterface
	txnRepo TransactionRepositoryInterface
	ctx     context.Context
	tenant  *models.Tenant
}

func (s *CategoryRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewCategoryRepository(s.db.DB)
	s.txnRepo = NewTransactionRepository(s.db.DB)
	s.ctx = context.Background()
	s.tenant = database.CreateTestTenant(s.T(), s.db, "Tenant A")
}

func (s *CategoryRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *CategoryRepositorySuite) TestCreate_DuplicatePerTenant() {
	s.Require().NoError(s.repo.Create(s.ctx, &models.Category{TenantID: s.tenant.ID, Name: " Coffee "}))

	err := s.repo.Create(s.ctx, &models.Category{TenantID: s.tenant.ID, Name: "Coffee"})
	s.ErrorIs(err, ErrCategoryAlreadyExists)

	other := database.CreateTestTenant(s.T(), s.db, "Tenant B")
	s.NoError(s.repo.Create(s.ctx, &models.Category{TenantID: other.ID, Name: "Coffee"}))
}

func (s *CategoryRepositorySuite) TestFindByName_CaseInsensitiveAndTenantScoped() {
	category := database.CreateTestCategory(s.T(), s.db, s.tenant.ID, "Dining")

	found, err := s.repo.FindByName(s.ctx, s.tenant.ID, "dInInG")
	s.NoError(err)
	s.Equal(category.ID, found.ID)

	_, err = s.repo.FindByName(s.ctx, uuid.New(), "Dining")
	s.ErrorIs(err, ErrCategoryNotFound)

	_, err = s.repo.FindByName(s.ctx, s.tenant.ID, "Groceries")
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestGetByID_TenantScoped() {
	category := database.CreateTestCategory(s.T(), s.db, s.tenant.ID, "Dining")

	found, err := s.repo.GetByID(s.ctx, s.tenant.ID, category.ID)
	s.NoError(err)
	s.Equal("Dining", found.Name)

	_, err = s.repo.GetByID(s.ctx, uuid.New(), category.ID)
	s.ErrorIs(err, ErrCategoryNotFound)
}

func (s *CategoryRepositorySuite) TestListByTenant_OrderedByName() {
	database.CreateTestCategory(s.T(), s.db, s.tenant.ID, "Dining")
	database.CreateTestCategory(s.T(), s.db, s.tenant.ID, "Coffee")
	other := database.CreateTestTenant(s.T(), s.db, "Tenant B")
	database.CreateTestCategory(s.T(), s.db, other.ID, "Travel")

	categories, err := s.repo.ListByTenant(s.ctx, s.tenant.ID)
	s.NoError(err)
	s.Require().Len(categories, 2)
	s.Equal("Coffee", categories[0].Name)
	s.Equal("Dining", categories[1].Name)
}

func (s *CategoryRepositorySuite) TestGetSummaries() {
	coffee := database.CreateTestCategory(s.T(), s.db, s.tenant.ID, "Coffee")
	database.CreateTestCategory(s.T(), s.db, s.tenant.ID, "Dining")

	day := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
	t1 := database.CreateTestTransaction(s.T(), s.db, s.tenant.ID, "txn-1", "Starbucks", "-5.50", day)
	t2 := database.CreateTestTransaction(s.T(), s.db, s.tenant.ID, "txn-2", "Starbucks", "-4.25", day)
	database.CreateTestTransaction(s.T(), s.db, s.tenant.ID, "txn-3", "Uber", "-12.00", day)

	_, err := s.txnRepo.UpdateCategory(s.ctx, s.tenant.ID, []uuid.UUID{t1.ID, t2.ID}, coffee.ID)
	s.Require().NoError(err)

	summaries, err := s.repo.GetSummaries(s.ctx, s.tenant.ID)
	s.NoError(err)
	s.Require().Len(summaries, 2)

	s.Equal(coffee.ID, summaries[0].ID)
	s.Equal(int64(2), summaries[0].TransactionCount)
	s.Equal("-9.75", summaries[0].TotalAmount.StringFixed(2))

	s.Equal("Dining", summaries[1].Name)
	s.Zero(summaries[1].TransactionCount)
	s.True(summaries[1].TotalAmount.IsZero())
}

func (s *CategoryRepositorySuite) TestDeleteByTenant() {
	database.CreateTestCategory(s.T(), s.db, s.tenant.ID, "Coffee")

	deleted, err := s.repo.DeleteByTenant(s.ctx, s.tenant.ID)
	s.NoError(err)
	s.Equal(int64(1), deleted)
}
