package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ledger-copilot/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CategoryRepository handles database operations for tenant categories
type CategoryRepository struct {
	db *gorm.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) WithTx(tx *gorm.DB) CategoryRepositoryInterface {
	return &CategoryRepository{db: tx}
}

func (r *CategoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category == nil {
		return errors.New("category cannot be nil")
	}

	category.Name = strings.TrimSpace(category.Name)
	if err := r.db.WithContext(ctx).Create(category).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrCategoryAlreadyExists
		}
		return fmt.Errorf("failed to create category: %w: %w", ErrPersistence, err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where("id = ? AND tenant_id = ?", id, tenantID).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to get category by ID: %w: %w", ErrPersistence, err)
	}
	return &category, nil
}

// FindByName resolves a category label for the tenant, ignoring case.
func (r *CategoryRepository) FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*models.Category, error) {
	var category models.Category
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND LOWER(name) = LOWER(?)", tenantID, strings.TrimSpace(name)).
		First(&category).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("failed to find category by name: %w: %w", ErrPersistence, err)
	}
	return &category, nil
}

func (r *CategoryRepository) ListByTenant(ctx context.Context, tenantID uuid.UUID) ([]models.Category, error) {
	var categories []models.Category
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ?", tenantID).
		Order("name ASC").
		Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to list categories: %w: %w", ErrPersistence, err)
	}
	return categories, nil
}

// GetSummaries returns every tenant category with its transaction count and total.
func (r *CategoryRepository) GetSummaries(ctx context.Context, tenantID uuid.UUID) ([]models.CategorySummary, error) {
	var summaries []models.CategorySummary

	err := r.db.WithContext(ctx).
		Table("categories AS c").
		Select("c.id AS id, c.name AS name, COUNT(t.id) AS transaction_count, COALESCE(SUM(t.amount), 0) AS total_amount").
		Joins("LEFT JOIN transactions AS t ON t.category_id = c.id AND t.tenant_id = c.tenant_id").
		Where("c.tenant_id = ?", tenantID).
		Group("c.id, c.name").
		Order("c.name ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get category summaries: %w: %w", ErrPersistence, err)
	}

	return summaries, nil
}

func (r *CategoryRepository) DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&models.Category{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete categories: %w: %w", ErrPersistence, result.Error)
	}
	return result.RowsAffected, nil
}
