package services

import (
	"context"
	"fmt"

	"ledger-copilot/internal/models"
	"ledger-copilot/internal/repositories"

	"github.com/google/uuid"
)

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

// NewCategoryService creates a new CategoryServiceInterface instance
func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &categoryService{categoryRepo: categoryRepo}
}

// ListCategories returns the tenant's categories ordered by name
func (s *categoryService) ListCategories(ctx context.Context, tenantID uuid.UUID) ([]models.Category, error) {
	categories, err := s.categoryRepo.ListByTenant(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	if categories == nil {
		categories = []models.Category{}
	}
	return categories, nil
}

func (s *categoryService) GetSummaries(ctx context.Context, tenantID uuid.UUID) ([]models.CategorySummary, error) {
	summaries, err := s.categoryRepo.GetSummaries(ctx, tenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize categories: %w", err)
	}
	if summaries == nil {
		summaries = []models.CategorySummary{}
	}
	return summaries, nil
}
