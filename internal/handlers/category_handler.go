package handlers

import (
	"net/http"

	"ledger-copilot/internal/dto"
	"ledger-copilot/internal/errors"
	"ledger-copilot/internal/services"

	"github.com/labstack/echo/v4"
)

// CategoryHandler serves tenant categories
type CategoryHandler struct {
	categoryService services.CategoryServiceInterface
}

// NewCategoryHandler creates a new CategoryHandler instance
func NewCategoryHandler(categoryService services.CategoryServiceInterface) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// ListCategories returns the tenant's categories ordered by name
// @Summary List categories
// @Description Retrieve the tenant's categories ordered by name
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.ListCategoriesResponse "Categories"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /categories [get]
func (h *CategoryHandler) ListCategories(c echo.Context) error {
	tenantID, err := getTenantIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNoTenant)
	}

	categories, err := h.categoryService.ListCategories(requestContext(c), tenantID)
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListCategoriesResponse{Categories: make([]dto.CategoryResponse, 0, len(categories))}
	for _, category := range categories {
		response.Categories = append(response.Categories, dto.CategoryResponse{
			ID:   category.ID.String(),
			Name: category.Name,
		})
	}
	return c.JSON(http.StatusOK, response)
}

// GetCategorySummaries returns per-category transaction counts and totals
// @Summary Category summaries
// @Description Every tenant category with its transaction count and total amount
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=[]models.CategorySummary} "Summaries"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Router /categories/summary [get]
func (h *CategoryHandler) GetCategorySummaries(c echo.Context) error {
	tenantID, err := getTenantIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNoTenant)
	}

	summaries, err := h.categoryService.GetSummaries(requestContext(c), tenantID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{Data: summaries})
}
