package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"ledger-copilot/internal/dto"
	"ledger-copilot/internal/models"
	"ledger-copilot/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryHandler_ListCategories(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	categoryService := service_mocks.NewMockCategoryServiceInterface(ctrl)
	categoryService.EXPECT().ListCategories(gomock.Any(), tenantID).Return([]models.Category{
		{ID: uuid.New(), TenantID: tenantID, Name: "Coffee"},
		{ID: uuid.New(), TenantID: tenantID, Name: "Dining"},
	}, nil)

	handler := NewCategoryHandler(categoryService)
	c, rec := newRequest(newTestEcho(), http.MethodGet, "/api/v1/categories", nil)
	authenticate(c, uuid.New(), tenantID)

	require.NoError(t, handler.ListCategories(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var response dto.ListCategoriesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	require.Len(t, response.Categories, 2)
	assert.Equal(t, "Coffee", response.Categories[0].Name)
	assert.Equal(t, "Dining", response.Categories[1].Name)
}

func TestCategoryHandler_ListCategoriesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	categoryService := service_mocks.NewMockCategoryServiceInterface(ctrl)
	categoryService.EXPECT().ListCategories(gomock.Any(), gomock.Any()).Return(nil, errors.New("connection reset"))

	handler := NewCategoryHandler(categoryService)
	c, rec := newRequest(newTestEcho(), http.MethodGet, "/api/v1/categories", nil)
	authenticate(c, uuid.New(), uuid.New())

	require.NoError(t, handler.ListCategories(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	response := decodeError(rec)
	assert.Equal(t, "SYSTEM_001", response.Error.Code)
	assert.NotContains(t, rec.Body.String(), "connection reset")
}

func TestCategoryHandler_GetCategorySummaries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tenantID := uuid.New()
	categoryService := service_mocks.NewMockCategoryServiceInterface(ctrl)
	categoryService.EXPECT().GetSummaries(gomock.Any(), tenantID).Return([]models.CategorySummary{
		{ID: uuid.New(), Name: "Coffee", TransactionCount: 2, TotalAmount: decimal.RequireFromString("-9.75")},
	}, nil)

	handler := NewCategoryHandler(categoryService)
	c, rec := newRequest(newTestEcho(), http.MethodGet, "/api/v1/categories/summary", nil)
	authenticate(c, uuid.New(), tenantID)

	require.NoError(t, handler.GetCategorySummaries(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"transaction_count":2`)
	assert.Contains(t, rec.Body.String(), `"total_amount":"-9.75"`)
}

func TestCategoryHandler_RequiresTenant(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	handler := NewCategoryHandler(service_mocks.NewMockCategoryServiceInterface(ctrl))
	c, rec := newRequest(newTestEcho(), http.MethodGet, "/api/v1/categories", nil)

	require.NoError(t, handler.ListCategories(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "AUTH_007", decodeError(rec).Error.Code)
}
