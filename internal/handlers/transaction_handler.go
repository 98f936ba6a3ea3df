package handlers

import (
	"net/http"
	"time"

	"ledger-copilot/internal/dto"
	"ledger-copilot/internal/errors"
	"ledger-copilot/internal/models"
	"ledger-copilot/internal/services"
	"ledger-copilot/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// TransactionHandler handles transaction-related HTTP requests
type TransactionHandler struct {
	transactionService services.TransactionServiceInterface
}

// NewTransactionHandler creates a new transaction handler
func NewTransactionHandler(transactionService services.TransactionServiceInterface) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// ListTransactions returns the tenant's transactions
// @Summary List transactions
// @Description Without filters, returns the tenant's latest 100 transactions with their category. Filters switch to a paged search.
// @Tags Transactions
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "Filter by start date (YYYY-MM-DD)"
// @Param end_date query string false "Filter by end date (YYYY-MM-DD)"
// @Param category_id query string false "Filter by category id"
// @Param uncategorized query bool false "Only transactions without a category"
// @Param search query string false "Case-insensitive name match"
// @Param offset query int false "Offset into the result"
// @Param limit query int false "Page size (max 200)" default(50)
// @Success 200 {object} dto.ListTransactionsResponse "Transactions"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /transactions [get]
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	tenantID, err := getTenantIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNoTenant)
	}

	var query dto.TransactionQuery
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails("Invalid query parameters"))
	}
	if err := c.Validate(&query); err != nil {
		return SendError(c, errors.ValidationGeneral, errors.WithDetails(validation.FormatErrors(err)...))
	}

	ctx := requestContext(c)

	if !query.HasFilters() {
		transactions, err := h.transactionService.ListRecent(ctx, tenantID)
		if err != nil {
			return SendSystemError(c, err)
		}
		return c.JSON(http.StatusOK, newListTransactionsResponse(transactions, int64(len(transactions))))
	}

	filters, err := parseTransactionFilters(tenantID, &query)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails(err.Error()))
	}

	transactions, total, err := h.transactionService.Search(ctx, filters)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, newListTransactionsResponse(transactions, total))
}

func parseTransactionFilters(tenantID uuid.UUID, query *dto.TransactionQuery) (models.TransactionFilters, error) {
	filters := models.TransactionFilters{
		TenantID:      tenantID,
		Uncategorized: query.Uncategorized,
		Search:        query.Search,
		Offset:        query.Offset,
		Limit:         query.Limit,
	}

	if query.StartDate != "" {
		start, err := time.Parse(models.DateLayout, query.StartDate)
		if err != nil {
			return filters, err
		}
		filters.StartDate = &start
	}
	if query.EndDate != "" {
		end, err := time.Parse(models.DateLayout, query.EndDate)
		if err != nil {
			return filters, err
		}
		filters.EndDate = &end
	}
	if query.CategoryID != "" {
		categoryID, err := uuid.Parse(query.CategoryID)
		if err != nil {
			return filters, err
		}
		filters.CategoryID = &categoryID
	}

	return filters, nil
}

func newListTransactionsResponse(transactions []models.Transaction, total int64) dto.ListTransactionsResponse {
	response := dto.ListTransactionsResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
		Total:        total,
	}
	for i := range transactions {
		response.Transactions = append(response.Transactions, dto.NewTransactionResponse(&transactions[i]))
	}
	return response
}
