package handlers

import (
	"net/http"

	"ledger-copilot/internal/errors"
	"ledger-copilot/internal/services"

	"github.com/labstack/echo/v4"
)

// AuditHandler exposes the tenant's audit trail
type AuditHandler struct {
	auditService services.AuditServiceInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService services.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

// ListActivity lists the tenant's audit trail with pagination
// @Summary List tenant activity
// @Description Proposal, confirmation and webhook events recorded for the caller's tenant, newest first
// @Tags Audit
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 200)" default(50)
// @Success 200 {object} SuccessResponse "Audit entries with pagination metadata"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid pagination parameters"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /audit [get]
func (h *AuditHandler) ListActivity(c echo.Context) error {
	tenantID, err := getTenantIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNoTenant)
	}

	page := getIntParam(c, "page", 1)
	limit := getIntParam(c, "limit", services.DefaultAuditPageSize)

	if page < 1 {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("page: must be greater than 0"))
	}
	if limit < 1 || limit > services.MaxAuditPageSize {
		return SendError(c, errors.ValidationGeneral,
			errors.WithDetails("limit: must be between 1 and 200"))
	}

	offset := (page - 1) * limit

	logs, total, err := h.auditService.GetTenantActivity(requestContext(c), tenantID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: logs,
		Meta: map[string]interface{}{
			"total":       total,
			"page":        page,
			"limit":       limit,
			"total_pages": (total + int64(limit) - 1) / int64(limit),
		},
	})
}
