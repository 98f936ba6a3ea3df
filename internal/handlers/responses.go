package handlers

import (
	"log/slog"

	"ledger-copilot/internal/errors"

	"github.com/labstack/echo/v4"
)

// STANDARDIZED ERROR HANDLING PATTERNS
//
// All handlers must use the following standardized error response functions:
//
// 1. SendError - For client errors and business logic errors (4xx responses)
//    Use cases:
//    - Validation errors: SendError(c, errors.ValidationGeneral, errors.WithDetails("..."))
//    - Authentication errors: SendError(c, errors.AuthInvalidCredentials)
//    - Not found errors: SendError(c, errors.ProposalNotFound)
//    - State conflicts: SendError(c, errors.ProposalNotPending)
//
// 2. SendSystemError - For system/internal errors (500 responses)
//    Use cases:
//    - Service layer internal errors
//    - Unexpected errors that should not expose internal details to client
//
// 2a. SendDatabaseError - For repositories.ErrPersistence (SYSTEM_002). Every
//    write path runs in one transaction, so the body says nothing was saved.
//
// 3. sendServiceError - For errors returned by the services package; maps
//    sentinel and typed errors onto the codes above.
//
// DO NOT USE:
//    - echo.NewHTTPError() - Use SendError or SendSystemError instead
//    - Direct c.JSON() for errors - Use the helper functions
//    - return err without wrapping - Use SendSystemError to protect internal details

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
	// UserIDContextKey holds the authenticated user's id
	UserIDContextKey = "user_id"
	// TenantIDContextKey holds the tenant the request acts within
	TenantIDContextKey = "tenant_id"
)

// SuccessResponse represents a standard success response
// Used for successful API responses with data, messages, and metadata
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty" swaggertype:"object"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty" swaggertype:"object"`
}

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapSystemError(err, getTraceID(c))
	return sendLogged(c, errorResponse, err)
}

// SendDatabaseError reports a failed database round trip as SYSTEM_002
func SendDatabaseError(c echo.Context, err error) error {
	errorResponse, _ := errors.WrapDatabaseError(err, getTraceID(c))
	return sendLogged(c, errorResponse, err)
}

func sendLogged(c echo.Context, errorResponse *errors.ErrorResponse, err error) error {
	slog.ErrorContext(c.Request().Context(), "request failed",
		"trace_id", errorResponse.Error.TraceID,
		"path", c.Request().URL.Path,
		"code", errorResponse.Error.Code,
		"error", err)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
