package errors

import (
	"net/http"
)

// ErrorResponse is the body of every failed API call:
//
//	{"error": {"code": "PROPOSAL_002", "message": "...", "details": [...], "trace_id": "..."}}
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

type ErrorOption func(*ErrorResponse)

// WithDetails replaces the detail list. The last call wins.
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage replaces the code's default message.
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}
	for _, opt := range opts {
		opt(response)
	}
	return response
}

// NewValidationErrorFromList builds a VALIDATION_001 body from "field: message" lines.
func NewValidationErrorFromList(details []string, traceID string) *ErrorResponse {
	return NewErrorResponse(ValidationGeneral, traceID, WithDetails(details...))
}

// WrapSystemError hides err behind SYSTEM_001 and hands it back for logging.
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemInternalError, traceID), err
}

// WrapDatabaseError hides err behind SYSTEM_002. Callers only use it for
// failures inside a rolled back transaction, so the body states that nothing
// was saved.
func WrapDatabaseError(err error, traceID string) (*ErrorResponse, error) {
	return NewErrorResponse(SystemDatabaseError, traceID), err
}

var httpStatusByCode = map[ErrorCode]int{
	ValidationGeneral:             http.StatusBadRequest,
	ValidationRequiredField:       http.StatusBadRequest,
	ValidationInvalidFormat:       http.StatusBadRequest,
	ValidationOutOfRange:          http.StatusBadRequest,
	ValidationInvalidEmail:        http.StatusBadRequest,
	ValidationInvalidDate:         http.StatusBadRequest,
	GroundingCitationNotInTargets: http.StatusBadRequest,
	GroundingUnknownTransaction:   http.StatusBadRequest,
	GroundingUnknownCategory:      http.StatusBadRequest,
	ProviderMissingCredential:     http.StatusBadRequest,
	ProviderUnknown:               http.StatusBadRequest,
	WebhookMalformedPayload:       http.StatusBadRequest,

	AuthInvalidCredentials:  http.StatusUnauthorized,
	AuthMissingToken:        http.StatusUnauthorized,
	AuthExpiredToken:        http.StatusUnauthorized,
	AuthInvalidTokenFormat:  http.StatusUnauthorized,
	WebhookInvalidSignature: http.StatusUnauthorized,

	AuthInsufficientPermission: http.StatusForbidden,
	AuthNoTenant:               http.StatusForbidden,

	ProposalNotFound:    http.StatusNotFound,
	WebhookUnknownItem:  http.StatusNotFound,
	SystemRouteNotFound: http.StatusNotFound,

	ProposalNotPending: http.StatusConflict,

	SystemRateLimitExceeded: http.StatusTooManyRequests,

	ProviderUpstreamError:    http.StatusBadGateway,
	SystemServiceUnavailable: http.StatusServiceUnavailable,
	ProviderTimeout:          http.StatusGatewayTimeout,
}

// GetHTTPStatus returns the status for code. Anything not listed, including
// SYSTEM_* and WEBHOOK_004, is a 500.
func GetHTTPStatus(code ErrorCode) int {
	if status, ok := httpStatusByCode[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}
