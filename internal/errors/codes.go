package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthInsufficientPermission ErrorCode = "AUTH_005"
	AuthNoTenant               ErrorCode = "AUTH_007"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_005"
	ValidationInvalidDate   ErrorCode = "VALIDATION_007"
)

// Grounding error codes (GROUNDING_*) for proposals that reference data
// outside what the provider was shown.
const (
	GroundingCitationNotInTargets ErrorCode = "GROUNDING_001"
	GroundingUnknownTransaction   ErrorCode = "GROUNDING_002"
	GroundingUnknownCategory      ErrorCode = "GROUNDING_003"
)

// Proposal error codes (PROPOSAL_*)
const (
	ProposalNotFound   ErrorCode = "PROPOSAL_001"
	ProposalNotPending ErrorCode = "PROPOSAL_002"
)

// AI provider error codes (PROVIDER_*)
const (
	ProviderMissingCredential ErrorCode = "PROVIDER_001"
	ProviderUnknown           ErrorCode = "PROVIDER_002"
	ProviderUpstreamError     ErrorCode = "PROVIDER_003"
	ProviderTimeout           ErrorCode = "PROVIDER_004"
)

// Webhook error codes (WEBHOOK_*)
const (
	WebhookInvalidSignature ErrorCode = "WEBHOOK_001"
	WebhookMalformedPayload ErrorCode = "WEBHOOK_002"
	WebhookUnknownItem      ErrorCode = "WEBHOOK_003"
	WebhookNotRecorded      ErrorCode = "WEBHOOK_004"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemRouteNotFound      ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials:     "Invalid email or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthInsufficientPermission: "Insufficient permissions to access this resource",
	AuthNoTenant:               "User is not a member of any tenant",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format or range",

	// Grounding errors
	GroundingCitationNotInTargets: "Every citation must be one of the targeted transactions",
	GroundingUnknownTransaction:   "Proposal references transactions that are unknown or outside the tenant",
	GroundingUnknownCategory:      "Proposed category does not exist for this tenant",

	// Proposal errors
	ProposalNotFound:   "Proposal not found",
	ProposalNotPending: "Proposal is no longer pending",

	// Provider errors
	ProviderMissingCredential: "AI provider credential is not configured",
	ProviderUnknown:           "Unknown AI provider",
	ProviderUpstreamError:     "AI provider request failed",
	ProviderTimeout:           "AI provider did not respond in time",

	// Webhook errors
	WebhookInvalidSignature: "Invalid webhook signature",
	WebhookMalformedPayload: "Malformed webhook payload",
	WebhookUnknownItem:      "Unknown or disconnected provider item",
	WebhookNotRecorded:      "Webhook event could not be recorded; nothing was written",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database operation failed; no changes were saved",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemRouteNotFound:      "Route not found",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
