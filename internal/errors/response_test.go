package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "trace-7f3a"
}

func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_UsesDefaultMessage() {
	response := NewErrorResponse(ProposalNotPending, s.traceID)

	s.Equal("PROPOSAL_002", response.Error.Code)
	s.Equal("Proposal is no longer pending", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_OptionsApplyInOrder() {
	response := NewErrorResponse(GroundingUnknownTransaction, s.traceID,
		WithMessage("first"),
		WithDetails("txn-1", "txn-2"),
		WithMessage("second"),
		WithDetails("txn-3"),
	)

	s.Equal("second", response.Error.Message)
	s.Equal([]string{"txn-3"}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewValidationErrorFromList() {
	details := []string{"proposal_id: is required", "confirm: is required"}

	response := NewValidationErrorFromList(details, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal(details, response.Error.Details)
	s.Equal(http.StatusBadRequest, response.GetHTTPStatus())
}

func (s *ResponseTestSuite) TestWrapSystemError_HidesCause() {
	cause := errors.New(`pq: relation "proposals" does not exist`)

	response, returned := WrapSystemError(cause, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "proposals")
	s.Empty(response.Error.Details)
	s.Same(cause, returned)
}

func (s *ResponseTestSuite) TestWrapDatabaseError_StatesNothingSaved() {
	cause := errors.New("sql: database is closed")

	response, returned := WrapDatabaseError(cause, s.traceID)

	s.Equal("SYSTEM_002", response.Error.Code)
	s.Contains(response.Error.Message, "no changes were saved")
	s.NotContains(response.Error.Message, "closed")
	s.Equal(http.StatusInternalServerError, response.GetHTTPStatus())
	s.Same(cause, returned)
}

func (s *ResponseTestSuite) TestJSONShape() {
	body, err := json.Marshal(NewErrorResponse(WebhookMalformedPayload, s.traceID, WithDetails("item_id: is required")))
	s.Require().NoError(err)
	s.JSONEq(`{"error":{"code":"WEBHOOK_002","message":"Malformed webhook payload","details":["item_id: is required"],"trace_id":"trace-7f3a"}}`, string(body))

	body, err = json.Marshal(NewErrorResponse(AuthMissingToken, s.traceID))
	s.Require().NoError(err)
	s.NotContains(string(body), "details")
}

func (s *ResponseTestSuite) TestGetHTTPStatus() {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{GroundingCitationNotInTargets, http.StatusBadRequest},
		{GroundingUnknownCategory, http.StatusBadRequest},
		{ProviderMissingCredential, http.StatusBadRequest},
		{ProviderUnknown, http.StatusBadRequest},
		{WebhookMalformedPayload, http.StatusBadRequest},
		{AuthMissingToken, http.StatusUnauthorized},
		{AuthInvalidTokenFormat, http.StatusUnauthorized},
		{WebhookInvalidSignature, http.StatusUnauthorized},
		{AuthNoTenant, http.StatusForbidden},
		{ProposalNotFound, http.StatusNotFound},
		{WebhookUnknownItem, http.StatusNotFound},
		{SystemRouteNotFound, http.StatusNotFound},
		{ProposalNotPending, http.StatusConflict},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{ProviderUpstreamError, http.StatusBadGateway},
		{ProviderTimeout, http.StatusGatewayTimeout},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{WebhookNotRecorded, http.StatusInternalServerError},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expected, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestEveryRegisteredCodeHasStatus() {
	for code := range errorMessages {
		status := GetHTTPStatus(code)
		s.GreaterOrEqual(status, 400, string(code))
		s.Less(status, 600, string(code))
	}
}
