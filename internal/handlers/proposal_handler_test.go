package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ledger-copilot/internal/config"
	"ledger-copilot/internal/dto"
	"ledger-copilot/internal/llm"
	"ledger-copilot/internal/models"
	"ledger-copilot/internal/services"
	"ledger-copilot/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ProposalHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	proposalService     *service_mocks.MockProposalServiceInterface
	confirmationService *service_mocks.MockConfirmationServiceInterface
	handler             *ProposalHandler
	e                   *echo.Echo
	userID              uuid.UUID
	tenantID            uuid.UUID
}

func TestProposalHandlerSuite(t *testing.T) {
	suite.Run(t, new(ProposalHandlerTestSuite))
}

func (s *ProposalHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.proposalService = service_mocks.NewMockProposalServiceInterface(s.ctrl)
	s.confirmationService = service_mocks.NewMockConfirmationServiceInterface(s.ctrl)
	s.handler = NewProposalHandler(s.proposalService, s.confirmationService)
	s.e = newTestEcho()
	s.userID = uuid.New()
	s.tenantID = uuid.New()
}

func (s *ProposalHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ProposalHandlerTestSuite) authedRequest(method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	c, rec := newRequest(s.e, method, target, body)
	authenticate(c, s.userID, s.tenantID)
	return c, rec
}

func (s *ProposalHandlerTestSuite) TestPropose_ReturnsStoredProposal() {
	proposal := &models.Proposal{
		ID:       uuid.New(),
		TenantID: s.tenantID,
		UserID:   s.userID,
		Provider: config.ProviderOpenAI,
		Model:    "gpt-4o-mini",
		Status:   models.ProposalStatusProposed,
		ProposedAction: models.JSONBMap{
			"type":          models.ActionRecategorize,
			"category_name": "Coffee",
		},
		CreatedAt: time.Now().UTC(),
	}

	s.proposalService.EXPECT().
		Propose(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, input services.ProposeInput) (*services.ProposeOutcome, error) {
			s.Equal(s.tenantID, input.TenantID)
			s.Equal(s.userID, input.UserID)
			s.Equal("Put my Starbucks purchases in Coffee", input.Question)
			s.Equal("openai", input.Provider)
			return &services.ProposeOutcome{Proposal: proposal, Provider: config.ProviderOpenAI}, nil
		})

	c, rec := s.authedRequest(http.MethodPost, "/api/v1/ai/propose", map[string]string{
		"question": "Put my Starbucks purchases in Coffee",
		"provider": "openai",
	})

	s.NoError(s.handler.Propose(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ProposeResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(proposal.ID.String(), response.ProposalID)
	s.Equal(s.tenantID.String(), response.TenantID)
	s.Equal(config.ProviderOpenAI, response.Provider)
	s.Require().NotNil(response.Proposal)
	s.Equal(models.ProposalStatusProposed, response.Proposal.Status)
	s.Equal("Coffee", response.Proposal.ProposedAction["category_name"])
}

func (s *ProposalHandlerTestSuite) TestPropose_NoAction() {
	s.proposalService.EXPECT().
		Propose(gomock.Any(), gomock.Any()).
		Return(&services.ProposeOutcome{Provider: config.ProviderGemini, Message: "Here are your transactions."}, nil)

	c, rec := s.authedRequest(http.MethodPost, "/api/v1/ai/propose", map[string]string{"provider": "gemini"})

	s.NoError(s.handler.Propose(c))
	s.Equal(http.StatusOK, rec.Code)

	var raw map[string]interface{}
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &raw))
	s.Contains(raw, "proposal")
	s.Nil(raw["proposal"])
	s.Equal("Here are your transactions.", raw["message"])
	s.Equal(config.ProviderGemini, raw["provider"])
}

func (s *ProposalHandlerTestSuite) TestPropose_ServiceErrors() {
	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"citation outside targets", &services.GroundingError{Rule: services.GroundingRuleCitationNotInTargets, IDs: []string{"x"}}, http.StatusBadRequest, "GROUNDING_001"},
		{"unknown transaction", &services.GroundingError{Rule: services.GroundingRuleOutOfTenantOrUnknown, IDs: []string{"y"}}, http.StatusBadRequest, "GROUNDING_002"},
		{"unknown category", services.ErrUnknownCategory, http.StatusBadRequest, "GROUNDING_003"},
		{"bad tool arguments", &services.ShapeError{Details: []string{"citations: is required"}}, http.StatusBadRequest, "VALIDATION_001"},
		{"missing credential", llm.ErrMissingCredential, http.StatusBadRequest, "PROVIDER_001"},
		{"unknown provider", llm.ErrUnknownProvider, http.StatusBadRequest, "PROVIDER_002"},
		{"upstream failure", &llm.ProviderError{Provider: config.ProviderAnthropic, StatusCode: 529, Body: "overloaded"}, http.StatusBadGateway, "PROVIDER_003"},
		{"connection refused", llm.AsProviderError(config.ProviderGemini, fmt.Errorf("dial tcp 127.0.0.1:1: connect: connection refused")), http.StatusBadGateway, "PROVIDER_003"},
		{"provider timeout", llm.AsProviderError(config.ProviderOpenAI, fmt.Errorf("Post \"https://api.openai.com\": %w", context.DeadlineExceeded)), http.StatusGatewayTimeout, "PROVIDER_004"},
		{"proposal not stored", fmt.Errorf("failed to create proposal: %w: %w", services.ErrPersistence, fmt.Errorf("database is locked")), http.StatusInternalServerError, "SYSTEM_002"},
		{"anything else", fmt.Errorf("boom"), http.StatusInternalServerError, "SYSTEM_001"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.proposalService.EXPECT().Propose(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			c, rec := s.authedRequest(http.MethodPost, "/api/v1/ai/propose", map[string]string{})

			s.NoError(s.handler.Propose(c))
			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, decodeError(rec).Error.Code)
		})
	}
}

func (s *ProposalHandlerTestSuite) TestPropose_ProviderFailureNamesProvider() {
	err := llm.AsProviderError(config.ProviderOpenAI, fmt.Errorf("Post \"https://api.openai.com\": %w", context.DeadlineExceeded))
	s.proposalService.EXPECT().Propose(gomock.Any(), gomock.Any()).Return(nil, err)

	c, rec := s.authedRequest(http.MethodPost, "/api/v1/ai/propose", map[string]string{})

	s.NoError(s.handler.Propose(c))
	s.Equal(http.StatusGatewayTimeout, rec.Code)
	body := decodeError(rec)
	s.Equal("openai did not respond in time", body.Error.Message)
	s.Require().Len(body.Error.Details, 1)
	s.Contains(body.Error.Details[0], "openai request failed")
	s.Contains(body.Error.Details[0], "context deadline exceeded")
}

func (s *ProposalHandlerTestSuite) TestPropose_WithoutTenant() {
	c, rec := newRequest(s.e, http.MethodPost, "/api/v1/ai/propose", map[string]string{})
	c.Set(UserIDContextKey, s.userID)

	s.NoError(s.handler.Propose(c))
	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("AUTH_007", decodeError(rec).Error.Code)
}

func (s *ProposalHandlerTestSuite) TestConfirm_OnlyLiteralTrueConfirms() {
	proposalID := uuid.New()
	testCases := []struct {
		name    string
		body    string
		confirm bool
	}{
		{"literal true", `{"proposal_id":"` + proposalID.String() + `","confirm":true}`, true},
		{"string true", `{"proposal_id":"` + proposalID.String() + `","confirm":"true"}`, false},
		{"one", `{"proposal_id":"` + proposalID.String() + `","confirm":1}`, false},
		{"false", `{"proposal_id":"` + proposalID.String() + `","confirm":false}`, false},
		{"missing", `{"proposal_id":"` + proposalID.String() + `"}`, false},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			status := models.ProposalStatusRejected
			if tc.confirm {
				status = models.ProposalStatusExecuted
			}
			executionID := uuid.New()

			s.confirmationService.EXPECT().
				Confirm(gomock.Any(), services.ConfirmInput{
					TenantID:   s.tenantID,
					UserID:     s.userID,
					ProposalID: proposalID,
					Confirm:    tc.confirm,
				}).
				Return(&services.ExecutionResult{
					ExecutionID: executionID,
					Status:      status,
					Result:      models.JSONBMap{"updated_count": 2},
				}, nil)

			c, rec := s.authedRequest(http.MethodPost, "/api/v1/ai/confirm", tc.body)

			s.NoError(s.handler.Confirm(c))
			s.Equal(http.StatusOK, rec.Code)

			var response dto.ConfirmResponse
			s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
			s.Equal(executionID.String(), response.ExecutionID)
			s.Equal(status, response.Status)
		})
	}
}

func (s *ProposalHandlerTestSuite) TestConfirm_Errors() {
	s.Run("invalid proposal id", func() {
		c, rec := s.authedRequest(http.MethodPost, "/api/v1/ai/confirm", `{"proposal_id":"nope","confirm":true}`)

		s.NoError(s.handler.Confirm(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_001", decodeError(rec).Error.Code)
	})

	s.Run("not found", func() {
		s.confirmationService.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(nil, services.ErrProposalNotFound)

		c, rec := s.authedRequest(http.MethodPost, "/api/v1/ai/confirm", map[string]interface{}{
			"proposal_id": uuid.New().String(),
			"confirm":     true,
		})

		s.NoError(s.handler.Confirm(c))
		s.Equal(http.StatusNotFound, rec.Code)
		s.Equal("PROPOSAL_001", decodeError(rec).Error.Code)
	})

	s.Run("not pending", func() {
		s.confirmationService.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(nil, services.ErrProposalNotPending)

		c, rec := s.authedRequest(http.MethodPost, "/api/v1/ai/confirm", map[string]interface{}{
			"proposal_id": uuid.New().String(),
			"confirm":     true,
		})

		s.NoError(s.handler.Confirm(c))
		s.Equal(http.StatusConflict, rec.Code)
		s.Equal("PROPOSAL_002", decodeError(rec).Error.Code)
	})

	s.Run("rolled back", func() {
		s.confirmationService.EXPECT().Confirm(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("failed to update transaction categories: %w: %w", services.ErrPersistence, fmt.Errorf("database is locked")))

		c, rec := s.authedRequest(http.MethodPost, "/api/v1/ai/confirm", map[string]interface{}{
			"proposal_id": uuid.New().String(),
			"confirm":     true,
		})

		s.NoError(s.handler.Confirm(c))
		s.Equal(http.StatusInternalServerError, rec.Code)
		body := decodeError(rec)
		s.Equal("SYSTEM_002", body.Error.Code)
		s.NotContains(body.Error.Message, "locked")
	})
}

func (s *ProposalHandlerTestSuite) TestListProposals() {
	proposals := []models.Proposal{
		{ID: uuid.New(), TenantID: s.tenantID, Status: models.ProposalStatusExecuted},
		{ID: uuid.New(), TenantID: s.tenantID, Status: models.ProposalStatusProposed},
	}
	s.proposalService.EXPECT().ListProposals(gomock.Any(), s.tenantID, 10).Return(proposals, nil)

	c, rec := s.authedRequest(http.MethodGet, "/api/v1/ai/proposals?limit=10", nil)

	s.NoError(s.handler.ListProposals(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ListProposalsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Proposals, 2)
	s.Equal(proposals[0].ID.String(), response.Proposals[0].ID)
}
