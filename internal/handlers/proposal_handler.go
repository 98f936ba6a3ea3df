package handlers

import (
	"net/http"

	"ledger-copilot/internal/dto"
	"ledger-copilot/internal/errors"
	"ledger-copilot/internal/repositories"
	"ledger-copilot/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ProposalHandler serves the propose and confirm endpoints
type ProposalHandler struct {
	proposalService     services.ProposalServiceInterface
	confirmationService services.ConfirmationServiceInterface
}

// NewProposalHandler creates a new proposal handler
func NewProposalHandler(
	proposalService services.ProposalServiceInterface,
	confirmationService services.ConfirmationServiceInterface,
) *ProposalHandler {
	return &ProposalHandler{
		proposalService:     proposalService,
		confirmationService: confirmationService,
	}
}

// Propose asks the selected AI provider for a grounded recategorization
// @Summary Propose an action
// @Description Ask an AI provider to propose a recategorization grounded in the tenant's recent transactions. Nothing is changed until the proposal is confirmed.
// @Tags AI
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ProposeRequest true "Question and provider"
// @Success 200 {object} dto.ProposeResponse "Stored proposal, or the provider's reply when no action was proposed"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001, GROUNDING_001..003, PROVIDER_001, PROVIDER_002"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 403 {object} errors.ErrorResponse "AUTH_007 - User has no tenant"
// @Failure 502 {object} errors.ErrorResponse "PROVIDER_003 - Upstream provider error"
// @Router /ai/propose [post]
func (h *ProposalHandler) Propose(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	tenantID, err := getTenantIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNoTenant)
	}

	var req dto.ProposeRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	outcome, err := h.proposalService.Propose(requestContext(c), services.ProposeInput{
		TenantID: tenantID,
		UserID:   userID,
		Question: req.Question,
		Provider: req.Provider,
	})
	if err != nil {
		return sendServiceError(c, err)
	}

	response := dto.ProposeResponse{Provider: outcome.Provider}
	if outcome.Proposal == nil {
		response.Message = outcome.Message
		return c.JSON(http.StatusOK, response)
	}

	response.ProposalID = outcome.Proposal.ID.String()
	response.TenantID = outcome.Proposal.TenantID.String()
	response.Proposal = dto.NewProposalSummary(outcome.Proposal)
	return c.JSON(http.StatusOK, response)
}

// Confirm approves or rejects a pending proposal
// @Summary Confirm a proposal
// @Description Apply a pending proposal when confirm is the JSON literal true, otherwise reject it. A proposal is applied at most once.
// @Tags AI
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ConfirmRequest true "Proposal id and decision"
// @Success 200 {object} dto.ConfirmResponse "Execution outcome"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 - Invalid request body"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 404 {object} errors.ErrorResponse "PROPOSAL_001 - Proposal not found"
// @Failure 409 {object} errors.ErrorResponse "PROPOSAL_002 - Proposal is no longer pending"
// @Router /ai/confirm [post]
func (h *ProposalHandler) Confirm(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthMissingToken)
	}
	tenantID, err := getTenantIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNoTenant)
	}

	var req dto.ConfirmRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	proposalID, err := uuid.Parse(req.ProposalID)
	if err != nil {
		return SendError(c, errors.ValidationInvalidFormat, errors.WithDetails("proposal_id: must be a valid UUID"))
	}

	result, err := h.confirmationService.Confirm(requestContext(c), services.ConfirmInput{
		TenantID:   tenantID,
		UserID:     userID,
		ProposalID: proposalID,
		Confirm:    req.IsConfirmed(),
	})
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.ConfirmResponse{
		ExecutionID: result.ExecutionID.String(),
		Status:      result.Status,
		Result:      result.Result,
	})
}

// ListProposals returns the tenant's recent proposals
// @Summary List proposals
// @Description List the tenant's proposals, newest first
// @Tags AI
// @Security BearerAuth
// @Produce json
// @Param limit query int false "Maximum number of proposals" default(50)
// @Success 200 {object} dto.ListProposalsResponse "Proposals"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Router /ai/proposals [get]
func (h *ProposalHandler) ListProposals(c echo.Context) error {
	tenantID, err := getTenantIDFromContext(c)
	if err != nil {
		return SendError(c, errors.AuthNoTenant)
	}

	limit := getIntParam(c, "limit", repositories.DefaultProposalListLimit)
	proposals, err := h.proposalService.ListProposals(requestContext(c), tenantID, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	response := dto.ListProposalsResponse{Proposals: make([]*dto.ProposalSummary, 0, len(proposals))}
	for i := range proposals {
		response.Proposals = append(response.Proposals, dto.NewProposalSummary(&proposals[i]))
	}
	return c.JSON(http.StatusOK, response)
}
