package dto

import (
	"encoding/json"
	"time"

	"ledger-copilot/internal/models"
)

// ProposeRequest asks the selected provider for a grounded proposal
type ProposeRequest struct {
	Question string `json:"question" validate:"max=2000"`
	Provider string `json:"provider" validate:"max=32"`
}

// ProposalSummary is the stored proposal as returned to clients
type ProposalSummary struct {
	ID             string          `json:"id"`
	ProposedAction models.JSONBMap `json:"proposed_action"`
	Status         string          `json:"status"`
	Provider       string          `json:"provider,omitempty"`
	Model          string          `json:"model,omitempty"`
	Result         models.JSONBMap `json:"result,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

func NewProposalSummary(p *models.Proposal) *ProposalSummary {
	return &ProposalSummary{
		ID:             p.ID.String(),
		ProposedAction: p.ProposedAction,
		Status:         p.Status,
		Provider:       p.Provider,
		Model:          p.Model,
		Result:         p.Result,
		CreatedAt:      p.CreatedAt,
	}
}

// ProposeResponse carries either a stored proposal or the provider's text reply
type ProposeResponse struct {
	ProposalID string           `json:"proposal_id,omitempty"`
	TenantID   string           `json:"tenant_id,omitempty"`
	Provider   string           `json:"provider"`
	Proposal   *ProposalSummary `json:"proposal"`
	Message    string           `json:"message,omitempty"`
}

// ConfirmRequest approves or rejects a proposal. Confirm is kept raw so
// that only a literal JSON true counts as approval.
type ConfirmRequest struct {
	ProposalID string          `json:"proposal_id" validate:"required,uuid"`
	Confirm    json.RawMessage `json:"confirm"`
}

// IsConfirmed reports whether the confirm field is exactly the JSON literal true.
func (r *ConfirmRequest) IsConfirmed() bool {
	return string(r.Confirm) == "true"
}

// ConfirmResponse reports the execution outcome
type ConfirmResponse struct {
	ExecutionID string          `json:"execution_id"`
	Status      string          `json:"status"`
	Result      models.JSONBMap `json:"result"`
}

// ListProposalsResponse represents the response for listing proposals
type ListProposalsResponse struct {
	Proposals []*ProposalSummary `json:"proposals"`
}
