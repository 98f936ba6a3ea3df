package models

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

const (
	ProposalStatusProposed  = "proposed"
	ProposalStatusConfirmed = "confirmed"
	ProposalStatusRejected  = "rejected"
	ProposalStatusExecuted  = "executed"
	ProposalStatusFailed    = "failed"

	ActionRecategorize = "recategorize"
)

var (
	ErrInvalidProposalStatus = errors.New("invalid proposal status")
	ErrInvalidProposalAction = errors.New("invalid proposed action")
)

var proposalTransitions = map[string][]string{
	ProposalStatusProposed:  {ProposalStatusConfirmed, ProposalStatusRejected},
	ProposalStatusConfirmed: {ProposalStatusExecuted, ProposalStatusFailed},
	ProposalStatusRejected:  {},
	ProposalStatusExecuted:  {},
	ProposalStatusFailed:    {},
}

// Proposal is an AI-suggested mutation awaiting human confirmation. Only
// Status, Result and UpdatedAt change after creation.
type Proposal struct {
	ID                       uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID                 uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	UserID                   uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Provider                 string         `gorm:"type:varchar(32);not null" json:"provider"`
	Model                    string         `gorm:"type:varchar(128)" json:"model"`
	RequestID                string         `gorm:"type:varchar(255)" json:"request_id"`
	ProposedAction           JSONBMap       `gorm:"type:jsonb;not null" json:"proposed_action"`
	ReferencedTransactionIDs pq.StringArray `gorm:"type:text[];not null" json:"referenced_transaction_ids"`
	Status                   string         `gorm:"type:varchar(20);not null;default:'proposed';index" json:"status"`
	Result                   JSONBMap       `gorm:"type:jsonb" json:"result,omitempty"`
	CreatedAt                time.Time      `gorm:"not null;index" json:"created_at"`
	UpdatedAt                time.Time      `gorm:"not null" json:"updated_at"`
}

func (p *Proposal) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}

	// New proposals always start pending.
	p.Status = ProposalStatusProposed

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	return p.Validate()
}

func (p *Proposal) Validate() error {
	if p.TenantID == uuid.Nil {
		return errors.New("tenant ID is required")
	}
	if p.UserID == uuid.Nil {
		return errors.New("user ID is required")
	}
	if len(p.ProposedAction) == 0 {
		return ErrInvalidProposalAction
	}
	if len(p.ReferencedTransactionIDs) == 0 {
		return errors.New("referenced transaction IDs are required")
	}
	if !IsValidProposalStatus(p.Status) {
		return ErrInvalidProposalStatus
	}
	return nil
}

func (p *Proposal) IsPending() bool {
	return p.Status == ProposalStatusProposed
}

// CanTransitionTo checks the proposal state machine.
func (p *Proposal) CanTransitionTo(newStatus string) bool {
	return CanTransitionProposal(p.Status, newStatus)
}

// Action decodes the stored proposed action.
func (p *Proposal) Action() (*RecategorizeAction, error) {
	return RecategorizeActionFromMap(p.ProposedAction)
}

func (p *Proposal) TableName() string {
	return "proposals"
}

func CanTransitionProposal(from, to string) bool {
	allowed, exists := proposalTransitions[from]
	if !exists {
		return false
	}
	return slices.Contains(allowed, to)
}

func IsValidProposalStatus(status string) bool {
	_, ok := proposalTransitions[status]
	return ok
}

func IsTerminalProposalStatus(status string) bool {
	allowed, ok := proposalTransitions[status]
	return ok && len(allowed) == 0
}

// RecategorizeAction is the structured form of the only supported verb.
type RecategorizeAction struct {
	Action         string   `json:"action"`
	TransactionIDs []string `json:"transaction_ids"`
	CategoryName   string   `json:"category_name"`
	CategoryID     string   `json:"category_id,omitempty"`
	Rationale      string   `json:"rationale"`
	Citations      []string `json:"citations"`
}

// ToMap converts the action into the JSONB representation stored on the proposal.
func (a *RecategorizeAction) ToMap() JSONBMap {
	m := JSONBMap{
		"action":          ActionRecategorize,
		"transaction_ids": a.TransactionIDs,
		"category_name":   a.CategoryName,
		"rationale":       a.Rationale,
		"citations":       a.Citations,
	}
	if a.CategoryID != "" {
		m["category_id"] = a.CategoryID
	}
	return m
}

// RecategorizeActionFromMap decodes a stored action, accepting values that
// went through a JSON round trip.
func RecategorizeActionFromMap(m JSONBMap) (*RecategorizeAction, error) {
	if len(m) == 0 {
		return nil, ErrInvalidProposalAction
	}

	action := &RecategorizeAction{}
	action.Action, _ = m["action"].(string)
	if action.Action != ActionRecategorize {
		return nil, fmt.Errorf("%w: unsupported action %q", ErrInvalidProposalAction, action.Action)
	}

	action.CategoryName, _ = m["category_name"].(string)
	action.CategoryID, _ = m["category_id"].(string)
	action.Rationale, _ = m["rationale"].(string)
	action.TransactionIDs = toStringSlice(m["transaction_ids"])
	action.Citations = toStringSlice(m["citations"])

	if len(action.TransactionIDs) == 0 || action.CategoryName == "" {
		return nil, ErrInvalidProposalAction
	}
	return action, nil
}

func toStringSlice(v interface{}) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []interface{}:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
