package services

import (
	"context"
	"encoding/json"
	"fmt"

	"ledger-copilot/internal/models"
	"ledger-copilot/internal/repositories"

	"github.com/google/uuid"
)

// GroundingContextLimit caps how many transactions a provider is shown.
const GroundingContextLimit = 100

// GroundingContext is the exact set of tenant transactions presented to the
// provider for one propose call. It is immutable once built.
type GroundingContext struct {
	TenantID     uuid.UUID
	Transactions []models.Transaction
	ids          map[string]struct{}
}

type groundingRow struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Amount     string `json:"amount"`
	PostedDate string `json:"posted_date"`
}

func NewGroundingContext(tenantID uuid.UUID, transactions []models.Transaction) *GroundingContext {
	ids := make(map[string]struct{}, len(transactions))
	for _, t := range transactions {
		ids[t.ID.String()] = struct{}{}
	}

	return &GroundingContext{
		TenantID:     tenantID,
		Transactions: transactions,
		ids:          ids,
	}
}

func (g *GroundingContext) Contains(id string) bool {
	_, ok := g.ids[id]
	return ok
}

// IDs returns the context ids in presentation order.
func (g *GroundingContext) IDs() []string {
	out := make([]string, 0, len(g.Transactions))
	for _, t := range g.Transactions {
		out = append(out, t.ID.String())
	}
	return out
}

// Missing returns the ids not present in the context, preserving input order.
func (g *GroundingContext) Missing(ids []string) []string {
	var missing []string
	for _, id := range ids {
		if !g.Contains(id) {
			missing = append(missing, id)
		}
	}
	return missing
}

// PromptPayload renders the user message sent to the provider.
func (g *GroundingContext) PromptPayload(question string) string {
	rows := make([]groundingRow, 0, len(g.Transactions))
	for _, t := range g.Transactions {
		rows = append(rows, groundingRow{
			ID:         t.ID.String(),
			Name:       t.Name,
			Amount:     t.Amount.StringFixed(2),
			PostedDate: t.PostedDateString(),
		})
	}

	encoded, _ := json.Marshal(rows)
	return fmt.Sprintf("Available transactions (use only these IDs): %s. User question: %s", encoded, question)
}

// GroundingService reads the tenant's latest transactions
type GroundingService struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

func NewGroundingService(transactionRepo repositories.TransactionRepositoryInterface) GroundingServiceInterface {
	return &GroundingService{transactionRepo: transactionRepo}
}

func (s *GroundingService) Build(ctx context.Context, tenantID uuid.UUID) (*GroundingContext, error) {
	transactions, err := s.transactionRepo.GetRecentByTenant(ctx, tenantID, GroundingContextLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load grounding transactions: %w", err)
	}

	return NewGroundingContext(tenantID, transactions), nil
}
