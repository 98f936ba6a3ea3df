package models

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategorySummary is a tenant category with its aggregated transaction data
type CategorySummary struct {
	ID               uuid.UUID       `json:"id"`
	Name             string          `json:"name"`
	TransactionCount int64           `json:"transaction_count"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
}
