package dto

import (
	"github.com/shopspring/decimal"
)

// WebhookPayload is the body of a provider delivery
type WebhookPayload struct {
	ItemID         string               `json:"item_id" validate:"required,max=255"`
	IdempotencyKey string               `json:"idempotency_key" validate:"required,max=255"`
	Transactions   []WebhookTransaction `json:"transactions" validate:"dive"`
}

// WebhookTransaction is a single transaction fact inside a delivery. A null or
// absent iso_currency_code means USD.
type WebhookTransaction struct {
	TransactionID   string           `json:"transaction_id" validate:"required,max=255"`
	Name            string           `json:"name" validate:"required,max=255"`
	Amount          *decimal.Decimal `json:"amount" validate:"required"`
	ISOCurrencyCode string           `json:"iso_currency_code,omitempty" validate:"omitempty,len=3"`
	Date            string           `json:"date" validate:"required,iso_date"`
}

// WebhookResponse acknowledges a delivery
type WebhookResponse struct {
	OK      bool `json:"ok"`
	Deduped bool `json:"deduped"`
}
