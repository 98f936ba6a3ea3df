package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	DefaultCurrency = "USD"
	DateLayout      = "2006-01-02"
)

var (
	ErrTransactionTenantRequired     = errors.New("transaction tenant ID is required")
	ErrTransactionProviderIDRequired = errors.New("provider transaction ID is required")
)

// Transaction is a tenant-scoped financial fact. It is created by ingestion
// and only its category assignment changes afterwards.
type Transaction struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	TenantID              uuid.UUID       `gorm:"type:uuid;not null;index;uniqueIndex:idx_transactions_tenant_provider_txn" json:"tenant_id"`
	ProviderItemID        *uuid.UUID      `gorm:"type:uuid;index" json:"provider_item_id,omitempty"`
	ProviderTransactionID string          `gorm:"type:varchar(255);not null;uniqueIndex:idx_transactions_tenant_provider_txn" json:"provider_transaction_id"`
	Name                  string          `gorm:"type:varchar(255);not null" json:"name"`
	Amount                decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"amount"`
	Currency              string          `gorm:"type:varchar(3);not null;default:'USD'" json:"currency"`
	PostedDate            time.Time       `gorm:"type:date;not null;index" json:"posted_date"`
	CategoryID            *uuid.UUID      `gorm:"type:uuid;index" json:"category_id,omitempty"`
	CreatedAt             time.Time       `gorm:"not null" json:"created_at"`
	UpdatedAt             time.Time       `gorm:"not null" json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL" json:"category,omitempty"`
}

func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	if t.Currency == "" {
		t.Currency = DefaultCurrency
	}

	now := time.Now()
	if t.CreatedAt.IsZero() {
		t.CreatedAt = now
	}
	if t.UpdatedAt.IsZero() {
		t.UpdatedAt = now
	}

	return t.Validate()
}

func (t *Transaction) Validate() error {
	if t.TenantID == uuid.Nil {
		return ErrTransactionTenantRequired
	}
	if t.ProviderTransactionID == "" {
		return ErrTransactionProviderIDRequired
	}
	if t.PostedDate.IsZero() {
		return errors.New("posted date is required")
	}
	return nil
}

// PostedDateString renders the posted date the way the provider sent it.
func (t *Transaction) PostedDateString() string {
	return t.PostedDate.Format(DateLayout)
}

func (t *Transaction) TableName() string {
	return "transactions"
}
