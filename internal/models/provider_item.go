package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProviderItemStatusConnected    = "connected"
	ProviderItemStatusDisconnected = "disconnected"

	ProviderPlaidMock = "plaid_mock"
)

// ProviderItem is a tenant's link to an external financial-data provider.
// Webhook deliveries resolve their tenant through it.
type ProviderItem struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID       uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Provider       string    `gorm:"type:varchar(50);not null;default:'plaid_mock'" json:"provider"`
	ProviderItemID string    `gorm:"type:varchar(255);not null;uniqueIndex" json:"provider_item_id"`
	Status         string    `gorm:"type:varchar(20);not null;default:'connected'" json:"status"`
	CreatedAt      time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt      time.Time `gorm:"not null" json:"updated_at"`
}

func (p *ProviderItem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Provider == "" {
		p.Provider = ProviderPlaidMock
	}
	if p.Status == "" {
		p.Status = ProviderItemStatusConnected
	}

	now := time.Now()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = now
	}
	if p.UpdatedAt.IsZero() {
		p.UpdatedAt = now
	}

	if p.TenantID == uuid.Nil {
		return errors.New("tenant ID is required")
	}
	if p.ProviderItemID == "" {
		return errors.New("provider item ID is required")
	}
	return nil
}

func (p *ProviderItem) IsConnected() bool {
	return p.Status == ProviderItemStatusConnected
}

func (p *ProviderItem) TableName() string {
	return "provider_items"
}
