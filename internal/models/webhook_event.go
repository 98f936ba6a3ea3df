package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WebhookEvent is the dedup record for an inbound provider delivery. The
// (tenant, provider, idempotency key) triple is unique; ProcessedAt is the
// only field written after insert.
type WebhookEvent struct {
	ID             uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	TenantID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_webhook_events_dedup" json:"tenant_id"`
	Provider       string     `gorm:"type:varchar(50);not null;uniqueIndex:idx_webhook_events_dedup" json:"provider"`
	IdempotencyKey string     `gorm:"type:varchar(255);not null;uniqueIndex:idx_webhook_events_dedup" json:"idempotency_key"`
	ItemID         string     `gorm:"type:varchar(255);not null" json:"item_id"`
	Payload        JSONBMap   `gorm:"type:jsonb" json:"payload,omitempty"`
	ReceivedAt     time.Time  `gorm:"not null" json:"received_at"`
	ProcessedAt    *time.Time `json:"processed_at,omitempty"`
}

func (w *WebhookEvent) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.ReceivedAt.IsZero() {
		w.ReceivedAt = time.Now()
	}
	return nil
}

func (w *WebhookEvent) IsProcessed() bool {
	return w.ProcessedAt != nil
}

func (w *WebhookEvent) TableName() string {
	return "webhook_events"
}
