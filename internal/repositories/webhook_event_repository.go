package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ledger-copilot/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WebhookEventRepository handles database operations for webhook dedup records
type WebhookEventRepository struct {
	db *gorm.DB
}

// NewWebhookEventRepository creates a new webhook event repository
func NewWebhookEventRepository(db *gorm.DB) WebhookEventRepositoryInterface {
	return &WebhookEventRepository{db: db}
}

func (r *WebhookEventRepository) WithTx(tx *gorm.DB) WebhookEventRepositoryInterface {
	return &WebhookEventRepository{db: tx}
}

// InsertIfAbsent inserts the event unless one with the same (tenant,
// provider, idempotency key) exists. It reports whether the row was newly
// created. The unique index makes this safe against concurrent redelivery.
func (r *WebhookEventRepository) InsertIfAbsent(ctx context.Context, event *models.WebhookEvent) (bool, error) {
	if event == nil {
		return false, errors.New("webhook event cannot be nil")
	}

	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "tenant_id"}, {Name: "provider"}, {Name: "idempotency_key"}},
			DoNothing: true,
		}).
		Create(event)
	if result.Error != nil {
		return false, fmt.Errorf("failed to insert webhook event: %w: %w", ErrPersistence, result.Error)
	}

	return result.RowsAffected == 1, nil
}

// MarkProcessed stamps processed_at once. Already processed events are left alone.
func (r *WebhookEventRepository) MarkProcessed(ctx context.Context, id uuid.UUID, at time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.WebhookEvent{}).
		Where("id = ? AND processed_at IS NULL", id).
		Update("processed_at", at)
	if result.Error != nil {
		return fmt.Errorf("failed to mark webhook event processed: %w: %w", ErrPersistence, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrWebhookEventNotFound
	}
	return nil
}

func (r *WebhookEventRepository) GetByKey(ctx context.Context, tenantID uuid.UUID, provider, idempotencyKey string) (*models.WebhookEvent, error) {
	var event models.WebhookEvent
	err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND provider = ? AND idempotency_key = ?", tenantID, provider, idempotencyKey).
		First(&event).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWebhookEventNotFound
		}
		return nil, fmt.Errorf("failed to get webhook event: %w: %w", ErrPersistence, err)
	}
	return &event, nil
}

func (r *WebhookEventRepository) DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&models.WebhookEvent{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete webhook events: %w: %w", ErrPersistence, result.Error)
	}
	return result.RowsAffected, nil
}
