package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ledger-copilot/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProviderItemRepository handles database operations for provider items
type ProviderItemRepository struct {
	db *gorm.DB
}

// NewProviderItemRepository creates a new provider item repository
func NewProviderItemRepository(db *gorm.DB) ProviderItemRepositoryInterface {
	return &ProviderItemRepository{db: db}
}

func (r *ProviderItemRepository) WithTx(tx *gorm.DB) ProviderItemRepositoryInterface {
	return &ProviderItemRepository{db: tx}
}

func (r *ProviderItemRepository) Create(ctx context.Context, item *models.ProviderItem) error {
	if item == nil {
		return errors.New("provider item cannot be nil")
	}

	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create provider item: %w: %w", ErrPersistence, err)
	}
	return nil
}

// GetByProviderItemID looks up an item by the provider-assigned id. The
// result carries the owning tenant.
func (r *ProviderItemRepository) GetByProviderItemID(ctx context.Context, providerItemID string) (*models.ProviderItem, error) {
	var item models.ProviderItem
	if err := r.db.WithContext(ctx).Where("provider_item_id = ?", providerItemID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderItemNotFound
		}
		return nil, fmt.Errorf("failed to get provider item: %w: %w", ErrPersistence, err)
	}
	return &item, nil
}

func (r *ProviderItemRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) error {
	if status != models.ProviderItemStatusConnected && status != models.ProviderItemStatusDisconnected {
		return fmt.Errorf("invalid provider item status: %s", status)
	}

	result := r.db.WithContext(ctx).Model(&models.ProviderItem{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now().UTC(),
		})
	if result.Error != nil {
		return fmt.Errorf("failed to update provider item status: %w: %w", ErrPersistence, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrProviderItemNotFound
	}
	return nil
}

func (r *ProviderItemRepository) DeleteByTenant(ctx context.Context, tenantID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Where("tenant_id = ?", tenantID).Delete(&models.ProviderItem{})
	if result.Error != nil {
		return 0, fmt.Errorf("failed to delete provider items: %w: %w", ErrPersistence, result.Error)
	}
	return result.RowsAffected, nil
}
