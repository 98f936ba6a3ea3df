package models

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const MaxCategoryNameLength = 64

// Category is a tenant-scoped label. Names are unique per tenant and are
// matched case-insensitively when resolving a proposed label.
type Category struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_categories_tenant_name" json:"tenant_id"`
	Name      string    `gorm:"type:varchar(64);not null;uniqueIndex:idx_categories_tenant_name" json:"name"`
	CreatedAt time.Time `gorm:"not null" json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return c.Validate()
}

func (c *Category) Validate() error {
	if c.TenantID == uuid.Nil {
		return errors.New("tenant ID is required")
	}

	name := strings.TrimSpace(c.Name)
	if name == "" {
		return errors.New("category name is required")
	}
	if len(name) > MaxCategoryNameLength {
		return errors.New("category name is too long")
	}
	return nil
}

func (c *Category) TableName() string {
	return "categories"
}
