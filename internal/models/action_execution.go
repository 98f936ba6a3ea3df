package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ExecutionStatusExecuted = "executed"
	ExecutionStatusRejected = "rejected"
	ExecutionStatusFailed   = "failed"
)

// ActionExecution records the outcome of a confirm call. ProposalID is
// unique, so a proposal can be executed at most once.
type ActionExecution struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ProposalID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"proposal_id"`
	TenantID   uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	ExecutedBy uuid.UUID `gorm:"type:uuid;not null" json:"executed_by"`
	Status     string    `gorm:"type:varchar(20);not null" json:"status"`
	Result     JSONBMap  `gorm:"type:jsonb" json:"result,omitempty"`
	CreatedAt  time.Time `gorm:"not null" json:"created_at"`
}

func (e *ActionExecution) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	return nil
}

func (e *ActionExecution) TableName() string {
	return "action_executions"
}
