package models

import (
	"time"

	"github.com/google/uuid"
)

const (
	DefaultTransactionLimit = 50
	MaxTransactionLimit     = 200
)

// TransactionFilters contains filtering options for tenant transaction queries
type TransactionFilters struct {
	TenantID      uuid.UUID
	StartDate     *time.Time
	EndDate       *time.Time
	CategoryID    *uuid.UUID
	Uncategorized bool
	Search        string
	Offset        int
	Limit         int
}

// Normalize clamps paging values into their allowed ranges.
func (f *TransactionFilters) Normalize() {
	if f.Limit <= 0 {
		f.Limit = DefaultTransactionLimit
	}
	if f.Limit > MaxTransactionLimit {
		f.Limit = MaxTransactionLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
}
