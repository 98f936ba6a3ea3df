package repositories

import (
	"errors"
	"strings"

	"github.com/lib/pq"
)

var (
	ErrTenantNotFound        = errors.New("tenant not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrUserAlreadyExists     = errors.New("user already exists")
	ErrCategoryNotFound      = errors.New("category not found")
	ErrCategoryAlreadyExists = errors.New("category already exists")
	ErrProviderItemNotFound  = errors.New("provider item not found")
	ErrProposalNotFound      = errors.New("proposal not found")
	ErrProposalNotPending    = errors.New("proposal is not pending")
	ErrInvalidTransition     = errors.New("invalid proposal status transition")
	ErrExecutionNotFound     = errors.New("action execution not found")
	ErrWebhookEventNotFound  = errors.New("webhook event not found")

	// ErrPersistence marks a failed database round trip, as opposed to a
	// lookup that found nothing.
	ErrPersistence = errors.New("persistence failure")
)

const pgUniqueViolation = "23505"

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == pgUniqueViolation {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, pgUniqueViolation)
}
