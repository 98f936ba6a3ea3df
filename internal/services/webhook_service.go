package services

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"ledger-copilot/internal/dto"
	"ledger-copilot/internal/models"
	"ledger-copilot/internal/repositories"
	"ledger-copilot/internal/validation"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const signaturePrefix = "sha256="

var (
	ErrInvalidSignature = errors.New("invalid webhook signature")
	ErrUnknownItem      = errors.New("unknown or disconnected provider item")
	ErrPersistence      = repositories.ErrPersistence
)

// WebhookWriteError reports a delivery whose database transaction rolled
// back. None of its facts were stored and no event row exists, so the same
// delivery can be sent again.
type WebhookWriteError struct {
	IdempotencyKey string
	Err            error
}

func (e *WebhookWriteError) Error() string {
	return fmt.Sprintf("webhook event %q not recorded: %v", e.IdempotencyKey, e.Err)
}

func (e *WebhookWriteError) Unwrap() error {
	return e.Err
}

// MalformedPayloadError reports a delivery body that cannot be ingested
type MalformedPayloadError struct {
	Details []string
}

func (e *MalformedPayloadError) Error() string {
	return "malformed webhook payload: " + strings.Join(e.Details, "; ")
}

type IngestResult struct {
	EventID  uuid.UUID
	TenantID uuid.UUID
	Deduped  bool
	Received int
	Inserted int64
}

// SignPayload returns the signature header value for body.
func SignPayload(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature checks an HMAC-SHA256 hex signature, with or without the
// sha256= prefix, in constant time.
func VerifySignature(secret string, body []byte, signature string) bool {
	signature = strings.TrimSpace(signature)
	if secret == "" || signature == "" {
		return false
	}

	provided, err := hex.DecodeString(strings.TrimPrefix(signature, signaturePrefix))
	if err != nil {
		return false
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hmac.Equal(mac.Sum(nil), provided)
}

// WebhookService ingests signed transaction deliveries exactly once per
// (tenant, provider, idempotency key). The event insert, the fact upserts and
// the processed stamp commit together.
type WebhookService struct {
	db           *gorm.DB
	secret       string
	itemRepo     repositories.ProviderItemRepositoryInterface
	eventRepo    repositories.WebhookEventRepositoryInterface
	txnRepo      repositories.TransactionRepositoryInterface
	validator    *validation.Validator
	auditLogger  AuditLoggerInterface
	auditService AuditServiceInterface
	metrics      MetricsRecorderInterface
}

func NewWebhookService(
	db *gorm.DB,
	secret string,
	itemRepo repositories.ProviderItemRepositoryInterface,
	eventRepo repositories.WebhookEventRepositoryInterface,
	txnRepo repositories.TransactionRepositoryInterface,
	auditLogger AuditLoggerInterface,
	auditService AuditServiceInterface,
	metrics MetricsRecorderInterface,
) WebhookServiceInterface {
	return &WebhookService{
		db:           db,
		secret:       secret,
		itemRepo:     itemRepo,
		eventRepo:    eventRepo,
		txnRepo:      txnRepo,
		validator:    validation.GetValidator(),
		auditLogger:  auditLogger,
		auditService: auditService,
		metrics:      metrics,
	}
}

func (s *WebhookService) Ingest(ctx context.Context, body []byte, signature string) (*IngestResult, error) {
	if !VerifySignature(s.secret, body, signature) {
		s.countOutcome("invalid_signature")
		return nil, ErrInvalidSignature
	}

	payload, raw, err := s.parse(body)
	if err != nil {
		s.countOutcome("malformed")
		return nil, err
	}

	item, err := s.itemRepo.GetByProviderItemID(ctx, payload.ItemID)
	if err != nil {
		if errors.Is(err, repositories.ErrProviderItemNotFound) {
			s.countOutcome("unknown_item")
			return nil, ErrUnknownItem
		}
		return nil, err
	}
	if !item.IsConnected() {
		s.countOutcome("unknown_item")
		return nil, ErrUnknownItem
	}

	facts, err := buildFacts(item, payload.Transactions)
	if err != nil {
		s.countOutcome("malformed")
		return nil, err
	}

	event := &models.WebhookEvent{
		TenantID:       item.TenantID,
		Provider:       models.ProviderPlaidMock,
		IdempotencyKey: payload.IdempotencyKey,
		ItemID:         payload.ItemID,
		Payload:        raw,
	}

	result := &IngestResult{TenantID: item.TenantID, Received: len(facts)}
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		events := s.eventRepo.WithTx(tx)

		created, err := events.InsertIfAbsent(ctx, event)
		if err != nil {
			return err
		}
		if !created {
			result.Deduped = true
			return nil
		}
		result.EventID = event.ID

		inserted, err := s.txnRepo.WithTx(tx).InsertIgnoringConflicts(ctx, facts)
		if err != nil {
			return err
		}
		result.Inserted = inserted

		return events.MarkProcessed(ctx, event.ID, time.Now().UTC())
	})
	if err != nil {
		s.countOutcome("error")
		return nil, &WebhookWriteError{IdempotencyKey: payload.IdempotencyKey, Err: err}
	}

	if result.Deduped {
		s.countOutcome("deduped")
		s.auditLogger.LogWebhookDeduped(ctx, item.TenantID, payload.IdempotencyKey)
		s.auditService.Record(ctx, AuditEntry{
			TenantID:   &item.TenantID,
			Action:     models.AuditActionWebhookDeduped,
			Resource:   models.AuditResourceWebhook,
			ResourceID: payload.IdempotencyKey,
			Metadata:   models.JSONBMap{"item_id": payload.ItemID},
		})
		return result, nil
	}

	s.countOutcome("ingested")
	s.metrics.RecordGauge("webhook_batch_size", float64(len(facts)), nil)
	s.auditLogger.LogWebhookIngested(ctx, item.TenantID, payload.IdempotencyKey, len(facts), result.Inserted)
	s.auditService.Record(ctx, AuditEntry{
		TenantID:   &item.TenantID,
		Action:     models.AuditActionWebhookIngested,
		Resource:   models.AuditResourceWebhook,
		ResourceID: event.ID.String(),
		Metadata: models.JSONBMap{
			"item_id":         payload.ItemID,
			"idempotency_key": payload.IdempotencyKey,
			"received":        len(facts),
			"inserted":        result.Inserted,
		},
	})

	return result, nil
}

func (s *WebhookService) parse(body []byte) (*dto.WebhookPayload, models.JSONBMap, error) {
	var payload dto.WebhookPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, nil, &MalformedPayloadError{Details: []string{err.Error()}}
	}

	if err := s.validator.Struct(&payload); err != nil {
		return nil, nil, &MalformedPayloadError{Details: validation.FormatErrors(err)}
	}

	var raw models.JSONBMap
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, nil, &MalformedPayloadError{Details: []string{err.Error()}}
	}

	return &payload, raw, nil
}

func buildFacts(item *models.ProviderItem, entries []dto.WebhookTransaction) ([]models.Transaction, error) {
	facts := make([]models.Transaction, 0, len(entries))
	for i, entry := range entries {
		postedDate, err := time.Parse(models.DateLayout, entry.Date)
		if err != nil {
			return nil, &MalformedPayloadError{Details: []string{fmt.Sprintf("transactions[%d].date: %v", i, err)}}
		}

		currency := strings.ToUpper(strings.TrimSpace(entry.ISOCurrencyCode))
		if currency == "" {
			currency = models.DefaultCurrency
		}

		itemID := item.ID
		facts = append(facts, models.Transaction{
			TenantID:              item.TenantID,
			ProviderItemID:        &itemID,
			ProviderTransactionID: entry.TransactionID,
			Name:                  entry.Name,
			Amount:                entry.Amount.Round(2),
			Currency:              currency,
			PostedDate:            postedDate,
		})
	}
	return facts, nil
}

func (s *WebhookService) countOutcome(outcome string) {
	s.metrics.IncrementCounter("webhook_events_total", map[string]string{"outcome": outcome})
}
