package services

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"ledger-copilot/internal/models"
	"ledger-copilot/internal/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookSimulator_GeneratePayload(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	sim := NewWebhookSimulator(42).(*webhookSimulator)
	sim.now = func() time.Time { return now }

	payload := sim.GeneratePayload("item-demo-tenant-a", 25)

	require.NoError(t, validation.GetValidator().Struct(payload))
	assert.Equal(t, "item-demo-tenant-a", payload.ItemID)
	assert.True(t, strings.HasPrefix(payload.IdempotencyKey, "sim-"))
	require.Len(t, payload.Transactions, 25)

	earliest := now.AddDate(0, 0, -simulatedHistoryDays).Truncate(24 * time.Hour)
	seen := make(map[string]bool)
	for _, txn := range payload.Transactions {
		assert.True(t, strings.HasPrefix(txn.TransactionID, "txn-"))
		assert.False(t, seen[txn.TransactionID], "duplicate transaction id %s", txn.TransactionID)
		seen[txn.TransactionID] = true

		assert.True(t, txn.Amount.IsNegative(), "amount %s should be a debit", txn.Amount)
		assert.LessOrEqual(t, txn.Amount.Exponent(), int32(0))
		assert.True(t, txn.Amount.Equal(txn.Amount.Round(2)))
		assert.Equal(t, models.DefaultCurrency, txn.ISOCurrencyCode)

		posted, err := time.Parse(models.DateLayout, txn.Date)
		require.NoError(t, err)
		assert.False(t, posted.Before(earliest), "date %s before window", txn.Date)
		assert.False(t, posted.After(now), "date %s after now", txn.Date)
	}
}

func TestWebhookSimulator_ClampsCount(t *testing.T) {
	sim := NewWebhookSimulator(7)

	assert.Len(t, sim.GeneratePayload("item", 0).Transactions, 1)
	assert.Len(t, sim.GeneratePayload("item", -3).Transactions, 1)
	assert.Len(t, sim.GeneratePayload("item", maxSimulatedBatch+1).Transactions, maxSimulatedBatch)
}

func TestWebhookSimulator_SeedIsDeterministic(t *testing.T) {
	now := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)
	first := NewWebhookSimulator(99).(*webhookSimulator)
	second := NewWebhookSimulator(99).(*webhookSimulator)
	first.now = func() time.Time { return now }
	second.now = func() time.Time { return now }

	a, err := json.Marshal(first.GeneratePayload("item", 10))
	require.NoError(t, err)
	b, err := json.Marshal(second.GeneratePayload("item", 10))
	require.NoError(t, err)

	assert.JSONEq(t, string(a), string(b))
}

func TestWebhookSimulator_SignedPayloadVerifies(t *testing.T) {
	body, err := json.Marshal(NewWebhookSimulator(1).GeneratePayload("item", 3))
	require.NoError(t, err)

	signature := SignPayload("secret", body)
	assert.True(t, VerifySignature("secret", body, signature))
	assert.False(t, VerifySignature("other", body, signature))
}
