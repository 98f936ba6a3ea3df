package services

import (
	"fmt"
	"time"

	"ledger-copilot/internal/dto"
	"ledger-copilot/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

const (
	simulatedHistoryDays = 30
	maxSimulatedBatch    = 500
)

type merchant struct {
	name      string
	minAmount float64
	maxAmount float64
}

type webhookSimulator struct {
	merchants []merchant
	faker     *gofakeit.Faker
	now       func() time.Time
}

// NewWebhookSimulator creates a generator of synthetic deliveries. A zero seed
// draws a random one.
func NewWebhookSimulator(seed uint64) WebhookSimulatorInterface {
	return &webhookSimulator{
		merchants: initializeMerchantPool(),
		faker:     gofakeit.New(seed),
		now:       time.Now,
	}
}

func initializeMerchantPool() []merchant {
	return []merchant{
		// Coffee
		{"Starbucks", 3.50, 9.00},
		{"Dunkin'", 2.50, 8.00},
		{"Blue Bottle Coffee", 4.00, 12.00},

		// Dining
		{"Chipotle Mexican Grill", 9.00, 25.00},
		{"Panera Bread", 8.00, 22.00},
		{"Olive Garden", 25.00, 90.00},

		// Groceries
		{"Whole Foods Market", 15.00, 250.00},
		{"Trader Joe's", 15.00, 150.00},
		{"Kroger", 15.00, 200.00},

		// Transportation
		{"Uber", 8.00, 60.00},
		{"Lyft", 8.00, 55.00},
		{"Shell", 25.00, 80.00},

		// Subscriptions and bills
		{"Netflix", 15.49, 22.99},
		{"Spotify", 10.99, 16.99},
		{"Comcast Xfinity", 60.00, 150.00},

		// Shopping
		{"Amazon", 10.00, 300.00},
		{"Target", 12.00, 200.00},
	}
}

// GeneratePayload builds a delivery of count debits for itemID with a fresh
// idempotency key. Amounts are negative, as debits are on the wire.
func (g *webhookSimulator) GeneratePayload(itemID string, count int) *dto.WebhookPayload {
	if count < 1 {
		count = 1
	}
	if count > maxSimulatedBatch {
		count = maxSimulatedBatch
	}

	end := g.now().UTC()
	start := end.AddDate(0, 0, -simulatedHistoryDays)

	transactions := make([]dto.WebhookTransaction, 0, count)
	for i := 0; i < count; i++ {
		m := g.merchants[g.faker.IntRange(0, len(g.merchants)-1)]
		amount := decimal.NewFromFloat(g.faker.Float64Range(m.minAmount, m.maxAmount)).Round(2).Neg()

		transactions = append(transactions, dto.WebhookTransaction{
			TransactionID:   fmt.Sprintf("txn-%s", g.faker.UUID()),
			Name:            m.name,
			Amount:          &amount,
			ISOCurrencyCode: models.DefaultCurrency,
			Date:            g.faker.DateRange(start, end).Format(models.DateLayout),
		})
	}

	return &dto.WebhookPayload{
		ItemID:         itemID,
		IdempotencyKey: "sim-" + g.faker.UUID(),
		Transactions:   transactions,
	}
}
