package handlers

import (
	"encoding/json"
	"net/http"

	"ledger-copilot/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	defaultSimulatedCount = 10
	maxSimulatedCount     = 500
)

// DemoHandler serves the demo-only endpoints. They are mounted only when a
// demo admin secret is configured.
type DemoHandler struct {
	demoService    services.DemoServiceInterface
	webhookService services.WebhookServiceInterface
	simulator      services.WebhookSimulatorInterface
	webhookSecret  string
}

// NewDemoHandler creates a new demo handler
func NewDemoHandler(
	demoService services.DemoServiceInterface,
	webhookService services.WebhookServiceInterface,
	simulator services.WebhookSimulatorInterface,
	webhookSecret string,
) *DemoHandler {
	return &DemoHandler{
		demoService:    demoService,
		webhookService: webhookService,
		simulator:      simulator,
		webhookSecret:  webhookSecret,
	}
}

// Bootstrap seeds the demo dataset
// @Summary Bootstrap demo data
// @Description Create or find the demo tenants, users, item, categories and transactions. Safe to repeat.
// @Tags Demo
// @Security DemoAdmin
// @Produce json
// @Success 200 {object} dto.DemoBootstrapResponse "Seeded dataset"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid admin secret"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /demo/bootstrap [post]
func (h *DemoHandler) Bootstrap(c echo.Context) error {
	response, err := h.demoService.Bootstrap(requestContext(c))
	if err != nil {
		return SendSystemError(c, err)
	}
	return c.JSON(http.StatusOK, response)
}

// Reset deletes the demo dataset
// @Summary Reset demo data
// @Description Delete the demo tenants and everything they own. Reports each step.
// @Tags Demo
// @Security DemoAdmin
// @Produce json
// @Success 200 {object} dto.DemoResetResponse "Every step succeeded"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid admin secret"
// @Failure 500 {object} dto.DemoResetResponse "At least one step failed"
// @Router /demo/reset [post]
func (h *DemoHandler) Reset(c echo.Context) error {
	response := h.demoService.Reset(requestContext(c))

	status := http.StatusOK
	if response.Status != services.DemoResetOK {
		status = http.StatusInternalServerError
	}
	return c.JSON(status, response)
}

// SimulateWebhook builds a signed synthetic delivery for the demo item and
// runs it through the regular ingestion path.
// @Summary Simulate a webhook delivery
// @Description Generate count synthetic debits for the demo item and ingest them as a signed delivery
// @Tags Demo
// @Security DemoAdmin
// @Produce json
// @Param count query int false "Number of transactions (max 500)" default(10)
// @Success 200 {object} SuccessResponse "Ingestion result"
// @Failure 404 {object} errors.ErrorResponse "WEBHOOK_003 - Demo item not bootstrapped"
// @Router /demo/simulate-webhook [post]
func (h *DemoHandler) SimulateWebhook(c echo.Context) error {
	count := getIntParam(c, "count", defaultSimulatedCount)
	if count > maxSimulatedCount {
		count = maxSimulatedCount
	}

	payload := h.simulator.GeneratePayload(services.DemoItemIDTenantA, count)
	body, err := json.Marshal(payload)
	if err != nil {
		return SendSystemError(c, err)
	}

	result, err := h.webhookService.Ingest(requestContext(c), body, services.SignPayload(h.webhookSecret, body))
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Simulated delivery ingested",
		Data: map[string]interface{}{
			"idempotency_key": payload.IdempotencyKey,
			"event_id":        result.EventID,
			"received":        result.Received,
			"inserted":        result.Inserted,
			"deduped":         result.Deduped,
		},
	})
}
