package handlers

import (
	"io"
	"net/http"

	"ledger-copilot/internal/dto"
	"ledger-copilot/internal/errors"
	"ledger-copilot/internal/services"

	"github.com/labstack/echo/v4"
)

const (
	// SignatureHeader carries the HMAC-SHA256 of the raw request body
	SignatureHeader = "X-Plaid-Signature"
	// FallbackSignatureHeader is accepted when SignatureHeader is absent
	FallbackSignatureHeader = "X-Webhook-Signature"
)

// WebhookHandler receives provider deliveries
type WebhookHandler struct {
	webhookService services.WebhookServiceInterface
}

// NewWebhookHandler creates a new webhook handler
func NewWebhookHandler(webhookService services.WebhookServiceInterface) *WebhookHandler {
	return &WebhookHandler{webhookService: webhookService}
}

// ReceivePlaid ingests a signed transaction delivery
// @Summary Receive transaction webhook
// @Description Verify the body signature and ingest the delivery at most once per idempotency key
// @Tags Webhooks
// @Accept json
// @Produce json
// @Param X-Plaid-Signature header string true "sha256=<hex hmac of the raw body>"
// @Success 200 {object} dto.WebhookResponse "Delivery accepted"
// @Failure 400 {object} errors.ErrorResponse "WEBHOOK_002 - Malformed payload"
// @Failure 401 {object} errors.ErrorResponse "WEBHOOK_001 - Invalid signature"
// @Failure 404 {object} errors.ErrorResponse "WEBHOOK_003 - Unknown or disconnected item"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /webhooks/plaid [post]
func (h *WebhookHandler) ReceivePlaid(c echo.Context) error {
	// The signature covers the exact bytes received, so the body is read
	// raw rather than bound.
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return SendError(c, errors.WebhookMalformedPayload, errors.WithDetails("could not read request body"))
	}

	signature := c.Request().Header.Get(SignatureHeader)
	if signature == "" {
		signature = c.Request().Header.Get(FallbackSignatureHeader)
	}

	result, err := h.webhookService.Ingest(requestContext(c), body, signature)
	if err != nil {
		return sendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, dto.WebhookResponse{OK: true, Deduped: result.Deduped})
}
