package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"ledger-copilot/internal/dto"
	"ledger-copilot/internal/services"
	"ledger-copilot/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

const webhookBody = `{"item_id":"item-demo-tenant-a","idempotency_key":"evt-1","transactions":[]}`

type WebhookHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	webhookService *service_mocks.MockWebhookServiceInterface
	handler        *WebhookHandler
	e              *echo.Echo
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.webhookService = service_mocks.NewMockWebhookServiceInterface(s.ctrl)
	s.handler = NewWebhookHandler(s.webhookService)
	s.e = newTestEcho()
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *WebhookHandlerTestSuite) TestReceive_PassesRawBodyAndSignature() {
	s.webhookService.EXPECT().
		Ingest(gomock.Any(), []byte(webhookBody), "sha256=abc").
		Return(&services.IngestResult{EventID: uuid.New(), Received: 0}, nil)

	c, rec := newRequest(s.e, http.MethodPost, "/api/v1/webhooks/plaid", webhookBody)
	c.Request().Header.Set(SignatureHeader, "sha256=abc")

	s.NoError(s.handler.ReceivePlaid(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.WebhookResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.True(response.OK)
	s.False(response.Deduped)
}

func (s *WebhookHandlerTestSuite) TestReceive_FallbackSignatureHeader() {
	s.webhookService.EXPECT().
		Ingest(gomock.Any(), gomock.Any(), "sha256=fallback").
		Return(&services.IngestResult{Deduped: true}, nil)

	c, rec := newRequest(s.e, http.MethodPost, "/api/v1/webhooks/plaid", webhookBody)
	c.Request().Header.Set(FallbackSignatureHeader, "sha256=fallback")

	s.NoError(s.handler.ReceivePlaid(c))
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"ok":true,"deduped":true}`, rec.Body.String())
}

func (s *WebhookHandlerTestSuite) TestReceive_PrimaryHeaderWins() {
	s.webhookService.EXPECT().
		Ingest(gomock.Any(), gomock.Any(), "sha256=primary").
		Return(&services.IngestResult{}, nil)

	c, _ := newRequest(s.e, http.MethodPost, "/api/v1/webhooks/plaid", webhookBody)
	c.Request().Header.Set(SignatureHeader, "sha256=primary")
	c.Request().Header.Set(FallbackSignatureHeader, "sha256=fallback")

	s.NoError(s.handler.ReceivePlaid(c))
}

func (s *WebhookHandlerTestSuite) TestReceive_Errors() {
	testCases := []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"invalid signature", services.ErrInvalidSignature, http.StatusUnauthorized, "WEBHOOK_001"},
		{"malformed payload", &services.MalformedPayloadError{Details: []string{"item_id: is required"}}, http.StatusBadRequest, "WEBHOOK_002"},
		{"unknown item", services.ErrUnknownItem, http.StatusNotFound, "WEBHOOK_003"},
		{"item lookup failed", fmt.Errorf("failed to get provider item: %w: %w", services.ErrPersistence, fmt.Errorf("conn reset")), http.StatusInternalServerError, "SYSTEM_002"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.webhookService.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, tc.err)

			c, rec := newRequest(s.e, http.MethodPost, "/api/v1/webhooks/plaid", webhookBody)

			s.NoError(s.handler.ReceivePlaid(c))
			s.Equal(tc.status, rec.Code)
			s.Equal(tc.code, decodeError(rec).Error.Code)
		})
	}
}

func (s *WebhookHandlerTestSuite) TestReceive_RolledBackDelivery() {
	s.webhookService.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &services.WebhookWriteError{
			IdempotencyKey: "evt-1",
			Err:            fmt.Errorf("failed to insert transactions: %w: %w", services.ErrPersistence, fmt.Errorf("disk I/O error")),
		})

	c, rec := newRequest(s.e, http.MethodPost, "/api/v1/webhooks/plaid", webhookBody)

	s.NoError(s.handler.ReceivePlaid(c))
	s.Equal(http.StatusInternalServerError, rec.Code)

	body := decodeError(rec)
	s.Equal("WEBHOOK_004", body.Error.Code)
	s.Equal([]string{"nothing written", "idempotency_key: evt-1"}, body.Error.Details)
	s.NotContains(rec.Body.String(), "disk I/O")
}
