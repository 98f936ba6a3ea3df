package handlers

import (
	"context"
	"encoding/json"
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

const testWebhookSecret = "whsec-test"

type DemoHandlerTestSuite struct {
	suite.Suite
	ctrl           *gomock.Controller
	demoService    *service_mocks.MockDemoServiceInterface
	webhookService *service_mocks.MockWebhookServiceInterface
	handler        *DemoHandler
	e              *echo.Echo
}

func TestDemoHandlerSuite(t *testing.T) {
	suite.Run(t, new(DemoHandlerTestSuite))
}

func (s *DemoHandlerTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.demoService = service_mocks.NewMockDemoServiceInterface(s.ctrl)
	s.webhookService = service_mocks.NewMockWebhookServiceInterface(s.ctrl)
	s.handler = NewDemoHandler(s.demoService, s.webhookService, services.NewWebhookSimulator(1), testWebhookSecret)
	s.e = newTestEcho()
}

func (s *DemoHandlerTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *DemoHandlerTestSuite) TestBootstrap() {
	expected := &dto.DemoBootstrapResponse{
		Tenants:            []dto.DemoTenant{{ID: uuid.NewString(), Name: services.DemoTenantAName}},
		PlaidItemIDTenantA: services.DemoItemIDTenantA,
		TokenUserA:         "token",
	}
	s.demoService.EXPECT().Bootstrap(gomock.Any()).Return(expected, nil)

	c, rec := newRequest(s.e, http.MethodPost, "/api/v1/demo/bootstrap", nil)

	s.NoError(s.handler.Bootstrap(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.DemoBootstrapResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(services.DemoItemIDTenantA, response.PlaidItemIDTenantA)
	s.Equal("token", response.TokenUserA)
}

func (s *DemoHandlerTestSuite) TestReset() {
	s.Run("all steps succeed", func() {
		s.demoService.EXPECT().Reset(gomock.Any()).Return(&dto.DemoResetResponse{
			Status: services.DemoResetOK,
			Steps:  []dto.DemoResetStep{{Step: "delete demo users", OK: true}},
		})

		c, rec := newRequest(s.e, http.MethodPost, "/api/v1/demo/reset", nil)

		s.NoError(s.handler.Reset(c))
		s.Equal(http.StatusOK, rec.Code)
		s.Contains(rec.Body.String(), `"status":"reset_ok"`)
	})

	s.Run("partial reset", func() {
		s.demoService.EXPECT().Reset(gomock.Any()).Return(&dto.DemoResetResponse{
			Status: services.DemoResetPartial,
			Steps:  []dto.DemoResetStep{{Step: "delete demo users", OK: false, Error: "boom"}},
		})

		c, rec := newRequest(s.e, http.MethodPost, "/api/v1/demo/reset", nil)

		s.NoError(s.handler.Reset(c))
		s.Equal(http.StatusInternalServerError, rec.Code)
		s.Contains(rec.Body.String(), `"status":"reset_partial"`)
	})
}

func (s *DemoHandlerTestSuite) TestSimulateWebhook_SignsDelivery() {
	s.webhookService.EXPECT().
		Ingest(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, body []byte, signature string) (*services.IngestResult, error) {
			s.True(services.VerifySignature(testWebhookSecret, body, signature))

			var payload dto.WebhookPayload
			s.NoError(json.Unmarshal(body, &payload))
			s.Equal(services.DemoItemIDTenantA, payload.ItemID)
			s.Len(payload.Transactions, 3)
			return &services.IngestResult{EventID: uuid.New(), Received: 3, Inserted: 3}, nil
		})

	c, rec := newRequest(s.e, http.MethodPost, "/api/v1/demo/simulate-webhook?count=3", nil)

	s.NoError(s.handler.SimulateWebhook(c))
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"inserted":3`)
}

func (s *DemoHandlerTestSuite) TestSimulateWebhook_ItemMissing() {
	s.webhookService.EXPECT().Ingest(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, services.ErrUnknownItem)

	c, rec := newRequest(s.e, http.MethodPost, "/api/v1/demo/simulate-webhook", nil)

	s.NoError(s.handler.SimulateWebhook(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("WEBHOOK_003", decodeError(rec).Error.Code)
}
