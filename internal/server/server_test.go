package server

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ledger-copilot/internal/config"
	"ledger-copilot/internal/database"
	"ledger-copilot/internal/dto"
	apperrors "ledger-copilot/internal/errors"
	"ledger-copilot/internal/llm"
	"ledger-copilot/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	adminSecret   = "demo-admin-secret"
	webhookSecret = "whsec-test"
)

// stubProvider answers every propose call with the tool call in result.
type stubProvider struct {
	result *llm.Result
}

func (p *stubProvider) Name() string { return config.ProviderOpenAI }

func (p *stubProvider) ProposeAction(context.Context, llm.Request) (*llm.Result, error) {
	return p.result, nil
}

type ServerTestSuite struct {
	suite.Suite
	db       *gorm.DB
	cfg      *config.Config
	provider *stubProvider
	handler  http.Handler
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T()).DB

	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.cfg = &config.Config{
		Server: config.ServerConfig{
			Host:            "127.0.0.1",
			Port:            "0",
			Environment:     "test",
			ShutdownTimeout: time.Second,
		},
		JWT: config.JWTConfig{
			PrivateKey:          privateKey,
			PublicKey:           publicKey,
			Issuer:              "ledger-copilot-test",
			AccessTokenDuration: time.Hour,
		},
		Security: config.SecurityConfig{
			BCryptCost:         bcrypt.MinCost,
			RateLimitPerSecond: 1000,
			RateLimitBurst:     1000,
		},
		AI:      config.AIConfig{DefaultProvider: config.ProviderOpenAI},
		Webhook: config.WebhookConfig{SigningSecret: webhookSecret},
		Demo:    config.DemoConfig{AdminSecret: adminSecret},
	}

	s.provider = &stubProvider{}
	s.handler = s.newServer(s.cfg).Handler()
}

func (s *ServerTestSuite) newServer(cfg *config.Config) *Server {
	return New(cfg, s.db, Options{
		Version:       "test",
		Logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		Registerer:    prometheus.NewRegistry(),
		Gatherer:      prometheus.NewRegistry(),
		SimulatorSeed: 7,
		Providers: func(cfg config.AIConfig, name string) (llm.Provider, error) {
			if _, err := llm.ResolveName(cfg, name); err != nil {
				return nil, err
			}
			return s.provider, nil
		},
	})
}

func (s *ServerTestSuite) do(method, target, bearer string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) decode(rec *httptest.ResponseRecorder, out any) {
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), out), rec.Body.String())
}

func (s *ServerTestSuite) bootstrap() *dto.DemoBootstrapResponse {
	rec := s.do(http.MethodPost, APIPrefix+"/demo/bootstrap", adminSecret, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var resp dto.DemoBootstrapResponse
	s.decode(rec, &resp)
	s.Require().NotEmpty(resp.TokenUserA)
	return &resp
}

func (s *ServerTestSuite) transaction(providerTxnID string) models.Transaction {
	var txn models.Transaction
	s.Require().NoError(s.db.Where("provider_transaction_id = ?", providerTxnID).First(&txn).Error)
	return txn
}

func (s *ServerTestSuite) TestHealthAndMetrics() {
	rec := s.do(http.MethodGet, "/health", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"status":"healthy"`)
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
	s.Equal("nosniff", rec.Header().Get("X-Content-Type-Options"))

	rec = s.do(http.MethodGet, "/metrics", "", nil)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *ServerTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/nope", "", nil)

	s.Equal(http.StatusNotFound, rec.Code)
	var body apperrors.ErrorResponse
	s.decode(rec, &body)
	s.Equal(string(apperrors.SystemRouteNotFound), body.Error.Code)
}

func (s *ServerTestSuite) TestProtectedRoutesRequireToken() {
	for _, target := range []string{"/ai/proposals", "/transactions", "/categories", "/audit"} {
		rec := s.do(http.MethodGet, APIPrefix+target, "", nil)
		s.Equal(http.StatusUnauthorized, rec.Code, target)
	}
}

func (s *ServerTestSuite) TestDemoRoutesRequireSecret() {
	rec := s.do(http.MethodPost, APIPrefix+"/demo/bootstrap", "wrong", nil)
	s.Equal(http.StatusUnauthorized, rec.Code)
}

func (s *ServerTestSuite) TestDemoRoutesHiddenWithoutSecret() {
	cfg := *s.cfg
	cfg.Demo.AdminSecret = ""
	s.handler = s.newServer(&cfg).Handler()

	rec := s.do(http.MethodPost, APIPrefix+"/demo/bootstrap", adminSecret, nil)
	s.Equal(http.StatusNotFound, rec.Code)
}

func (s *ServerTestSuite) TestLoginWithSeededUser() {
	s.bootstrap()

	rec := s.do(http.MethodPost, APIPrefix+"/auth/login", "", dto.LoginRequest{
		Email:    "user-a@demo.local",
		Password: "demo-password-a",
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var token dto.TokenResponse
	s.decode(rec, &token)
	s.NotEmpty(token.AccessToken)
	s.NotEmpty(token.TenantID)

	rec = s.do(http.MethodGet, APIPrefix+"/categories", token.AccessToken, nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Coffee")
}

func (s *ServerTestSuite) TestProposeConfirmFlow() {
	seeded := s.bootstrap()
	token := seeded.TokenUserA
	target := s.transaction("txn-a-2")
	s.Require().Nil(target.CategoryID)

	args, err := json.Marshal(map[string]any{
		"transaction_ids": []string{target.ID.String()},
		"category_name":   "Coffee",
		"rationale":       "Starbucks purchases are coffee.",
		"citations":       []string{target.ID.String()},
	})
	s.Require().NoError(err)
	s.provider.result = &llm.Result{
		Kind:      llm.ResultToolCall,
		ToolCall:  &llm.ToolCall{Name: llm.ProposeRecategorizeToolName, Arguments: args},
		ModelID:   "gpt-test",
		RequestID: "req-1",
	}

	rec := s.do(http.MethodPost, APIPrefix+"/ai/propose", token, dto.ProposeRequest{Question: "Categorize my Starbucks"})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var proposed dto.ProposeResponse
	s.decode(rec, &proposed)
	s.Require().NotEmpty(proposed.ProposalID)
	s.Equal(config.ProviderOpenAI, proposed.Provider)
	s.Equal(models.ProposalStatusProposed, proposed.Proposal.Status)

	rec = s.do(http.MethodPost, APIPrefix+"/ai/confirm", token, map[string]any{
		"proposal_id": proposed.ProposalID,
		"confirm":     true,
	})
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())

	var confirmed dto.ConfirmResponse
	s.decode(rec, &confirmed)
	s.Equal(models.ProposalStatusExecuted, confirmed.Status)
	s.NotEmpty(confirmed.ExecutionID)

	updated := s.transaction("txn-a-2")
	s.Require().NotNil(updated.CategoryID)

	rec = s.do(http.MethodPost, APIPrefix+"/ai/confirm", token, map[string]any{
		"proposal_id": proposed.ProposalID,
		"confirm":     true,
	})
	s.Equal(http.StatusConflict, rec.Code)
	var body apperrors.ErrorResponse
	s.decode(rec, &body)
	s.Equal(string(apperrors.ProposalNotPending), body.Error.Code)
}

func (s *ServerTestSuite) TestSimulatedWebhookIsIngested() {
	s.bootstrap()

	rec := s.do(http.MethodPost, APIPrefix+"/demo/simulate-webhook?count=3", adminSecret, nil)
	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	s.True(strings.Contains(rec.Body.String(), `"inserted":3`), rec.Body.String())

	var count int64
	s.Require().NoError(s.db.Model(&models.Transaction{}).Count(&count).Error)
	s.Equal(int64(5), count)
}

func (s *ServerTestSuite) TestWebhookRejectsBadSignature() {
	s.bootstrap()

	req := httptest.NewRequest(http.MethodPost, APIPrefix+"/webhooks/plaid", strings.NewReader(`{"item_id":"item-demo-tenant-a"}`))
	req.Header.Set("X-Plaid-Signature", "deadbeef")
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)

	s.Equal(http.StatusUnauthorized, rec.Code)
	var body apperrors.ErrorResponse
	s.decode(rec, &body)
	s.Equal(string(apperrors.WebhookInvalidSignature), body.Error.Code)
}

func (s *ServerTestSuite) TestRunStopsOnCancel() {
	srv := s.newServer(s.cfg)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(5 * time.Second):
		s.Fail("server did not stop")
	}
}
