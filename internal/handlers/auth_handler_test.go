package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"ledger-copilot/internal/dto"
	"ledger-copilot/internal/services"
	"ledger-copilot/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthHandler(t *testing.T) {
	suite.Run(t, new(AuthHandlerSuite))
}

type AuthHandlerSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	authService *service_mocks.MockAuthServiceInterface
	handler     *AuthHandler
	e           *echo.Echo
}

func (s *AuthHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.handler = NewAuthHandler(s.authService)
	s.e = newTestEcho()
}

func (s *AuthHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthHandlerSuite) TestLogin() {
	s.Run("successful login", func() {
		email := gofakeit.Email()
		expected := &dto.TokenResponse{
			AccessToken: "token",
			TokenType:   services.TokenTypeBearer,
			ExpiresAt:   time.Now().Add(time.Hour).UTC(),
			UserID:      uuid.New().String(),
			TenantID:    uuid.New().String(),
		}

		s.authService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, req *dto.LoginRequest, _ string) (*dto.TokenResponse, error) {
				s.Equal(email, req.Email)
				return expected, nil
			}).
			Times(1)

		c, rec := newRequest(s.e, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    email,
			"password": "demo-password-a",
		})

		s.NoError(s.handler.Login(c))
		s.Equal(http.StatusOK, rec.Code)

		var response dto.TokenResponse
		s.NoError(json.Unmarshal(rec.Body.Bytes(), &response))
		s.Equal("token", response.AccessToken)
		s.Equal(expected.TenantID, response.TenantID)
	})

	s.Run("invalid credentials", func() {
		s.authService.EXPECT().
			Login(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, services.ErrInvalidCredentials).
			Times(1)

		c, rec := newRequest(s.e, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email":    "user-a@demo.local",
			"password": "wrong",
		})

		s.NoError(s.handler.Login(c))
		s.Equal(http.StatusUnauthorized, rec.Code)
		response := decodeError(rec)
		s.Equal("AUTH_001", response.Error.Code)
		s.Equal(testTraceID, response.Error.TraceID)
	})

	s.Run("invalid request body", func() {
		c, rec := newRequest(s.e, http.MethodPost, "/api/v1/auth/login", "invalid json")

		s.NoError(s.handler.Login(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		s.Equal("VALIDATION_001", decodeError(rec).Error.Code)
	})

	s.Run("missing password", func() {
		c, rec := newRequest(s.e, http.MethodPost, "/api/v1/auth/login", map[string]string{
			"email": "user-a@demo.local",
		})

		s.NoError(s.handler.Login(c))
		s.Equal(http.StatusBadRequest, rec.Code)
		response := decodeError(rec)
		s.Equal("VALIDATION_001", response.Error.Code)
		s.Contains(response.Error.Details, "password: is required")
	})
}
