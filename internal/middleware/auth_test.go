package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ledger-copilot/internal/config"
	apperrors "ledger-copilot/internal/errors"
	"ledger-copilot/internal/handlers"
	"ledger-copilot/internal/models"
	"ledger-copilot/internal/repositories"
	"ledger-copilot/internal/repositories/repository_mocks"
	"ledger-copilot/internal/services"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAuthMiddleware(t *testing.T) {
	suite.Run(t, new(AuthMiddlewareSuite))
}

type AuthMiddlewareSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	tokenService services.TokenServiceInterface
	mockUserRepo *repository_mocks.MockUserRepositoryInterface
	e            *echo.Echo
}

func (s *AuthMiddlewareSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.tokenService = s.createTokenService(24 * time.Hour)
	s.mockUserRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.e = echo.New()
}

// TearDownTest runs after each test in the suite
func (s *AuthMiddlewareSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AuthMiddlewareSuite) createTokenService(lifetime time.Duration) services.TokenServiceInterface {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	return services.NewTokenService(&config.JWTConfig{
		PrivateKey:          privateKey,
		PublicKey:           publicKey,
		Issuer:              "test-issuer",
		AccessTokenDuration: lifetime,
	})
}

func (s *AuthMiddlewareSuite) newUser() *models.User {
	tenantID := uuid.New()
	return &models.User{
		ID:       uuid.New(),
		Email:    "analyst@example.com",
		TenantID: &tenantID,
		Role:     models.RoleMember,
	}
}

func (s *AuthMiddlewareSuite) serve(mw echo.MiddlewareFunc, authHeader string, next echo.HandlerFunc) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/ai/proposals", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.Require().NoError(mw(next)(c))
	return c, rec
}

func (s *AuthMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body apperrors.ErrorResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func noContent(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ValidToken() {
	user := s.newUser()
	token, _, err := s.tokenService.GenerateAccessToken(user)
	s.Require().NoError(err)

	c, rec := s.serve(RequireAuth(s.tokenService), "Bearer "+token, noContent)

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal(user.ID, c.Get(handlers.UserIDContextKey))
	s.Equal(user.Email, c.Get("user_email"))
	s.Equal(user.TenantID.String(), c.Get("token_tenant_id"))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MissingHeader() {
	_, rec := s.serve(RequireAuth(s.tokenService), "", noContent)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthMissingToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_MalformedHeader() {
	_, rec := s.serve(RequireAuth(s.tokenService), "Token abc", noContent)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_TokenFromAnotherKey() {
	other := s.createTokenService(time.Hour)
	token, _, err := other.GenerateAccessToken(s.newUser())
	s.Require().NoError(err)

	_, rec := s.serve(RequireAuth(s.tokenService), "Bearer "+token, noContent)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireAuth_ExpiredToken() {
	expired := s.createTokenService(-time.Hour)
	token, _, err := expired.GenerateAccessToken(s.newUser())
	s.Require().NoError(err)

	_, rec := s.serve(RequireAuth(expired), "Bearer "+token, noContent)

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthExpiredToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) tenantContext(userID any) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/transactions", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	if userID != nil {
		c.Set(handlers.UserIDContextKey, userID)
	}
	return c, rec
}

func (s *AuthMiddlewareSuite) TestRequireTenant_UsesStoredTenant() {
	user := s.newUser()
	s.mockUserRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

	c, rec := s.tenantContext(user.ID)
	c.Set("token_tenant_id", uuid.NewString())

	s.Require().NoError(RequireTenant(s.mockUserRepo)(noContent)(c))

	s.Equal(http.StatusNoContent, rec.Code)
	s.Equal(*user.TenantID, c.Get(handlers.TenantIDContextKey))
}

func (s *AuthMiddlewareSuite) TestRequireTenant_NoTenant() {
	user := s.newUser()
	user.TenantID = nil
	s.mockUserRepo.EXPECT().GetByID(gomock.Any(), user.ID).Return(user, nil)

	c, rec := s.tenantContext(user.ID)
	s.Require().NoError(RequireTenant(s.mockUserRepo)(noContent)(c))

	s.Equal(string(apperrors.AuthNoTenant), s.errorCode(rec))
	s.Nil(c.Get(handlers.TenantIDContextKey))
}

func (s *AuthMiddlewareSuite) TestRequireTenant_UserDeleted() {
	userID := uuid.New()
	s.mockUserRepo.EXPECT().GetByID(gomock.Any(), userID).Return(nil, repositories.ErrUserNotFound)

	c, rec := s.tenantContext(userID)
	s.Require().NoError(RequireTenant(s.mockUserRepo)(noContent)(c))

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal(string(apperrors.AuthInvalidTokenFormat), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireTenant_RepositoryFailure() {
	userID := uuid.New()
	s.mockUserRepo.EXPECT().GetByID(gomock.Any(), userID).Return(nil, errors.New("connection reset"))

	c, rec := s.tenantContext(userID)
	s.Require().NoError(RequireTenant(s.mockUserRepo)(noContent)(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Equal(string(apperrors.SystemInternalError), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireTenant_WithoutAuth() {
	c, rec := s.tenantContext(nil)
	s.Require().NoError(RequireTenant(s.mockUserRepo)(noContent)(c))

	s.Equal(string(apperrors.AuthMissingToken), s.errorCode(rec))
}

func (s *AuthMiddlewareSuite) TestRequireDemoAdmin() {
	cases := []struct {
		name     string
		secret   string
		header   string
		wantCode int
		wantErr  apperrors.ErrorCode
	}{
		{name: "matching secret", secret: "s3cret", header: "Bearer s3cret", wantCode: http.StatusNoContent},
		{name: "missing header", secret: "s3cret", wantCode: http.StatusUnauthorized, wantErr: apperrors.AuthMissingToken},
		{name: "wrong scheme", secret: "s3cret", header: "Basic s3cret", wantCode: http.StatusUnauthorized, wantErr: apperrors.AuthInvalidTokenFormat},
		{name: "wrong secret", secret: "s3cret", header: "Bearer guess", wantCode: http.StatusUnauthorized, wantErr: apperrors.AuthInvalidTokenFormat},
		{name: "unconfigured secret", secret: "", header: "Bearer ", wantCode: http.StatusUnauthorized, wantErr: apperrors.AuthInvalidTokenFormat},
	}

	for _, tc := range cases {
		s.Run(tc.name, func() {
			_, rec := s.serve(RequireDemoAdmin(tc.secret), tc.header, noContent)

			s.Equal(tc.wantCode, rec.Code)
			if tc.wantErr != "" {
				s.Equal(string(tc.wantErr), s.errorCode(rec))
			}
		})
	}
}
