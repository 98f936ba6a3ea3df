package middleware

import (
	"crypto/subtle"
	stderrors "errors"
	"strings"

	"ledger-copilot/internal/errors"
	"ledger-copilot/internal/handlers"
	"ledger-copilot/internal/repositories"
	"ledger-copilot/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid JWT token
func RequireAuth(tokenService services.TokenServiceInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if stderrors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, errors.AuthExpiredToken)
				}
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("Invalid user ID in token"))
			}

			c.Set(handlers.UserIDContextKey, userID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)
			c.Set("token_tenant_id", claims.TenantID)

			return next(c)
		}
	}
}

// RequireTenant resolves the caller's current tenant from the users table.
// The stored membership wins over the tenant claim in the token, so a user
// moved between tenants is scoped correctly before the token expires.
func RequireTenant(userRepo repositories.UserRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get(handlers.UserIDContextKey).(uuid.UUID)
			if !ok {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			user, err := userRepo.GetByID(c.Request().Context(), userID)
			if err != nil {
				if stderrors.Is(err, repositories.ErrUserNotFound) {
					return handlers.SendError(c, errors.AuthInvalidTokenFormat, errors.WithDetails("User no longer exists"))
				}
				return handlers.SendSystemError(c, err)
			}

			if !user.HasTenant() {
				return handlers.SendError(c, errors.AuthNoTenant)
			}

			c.Set(handlers.TenantIDContextKey, *user.TenantID)
			return next(c)
		}
	}
}

// RequireDemoAdmin guards the demo endpoints with a shared bearer secret,
// compared in constant time. An empty secret rejects every request.
func RequireDemoAdmin(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, errors.AuthMissingToken)
			}

			provided, found := strings.CutPrefix(authHeader, "Bearer ")
			if !found || secret == "" {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			if subtle.ConstantTimeCompare([]byte(strings.TrimSpace(provided)), []byte(secret)) != 1 {
				return handlers.SendError(c, errors.AuthInvalidTokenFormat)
			}

			return next(c)
		}
	}
}
