package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"ledger-copilot/internal/dto"
	"ledger-copilot/internal/models"
	"ledger-copilot/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService handles authentication business logic
type AuthService struct {
	userRepo        repositories.UserRepositoryInterface
	auditService    AuditServiceInterface
	passwordService PasswordServiceInterface
	tokenService    TokenServiceInterface
	metrics         MetricsRecorderInterface
	logger          *slog.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	auditService AuditServiceInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:        userRepo,
		auditService:    auditService,
		passwordService: passwordService,
		tokenService:    tokenService,
		metrics:         metrics,
		logger:          logger,
	}
}

// Login authenticates a user and returns an access token carrying the
// user's current tenant.
func (s *AuthService) Login(ctx context.Context, req *dto.LoginRequest, ipAddress string) (*dto.TokenResponse, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.auditFailedLogin(ctx, email, ipAddress, "user_not_found")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.auditFailedLogin(ctx, email, ipAddress, "invalid_password")
		return nil, ErrInvalidCredentials
	}

	if err := s.userRepo.UpdateLastLogin(ctx, user.ID, time.Now().UTC()); err != nil {
		// Non-critical: a stale last-login stamp shouldn't block login
		s.logger.Warn("failed to update last login",
			"error", err,
			"user_id", user.ID)
	}

	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.auditSuccessfulLogin(ctx, user, ipAddress)

	response := &dto.TokenResponse{
		AccessToken: accessToken,
		TokenType:   TokenTypeBearer,
		ExpiresAt:   expiresAt,
		UserID:      user.ID.String(),
	}
	if user.HasTenant() {
		response.TenantID = user.TenantID.String()
	}

	return response, nil
}

func (s *AuthService) auditSuccessfulLogin(ctx context.Context, user *models.User, ipAddress string) {
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_success"})
	s.createAuditLog(ctx, user.TenantID, &user.ID, models.AuditActionLogin, user.ID.String(), ipAddress, nil)
}

func (s *AuthService) auditFailedLogin(ctx context.Context, email, ipAddress, reason string) {
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": "login_failed"})
	s.createAuditLog(ctx, nil, nil, models.AuditActionFailedLogin, "", ipAddress, models.JSONBMap{
		"email":  email,
		"reason": reason,
	})
}

func (s *AuthService) createAuditLog(ctx context.Context, tenantID, userID *uuid.UUID, action, resourceID, ipAddress string, metadata models.JSONBMap) {
	s.auditService.Record(ctx, AuditEntry{
		TenantID:   tenantID,
		UserID:     userID,
		Action:     action,
		Resource:   models.AuditResourceUser,
		ResourceID: resourceID,
		IPAddress:  ipAddress,
		Metadata:   metadata,
	})
}
