package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/bookstore-service/internal/auth"
	"github.com/spec-kit/bookstore-service/internal/config"
	"github.com/spec-kit/bookstore-service/internal/domain"
	"github.com/spec-kit/bookstore-service/internal/events"
	"github.com/spec-kit/bookstore-service/internal/repository"
	apperrors "github.com/spec-kit/bookstore-service/pkg/util"
)

// AuthService coordinates registration, login, email confirmation and
// password reset. Tokens are stateless; the user row is the only mutable
// state and the repository provides atomic writes per account.
type AuthService struct {
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	dispatcher events.Dispatcher
	logger     *zap.Logger
	bcryptCost int
}

// AuthDependencies encapsulates collaborator requirements for auth service.
type AuthDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth),
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// Register creates an inactive account and emits a confirmation mail event.
// The confirmation token is never returned to the caller.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (string, error) {
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return "", apperrors.NewEmailAlreadyExists()
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return "", err
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return "", err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Active:       false,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return "", err
	}

	token, _, err := s.tokenMgr.IssueConfirmationToken(user)
	if err != nil {
		return "", err
	}
	s.publish(ctx, events.EventUserRegistered, user.Email, events.UserRegisteredPayload{
		Name:  user.Name,
		Token: token,
	})

	return "Registration successful. Please check your email to activate your account.", nil
}

// Authenticate verifies credentials and returns an access token. Credentials
// are checked before the active flag so a wrong password never reveals
// whether an account has been confirmed.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", time.Time{}, apperrors.NewInvalidCredentials()
		}
		return "", time.Time{}, err
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return "", time.Time{}, apperrors.NewInvalidCredentials()
	}
	if !user.Active {
		return "", time.Time{}, apperrors.NewAccountDisabled()
	}

	return s.tokenMgr.IssueAccessToken(user)
}

// ConfirmEmail activates the account named by a valid confirmation token.
// Confirming an already active account succeeds again: activation is
// idempotent.
func (s *AuthService) ConfirmEmail(ctx context.Context, tokenStr string) (string, error) {
	email, err := s.tokenMgr.ExtractSubject(tokenStr)
	if err != nil {
		return "", apperrors.NewInvalidToken("invalid confirmation token")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFound("user", nil)
		}
		return "", err
	}

	if !s.tokenMgr.IsValidFor(tokenStr, user) {
		return "", apperrors.NewInvalidToken("invalid confirmation token")
	}

	if !user.Active {
		user.Active = true
		if err := s.users.Update(ctx, user); err != nil {
			return "", err
		}
		s.publish(ctx, events.EventAccountConfirmed, user.Email, events.AccountConfirmedPayload{})
	}

	return "Account activated successfully", nil
}

// RequestPasswordReset issues a reset token and emits the reset mail event.
// An unknown email is logged and swallowed so the endpoint never reveals
// whether an account exists.
func (s *AuthService) RequestPasswordReset(ctx context.Context, email string) error {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Info("password reset requested for unknown email", zap.String("email", email))
			return nil
		}
		return err
	}

	token, _, err := s.tokenMgr.IssuePasswordResetToken(user)
	if err != nil {
		return err
	}
	s.publish(ctx, events.EventPasswordResetRequested, user.Email, events.PasswordResetRequestedPayload{
		Token: token,
	})
	return nil
}

// ResetPassword replaces the password hash for the account named by a valid
// reset token. Tokens without the password_reset claim are rejected even
// when signature and expiry are otherwise fine.
func (s *AuthService) ResetPassword(ctx context.Context, tokenStr, newPassword string) (string, error) {
	if !s.tokenMgr.IsPasswordResetToken(tokenStr) {
		return "", apperrors.NewInvalidToken("invalid reset token")
	}

	email, err := s.tokenMgr.ExtractSubject(tokenStr)
	if err != nil {
		return "", apperrors.NewInvalidToken("invalid reset token")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.NewNotFound("user", nil)
		}
		return "", err
	}

	if !s.tokenMgr.IsValidFor(tokenStr, user) {
		return "", apperrors.NewInvalidToken("invalid reset token")
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return "", err
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return "", err
	}
	s.publish(ctx, events.EventPasswordChanged, user.Email, events.PasswordChangedPayload{})

	return "Password reset successfully", nil
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, email string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	event := events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Email:     email,
		Timestamp: time.Now(),
		Payload:   payload,
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", zap.String("type", string(eventType)), zap.Error(err))
	}
}
