// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and infrastructure through port interfaces.
package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

// Compile-time check that AuthService implements ports.AuthService.
var _ ports.AuthService = (*AuthService)(nil)

// AuthService implements ports.AuthService. It signs users in against the
// backend, keeps their tokens in the session store and throttles repeated
// failed logins per account.
type AuthService struct {
	client   ports.AuthClient
	sessions ports.SessionStore
	guard    ports.LoginThrottle
	logger   *slog.Logger
}

// NewAuthService creates an AuthService. A nil logger discards output.
func NewAuthService(
	client ports.AuthClient, sessions ports.SessionStore, guard ports.LoginThrottle, logger *slog.Logger,
) *AuthService {
	return &AuthService{
		client:   client,
		sessions: sessions,
		guard:    guard,
		logger:   orDiscard(logger),
	}
}

// Login authenticates creds and creates a session. Rejected credentials
// count toward the account's cooldown; a backend 429 extends it.
func (s *AuthService) Login(ctx context.Context, creds auth.Credentials) (*auth.SessionInfo, error) {
	if err := creds.Validate(); err != nil {
		return nil, err
	}
	if err := s.guard.Allow(ctx, creds.Email); err != nil {
		s.logger.InfoContext(ctx, "login refused during cooldown", slog.String("operation", "Login"))
		return nil, err
	}

	result, err := s.client.Login(ctx, creds)
	if err != nil {
		var rl *domain.RateLimitError
		switch {
		case errors.Is(err, domain.ErrUnauthenticated):
			s.guard.Failed(creds.Email)
		case errors.As(err, &rl):
			s.guard.Throttle(creds.Email, rl.RetryAfter)
		default:
			s.logger.ErrorContext(ctx, "failed to log in",
				slog.String("operation", "Login"),
				slog.Any("error", err),
			)
		}
		return nil, err
	}
	s.guard.Succeeded(creds.Email)

	info, err := s.sessions.Create(ctx, result.User, result.Tokens)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to create session",
			slog.String("operation", "Login"),
			slog.String("user_id", result.User.ID),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "session created",
		slog.String("session_id", info.ID),
		slog.String("user_id", info.User.ID),
		slog.Time("access_expires_at", info.AccessExpiresAt),
	)
	return info, nil
}

// Register validates reg and creates the account.
func (s *AuthService) Register(ctx context.Context, reg user.Registration) (*user.User, error) {
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	reg.Email = user.NormalizeEmail(reg.Email)

	created, err := s.client.Register(ctx, reg)
	if err != nil {
		if !errors.Is(err, domain.ErrConflict) && !errors.Is(err, domain.ErrValidation) {
			s.logger.ErrorContext(ctx, "failed to register",
				slog.String("operation", "Register"),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	s.logger.InfoContext(ctx, "account registered", slog.String("user_id", created.ID))
	return created, nil
}

// Logout removes the session and revokes its refresh token. A failed
// revocation is logged and not returned.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	tokens, ok := s.sessions.Destroy(ctx, sessionID)
	if !ok {
		return nil
	}

	if tokens.RefreshToken != "" {
		if err := s.client.Logout(ctx, tokens.RefreshToken); err != nil {
			s.logger.WarnContext(ctx, "failed to revoke refresh token",
				slog.String("operation", "Logout"),
				slog.String("session_id", sessionID),
				slog.Any("error", err),
			)
		}
	}

	s.logger.InfoContext(ctx, "session ended", slog.String("session_id", sessionID))
	return nil
}

// Session returns the session snapshot.
func (s *AuthService) Session(_ context.Context, sessionID string) (*auth.SessionInfo, error) {
	return s.sessions.Get(sessionID)
}

// Refresh forces a token refresh for the session.
func (s *AuthService) Refresh(ctx context.Context, sessionID string) (*auth.SessionInfo, error) {
	info, err := s.sessions.Refresh(ctx, sessionID)
	if err != nil {
		s.logger.WarnContext(ctx, "manual refresh failed",
			slog.String("operation", "Refresh"),
			slog.String("session_id", sessionID),
			slog.Any("error", err),
		)
		return nil, err
	}
	return info, nil
}

// ForgotPassword asks the backend to email a reset link. Backend failures
// are logged and hidden from the caller.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	email = user.NormalizeEmail(email)
	if !user.ValidEmail(email) {
		return domain.NewValidationError(map[string]string{"email": domain.MsgInvalidEmail})
	}

	if err := s.client.ForgotPassword(ctx, email); err != nil {
		s.logger.WarnContext(ctx, "forgot-password request failed",
			slog.String("operation", "ForgotPassword"),
			slog.Any("error", err),
		)
	}
	return nil
}

// ResetPassword validates reset and submits it.
func (s *AuthService) ResetPassword(ctx context.Context, reset user.PasswordReset) error {
	if err := reset.Validate(); err != nil {
		return err
	}

	if err := s.client.ResetPassword(ctx, reset); err != nil {
		s.logger.WarnContext(ctx, "failed to reset password",
			slog.String("operation", "ResetPassword"),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}

func orDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
