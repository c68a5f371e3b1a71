package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/httpclient"
)

const logoutTimeout = 5 * time.Second

// withSession signs in, runs fn with the principal and bearer token in ctx,
// then revokes the refresh token. A failed logout is logged, not returned.
func withSession(
	ctx context.Context, opts *RootOptions, backend Backend, logger *slog.Logger,
	fn func(ctx context.Context, result *auth.LoginResult) error,
) error {
	creds, err := opts.credentials()
	if err != nil {
		return err
	}
	if err := creds.Validate(); err != nil {
		return err
	}

	result, err := backend.Auth.Login(ctx, creds)
	if err != nil {
		return loginError(err)
	}

	defer func() {
		if result.Tokens.RefreshToken == "" {
			return
		}
		// The action may have exhausted ctx; logout gets its own budget.
		logoutCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), logoutTimeout)
		defer cancel()
		if err := backend.Auth.Logout(logoutCtx, result.Tokens.RefreshToken); err != nil {
			logger.Warn("logout failed", slog.Any("error", err))
		}
	}()

	ctx = httpclient.WithAccessToken(ctx, result.Tokens.AccessToken)
	ctx = auth.WithPrincipal(ctx, auth.Principal{User: result.User})

	return fn(ctx, result)
}

func loginError(err error) error {
	var rl *domain.RateLimitError
	switch {
	case errors.As(err, &rl):
		return fmt.Errorf("login throttled: %w", err)
	case errors.Is(err, domain.ErrUnauthenticated):
		return errors.New("login failed: invalid email or password")
	default:
		return fmt.Errorf("login: %w", err)
	}
}
