package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
)

// SessionStore holds server-side sessions and keeps their tokens fresh.
// Implemented by session.Manager.
type SessionStore interface {
	// Create stores a session for u and schedules its first refresh.
	Create(ctx context.Context, u user.User, tokens auth.IssuedTokens) (*auth.SessionInfo, error)

	// Get returns a snapshot. Returns domain.ErrUnauthenticated when the
	// session is unknown or its refresh token has expired.
	Get(id string) (*auth.SessionInfo, error)

	// AccessToken returns a usable access token, refreshing first when the
	// current one is expired or about to expire.
	AccessToken(ctx context.Context, id string) (string, error)

	// Refresh forces a refresh and returns the updated snapshot.
	Refresh(ctx context.Context, id string) (*auth.SessionInfo, error)

	// Destroy removes the session and returns its tokens so the caller can
	// revoke them. ok is false when the session did not exist.
	Destroy(ctx context.Context, id string) (tokens auth.Tokens, ok bool)
}

// LoginThrottle refuses login attempts for an account after repeated
// failures. Keys are normalized emails.
type LoginThrottle interface {
	// Allow returns a *domain.RateLimitError while key is cooling down.
	Allow(ctx context.Context, key string) error

	// Failed records a failed attempt.
	Failed(key string)

	// Succeeded clears the key.
	Succeeded(key string)

	// Throttle installs a cooldown of at least d, e.g. from a backend 429.
	Throttle(key string, d time.Duration)
}
