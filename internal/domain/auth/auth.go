// Package auth defines credentials, token sets and session snapshots.
package auth

import (
	"strings"
	"time"

	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
)

// Credentials is an email and password login attempt.
type Credentials struct {
	Email    string
	Password string
}

// Validate checks that both fields are present.
func (c *Credentials) Validate() error {
	fields := make(map[string]string)
	if strings.TrimSpace(c.Email) == "" {
		fields["email"] = domain.MsgRequired
	} else if !user.ValidEmail(c.Email) {
		fields["email"] = domain.MsgInvalidEmail
	}
	if c.Password == "" {
		fields["password"] = domain.MsgRequired
	}
	return domain.NewValidationError(fields)
}

// IssuedTokens is a token pair as returned by the backend. Lifetimes are
// zero when the backend omitted them.
type IssuedTokens struct {
	AccessToken      string
	RefreshToken     string
	ExpiresIn        time.Duration
	RefreshExpiresIn time.Duration
}

// LoginResult is a successful login: the account and its tokens.
type LoginResult struct {
	User   user.User
	Tokens IssuedTokens
}

// Tokens is a token pair with absolute expiry times. A zero
// RefreshExpiresAt means the refresh token has no known expiry.
type Tokens struct {
	AccessToken      string
	RefreshToken     string
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
}

// AccessExpired reports whether the access token is no longer usable at now.
func (t *Tokens) AccessExpired(now time.Time) bool {
	return !now.Before(t.AccessExpiresAt)
}

// NeedsRefresh reports whether now falls within leeway of access expiry.
func (t *Tokens) NeedsRefresh(now time.Time, leeway time.Duration) bool {
	return !now.Before(t.AccessExpiresAt.Add(-leeway))
}

// RefreshExpired reports whether the refresh token can no longer be used.
func (t *Tokens) RefreshExpired(now time.Time) bool {
	return !t.RefreshExpiresAt.IsZero() && !now.Before(t.RefreshExpiresAt)
}

// SessionInfo is a read-only snapshot of a server-side session.
type SessionInfo struct {
	ID               string
	User             user.User
	AccessExpiresAt  time.Time
	RefreshExpiresAt time.Time
	CreatedAt        time.Time
	LastRefreshedAt  time.Time
	// RefreshAt is when the next proactive refresh is scheduled.
	RefreshAt time.Time
	// CooldownUntil is non-zero while refreshes are suspended after a failure.
	CooldownUntil time.Time
	Failures      int
}
