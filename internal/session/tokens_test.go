package session

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
)

// signedToken builds an HS256 token. The key is irrelevant because claims
// are read unverified.
func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-key"))
	require.NoError(t, err)
	return s
}

func TestResolveTokens(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 7, 1, 8, 0, 0, 0, time.UTC)
	jwtAccess := signedToken(t, jwt.MapClaims{"sub": "u1", "exp": now.Add(20 * time.Minute).Unix()})
	jwtRefresh := signedToken(t, jwt.MapClaims{"exp": now.Add(24 * time.Hour).Unix()})

	tests := []struct {
		name           string
		issued         auth.IssuedTokens
		wantAccessExp  time.Time
		wantRefreshExp time.Time
	}{
		{
			name:           "expires_in wins over exp claim",
			issued:         auth.IssuedTokens{AccessToken: jwtAccess, ExpiresIn: 5 * time.Minute, RefreshExpiresIn: time.Hour},
			wantAccessExp:  now.Add(5 * time.Minute),
			wantRefreshExp: now.Add(time.Hour),
		},
		{
			name:           "exp claims used when lifetimes are missing",
			issued:         auth.IssuedTokens{AccessToken: jwtAccess, RefreshToken: jwtRefresh},
			wantAccessExp:  now.Add(20 * time.Minute),
			wantRefreshExp: now.Add(24 * time.Hour),
		},
		{
			name:          "opaque tokens fall back to default ttl",
			issued:        auth.IssuedTokens{AccessToken: "opaque", RefreshToken: "opaque"},
			wantAccessExp: now.Add(15 * time.Minute),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ResolveTokens(tt.issued, now, 15*time.Minute)

			assert.True(t, got.AccessExpiresAt.Equal(tt.wantAccessExp), "AccessExpiresAt = %v, want %v", got.AccessExpiresAt, tt.wantAccessExp)
			assert.True(t, got.RefreshExpiresAt.Equal(tt.wantRefreshExp), "RefreshExpiresAt = %v, want %v", got.RefreshExpiresAt, tt.wantRefreshExp)
			assert.Equal(t, tt.issued.AccessToken, got.AccessToken)
		})
	}
}

func TestTokenSubject(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "u42", TokenSubject(signedToken(t, jwt.MapClaims{"sub": "u42"})))
	assert.Empty(t, TokenSubject(signedToken(t, jwt.MapClaims{})))
	assert.Empty(t, TokenSubject("not-a-jwt"))
	assert.Empty(t, TokenSubject(""))
}
