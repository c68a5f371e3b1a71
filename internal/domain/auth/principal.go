package auth

import (
	"context"

	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
)

// Principal is the authenticated caller of a request.
type Principal struct {
	SessionID string
	User      user.User
}

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying p.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext returns the caller, or false for anonymous requests.
func PrincipalFromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
