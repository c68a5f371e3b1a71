package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
)

// ResolveTokens turns backend lifetimes into absolute expiry times.
//
// The access expiry comes from ExpiresIn, else from the token's exp claim,
// else from defaultTTL. The refresh expiry comes from RefreshExpiresIn, else
// from the refresh token's exp claim, and is left zero when neither is known.
func ResolveTokens(issued auth.IssuedTokens, now time.Time, defaultTTL time.Duration) auth.Tokens {
	tokens := auth.Tokens{
		AccessToken:  issued.AccessToken,
		RefreshToken: issued.RefreshToken,
	}

	switch exp, ok := tokenExpiry(issued.AccessToken); {
	case issued.ExpiresIn > 0:
		tokens.AccessExpiresAt = now.Add(issued.ExpiresIn)
	case ok:
		tokens.AccessExpiresAt = exp
	default:
		tokens.AccessExpiresAt = now.Add(defaultTTL)
	}

	if issued.RefreshExpiresIn > 0 {
		tokens.RefreshExpiresAt = now.Add(issued.RefreshExpiresIn)
	} else if exp, ok := tokenExpiry(issued.RefreshToken); ok {
		tokens.RefreshExpiresAt = exp
	}

	return tokens
}

// tokenExpiry reads the exp claim of a JWT without verifying its signature.
// The BFF is not the token's audience; it only needs the schedule.
func tokenExpiry(token string) (time.Time, bool) {
	claims, ok := unverifiedClaims(token)
	if !ok {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// TokenSubject returns the sub claim of a JWT, or "" when absent.
func TokenSubject(token string) string {
	claims, ok := unverifiedClaims(token)
	if !ok {
		return ""
	}
	sub, err := claims.GetSubject()
	if err != nil {
		return ""
	}
	return sub
}

func unverifiedClaims(token string) (jwt.MapClaims, bool) {
	if token == "" {
		return nil, false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, false
	}
	return claims, true
}
