package acl

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/clients/acl/account"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/httpclient"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

// Compile-time interface checks.
var (
	_ ports.AuthClient    = (*AccountClient)(nil)
	_ ports.ProfileClient = (*AccountClient)(nil)
)

// AccountClient is the outbound adapter for the backend's /api/auth and
// /api/users resources. It implements [ports.AuthClient] and
// [ports.ProfileClient].
//
// Login and Refresh are never retried by the HTTP client; the session layer
// owns their backoff. Profile calls authenticate with the bearer token found
// in the request context (see [httpclient.WithAccessToken]).
type AccountClient struct {
	req *Requester
}

// NewAccountClient creates an AccountClient that sends requests through the
// given [httpclient.Client].
func NewAccountClient(client *httpclient.Client) *AccountClient {
	return &AccountClient{req: NewRequester(client)}
}

// --- Auth operations ---

// Login posts credentials to POST /api/auth/login.
func (c *AccountClient) Login(ctx context.Context, creds auth.Credentials) (*auth.LoginResult, error) {
	body := account.LoginRequestDTO{Email: creds.Email, Password: creds.Password}

	var dto account.TokenResponseDTO
	if err := c.req.Do(httpclient.WithoutRetry(ctx), http.MethodPost, "/api/auth/login", http.StatusOK, body, &dto); err != nil {
		return nil, err
	}
	result := account.ToLoginResult(&dto)
	return &result, nil
}

// Register posts a new account to POST /api/auth/register.
func (c *AccountClient) Register(ctx context.Context, reg user.Registration) (*user.User, error) {
	body := account.ToRegisterRequest(&reg)

	var dto account.UserDTO
	if err := c.req.Do(httpclient.WithoutRetry(ctx), http.MethodPost, "/api/auth/register", http.StatusCreated, body, &dto); err != nil {
		return nil, err
	}
	u := account.ToDomainUser(&dto)
	return &u, nil
}

// Refresh exchanges a refresh token at POST /api/auth/refresh.
func (c *AccountClient) Refresh(ctx context.Context, refreshToken string) (*auth.IssuedTokens, error) {
	body := account.RefreshRequestDTO{RefreshToken: refreshToken}

	var dto account.TokenResponseDTO
	if err := c.req.Do(httpclient.WithoutRetry(ctx), http.MethodPost, "/api/auth/refresh", http.StatusOK, body, &dto); err != nil {
		return nil, err
	}
	tokens := account.ToIssuedTokens(&dto)
	return &tokens, nil
}

// Logout revokes a refresh token at POST /api/auth/logout.
func (c *AccountClient) Logout(ctx context.Context, refreshToken string) error {
	body := account.RefreshRequestDTO{RefreshToken: refreshToken}
	return c.req.Do(httpclient.WithoutRetry(ctx), http.MethodPost, "/api/auth/logout", http.StatusNoContent, body, nil)
}

// ForgotPassword requests a reset email at POST /api/auth/forgot-password.
func (c *AccountClient) ForgotPassword(ctx context.Context, email string) error {
	body := account.ForgotPasswordRequestDTO{Email: email}
	return c.req.Do(httpclient.WithoutRetry(ctx), http.MethodPost, "/api/auth/forgot-password", http.StatusAccepted, body, nil)
}

// ResetPassword completes a reset at POST /api/auth/reset-password.
func (c *AccountClient) ResetPassword(ctx context.Context, reset user.PasswordReset) error {
	body := account.ToResetPasswordRequest(&reset)
	return c.req.Do(httpclient.WithoutRetry(ctx), http.MethodPost, "/api/auth/reset-password", http.StatusNoContent, body, nil)
}

// --- Profile operations ---

// GetProfile fetches GET /api/users/me.
func (c *AccountClient) GetProfile(ctx context.Context) (*user.User, error) {
	var dto account.UserDTO
	if err := c.req.Do(ctx, http.MethodGet, "/api/users/me", http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	u := account.ToDomainUser(&dto)
	return &u, nil
}

// UpdateProfile replaces the profile with PUT /api/users/me.
func (c *AccountClient) UpdateProfile(ctx context.Context, update user.ProfileUpdate) (*user.User, error) {
	body := account.ToUpdateProfileRequest(&update)

	var dto account.UserDTO
	if err := c.req.Do(ctx, http.MethodPut, "/api/users/me", http.StatusOK, body, &dto); err != nil {
		return nil, err
	}
	u := account.ToDomainUser(&dto)
	return &u, nil
}

// ChangePassword replaces the password with PUT /api/users/me/password.
func (c *AccountClient) ChangePassword(ctx context.Context, change user.PasswordChange) error {
	body := account.ToChangePasswordRequest(&change)
	return c.req.Do(ctx, http.MethodPut, "/api/users/me/password", http.StatusNoContent, body, nil)
}
