// Package handlers provides HTTP request handlers for the BFF's API endpoints.
package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/http/dto"
	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

// AuthHandler handles sign-in, sign-up and session endpoints.
type AuthHandler struct {
	svc    ports.AuthService
	cookie SessionCookie
	now    func() time.Time
}

// NewAuthHandler creates a new AuthHandler with the given service port.
func NewAuthHandler(svc ports.AuthService, cookie SessionCookie) *AuthHandler {
	return &AuthHandler{svc: svc, cookie: cookie, now: time.Now}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	info, err := h.svc.Login(r.Context(), req.ToCredentials())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	h.cookie.Set(w, info.ID, info.RefreshExpiresAt)
	writeJSON(w, http.StatusOK, dto.ToSessionResponse(info, h.now()))
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	u, err := h.svc.Register(r.Context(), req.ToRegistration())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, dto.ToUserResponse(u))
}

// Logout handles POST /api/v1/auth/logout. It succeeds without a session so
// that a stale cookie can always be cleared.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if id, ok := h.cookie.Read(r); ok {
		if err := h.svc.Logout(r.Context(), id); err != nil {
			dto.WriteErrorResponse(w, r, err)
			return
		}
	}

	h.cookie.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

// Session handles GET /api/v1/auth/session.
func (h *AuthHandler) Session(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, h.svc.Session)
}

// Refresh handles POST /api/v1/auth/refresh.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	h.withSession(w, r, h.svc.Refresh)
}

// ForgotPassword handles POST /api/v1/auth/forgot-password.
func (h *AuthHandler) ForgotPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ForgotPasswordRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if err := h.svc.ForgotPassword(r.Context(), req.Email); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]string{"status": "accepted"})
}

// ResetPassword handles POST /api/v1/auth/reset-password.
func (h *AuthHandler) ResetPassword(w http.ResponseWriter, r *http.Request) {
	var req dto.ResetPasswordRequest
	if !decodeJSONBody(w, r, &req) {
		return
	}

	if err := h.svc.ResetPassword(r.Context(), req.ToPasswordReset()); err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// withSession runs fn for the cookie's session. These routes bypass the
// Session middleware so that a session in refresh cooldown can still be
// inspected.
func (h *AuthHandler) withSession(
	w http.ResponseWriter,
	r *http.Request,
	fn func(ctx context.Context, sessionID string) (*auth.SessionInfo, error),
) {
	id, ok := h.cookie.Read(r)
	if !ok {
		dto.WriteErrorResponse(w, r, domain.ErrUnauthenticated)
		return
	}

	info, err := fn(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			h.cookie.Clear(w)
		}
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToSessionResponse(info, h.now()))
}
