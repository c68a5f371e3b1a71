package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/http/dto"
	"github.com/jsamuelsen11/docflow-bff/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
	"github.com/jsamuelsen11/docflow-bff/mocks"
)

// --- Login ---

func TestLogin_SetsCookie(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	info := validSession()
	svc.EXPECT().Login(mock.Anything, auth.Credentials{Email: "ana@example.com", Password: "secret"}).
		Return(info, nil)

	h := handlers.NewAuthHandler(svc, testCookie)

	body := jsonBody(t, map[string]string{"email": "ana@example.com", "password": "secret"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	h.Login(rec, req)

	requireStatus(t, rec, http.StatusOK)

	c := responseCookie(rec)
	if c == nil {
		t.Fatal("session cookie not set")
	}
	if c.Value != "s1" || !c.HttpOnly || !c.Secure || c.SameSite != http.SameSiteLaxMode || c.Path != "/" {
		t.Errorf("cookie = %+v", c)
	}

	resp := decodeJSON[dto.SessionResponse](t, rec)
	if resp.User.ID != "u1" {
		t.Errorf("user.id = %q, want u1", resp.User.ID)
	}
	if resp.ExpiresIn <= 0 {
		t.Errorf("expires_in = %d, want > 0", resp.ExpiresIn)
	}
}

func TestLogin_RateLimited(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	svc.EXPECT().Login(mock.Anything, mock.Anything).
		Return(nil, &domain.RateLimitError{RetryAfter: 45 * time.Second})

	h := handlers.NewAuthHandler(svc, testCookie)

	body := jsonBody(t, map[string]string{"email": "ana@example.com", "password": "wrong"})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
	h.Login(rec, req)

	requireStatus(t, rec, http.StatusTooManyRequests)
	if got := rec.Header().Get("Retry-After"); got != "45" {
		t.Errorf("Retry-After = %q, want 45", got)
	}
	if responseCookie(rec) != nil {
		t.Error("cookie set on failed login")
	}
}

func TestLogin_InvalidJSON(t *testing.T) {
	t.Parallel()

	h := handlers.NewAuthHandler(mocks.NewMockAuthService(t), testCookie)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", http.NoBody)
	h.Login(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}

// --- Register ---

func TestRegister_Created(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	u := validUser()
	svc.EXPECT().Register(mock.Anything, user.Registration{
		Name: "Ana Putri", Email: "ana@example.com", Password: "longenough", Confirm: "longenough",
	}).Return(&u, nil)

	h := handlers.NewAuthHandler(svc, testCookie)

	body := jsonBody(t, map[string]string{
		"name": "Ana Putri", "email": "ana@example.com",
		"password": "longenough", "confirm_password": "longenough",
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", body)
	h.Register(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	if resp := decodeJSON[dto.UserResponse](t, rec); resp.Email != "ana@example.com" {
		t.Errorf("email = %q", resp.Email)
	}
}

// --- Logout ---

func TestLogout_ClearsCookie(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	svc.EXPECT().Logout(mock.Anything, "s1").Return(nil)

	h := handlers.NewAuthHandler(svc, testCookie)

	rec := httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil), "s1")
	h.Logout(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
	if c := responseCookie(rec); c == nil || c.MaxAge >= 0 {
		t.Errorf("cookie = %+v, want cleared", c)
	}
}

func TestLogout_WithoutCookie(t *testing.T) {
	t.Parallel()

	h := handlers.NewAuthHandler(mocks.NewMockAuthService(t), testCookie)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	h.Logout(rec, req)

	requireStatus(t, rec, http.StatusNoContent)
}

// --- Session / Refresh ---

func TestSession_NoCookie(t *testing.T) {
	t.Parallel()

	h := handlers.NewAuthHandler(mocks.NewMockAuthService(t), testCookie)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
	h.Session(rec, req)

	requireStatus(t, rec, http.StatusUnauthorized)
}

func TestSession_Expired(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	svc.EXPECT().Session(mock.Anything, "s1").Return(nil, domain.ErrUnauthenticated)

	h := handlers.NewAuthHandler(svc, testCookie)

	rec := httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil), "s1")
	h.Session(rec, req)

	requireStatus(t, rec, http.StatusUnauthorized)
	if c := responseCookie(rec); c == nil || c.MaxAge >= 0 {
		t.Errorf("cookie = %+v, want cleared", c)
	}
}

func TestRefresh_OK(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	svc.EXPECT().Refresh(mock.Anything, "s1").Return(validSession(), nil)

	h := handlers.NewAuthHandler(svc, testCookie)

	rec := httptest.NewRecorder()
	req := withSessionCookie(httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh", nil), "s1")
	h.Refresh(rec, req)

	requireStatus(t, rec, http.StatusOK)
	if resp := decodeJSON[dto.SessionResponse](t, rec); resp.RefreshAt == "" {
		t.Error("refresh_at missing")
	}
}

// --- Password reset ---

func TestForgotPassword_Accepted(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	svc.EXPECT().ForgotPassword(mock.Anything, "ana@example.com").Return(nil)

	h := handlers.NewAuthHandler(svc, testCookie)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/forgot-password",
		jsonBody(t, map[string]string{"email": "ana@example.com"}))
	h.ForgotPassword(rec, req)

	requireStatus(t, rec, http.StatusAccepted)
}

func TestResetPassword_ValidationError(t *testing.T) {
	t.Parallel()

	svc := mocks.NewMockAuthService(t)
	svc.EXPECT().ResetPassword(mock.Anything, mock.Anything).
		Return(domain.NewValidationError(map[string]string{"token": domain.MsgRequired}))

	h := handlers.NewAuthHandler(svc, testCookie)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/reset-password",
		jsonBody(t, map[string]string{"password": "longenough", "confirm_password": "longenough"}))
	h.ResetPassword(rec, req)

	requireStatus(t, rec, http.StatusBadRequest)
}
