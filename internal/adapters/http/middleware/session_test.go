package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/httpclient"
	"github.com/jsamuelsen11/docflow-bff/mocks"
)

const testCookie = "docflow_session"

func sessionRequest(id string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", http.NoBody)
	if id != "" {
		req.AddCookie(&http.Cookie{Name: testCookie, Value: id})
	}
	return req
}

func clearedCookie(rec *httptest.ResponseRecorder) bool {
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookie && c.MaxAge < 0 {
			return true
		}
	}
	return false
}

func TestSession_SetsPrincipalAndToken(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSessionStore(t)
	store.EXPECT().AccessToken(mock.Anything, "s1").Return("at-1", nil)
	store.EXPECT().Get("s1").Return(&auth.SessionInfo{ID: "s1", User: user.User{ID: "u1"}}, nil)

	var (
		principal auth.Principal
		token     string
	)
	handler := middleware.Session(store, testCookie)(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		principal, _ = auth.PrincipalFromContext(r.Context())
		token, _ = httpclient.AccessTokenFromContext(r.Context())
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest("s1"))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if principal.SessionID != "s1" || principal.User.ID != "u1" {
		t.Errorf("principal = %+v", principal)
	}
	if token != "at-1" {
		t.Errorf("access token = %q, want at-1", token)
	}
}

func TestSession_MissingCookie(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSessionStore(t)
	handler := middleware.Session(store, testCookie)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("handler called without a session")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest(""))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/problem+json" {
		t.Errorf("Content-Type = %q, want application/problem+json", ct)
	}
}

func TestSession_ExpiredClearsCookie(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSessionStore(t)
	store.EXPECT().AccessToken(mock.Anything, "s1").Return("", domain.ErrUnauthenticated)

	handler := middleware.Session(store, testCookie)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Error("handler called for expired session")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest("s1"))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want 401", rec.Code)
	}
	if !clearedCookie(rec) {
		t.Error("session cookie not cleared")
	}
}

func TestSession_CooldownKeepsCookie(t *testing.T) {
	t.Parallel()

	store := mocks.NewMockSessionStore(t)
	store.EXPECT().AccessToken(mock.Anything, "s1").
		Return("", &domain.RateLimitError{RetryAfter: 20 * time.Second})

	handler := middleware.Session(store, testCookie)(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, sessionRequest("s1"))

	if rec.Code != http.StatusTooManyRequests {
		t.Errorf("status = %d, want 429", rec.Code)
	}
	if got := rec.Header().Get("Retry-After"); got != "20" {
		t.Errorf("Retry-After = %q, want 20", got)
	}
	if clearedCookie(rec) {
		t.Error("cookie cleared during cooldown")
	}
}
