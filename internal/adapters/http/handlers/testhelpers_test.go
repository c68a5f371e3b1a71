package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/document"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

const testCookieName = "docflow_session"

var (
	testTime   = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)
	testCookie = handlers.SessionCookie{Name: testCookieName, Secure: true}
)

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func withPrincipal(r *http.Request, u user.User) *http.Request {
	ctx := auth.WithPrincipal(r.Context(), auth.Principal{SessionID: "s1", User: u})
	return r.WithContext(ctx)
}

func withSessionCookie(r *http.Request, id string) *http.Request {
	r.AddCookie(&http.Cookie{Name: testCookieName, Value: id})
	return r
}

func validUser() user.User {
	return user.User{
		ID:        "u1",
		Name:      "Ana Putri",
		Email:     "ana@example.com",
		Role:      user.RoleApprover,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validSession() *auth.SessionInfo {
	return &auth.SessionInfo{
		ID:               "s1",
		User:             validUser(),
		AccessExpiresAt:  time.Now().Add(15 * time.Minute),
		RefreshExpiresAt: time.Now().Add(24 * time.Hour),
		RefreshAt:        time.Now().Add(14 * time.Minute),
	}
}

func validDocument() document.Document {
	return document.Document{
		ID:        "d1",
		Title:     "Q3 budget",
		OwnerID:   "u9",
		Status:    document.StatusPending,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validFlowView() *ports.FlowView {
	steps := []approval.Step{
		{Order: 1, ApproverID: "u1", ApproverName: "Ana Putri", Status: approval.StepPending},
		{Order: 2, ApproverID: "u2", ApproverName: "Budi", Status: approval.StepWaiting},
	}
	return &ports.FlowView{
		Flow:    approval.Flow{ID: "f1", DocumentID: "d1", Steps: steps},
		Steps:   steps,
		Views:   []approval.StepView{approval.ViewCurrent, approval.ViewUpcoming},
		State:   approval.StateInProgress,
		Current: &steps[0],
		Total:   2,
		Gate:    approval.GateResult{Allowed: true, Reason: approval.ReasonAllowed},
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}

// responseCookie returns the session cookie set on rec, or nil.
func responseCookie(rec *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range rec.Result().Cookies() {
		if c.Name == testCookieName {
			return c
		}
	}
	return nil
}
