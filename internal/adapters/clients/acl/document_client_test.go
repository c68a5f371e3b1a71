package acl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/document"
)

func flowBody(statuses ...string) map[string]any {
	steps := make([]map[string]any, len(statuses))
	for i, s := range statuses {
		steps[i] = map[string]any{
			"step_order":  i + 1,
			"approver_id": []string{"u1", "u2", "u3"}[i],
			"status":      s,
		}
	}
	return map[string]any{"id": "f1", "steps": steps}
}

func TestDocumentClient_ListDocuments(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/documents" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("status") != "pending" || q.Get("page") != "2" || q.Get("limit") != "10" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		writeJSON(t, w, http.StatusOK, map[string]any{
			"documents": []map[string]any{{"id": 1, "title": "Budget", "status": "pending"}},
			"total":     11,
		})
	}))
	defer ts.Close()

	client := NewDocumentClient(newTestClient(t, ts.URL))
	page, err := client.ListDocuments(context.Background(), document.Filter{
		Status: document.StatusPending, Page: 2, Limit: 10,
	})
	if err != nil {
		t.Fatalf("ListDocuments() error = %v", err)
	}
	if len(page.Documents) != 1 || page.Total != 11 || page.Page != 2 {
		t.Errorf("page = %+v", page)
	}
}

func TestDocumentClient_GetDocument_NotFound(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.EscapedPath() != "/api/documents/a%2Fb" {
			t.Errorf("path = %s, want escaped id", r.URL.EscapedPath())
		}
		writeJSON(t, w, http.StatusNotFound, map[string]any{"message": "no such document"})
	}))
	defer ts.Close()

	client := NewDocumentClient(newTestClient(t, ts.URL))
	_, err := client.GetDocument(context.Background(), "a/b")

	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("GetDocument() error = %v, want ErrNotFound", err)
	}
}

func TestDocumentClient_GetApprovalFlow(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/documents/d1/approval-flow" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		writeJSON(t, w, http.StatusOK, flowBody("approved", "pending"))
	}))
	defer ts.Close()

	client := NewDocumentClient(newTestClient(t, ts.URL))
	flow, err := client.GetApprovalFlow(context.Background(), "d1")
	if err != nil {
		t.Fatalf("GetApprovalFlow() error = %v", err)
	}
	if flow.DocumentID != "d1" {
		t.Errorf("DocumentID = %q, want d1", flow.DocumentID)
	}
	if cur, ok := flow.CurrentStep(); !ok || cur.ApproverID != "u2" {
		t.Errorf("CurrentStep() = (%+v, %v)", cur, ok)
	}
}

func TestDocumentClient_ListPendingApprovals(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusOK, map[string]any{
			"approvals": []map[string]any{
				{"id": "d1", "status": "pending", "approval_flow": flowBody("pending")},
				{"id": "d2", "status": "pending"},
			},
		})
	}))
	defer ts.Close()

	client := NewDocumentClient(newTestClient(t, ts.URL))
	docs, err := client.ListPendingApprovals(context.Background())
	if err != nil {
		t.Fatalf("ListPendingApprovals() error = %v", err)
	}
	if len(docs) != 2 || docs[0].Flow == nil || docs[1].Flow != nil {
		t.Errorf("docs = %+v", docs)
	}
}

func TestDocumentClient_Decide(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		decision approval.Decision
		wantPath string
	}{
		{name: "approve", decision: approval.DecisionApprove, wantPath: "/api/documents/d1/approve"},
		{name: "reject", decision: approval.DecisionReject, wantPath: "/api/documents/d1/reject"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost || r.URL.Path != tt.wantPath {
					t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
				}
				if got := decodeBody(t, r)["comment"]; got != "looks fine" {
					t.Errorf("comment = %v", got)
				}
				writeJSON(t, w, http.StatusOK, flowBody("approved", "pending"))
			}))
			defer ts.Close()

			client := NewDocumentClient(newTestClient(t, ts.URL))
			flow, err := client.Decide(context.Background(), "d1", tt.decision, "looks fine")
			if err != nil {
				t.Fatalf("Decide() error = %v", err)
			}
			if len(flow.Steps) != 2 {
				t.Errorf("len(Steps) = %d, want 2", len(flow.Steps))
			}
		})
	}
}

func TestDocumentClient_Decide_NotRetried(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	client := NewDocumentClient(newTestClientWithRetries(t, ts.URL, 3))
	_, err := client.Decide(context.Background(), "d1", approval.DecisionApprove, "")

	if !errors.Is(err, domain.ErrUnavailable) {
		t.Errorf("Decide() error = %v, want ErrUnavailable", err)
	}
	if n := calls.Load(); n != 1 {
		t.Errorf("backend calls = %d, want 1", n)
	}
}

func TestDocumentClient_ForbiddenDecision(t *testing.T) {
	t.Parallel()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(t, w, http.StatusForbidden, map[string]any{"message": "not your turn"})
	}))
	defer ts.Close()

	client := NewDocumentClient(newTestClient(t, ts.URL))
	_, err := client.Decide(context.Background(), "d1", approval.DecisionApprove, "")

	if !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("Decide() error = %v, want ErrForbidden", err)
	}
}

func TestFilterQuery(t *testing.T) {
	t.Parallel()

	if got := filterQuery(document.Filter{}); got != "" {
		t.Errorf("filterQuery(empty) = %q, want empty", got)
	}
	if got := filterQuery(document.Filter{Page: 1, Limit: 20}); got != "?limit=20&page=1" {
		t.Errorf("filterQuery = %q", got)
	}
}
