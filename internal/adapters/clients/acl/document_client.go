package acl

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/clients/acl/docs"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/document"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/httpclient"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

// Compile-time interface check.
var _ ports.DocumentClient = (*DocumentClient)(nil)

// DocumentClient is the outbound adapter for the backend's documents and
// approval flows. It implements [ports.DocumentClient].
type DocumentClient struct {
	req *Requester
}

// NewDocumentClient creates a DocumentClient that sends requests through the
// given [httpclient.Client].
func NewDocumentClient(client *httpclient.Client) *DocumentClient {
	return &DocumentClient{req: NewRequester(client)}
}

// ListDocuments fetches GET /api/documents with status and paging applied.
func (c *DocumentClient) ListDocuments(ctx context.Context, filter document.Filter) (*document.Page, error) {
	path := "/api/documents" + filterQuery(filter)

	var dto docs.DocumentListDTO
	if err := c.req.Do(ctx, http.MethodGet, path, http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	page := docs.ToDomainPage(&dto, filter)
	return &page, nil
}

// GetDocument fetches GET /api/documents/{id}.
// Returns [domain.ErrNotFound] if the backend returns 404.
func (c *DocumentClient) GetDocument(ctx context.Context, id string) (*document.Document, error) {
	var dto docs.DocumentDTO
	if err := c.req.Do(ctx, http.MethodGet, documentPath(id), http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	doc := docs.ToDomainDocument(&dto)
	return &doc, nil
}

// GetApprovalFlow fetches GET /api/documents/{id}/approval-flow.
func (c *DocumentClient) GetApprovalFlow(ctx context.Context, documentID string) (*approval.Flow, error) {
	var dto docs.FlowDTO
	if err := c.req.Do(ctx, http.MethodGet, documentPath(documentID)+"/approval-flow", http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	flow := docs.ToDomainFlow(&dto)
	if flow.DocumentID == "" {
		flow.DocumentID = documentID
	}
	return &flow, nil
}

// ListPendingApprovals fetches GET /api/approvals/pending.
func (c *DocumentClient) ListPendingApprovals(ctx context.Context) ([]document.Document, error) {
	var dto docs.PendingListDTO
	if err := c.req.Do(ctx, http.MethodGet, "/api/approvals/pending", http.StatusOK, nil, &dto); err != nil {
		return nil, err
	}
	return docs.ToDomainDocuments(dto.Approvals), nil
}

// Decide posts to /api/documents/{id}/approve or /reject. Decisions are
// not idempotent and are sent exactly once.
func (c *DocumentClient) Decide(
	ctx context.Context, documentID string, decision approval.Decision, comment string,
) (*approval.Flow, error) {
	path := documentPath(documentID) + "/" + decision.String()
	body := docs.DecisionRequestDTO{Comment: comment}

	var dto docs.FlowDTO
	if err := c.req.Do(httpclient.WithoutRetry(ctx), http.MethodPost, path, http.StatusOK, body, &dto); err != nil {
		return nil, err
	}
	flow := docs.ToDomainFlow(&dto)
	if flow.DocumentID == "" {
		flow.DocumentID = documentID
	}
	return &flow, nil
}

func documentPath(id string) string {
	return "/api/documents/" + url.PathEscape(id)
}

// filterQuery converts a [document.Filter] to a URL query string (including
// the leading "?"). Returns "" when the filter is empty.
func filterQuery(f document.Filter) string {
	v := url.Values{}
	if f.Status != "" {
		v.Set("status", f.Status.String())
	}
	if f.Page > 0 {
		v.Set("page", strconv.Itoa(f.Page))
	}
	if f.Limit > 0 {
		v.Set("limit", strconv.Itoa(f.Limit))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}
