package app

import (
	"context"

	appctx "github.com/jsamuelsen11/docflow-bff/internal/app/context"
	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/document"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

// Request-scoped cache keys.
const pendingKey = "approvals:pending"

func flowKey(documentID string) string     { return "flow:" + documentID }
func documentKey(documentID string) string { return "document:" + documentID }

// NewFlowView interprets f for userID.
func NewFlowView(f approval.Flow, userID string) ports.FlowView {
	view := ports.FlowView{
		Flow:  f,
		Steps: f.Sorted(),
		Views: f.StepViews(),
		State: f.State(),
		Gate:  f.Gate(userID),
	}
	if cur, ok := f.CurrentStep(); ok {
		view.Current = &cur
	}
	view.Decided, view.Total = f.Progress()
	return view
}

func principal(ctx context.Context) (auth.Principal, error) {
	p, ok := auth.PrincipalFromContext(ctx)
	if !ok {
		return auth.Principal{}, domain.ErrUnauthenticated
	}
	return p, nil
}

func fetchFlow(ctx context.Context, docs ports.DocumentClient, documentID string) (*approval.Flow, error) {
	return appctx.Fetch(ctx, flowKey(documentID), func(ctx context.Context) (*approval.Flow, error) {
		return docs.GetApprovalFlow(ctx, documentID)
	})
}

func fetchDocument(ctx context.Context, docs ports.DocumentClient, documentID string) (*document.Document, error) {
	return appctx.Fetch(ctx, documentKey(documentID), func(ctx context.Context) (*document.Document, error) {
		return docs.GetDocument(ctx, documentID)
	})
}

// remember caches value under key when ctx carries a RequestContext.
func remember(ctx context.Context, key string, value any) {
	if rc, ok := appctx.FromContext(ctx); ok {
		rc.Set(key, value)
	}
}

func fetchPending(ctx context.Context, docs ports.DocumentClient) ([]document.Document, error) {
	return appctx.Fetch(ctx, pendingKey, docs.ListPendingApprovals)
}
