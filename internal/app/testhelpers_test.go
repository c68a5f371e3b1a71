package app

import (
	"context"
	"log/slog"
	"time"

	appctx "github.com/jsamuelsen11/docflow-bff/internal/app/context"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/document"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var fixedNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

// requestCtx returns a context as the middleware chain builds it for
// userID's request.
func requestCtx(userID string) context.Context {
	ctx := auth.WithPrincipal(context.Background(), auth.Principal{
		SessionID: "s1",
		User:      user.User{ID: userID, Name: "User " + userID},
	})
	return appctx.WithRequestContext(ctx, appctx.New(ctx))
}

// twoStepFlow has u1 deciding first and u2 waiting.
func twoStepFlow(documentID string) approval.Flow {
	return approval.Flow{
		ID:         "flow-" + documentID,
		DocumentID: documentID,
		Steps: []approval.Step{
			{Order: 2, ApproverID: "u2", ApproverName: "Budi", Status: approval.StepWaiting},
			{Order: 1, ApproverID: "u1", ApproverName: "Ana", Status: approval.StepPending},
		},
	}
}

// afterFirstApproval is twoStepFlow once u1 has approved.
func afterFirstApproval(documentID string) approval.Flow {
	decided := fixedNow
	f := twoStepFlow(documentID)
	f.Steps[1].Status = approval.StepApproved
	f.Steps[1].DecidedAt = &decided
	f.Steps[0].Status = approval.StepPending
	return f
}

func testDocument(id string, flow *approval.Flow) document.Document {
	return document.Document{
		ID:        id,
		Title:     "Budget " + id,
		OwnerID:   "owner",
		OwnerName: "Olga",
		Status:    document.StatusPending,
		Flow:      flow,
	}
}
