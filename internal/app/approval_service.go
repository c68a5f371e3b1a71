package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jsamuelsen11/docflow-bff/internal/app/fanout"
	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/document"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

const (
	// MaxBulkDecisions caps the decisions accepted in one bulk request.
	MaxBulkDecisions = 50

	bulkWorkers = 4
)

// Compile-time check that ApprovalService implements ports.ApprovalService.
var _ ports.ApprovalService = (*ApprovalService)(nil)

// ApprovalService implements ports.ApprovalService. It gates decisions
// locally before they reach the backend and tells the people affected by a
// decision through the notifier.
type ApprovalService struct {
	docs     ports.DocumentClient
	notifier ports.Notifier
	logger   *slog.Logger
	now      func() time.Time
}

// NewApprovalService creates an ApprovalService. A nil notifier drops all
// events and a nil logger discards output.
func NewApprovalService(docs ports.DocumentClient, notifier ports.Notifier, logger *slog.Logger) *ApprovalService {
	if notifier == nil {
		notifier = ports.NopNotifier{}
	}
	return &ApprovalService{
		docs:     docs,
		notifier: notifier,
		logger:   orDiscard(logger),
		now:      time.Now,
	}
}

// Pending returns the documents awaiting a decision from the current user.
// Flows missing from the listing are fetched concurrently, once each.
func (s *ApprovalService) Pending(ctx context.Context) ([]ports.PendingApproval, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := fetchPending(ctx, s.docs)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to list pending approvals",
			slog.String("operation", "PendingApprovals"),
			slog.Any("error", err),
		)
		return nil, err
	}

	results := fanout.Run(ctx, bulkWorkers, docs, func(ctx context.Context, d document.Document) (*approval.Flow, error) {
		remember(ctx, documentKey(d.ID), &d)
		if d.Flow != nil {
			remember(ctx, flowKey(d.ID), d.Flow)
			return d.Flow, nil
		}
		return fetchFlow(ctx, s.docs, d.ID)
	})

	pending := make([]ports.PendingApproval, 0, len(docs))
	for i, r := range results {
		if r.Err != nil {
			s.logger.ErrorContext(ctx, "failed to fetch approval flow",
				slog.String("operation", "PendingApprovals"),
				slog.String("document_id", docs[i].ID),
				slog.Any("error", r.Err),
			)
			return nil, fmt.Errorf("fetching flow for document %s: %w", docs[i].ID, r.Err)
		}
		pending = append(pending, ports.PendingApproval{
			Document: docs[i],
			Approval: NewFlowView(*r.Value, p.User.ID),
		})
	}
	return pending, nil
}

// Flow returns the document's flow interpreted for the current user.
func (s *ApprovalService) Flow(ctx context.Context, documentID string) (*ports.FlowView, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}

	flow, err := fetchFlow(ctx, s.docs, documentID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.ErrorContext(ctx, "failed to fetch approval flow",
				slog.String("operation", "GetApprovalFlow"),
				slog.String("document_id", documentID),
				slog.Any("error", err),
			)
		}
		return nil, err
	}

	view := NewFlowView(*flow, p.User.ID)
	return &view, nil
}

// Decide records the current user's decision on the document.
//
// The gate is checked against the latest known flow before anything is
// sent, so a user who may not act gets a *domain.ForbiddenError with the
// gate reason. After the backend accepts the decision the flow is re-read
// and the owner and the next approver are notified.
func (s *ApprovalService) Decide(
	ctx context.Context, documentID string, decision approval.Decision, comment string,
) (*ports.FlowView, error) {
	p, err := principal(ctx)
	if err != nil {
		return nil, err
	}
	userID := p.User.ID

	flow, err := fetchFlow(ctx, s.docs, documentID)
	if err != nil {
		return nil, err
	}
	if gate := flow.Gate(userID); !gate.Allowed {
		s.logger.InfoContext(ctx, "decision refused by gate",
			slog.String("document_id", documentID),
			slog.String("reason", gate.Reason.String()),
		)
		return nil, &domain.ForbiddenError{Reason: gate.Reason.String()}
	}
	predicted, err := flow.Apply(userID, decision, comment, s.now())
	if err != nil {
		return nil, err
	}

	accepted, err := s.docs.Decide(ctx, documentID, decision, strings.TrimSpace(comment))
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to submit decision",
			slog.String("operation", "Decide"),
			slog.String("document_id", documentID),
			slog.String("decision", decision.String()),
			slog.Any("error", err),
		)
		return nil, err
	}

	result := s.reread(ctx, documentID, accepted, &predicted)
	remember(ctx, flowKey(documentID), result)

	s.logger.InfoContext(ctx, "decision recorded",
		slog.String("document_id", documentID),
		slog.String("decision", decision.String()),
		slog.String("state", result.State().String()),
	)
	s.notifyDecision(ctx, documentID, userID, decision, result)

	view := NewFlowView(*result, userID)
	return &view, nil
}

// BulkDecide submits each decision concurrently. Failures are collected per
// document; only a malformed request fails as a whole.
func (s *ApprovalService) BulkDecide(ctx context.Context, requests []ports.DecisionRequest) (*ports.BulkDecideResult, error) {
	if err := validateBulk(requests); err != nil {
		return nil, err
	}

	results := fanout.Run(ctx, bulkWorkers, requests, func(ctx context.Context, r ports.DecisionRequest) (ports.FlowView, error) {
		view, err := s.Decide(ctx, r.DocumentID, r.Decision, r.Comment)
		if err != nil {
			return ports.FlowView{}, err
		}
		return *view, nil
	})

	out := &ports.BulkDecideResult{
		Decided: []ports.FlowView{},
		Errors:  []ports.BulkDecideError{},
	}
	for i, r := range results {
		if r.Err != nil {
			out.Errors = append(out.Errors, ports.BulkDecideError{DocumentID: requests[i].DocumentID, Err: r.Err})
			continue
		}
		out.Decided = append(out.Decided, r.Value)
	}

	s.logger.InfoContext(ctx, "bulk decision complete",
		slog.Int("decided", len(out.Decided)),
		slog.Int("failed", len(out.Errors)),
	)
	return out, nil
}

// reread fetches the authoritative flow after a decision. It falls back to
// the flow the backend returned and then to the local prediction.
func (s *ApprovalService) reread(
	ctx context.Context, documentID string, accepted, predicted *approval.Flow,
) *approval.Flow {
	fresh, err := s.docs.GetApprovalFlow(ctx, documentID)
	if err == nil {
		return fresh
	}

	s.logger.WarnContext(ctx, "failed to re-read approval flow",
		slog.String("operation", "Decide"),
		slog.String("document_id", documentID),
		slog.Any("error", err),
	)
	if accepted != nil && len(accepted.Steps) > 0 {
		return accepted
	}
	return predicted
}

func (s *ApprovalService) notifyDecision(
	ctx context.Context, documentID, actorID string, decision approval.Decision, flow *approval.Flow,
) {
	doc, err := fetchDocument(ctx, s.docs, documentID)
	if err != nil {
		s.logger.WarnContext(ctx, "failed to fetch document for notification",
			slog.String("document_id", documentID),
			slog.Any("error", err),
		)
	} else if doc.OwnerID != "" && doc.OwnerID != actorID {
		s.notifier.Notify(doc.OwnerID, ports.Event{
			Type:       ports.EventApprovalDecided,
			DocumentID: documentID,
			Payload: map[string]string{
				"decision":   decision.String(),
				"state":      flow.State().String(),
				"decided_by": actorID,
			},
		})
	}

	next, ok := flow.CurrentStep()
	if !ok || next.ApproverID == "" || next.ApproverID == actorID {
		return
	}
	payload := map[string]string{"step": fmt.Sprint(next.Order)}
	if doc != nil {
		payload["title"] = doc.Title
	}
	s.notifier.Notify(next.ApproverID, ports.Event{
		Type:       ports.EventApprovalRequested,
		DocumentID: documentID,
		Payload:    payload,
	})
}

func validateBulk(requests []ports.DecisionRequest) error {
	fields := make(map[string]string)

	switch {
	case len(requests) == 0:
		fields["decisions"] = domain.MsgRequired
	case len(requests) > MaxBulkDecisions:
		fields["decisions"] = fmt.Sprintf("at most %d allowed", MaxBulkDecisions)
	}

	seen := make(map[string]bool, len(requests))
	for i, r := range requests {
		key := fmt.Sprintf("decisions[%d].document_id", i)
		switch {
		case strings.TrimSpace(r.DocumentID) == "":
			fields[key] = domain.MsgRequired
		case seen[r.DocumentID]:
			fields[key] = "is duplicated"
		}
		seen[r.DocumentID] = true
	}

	return domain.NewValidationError(fields)
}
