package dto_test

import (
	"testing"
	"time"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/http/dto"
	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/document"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

var now = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func testFlowView() ports.FlowView {
	decided := now.Add(-time.Hour)
	return ports.FlowView{
		Flow: approval.Flow{ID: "f1", DocumentID: "d1"},
		Steps: []approval.Step{
			{Order: 1, ApproverID: "u1", ApproverName: "Ana", Status: approval.StepApproved, DecidedAt: &decided},
			{Order: 2, ApproverID: "u2", ApproverName: "Budi", Status: approval.StepPending},
		},
		Views:   []approval.StepView{approval.ViewDone, approval.ViewCurrent},
		State:   approval.StateInProgress,
		Current: &approval.Step{Order: 2, ApproverID: "u2"},
		Decided: 1,
		Total:   2,
		Gate:    approval.GateResult{Allowed: true, Reason: approval.ReasonAllowed},
	}
}

func TestToFlowResponse(t *testing.T) {
	t.Parallel()

	v := testFlowView()
	got := dto.ToFlowResponse(&v)

	if got.State != "in_progress" || got.Decided != 1 || got.Total != 2 {
		t.Errorf("ToFlowResponse() = %+v", got)
	}
	if got.CurrentStep == nil || *got.CurrentStep != 2 {
		t.Errorf("CurrentStep = %v, want 2", got.CurrentStep)
	}
	if !got.CanDecide || got.GateReason != "allowed" {
		t.Errorf("gate = (%v, %q), want (true, allowed)", got.CanDecide, got.GateReason)
	}
	if len(got.Steps) != 2 {
		t.Fatalf("len(Steps) = %d, want 2", len(got.Steps))
	}
	if got.Steps[0].View != "done" || got.Steps[0].DecidedAt == nil || *got.Steps[0].DecidedAt != "2026-09-01T09:00:00Z" {
		t.Errorf("Steps[0] = %+v", got.Steps[0])
	}
	if got.Steps[1].View != "current" || got.Steps[1].DecidedAt != nil {
		t.Errorf("Steps[1] = %+v", got.Steps[1])
	}
}

func TestToSessionResponse(t *testing.T) {
	t.Parallel()

	info := &auth.SessionInfo{
		User:            user.User{ID: "u1", Name: "Ana", Role: user.RoleApprover},
		AccessExpiresAt: now.Add(90 * time.Second),
		RefreshAt:       now.Add(30 * time.Second),
		CooldownUntil:   now.Add(-time.Second),
	}

	got := dto.ToSessionResponse(info, now)

	if got.ExpiresIn != 90 {
		t.Errorf("ExpiresIn = %d, want 90", got.ExpiresIn)
	}
	if got.CooldownUntil != "" {
		t.Errorf("CooldownUntil = %q, want empty once passed", got.CooldownUntil)
	}
	if got.RefreshExpiresAt != "" {
		t.Errorf("RefreshExpiresAt = %q, want empty for unknown expiry", got.RefreshExpiresAt)
	}
	if got.ServerTime != "2026-09-01T10:00:00Z" {
		t.Errorf("ServerTime = %q", got.ServerTime)
	}
	if got.User.Role != "approver" {
		t.Errorf("User.Role = %q, want approver", got.User.Role)
	}
}

func TestToDocumentListResponse_Pages(t *testing.T) {
	t.Parallel()

	page := &document.Page{
		Documents: []document.Document{{ID: "d1", Status: document.StatusDraft}},
		Total:     41,
		Page:      1,
		Limit:     20,
	}

	got := dto.ToDocumentListResponse(page)

	if got.Pages != 3 {
		t.Errorf("Pages = %d, want 3", got.Pages)
	}
	if len(got.Documents) != 1 || got.Documents[0].Approval != nil {
		t.Errorf("Documents = %+v", got.Documents)
	}
}

func TestToPendingListResponse(t *testing.T) {
	t.Parallel()

	pending := []ports.PendingApproval{{
		Document: document.Document{ID: "d1", Title: "Budget", Status: document.StatusPending},
		Approval: testFlowView(),
	}}

	got := dto.ToPendingListResponse(pending)

	if got.Count != 1 || got.Approvals[0].Approval == nil {
		t.Fatalf("ToPendingListResponse() = %+v", got)
	}
	if got.Approvals[0].Approval.ID != "f1" {
		t.Errorf("Approval.ID = %q, want f1", got.Approvals[0].Approval.ID)
	}
}

func TestToBulkDecisionResponse(t *testing.T) {
	t.Parallel()

	result := &ports.BulkDecideResult{
		Decided: []ports.FlowView{testFlowView()},
		Errors: []ports.BulkDecideError{
			{DocumentID: "d2", Err: &domain.ForbiddenError{Reason: "not_an_approver"}},
			{DocumentID: "d3", Err: domain.ErrNotFound},
		},
	}

	got := dto.ToBulkDecisionResponse(result)

	if got.Total != 3 || got.Succeeded != 1 || got.Failed != 2 {
		t.Errorf("counts = %d/%d/%d, want 3/1/2", got.Total, got.Succeeded, got.Failed)
	}
	if got.Errors[0].Status != 403 || got.Errors[0].Reason != "not_an_approver" {
		t.Errorf("Errors[0] = %+v", got.Errors[0])
	}
	if got.Errors[1].Status != 404 || got.Errors[1].Reason != "" {
		t.Errorf("Errors[1] = %+v", got.Errors[1])
	}
}
