package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/http/dto"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

// ApprovalHandler handles the approval inbox and decision endpoints.
type ApprovalHandler struct {
	svc ports.ApprovalService
}

// NewApprovalHandler creates a new ApprovalHandler with the given service port.
func NewApprovalHandler(svc ports.ApprovalService) *ApprovalHandler {
	return &ApprovalHandler{svc: svc}
}

// ListPending handles GET /api/v1/approvals/pending.
func (h *ApprovalHandler) ListPending(w http.ResponseWriter, r *http.Request) {
	pending, err := h.svc.Pending(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPendingListResponse(pending))
}

// GetFlow handles GET /api/v1/documents/{id}/approval.
func (h *ApprovalHandler) GetFlow(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	view, err := h.svc.Flow(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFlowResponse(view))
}

// Approve handles POST /api/v1/documents/{id}/approve. The body is optional.
func (h *ApprovalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, approval.DecisionApprove)
}

// Reject handles POST /api/v1/documents/{id}/reject.
func (h *ApprovalHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.decide(w, r, approval.DecisionReject)
}

// BulkDecide handles POST /api/v1/approvals/bulk.
// Returns 200 with per-item results, even if some decisions failed.
func (h *ApprovalHandler) BulkDecide(w http.ResponseWriter, r *http.Request) {
	var req dto.BulkDecisionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result, err := h.svc.BulkDecide(r.Context(), req.ToDecisionRequests())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToBulkDecisionResponse(result))
}

func (h *ApprovalHandler) decide(w http.ResponseWriter, r *http.Request, decision approval.Decision) {
	id, err := pathID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.DecisionRequest
	if !decodeOptionalJSONBody(w, r, &req) {
		return
	}

	view, err := h.svc.Decide(r.Context(), id, decision, req.Comment)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToFlowResponse(view))
}
