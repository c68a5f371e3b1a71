// Package dto provides HTTP request/response data transfer objects and
// RFC 9457 Problem Details error responses for the inbound HTTP adapter layer.
package dto

import (
	"time"

	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/document"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

// UserResponse represents an account in HTTP responses.
type UserResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	Department string `json:"department,omitempty"`
	Phone      string `json:"phone,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
	UpdatedAt  string `json:"updated_at,omitempty"`
}

// ToUserResponse converts a domain User to an HTTP response DTO.
func ToUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:         u.ID,
		Name:       u.Name,
		Email:      u.Email,
		Role:       u.Role.String(),
		Department: u.Department,
		Phone:      u.Phone,
		CreatedAt:  formatTime(u.CreatedAt),
		UpdatedAt:  formatTime(u.UpdatedAt),
	}
}

// SessionResponse is the session snapshot behind the UI's expiry timer.
// ServerTime lets the browser correct for clock skew.
type SessionResponse struct {
	User             UserResponse `json:"user"`
	AccessExpiresAt  string       `json:"access_expires_at"`
	RefreshExpiresAt string       `json:"refresh_expires_at,omitempty"`
	RefreshAt        string       `json:"refresh_at"`
	LastRefreshedAt  string       `json:"last_refreshed_at,omitempty"`
	CooldownUntil    string       `json:"cooldown_until,omitempty"`
	ExpiresIn        int          `json:"expires_in"`
	ServerTime       string       `json:"server_time"`
}

// ToSessionResponse converts a session snapshot to an HTTP response DTO.
func ToSessionResponse(info *auth.SessionInfo, now time.Time) SessionResponse {
	resp := SessionResponse{
		User:             ToUserResponse(&info.User),
		AccessExpiresAt:  formatTime(info.AccessExpiresAt),
		RefreshExpiresAt: formatTime(info.RefreshExpiresAt),
		RefreshAt:        formatTime(info.RefreshAt),
		LastRefreshedAt:  formatTime(info.LastRefreshedAt),
		ServerTime:       now.UTC().Format(time.RFC3339),
	}
	if now.Before(info.CooldownUntil) {
		resp.CooldownUntil = formatTime(info.CooldownUntil)
	}
	if left := info.AccessExpiresAt.Sub(now); left > 0 {
		resp.ExpiresIn = int(left.Seconds())
	}
	return resp
}

// StepResponse represents one approver step in HTTP responses.
type StepResponse struct {
	Order        int     `json:"order"`
	ApproverID   string  `json:"approver_id"`
	ApproverName string  `json:"approver_name"`
	Status       string  `json:"status"`
	View         string  `json:"view"`
	Comment      string  `json:"comment,omitempty"`
	DecidedAt    *string `json:"decided_at,omitempty"`
}

// FlowResponse represents an approval flow interpreted for the caller.
type FlowResponse struct {
	ID          string         `json:"id"`
	DocumentID  string         `json:"document_id"`
	State       string         `json:"state"`
	Decided     int            `json:"decided"`
	Total       int            `json:"total"`
	CurrentStep *int           `json:"current_step,omitempty"`
	CanDecide   bool           `json:"can_decide"`
	GateReason  string         `json:"gate_reason"`
	Steps       []StepResponse `json:"steps"`
}

// ToFlowResponse converts a FlowView to an HTTP response DTO.
func ToFlowResponse(v *ports.FlowView) FlowResponse {
	resp := FlowResponse{
		ID:         v.Flow.ID,
		DocumentID: v.Flow.DocumentID,
		State:      v.State.String(),
		Decided:    v.Decided,
		Total:      v.Total,
		CanDecide:  v.Gate.Allowed,
		GateReason: v.Gate.Reason.String(),
		Steps:      make([]StepResponse, len(v.Steps)),
	}
	if v.Current != nil {
		order := v.Current.Order
		resp.CurrentStep = &order
	}
	for i := range v.Steps {
		resp.Steps[i] = toStepResponse(&v.Steps[i], v.Views[i])
	}
	return resp
}

func toStepResponse(s *approval.Step, view approval.StepView) StepResponse {
	resp := StepResponse{
		Order:        s.Order,
		ApproverID:   s.ApproverID,
		ApproverName: s.ApproverName,
		Status:       s.Status.String(),
		View:         view.String(),
		Comment:      s.Comment,
	}
	if s.DecidedAt != nil {
		at := s.DecidedAt.UTC().Format(time.RFC3339)
		resp.DecidedAt = &at
	}
	return resp
}

// DocumentResponse represents a document in HTTP responses. Approval is
// present when the document is in a flow.
type DocumentResponse struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	FileName    string        `json:"file_name,omitempty"`
	OwnerID     string        `json:"owner_id"`
	OwnerName   string        `json:"owner_name,omitempty"`
	Status      string        `json:"status"`
	Approval    *FlowResponse `json:"approval,omitempty"`
	CreatedAt   string        `json:"created_at,omitempty"`
	UpdatedAt   string        `json:"updated_at,omitempty"`
}

// ToDocumentResponse converts a domain Document to an HTTP response DTO.
func ToDocumentResponse(d *document.Document) DocumentResponse {
	return DocumentResponse{
		ID:          d.ID,
		Title:       d.Title,
		Description: d.Description,
		FileName:    d.FileName,
		OwnerID:     d.OwnerID,
		OwnerName:   d.OwnerName,
		Status:      d.Status.String(),
		CreatedAt:   formatTime(d.CreatedAt),
		UpdatedAt:   formatTime(d.UpdatedAt),
	}
}

// ToDocumentDetailResponse converts a DocumentDetail to an HTTP response DTO.
func ToDocumentDetailResponse(d *ports.DocumentDetail) DocumentResponse {
	resp := ToDocumentResponse(&d.Document)
	if d.Approval != nil {
		flow := ToFlowResponse(d.Approval)
		resp.Approval = &flow
	}
	return resp
}

// DocumentListResponse represents one page of documents.
type DocumentListResponse struct {
	Documents []DocumentResponse `json:"documents"`
	Total     int                `json:"total"`
	Page      int                `json:"page"`
	Limit     int                `json:"limit"`
	Pages     int                `json:"pages"`
}

// ToDocumentListResponse converts a domain Page to an HTTP response DTO.
func ToDocumentListResponse(p *document.Page) DocumentListResponse {
	items := make([]DocumentResponse, len(p.Documents))
	for i := range p.Documents {
		items[i] = ToDocumentResponse(&p.Documents[i])
	}

	pages := 0
	if p.Limit > 0 {
		pages = (p.Total + p.Limit - 1) / p.Limit
	}
	return DocumentListResponse{
		Documents: items,
		Total:     p.Total,
		Page:      p.Page,
		Limit:     p.Limit,
		Pages:     pages,
	}
}

// PendingListResponse represents the caller's approval inbox.
type PendingListResponse struct {
	Approvals []DocumentResponse `json:"approvals"`
	Count     int                `json:"count"`
}

// ToPendingListResponse converts pending approvals to an HTTP response DTO.
func ToPendingListResponse(pending []ports.PendingApproval) PendingListResponse {
	items := make([]DocumentResponse, len(pending))
	for i := range pending {
		items[i] = ToDocumentResponse(&pending[i].Document)
		flow := ToFlowResponse(&pending[i].Approval)
		items[i].Approval = &flow
	}
	return PendingListResponse{Approvals: items, Count: len(items)}
}

// BulkDecisionResponse represents the result of a bulk decision.
// It includes both successful decisions and per-item errors.
type BulkDecisionResponse struct {
	Decided   []FlowResponse          `json:"decided"`
	Errors    []BulkDecisionErrorItem `json:"errors"`
	Total     int                     `json:"total"`
	Succeeded int                     `json:"succeeded"`
	Failed    int                     `json:"failed"`
}

// BulkDecisionErrorItem represents a single failed decision within a bulk
// operation. Status is the HTTP status the failure would have produced alone.
type BulkDecisionErrorItem struct {
	DocumentID string `json:"document_id"`
	Status     int    `json:"status"`
	Reason     string `json:"reason,omitempty"`
	Message    string `json:"message"`
}

// ToBulkDecisionResponse converts a ports.BulkDecideResult to an HTTP
// response DTO.
func ToBulkDecisionResponse(result *ports.BulkDecideResult) BulkDecisionResponse {
	decided := make([]FlowResponse, len(result.Decided))
	for i := range result.Decided {
		decided[i] = ToFlowResponse(&result.Decided[i])
	}

	errs := make([]BulkDecisionErrorItem, len(result.Errors))
	for i, e := range result.Errors {
		errs[i] = BulkDecisionErrorItem{
			DocumentID: e.DocumentID,
			Status:     domainErrorToStatus(e.Err),
			Reason:     forbiddenReason(e.Err),
			Message:    e.Err.Error(),
		}
	}

	return BulkDecisionResponse{
		Decided:   decided,
		Errors:    errs,
		Total:     len(decided) + len(errs),
		Succeeded: len(decided),
		Failed:    len(errs),
	}
}

// formatTime renders t as RFC 3339 in UTC, or "" for the zero time.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
