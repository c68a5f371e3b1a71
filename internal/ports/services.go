package ports

import (
	"context"

	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/document"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
)

// AuthService defines the service port for sign-in and session operations.
// Implemented by the application layer; called by inbound adapters (handlers).
type AuthService interface {
	// Login authenticates and creates a session.
	// Returns a *domain.RateLimitError while the account is cooling down.
	Login(ctx context.Context, creds auth.Credentials) (*auth.SessionInfo, error)

	// Register validates and creates an account. No session is created.
	Register(ctx context.Context, reg user.Registration) (*user.User, error)

	// Logout revokes the session's tokens best-effort and always removes the
	// local session.
	Logout(ctx context.Context, sessionID string) error

	// Session returns the session snapshot shown by the UI's expiry timer.
	Session(ctx context.Context, sessionID string) (*auth.SessionInfo, error)

	// Refresh forces a token refresh.
	Refresh(ctx context.Context, sessionID string) (*auth.SessionInfo, error)

	// ForgotPassword requests a reset email. It reports success whether or
	// not the account exists.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword validates and completes a password reset.
	ResetPassword(ctx context.Context, reset user.PasswordReset) error
}

// ProfileService defines the service port for the signed-in user's profile.
type ProfileService interface {
	Get(ctx context.Context) (*user.User, error)

	// Update validates and saves the profile.
	// Returns domain.ErrValidation if the update fails validation.
	Update(ctx context.Context, update user.ProfileUpdate) (*user.User, error)

	// ChangePassword validates and replaces the password.
	ChangePassword(ctx context.Context, change user.PasswordChange) error
}

// DocumentService defines the service port for document browsing.
type DocumentService interface {
	// List returns one page of documents. The filter is normalized first.
	List(ctx context.Context, filter document.Filter) (*document.Page, error)

	// Get returns a document with its approval flow interpreted for the
	// current user. Returns domain.ErrNotFound if it does not exist.
	Get(ctx context.Context, id string) (*DocumentDetail, error)
}

// ApprovalService defines the service port for approval decisions.
type ApprovalService interface {
	// Pending returns the documents awaiting a decision, each with its flow
	// interpreted for the current user.
	Pending(ctx context.Context) ([]PendingApproval, error)

	// Flow returns the document's flow interpreted for the current user.
	Flow(ctx context.Context, documentID string) (*FlowView, error)

	// Decide gates the decision locally, submits it and returns the
	// backend's resulting flow. Returns a *domain.ForbiddenError carrying the
	// gate reason when the user may not decide now.
	Decide(ctx context.Context, documentID string, decision approval.Decision, comment string) (*FlowView, error)

	// BulkDecide submits several decisions concurrently with partial success
	// semantics. Returns a hard error only for request-level failures.
	// Individual failures are collected in BulkDecideResult.Errors.
	BulkDecide(ctx context.Context, requests []DecisionRequest) (*BulkDecideResult, error)
}

// FlowView is an approval flow interpreted for one user.
type FlowView struct {
	Flow approval.Flow
	// Steps is Flow.Sorted(), paired index-for-index with Views.
	Steps   []approval.Step
	Views   []approval.StepView
	State   approval.State
	Current *approval.Step
	Decided int
	Total   int
	Gate    approval.GateResult
}

// DocumentDetail is a document with its interpreted flow. Approval is nil
// when the document has no flow.
type DocumentDetail struct {
	Document document.Document
	Approval *FlowView
}

// PendingApproval pairs a pending document with its interpreted flow.
type PendingApproval struct {
	Document document.Document
	Approval FlowView
}

// DecisionRequest is one decision within a bulk operation.
type DecisionRequest struct {
	DocumentID string
	Decision   approval.Decision
	Comment    string
}

// BulkDecideError records a single failed decision within a bulk operation.
type BulkDecideError struct {
	DocumentID string
	Err        error
}

// BulkDecideResult holds the outcomes of a bulk decision.
// Decided contains the resulting flows; Errors contains per-item failures.
type BulkDecideResult struct {
	Decided []FlowView
	Errors  []BulkDecideError
}
