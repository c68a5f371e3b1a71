package ports

import (
	"context"

	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/document"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
)

// AuthClient defines the client port for the backend's authentication API.
// Implemented by the ACL adapter; called by the application layer and the
// session manager.
type AuthClient interface {
	// Login exchanges credentials for a token pair.
	// Returns domain.ErrUnauthenticated for bad credentials and a
	// *domain.RateLimitError when the backend throttles the attempt.
	Login(ctx context.Context, creds auth.Credentials) (*auth.LoginResult, error)

	// Register creates an account. Returns domain.ErrConflict when the email
	// is already registered.
	Register(ctx context.Context, reg user.Registration) (*user.User, error)

	// Refresh exchanges a refresh token for a new pair.
	// Returns domain.ErrUnauthenticated when the refresh token is rejected.
	Refresh(ctx context.Context, refreshToken string) (*auth.IssuedTokens, error)

	// Logout revokes the refresh token.
	Logout(ctx context.Context, refreshToken string) error

	// ForgotPassword asks the backend to email a reset link.
	ForgotPassword(ctx context.Context, email string) error

	// ResetPassword completes a reset with the emailed token.
	ResetPassword(ctx context.Context, reset user.PasswordReset) error
}

// ProfileClient defines the client port for the signed-in user's account.
// The bearer token is taken from the request context.
type ProfileClient interface {
	GetProfile(ctx context.Context) (*user.User, error)
	UpdateProfile(ctx context.Context, update user.ProfileUpdate) (*user.User, error)
	ChangePassword(ctx context.Context, change user.PasswordChange) error
}

// DocumentClient defines the client port for documents and their approval
// flows.
type DocumentClient interface {
	// ListDocuments returns one page of documents visible to the caller.
	ListDocuments(ctx context.Context, filter document.Filter) (*document.Page, error)

	// GetDocument returns a document, with its flow when the backend embeds it.
	// Returns domain.ErrNotFound if the document does not exist.
	GetDocument(ctx context.Context, id string) (*document.Document, error)

	// GetApprovalFlow returns the document's approval flow.
	GetApprovalFlow(ctx context.Context, documentID string) (*approval.Flow, error)

	// ListPendingApprovals returns documents awaiting the caller's decision.
	ListPendingApprovals(ctx context.Context) ([]document.Document, error)

	// Decide records the caller's decision on the current step and returns
	// the backend's updated flow.
	Decide(ctx context.Context, documentID string, decision approval.Decision, comment string) (*approval.Flow, error)
}
