package dto

import (
	"fmt"
	"strings"

	"github.com/jsamuelsen11/docflow-bff/internal/domain"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

const msgMustNotEmpty = "must not be empty"

// LoginRequest represents the JSON body for signing in.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ToCredentials converts the request to domain credentials.
func (r *LoginRequest) ToCredentials() auth.Credentials {
	return auth.Credentials{Email: r.Email, Password: r.Password}
}

// RegisterRequest represents the JSON body for self-service sign-up.
type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ToRegistration converts the request to a domain Registration.
func (r *RegisterRequest) ToRegistration() user.Registration {
	return user.Registration{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
		Confirm:  r.ConfirmPassword,
	}
}

// ForgotPasswordRequest represents the JSON body for requesting a reset email.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ResetPasswordRequest represents the JSON body for completing a reset.
type ResetPasswordRequest struct {
	Token           string `json:"token"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ToPasswordReset converts the request to a domain PasswordReset.
func (r *ResetPasswordRequest) ToPasswordReset() user.PasswordReset {
	return user.PasswordReset{Token: r.Token, Password: r.Password, Confirm: r.ConfirmPassword}
}

// UpdateProfileRequest represents the JSON body for PATCH /profile.
// All fields are optional; nil means "do not change this field.".
type UpdateProfileRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	Department *string `json:"department,omitempty"`
	Phone      *string `json:"phone,omitempty"`
}

// Validate checks that required profile fields, when provided, are not blank.
// Returns a *domain.ValidationError if any checks fail.
func (r *UpdateProfileRequest) Validate() error {
	fields := make(map[string]string)

	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		fields["name"] = msgMustNotEmpty
	}
	if r.Email != nil && strings.TrimSpace(*r.Email) == "" {
		fields["email"] = msgMustNotEmpty
	}

	return domain.NewValidationError(fields)
}

// ApplyTo merges the provided fields over the current profile.
func (r *UpdateProfileRequest) ApplyTo(current *user.User) user.ProfileUpdate {
	update := user.ProfileUpdate{
		Name:       current.Name,
		Email:      current.Email,
		Department: current.Department,
		Phone:      current.Phone,
	}
	if r.Name != nil {
		update.Name = *r.Name
	}
	if r.Email != nil {
		update.Email = *r.Email
	}
	if r.Department != nil {
		update.Department = *r.Department
	}
	if r.Phone != nil {
		update.Phone = *r.Phone
	}
	return update
}

// ChangePasswordRequest represents the JSON body for PUT /profile/password.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ToPasswordChange converts the request to a domain PasswordChange.
func (r *ChangePasswordRequest) ToPasswordChange() user.PasswordChange {
	return user.PasswordChange{
		Current: r.CurrentPassword,
		New:     r.NewPassword,
		Confirm: r.ConfirmPassword,
	}
}

// DecisionRequest represents the JSON body for approve and reject.
type DecisionRequest struct {
	Comment string `json:"comment"`
}

// BulkDecisionRequest represents the JSON body for POST /approvals/bulk.
type BulkDecisionRequest struct {
	Decisions []BulkDecisionItem `json:"decisions"`
}

// BulkDecisionItem is one decision within a bulk request.
type BulkDecisionItem struct {
	DocumentID string `json:"document_id"`
	Decision   string `json:"decision"`
	Comment    string `json:"comment,omitempty"`
}

// Validate checks that every item names a known decision.
// Returns a *domain.ValidationError if any checks fail.
func (r *BulkDecisionRequest) Validate() error {
	fields := make(map[string]string)

	for i, item := range r.Decisions {
		if !approval.Decision(item.Decision).IsValid() {
			fields[fmt.Sprintf("decisions[%d].decision", i)] = fmt.Sprintf("invalid: %q", item.Decision)
		}
	}

	return domain.NewValidationError(fields)
}

// ToDecisionRequests converts the request to service decision requests.
func (r *BulkDecisionRequest) ToDecisionRequests() []ports.DecisionRequest {
	out := make([]ports.DecisionRequest, len(r.Decisions))
	for i, item := range r.Decisions {
		out[i] = ports.DecisionRequest{
			DocumentID: item.DocumentID,
			Decision:   approval.Decision(item.Decision),
			Comment:    item.Comment,
		}
	}
	return out
}
