// Package account implements the Anti-Corruption Layer translators for the
// backend's authentication and user resources.
package account

import "github.com/jsamuelsen11/docflow-bff/internal/adapters/clients/acl/wire"

// UserDTO matches the backend User schema.
type UserDTO struct {
	ID         wire.ID `json:"id"`
	Name       string  `json:"name"`
	Email      string  `json:"email"`
	Role       string  `json:"role"`
	Department string  `json:"department,omitempty"`
	Phone      string  `json:"phone,omitempty"`
	CreatedAt  string  `json:"created_at"`
	UpdatedAt  string  `json:"updated_at"`
}

// LoginRequestDTO is the body of POST /api/auth/login.
type LoginRequestDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenResponseDTO is returned by login and refresh. Lifetimes are in
// seconds and may be omitted. User is only present on login.
type TokenResponseDTO struct {
	AccessToken      string   `json:"access_token"`
	RefreshToken     string   `json:"refresh_token"`
	ExpiresIn        int64    `json:"expires_in,omitempty"`
	RefreshExpiresIn int64    `json:"refresh_expires_in,omitempty"`
	User             *UserDTO `json:"user,omitempty"`
}

// RegisterRequestDTO is the body of POST /api/auth/register.
type RegisterRequestDTO struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RefreshRequestDTO is the body of the refresh and logout calls.
type RefreshRequestDTO struct {
	RefreshToken string `json:"refresh_token"`
}

// ForgotPasswordRequestDTO is the body of POST /api/auth/forgot-password.
type ForgotPasswordRequestDTO struct {
	Email string `json:"email"`
}

// ResetPasswordRequestDTO is the body of POST /api/auth/reset-password.
type ResetPasswordRequestDTO struct {
	Token    string `json:"token"`
	Password string `json:"password"`
}

// UpdateProfileRequestDTO is the body of PUT /api/users/me. The backend
// replaces every field.
type UpdateProfileRequestDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Department string `json:"department"`
	Phone      string `json:"phone"`
}

// ChangePasswordRequestDTO is the body of PUT /api/users/me/password.
type ChangePasswordRequestDTO struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
