package account

import (
	"time"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/clients/acl/wire"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
)

// ToDomainUser converts a backend UserDTO to a domain User. Unknown roles
// are kept verbatim.
func ToDomainUser(dto *UserDTO) user.User {
	return user.User{
		ID:         dto.ID.String(),
		Name:       dto.Name,
		Email:      dto.Email,
		Role:       user.Role(dto.Role),
		Department: dto.Department,
		Phone:      dto.Phone,
		CreatedAt:  wire.ParseTime(dto.CreatedAt),
		UpdatedAt:  wire.ParseTime(dto.UpdatedAt),
	}
}

// ToIssuedTokens converts a token response. Missing or non-positive
// lifetimes become zero so that the session layer can fall back.
func ToIssuedTokens(dto *TokenResponseDTO) auth.IssuedTokens {
	return auth.IssuedTokens{
		AccessToken:      dto.AccessToken,
		RefreshToken:     dto.RefreshToken,
		ExpiresIn:        seconds(dto.ExpiresIn),
		RefreshExpiresIn: seconds(dto.RefreshExpiresIn),
	}
}

// ToLoginResult converts a login response. User is zero when the backend
// did not embed it.
func ToLoginResult(dto *TokenResponseDTO) auth.LoginResult {
	result := auth.LoginResult{Tokens: ToIssuedTokens(dto)}
	if dto.User != nil {
		result.User = ToDomainUser(dto.User)
	}
	return result
}

// ToRegisterRequest converts a registration. Confirm is checked locally and
// not sent.
func ToRegisterRequest(r *user.Registration) RegisterRequestDTO {
	return RegisterRequestDTO{
		Name:     r.Name,
		Email:    r.Email,
		Password: r.Password,
	}
}

// ToUpdateProfileRequest converts a profile update.
func ToUpdateProfileRequest(p *user.ProfileUpdate) UpdateProfileRequestDTO {
	return UpdateProfileRequestDTO{
		Name:       p.Name,
		Email:      p.Email,
		Department: p.Department,
		Phone:      p.Phone,
	}
}

// ToChangePasswordRequest converts a password change.
func ToChangePasswordRequest(c *user.PasswordChange) ChangePasswordRequestDTO {
	return ChangePasswordRequestDTO{
		CurrentPassword: c.Current,
		NewPassword:     c.New,
	}
}

// ToResetPasswordRequest converts a password reset.
func ToResetPasswordRequest(r *user.PasswordReset) ResetPasswordRequestDTO {
	return ResetPasswordRequestDTO{
		Token:    r.Token,
		Password: r.Password,
	}
}

func seconds(n int64) time.Duration {
	if n <= 0 {
		return 0
	}
	return time.Duration(n) * time.Second
}
