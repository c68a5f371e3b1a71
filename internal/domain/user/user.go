// Package user defines the account and profile types and their local
// validation rules.
package user

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/docflow-bff/internal/domain"
)

const (
	minPasswordLength = 8
	maxNameLength     = 120
	maxPhoneLength    = 32
)

// User is the backend's account record as seen by the signed-in user.
type User struct {
	ID         string
	Name       string
	Email      string
	Role       Role
	Department string
	Phone      string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProfileUpdate is the set of profile fields a user may change.
type ProfileUpdate struct {
	Name       string
	Email      string
	Department string
	Phone      string
}

// Validate checks the update before it is sent to the backend.
func (p *ProfileUpdate) Validate() error {
	fields := make(map[string]string)

	validateName(fields, p.Name)
	validateEmail(fields, p.Email)
	if p.Phone != "" && !validPhone(p.Phone) {
		fields["phone"] = "may contain only digits, spaces, '+' and '-'"
	}

	return domain.NewValidationError(fields)
}

// Normalize trims surrounding whitespace and lowercases the email.
func (p *ProfileUpdate) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.Email = NormalizeEmail(p.Email)
	p.Department = strings.TrimSpace(p.Department)
	p.Phone = strings.TrimSpace(p.Phone)
}

// PasswordChange is a signed-in user's request to replace their password.
type PasswordChange struct {
	Current string
	New     string
	Confirm string
}

// Validate checks the change locally. The backend still verifies Current.
func (c *PasswordChange) Validate() error {
	fields := make(map[string]string)

	if c.Current == "" {
		fields["current_password"] = domain.MsgRequired
	}
	validateNewPassword(fields, "new_password", c.New, c.Confirm)
	if c.New != "" && c.New == c.Current {
		fields["new_password"] = "must differ from the current password"
	}

	return domain.NewValidationError(fields)
}

// Registration is a self-service sign-up request.
type Registration struct {
	Name     string
	Email    string
	Password string
	Confirm  string
}

// Validate checks the registration locally.
func (r *Registration) Validate() error {
	fields := make(map[string]string)

	validateName(fields, r.Name)
	validateEmail(fields, r.Email)
	validateNewPassword(fields, "password", r.Password, r.Confirm)

	return domain.NewValidationError(fields)
}

// PasswordReset completes a forgot-password flow with the emailed token.
type PasswordReset struct {
	Token    string
	Password string
	Confirm  string
}

// Validate checks the reset locally.
func (r *PasswordReset) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Token) == "" {
		fields["token"] = domain.MsgRequired
	}
	validateNewPassword(fields, "password", r.Password, r.Confirm)

	return domain.NewValidationError(fields)
}

// NormalizeEmail trims and lowercases an address so that login throttling
// and lookups treat case variants as one account.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidEmail reports whether email has exactly one '@' with a non-empty
// local part and a domain containing no spaces.
func ValidEmail(email string) bool {
	email = strings.TrimSpace(email)
	local, host, ok := strings.Cut(email, "@")
	if !ok || local == "" || host == "" {
		return false
	}
	if strings.Contains(host, "@") || strings.ContainsAny(email, " \t") {
		return false
	}
	return !strings.HasPrefix(host, ".") && !strings.HasSuffix(host, ".")
}

func validateName(fields map[string]string, name string) {
	switch name = strings.TrimSpace(name); {
	case name == "":
		fields["name"] = domain.MsgRequired
	case utf8.RuneCountInString(name) > maxNameLength:
		fields["name"] = domain.MsgTooLong
	}
}

func validateEmail(fields map[string]string, email string) {
	switch {
	case strings.TrimSpace(email) == "":
		fields["email"] = domain.MsgRequired
	case !ValidEmail(email):
		fields["email"] = domain.MsgInvalidEmail
	}
}

func validateNewPassword(fields map[string]string, key, password, confirm string) {
	switch {
	case password == "":
		fields[key] = domain.MsgRequired
	case utf8.RuneCountInString(password) < minPasswordLength:
		fields[key] = domain.MsgPasswordShort
	}
	if confirm != password {
		fields["confirm_password"] = domain.MsgMismatch
	}
}

func validPhone(phone string) bool {
	if len(phone) > maxPhoneLength {
		return false
	}
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9', r == ' ', r == '+', r == '-':
		default:
			return false
		}
	}
	return true
}
