package domain_test

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jsamuelsen11/docflow-bff/internal/domain"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("updating profile: %w", &domain.ValidationError{Fields: map[string]string{
		"name":  domain.MsgRequired,
		"email": domain.MsgInvalidEmail,
	}})

	if !errors.Is(err, domain.ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false")
	}
	want := "updating profile: validation error: email: must be a valid email address; name: is required"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestNewValidationError_Empty(t *testing.T) {
	t.Parallel()

	if err := domain.NewValidationError(map[string]string{}); err != nil {
		t.Errorf("NewValidationError(empty) = %v, want nil", err)
	}
}

func TestRateLimitError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("login: %w", &domain.RateLimitError{RetryAfter: 90 * time.Second})

	if !errors.Is(err, domain.ErrRateLimited) {
		t.Error("errors.Is(err, ErrRateLimited) = false")
	}
	var rl *domain.RateLimitError
	if !errors.As(err, &rl) || rl.RetryAfter != 90*time.Second {
		t.Errorf("errors.As = %v, RetryAfter = %v", rl, rl.RetryAfter)
	}
	if got := (&domain.RateLimitError{}).Error(); got != "rate limited" {
		t.Errorf("Error() without hint = %q", got)
	}
}

func TestForbiddenError(t *testing.T) {
	t.Parallel()

	err := &domain.ForbiddenError{Reason: "not_your_turn"}

	if !errors.Is(err, domain.ErrForbidden) {
		t.Error("errors.Is(err, ErrForbidden) = false")
	}
	if err.Error() != "forbidden: not_your_turn" {
		t.Errorf("Error() = %q", err.Error())
	}
}
