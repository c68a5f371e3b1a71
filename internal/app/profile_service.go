package app

import (
	"context"
	"log/slog"

	"github.com/jsamuelsen11/docflow-bff/internal/domain/user"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

// Compile-time check that ProfileService implements ports.ProfileService.
var _ ports.ProfileService = (*ProfileService)(nil)

// ProfileService implements ports.ProfileService for the signed-in user.
// The backend identifies the user from the bearer token in ctx.
type ProfileService struct {
	client ports.ProfileClient
	logger *slog.Logger
}

// NewProfileService creates a ProfileService. A nil logger discards output.
func NewProfileService(client ports.ProfileClient, logger *slog.Logger) *ProfileService {
	return &ProfileService{client: client, logger: orDiscard(logger)}
}

// Get returns the current user's profile.
func (s *ProfileService) Get(ctx context.Context) (*user.User, error) {
	u, err := s.client.GetProfile(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to fetch profile",
			slog.String("operation", "GetProfile"),
			slog.Any("error", err),
		)
		return nil, err
	}
	return u, nil
}

// Update normalizes and validates update before saving it.
func (s *ProfileService) Update(ctx context.Context, update user.ProfileUpdate) (*user.User, error) {
	update.Normalize()
	if err := update.Validate(); err != nil {
		return nil, err
	}

	u, err := s.client.UpdateProfile(ctx, update)
	if err != nil {
		s.logger.ErrorContext(ctx, "failed to update profile",
			slog.String("operation", "UpdateProfile"),
			slog.Any("error", err),
		)
		return nil, err
	}

	s.logger.InfoContext(ctx, "profile updated", slog.String("user_id", u.ID))
	return u, nil
}

// ChangePassword validates change before submitting it.
func (s *ProfileService) ChangePassword(ctx context.Context, change user.PasswordChange) error {
	if err := change.Validate(); err != nil {
		return err
	}

	if err := s.client.ChangePassword(ctx, change); err != nil {
		s.logger.WarnContext(ctx, "failed to change password",
			slog.String("operation", "ChangePassword"),
			slog.Any("error", err),
		)
		return err
	}
	return nil
}
