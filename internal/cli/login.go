package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
)

type loginOutput struct {
	UserID           string `json:"user_id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	Role             string `json:"role"`
	ExpiresIn        int64  `json:"expires_in"`
	RefreshExpiresIn int64  `json:"refresh_expires_in,omitempty"`
}

func newLoginCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Check credentials and show the signed-in account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.context(cmd.Context())
			defer cancel()

			logger := opts.logger(cmd.ErrOrStderr())
			backend := opts.Connect(opts, logger)

			return withSession(ctx, opts, backend, logger, func(_ context.Context, result *auth.LoginResult) error {
				return writeLogin(cmd.OutOrStdout(), opts.Format, result)
			})
		},
	}
}

func writeLogin(w io.Writer, format string, result *auth.LoginResult) error {
	out := loginOutput{
		UserID:           result.User.ID,
		Name:             result.User.Name,
		Email:            result.User.Email,
		Role:             result.User.Role.String(),
		ExpiresIn:        int64(result.Tokens.ExpiresIn / time.Second),
		RefreshExpiresIn: int64(result.Tokens.RefreshExpiresIn / time.Second),
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	_, err := fmt.Fprintf(w, "Signed in as %s <%s> (%s)\nAccess token expires in %s\n",
		out.Name, out.Email, out.Role, result.Tokens.ExpiresIn)
	return err
}
