// Package cli implements docflowctl, an operator CLI that talks to the
// document backend through the same ACL clients as the BFF.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"slices"
	"time"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/docflow-bff/internal/adapters/clients/acl"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/config"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/httpclient"
	"github.com/jsamuelsen11/docflow-bff/internal/platform/logging"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

const (
	envEmail    = "DOCFLOW_EMAIL"
	envPassword = "DOCFLOW_PASSWORD"
	envBaseURL  = "DOCFLOW_BASE_URL"

	defaultBaseURL = "http://localhost:8081"
)

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Backend is the pair of backend APIs a command needs.
type Backend struct {
	Auth      ports.AuthClient
	Documents ports.DocumentClient
}

// RootOptions holds global flags for all commands.
type RootOptions struct {
	BaseURL  string
	Email    string
	Password string
	Timeout  time.Duration
	Format   string
	Verbose  bool

	// Connect builds the backend clients. Tests replace it.
	Connect func(opts *RootOptions, logger *slog.Logger) Backend
}

// NewRootCommand creates the root command for docflowctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{Connect: connectHTTP}
	return newRootCommand(opts)
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "docflowctl",
		Short: "Operate on document approvals from the command line",
		Long: `docflowctl signs in to the document backend, performs one action and
signs out again. Credentials come from --email/--password or the
DOCFLOW_EMAIL and DOCFLOW_PASSWORD environment variables.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	baseURL := os.Getenv(envBaseURL)
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	cmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url", baseURL, "document backend base URL")
	cmd.PersistentFlags().StringVar(&opts.Email, "email", "", "account email (default $"+envEmail+")")
	cmd.PersistentFlags().StringVar(&opts.Password, "password", "", "account password (default $"+envPassword+")")
	cmd.PersistentFlags().DurationVar(&opts.Timeout, "timeout", 30*time.Second, "overall command timeout")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "log backend calls to stderr")

	cmd.AddCommand(newLoginCommand(opts))
	cmd.AddCommand(newPendingCommand(opts))
	cmd.AddCommand(newDecideCommand(opts, decisionApprove))
	cmd.AddCommand(newDecideCommand(opts, decisionReject))

	return cmd
}

// credentials resolves the account from flags, then the environment.
func (o *RootOptions) credentials() (auth.Credentials, error) {
	creds := auth.Credentials{Email: o.Email, Password: o.Password}
	if creds.Email == "" {
		creds.Email = os.Getenv(envEmail)
	}
	if creds.Password == "" {
		creds.Password = os.Getenv(envPassword)
	}
	if creds.Email == "" || creds.Password == "" {
		return auth.Credentials{}, fmt.Errorf("credentials required: set --email and --password or %s and %s", envEmail, envPassword)
	}
	return creds, nil
}

// logger returns a text logger on w at debug when verbose, otherwise one
// that only reports warnings.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	level := "warn"
	if o.Verbose {
		level = "debug"
	}
	return logging.New(level, "text", w)
}

// clientConfig mirrors the server's outbound defaults with a single attempt
// budget suited to an interactive tool.
func (o *RootOptions) clientConfig() *config.ClientConfig {
	return &config.ClientConfig{
		BaseURL: o.BaseURL,
		Timeout: o.Timeout,
		Retry: config.RetryConfig{
			MaxAttempts:     2,
			InitialInterval: 200 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			Multiplier:      2,
		},
		CircuitBreaker: config.CircuitBreakerConfig{
			MaxFailures:   5,
			Timeout:       30 * time.Second,
			HalfOpenLimit: 1,
		},
	}
}

func connectHTTP(opts *RootOptions, logger *slog.Logger) Backend {
	cfg := opts.clientConfig()
	return Backend{
		Auth:      acl.NewAccountClient(httpclient.New(cfg, "account-api", nil, logger)),
		Documents: acl.NewDocumentClient(httpclient.New(cfg, "document-api", nil, logger)),
	}
}

func (o *RootOptions) context(parent context.Context) (context.Context, context.CancelFunc) {
	if o.Timeout <= 0 {
		return context.WithCancel(parent)
	}
	return context.WithTimeout(parent, o.Timeout)
}
