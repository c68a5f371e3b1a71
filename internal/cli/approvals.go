package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/jsamuelsen11/docflow-bff/internal/app"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
	"github.com/jsamuelsen11/docflow-bff/internal/domain/auth"
	"github.com/jsamuelsen11/docflow-bff/internal/ports"
)

const (
	decisionApprove = approval.DecisionApprove
	decisionReject  = approval.DecisionReject
)

type pendingOutput struct {
	DocumentID string `json:"document_id"`
	Title      string `json:"title"`
	Owner      string `json:"owner"`
	State      string `json:"state"`
	Progress   string `json:"progress"`
	CanDecide  bool   `json:"can_decide"`
	Reason     string `json:"reason"`
}

type decisionOutput struct {
	DocumentID string `json:"document_id"`
	Decision   string `json:"decision"`
	State      string `json:"state"`
	Progress   string `json:"progress"`
	NextStep   string `json:"next_approver,omitempty"`
}

func newPendingCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pending",
		Short: "List documents awaiting the signed-in user's decision",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := opts.context(cmd.Context())
			defer cancel()

			logger := opts.logger(cmd.ErrOrStderr())
			backend := opts.Connect(opts, logger)
			svc := app.NewApprovalService(backend.Documents, ports.NopNotifier{}, logger)

			return withSession(ctx, opts, backend, logger, func(ctx context.Context, _ *auth.LoginResult) error {
				items, err := svc.Pending(ctx)
				if err != nil {
					return fmt.Errorf("listing pending approvals: %w", err)
				}
				return writePending(cmd.OutOrStdout(), opts.Format, items)
			})
		},
	}
}

func newDecideCommand(opts *RootOptions, decision approval.Decision) *cobra.Command {
	var comment string

	cmd := &cobra.Command{
		Use:   decision.String() + " <document-id>",
		Short: strings.ToUpper(decision.String()[:1]) + decision.String()[1:] + " the current approval step of a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Checked before signing in so a bad invocation costs no session.
			if err := approval.ValidateDecision(decision, comment); err != nil {
				return err
			}

			ctx, cancel := opts.context(cmd.Context())
			defer cancel()

			logger := opts.logger(cmd.ErrOrStderr())
			backend := opts.Connect(opts, logger)
			svc := app.NewApprovalService(backend.Documents, ports.NopNotifier{}, logger)

			return withSession(ctx, opts, backend, logger, func(ctx context.Context, _ *auth.LoginResult) error {
				view, err := svc.Decide(ctx, args[0], decision, comment)
				if err != nil {
					return fmt.Errorf("%s %s: %w", decision, args[0], err)
				}
				return writeDecision(cmd.OutOrStdout(), opts.Format, args[0], decision, view)
			})
		},
	}

	usage := "comment recorded with the decision"
	if decision == decisionReject {
		usage += " (required)"
	}
	cmd.Flags().StringVarP(&comment, "comment", "m", "", usage)

	return cmd
}

func progress(view *ports.FlowView) string {
	return fmt.Sprintf("%d/%d", view.Decided, view.Total)
}

func writePending(w io.Writer, format string, items []ports.PendingApproval) error {
	out := make([]pendingOutput, 0, len(items))
	for i := range items {
		item := &items[i]
		out = append(out, pendingOutput{
			DocumentID: item.Document.ID,
			Title:      item.Document.Title,
			Owner:      item.Document.OwnerName,
			State:      item.Approval.State.String(),
			Progress:   progress(&item.Approval),
			CanDecide:  item.Approval.Gate.Allowed,
			Reason:     item.Approval.Gate.Reason.String(),
		})
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	if len(out) == 0 {
		_, err := fmt.Fprintln(w, "No documents awaiting a decision.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tTITLE\tOWNER\tSTATE\tPROGRESS\tCAN DECIDE")
	for _, row := range out {
		canDecide := "yes"
		if !row.CanDecide {
			canDecide = "no (" + row.Reason + ")"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			row.DocumentID, row.Title, row.Owner, row.State, row.Progress, canDecide)
	}
	return tw.Flush()
}

func writeDecision(w io.Writer, format, documentID string, decision approval.Decision, view *ports.FlowView) error {
	out := decisionOutput{
		DocumentID: documentID,
		Decision:   decision.String(),
		State:      view.State.String(),
		Progress:   progress(view),
	}
	if view.Current != nil {
		out.NextStep = view.Current.ApproverName
		if out.NextStep == "" {
			out.NextStep = view.Current.ApproverID
		}
	}

	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	line := fmt.Sprintf("Recorded %s on %s: flow is %s (%s decided)", out.Decision, documentID, out.State, out.Progress)
	if out.NextStep != "" {
		line += ", next approver " + out.NextStep
	}
	_, err := fmt.Fprintln(w, line)
	return err
}
