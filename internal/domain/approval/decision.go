package approval

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/jsamuelsen11/docflow-bff/internal/domain"
)

// MaxCommentLength is the longest decision comment accepted, in runes.
const MaxCommentLength = 1000

// Decision is an approver's verdict on the current step.
type Decision string

const (
	DecisionApprove Decision = "approve"
	DecisionReject  Decision = "reject"
)

// IsValid returns true if the decision is one of the defined constants.
func (d Decision) IsValid() bool {
	return d == DecisionApprove || d == DecisionReject
}

// String implements fmt.Stringer.
func (d Decision) String() string {
	return string(d)
}

// StepStatus returns the status a step takes on after the decision.
func (d Decision) StepStatus() StepStatus {
	if d == DecisionReject {
		return StepRejected
	}
	return StepApproved
}

// ValidateDecision checks a decision and its comment. A rejection needs a
// non-blank comment.
func ValidateDecision(d Decision, comment string) error {
	fields := make(map[string]string)

	if !d.IsValid() {
		fields["decision"] = fmt.Sprintf("invalid: %q", d)
	}
	comment = strings.TrimSpace(comment)
	switch {
	case d == DecisionReject && comment == "":
		fields["comment"] = "is required when rejecting"
	case utf8.RuneCountInString(comment) > MaxCommentLength:
		fields["comment"] = domain.MsgTooLong
	}

	return domain.NewValidationError(fields)
}

// Apply predicts the flow after userID records decision at now. It fails
// with a *domain.ForbiddenError when the gate denies the user and with a
// *domain.ValidationError when the decision is malformed.
//
// The returned flow has its steps in Sorted() order. On approval the next
// waiting step becomes pending.
func (f *Flow) Apply(userID string, d Decision, comment string, now time.Time) (Flow, error) {
	if err := ValidateDecision(d, comment); err != nil {
		return Flow{}, err
	}
	if gate := f.Gate(userID); !gate.Allowed {
		return Flow{}, &domain.ForbiddenError{Reason: gate.Reason.String()}
	}

	cur := f.currentIndex()
	steps := f.Sorted()
	decidedAt := now

	steps[cur].Status = d.StepStatus()
	steps[cur].Comment = strings.TrimSpace(comment)
	steps[cur].DecidedAt = &decidedAt

	if d == DecisionApprove {
		for i := cur + 1; i < len(steps); i++ {
			if steps[i].Status.Passed() {
				continue
			}
			if steps[i].Status == StepWaiting {
				steps[i].Status = StepPending
			}
			break
		}
	}

	return Flow{
		ID:         f.ID,
		DocumentID: f.DocumentID,
		Steps:      steps,
		CreatedAt:  f.CreatedAt,
	}, nil
}
