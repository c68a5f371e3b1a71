package approval

// GateReason explains a gate result.
type GateReason string

const (
	ReasonAllowed        GateReason = "allowed"
	ReasonNotStarted     GateReason = "not_started"
	ReasonFlowClosed     GateReason = "flow_closed"
	ReasonNotAnApprover  GateReason = "not_an_approver"
	ReasonAlreadyDecided GateReason = "already_decided"
	ReasonNotYourTurn    GateReason = "not_your_turn"
)

// String implements fmt.Stringer.
func (r GateReason) String() string {
	return string(r)
}

// GateResult is the outcome of checking whether a user may decide now.
type GateResult struct {
	Allowed bool
	Reason  GateReason
}

// Gate reports whether userID may approve or reject the flow's current step.
// Only the approver of the current step of an in-progress flow is allowed.
func (f *Flow) Gate(userID string) GateResult {
	switch f.State() {
	case StateNotStarted:
		return deny(ReasonNotStarted)
	case StateApproved, StateRejected:
		return deny(ReasonFlowClosed)
	}

	if !f.Involves(userID) {
		return deny(ReasonNotAnApprover)
	}

	if cur, ok := f.CurrentStep(); ok && cur.ApproverID == userID {
		return GateResult{Allowed: true, Reason: ReasonAllowed}
	}

	for i := range f.Steps {
		if f.Steps[i].ApproverID == userID && !f.Steps[i].Status.Decided() {
			return deny(ReasonNotYourTurn)
		}
	}
	return deny(ReasonAlreadyDecided)
}

func deny(reason GateReason) GateResult {
	return GateResult{Allowed: false, Reason: reason}
}
