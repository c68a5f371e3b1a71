package approval

import "time"

// StepStatus is the backend's status for one approver step.
type StepStatus string

const (
	StepWaiting  StepStatus = "waiting"
	StepPending  StepStatus = "pending"
	StepApproved StepStatus = "approved"
	StepRejected StepStatus = "rejected"
	StepSkipped  StepStatus = "skipped"
)

// IsValid returns true if the status is one of the defined constants.
func (s StepStatus) IsValid() bool {
	switch s {
	case StepWaiting, StepPending, StepApproved, StepRejected, StepSkipped:
		return true
	default:
		return false
	}
}

// Passed reports whether the step no longer holds up the flow. Unknown
// statuses are treated as undecided.
func (s StepStatus) Passed() bool {
	return s == StepApproved || s == StepSkipped
}

// Decided reports whether the step has a final outcome.
func (s StepStatus) Decided() bool {
	return s.Passed() || s == StepRejected
}

// String implements fmt.Stringer.
func (s StepStatus) String() string {
	return string(s)
}

// Step is one approver's position in a sequential flow.
type Step struct {
	Order        int
	ApproverID   string
	ApproverName string
	Status       StepStatus
	Comment      string
	DecidedAt    *time.Time
}

// StepView classifies a step for display relative to the flow's progress.
type StepView string

const (
	ViewDone     StepView = "done"
	ViewCurrent  StepView = "current"
	ViewUpcoming StepView = "upcoming"
	ViewRejected StepView = "rejected"
	ViewBlocked  StepView = "blocked"
)

// String implements fmt.Stringer.
func (v StepView) String() string {
	return string(v)
}
