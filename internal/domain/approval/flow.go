// Package approval interprets sequential approval flows: the overall state,
// the active step, per-step display classification, and whether a given
// user may decide now.
//
// The backend decides and stores every transition. Flow values here are
// read-only copies; Apply returns a predicted successor without mutating the
// receiver.
package approval

import (
	"cmp"
	"slices"
	"time"
)

// State is the derived overall status of a flow.
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateApproved   State = "approved"
	StateRejected   State = "rejected"
)

// String implements fmt.Stringer.
func (s State) String() string {
	return string(s)
}

// Closed reports whether no further decisions are possible.
func (s State) Closed() bool {
	return s == StateApproved || s == StateRejected
}

// Flow is a document's ordered chain of approver steps.
type Flow struct {
	ID         string
	DocumentID string
	Steps      []Step
	CreatedAt  time.Time
}

// Sorted returns a copy of the steps ordered by Order. Steps with equal
// Order keep their backend order.
func (f *Flow) Sorted() []Step {
	steps := slices.Clone(f.Steps)
	slices.SortStableFunc(steps, func(a, b Step) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return steps
}

// State derives the overall status. Any rejection rejects the flow; the flow
// is approved only when every step is approved or skipped.
func (f *Flow) State() State {
	if len(f.Steps) == 0 {
		return StateNotStarted
	}

	passed := 0
	for i := range f.Steps {
		switch {
		case f.Steps[i].Status == StepRejected:
			return StateRejected
		case f.Steps[i].Status.Passed():
			passed++
		}
	}

	if passed == len(f.Steps) {
		return StateApproved
	}
	return StateInProgress
}

// CurrentStep returns the lowest-order step that has not passed. ok is false
// when the flow is empty or closed.
//
// A later step marked pending ahead of an undecided earlier step is
// inconsistent backend data; the earlier step is still current.
func (f *Flow) CurrentStep() (Step, bool) {
	i := f.currentIndex()
	if i < 0 {
		return Step{}, false
	}
	return f.Sorted()[i], true
}

// currentIndex returns the index of the current step in Sorted(), or -1.
func (f *Flow) currentIndex() int {
	if f.State() != StateInProgress {
		return -1
	}
	for i, s := range f.Sorted() {
		if !s.Status.Passed() {
			return i
		}
	}
	return -1
}

// Progress returns the number of passed steps and the total.
func (f *Flow) Progress() (decided, total int) {
	for i := range f.Steps {
		if f.Steps[i].Status.Passed() {
			decided++
		}
	}
	return decided, len(f.Steps)
}

// StepViews classifies every step in Sorted() order.
func (f *Flow) StepViews() []StepView {
	steps := f.Sorted()
	views := make([]StepView, len(steps))
	current := f.currentIndex()
	rejected := false

	for i, s := range steps {
		switch {
		case s.Status == StepRejected:
			views[i] = ViewRejected
			rejected = true
		case s.Status.Passed():
			views[i] = ViewDone
		case rejected:
			views[i] = ViewBlocked
		case i == current:
			views[i] = ViewCurrent
		default:
			views[i] = ViewUpcoming
		}
	}

	// Undecided steps that precede a later rejection are blocked as well.
	if f.State() == StateRejected {
		for i := range views {
			if views[i] == ViewUpcoming {
				views[i] = ViewBlocked
			}
		}
	}

	return views
}

// StepView returns the classification of the i-th step in Sorted() order.
func (f *Flow) StepView(i int) StepView {
	return f.StepViews()[i]
}

// Involves reports whether userID is an approver on any step.
func (f *Flow) Involves(userID string) bool {
	if userID == "" {
		return false
	}
	for i := range f.Steps {
		if f.Steps[i].ApproverID == userID {
			return true
		}
	}
	return false
}
