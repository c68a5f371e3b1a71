package approval_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
)

// flowOf builds a flow whose step i (1-based order) is approved by "u<i>"
// with the given status.
func flowOf(statuses ...approval.StepStatus) approval.Flow {
	steps := make([]approval.Step, len(statuses))
	for i, s := range statuses {
		steps[i] = approval.Step{
			Order:      i + 1,
			ApproverID: "u" + string(rune('1'+i)),
			Status:     s,
		}
	}
	return approval.Flow{ID: "flow-1", DocumentID: "doc-1", Steps: steps}
}

const (
	waiting  = approval.StepWaiting
	pending  = approval.StepPending
	approved = approval.StepApproved
	rejected = approval.StepRejected
	skipped  = approval.StepSkipped
)

func TestFlow_State(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		flow approval.Flow
		want approval.State
	}{
		{name: "empty", flow: flowOf(), want: approval.StateNotStarted},
		{name: "fresh", flow: flowOf(pending, waiting), want: approval.StateInProgress},
		{name: "all waiting", flow: flowOf(waiting, waiting), want: approval.StateInProgress},
		{name: "partial", flow: flowOf(approved, pending), want: approval.StateInProgress},
		{name: "all approved", flow: flowOf(approved, approved), want: approval.StateApproved},
		{name: "approved with skip", flow: flowOf(approved, skipped, approved), want: approval.StateApproved},
		{name: "rejected first", flow: flowOf(rejected, waiting), want: approval.StateRejected},
		{name: "rejected after approvals", flow: flowOf(approved, approved, rejected), want: approval.StateRejected},
		{name: "unknown status is undecided", flow: flowOf(approved, "escalated"), want: approval.StateInProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, tt.flow.State())
		})
	}
}

func TestFlow_CurrentStep(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		flow     approval.Flow
		wantID   string
		wantOpen bool
	}{
		{name: "first pending", flow: flowOf(pending, waiting, waiting), wantID: "u1", wantOpen: true},
		{name: "all waiting picks first", flow: flowOf(waiting, waiting), wantID: "u1", wantOpen: true},
		{name: "after approval", flow: flowOf(approved, pending, waiting), wantID: "u2", wantOpen: true},
		{name: "skips skipped", flow: flowOf(approved, skipped, waiting), wantID: "u3", wantOpen: true},
		{name: "inconsistent later pending", flow: flowOf(waiting, pending), wantID: "u1", wantOpen: true},
		{name: "approved flow", flow: flowOf(approved, approved), wantOpen: false},
		{name: "rejected flow", flow: flowOf(approved, rejected, waiting), wantOpen: false},
		{name: "empty flow", flow: flowOf(), wantOpen: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			step, ok := tt.flow.CurrentStep()
			require.Equal(t, tt.wantOpen, ok)
			if ok {
				assert.Equal(t, tt.wantID, step.ApproverID)
			}
		})
	}
}

func TestFlow_SortsByOrder(t *testing.T) {
	t.Parallel()

	flow := approval.Flow{Steps: []approval.Step{
		{Order: 3, ApproverID: "carol", Status: waiting},
		{Order: 1, ApproverID: "alice", Status: approved},
		{Order: 2, ApproverID: "bob", Status: pending},
	}}

	sorted := flow.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, []string{"alice", "bob", "carol"},
		[]string{sorted[0].ApproverID, sorted[1].ApproverID, sorted[2].ApproverID})
	assert.Equal(t, "carol", flow.Steps[0].ApproverID, "Sorted must not reorder the receiver")

	cur, ok := flow.CurrentStep()
	require.True(t, ok)
	assert.Equal(t, "bob", cur.ApproverID)
}

func TestFlow_SortsExtremeOrders(t *testing.T) {
	t.Parallel()

	flow := approval.Flow{Steps: []approval.Step{
		{Order: math.MaxInt, ApproverID: "last"},
		{Order: math.MinInt, ApproverID: "first"},
		{Order: 0, ApproverID: "middle"},
	}}

	sorted := flow.Sorted()
	require.Len(t, sorted, 3)
	assert.Equal(t, []string{"first", "middle", "last"},
		[]string{sorted[0].ApproverID, sorted[1].ApproverID, sorted[2].ApproverID})
}

func TestFlow_Progress(t *testing.T) {
	t.Parallel()

	flow := flowOf(approved, skipped, pending, waiting)
	decided, total := flow.Progress()

	assert.Equal(t, 2, decided)
	assert.Equal(t, 4, total)
}

func TestFlow_StepViews(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		flow approval.Flow
		want []approval.StepView
	}{
		{
			name: "in progress",
			flow: flowOf(approved, pending, waiting),
			want: []approval.StepView{approval.ViewDone, approval.ViewCurrent, approval.ViewUpcoming},
		},
		{
			name: "rejected mid flow",
			flow: flowOf(approved, rejected, waiting),
			want: []approval.StepView{approval.ViewDone, approval.ViewRejected, approval.ViewBlocked},
		},
		{
			name: "rejection after undecided step",
			flow: flowOf(waiting, rejected),
			want: []approval.StepView{approval.ViewBlocked, approval.ViewRejected},
		},
		{
			name: "approved",
			flow: flowOf(approved, skipped),
			want: []approval.StepView{approval.ViewDone, approval.ViewDone},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			views := tt.flow.StepViews()
			assert.Equal(t, tt.want, views)

			current := 0
			for i := range views {
				if views[i] == approval.ViewCurrent {
					current++
				}
				assert.Equal(t, views[i], tt.flow.StepView(i))
			}
			assert.LessOrEqual(t, current, 1, "at most one step may be current")
		})
	}
}

func TestFlow_Involves(t *testing.T) {
	t.Parallel()

	flow := flowOf(pending, waiting)

	assert.True(t, flow.Involves("u2"))
	assert.False(t, flow.Involves("u9"))
	assert.False(t, flow.Involves(""))
}
