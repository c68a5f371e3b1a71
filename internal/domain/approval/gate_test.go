package approval_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jsamuelsen11/docflow-bff/internal/domain/approval"
)

func TestFlow_Gate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		flow   approval.Flow
		user   string
		want   approval.GateReason
		allows bool
	}{
		{name: "current approver", flow: flowOf(pending, waiting), user: "u1", want: approval.ReasonAllowed, allows: true},
		{name: "current approver while all waiting", flow: flowOf(waiting, waiting), user: "u1", want: approval.ReasonAllowed, allows: true},
		{name: "later approver", flow: flowOf(pending, waiting), user: "u2", want: approval.ReasonNotYourTurn},
		{name: "already approved", flow: flowOf(approved, pending), user: "u1", want: approval.ReasonAlreadyDecided},
		{name: "outsider", flow: flowOf(pending, waiting), user: "u9", want: approval.ReasonNotAnApprover},
		{name: "anonymous", flow: flowOf(pending), user: "", want: approval.ReasonNotAnApprover},
		{name: "closed by approval", flow: flowOf(approved, approved), user: "u2", want: approval.ReasonFlowClosed},
		{name: "closed by rejection", flow: flowOf(rejected, waiting), user: "u2", want: approval.ReasonFlowClosed},
		{name: "empty flow", flow: flowOf(), user: "u1", want: approval.ReasonNotStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.flow.Gate(tt.user)
			assert.Equal(t, tt.want, got.Reason)
			assert.Equal(t, tt.allows, got.Allowed)
		})
	}
}

func TestFlow_GateNeverAllowsClosedFlows(t *testing.T) {
	t.Parallel()

	flows := []approval.Flow{
		flowOf(),
		flowOf(approved),
		flowOf(approved, skipped),
		flowOf(rejected),
		flowOf(approved, rejected, pending),
	}

	for _, flow := range flows {
		for _, user := range []string{"u1", "u2", "u3"} {
			if flow.State() != approval.StateInProgress {
				assert.False(t, flow.Gate(user).Allowed, "state %s user %s", flow.State(), user)
			}
		}
	}
}

func TestFlow_GateRepeatApprover(t *testing.T) {
	t.Parallel()

	flow := approval.Flow{Steps: []approval.Step{
		{Order: 1, ApproverID: "ana", Status: approved},
		{Order: 2, ApproverID: "ben", Status: pending},
		{Order: 3, ApproverID: "ana", Status: waiting},
	}}

	assert.Equal(t, approval.ReasonNotYourTurn, flow.Gate("ana").Reason)
	assert.True(t, flow.Gate("ben").Allowed)
}
