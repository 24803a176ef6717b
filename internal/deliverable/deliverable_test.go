package deliverable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MrJamesThe3rd/signoff/internal/deliverable"
)

func TestStateOf(t *testing.T) {
	approve := deliverable.Approval{Action: deliverable.ActionApprove}
	changes := deliverable.Approval{Action: deliverable.ActionRequestChanges}

	tests := []struct {
		name      string
		approvals []deliverable.Approval
		want      deliverable.State
	}{
		{name: "NoEntries", want: deliverable.StatePending},
		{name: "ChangesOnly", approvals: []deliverable.Approval{changes, changes}, want: deliverable.StateChangesRequested},
		{name: "Approved", approvals: []deliverable.Approval{approve}, want: deliverable.StateApproved},
		{name: "ChangesThenApproved", approvals: []deliverable.Approval{changes, approve}, want: deliverable.StateApproved},
		{name: "ApprovalSticksAfterChanges", approvals: []deliverable.Approval{approve, changes, changes}, want: deliverable.StateApproved},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deliverable.StateOf(tt.approvals))

			d := deliverable.Deliverable{Approvals: tt.approvals}
			assert.Equal(t, tt.want, d.State())
		})
	}
}

func TestAction_Valid(t *testing.T) {
	assert.True(t, deliverable.ActionApprove.Valid())
	assert.True(t, deliverable.ActionRequestChanges.Valid())
	assert.False(t, deliverable.Action("REJECT").Valid())
	assert.False(t, deliverable.Action("").Valid())
}
