package deliverable

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
)

var ErrNotFound = apperr.NotFound("deliverable not found")

// Action is a client's decision on a deliverable.
type Action string

const (
	ActionApprove        Action = "APPROVE"
	ActionRequestChanges Action = "REQUEST_CHANGES"
)

func (a Action) Valid() bool {
	return a == ActionApprove || a == ActionRequestChanges
}

// PerformedByClient marks decisions submitted through the client portal.
const PerformedByClient = "CLIENT"

// State is derived from a deliverable's approvals; it is never stored.
type State string

const (
	StatePending          State = "PENDING"
	StateApproved         State = "APPROVED"
	StateChangesRequested State = "CHANGES_REQUESTED"
)

// Deliverable is one versioned work-product submission. Its version sequence
// is independent of the project's scope versions.
type Deliverable struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Version   int
	FileURL   string
	Notes     *string
	CreatedAt time.Time
	Approvals []Approval // oldest first
}

// State derives the review state from the audit log.
func (d *Deliverable) State() State {
	return StateOf(d.Approvals)
}

// Approval is an immutable audit entry for one client decision.
type Approval struct {
	ID            uuid.UUID
	DeliverableID uuid.UUID
	Action        Action
	Comments      *string
	PerformedBy   string
	IPAddress     string
	UserAgent     string
	CreatedAt     time.Time
}

// StateOf returns APPROVED once any APPROVE entry exists, whatever follows it.
func StateOf(approvals []Approval) State {
	state := StatePending

	for _, a := range approvals {
		switch a.Action {
		case ActionApprove:
			return StateApproved
		case ActionRequestChanges:
			state = StateChangesRequested
		}
	}

	return state
}
