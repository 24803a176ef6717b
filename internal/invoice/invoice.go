package invoice

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusDraft   Status = "DRAFT"
	StatusSent    Status = "SENT"
	StatusPaid    Status = "PAID"
	StatusOverdue Status = "OVERDUE"
)

// Invoice is a billing record for a project. Invoices minted by an approval
// carry that approval's id; Amount is in cents.
type Invoice struct {
	ID         uuid.UUID
	ProjectID  uuid.UUID
	ApprovalID *uuid.UUID
	Amount     int64
	Status     Status
	CreatedAt  time.Time
}
