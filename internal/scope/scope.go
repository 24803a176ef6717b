package scope

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
)

var (
	ErrNotFound = apperr.NotFound("scope not found")
	ErrLocked   = apperr.Conflict("scope is locked")
)

// Scope is one version of a project's statement of work.
//
// Versions start at 1 per project. Once Locked is set the record's Content
// and Price never change again; revisions go into a new version instead.
type Scope struct {
	ID        uuid.UUID
	ProjectID uuid.UUID
	Version   int
	Content   string
	Price     int64 // Price in cents
	Locked    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
