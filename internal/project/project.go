package project

import (
	"time"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
)

// Status represents the lifecycle state of a project.
type Status string

const (
	StatusActive    Status = "ACTIVE"
	StatusCompleted Status = "COMPLETED"
	StatusArchived  Status = "ARCHIVED"
)

var ErrNotFound = apperr.NotFound("project not found")

// transitions lists the statuses each status may move to. Nothing moves back
// to ACTIVE.
var transitions = map[Status][]Status{
	StatusActive:    {StatusCompleted, StatusArchived},
	StatusCompleted: {StatusArchived},
	StatusArchived:  {},
}

func (s Status) Valid() bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether a project may move from s to next.
// Staying in the same status is always allowed.
func (s Status) CanTransition(next Status) bool {
	if s == next {
		return true
	}

	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}

	return false
}

// Project is a client engagement owned by one agency user.
type Project struct {
	ID          uuid.UUID
	OwnerID     uuid.UUID
	Name        string
	ClientEmail *string
	Status      Status
	AccessToken string // bearer secret for the client portal; never log it
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
