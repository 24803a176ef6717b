package scope

import (
	"context"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/signoff/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=scope
type Repository interface {
	// CreateScope assigns the next scope version for the project and inserts s.
	CreateScope(ctx context.Context, s *Scope) error
	LockScope(ctx context.Context, projectID, scopeID uuid.UUID) (*Scope, error)
	ReviseScope(ctx context.Context, s *Scope) error
	LatestScope(ctx context.Context, projectID uuid.UUID) (*Scope, error)
	ListScopes(ctx context.Context, projectID uuid.UUID) ([]*Scope, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ProjectID uuid.UUID `validate:"required"`
	Content   string    `validate:"required"`
	Price     int64     `validate:"gte=0"`
}

// Create adds a new unlocked version. It never looks at whether earlier
// versions are locked: locking freezes a record, not the series.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Scope, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	sc := &Scope{
		ProjectID: params.ProjectID,
		Content:   params.Content,
		Price:     params.Price,
	}
	if err := s.repo.CreateScope(ctx, sc); err != nil {
		return nil, err
	}

	return sc, nil
}

// Lock marks the scope as final. Locking an already locked scope is a no-op.
func (s *Service) Lock(ctx context.Context, projectID, scopeID uuid.UUID) (*Scope, error) {
	return s.repo.LockScope(ctx, projectID, scopeID)
}

type ReviseParams struct {
	ProjectID uuid.UUID `validate:"required"`
	ScopeID   uuid.UUID `validate:"required"`
	Content   string    `validate:"required"`
	Price     int64     `validate:"gte=0"`
}

// Revise edits an unlocked scope in place. A locked scope returns ErrLocked.
func (s *Service) Revise(ctx context.Context, params ReviseParams) (*Scope, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	sc := &Scope{
		ID:        params.ScopeID,
		ProjectID: params.ProjectID,
		Content:   params.Content,
		Price:     params.Price,
	}
	if err := s.repo.ReviseScope(ctx, sc); err != nil {
		return nil, err
	}

	return sc, nil
}

// Latest returns the highest version for the project regardless of lock
// state, or nil when the project has no scopes.
func (s *Service) Latest(ctx context.Context, projectID uuid.UUID) (*Scope, error) {
	return s.repo.LatestScope(ctx, projectID)
}

// List returns every scope of the project, newest version first.
func (s *Service) List(ctx context.Context, projectID uuid.UUID) ([]*Scope, error) {
	return s.repo.ListScopes(ctx, projectID)
}
