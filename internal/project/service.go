package project

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
	"github.com/MrJamesThe3rd/signoff/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=project
type Repository interface {
	CreateProject(ctx context.Context, p *Project) error
	GetProject(ctx context.Context, id uuid.UUID) (*Project, error)
	GetProjectByToken(ctx context.Context, token string) (*Project, error)
	ListProjects(ctx context.Context, ownerID uuid.UUID) ([]*Project, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to Status) error
}

// tokenAttempts bounds retries when a generated access token collides.
const tokenAttempts = 3

type Service struct {
	repo     Repository
	newToken func() (string, error)
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, newToken: NewAccessToken}
}

type CreateParams struct {
	OwnerID     uuid.UUID `validate:"required"`
	Name        string    `validate:"required,max=200"`
	ClientEmail *string   `validate:"omitempty,email"`
}

// Create stores a new ACTIVE project with a freshly generated access token.
func (s *Service) Create(ctx context.Context, params CreateParams) (*Project, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	for attempt := 1; ; attempt++ {
		token, err := s.newToken()
		if err != nil {
			return nil, fmt.Errorf("generating access token: %w", err)
		}

		p := &Project{
			OwnerID:     params.OwnerID,
			Name:        params.Name,
			ClientEmail: params.ClientEmail,
			Status:      StatusActive,
			AccessToken: token,
		}

		err = s.repo.CreateProject(ctx, p)
		if err == nil {
			return p, nil
		}

		if !errors.Is(err, apperr.ErrConflict) || attempt == tokenAttempts {
			return nil, err
		}
	}
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Project, error) {
	return s.repo.GetProject(ctx, id)
}

// Authorize returns the project if ownerID owns it. A project owned by
// someone else is reported as not found.
func (s *Service) Authorize(ctx context.Context, projectID, ownerID uuid.UUID) (*Project, error) {
	p, err := s.repo.GetProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if p.OwnerID != ownerID {
		return nil, ErrNotFound
	}

	return p, nil
}

func (s *Service) List(ctx context.Context, ownerID uuid.UUID) ([]*Project, error) {
	return s.repo.ListProjects(ctx, ownerID)
}

// ByToken finds the project whose access token equals token exactly.
func (s *Service) ByToken(ctx context.Context, token string) (*Project, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	return s.repo.GetProjectByToken(ctx, token)
}

// UpdateStatus moves a project along its one-way lifecycle.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, status Status) (*Project, error) {
	if !status.Valid() {
		return nil, apperr.Validation(fmt.Sprintf("unknown project status %q", status))
	}

	p, err := s.repo.GetProject(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Status == status {
		return p, nil
	}

	if !p.Status.CanTransition(status) {
		return nil, apperr.Conflict(fmt.Sprintf("project cannot move from %s to %s", p.Status, status))
	}

	if err := s.repo.UpdateStatus(ctx, id, p.Status, status); err != nil {
		return nil, err
	}

	p.Status = status

	return p, nil
}
