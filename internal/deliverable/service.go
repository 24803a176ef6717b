package deliverable

import (
	"context"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/signoff/internal/validation"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=deliverable
type Repository interface {
	// CreateDeliverable assigns the next deliverable version for the project and inserts d.
	CreateDeliverable(ctx context.Context, d *Deliverable) error
	GetDeliverable(ctx context.Context, projectID, id uuid.UUID) (*Deliverable, error)
	ListDeliverables(ctx context.Context, projectID uuid.UUID) ([]*Deliverable, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type CreateParams struct {
	ProjectID uuid.UUID `validate:"required"`
	FileURL   string    `validate:"required,url"`
	Notes     *string
}

func (s *Service) Create(ctx context.Context, params CreateParams) (*Deliverable, error) {
	if err := validation.Struct(params); err != nil {
		return nil, err
	}

	d := &Deliverable{
		ProjectID: params.ProjectID,
		FileURL:   params.FileURL,
		Notes:     params.Notes,
		Approvals: []Approval{},
	}
	if err := s.repo.CreateDeliverable(ctx, d); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Service) Get(ctx context.Context, projectID, id uuid.UUID) (*Deliverable, error) {
	return s.repo.GetDeliverable(ctx, projectID, id)
}

// List returns the project's deliverables newest version first, each with
// its approvals attached.
func (s *Service) List(ctx context.Context, projectID uuid.UUID) ([]*Deliverable, error) {
	return s.repo.ListDeliverables(ctx, projectID)
}
