package invoice

import (
	"context"

	"github.com/google/uuid"
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=invoice
type Repository interface {
	ListInvoices(ctx context.Context, projectID uuid.UUID) ([]*Invoice, error)
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List returns the project's invoices, newest first.
func (s *Service) List(ctx context.Context, projectID uuid.UUID) ([]*Invoice, error) {
	invoices, err := s.repo.ListInvoices(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if invoices == nil {
		invoices = []*Invoice{}
	}

	return invoices, nil
}
