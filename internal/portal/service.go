package portal

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
	"github.com/MrJamesThe3rd/signoff/internal/deliverable"
	"github.com/MrJamesThe3rd/signoff/internal/project"
	"github.com/MrJamesThe3rd/signoff/internal/scope"
)

// ErrNotFound covers every token that does not open a project: unknown,
// malformed or empty.
var ErrNotFound = apperr.NotFound("project not found")

//go:generate mockgen -source=service.go -destination=service_mock.go -package=portal
type ProjectFinder interface {
	ByToken(ctx context.Context, token string) (*project.Project, error)
}

type ScopeLister interface {
	List(ctx context.Context, projectID uuid.UUID) ([]*scope.Scope, error)
}

type DeliverableLister interface {
	List(ctx context.Context, projectID uuid.UUID) ([]*deliverable.Deliverable, error)
}

type Service struct {
	projects     ProjectFinder
	scopes       ScopeLister
	deliverables DeliverableLister
}

func NewService(projects ProjectFinder, scopes ScopeLister, deliverables DeliverableLister) *Service {
	return &Service{projects: projects, scopes: scopes, deliverables: deliverables}
}

// View is what a client sees through their access link.
type View struct {
	Project      *project.Project
	Scopes       []*scope.Scope
	Deliverables []*deliverable.Deliverable
}

func (s *Service) Resolve(ctx context.Context, token string) (*View, error) {
	p, err := s.projects.ByToken(ctx, token)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			slog.Info("client access denied", "token", project.Fingerprint(token))
			return nil, ErrNotFound
		}

		return nil, fmt.Errorf("finding project by token: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(token), []byte(p.AccessToken)) != 1 {
		return nil, ErrNotFound
	}

	scopes, err := s.scopes.List(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("listing scopes: %w", err)
	}

	deliverables, err := s.deliverables.List(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("listing deliverables: %w", err)
	}

	return &View{Project: p, Scopes: scopes, Deliverables: deliverables}, nil
}
