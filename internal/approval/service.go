package approval

import (
	"context"
	"crypto/subtle"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
	"github.com/MrJamesThe3rd/signoff/internal/deliverable"
	"github.com/MrJamesThe3rd/signoff/internal/invoice"
	"github.com/MrJamesThe3rd/signoff/internal/project"
	"github.com/MrJamesThe3rd/signoff/internal/scope"
)

var (
	ErrMissingToken = apperr.New(apperr.KindUnauthorized, "client access token is required")
	ErrForbidden    = apperr.New(apperr.KindForbidden, "access denied")
)

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=approval
type Repository interface {
	BeginDecision(ctx context.Context) (DecisionTx, error)
}

// DecisionTx is the unit of work for one client decision. Nothing it writes
// is visible until Commit.
type DecisionTx interface {
	// ResolveDeliverable locks the deliverable row and returns it together
	// with its project's access token. A missing deliverable is
	// deliverable.ErrNotFound.
	ResolveDeliverable(ctx context.Context, id uuid.UUID) (*Target, error)
	AppendApproval(ctx context.Context, a *deliverable.Approval) error
	LatestScope(ctx context.Context, projectID uuid.UUID) (*scope.Scope, error)
	CreateInvoice(ctx context.Context, inv *invoice.Invoice) error
	Commit() error
	Rollback() error
}

type Target struct {
	DeliverableID uuid.UUID
	ProjectID     uuid.UUID
	AccessToken   string
}

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

type SubmitParams struct {
	DeliverableID uuid.UUID
	Token         string
	Action        deliverable.Action
	Comments      *string
	IPAddress     string
	UserAgent     string
}

type Decision struct {
	Approval *deliverable.Approval
	// Invoice is set only for APPROVE.
	Invoice *invoice.Invoice
}

// Submit records a client decision on a deliverable. An APPROVE also mints a
// DRAFT invoice priced from the project's latest scope, in the same
// transaction as the audit entry.
func (s *Service) Submit(ctx context.Context, params SubmitParams) (*Decision, error) {
	if params.Token == "" {
		return nil, ErrMissingToken
	}

	dtx, err := s.repo.BeginDecision(ctx)
	if err != nil {
		return nil, fmt.Errorf("begin decision: %w", err)
	}
	defer dtx.Rollback()

	target, err := dtx.ResolveDeliverable(ctx, params.DeliverableID)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNotFound {
			return nil, ErrForbidden
		}

		return nil, fmt.Errorf("resolve deliverable: %w", err)
	}

	if subtle.ConstantTimeCompare([]byte(params.Token), []byte(target.AccessToken)) != 1 {
		slog.Warn("rejected client decision",
			"deliverable_id", params.DeliverableID,
			"token", project.Fingerprint(params.Token),
		)

		return nil, ErrForbidden
	}

	if !params.Action.Valid() {
		return nil, apperr.Validation(fmt.Sprintf("action must be one of %s, %s", deliverable.ActionApprove, deliverable.ActionRequestChanges))
	}

	a := &deliverable.Approval{
		DeliverableID: target.DeliverableID,
		Action:        params.Action,
		Comments:      params.Comments,
		PerformedBy:   deliverable.PerformedByClient,
		IPAddress:     params.IPAddress,
		UserAgent:     params.UserAgent,
	}
	if err := dtx.AppendApproval(ctx, a); err != nil {
		return nil, fmt.Errorf("append approval: %w", err)
	}

	decision := &Decision{Approval: a}

	if a.Action == deliverable.ActionApprove {
		inv, err := s.mintInvoice(ctx, dtx, target.ProjectID, a.ID)
		if err != nil {
			return nil, err
		}

		decision.Invoice = inv
	}

	if err := dtx.Commit(); err != nil {
		return nil, fmt.Errorf("commit decision: %w", err)
	}

	slog.Info("client decision recorded",
		"deliverable_id", a.DeliverableID,
		"approval_id", a.ID,
		"action", a.Action,
		"token", project.Fingerprint(params.Token),
	)

	return decision, nil
}

func (s *Service) mintInvoice(ctx context.Context, dtx DecisionTx, projectID, approvalID uuid.UUID) (*invoice.Invoice, error) {
	latest, err := dtx.LatestScope(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("latest scope: %w", err)
	}

	var amount int64
	if latest != nil {
		amount = latest.Price
	}

	inv := &invoice.Invoice{
		ProjectID:  projectID,
		ApprovalID: &approvalID,
		Amount:     amount,
		Status:     invoice.StatusDraft,
	}
	if err := dtx.CreateInvoice(ctx, inv); err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}

	return inv, nil
}
