package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/MrJamesThe3rd/signoff/internal/approval"
	"github.com/MrJamesThe3rd/signoff/internal/deliverable"
	deliverableStore "github.com/MrJamesThe3rd/signoff/internal/deliverable/store"
	"github.com/MrJamesThe3rd/signoff/internal/invoice"
	invoiceStore "github.com/MrJamesThe3rd/signoff/internal/invoice/store"
	"github.com/MrJamesThe3rd/signoff/internal/scope"
	scopeStore "github.com/MrJamesThe3rd/signoff/internal/scope/store"
)

type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

type decisionTx struct {
	tx *sqlx.Tx
}

func (s *Store) BeginDecision(ctx context.Context) (approval.DecisionTx, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning decision tx: %w", err)
	}

	return &decisionTx{tx: tx}, nil
}

func (d *decisionTx) Commit() error   { return d.tx.Commit() }
func (d *decisionTx) Rollback() error { return d.tx.Rollback() }

// ResolveDeliverable takes a row lock on the deliverable so that concurrent
// decisions on it are applied one after another.
func (d *decisionTx) ResolveDeliverable(ctx context.Context, id uuid.UUID) (*approval.Target, error) {
	var row struct {
		DeliverableID uuid.UUID `db:"deliverable_id"`
		ProjectID     uuid.UUID `db:"project_id"`
		AccessToken   string    `db:"access_token"`
	}

	query := `
		SELECT d.id AS deliverable_id, d.project_id, p.access_token
		FROM deliverables d
		JOIN projects p ON p.id = d.project_id
		WHERE d.id = $1
		FOR UPDATE OF d
	`
	if err := d.tx.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, deliverable.ErrNotFound
		}

		return nil, fmt.Errorf("resolving deliverable: %w", err)
	}

	return &approval.Target{
		DeliverableID: row.DeliverableID,
		ProjectID:     row.ProjectID,
		AccessToken:   row.AccessToken,
	}, nil
}

func (d *decisionTx) AppendApproval(ctx context.Context, a *deliverable.Approval) error {
	return deliverableStore.InsertApproval(ctx, d.tx, a)
}

func (d *decisionTx) LatestScope(ctx context.Context, projectID uuid.UUID) (*scope.Scope, error) {
	return scopeStore.Latest(ctx, d.tx, projectID)
}

func (d *decisionTx) CreateInvoice(ctx context.Context, inv *invoice.Invoice) error {
	return invoiceStore.Insert(ctx, d.tx, inv)
}
