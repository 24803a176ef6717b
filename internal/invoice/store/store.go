package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
	"github.com/MrJamesThe3rd/signoff/internal/database"
	"github.com/MrJamesThe3rd/signoff/internal/invoice"
)

type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

type invoiceRow struct {
	ID         uuid.UUID     `db:"id"`
	ProjectID  uuid.UUID     `db:"project_id"`
	ApprovalID uuid.NullUUID `db:"approval_id"`
	Amount     int64         `db:"amount"`
	Status     string        `db:"status"`
	CreatedAt  time.Time     `db:"created_at"`
}

func (r invoiceRow) toInvoice() *invoice.Invoice {
	inv := &invoice.Invoice{
		ID:        r.ID,
		ProjectID: r.ProjectID,
		Amount:    r.Amount,
		Status:    invoice.Status(r.Status),
		CreatedAt: r.CreatedAt,
	}

	if r.ApprovalID.Valid {
		id := r.ApprovalID.UUID
		inv.ApprovalID = &id
	}

	return inv
}

func (s *Store) ListInvoices(ctx context.Context, projectID uuid.UUID) ([]*invoice.Invoice, error) {
	var rows []invoiceRow

	query := `
		SELECT id, project_id, approval_id, amount, status, created_at
		FROM invoices
		WHERE project_id = $1
		ORDER BY created_at DESC, id DESC
	`
	if err := s.db.SelectContext(ctx, &rows, query, projectID); err != nil {
		return nil, fmt.Errorf("listing invoices: %w", err)
	}

	invoices := make([]*invoice.Invoice, len(rows))
	for i, r := range rows {
		invoices[i] = r.toInvoice()
	}

	return invoices, nil
}

// Insert writes inv through q. A second invoice for the same approval is a
// conflict.
func Insert(ctx context.Context, q sqlx.QueryerContext, inv *invoice.Invoice) error {
	if inv.Status == "" {
		inv.Status = invoice.StatusDraft
	}

	query := `
		INSERT INTO invoices (project_id, approval_id, amount, status, created_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRowxContext(ctx, query, inv.ProjectID, inv.ApprovalID, inv.Amount, inv.Status).
		Scan(&inv.ID, &inv.CreatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "invoices_approval_id_key") {
			return apperr.Conflict("approval already has an invoice")
		}

		return fmt.Errorf("inserting invoice: %w", err)
	}

	return nil
}
