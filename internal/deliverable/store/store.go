package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/MrJamesThe3rd/signoff/internal/apperr"
	"github.com/MrJamesThe3rd/signoff/internal/database"
	"github.com/MrJamesThe3rd/signoff/internal/deliverable"
	"github.com/MrJamesThe3rd/signoff/internal/version"
)

type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

type deliverableRow struct {
	ID        uuid.UUID      `db:"id"`
	ProjectID uuid.UUID      `db:"project_id"`
	Version   int            `db:"version"`
	FileURL   string         `db:"file_url"`
	Notes     sql.NullString `db:"notes"`
	CreatedAt time.Time      `db:"created_at"`
}

func (r deliverableRow) toDeliverable() *deliverable.Deliverable {
	d := &deliverable.Deliverable{
		ID:        r.ID,
		ProjectID: r.ProjectID,
		Version:   r.Version,
		FileURL:   r.FileURL,
		CreatedAt: r.CreatedAt,
		Approvals: []deliverable.Approval{},
	}

	if r.Notes.Valid {
		d.Notes = &r.Notes.String
	}

	return d
}

type approvalRow struct {
	ID            uuid.UUID      `db:"id"`
	DeliverableID uuid.UUID      `db:"deliverable_id"`
	Action        string         `db:"action"`
	Comments      sql.NullString `db:"comments"`
	PerformedBy   string         `db:"performed_by"`
	IPAddress     string         `db:"ip_address"`
	UserAgent     string         `db:"user_agent"`
	CreatedAt     time.Time      `db:"created_at"`
}

func (r approvalRow) toApproval() deliverable.Approval {
	a := deliverable.Approval{
		ID:            r.ID,
		DeliverableID: r.DeliverableID,
		Action:        deliverable.Action(r.Action),
		PerformedBy:   r.PerformedBy,
		IPAddress:     r.IPAddress,
		UserAgent:     r.UserAgent,
		CreatedAt:     r.CreatedAt,
	}

	if r.Comments.Valid {
		a.Comments = &r.Comments.String
	}

	return a
}

const (
	selectDeliverableColumns = `id, project_id, version, file_url, notes, created_at`
	selectApprovalColumns    = `id, deliverable_id, action, comments, performed_by, ip_address, user_agent, created_at`
)

func (s *Store) CreateDeliverable(ctx context.Context, d *deliverable.Deliverable) error {
	return database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		next, err := version.Next(ctx, tx, d.ProjectID, version.KindDeliverable)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO deliverables (project_id, version, file_url, notes, created_at)
			VALUES ($1, $2, $3, $4, NOW())
			RETURNING id, version, created_at
		`

		err = tx.QueryRowxContext(ctx, query, d.ProjectID, next, d.FileURL, d.Notes).
			Scan(&d.ID, &d.Version, &d.CreatedAt)
		if err != nil {
			switch {
			case database.IsForeignKeyViolation(err):
				return apperr.NotFound("project not found")
			case database.IsUniqueViolation(err, "deliverables_project_version_key"):
				return apperr.Conflict("deliverable version was assigned concurrently; retry")
			}

			return fmt.Errorf("creating deliverable: %w", err)
		}

		if d.Approvals == nil {
			d.Approvals = []deliverable.Approval{}
		}

		return nil
	})
}

func (s *Store) GetDeliverable(ctx context.Context, projectID, id uuid.UUID) (*deliverable.Deliverable, error) {
	var row deliverableRow

	query := `SELECT ` + selectDeliverableColumns + ` FROM deliverables WHERE id = $1 AND project_id = $2`
	if err := s.db.GetContext(ctx, &row, query, id, projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, deliverable.ErrNotFound
		}

		return nil, fmt.Errorf("getting deliverable: %w", err)
	}

	d := row.toDeliverable()
	if err := s.attachApprovals(ctx, []*deliverable.Deliverable{d}); err != nil {
		return nil, err
	}

	return d, nil
}

func (s *Store) ListDeliverables(ctx context.Context, projectID uuid.UUID) ([]*deliverable.Deliverable, error) {
	var rows []deliverableRow

	query := `SELECT ` + selectDeliverableColumns + ` FROM deliverables WHERE project_id = $1 ORDER BY version DESC`
	if err := s.db.SelectContext(ctx, &rows, query, projectID); err != nil {
		return nil, fmt.Errorf("listing deliverables: %w", err)
	}

	deliverables := make([]*deliverable.Deliverable, len(rows))
	for i, r := range rows {
		deliverables[i] = r.toDeliverable()
	}

	if err := s.attachApprovals(ctx, deliverables); err != nil {
		return nil, err
	}

	return deliverables, nil
}

// attachApprovals loads the audit entries of all given deliverables in one
// query, oldest first.
func (s *Store) attachApprovals(ctx context.Context, deliverables []*deliverable.Deliverable) error {
	if len(deliverables) == 0 {
		return nil
	}

	ids := make([]string, len(deliverables))
	byID := make(map[uuid.UUID]*deliverable.Deliverable, len(deliverables))

	for i, d := range deliverables {
		ids[i] = d.ID.String()
		byID[d.ID] = d
	}

	var rows []approvalRow

	query := `SELECT ` + selectApprovalColumns + `
		FROM approval_audit_logs
		WHERE deliverable_id = ANY($1::uuid[])
		ORDER BY seq ASC`
	if err := s.db.SelectContext(ctx, &rows, query, ids); err != nil {
		return fmt.Errorf("listing approvals: %w", err)
	}

	for _, r := range rows {
		d, ok := byID[r.DeliverableID]
		if !ok {
			continue
		}

		d.Approvals = append(d.Approvals, r.toApproval())
	}

	return nil
}

// InsertApproval appends an audit entry through q, which is normally the
// transaction that also mints the invoice.
func InsertApproval(ctx context.Context, q sqlx.QueryerContext, a *deliverable.Approval) error {
	query := `
		INSERT INTO approval_audit_logs (deliverable_id, action, comments, performed_by, ip_address, user_agent, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, created_at
	`

	err := q.QueryRowxContext(ctx, query,
		a.DeliverableID,
		a.Action,
		a.Comments,
		a.PerformedBy,
		a.IPAddress,
		a.UserAgent,
	).Scan(&a.ID, &a.CreatedAt)
	if err != nil {
		return fmt.Errorf("inserting approval: %w", err)
	}

	return nil
}
