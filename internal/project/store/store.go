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
	"github.com/MrJamesThe3rd/signoff/internal/project"
)

type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

type projectRow struct {
	ID          uuid.UUID      `db:"id"`
	OwnerID     uuid.UUID      `db:"owner_id"`
	Name        string         `db:"name"`
	ClientEmail sql.NullString `db:"client_email"`
	Status      string         `db:"status"`
	AccessToken string         `db:"access_token"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (r projectRow) toProject() *project.Project {
	p := &project.Project{
		ID:          r.ID,
		OwnerID:     r.OwnerID,
		Name:        r.Name,
		Status:      project.Status(r.Status),
		AccessToken: r.AccessToken,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}

	if r.ClientEmail.Valid {
		p.ClientEmail = &r.ClientEmail.String
	}

	return p
}

const selectProjectColumns = `id, owner_id, name, client_email, status, access_token, created_at, updated_at`

func (s *Store) CreateProject(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (owner_id, name, client_email, status, access_token, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`

	err := s.db.QueryRowxContext(ctx, query,
		p.OwnerID,
		p.Name,
		p.ClientEmail,
		p.Status,
		p.AccessToken,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if database.IsUniqueViolation(err, "projects_access_token_key") {
			return apperr.Conflict("access token already in use")
		}

		return fmt.Errorf("creating project: %w", err)
	}

	return nil
}

func (s *Store) GetProject(ctx context.Context, id uuid.UUID) (*project.Project, error) {
	var row projectRow

	query := `SELECT ` + selectProjectColumns + ` FROM projects WHERE id = $1`
	if err := s.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, project.ErrNotFound
		}

		return nil, fmt.Errorf("getting project: %w", err)
	}

	return row.toProject(), nil
}

func (s *Store) GetProjectByToken(ctx context.Context, token string) (*project.Project, error) {
	var row projectRow

	query := `SELECT ` + selectProjectColumns + ` FROM projects WHERE access_token = $1`
	if err := s.db.GetContext(ctx, &row, query, token); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, project.ErrNotFound
		}

		return nil, fmt.Errorf("getting project by token: %w", err)
	}

	return row.toProject(), nil
}

func (s *Store) ListProjects(ctx context.Context, ownerID uuid.UUID) ([]*project.Project, error) {
	var rows []projectRow

	query := `SELECT ` + selectProjectColumns + ` FROM projects WHERE owner_id = $1 ORDER BY updated_at DESC`
	if err := s.db.SelectContext(ctx, &rows, query, ownerID); err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}

	projects := make([]*project.Project, len(rows))
	for i, r := range rows {
		projects[i] = r.toProject()
	}

	return projects, nil
}

// UpdateStatus only applies when the stored status still equals from, so two
// concurrent transitions cannot both succeed.
func (s *Store) UpdateStatus(ctx context.Context, id uuid.UUID, from, to project.Status) error {
	query := `
		UPDATE projects
		SET status = $1, updated_at = NOW()
		WHERE id = $2 AND status = $3
	`

	res, err := s.db.ExecContext(ctx, query, to, id, from)
	if err != nil {
		return fmt.Errorf("updating project status: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating project status: %w", err)
	}

	if n == 0 {
		return apperr.Conflict("project status changed concurrently")
	}

	return nil
}
