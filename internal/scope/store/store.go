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
	"github.com/MrJamesThe3rd/signoff/internal/scope"
	"github.com/MrJamesThe3rd/signoff/internal/version"
)

type Store struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Store {
	return &Store{db: db}
}

type scopeRow struct {
	ID        uuid.UUID `db:"id"`
	ProjectID uuid.UUID `db:"project_id"`
	Version   int       `db:"version"`
	Content   string    `db:"content"`
	Price     int64     `db:"price"`
	Locked    bool      `db:"locked"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r scopeRow) toScope() *scope.Scope {
	return &scope.Scope{
		ID:        r.ID,
		ProjectID: r.ProjectID,
		Version:   r.Version,
		Content:   r.Content,
		Price:     r.Price,
		Locked:    r.Locked,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

const selectScopeColumns = `id, project_id, version, content, price, locked, created_at, updated_at`

func (s *Store) CreateScope(ctx context.Context, sc *scope.Scope) error {
	return database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		next, err := version.Next(ctx, tx, sc.ProjectID, version.KindScope)
		if err != nil {
			return err
		}

		query := `
			INSERT INTO scopes (project_id, version, content, price, locked, created_at, updated_at)
			VALUES ($1, $2, $3, $4, FALSE, NOW(), NOW())
			RETURNING id, version, locked, created_at, updated_at
		`

		err = tx.QueryRowxContext(ctx, query, sc.ProjectID, next, sc.Content, sc.Price).
			Scan(&sc.ID, &sc.Version, &sc.Locked, &sc.CreatedAt, &sc.UpdatedAt)
		if err != nil {
			switch {
			case database.IsForeignKeyViolation(err):
				return apperr.NotFound("project not found")
			case database.IsUniqueViolation(err, "scopes_project_version_key"):
				return apperr.Conflict("scope version was assigned concurrently; retry")
			}

			return fmt.Errorf("creating scope: %w", err)
		}

		return nil
	})
}

func (s *Store) LockScope(ctx context.Context, projectID, scopeID uuid.UUID) (*scope.Scope, error) {
	query := `
		UPDATE scopes
		SET locked = TRUE,
			updated_at = CASE WHEN locked THEN updated_at ELSE NOW() END
		WHERE id = $1 AND project_id = $2
		RETURNING ` + selectScopeColumns

	var row scopeRow
	if err := s.db.GetContext(ctx, &row, query, scopeID, projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, scope.ErrNotFound
		}

		return nil, fmt.Errorf("locking scope: %w", err)
	}

	return row.toScope(), nil
}

// ReviseScope overwrites content and price of an unlocked scope. The row is
// locked for the check so a concurrent LockScope cannot slip in between.
func (s *Store) ReviseScope(ctx context.Context, sc *scope.Scope) error {
	return database.WithTx(ctx, s.db, func(tx *sqlx.Tx) error {
		var locked bool

		err := tx.GetContext(ctx, &locked,
			`SELECT locked FROM scopes WHERE id = $1 AND project_id = $2 FOR UPDATE`,
			sc.ID, sc.ProjectID)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return scope.ErrNotFound
			}

			return fmt.Errorf("reading scope: %w", err)
		}

		if locked {
			return scope.ErrLocked
		}

		query := `
			UPDATE scopes
			SET content = $1, price = $2, updated_at = NOW()
			WHERE id = $3
			RETURNING version, locked, created_at, updated_at
		`

		err = tx.QueryRowxContext(ctx, query, sc.Content, sc.Price, sc.ID).
			Scan(&sc.Version, &sc.Locked, &sc.CreatedAt, &sc.UpdatedAt)
		if err != nil {
			return fmt.Errorf("revising scope: %w", err)
		}

		return nil
	})
}

func (s *Store) LatestScope(ctx context.Context, projectID uuid.UUID) (*scope.Scope, error) {
	return Latest(ctx, s.db, projectID)
}

// Latest reads the highest-version scope of a project through q, which may be
// a transaction. It returns nil, nil when the project has no scopes.
func Latest(ctx context.Context, q sqlx.QueryerContext, projectID uuid.UUID) (*scope.Scope, error) {
	query := `SELECT ` + selectScopeColumns + `
		FROM scopes
		WHERE project_id = $1
		ORDER BY version DESC
		LIMIT 1`

	var row scopeRow
	if err := sqlx.GetContext(ctx, q, &row, query, projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, fmt.Errorf("getting latest scope: %w", err)
	}

	return row.toScope(), nil
}

func (s *Store) ListScopes(ctx context.Context, projectID uuid.UUID) ([]*scope.Scope, error) {
	var rows []scopeRow

	query := `SELECT ` + selectScopeColumns + ` FROM scopes WHERE project_id = $1 ORDER BY version DESC`
	if err := s.db.SelectContext(ctx, &rows, query, projectID); err != nil {
		return nil, fmt.Errorf("listing scopes: %w", err)
	}

	scopes := make([]*scope.Scope, len(rows))
	for i, r := range rows {
		scopes[i] = r.toScope()
	}

	return scopes, nil
}
