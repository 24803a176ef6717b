// Package version assigns per-project version numbers to document series.
//
// Scopes and deliverables are numbered independently: each (project, kind)
// pair has its own sequence starting at 1. Next must run inside the
// transaction that inserts the new row, so the series lock it takes is held
// until that row is committed.
package version

import (
	"context"
	"fmt"
	"hash/fnv"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// Kind identifies a versioned document series.
type Kind string

const (
	KindScope       Kind = "scope"
	KindDeliverable Kind = "deliverable"
)

func (k Kind) table() (string, error) {
	switch k {
	case KindScope:
		return "scopes", nil
	case KindDeliverable:
		return "deliverables", nil
	default:
		return "", fmt.Errorf("unknown version kind %q", k)
	}
}

// Next locks the (projectID, kind) series for the rest of tx and returns the
// next version number: the current maximum plus one, or 1 for an empty series.
func Next(ctx context.Context, tx *sqlx.Tx, projectID uuid.UUID, kind Kind) (int, error) {
	table, err := kind.table()
	if err != nil {
		return 0, err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_advisory_xact_lock($1)", LockKey(projectID, kind)); err != nil {
		return 0, fmt.Errorf("acquiring %s version lock: %w", kind, err)
	}

	var next int

	query := `SELECT COALESCE(MAX(version), 0) + 1 FROM ` + table + ` WHERE project_id = $1`
	if err := tx.GetContext(ctx, &next, query, projectID); err != nil {
		return 0, fmt.Errorf("reading current %s version: %w", kind, err)
	}

	return next, nil
}

// LockKey derives the advisory lock key for a series.
func LockKey(projectID uuid.UUID, kind Kind) int64 {
	h := fnv.New64a()
	h.Write(projectID[:])
	h.Write([]byte{0})
	h.Write([]byte(kind))

	return int64(h.Sum64())
}
