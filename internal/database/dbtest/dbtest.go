// Package dbtest connects integration tests to a disposable Postgres database.
//
// Tests are skipped unless SIGNOFF_TEST_DATABASE_URL is set, e.g.
//
//	SIGNOFF_TEST_DATABASE_URL=postgres://postgres@localhost:5432/signoff_test?sslmode=disable
package dbtest

import (
	"context"
	"os"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/MrJamesThe3rd/signoff/internal/database"
)

const (
	envURL = "SIGNOFF_TEST_DATABASE_URL"

	// packageLockKey serializes test packages sharing the database, since
	// `go test ./...` runs them in parallel processes.
	packageLockKey = 0x5160ff
)

// Open returns a migrated database with every table emptied. The tables are
// truncated again when the test finishes.
func Open(t *testing.T) *sqlx.DB {
	t.Helper()

	url := os.Getenv(envURL)
	if url == "" {
		t.Skipf("%s not set; skipping Postgres integration test", envURL)
	}

	db, err := database.New(url)
	require.NoError(t, err)

	ctx := context.Background()

	lockConn, err := db.Connx(ctx)
	require.NoError(t, err)

	_, err = lockConn.ExecContext(ctx, `SELECT pg_advisory_lock($1)`, packageLockKey)
	require.NoError(t, err)

	require.NoError(t, database.Migrate(db))
	truncate(t, db)

	t.Cleanup(func() {
		truncate(t, db)

		_, _ = lockConn.ExecContext(ctx, `SELECT pg_advisory_unlock($1)`, packageLockKey)
		lockConn.Close()
		db.Close()
	})

	return db
}

func truncate(t *testing.T, db *sqlx.DB) {
	t.Helper()

	_, err := db.Exec(`TRUNCATE invoices, approval_audit_logs, deliverables, scopes, projects CASCADE`)
	require.NoError(t, err)
}
