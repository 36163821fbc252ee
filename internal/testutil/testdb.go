package testutil

import (
	"context"
	"database/sql"
	"testing"

	"github.com/alexanderramin/pathfinder/internal/db"
	"github.com/stretchr/testify/require"
)

// NewTestDB opens a migrated in-memory progress database that is closed
// when the test ends.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { _ = database.Close() })
	return database
}

func NewTestUoW(database *sql.DB) db.UnitOfWork {
	return db.NewSQLiteUnitOfWork(database)
}

// CountKVRows returns how many kv_entries rows have a key starting with prefix.
func CountKVRows(t *testing.T, q db.DBTX, prefix string) int {
	t.Helper()
	var n int
	err := q.QueryRowContext(context.Background(),
		`SELECT COUNT(*) FROM kv_entries WHERE substr(key, 1, length(?)) = ?`, prefix, prefix).Scan(&n)
	require.NoError(t, err)
	return n
}
