package testutil

import (
	"context"
	"database/sql"

	"github.com/alexanderramin/pathfinder/internal/db"
)

// FailOnNthExecUoW runs callbacks in a real SQLite transaction but makes the
// FailOn-th write (counting from 1) return Err. Reads are never counted.
// Transfer tests use it to prove a half-applied import is rolled back.
type FailOnNthExecUoW struct {
	DB     *sql.DB
	FailOn int
	Err    error
}

func (u *FailOnNthExecUoW) WithinTx(ctx context.Context, fn func(ctx context.Context, tx db.DBTX) error) error {
	return db.NewSQLiteUnitOfWork(u.DB).WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return fn(ctx, &countingTx{DBTX: tx, failOn: u.FailOn, err: u.Err})
	})
}

// countingTx is not safe for concurrent use; callbacks run on one goroutine.
type countingTx struct {
	db.DBTX
	writes int
	failOn int
	err    error
}

func (c *countingTx) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	c.writes++
	if c.writes == c.failOn {
		return nil, c.err
	}
	return c.DBTX.ExecContext(ctx, query, args...)
}
