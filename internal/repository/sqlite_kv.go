package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/pathfinder/internal/db"
)

// SQLiteKVStore implements KVStore on the kv_entries table.
type SQLiteKVStore struct {
	db db.DBTX
}

// NewSQLiteKVStore creates a store over conn, which may be a *sql.DB or a
// transaction handed out by a UnitOfWork.
func NewSQLiteKVStore(conn db.DBTX) *SQLiteKVStore {
	return &SQLiteKVStore{db: conn}
}

func (s *SQLiteKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_entries WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("reading key %q: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLiteKVStore) Set(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO kv_entries (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value, nowUTC())
	if err != nil {
		return fmt.Errorf("writing key %q: %w", key, err)
	}
	return nil
}

// ListByPrefix returns every entry whose key starts with prefix, ordered by key.
func (s *SQLiteKVStore) ListByPrefix(ctx context.Context, prefix string) ([]KVEntry, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT key, value, updated_at FROM kv_entries
		WHERE substr(key, 1, length(?1)) = ?1 ORDER BY key`, prefix)
	if err != nil {
		return nil, fmt.Errorf("listing keys with prefix %q: %w", prefix, err)
	}
	defer rows.Close()

	var entries []KVEntry
	for rows.Next() {
		var e KVEntry
		var updated string
		if err := rows.Scan(&e.Key, &e.Value, &updated); err != nil {
			return nil, fmt.Errorf("scanning kv entry: %w", err)
		}
		e.UpdatedAt = parseTimestamp(updated)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
