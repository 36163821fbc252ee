package repository

import (
	"context"
	"time"
)

// KVEntry is one persisted key with its raw value.
type KVEntry struct {
	Key       string
	Value     string
	UpdatedAt time.Time
}

// KVStore is a string key-value store. Get reports found=false for a key
// that has never been written; Set overwrites unconditionally.
type KVStore interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
	ListByPrefix(ctx context.Context, prefix string) ([]KVEntry, error)
}
