package repository

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"
)

// MemoryKVStore is a process-local KVStore. Nothing survives the process.
type MemoryKVStore struct {
	mu      sync.RWMutex
	entries map[string]KVEntry
}

func NewMemoryKVStore() *MemoryKVStore {
	return &MemoryKVStore{entries: make(map[string]KVEntry)}
}

func (s *MemoryKVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[key]
	return e.Value, ok, nil
}

func (s *MemoryKVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = KVEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	return nil
}

func (s *MemoryKVStore) ListByPrefix(_ context.Context, prefix string) ([]KVEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []KVEntry
	for k, e := range s.entries {
		if strings.HasPrefix(k, prefix) {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })
	return out, nil
}
