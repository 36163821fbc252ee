package testutil

import (
	"context"
	"errors"
	"sync"
)

// ErrInjected is returned by FailingStore for injected failures.
var ErrInjected = errors.New("injected storage failure")

// FailingStore is an in-memory key-value store whose reads and writes can be
// made to fail, simulating disabled storage or an exceeded quota.
type FailingStore struct {
	mu        sync.Mutex
	values    map[string]string
	FailGet   bool
	FailSet   bool
	SetCalls  int
	LastValue string
}

// NewFailingStore returns a store that fails the selected operations.
func NewFailingStore(failGet, failSet bool) *FailingStore {
	return &FailingStore{values: make(map[string]string), FailGet: failGet, FailSet: failSet}
}

func (s *FailingStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.FailGet {
		return "", false, ErrInjected
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *FailingStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.SetCalls++
	if s.FailSet {
		return ErrInjected
	}
	s.values[key] = value
	s.LastValue = value
	return nil
}
