package tracker

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pathfinder/internal/domain"
)

// Store is the key-value capability the tracker persists snapshots to.
// Get reports found=false when the key has never been written.
type Store interface {
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}

// LoadOutcome describes how Load arrived at its state.
type LoadOutcome string

const (
	LoadRestored           LoadOutcome = "restored"
	LoadEmpty              LoadOutcome = "empty"
	LoadStorageUnavailable LoadOutcome = "storage_unavailable"
	LoadMalformed          LoadOutcome = "malformed"
)

// Load reads the snapshot for roadmapID. It never fails: a missing entry,
// a storage error or a malformed value all yield an empty state, with the
// outcome recording which case occurred.
func Load(ctx context.Context, store Store, roadmapID string) (domain.CompletionState, LoadOutcome) {
	raw, found, err := store.Get(ctx, StorageKey(roadmapID))
	if err != nil {
		return domain.CompletionState{}, LoadStorageUnavailable
	}
	if !found {
		return domain.CompletionState{}, LoadEmpty
	}
	snap := DecodeSnapshot(raw)
	if snap.Status != SnapshotOK {
		return domain.CompletionState{}, LoadMalformed
	}
	return snap.State, LoadRestored
}

// Save writes the full state for roadmapID, overwriting any previous value.
// The returned error wraps ErrStorageUnavailable; callers treat it as non-fatal.
func Save(ctx context.Context, store Store, roadmapID string, state domain.CompletionState) error {
	raw, err := EncodeSnapshot(state)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrStorageUnavailable, err)
	}
	if err := store.Set(ctx, StorageKey(roadmapID), raw); err != nil {
		return fmt.Errorf("%w: saving %s: %v", ErrStorageUnavailable, roadmapID, err)
	}
	return nil
}
