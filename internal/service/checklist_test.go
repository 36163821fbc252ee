package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/pathfinder/internal/domain"
	"github.com/alexanderramin/pathfinder/internal/repository"
	"github.com/alexanderramin/pathfinder/internal/testutil"
	"github.com/alexanderramin/pathfinder/internal/tracker"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func key(p, g, i int) domain.ItemKey { return domain.ItemKey{Phase: p, Group: g, Item: i} }

func TestChecklist_OpenRestoresSavedState(t *testing.T) {
	ctx := context.Background()
	store := repository.NewSQLiteKVStore(testutil.NewTestDB(t))
	svc := NewProgressService(store)
	roadmap := testutil.TwoPhaseRoadmap()

	require.True(t, svc.Save(ctx, roadmap.ID, domain.CompletionState{"0.0.0": true, "0.0.1": true, "1.0.0": true}))

	c := svc.Open(ctx, roadmap)
	assert.Equal(t, tracker.LoadRestored, c.LoadOutcome())
	assert.True(t, c.Persisted())
	assert.Len(t, c.Keys(), 5)
	assert.Equal(t, 60, c.Percent())
	assert.Equal(t, tracker.Progress{Done: 2, Total: 3}, c.Phase(0))
	assert.Equal(t, 67, c.Phase(0).Percent())
	assert.Equal(t, 50, c.Phase(1).Percent())
}

func TestChecklist_TogglePersistsImmediately(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryKVStore()
	svc := NewProgressService(store)
	roadmap := testutil.TwoPhaseRoadmap()

	c := svc.Open(ctx, roadmap)
	assert.Equal(t, tracker.LoadEmpty, c.LoadOutcome())

	prev := c.Toggle(ctx, key(1, 0, 1))
	assert.Empty(t, prev)
	assert.True(t, c.IsDone(key(1, 0, 1)))
	assert.True(t, c.Persisted())

	// A fresh checklist over the same store sees the toggle.
	reopened := svc.Open(ctx, roadmap)
	assert.True(t, reopened.IsDone(key(1, 0, 1)))
	assert.Equal(t, 20, reopened.Percent())
}

func TestChecklist_ToggleTwiceRestoresState(t *testing.T) {
	ctx := context.Background()
	svc := NewProgressService(repository.NewMemoryKVStore())
	c := svc.Open(ctx, testutil.TwoPhaseRoadmap())
	c.Set(ctx, key(0, 0, 0), true)

	before := c.State()
	c.Toggle(ctx, key(0, 0, 2))
	c.Toggle(ctx, key(0, 0, 2))

	// Toggling off leaves an explicit false entry; done-ness is what must match.
	for _, k := range c.Keys() {
		assert.Equal(t, before.IsDone(k.String()), c.IsDone(k), k.String())
	}
}

func TestChecklist_RestoreUndoesToggle(t *testing.T) {
	ctx := context.Background()
	svc := NewProgressService(repository.NewMemoryKVStore())
	roadmap := testutil.TwoPhaseRoadmap()
	c := svc.Open(ctx, roadmap)

	prev := c.Toggle(ctx, key(0, 0, 1))
	c.Restore(ctx, prev)

	if diff := cmp.Diff(domain.CompletionState{}, svc.Load(ctx, roadmap.ID)); diff != "" {
		t.Fatalf("stored state after undo (-want +got):\n%s", diff)
	}
}

func TestChecklist_StateIsACopy(t *testing.T) {
	ctx := context.Background()
	svc := NewProgressService(repository.NewMemoryKVStore())
	c := svc.Open(ctx, testutil.TwoPhaseRoadmap())

	s := c.State()
	s["0.0.0"] = true
	assert.False(t, c.IsDone(key(0, 0, 0)))
}

func TestChecklist_SaveFailureKeepsInMemoryState(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewFailingStore(false, true)
	c := NewProgressService(store).Open(ctx, testutil.TwoPhaseRoadmap())
	assert.True(t, c.Persisted())

	c.Toggle(ctx, key(0, 0, 0))
	assert.True(t, c.IsDone(key(0, 0, 0)))
	assert.False(t, c.Persisted())
	assert.Equal(t, 20, c.Percent())

	store.FailSet = false
	c.Toggle(ctx, key(0, 0, 1))
	assert.True(t, c.Persisted())
	assert.Equal(t, `{"0.0.0":true,"0.0.1":true}`, store.LastValue)
}

func TestChecklist_UnavailableStorageOpensEmpty(t *testing.T) {
	ctx := context.Background()
	c := NewProgressService(testutil.NewFailingStore(true, true)).Open(ctx, testutil.TwoPhaseRoadmap())

	assert.Equal(t, tracker.LoadStorageUnavailable, c.LoadOutcome())
	assert.False(t, c.Persisted())
	assert.Equal(t, 0, c.Percent())
	assert.False(t, c.Overall().InProgress())
}

func TestChecklist_NextAndCompletion(t *testing.T) {
	ctx := context.Background()
	svc := NewProgressService(repository.NewMemoryKVStore())
	c := svc.Open(ctx, testutil.TwoPhaseRoadmap())

	next, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, key(0, 0, 0), next)

	for _, k := range c.Keys() {
		c.Set(ctx, k, true)
	}
	_, ok = c.Next()
	assert.False(t, ok)
	assert.True(t, c.Overall().Complete())
	assert.Equal(t, 100, c.Percent())
}

func TestChecklist_EmptyPhaseReportsZero(t *testing.T) {
	ctx := context.Background()
	roadmap := testutil.NewTestRoadmap("sparse",
		testutil.WithPhase("Intro", 0),
		testutil.WithPhase("Core", 4),
	)
	c := NewProgressService(repository.NewMemoryKVStore()).Open(ctx, roadmap)
	c.Set(ctx, key(1, 0, 0), true)
	c.Set(ctx, key(1, 0, 1), true)

	assert.Equal(t, 0, c.Phase(0).Percent())
	assert.False(t, c.Phase(0).Complete())
	assert.Equal(t, 50, c.Phase(1).Percent())
	assert.Equal(t, 50, c.Percent())
	assert.Equal(t, tracker.Progress{}, c.Phase(7))
}
