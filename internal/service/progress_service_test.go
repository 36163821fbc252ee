package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/pathfinder/internal/domain"
	"github.com/alexanderramin/pathfinder/internal/repository"
	"github.com/alexanderramin/pathfinder/internal/testutil"
	"github.com/alexanderramin/pathfinder/internal/tracker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressService_SaveThenLoad(t *testing.T) {
	ctx := context.Background()
	database := testutil.NewTestDB(t)
	svc := NewProgressService(repository.NewSQLiteKVStore(database))

	state := domain.CompletionState{"0.0.0": true, "0.0.2": false}
	require.True(t, svc.Save(ctx, "soc-analyst", state))

	got := svc.Load(ctx, "soc-analyst")
	assert.Equal(t, state, got)
	assert.Empty(t, svc.Load(ctx, "cloud-security"))
}

func TestProgressService_LoadDegradesToEmpty(t *testing.T) {
	ctx := context.Background()

	t.Run("storage unavailable", func(t *testing.T) {
		rec := &recordingObserver{}
		svc := NewProgressService(testutil.NewFailingStore(true, false), rec)

		got := svc.Load(ctx, "soc-analyst")
		require.NotNil(t, got)
		assert.Empty(t, got)

		events := rec.named("load-progress")
		require.Len(t, events, 1)
		assert.False(t, events[0].Success)
		assert.ErrorIs(t, events[0].Err, tracker.ErrStorageUnavailable)
		assert.Equal(t, string(tracker.LoadStorageUnavailable), events[0].Fields["outcome"])
	})

	t.Run("malformed snapshot", func(t *testing.T) {
		rec := &recordingObserver{}
		store := repository.NewMemoryKVStore()
		require.NoError(t, store.Set(ctx, tracker.StorageKey("soc-analyst"), "not json"))
		svc := NewProgressService(store, rec)

		got := svc.Load(ctx, "soc-analyst")
		require.NotNil(t, got)
		assert.Empty(t, got)

		events := rec.named("load-progress")
		require.Len(t, events, 1)
		assert.ErrorIs(t, events[0].Err, tracker.ErrMalformedSnapshot)
	})
}

func TestProgressService_SaveFailureIsNotFatal(t *testing.T) {
	rec := &recordingObserver{}
	store := testutil.NewFailingStore(false, true)
	svc := NewProgressService(store, rec)

	ok := svc.Save(context.Background(), "soc-analyst", domain.CompletionState{"0.0.0": true})
	assert.False(t, ok)
	assert.Equal(t, 1, store.SetCalls)

	events := rec.named("save-progress")
	require.Len(t, events, 1)
	assert.ErrorIs(t, events[0].Err, tracker.ErrStorageUnavailable)
}
