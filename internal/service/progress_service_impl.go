package service

import (
	"context"

	"github.com/alexanderramin/pathfinder/internal/domain"
	"github.com/alexanderramin/pathfinder/internal/tracker"
)

type progressService struct {
	store    tracker.Store
	observer UseCaseObserver
}

func NewProgressService(store tracker.Store, observers ...UseCaseObserver) ProgressService {
	return &progressService{
		store:    store,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *progressService) Load(ctx context.Context, roadmapID string) domain.CompletionState {
	state, _ := s.load(ctx, roadmapID)
	return state
}

func (s *progressService) load(ctx context.Context, roadmapID string) (domain.CompletionState, tracker.LoadOutcome) {
	fields := map[string]any{"roadmap_id": roadmapID}
	done := startUseCase(ctx, s.observer, UseCaseLoadProgress, fields)

	state, outcome := tracker.Load(ctx, s.store, roadmapID)
	fields["outcome"] = string(outcome)
	fields["done_count"] = state.DoneCount()

	// Degraded loads are reported, never returned.
	var err error
	switch outcome {
	case tracker.LoadStorageUnavailable:
		err = tracker.ErrStorageUnavailable
	case tracker.LoadMalformed:
		err = tracker.ErrMalformedSnapshot
	}
	done(err)
	return state, outcome
}

func (s *progressService) Save(ctx context.Context, roadmapID string, state domain.CompletionState) bool {
	done := startUseCase(ctx, s.observer, UseCaseSaveProgress, map[string]any{
		"roadmap_id": roadmapID,
		"done_count": state.DoneCount(),
	})
	err := tracker.Save(ctx, s.store, roadmapID, state)
	done(err)
	return err == nil
}

func (s *progressService) Open(ctx context.Context, roadmap domain.Roadmap) *Checklist {
	state, outcome := s.load(ctx, roadmap.ID)
	return newChecklist(roadmap, state, outcome, s)
}
