package service

import (
	"context"

	"github.com/alexanderramin/pathfinder/internal/domain"
)

type RoadmapService interface {
	List(ctx context.Context) ([]domain.RoadmapSummary, error)
	Get(ctx context.Context, name string) (*domain.Roadmap, error)
}

// ProgressService loads and persists per-roadmap completion state.
// Neither Load nor Save ever fails the caller: storage problems degrade to an
// empty state on load and to an unsaved (but still correct) state on save.
type ProgressService interface {
	Load(ctx context.Context, roadmapID string) domain.CompletionState
	Save(ctx context.Context, roadmapID string, state domain.CompletionState) bool
	Open(ctx context.Context, roadmap domain.Roadmap) *Checklist
}

type TransferService interface {
	Export(ctx context.Context) (*Bundle, error)
	Import(ctx context.Context, bundle *Bundle) (int, error)
}
