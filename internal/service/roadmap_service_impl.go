package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/pathfinder/internal/catalog"
	"github.com/alexanderramin/pathfinder/internal/domain"
)

type roadmapService struct {
	catalog  *catalog.Catalog
	observer UseCaseObserver
}

func NewRoadmapService(c *catalog.Catalog, observers ...UseCaseObserver) RoadmapService {
	return &roadmapService{
		catalog:  c,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *roadmapService) List(ctx context.Context) ([]domain.RoadmapSummary, error) {
	entries, err := s.catalog.List()
	if err != nil {
		return nil, fmt.Errorf("listing roadmaps: %w", err)
	}

	out := make([]domain.RoadmapSummary, 0, len(entries))
	for _, e := range entries {
		r := e.Def.ToDomain()
		summary := r.Summary()
		summary.Index = e.Index
		summary.Source = e.Source
		out = append(out, summary)
	}
	return out, nil
}

func (s *roadmapService) Get(ctx context.Context, name string) (roadmap *domain.Roadmap, err error) {
	fields := map[string]any{"roadmap": name}
	done := startUseCase(ctx, s.observer, UseCaseGetRoadmap, fields)
	defer func() { done(err) }()

	entry, err := s.catalog.Resolve(name)
	if err != nil {
		return nil, err
	}
	r := entry.Def.ToDomain()
	fields["roadmap_id"] = r.ID
	fields["item_count"] = r.ItemCount()
	return &r, nil
}
