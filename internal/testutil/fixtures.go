package testutil

import (
	"fmt"

	"github.com/alexanderramin/pathfinder/internal/domain"
)

// RoadmapOption customizes a roadmap built by NewTestRoadmap.
type RoadmapOption func(*domain.Roadmap)

// WithRoadmapID overrides the generated roadmap ID.
func WithRoadmapID(id string) RoadmapOption {
	return func(r *domain.Roadmap) {
		r.ID = id
	}
}

// WithPhase appends a phase whose single must-know group holds n items
// labeled "<title> item <i>".
func WithPhase(title string, n int) RoadmapOption {
	return func(r *domain.Roadmap) {
		items := make([]string, n)
		for i := range items {
			items[i] = fmt.Sprintf("%s item %d", title, i)
		}
		phase := domain.Phase{Title: title, Description: title + " phase"}
		if n > 0 {
			phase.Groups = []domain.TopicGroup{{Name: title + " core", Class: domain.ClassMustKnow, Items: items}}
		}
		r.Phases = append(r.Phases, phase)
	}
}

// WithPhaseGroups appends a phase with one group per entry of sizes.
func WithPhaseGroups(title string, sizes ...int) RoadmapOption {
	return func(r *domain.Roadmap) {
		phase := domain.Phase{Title: title}
		for gi, n := range sizes {
			items := make([]string, n)
			for i := range items {
				items[i] = fmt.Sprintf("%s g%d item %d", title, gi, i)
			}
			phase.Groups = append(phase.Groups, domain.TopicGroup{
				Name:  fmt.Sprintf("%s group %d", title, gi),
				Class: domain.ClassGoodToKnow,
				Items: items,
			})
		}
		r.Phases = append(r.Phases, phase)
	}
}

// NewTestRoadmap builds a roadmap with no phases unless options add them.
func NewTestRoadmap(title string, opts ...RoadmapOption) domain.Roadmap {
	r := domain.Roadmap{
		ID:       "test-" + title,
		Title:    title,
		Subtitle: title + " track",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}

// TwoPhaseRoadmap is the canonical fixture: phase A with 3 items, phase B with 2.
func TwoPhaseRoadmap() domain.Roadmap {
	return NewTestRoadmap("two-phase",
		WithRoadmapID("two-phase"),
		WithPhase("A", 3),
		WithPhase("B", 2),
	)
}
