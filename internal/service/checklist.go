package service

import (
	"context"

	"github.com/alexanderramin/pathfinder/internal/domain"
	"github.com/alexanderramin/pathfinder/internal/tracker"
)

// Checklist binds one roadmap definition to its completion state for a
// presentation layer. Every mutation is persisted immediately with no
// buffering; a failed save leaves the in-memory state authoritative.
//
// A Checklist has a single writer and is not safe for concurrent use.
type Checklist struct {
	roadmap   domain.Roadmap
	keys      []domain.ItemKey
	state     domain.CompletionState
	progress  ProgressService
	outcome   tracker.LoadOutcome
	persisted bool
}

func newChecklist(r domain.Roadmap, state domain.CompletionState, outcome tracker.LoadOutcome, progress ProgressService) *Checklist {
	return &Checklist{
		roadmap:   r,
		keys:      tracker.DeriveItemKeys(r),
		state:     state,
		progress:  progress,
		outcome:   outcome,
		persisted: outcome == tracker.LoadRestored || outcome == tracker.LoadEmpty,
	}
}

func (c *Checklist) Roadmap() domain.Roadmap { return c.roadmap }

// Keys returns the roadmap's item keys in document order.
func (c *Checklist) Keys() []domain.ItemKey {
	return append([]domain.ItemKey(nil), c.keys...)
}

// State returns a copy of the current completion state.
func (c *Checklist) State() domain.CompletionState { return c.state.Clone() }

// LoadOutcome reports how the state was obtained when the checklist opened.
func (c *Checklist) LoadOutcome() tracker.LoadOutcome { return c.outcome }

// Persisted reports whether the most recent save succeeded. Before any
// mutation it reflects whether the initial load could read storage.
func (c *Checklist) Persisted() bool { return c.persisted }

func (c *Checklist) IsDone(key domain.ItemKey) bool { return c.state.IsDone(key.String()) }

// Toggle flips key, saves the full state and returns the prior snapshot so
// callers can compare or undo.
func (c *Checklist) Toggle(ctx context.Context, key domain.ItemKey) domain.CompletionState {
	return c.apply(ctx, tracker.Toggle(c.state, key.String()))
}

// Set marks key done or not done and saves.
func (c *Checklist) Set(ctx context.Context, key domain.ItemKey, done bool) domain.CompletionState {
	return c.apply(ctx, tracker.SetDone(c.state, key.String(), done))
}

// Restore replaces the whole state, typically with a snapshot returned by
// Toggle, and saves.
func (c *Checklist) Restore(ctx context.Context, state domain.CompletionState) domain.CompletionState {
	return c.apply(ctx, state.Clone())
}

func (c *Checklist) apply(ctx context.Context, next domain.CompletionState) domain.CompletionState {
	prev := c.state
	c.state = next
	c.persisted = c.progress.Save(ctx, c.roadmap.ID, c.state)
	return prev
}

func (c *Checklist) Overall() tracker.Progress { return tracker.Count(c.state, c.keys) }

func (c *Checklist) Percent() int { return c.Overall().Percent() }

// Phase returns progress within phase i; out-of-range phases are empty.
func (c *Checklist) Phase(i int) tracker.Progress {
	return tracker.PhaseProgress(c.state, i, c.roadmap)
}

// Next returns the first item in document order that is not done.
func (c *Checklist) Next() (domain.ItemKey, bool) {
	return tracker.NextIncomplete(c.state, c.roadmap)
}
