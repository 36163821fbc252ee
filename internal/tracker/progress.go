package tracker

import "github.com/alexanderramin/pathfinder/internal/domain"

// Progress is a done/total count over some set of item keys.
type Progress struct {
	Done  int
	Total int
}

// Percent returns the completion percentage rounded half up, or 0 when Total is 0.
func (p Progress) Percent() int {
	return RoundPercent(p.Done, p.Total)
}

// Complete reports whether every item is done. An empty set is never complete.
func (p Progress) Complete() bool {
	return p.Total > 0 && p.Done == p.Total
}

// InProgress reports whether some, but not all, items are done.
func (p Progress) InProgress() bool {
	return p.Done > 0 && !p.Complete()
}

// RoundPercent computes round(100*done/total) with halves rounded up, using
// integer arithmetic so boundary cases such as 1/8 (12.5%) are exact.
// A zero total yields 0.
func RoundPercent(done, total int) int {
	if total <= 0 {
		return 0
	}
	return (200*done + total) / (2 * total)
}

// Count tallies how many of keys are done in state. Keys in state that are not
// in keys are ignored.
func Count(state domain.CompletionState, keys []domain.ItemKey) Progress {
	p := Progress{Total: len(keys)}
	for _, k := range keys {
		if state[k.String()] {
			p.Done++
		}
	}
	return p
}

// CompletionPercent is round(100 * |done keys| / |keys|), or 0 for no keys.
func CompletionPercent(state domain.CompletionState, keys []domain.ItemKey) int {
	return Count(state, keys).Percent()
}

// StepCompletionPercent is CompletionPercent restricted to one phase.
// A phase with no items reports 0.
func StepCompletionPercent(state domain.CompletionState, phaseIndex int, r domain.Roadmap) int {
	return PhaseProgress(state, phaseIndex, r).Percent()
}

// PhaseProgress counts done items within one phase.
func PhaseProgress(state domain.CompletionState, phaseIndex int, r domain.Roadmap) Progress {
	return Count(state, PhaseItemKeys(r, phaseIndex))
}

// RoadmapProgress counts done items across the whole roadmap.
func RoadmapProgress(state domain.CompletionState, r domain.Roadmap) Progress {
	return Count(state, DeriveItemKeys(r))
}
