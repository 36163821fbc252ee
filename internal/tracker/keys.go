// Package tracker holds the roadmap checklist core: key derivation, toggling,
// progress percentages and the persisted snapshot format. Everything except
// Load and Save is a pure function of its inputs.
package tracker

import "github.com/alexanderramin/pathfinder/internal/domain"

// DeriveItemKeys flattens phases, then groups, then items in declared order,
// producing one key per item.
func DeriveItemKeys(r domain.Roadmap) []domain.ItemKey {
	keys := make([]domain.ItemKey, 0, r.ItemCount())
	for pi := range r.Phases {
		keys = appendPhaseKeys(keys, r.Phases[pi], pi)
	}
	return keys
}

// PhaseItemKeys returns the keys of a single phase in declared order.
// An out-of-range phase index yields nil.
func PhaseItemKeys(r domain.Roadmap, phaseIndex int) []domain.ItemKey {
	if phaseIndex < 0 || phaseIndex >= len(r.Phases) {
		return nil
	}
	phase := r.Phases[phaseIndex]
	return appendPhaseKeys(make([]domain.ItemKey, 0, phase.ItemCount()), phase, phaseIndex)
}

func appendPhaseKeys(keys []domain.ItemKey, phase domain.Phase, pi int) []domain.ItemKey {
	for gi, g := range phase.Groups {
		for ii := range g.Items {
			keys = append(keys, domain.ItemKey{Phase: pi, Group: gi, Item: ii})
		}
	}
	return keys
}

// Toggle flips the flag at key (absent -> true, true -> false, false -> true)
// and returns a new state. The input state is never modified.
func Toggle(state domain.CompletionState, key string) domain.CompletionState {
	next := state.Clone()
	next[key] = !state[key]
	return next
}

// SetDone returns a new state with key set to done.
func SetDone(state domain.CompletionState, key string, done bool) domain.CompletionState {
	next := state.Clone()
	next[key] = done
	return next
}

// NextIncomplete returns the first item, in document order, not marked done.
func NextIncomplete(state domain.CompletionState, r domain.Roadmap) (domain.ItemKey, bool) {
	for _, k := range DeriveItemKeys(r) {
		if !state[k.String()] {
			return k, true
		}
	}
	return domain.ItemKey{}, false
}
