package domain

// CompletionState maps serialized item keys to their done flag.
// A missing key is equivalent to false.
type CompletionState map[string]bool

// IsDone reports whether key is marked done. Safe on a nil state.
func (s CompletionState) IsDone(key string) bool {
	return s[key]
}

// Clone returns an independent copy. Cloning nil yields an empty, non-nil state.
func (s CompletionState) Clone() CompletionState {
	out := make(CompletionState, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// DoneCount counts the keys flagged true, regardless of whether they belong
// to any current roadmap definition.
func (s CompletionState) DoneCount() int {
	n := 0
	for _, v := range s {
		if v {
			n++
		}
	}
	return n
}
