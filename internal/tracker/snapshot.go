package tracker

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/alexanderramin/pathfinder/internal/domain"
)

var (
	// ErrStorageUnavailable marks a read or write failure of the backing store.
	ErrStorageUnavailable = errors.New("progress storage unavailable")
	// ErrMalformedSnapshot marks a stored value that is not a completion mapping.
	ErrMalformedSnapshot = errors.New("malformed progress snapshot")
)

// KeyPrefix namespaces persisted snapshots in the store.
const KeyPrefix = "pathfinder.roadmap-progress."

// StorageKey returns the store key holding the snapshot for roadmapID.
func StorageKey(roadmapID string) string {
	return KeyPrefix + roadmapID
}

// SnapshotStatus tags the result of decoding a stored snapshot.
type SnapshotStatus int

const (
	SnapshotOK SnapshotStatus = iota
	SnapshotMalformed
)

// Snapshot is the tagged result of DecodeSnapshot. State is non-nil only when
// Status is SnapshotOK.
type Snapshot struct {
	Status SnapshotStatus
	State  domain.CompletionState
	Err    error
}

// EncodeSnapshot serializes state as a JSON object of item key to boolean.
// Keys must be valid UTF-8; JSON would otherwise rewrite them and the saved
// key would no longer match the one read back.
func EncodeSnapshot(state domain.CompletionState) (string, error) {
	if state == nil {
		state = domain.CompletionState{}
	}
	for k := range state {
		if !utf8.ValidString(k) {
			return "", fmt.Errorf("encoding snapshot: key %q is not valid UTF-8", k)
		}
	}
	data, err := json.Marshal(map[string]bool(state))
	if err != nil {
		return "", fmt.Errorf("encoding snapshot: %w", err)
	}
	return string(data), nil
}

// DecodeSnapshot validates that raw is a JSON object whose values are all
// booleans. Anything else (arrays, scalars, null, non-boolean values,
// trailing data) is reported as malformed rather than trusted.
func DecodeSnapshot(raw string) Snapshot {
	dec := json.NewDecoder(bytes.NewReader([]byte(raw)))
	var fields map[string]json.RawMessage
	if err := dec.Decode(&fields); err != nil {
		return malformed(err)
	}
	if fields == nil {
		return malformed(errors.New("snapshot is null"))
	}
	if _, err := dec.Token(); err != io.EOF {
		return malformed(errors.New("trailing data after snapshot"))
	}

	state := make(domain.CompletionState, len(fields))
	for k, v := range fields {
		var done bool
		if err := json.Unmarshal(v, &done); err != nil || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return malformed(fmt.Errorf("key %q: value %s is not a boolean", k, v))
		}
		state[k] = done
	}
	return Snapshot{Status: SnapshotOK, State: state}
}

func malformed(cause error) Snapshot {
	return Snapshot{Status: SnapshotMalformed, Err: fmt.Errorf("%w: %v", ErrMalformedSnapshot, cause)}
}
