package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestItemKey_StringAndParse(t *testing.T) {
	k := ItemKey{Phase: 1, Group: 12, Item: 3}
	assert.Equal(t, "1.12.3", k.String())

	parsed, err := ParseItemKey("1.12.3")
	require.NoError(t, err)
	assert.Equal(t, k, parsed)

	parsed, err = ParseItemKey(" 0.0.0 ")
	require.NoError(t, err)
	assert.Equal(t, ItemKey{}, parsed)
}

func TestParseItemKey_Invalid(t *testing.T) {
	for _, in := range []string{"", "1.2", "1.2.3.4", "a.b.c", "1.-1.0", "1..2"} {
		_, err := ParseItemKey(in)
		assert.Error(t, err, "should reject %q", in)
	}
}

func TestCompletionState(t *testing.T) {
	var nilState CompletionState
	assert.False(t, nilState.IsDone("0.0.0"))
	assert.Equal(t, 0, nilState.DoneCount())

	cloned := nilState.Clone()
	require.NotNil(t, cloned)
	assert.Empty(t, cloned)

	s := CompletionState{"0.0.0": true, "0.0.1": false, "9.9.9": true}
	assert.True(t, s.IsDone("0.0.0"))
	assert.False(t, s.IsDone("0.0.1"))
	assert.False(t, s.IsDone("missing"))
	assert.Equal(t, 2, s.DoneCount())

	c := s.Clone()
	c["0.0.1"] = true
	assert.False(t, s["0.0.1"], "clone must not alias the original")
}
