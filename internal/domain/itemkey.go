package domain

import (
	"fmt"
	"strconv"
	"strings"
)

// ItemKey is the positional address of one checklist item within a roadmap.
// It is stable only while the roadmap's phase, group and item ordering is unchanged.
type ItemKey struct {
	Phase int
	Group int
	Item  int
}

// String serializes the key as "phase.group.item", e.g. "0.2.1".
func (k ItemKey) String() string {
	return strconv.Itoa(k.Phase) + "." + strconv.Itoa(k.Group) + "." + strconv.Itoa(k.Item)
}

// ParseItemKey parses the "phase.group.item" form produced by String.
func ParseItemKey(s string) (ItemKey, error) {
	parts := strings.Split(strings.TrimSpace(s), ".")
	if len(parts) != 3 {
		return ItemKey{}, fmt.Errorf("item key %q must have the form phase.group.item", s)
	}
	var idx [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return ItemKey{}, fmt.Errorf("item key %q: segment %q is not a non-negative integer", s, p)
		}
		idx[i] = n
	}
	return ItemKey{Phase: idx[0], Group: idx[1], Item: idx[2]}, nil
}
