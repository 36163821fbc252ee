package domain

import (
	"strings"
	"unicode/utf8"
)

// Roadmap is a named, ordered curriculum of phases for a career track.
// The ID is stable and namespaces the persisted completion state.
type Roadmap struct {
	ID       string
	Title    string
	Subtitle string
	Phases   []Phase
}

// Phase is one stage of a roadmap.
type Phase struct {
	Title       string
	Description string
	Duration    string // optional, e.g. "4-6 weeks"
	Groups      []TopicGroup
	Resources   []string
}

// TopicGroup is a labeled cluster of checklist items within a phase.
type TopicGroup struct {
	Name  string
	Class GroupClass
	Items []string
}

// RoadmapSummary is the listing view of a roadmap.
type RoadmapSummary struct {
	Index      int // 1-based position in the catalog listing
	ID         string
	Title      string
	Subtitle   string
	PhaseCount int
	ItemCount  int
	Source     string // "builtin" or the file path it was loaded from
}

// ItemCount returns the number of checklist items across all phases and groups.
func (r *Roadmap) ItemCount() int {
	n := 0
	for _, p := range r.Phases {
		n += p.ItemCount()
	}
	return n
}

// ItemCount returns the number of checklist items in the phase.
func (p *Phase) ItemCount() int {
	n := 0
	for _, g := range p.Groups {
		n += len(g.Items)
	}
	return n
}

// Item returns the raw item label addressed by key.
func (r *Roadmap) Item(key ItemKey) (string, bool) {
	if key.Phase < 0 || key.Phase >= len(r.Phases) {
		return "", false
	}
	groups := r.Phases[key.Phase].Groups
	if key.Group < 0 || key.Group >= len(groups) {
		return "", false
	}
	items := groups[key.Group].Items
	if key.Item < 0 || key.Item >= len(items) {
		return "", false
	}
	return items[key.Item], true
}

// Summary builds the listing view of the roadmap.
func (r *Roadmap) Summary() RoadmapSummary {
	return RoadmapSummary{
		ID:         r.ID,
		Title:      r.Title,
		Subtitle:   r.Subtitle,
		PhaseCount: len(r.Phases),
		ItemCount:  r.ItemCount(),
	}
}

// labelDelimiters separate an item's short display label from its long-form detail.
const labelDelimiters = "—:"

// DisplayLabel returns the short label of an item: the text preceding the
// first "—" or ":" character, trimmed. Items without a delimiter are
// returned trimmed as-is.
func DisplayLabel(item string) string {
	if i := strings.IndexAny(item, labelDelimiters); i >= 0 {
		return strings.TrimSpace(item[:i])
	}
	return strings.TrimSpace(item)
}

// ItemDetail returns the long-form description following the first
// delimiter, or "" when the item has none.
func ItemDetail(item string) string {
	i := strings.IndexAny(item, labelDelimiters)
	if i < 0 {
		return ""
	}
	_, size := utf8.DecodeRuneInString(item[i:])
	return strings.TrimSpace(item[i+size:])
}
