package formatter

import (
	"strings"
	"testing"

	"github.com/alexanderramin/pathfinder/internal/domain"
	"github.com/stretchr/testify/assert"
)

func sampleRoadmap() domain.Roadmap {
	return domain.Roadmap{
		ID:       "soc-analyst",
		Title:    "SOC Analyst",
		Subtitle: "Defend the network",
		Phases: []domain.Phase{
			{
				Title:       "Foundations",
				Description: "Networking and OS basics",
				Duration:    "Months 1-3",
				Groups: []domain.TopicGroup{
					{Name: "Networking", Class: domain.ClassMustKnow, Items: []string{
						"TCP/IP: the protocol suite",
						"DNS — name resolution",
					}},
					{Name: "Utilities", Class: domain.ClassTools, Items: []string{"Wireshark"}},
				},
				Resources: []string{"Professor Messer"},
			},
			{Title: "Capstone"},
		},
	}
}

func TestFormatRoadmap_TreeWithMarks(t *testing.T) {
	got := stripANSI(FormatRoadmap(sampleRoadmap(), domain.CompletionState{"0.0.1": true}, ""))

	assert.Contains(t, got, "SOC ANALYST")
	assert.Contains(t, got, "Defend the network")
	assert.Contains(t, got, "Phase 1: Foundations (Months 1-3)")
	assert.Contains(t, got, "○ 0.0.0 TCP/IP")
	assert.NotContains(t, got, "the protocol suite")
	assert.Contains(t, got, "✔ 0.0.1 DNS")
	assert.Contains(t, got, "[tools]")
	assert.Contains(t, got, "Resources: Professor Messer")
	assert.Contains(t, got, "● IN PROGRESS  33%")
	assert.Contains(t, got, "Phase 2: Capstone")
	assert.Contains(t, got, "● NOT STARTED   0%")
}

func TestFormatRoadmap_ClassFilter(t *testing.T) {
	got := stripANSI(FormatRoadmap(sampleRoadmap(), nil, domain.ClassTools))

	assert.Contains(t, got, "0.1.0 Wireshark")
	assert.Contains(t, got, "[tools]")
	assert.NotContains(t, got, "[must-know]")
	assert.NotContains(t, got, "TCP/IP")
	assert.NotContains(t, got, "0.0.1 DNS")
}

func TestFormatProgress_PhaseStates(t *testing.T) {
	state := domain.CompletionState{"0.0.0": true, "0.0.1": true, "0.1.0": true}
	got := stripANSI(FormatProgress(sampleRoadmap(), state))

	assert.Contains(t, got, "3/3 items")
	// An empty phase adds no items, so it does not hold back the roadmap.
	assert.Contains(t, got, "Roadmap complete.")
	assert.Contains(t, got, "1. Foundations")
	assert.Contains(t, got, "● DONE")
	assert.Contains(t, got, "2. Capstone")
	assert.Contains(t, got, "0/0")
	assert.Contains(t, got, "● NOT STARTED")
}

func TestFormatRoadmapList(t *testing.T) {
	got := stripANSI(FormatRoadmapList([]RoadmapRow{
		{Summary: domain.RoadmapSummary{Index: 1, ID: "soc-analyst", Title: "SOC Analyst", PhaseCount: 3, ItemCount: 18}, Percent: 50},
	}))
	assert.Contains(t, got, "soc-analyst")
	assert.Contains(t, got, "18")
	assert.Contains(t, got, " 50%")

	assert.Equal(t, "No roadmaps found.\n", stripANSI(FormatRoadmapList(nil)))
}

func TestFormatNext(t *testing.T) {
	r := sampleRoadmap()

	got := stripANSI(FormatNext(r, domain.ItemKey{Phase: 0, Group: 0, Item: 0}, true))
	assert.True(t, strings.HasPrefix(got, "Next: TCP/IP\n"))
	assert.Contains(t, got, "Phase 1: Foundations / Networking [must-know]")
	assert.Contains(t, got, "the protocol suite")

	assert.Contains(t, stripANSI(FormatNext(r, domain.ItemKey{}, false)), "All items complete")
	assert.Contains(t, stripANSI(FormatNext(domain.Roadmap{}, domain.ItemKey{}, false)), "no items")
}

func TestFormatItemLine(t *testing.T) {
	r := sampleRoadmap()
	assert.Equal(t, "✔ 0.1.0 Wireshark", stripANSI(FormatItemLine(r, domain.ItemKey{Phase: 0, Group: 1, Item: 0}, true)))
	assert.Equal(t, "○ 9.9.9 (unknown item)", stripANSI(FormatItemLine(r, domain.ItemKey{Phase: 9, Group: 9, Item: 9}, false)))
}
