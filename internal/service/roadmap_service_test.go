package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/pathfinder/internal/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const customRoadmapYAML = `id: red-team-lead
title: Red Team Lead
subtitle: Lead adversary simulations
phases:
  - title: Planning
    description: Scope and rules of engagement
    groups:
      - name: Core
        class: must-know
        items:
          - "Rules of engagement: scope, timing, contacts"
          - "Threat emulation plans"
`

func TestRoadmapServiceList_BuiltinsThenFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "red-team.yaml"), []byte(customRoadmapYAML), 0o644))

	svc := NewRoadmapService(catalog.New(dir))
	got, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 5)

	assert.Equal(t, "soc-analyst", got[0].ID)
	assert.Equal(t, 1, got[0].Index)
	assert.Equal(t, catalog.SourceBuiltin, got[0].Source)
	assert.Equal(t, 3, got[0].PhaseCount)

	last := got[4]
	assert.Equal(t, "red-team-lead", last.ID)
	assert.Equal(t, 5, last.Index)
	assert.Equal(t, 2, last.ItemCount)
	assert.Equal(t, filepath.Join(dir, "red-team.yaml"), last.Source)
}

func TestRoadmapServiceGet_Resolves(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "red-team.yaml"), []byte(customRoadmapYAML), 0o644))
	svc := NewRoadmapService(catalog.New(dir))

	tests := map[string]string{
		"soc-analyst":   "soc-analyst",
		"SOC Analyst":   "soc-analyst",
		"2":             "penetration-tester",
		"red-team":      "red-team-lead",
		"RED TEAM LEAD": "red-team-lead",
	}
	for input, wantID := range tests {
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			got, err := svc.Get(context.Background(), input)
			require.NoError(t, err)
			assert.Equal(t, wantID, got.ID)
		})
	}
}

func TestRoadmapServiceGet_NotFound(t *testing.T) {
	t.Parallel()

	rec := &recordingObserver{}
	svc := NewRoadmapService(catalog.New(t.TempDir()), rec)

	_, err := svc.Get(context.Background(), "missing")
	require.ErrorIs(t, err, catalog.ErrRoadmapNotFound)

	events := rec.named("get-roadmap")
	require.Len(t, events, 1)
	assert.False(t, events[0].Success)
}
