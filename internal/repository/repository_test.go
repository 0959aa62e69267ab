package repository

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"wsjf/internal/migrate"
	"wsjf/pkg/schema"
)

func currentSnapshot() schema.Snapshot {
	return schema.Snapshot{
		SchemaVersion: migrate.CurrentSchemaVersion,
		Backlog: []schema.Requirement{
			{
				ID: "REQ-backlog", Name: "unscheduled work",
				BusinessValue:       schema.BVVisible,
				TimeCriticality:     schema.TCAnytime,
				EffortDays:          5,
				DeliveryStage:       schema.StagePending,
				BusinessImpactScore: 5,
			},
		},
		Pools: []schema.SprintPool{
			{
				ID: "POOL-1", Name: "Sprint 1",
				StartDate: "2026-09-01", EndDate: "2026-09-14", TotalDays: 40,
				Requirements: []schema.Requirement{
					{
						ID: "REQ-pooled", Name: "scheduled work",
						BusinessValue:       schema.BVCoreLever,
						TimeCriticality:     schema.TCQuarterWindow,
						EffortDays:          8,
						DeliveryStage:       schema.StageDeveloping,
						BusinessImpactScore: 8,
					},
				},
			},
		},
	}
}

func TestRepository_LoadMissingDirectory(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), ".wsjf")
	repo := New(baseDir, nil)

	snap, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, migrate.CurrentSchemaVersion, snap.SchemaVersion)
	assert.Empty(t, snap.Backlog)
	assert.Empty(t, snap.Pools)
}

func TestRepository_SaveLoadRoundTrip(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), ".wsjf")
	repo := New(baseDir, nil)

	want := currentSnapshot()
	require.NoError(t, repo.Save(want))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRepository_LoadMigratesLegacyData(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), ".wsjf")
	require.NoError(t, os.MkdirAll(baseDir, 0o755))

	legacy := schema.Snapshot{
		SchemaVersion: 1,
		Backlog: []schema.Requirement{
			{ID: "REQ-legacy", Name: "old record", LegacyBV: "core lever", LegacyTC: "anytime"},
		},
	}
	data, err := yaml.Marshal(&legacy)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "planning.yaml"), data, 0o644))

	repo := New(baseDir, nil)
	snap, err := repo.Load()
	require.NoError(t, err)

	assert.Equal(t, migrate.CurrentSchemaVersion, snap.SchemaVersion)
	require.Len(t, snap.Backlog, 1)
	assert.Equal(t, schema.BVCoreLever, snap.Backlog[0].BusinessValue)
	assert.Equal(t, 7, snap.Backlog[0].BusinessImpactScore)
	assert.Equal(t, schema.StagePending, snap.Backlog[0].DeliveryStage)
}

func TestRepository_SaveStampsCurrentVersion(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), ".wsjf")
	repo := New(baseDir, nil)

	stale := currentSnapshot()
	stale.SchemaVersion = 1
	require.NoError(t, repo.Save(stale))

	data, err := os.ReadFile(filepath.Join(baseDir, "planning.yaml"))
	require.NoError(t, err)
	var onDisk schema.Snapshot
	require.NoError(t, yaml.Unmarshal(data, &onDisk))
	assert.Equal(t, migrate.CurrentSchemaVersion, onDisk.SchemaVersion)
}

func TestRepository_SaveWithEventsAppendsChangelog(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), ".wsjf")
	repo := New(baseDir, nil)

	snap := currentSnapshot()
	events := []schema.PlanningEvent{
		&schema.RequirementMoved{
			EventID_:      "EVT-move1",
			RequirementID: "REQ-pooled",
			From:          "backlog",
			To:            "POOL-1",
		},
	}
	require.NoError(t, repo.SaveWithEvents(snap, events))

	logged, err := repo.ReadChangelog()
	require.NoError(t, err)
	require.Len(t, logged, 1)
	assert.Equal(t, "RequirementMoved", logged[0]["event_type"])
	assert.Equal(t, "REQ-pooled", logged[0]["requirement_id"])
	assert.Equal(t, "POOL-1", logged[0]["to"])

	// A second save appends rather than truncates.
	require.NoError(t, repo.SaveWithEvents(snap, []schema.PlanningEvent{
		&schema.PoolDeleted{EventID_: "EVT-del1", PoolID: "POOL-1"},
	}))
	logged, err = repo.ReadChangelog()
	require.NoError(t, err)
	assert.Len(t, logged, 2)
}

func TestRepository_ReadChangelogMissing(t *testing.T) {
	repo := New(filepath.Join(t.TempDir(), ".wsjf"), nil)
	logged, err := repo.ReadChangelog()
	require.NoError(t, err)
	assert.Nil(t, logged)
}

func TestArchiver_WriteAndLatest(t *testing.T) {
	baseDir := filepath.Join(t.TempDir(), ".wsjf")
	require.NoError(t, os.MkdirAll(baseDir, 0o755))
	archiver := NewArchiver(baseDir)

	_, found, err := archiver.Latest()
	require.NoError(t, err)
	assert.False(t, found)

	want := currentSnapshot()
	tag, err := archiver.Write(want)
	require.NoError(t, err)
	assert.NotEmpty(t, tag)

	got, found, err := archiver.Latest()
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, want, got)
}

func TestArchiver_ShouldArchive(t *testing.T) {
	archiver := NewArchiver(t.TempDir())
	assert.False(t, archiver.ShouldArchive(0))
	assert.False(t, archiver.ShouldArchive(99))
	assert.True(t, archiver.ShouldArchive(100))
}
