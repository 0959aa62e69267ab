package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wsjf/pkg/schema"
)

func cleanSnapshot() schema.Snapshot {
	return schema.Snapshot{
		SchemaVersion: 3,
		Backlog: []schema.Requirement{
			{ID: "REQ-a", Name: "a", DeliveryStage: schema.StagePending},
			{ID: "REQ-b", Name: "b", DeliveryStage: schema.StageNotEvaluated},
		},
		Pools: []schema.SprintPool{
			{
				ID: "POOL-1", Name: "Sprint 1",
				Requirements: []schema.Requirement{
					{ID: "REQ-c", Name: "c", DeliveryStage: schema.StageDeveloping},
				},
			},
		},
	}
}

func kinds(findings []Finding) []Kind {
	out := make([]Kind, len(findings))
	for i, f := range findings {
		out[i] = f.Kind
	}
	return out
}

func TestRunCleanSnapshot(t *testing.T) {
	assert.Empty(t, Run(cleanSnapshot()))
}

func TestRunReportsDuplicateIDs(t *testing.T) {
	snap := cleanSnapshot()
	// Same id in backlog and a pool.
	snap.Pools[0].Requirements = append(snap.Pools[0].Requirements,
		schema.Requirement{ID: "REQ-a", Name: "a again", DeliveryStage: schema.StagePending})

	findings := Run(snap)
	assert.Contains(t, kinds(findings), KindDuplicateID)
	assert.Contains(t, kinds(findings), KindPartitionViolation)

	for _, f := range findings {
		if f.Kind == KindDuplicateID {
			assert.Equal(t, "REQ-a", f.RequirementID)
		}
	}
}

func TestRunReportsInvalidStage(t *testing.T) {
	snap := cleanSnapshot()
	snap.Backlog[0].DeliveryStage = "half-done"
	snap.Pools[0].Requirements[0].DeliveryStage = ""

	findings := Run(snap)
	require.Len(t, findings, 2)
	for _, f := range findings {
		assert.Equal(t, KindInvalidStage, f.Kind)
	}
}

func TestRunNeverMutates(t *testing.T) {
	snap := cleanSnapshot()
	snap.Backlog[0].DeliveryStage = "bogus"
	before := snap.Clone()

	_ = Run(snap)
	assert.Equal(t, before, snap)
}

func TestVerifyPartitionComplete(t *testing.T) {
	snap := cleanSnapshot()
	assert.Empty(t, VerifyPartition(snap, snap.AllRequirements()))
}

func TestVerifyPartitionMissingRequirement(t *testing.T) {
	snap := cleanSnapshot()
	authoritative := append(snap.AllRequirements(),
		schema.Requirement{ID: "REQ-lost", Name: "lost"})

	findings := VerifyPartition(snap, authoritative)
	require.Len(t, findings, 1)
	assert.Equal(t, KindPartitionViolation, findings[0].Kind)
	assert.Equal(t, "REQ-lost", findings[0].RequirementID)
}

func TestVerifyPartitionUnknownPlacement(t *testing.T) {
	snap := cleanSnapshot()
	authoritative := snap.AllRequirements()[:2] // REQ-c placed but not known

	findings := VerifyPartition(snap, authoritative)
	require.Len(t, findings, 1)
	assert.Equal(t, "REQ-c", findings[0].RequirementID)
}

func TestFindingString(t *testing.T) {
	withID := Finding{Kind: KindDuplicateID, RequirementID: "REQ-x", Message: "id appears 2 times"}
	assert.Contains(t, withID.String(), "REQ-x")

	withoutID := Finding{Kind: KindPartitionViolation, Message: "counts diverge"}
	assert.Contains(t, withoutID.String(), "partition_violation")
}
