// Package check is a read-only diagnostic over planning snapshots. It
// reports violations for developer attention and never repairs them:
// auto-healing would mask the upstream bug that produced the bad data.
package check

import (
	"fmt"

	"wsjf/pkg/schema"
)

// Kind classifies a consistency finding.
type Kind string

const (
	KindPartitionViolation Kind = "partition_violation"
	KindDuplicateID        Kind = "duplicate_id"
	KindInvalidStage       Kind = "invalid_stage"
)

// Finding is a single reported violation.
type Finding struct {
	Kind          Kind
	RequirementID string
	Message       string
}

func (f Finding) String() string {
	if f.RequirementID != "" {
		return fmt.Sprintf("%s: %s (%s)", f.Kind, f.Message, f.RequirementID)
	}
	return fmt.Sprintf("%s: %s", f.Kind, f.Message)
}

// Run checks a snapshot's internal consistency: no duplicate IDs across
// the backlog and pools, every delivery stage a known enum value, and the
// partition arithmetic intact. The snapshot is never mutated.
func Run(snap schema.Snapshot) []Finding {
	var findings []Finding

	all := snap.AllRequirements()
	seen := make(map[string]int, len(all))
	for _, r := range all {
		seen[r.ID]++
	}
	for _, r := range all {
		if seen[r.ID] > 1 {
			findings = append(findings, Finding{
				Kind:          KindDuplicateID,
				RequirementID: r.ID,
				Message:       fmt.Sprintf("id appears %d times across backlog and pools", seen[r.ID]),
			})
			seen[r.ID] = 1 // report each duplicate id once
		}
	}

	for _, r := range all {
		if !r.DeliveryStage.IsValid() {
			findings = append(findings, Finding{
				Kind:          KindInvalidStage,
				RequirementID: r.ID,
				Message:       fmt.Sprintf("unknown delivery stage %q", r.DeliveryStage),
			})
		}
	}

	// Partition arithmetic: placements must equal distinct requirements.
	// Within a self-contained snapshot the only way they diverge is a
	// duplicated placement, reported here as its own finding so callers
	// watching the invariant see it even if they filter duplicate-id
	// findings.
	scheduled := 0
	for _, p := range snap.Pools {
		scheduled += len(p.Requirements)
	}
	if len(snap.Backlog)+scheduled != len(seen) {
		findings = append(findings, Finding{
			Kind: KindPartitionViolation,
			Message: fmt.Sprintf("backlog (%d) + scheduled (%d) != distinct requirements (%d)",
				len(snap.Backlog), scheduled, len(seen)),
		})
	}

	return findings
}

// VerifyPartition checks a snapshot against an authoritative requirement
// list: every known requirement must appear exactly once in the backlog
// or some pool, and nothing unknown may appear at all.
func VerifyPartition(snap schema.Snapshot, authoritative []schema.Requirement) []Finding {
	var findings []Finding

	placed := make(map[string]int)
	for _, r := range snap.AllRequirements() {
		placed[r.ID]++
	}

	known := make(map[string]bool, len(authoritative))
	for _, r := range authoritative {
		known[r.ID] = true
		switch placed[r.ID] {
		case 0:
			findings = append(findings, Finding{
				Kind:          KindPartitionViolation,
				RequirementID: r.ID,
				Message:       "requirement missing from backlog and all pools",
			})
		case 1:
			// exactly once, as required
		default:
			findings = append(findings, Finding{
				Kind:          KindPartitionViolation,
				RequirementID: r.ID,
				Message:       fmt.Sprintf("requirement placed %d times", placed[r.ID]),
			})
		}
	}

	for id := range placed {
		if !known[id] {
			findings = append(findings, Finding{
				Kind:          KindPartitionViolation,
				RequirementID: id,
				Message:       "requirement not in the authoritative set",
			})
		}
	}

	return findings
}
