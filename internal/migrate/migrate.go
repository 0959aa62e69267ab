// Package migrate evolves persisted planning snapshots across schema
// versions. Steps run in order, are idempotent per-record (a field that
// already has a value is never overwritten), never delete requirements or
// pools, and never fail: records that cannot be derived precisely receive
// a conservative default, which is logged and absorbed. Loading must
// always produce something sensible.
package migrate

import (
	"strings"

	"wsjf/internal/core"
	"wsjf/pkg/schema"
)

// CurrentSchemaVersion is the schema version this build reads and writes.
//
// Version history:
//
//	1 - legacy records: free-string bv/tc fields, no impact score,
//	    delivery stage optional.
//	2 - typed tier/criticality fields, 1-10 business impact score
//	    backfilled from the legacy fields.
//	3 - delivery stage always materialized, numeric ranges normalized.
const CurrentSchemaVersion = 3

// Engine applies version-gated snapshot transformations.
type Engine struct {
	log core.Logger
}

// NewEngine creates a migration engine. A nil logger discards output.
func NewEngine(log core.Logger) *Engine {
	if log == nil {
		log = core.NewNopLogger()
	}
	return &Engine{log: log}
}

type step struct {
	to    int
	apply func(e *Engine, snap *schema.Snapshot)
}

var steps = []step{
	{to: 2, apply: (*Engine).backfillImpactScores},
	{to: 3, apply: (*Engine).normalizeStagesAndRanges},
}

// Migrate brings a snapshot up to CurrentSchemaVersion. Already-current
// snapshots pass through unchanged, and re-running on migrated output is
// a no-op, so it is safe to call on every load.
func (e *Engine) Migrate(snap schema.Snapshot) schema.Snapshot {
	out := snap.Clone()
	if out.SchemaVersion >= CurrentSchemaVersion {
		return out
	}
	for _, st := range steps {
		if out.SchemaVersion < st.to {
			st.apply(e, &out)
			out.SchemaVersion = st.to
		}
	}
	return out
}

// forEachRequirement visits every record in the backlog and in every
// pool's membership. Pool members are full records, not references, so
// they migrate too.
func forEachRequirement(snap *schema.Snapshot, fn func(r *schema.Requirement)) {
	for i := range snap.Backlog {
		fn(&snap.Backlog[i])
	}
	for i := range snap.Pools {
		for j := range snap.Pools[i].Requirements {
			fn(&snap.Pools[i].Requirements[j])
		}
	}
}

// legacyTierBase maps the four-tier business value to the base of the
// 1-10 impact score introduced in schema version 2.
var legacyTierBase = map[schema.BusinessValue]int{
	schema.BVLocal:             3,
	schema.BVVisible:           5,
	schema.BVCoreLever:         7,
	schema.BVStrategicPlatform: 9,
}

// backfillImpactScores is the v1 to v2 step. It normalizes the legacy
// free-string bv/tc fields into the typed tier and criticality fields,
// then derives a 1-10 business impact score for records that lack one:
// tier base + 1 for any delivery window + 1 for a hard deadline, clamped
// to the 1-10 range. Records that already carry an impact score are left
// alone, so mixed-version data migrates record by record.
func (e *Engine) backfillImpactScores(snap *schema.Snapshot) {
	forEachRequirement(snap, func(r *schema.Requirement) {
		if !r.BusinessValue.IsValid() {
			if tier, ok := parseLegacyTier(r.LegacyBV); ok {
				r.BusinessValue = tier
			} else {
				r.BusinessValue = schema.BVLocal
				e.defaultApplied(r.ID, "business_value", string(schema.BVLocal), r.LegacyBV)
			}
		}
		if !r.TimeCriticality.IsValid() {
			if tc, ok := parseLegacyCriticality(r.LegacyTC); ok {
				r.TimeCriticality = tc
			} else {
				r.TimeCriticality = schema.TCAnytime
				e.defaultApplied(r.ID, "time_criticality", string(schema.TCAnytime), r.LegacyTC)
			}
		}

		if r.BusinessImpactScore != 0 {
			return // already migrated
		}
		score := legacyTierBase[r.BusinessValue]
		if r.TimeCriticality != schema.TCAnytime {
			score++
		}
		if r.HardDeadline {
			score++
		}
		if score < schema.ImpactScoreMin {
			score = schema.ImpactScoreMin
		}
		if score > schema.ImpactScoreMax {
			score = schema.ImpactScoreMax
		}
		r.BusinessImpactScore = score
	})
}

// normalizeStagesAndRanges is the v2 to v3 step. Every record gets a
// concrete delivery stage (empty or unknown becomes pending) and numeric
// fields are clamped into their documented ranges.
func (e *Engine) normalizeStagesAndRanges(snap *schema.Snapshot) {
	forEachRequirement(snap, func(r *schema.Requirement) {
		if !r.DeliveryStage.IsValid() {
			e.defaultApplied(r.ID, "delivery_stage", string(schema.StagePending), string(r.DeliveryStage))
			r.DeliveryStage = schema.StagePending
		}
		if r.EffortDays < 0 {
			e.defaultApplied(r.ID, "effort_days", "0", "")
			r.EffortDays = 0
		}
	})
	for i := range snap.Pools {
		p := &snap.Pools[i]
		for _, pct := range []*int{&p.BugReservePct, &p.RefactorReservePct, &p.OtherReservePct} {
			if *pct < schema.ReservePctMin {
				*pct = schema.ReservePctMin
			}
			if *pct > schema.ReservePctMax {
				*pct = schema.ReservePctMax
			}
		}
	}
}

// defaultApplied logs an informational migration default. This is not a
// failure; load never blocks on imprecise legacy data.
func (e *Engine) defaultApplied(reqID, field, value, was string) {
	e.log.Info("migration default applied",
		"requirement", reqID,
		"field", field,
		"default", value,
		"was", was,
	)
}

func parseLegacyTier(s string) (schema.BusinessValue, bool) {
	switch normalizeToken(s) {
	case "local":
		return schema.BVLocal, true
	case "visible":
		return schema.BVVisible, true
	case "core_lever", "corelever":
		return schema.BVCoreLever, true
	case "strategic_platform", "strategicplatform":
		return schema.BVStrategicPlatform, true
	}
	return "", false
}

func parseLegacyCriticality(s string) (schema.TimeCriticality, bool) {
	switch normalizeToken(s) {
	case "anytime":
		return schema.TCAnytime, true
	case "quarter_window", "quarterwindow":
		return schema.TCQuarterWindow, true
	case "month_hard_window", "monthhardwindow":
		return schema.TCMonthHardWindow, true
	}
	return "", false
}

func normalizeToken(s string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), " ", "_")
}
