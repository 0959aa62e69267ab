package schema

import "time"

// Requirement is the unit of plannable work. Scoring inputs are set at
// creation (import, manual entry); the derived score fields are owned by
// the scoring engine and recomputed over the full requirement universe
// after every mutation.
type Requirement struct {
	ID           string `json:"id" yaml:"id"`
	Name         string `json:"name" yaml:"name"`
	Submitter    string `json:"submitter,omitempty" yaml:"submitter,omitempty"`
	SubmitDate   string `json:"submit_date,omitempty" yaml:"submit_date,omitempty"`
	BusinessTeam string `json:"business_team,omitempty" yaml:"business_team,omitempty"`
	Description  string `json:"description,omitempty" yaml:"description,omitempty"`

	// Scoring inputs.
	BusinessValue   BusinessValue   `json:"business_value" yaml:"business_value"`
	TimeCriticality TimeCriticality `json:"time_criticality" yaml:"time_criticality"`
	HardDeadline    bool            `json:"hard_deadline" yaml:"hard_deadline"`
	DeadlineDate    string          `json:"deadline_date,omitempty" yaml:"deadline_date,omitempty"`
	EffortDays      float64         `json:"effort_days" yaml:"effort_days"`

	// Readiness. Mutated by user edits, read-only to the planner.
	DeliveryStage DeliveryStage `json:"delivery_stage" yaml:"delivery_stage"`

	// BusinessImpactScore is the 1-10 impact rating backfilled by the
	// schema migration; the batch scorer does not read it.
	BusinessImpactScore int `json:"business_impact_score,omitempty" yaml:"business_impact_score,omitempty"`

	// Legacy pre-migration fields, kept so old tooling can roll back.
	LegacyBV string `json:"bv,omitempty" yaml:"bv,omitempty"`
	LegacyTC string `json:"tc,omitempty" yaml:"tc,omitempty"`

	// Derived scores, owned by the scoring engine.
	RawScore     int `json:"raw_score,omitempty" yaml:"raw_score,omitempty"`
	DisplayScore int `json:"display_score,omitempty" yaml:"display_score,omitempty"`
	Stars        int `json:"stars,omitempty" yaml:"stars,omitempty"`

	CreatedAt time.Time `json:"created_at,omitempty" yaml:"created_at,omitempty"`
}
