package schema

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ValidateRequirement validates a requirement's user-settable fields.
// Derived score fields are not checked here; the scoring engine owns them.
func ValidateRequirement(r *Requirement) error {
	if len(r.Name) < RequirementNameMin || len(r.Name) > RequirementNameMax {
		return fmt.Errorf("name must be %d-%d characters", RequirementNameMin, RequirementNameMax)
	}
	if !r.BusinessValue.IsValid() {
		return fmt.Errorf("invalid business value tier: %s", r.BusinessValue)
	}
	if !r.TimeCriticality.IsValid() {
		return fmt.Errorf("invalid time criticality: %s", r.TimeCriticality)
	}
	if !r.DeliveryStage.IsValid() {
		return fmt.Errorf("invalid delivery stage: %s", r.DeliveryStage)
	}
	if r.EffortDays < 0 {
		return fmt.Errorf("effort days must be non-negative, got %v", r.EffortDays)
	}
	if r.BusinessImpactScore != 0 &&
		(r.BusinessImpactScore < ImpactScoreMin || r.BusinessImpactScore > ImpactScoreMax) {
		return fmt.Errorf("business impact score must be %d-%d", ImpactScoreMin, ImpactScoreMax)
	}
	return nil
}

// ValidatePool validates a sprint pool's metadata. Membership is not
// checked here; the planner owns the partition invariant.
func ValidatePool(p *SprintPool) error {
	if len(p.Name) < PoolNameMin || len(p.Name) > PoolNameMax {
		return fmt.Errorf("name must be %d-%d characters", PoolNameMin, PoolNameMax)
	}
	if p.TotalDays < 0 {
		return fmt.Errorf("total days must be non-negative, got %v", p.TotalDays)
	}
	for _, pct := range []struct {
		name  string
		value int
	}{
		{"bug reserve", p.BugReservePct},
		{"refactor reserve", p.RefactorReservePct},
		{"other reserve", p.OtherReservePct},
	} {
		if pct.value < ReservePctMin || pct.value > ReservePctMax {
			return fmt.Errorf("%s must be %d-%d percent", pct.name, ReservePctMin, ReservePctMax)
		}
	}
	if p.StartDate != "" && p.EndDate != "" {
		start, err := time.Parse(dateLayout, p.StartDate)
		if err != nil {
			return fmt.Errorf("invalid start date %q: %w", p.StartDate, err)
		}
		end, err := time.Parse(dateLayout, p.EndDate)
		if err != nil {
			return fmt.Errorf("invalid end date %q: %w", p.EndDate, err)
		}
		if end.Before(start) {
			return fmt.Errorf("end date %s is before start date %s", p.EndDate, p.StartDate)
		}
	}
	return nil
}
