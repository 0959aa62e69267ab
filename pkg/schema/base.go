package schema

// BusinessValue is the business-value tier of a requirement.
type BusinessValue string

const (
	BVLocal             BusinessValue = "local"              // local improvement, a single team feels it
	BVVisible           BusinessValue = "visible"            // visible value across the business line
	BVCoreLever         BusinessValue = "core_lever"         // moves a core business lever
	BVStrategicPlatform BusinessValue = "strategic_platform" // platform the strategy depends on
)

// Score returns the weighted points for the tier. Unknown or empty tiers
// score as the lowest tier.
func (bv BusinessValue) Score() int {
	switch bv {
	case BVVisible:
		return 6
	case BVCoreLever:
		return 8
	case BVStrategicPlatform:
		return 10
	default:
		return 3
	}
}

// IsValid reports whether the tier is one of the known values.
func (bv BusinessValue) IsValid() bool {
	switch bv {
	case BVLocal, BVVisible, BVCoreLever, BVStrategicPlatform:
		return true
	}
	return false
}

// TimeCriticality is the delivery-window pressure on a requirement.
type TimeCriticality string

const (
	TCAnytime         TimeCriticality = "anytime"
	TCQuarterWindow   TimeCriticality = "quarter_window"
	TCMonthHardWindow TimeCriticality = "month_hard_window"
)

// Score returns the weighted points for the window. Unknown or empty
// values score as "anytime".
func (tc TimeCriticality) Score() int {
	switch tc {
	case TCQuarterWindow:
		return 3
	case TCMonthHardWindow:
		return 5
	default:
		return 0
	}
}

// IsValid reports whether the window is one of the known values.
func (tc TimeCriticality) IsValid() bool {
	switch tc {
	case TCAnytime, TCQuarterWindow, TCMonthHardWindow:
		return true
	}
	return false
}

// ValidationLimits defines the constraints for various fields.
const (
	RequirementNameMin = 1
	RequirementNameMax = 100
	PoolNameMin        = 1
	PoolNameMax        = 100
	ReservePctMin      = 0
	ReservePctMax      = 100
	ImpactScoreMin     = 1
	ImpactScoreMax     = 10
)
