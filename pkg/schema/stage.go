package schema

// DeliveryStage is the technical-evaluation stage of a requirement. The
// first two stages mean "not evaluated yet"; everything from
// StageEffortEvaluated onward is eligible for sprint scheduling.
type DeliveryStage string

const (
	// StagePending is the default for newly created requirements.
	StagePending DeliveryStage = "pending"
	// StageNotEvaluated marks records imported before evaluation tracking.
	StageNotEvaluated     DeliveryStage = "not_evaluated"
	StageEffortEvaluated  DeliveryStage = "effort_evaluated"
	StageDesignInProgress DeliveryStage = "design_in_progress"
	StageDesignCompleted  DeliveryStage = "design_completed"
	StageDeveloping       DeliveryStage = "developing"
	StageTesting          DeliveryStage = "testing"
	StageLive             DeliveryStage = "live"
)

// AllStages lists every valid delivery stage in workflow order.
var AllStages = []DeliveryStage{
	StagePending,
	StageNotEvaluated,
	StageEffortEvaluated,
	StageDesignInProgress,
	StageDesignCompleted,
	StageDeveloping,
	StageTesting,
	StageLive,
}

// IsValid reports whether the stage is one of the known values.
func (s DeliveryStage) IsValid() bool {
	for _, known := range AllStages {
		if s == known {
			return true
		}
	}
	return false
}

// IsReady reports whether a requirement in this stage may be scheduled
// into a sprint pool. Empty and unknown stages are not ready.
func (s DeliveryStage) IsReady() bool {
	switch s {
	case StageEffortEvaluated, StageDesignInProgress, StageDesignCompleted,
		StageDeveloping, StageTesting, StageLive:
		return true
	}
	return false
}

// NextStage returns the stage that follows the current one in the
// evaluation workflow, or "" when the stage is terminal or unknown.
// StageNotEvaluated is a legacy alias for StagePending and advances the
// same way.
func (s DeliveryStage) NextStage() DeliveryStage {
	switch s {
	case StagePending, StageNotEvaluated:
		return StageEffortEvaluated
	case StageEffortEvaluated:
		return StageDesignInProgress
	case StageDesignInProgress:
		return StageDesignCompleted
	case StageDesignCompleted:
		return StageDeveloping
	case StageDeveloping:
		return StageTesting
	case StageTesting:
		return StageLive
	}
	return ""
}
