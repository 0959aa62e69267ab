// Package scoring implements the WSJF batch scorer.
//
// Each requirement gets a raw score, the sum of four weighted dimensions:
// business value tier, time-criticality window, a hard-deadline bonus, and
// an effort bonus that rewards small slices. Raw scores are then rescaled
// to a 10-100 display score relative to the minimum and maximum of the
// current batch, and bucketed into 2-5 stars. Display scores are
// deliberately batch-relative: re-scoring a different universe changes
// every display score even though raw scores are stable.
package scoring

import (
	"math"

	"wsjf/pkg/schema"
)

const (
	hardDeadlineBonus = 5

	// flatBatchScore is the display score when every raw score in the
	// batch is equal, including the single-item case.
	flatBatchScore = 60

	displayFloor = 10
	displaySpan  = 90
)

// Compute scores the entire requirement universe. The input must be the
// full current set (backlog plus every pool); scoring a subset would skew
// the batch-relative normalization. The input slice is not mutated; a new
// slice with score fields populated is returned. Empty input yields an
// empty, non-nil slice.
func Compute(reqs []schema.Requirement) []schema.Requirement {
	out := make([]schema.Requirement, len(reqs))
	copy(out, reqs)
	if len(out) == 0 {
		return out
	}

	minRaw := math.MaxInt
	maxRaw := math.MinInt
	for i := range out {
		out[i].RawScore = rawScore(&out[i])
		if out[i].RawScore < minRaw {
			minRaw = out[i].RawScore
		}
		if out[i].RawScore > maxRaw {
			maxRaw = out[i].RawScore
		}
	}

	for i := range out {
		display := flatBatchScore
		if maxRaw != minRaw {
			display = int(math.Round(
				displayFloor + displaySpan*float64(out[i].RawScore-minRaw)/float64(maxRaw-minRaw)))
		}
		out[i].DisplayScore = display
		out[i].Stars = starsFor(display)
	}

	return out
}

// rawScore sums the weighted dimensions. Range is 3-28: the lowest tier
// scores 3 and the zero-effort bonus tops out at 8.
func rawScore(r *schema.Requirement) int {
	ddl := 0
	if r.HardDeadline {
		ddl = hardDeadlineBonus
	}
	return r.BusinessValue.Score() + r.TimeCriticality.Score() + ddl + EffortBonus(r.EffortDays)
}

// EffortBonus returns the small-slice bonus for an effort estimate.
// Negative and NaN inputs are clamped to zero days first.
func EffortBonus(days float64) int {
	if math.IsNaN(days) || days < 0 {
		days = 0
	}
	switch {
	case days <= 2:
		return 8
	case days <= 5:
		return 7
	case days <= 14:
		return 5
	case days <= 30:
		return 3
	case days <= 50:
		return 2
	case days <= 100:
		return 1
	default:
		return 0
	}
}

// starsFor buckets a display score into a 2-5 star tier. The floor is 2
// because normalization never yields a display score below 10.
func starsFor(display int) int {
	switch {
	case display >= 85:
		return 5
	case display >= 70:
		return 4
	case display >= 55:
		return 3
	default:
		return 2
	}
}
