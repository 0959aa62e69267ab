package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wsjf/pkg/schema"
)

func req(id string, bv schema.BusinessValue, tc schema.TimeCriticality, deadline bool, effort float64) schema.Requirement {
	return schema.Requirement{
		ID:              id,
		Name:            "requirement " + id,
		BusinessValue:   bv,
		TimeCriticality: tc,
		HardDeadline:    deadline,
		EffortDays:      effort,
		DeliveryStage:   schema.StagePending,
	}
}

func TestComputeEmptyInput(t *testing.T) {
	out := Compute(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)

	out = Compute([]schema.Requirement{})
	require.NotNil(t, out)
	assert.Empty(t, out)
}

func TestComputeDoesNotMutateInput(t *testing.T) {
	in := []schema.Requirement{
		req("REQ-a", schema.BVLocal, schema.TCAnytime, false, 1),
		req("REQ-b", schema.BVStrategicPlatform, schema.TCMonthHardWindow, true, 2),
	}
	_ = Compute(in)
	assert.Zero(t, in[0].RawScore)
	assert.Zero(t, in[0].DisplayScore)
	assert.Zero(t, in[0].Stars)
}

func TestComputeDeterminism(t *testing.T) {
	in := []schema.Requirement{
		req("REQ-a", schema.BVVisible, schema.TCQuarterWindow, false, 10),
		req("REQ-b", schema.BVCoreLever, schema.TCAnytime, true, 3),
		req("REQ-c", schema.BVLocal, schema.TCMonthHardWindow, false, 40),
	}
	first := Compute(in)
	second := Compute(in)
	assert.Equal(t, first, second)
}

func TestEndToEndScenario(t *testing.T) {
	// Raw scores 28, 13 and 3; display 100, 46 and 10; stars 5, 2, 2.
	in := []schema.Requirement{
		req("REQ-top", schema.BVStrategicPlatform, schema.TCMonthHardWindow, true, 2),
		req("REQ-mid", schema.BVVisible, schema.TCAnytime, false, 5),
		req("REQ-low", schema.BVLocal, schema.TCAnytime, false, 200),
	}
	out := Compute(in)
	require.Len(t, out, 3)

	assert.Equal(t, 28, out[0].RawScore)
	assert.Equal(t, 13, out[1].RawScore)
	assert.Equal(t, 3, out[2].RawScore)

	assert.Equal(t, 100, out[0].DisplayScore)
	assert.Equal(t, 46, out[1].DisplayScore)
	assert.Equal(t, 10, out[2].DisplayScore)

	assert.Equal(t, 5, out[0].Stars)
	assert.Equal(t, 2, out[1].Stars)
	assert.Equal(t, 2, out[2].Stars)
}

func TestBatchRelativity(t *testing.T) {
	base := []schema.Requirement{
		req("REQ-top", schema.BVStrategicPlatform, schema.TCMonthHardWindow, true, 2),  // raw 28
		req("REQ-mid", schema.BVVisible, schema.TCAnytime, false, 5),                   // raw 13
		req("REQ-low", schema.BVLocal, schema.TCAnytime, false, 200),                   // raw 3
	}
	before := Compute(base)

	// A fourth requirement never changes existing raw scores, but display
	// scores are min/max-relative to the batch.
	extra := req("REQ-new", schema.BVCoreLever, schema.TCMonthHardWindow, false, 10) // raw 18
	after := Compute(append(base, extra))

	for i := range before {
		assert.Equal(t, before[i].RawScore, after[i].RawScore)
	}
	assert.Equal(t, before[0].DisplayScore, after[0].DisplayScore) // endpoints stay pinned
	assert.Equal(t, before[2].DisplayScore, after[2].DisplayScore)
	assert.Equal(t, 46, after[1].DisplayScore)
	assert.Equal(t, 64, after[3].DisplayScore) // round(10 + 90*15/25)
}

func TestFlatBatchFloor(t *testing.T) {
	for _, tier := range []schema.BusinessValue{schema.BVLocal, schema.BVStrategicPlatform} {
		in := []schema.Requirement{
			req("REQ-a", tier, schema.TCAnytime, false, 1),
			req("REQ-b", tier, schema.TCAnytime, false, 1),
			req("REQ-c", tier, schema.TCAnytime, false, 1),
		}
		out := Compute(in)
		for _, r := range out {
			assert.Equal(t, 60, r.DisplayScore, "tier %s", tier)
			assert.Equal(t, 3, r.Stars)
		}
	}
}

func TestSingleItemBatch(t *testing.T) {
	out := Compute([]schema.Requirement{
		req("REQ-solo", schema.BVCoreLever, schema.TCQuarterWindow, false, 7),
	})
	require.Len(t, out, 1)
	assert.Equal(t, 60, out[0].DisplayScore)
}

func TestStarThresholds(t *testing.T) {
	cases := []struct {
		display int
		stars   int
	}{
		{84, 4},
		{85, 5},
		{54, 2},
		{55, 3},
		{100, 5},
		{10, 2},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.stars, starsFor(tc.display), "display %d", tc.display)
	}
}

func TestEffortBonus(t *testing.T) {
	cases := []struct {
		days  float64
		bonus int
	}{
		{-5, 8}, // clamped to zero days
		{0, 8},
		{2, 8},
		{2.5, 7},
		{5, 7},
		{6, 5},
		{14, 5},
		{15, 3},
		{30, 3},
		{31, 2},
		{50, 2},
		{51, 1},
		{100, 1},
		{101, 0},
		{500, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.bonus, EffortBonus(tc.days), "days %v", tc.days)
	}
}

func TestRawScoreRange(t *testing.T) {
	low := Compute([]schema.Requirement{
		req("REQ-min", schema.BVLocal, schema.TCAnytime, false, 1000),
		req("REQ-max", schema.BVStrategicPlatform, schema.TCMonthHardWindow, true, 0),
	})
	assert.Equal(t, 3, low[0].RawScore)
	assert.Equal(t, 28, low[1].RawScore)
}

func TestUnknownInputsScoreAsLowestTier(t *testing.T) {
	out := Compute([]schema.Requirement{
		{ID: "REQ-legacy", Name: "legacy record", EffortDays: 200},
		req("REQ-max", schema.BVStrategicPlatform, schema.TCMonthHardWindow, true, 0),
	})
	assert.Equal(t, 3, out[0].RawScore)
}
