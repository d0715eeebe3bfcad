package gravity

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestABVPapazian(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		og   float64
		fg   float64
	}{
		{name: "typical ale", og: 1.050, fg: 1.010},
		{name: "strong beer", og: 1.090, fg: 1.018},
		{name: "no fermentation", og: 1.040, fg: 1.040},
		{name: "final above original", og: 1.010, fg: 1.020},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			k := 131.25
			assert.Equal(t, (tc.og-tc.fg)*k, ABVPapazian(tc.og, tc.fg))
		})
	}
}

func TestABVPapazianWithConstant(t *testing.T) {
	t.Parallel()

	og, fg := 1.060, 1.012
	for _, k := range []float64{0, 105, 131, 131.25, -1} {
		assert.Equal(t, (og-fg)*k, ABVPapazianWithConstant(og, fg, k))
	}
	assert.Equal(t, ABVPapazian(og, fg), ABVPapazianWithConstant(og, fg, DefaultPapazianConstant))
}

func TestABVDaniels(t *testing.T) {
	t.Parallel()

	og, fg := 1.050, 1.010
	expected := (76.08 * (og - fg) / (1.775 - og)) * (fg / 0.794)

	assert.Equal(t, expected, ABVDaniels(og, fg))
	assert.InDelta(t, 5.3394, ABVDaniels(og, fg), 1e-4)
}

func TestABVDanielsDivisionByZero(t *testing.T) {
	t.Parallel()

	assert.True(t, math.IsInf(ABVDaniels(1.775, 1.010), 1))
	assert.True(t, math.IsNaN(ABVDaniels(1.775, 1.775)))
}

func TestABVDanielsAdjusted(t *testing.T) {
	t.Parallel()

	// Readings at the reference temperature need no correction.
	assert.Equal(t, ABVDaniels(1.050, 1.010), ABVDanielsAdjusted(1.050, 1.010, 60, 60))

	og, fg, ot, ft := 1.060, 1.012, 75.0, 62.0
	correctedOG := og + ((ot - 60) / 10 * 0.003)
	correctedFG := fg + ((ft - 60) / 10 * 0.003)
	expected := (76.08 * (correctedOG - correctedFG) / (1.775 - correctedOG)) * (correctedFG / 0.794)

	abv := ABVDanielsAdjusted(og, fg, ot, ft)
	assert.Equal(t, expected, abv)
	assert.InDelta(t, 7.0875, abv, 1e-4)
	assert.Equal(t, "7.09", FormatABV(abv))
}

func TestABVPapazianAdjusted(t *testing.T) {
	t.Parallel()

	og, fg, ot, ft := 1.060, 1.012, 75.0, 62.0

	expected := ABVPapazian(TempAdjustFahrenheit(og, ot), TempAdjustFahrenheit(fg, ft))
	assert.Equal(t, expected, ABVPapazianAdjusted(og, fg, ot, ft))
	assert.Equal(t, ABVPapazian(og, fg), ABVPapazianAdjusted(og, fg, 60, 60))
}
