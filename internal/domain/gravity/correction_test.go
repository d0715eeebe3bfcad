package gravity

import (
	"testing"

	"github.com/phrazzld/brewcalc/internal/domain/temperature"
	"github.com/stretchr/testify/assert"
)

func TestTempAdjustFahrenheitIdentityAtReference(t *testing.T) {
	t.Parallel()

	for _, g := range []float64{0.98, 1.0, 1.048, 1.2, 0, -1} {
		assert.Equal(t, g, TempAdjustFahrenheit(g, 60))
	}
}

func TestTempAdjustFahrenheit(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		gravity float64
		temp    float64
	}{
		{name: "warm sample", gravity: 1.050, temp: 80},
		{name: "cold sample", gravity: 1.050, temp: 40},
		{name: "hot wort", gravity: 1.060, temp: 150},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := 0.003
			assert.Equal(t, tc.gravity+((tc.temp-60)/10*c), TempAdjustFahrenheit(tc.gravity, tc.temp))
		})
	}

	assert.InDelta(t, 1.056, TempAdjustFahrenheit(1.050, 80), 1e-12)
	assert.InDelta(t, 1.044, TempAdjustFahrenheit(1.050, 40), 1e-12)
}

func TestTempAdjustFahrenheitWithConstant(t *testing.T) {
	t.Parallel()

	g, temp := 1.040, 72.0
	for _, c := range []float64{0.001, 0.003, 0.0045} {
		assert.Equal(t, g+((temp-60)/10*c), TempAdjustFahrenheitWithConstant(g, temp, c))
	}
}

func TestTempAdjustCelsius(t *testing.T) {
	t.Parallel()

	for _, g := range []float64{1.010, 1.050} {
		for _, c := range []float64{-5, 0, 15.5556, 20, 65} {
			assert.Equal(t,
				TempAdjustFahrenheit(g, temperature.CelsiusToFahrenheit(c)),
				TempAdjustCelsius(g, c))
			assert.Equal(t,
				TempAdjustFahrenheitWithConstant(g, temperature.CelsiusToFahrenheit(c), 0.002),
				TempAdjustCelsiusWithConstant(g, c, 0.002))
		}
	}
}
