package gravity

import "github.com/phrazzld/brewcalc/internal/domain/temperature"

const (
	// DefaultCorrectionConstant is the gravity change per 10°F of deviation
	// from the reference temperature.
	DefaultCorrectionConstant = 0.003

	// ReferenceTemperatureF is the temperature, in °F, that corrected
	// gravities are expressed at.
	ReferenceTemperatureF = 60.0
)

// TempAdjustFahrenheit corrects a gravity reading taken at tempF to 60°F.
func TempAdjustFahrenheit(gravity, tempF float64) float64 {
	return TempAdjustFahrenheitWithConstant(gravity, tempF, DefaultCorrectionConstant)
}

// TempAdjustFahrenheitWithConstant corrects a gravity reading taken at tempF
// to 60°F, adding c for every 10°F above the reference.
func TempAdjustFahrenheitWithConstant(gravity, tempF, c float64) float64 {
	return gravity + ((tempF - ReferenceTemperatureF) / 10 * c)
}

// TempAdjustCelsius corrects a gravity reading taken at tempC.
func TempAdjustCelsius(gravity, tempC float64) float64 {
	return TempAdjustFahrenheit(gravity, temperature.CelsiusToFahrenheit(tempC))
}

// TempAdjustCelsiusWithConstant is TempAdjustCelsius with an explicit
// correction constant.
func TempAdjustCelsiusWithConstant(gravity, tempC, c float64) float64 {
	return TempAdjustFahrenheitWithConstant(gravity, temperature.CelsiusToFahrenheit(tempC), c)
}
