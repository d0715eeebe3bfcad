package gravity

import "github.com/phrazzld/brewcalc/internal/domain"

// Field names reported by the textual entry points.
const (
	FieldOriginalGravity     = "original gravity value"
	FieldFinalGravity        = "final gravity value"
	FieldOriginalTemperature = "temperature of initial gravity sample"
	FieldFinalTemperature    = "temperature of final gravity sample"
	FieldGravity             = "gravity value"
	FieldTemperature         = "temperature value"
	FieldSpecificGravity     = "specific gravity value"
)

// readings holds one set of parsed ABV inputs.
type readings struct {
	og, fg, ot, ft float64
}

// parseReadings parses the ABV arguments in the order og, fg, ot, ft and
// stops at the first failure.
func parseReadings(og, fg, ot, ft string) (readings, error) {
	var r readings
	var err error

	if r.og, err = domain.ParseFloat(FieldOriginalGravity, og); err != nil {
		return r, err
	}
	if r.fg, err = domain.ParseFloat(FieldFinalGravity, fg); err != nil {
		return r, err
	}
	if r.ot, err = domain.ParseFloat(FieldOriginalTemperature, ot); err != nil {
		return r, err
	}
	if r.ft, err = domain.ParseFloat(FieldFinalTemperature, ft); err != nil {
		return r, err
	}
	return r, nil
}

// parseSample parses a gravity reading and the temperature it was taken at.
func parseSample(gravity, temp string) (float64, float64, error) {
	g, err := domain.ParseFloat(FieldGravity, gravity)
	if err != nil {
		return 0, 0, err
	}
	t, err := domain.ParseFloat(FieldTemperature, temp)
	if err != nil {
		return 0, 0, err
	}
	return g, t, nil
}

// ParseABVDaniels parses textual readings (temperatures in °F) and applies
// ABVDanielsAdjusted.
func ParseABVDaniels(og, fg, ot, ft string) (float64, error) {
	r, err := parseReadings(og, fg, ot, ft)
	if err != nil {
		return 0, err
	}
	return ABVDanielsAdjusted(r.og, r.fg, r.ot, r.ft), nil
}

// ParseABVPapazian parses textual readings (temperatures in °F) and applies
// ABVPapazianAdjusted.
func ParseABVPapazian(og, fg, ot, ft string) (float64, error) {
	r, err := parseReadings(og, fg, ot, ft)
	if err != nil {
		return 0, err
	}
	return ABVPapazianAdjusted(r.og, r.fg, r.ot, r.ft), nil
}

// ParseTempAdjustFahrenheit parses a gravity and a °F temperature and applies
// TempAdjustFahrenheit.
func ParseTempAdjustFahrenheit(gravity, tempF string) (float64, error) {
	g, t, err := parseSample(gravity, tempF)
	if err != nil {
		return 0, err
	}
	return TempAdjustFahrenheit(g, t), nil
}

// ParseTempAdjustCelsius parses a gravity and a °C temperature and applies
// TempAdjustCelsius.
func ParseTempAdjustCelsius(gravity, tempC string) (float64, error) {
	g, t, err := parseSample(gravity, tempC)
	if err != nil {
		return 0, err
	}
	return TempAdjustCelsius(g, t), nil
}

// ParseSpecificToPlato parses a specific gravity and applies SpecificToPlato.
func ParseSpecificToPlato(specificGravity string) (float64, error) {
	sg, err := domain.ParseFloat(FieldSpecificGravity, specificGravity)
	if err != nil {
		return 0, err
	}
	return SpecificToPlato(sg), nil
}
