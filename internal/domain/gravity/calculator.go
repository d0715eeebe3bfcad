package gravity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/phrazzld/brewcalc/internal/domain/temperature"
)

// Method selects an ABV formula family.
type Method string

// Valid ABV methods.
const (
	MethodDaniels  Method = "daniels"
	MethodPapazian Method = "papazian"
)

// ErrInvalidMethod is returned when an ABV method name is not recognised.
var ErrInvalidMethod = errors.New("invalid ABV method")

// ParseMethod resolves a method name case-insensitively. An empty name
// selects the Daniels formula.
func ParseMethod(s string) (Method, error) {
	switch Method(strings.ToLower(strings.TrimSpace(s))) {
	case "", MethodDaniels:
		return MethodDaniels, nil
	case MethodPapazian:
		return MethodPapazian, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMethod, s)
	}
}

// Calculator applies a set of Params to textual inputs. Argument order and
// field names match the package-level Parse functions, and with default
// params every result is identical to theirs.
type Calculator interface {
	// ABV parses og, fg and their °F sample temperatures and estimates ABV
	// with the given method
	ABV(method Method, og, fg, ot, ft string) (float64, error)

	// Correct parses a gravity and its sample temperature in unit and
	// corrects it to 60°F
	Correct(unit temperature.Unit, gravity, temp string) (float64, error)

	// Plato parses a specific gravity and converts it to degrees Plato
	Plato(specificGravity string) (float64, error)

	// Params returns the constants in use
	Params() Params
}

// defaultCalculator is the standard implementation of the Calculator interface
type defaultCalculator struct {
	params *Params
}

// NewDefaultCalculator creates a new Calculator with default parameters
func NewDefaultCalculator() Calculator {
	return &defaultCalculator{
		params: NewDefaultParams(),
	}
}

// NewCalculatorWithParams creates a new Calculator with custom parameters.
// A nil params uses the defaults.
func NewCalculatorWithParams(params *Params) Calculator {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultCalculator{
		params: params,
	}
}

// ABV implements the Calculator interface
func (c *defaultCalculator) ABV(method Method, og, fg, ot, ft string) (float64, error) {
	switch method {
	case MethodDaniels, MethodPapazian:
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidMethod, string(method))
	}

	r, err := parseReadings(og, fg, ot, ft)
	if err != nil {
		return 0, err
	}

	correctedOG := TempAdjustFahrenheitWithConstant(r.og, r.ot, c.params.CorrectionConstant)
	correctedFG := TempAdjustFahrenheitWithConstant(r.fg, r.ft, c.params.CorrectionConstant)

	if method == MethodPapazian {
		return ABVPapazianWithConstant(correctedOG, correctedFG, c.params.PapazianConstant), nil
	}
	return ABVDaniels(correctedOG, correctedFG), nil
}

// Correct implements the Calculator interface
func (c *defaultCalculator) Correct(unit temperature.Unit, gravity, temp string) (float64, error) {
	switch unit {
	case temperature.Fahrenheit, temperature.Celsius:
	default:
		return 0, fmt.Errorf("%w: %q", temperature.ErrInvalidUnit, string(unit))
	}

	g, t, err := parseSample(gravity, temp)
	if err != nil {
		return 0, err
	}

	if unit == temperature.Celsius {
		return TempAdjustCelsiusWithConstant(g, t, c.params.CorrectionConstant), nil
	}
	return TempAdjustFahrenheitWithConstant(g, t, c.params.CorrectionConstant), nil
}

// Plato implements the Calculator interface
func (c *defaultCalculator) Plato(specificGravity string) (float64, error) {
	return ParseSpecificToPlato(specificGravity)
}

// Params implements the Calculator interface
func (c *defaultCalculator) Params() Params {
	return *c.params
}
