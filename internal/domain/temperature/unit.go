package temperature

import (
	"errors"
	"fmt"
	"strings"
)

// Unit names a temperature scale. It lets callers that collect the scale
// alongside a reading choose which function to call.
type Unit string

// Valid temperature units.
const (
	Fahrenheit Unit = "F"
	Celsius    Unit = "C"
)

// ErrInvalidUnit is returned when a unit name is not recognised.
var ErrInvalidUnit = errors.New("invalid temperature unit")

// ParseUnit accepts "F", "C", "fahrenheit" or "celsius" in any case.
// Any other value, including an empty one, is ErrInvalidUnit.
func ParseUnit(s string) (Unit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "f", "fahrenheit":
		return Fahrenheit, nil
	case "c", "celsius":
		return Celsius, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
}

// String implements fmt.Stringer.
func (u Unit) String() string {
	return string(u)
}
