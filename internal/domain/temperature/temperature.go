// Package temperature converts temperatures between the Celsius and
// Fahrenheit scales. The unit of every value is fixed by the function it is
// passed to; nothing is inferred.
package temperature

import "github.com/phrazzld/brewcalc/internal/domain"

// Field names reported by the textual entry points.
const (
	FieldCelsius    = "Celsius temperature"
	FieldFahrenheit = "Fahrenheit temperature"
)

// CelsiusToFahrenheit converts degrees Celsius to degrees Fahrenheit.
func CelsiusToFahrenheit(celsius float64) float64 {
	return 1.8*celsius + 32.0
}

// CelsiusToFahrenheitInt widens an integer Celsius reading and converts it.
func CelsiusToFahrenheitInt(celsius int) float64 {
	return CelsiusToFahrenheit(float64(celsius))
}

// FahrenheitToCelsius converts degrees Fahrenheit to degrees Celsius.
func FahrenheitToCelsius(fahrenheit float64) float64 {
	return (5.0 / 9.0) * (fahrenheit - 32.0)
}

// ParseCelsiusToFahrenheit parses a Celsius reading and converts it.
func ParseCelsiusToFahrenheit(celsius string) (float64, error) {
	c, err := domain.ParseFloat(FieldCelsius, celsius)
	if err != nil {
		return 0, err
	}
	return CelsiusToFahrenheit(c), nil
}

// ParseFahrenheitToCelsius parses a Fahrenheit reading and converts it.
func ParseFahrenheitToCelsius(fahrenheit string) (float64, error) {
	f, err := domain.ParseFloat(FieldFahrenheit, fahrenheit)
	if err != nil {
		return 0, err
	}
	return FahrenheitToCelsius(f), nil
}

// Format renders a temperature with one decimal place.
func Format(value float64) string {
	return domain.FormatFixed(value, 1)
}
