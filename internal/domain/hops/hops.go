// Package hops converts between Alpha Acid Units and the weight of hops
// needed for a given alpha acid percentage.
package hops

import "github.com/phrazzld/brewcalc/internal/domain"

// Field names reported by the textual entry points.
const (
	FieldAAU = "AAU value"
	FieldAA  = "AA value"
)

// AAUToOuncesAA returns the ounces of hops at aa percent alpha acid that
// deliver aau Alpha Acid Units. A non-positive aa yields exactly 0.
func AAUToOuncesAA(aau, aa float64) float64 {
	if aa > 0 {
		return aau / aa
	}
	return 0.0
}

// OuncesToAAU returns the Alpha Acid Units contributed by ounces of hops at
// aa percent alpha acid.
func OuncesToAAU(ounces, aa float64) float64 {
	return ounces * aa
}

// ParseAAUToOuncesAA parses aau then aa and applies AAUToOuncesAA.
func ParseAAUToOuncesAA(aau, aa string) (float64, error) {
	units, err := domain.ParseFloat(FieldAAU, aau)
	if err != nil {
		return 0, err
	}
	alpha, err := domain.ParseFloat(FieldAA, aa)
	if err != nil {
		return 0, err
	}
	return AAUToOuncesAA(units, alpha), nil
}

// FormatOunces renders a hop weight with two decimal places.
func FormatOunces(value float64) string {
	return domain.FormatFixed(value, 2)
}
