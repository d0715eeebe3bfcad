package gravity

import "github.com/phrazzld/brewcalc/internal/domain"

// FormatGravity renders a gravity with three decimal places.
func FormatGravity(value float64) string {
	return domain.FormatFixed(value, 3)
}

// FormatABV renders an ABV percentage with two decimal places.
func FormatABV(value float64) string {
	return domain.FormatFixed(value, 2)
}

// FormatPlato renders degrees Plato with two decimal places.
func FormatPlato(value float64) string {
	return domain.FormatFixed(value, 2)
}
