package domain

import "strconv"

// FormatFixed renders value with exactly places digits after the decimal
// point. It never uses exponent notation or digit grouping.
func FormatFixed(value float64, places int) string {
	return strconv.FormatFloat(value, 'f', places, 64)
}
