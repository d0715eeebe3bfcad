package gravity

// SpecificToPlato converts specific gravity to degrees Plato. Non-positive
// input yields exactly 0.
func SpecificToPlato(specificGravity float64) float64 {
	if specificGravity > 0 {
		return (specificGravity - 1) * 1000 / 4
	}
	return 0.0
}
