package gravity

// DefaultPapazianConstant is the multiplier applied to the gravity drop in
// the Papazian ABV formula.
const DefaultPapazianConstant = 131.25

// ABVDaniels estimates ABV with the Daniels formula.
// The result is ±Inf or NaN when og is 1.775.
func ABVDaniels(og, fg float64) float64 {
	return (76.08 * (og - fg) / (1.775 - og)) * (fg / 0.794)
}

// ABVDanielsAdjusted corrects og and fg from their sample temperatures
// (°F) to 60°F and then applies the Daniels formula.
func ABVDanielsAdjusted(og, fg, ot, ft float64) float64 {
	return ABVDaniels(TempAdjustFahrenheit(og, ot), TempAdjustFahrenheit(fg, ft))
}

// ABVPapazian estimates ABV as (og - fg) * 131.25.
func ABVPapazian(og, fg float64) float64 {
	return ABVPapazianWithConstant(og, fg, DefaultPapazianConstant)
}

// ABVPapazianWithConstant estimates ABV as (og - fg) * k, for regional
// variants of the formula.
func ABVPapazianWithConstant(og, fg, k float64) float64 {
	return (og - fg) * k
}

// ABVPapazianAdjusted corrects og and fg from their sample temperatures
// (°F) to 60°F and then applies the Papazian formula.
func ABVPapazianAdjusted(og, fg, ot, ft float64) float64 {
	return ABVPapazian(TempAdjustFahrenheit(og, ot), TempAdjustFahrenheit(fg, ft))
}
