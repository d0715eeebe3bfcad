// Package gravity estimates alcohol by volume from original and final
// gravity readings, corrects gravity readings for sample temperature, and
// converts specific gravity to degrees Plato.
//
// Two ABV formula families are provided (Daniels and Papazian); they are
// never combined. Every temperature-aware function corrects its gravities to
// the 60°F reference with TempAdjustFahrenheit before applying the base
// formula. Degenerate inputs are not guarded: a division by zero in the
// Daniels formula yields ±Inf or NaN, which callers must be prepared for.
package gravity
