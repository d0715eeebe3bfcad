package api

import "math"

// Query parameters for each endpoint. Numeric values stay textual and are
// not validated here: the calculation packages parse them left to right and
// name the first field that fails. Only selectors the calculation packages
// do not parse carry validate tags.

// CelsiusRequest is the query of GET /api/temperature/fahrenheit.
type CelsiusRequest struct {
	Celsius string `query:"celsius"`
}

// FahrenheitRequest is the query of GET /api/temperature/celsius.
type FahrenheitRequest struct {
	Fahrenheit string `query:"fahrenheit"`
}

// ABVRequest is the query of GET /api/gravity/abv.
type ABVRequest struct {
	Method string `query:"method"`
	OG     string `query:"og"`
	FG     string `query:"fg"`
	OT     string `query:"ot"`
	FT     string `query:"ft"`
}

// CorrectionRequest is the query of GET /api/gravity/correct.
type CorrectionRequest struct {
	Gravity     string `query:"gravity"`
	Temperature string `query:"temperature"`
	Unit        string `query:"unit" validate:"required"`
}

// PlatoRequest is the query of GET /api/gravity/plato.
type PlatoRequest struct {
	SG string `query:"sg"`
}

// HopsRequest is the query of GET /api/hops/ounces.
type HopsRequest struct {
	AAU string `query:"aau"`
	AA  string `query:"aa"`
}

// CalculationResponse is returned by every calculation endpoint.
type CalculationResponse struct {
	// Value is null when the result is NaN or infinite, which JSON cannot carry
	Value *float64 `json:"value"`

	// Formatted is the result with the fixed number of decimals for its kind
	Formatted string `json:"formatted"`

	Method string `json:"method,omitempty"`
	Unit   string `json:"unit,omitempty"`
}

// newCalculationResponse builds a response from a result and its formatter.
func newCalculationResponse(value float64, format func(float64) string) CalculationResponse {
	resp := CalculationResponse{Formatted: format(value)}
	if !math.IsNaN(value) && !math.IsInf(value, 0) {
		resp.Value = &value
	}
	return resp
}
