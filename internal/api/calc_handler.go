package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/brewcalc/internal/api/shared"
	"github.com/phrazzld/brewcalc/internal/domain/gravity"
	"github.com/phrazzld/brewcalc/internal/domain/hops"
	"github.com/phrazzld/brewcalc/internal/domain/temperature"
	"github.com/phrazzld/brewcalc/internal/platform/logger"
)

// CalcHandler handles the calculation endpoints
type CalcHandler struct {
	gravity gravity.Calculator
	logger  *slog.Logger
}

// NewCalcHandler creates a new CalcHandler
func NewCalcHandler(calculator gravity.Calculator, logger *slog.Logger) *CalcHandler {
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CalcHandler")
	}
	if calculator == nil {
		calculator = gravity.NewDefaultCalculator()
	}

	return &CalcHandler{
		gravity: calculator,
		logger:  logger.With(slog.String("component", "calc_handler")),
	}
}

// CelsiusToFahrenheit handles GET /api/temperature/fahrenheit?celsius=
func (h *CalcHandler) CelsiusToFahrenheit(w http.ResponseWriter, r *http.Request) {
	req := CelsiusRequest{Celsius: r.URL.Query().Get("celsius")}

	value, err := temperature.ParseCelsiusToFahrenheit(req.Celsius)
	if err != nil {
		h.fail(w, r, "celsius_to_fahrenheit", err)
		return
	}

	resp := newCalculationResponse(value, temperature.Format)
	resp.Unit = temperature.Fahrenheit.String()
	h.succeed(w, r, "celsius_to_fahrenheit", resp)
}

// FahrenheitToCelsius handles GET /api/temperature/celsius?fahrenheit=
func (h *CalcHandler) FahrenheitToCelsius(w http.ResponseWriter, r *http.Request) {
	req := FahrenheitRequest{Fahrenheit: r.URL.Query().Get("fahrenheit")}

	value, err := temperature.ParseFahrenheitToCelsius(req.Fahrenheit)
	if err != nil {
		h.fail(w, r, "fahrenheit_to_celsius", err)
		return
	}

	resp := newCalculationResponse(value, temperature.Format)
	resp.Unit = temperature.Celsius.String()
	h.succeed(w, r, "fahrenheit_to_celsius", resp)
}

// ABV handles GET /api/gravity/abv?method=&og=&fg=&ot=&ft=
// Sample temperatures are in °F.
func (h *CalcHandler) ABV(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := ABVRequest{
		Method: q.Get("method"),
		OG:     q.Get("og"),
		FG:     q.Get("fg"),
		OT:     q.Get("ot"),
		FT:     q.Get("ft"),
	}

	method, err := gravity.ParseMethod(req.Method)
	if err != nil {
		h.fail(w, r, "abv", err)
		return
	}

	value, err := h.gravity.ABV(method, req.OG, req.FG, req.OT, req.FT)
	if err != nil {
		h.fail(w, r, "abv", err)
		return
	}

	resp := newCalculationResponse(value, gravity.FormatABV)
	resp.Method = string(method)
	h.succeed(w, r, "abv", resp)
}

// CorrectGravity handles GET /api/gravity/correct?gravity=&temperature=&unit=
// The unit is required; the sample temperature scale is never assumed.
func (h *CalcHandler) CorrectGravity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := CorrectionRequest{
		Gravity:     q.Get("gravity"),
		Temperature: q.Get("temperature"),
		Unit:        q.Get("unit"),
	}
	if !h.validate(w, r, req) {
		return
	}

	unit, err := temperature.ParseUnit(req.Unit)
	if err != nil {
		h.fail(w, r, "gravity_correction", err)
		return
	}

	value, err := h.gravity.Correct(unit, req.Gravity, req.Temperature)
	if err != nil {
		h.fail(w, r, "gravity_correction", err)
		return
	}

	resp := newCalculationResponse(value, gravity.FormatGravity)
	resp.Unit = unit.String()
	h.succeed(w, r, "gravity_correction", resp)
}

// Plato handles GET /api/gravity/plato?sg=
func (h *CalcHandler) Plato(w http.ResponseWriter, r *http.Request) {
	req := PlatoRequest{SG: r.URL.Query().Get("sg")}

	value, err := h.gravity.Plato(req.SG)
	if err != nil {
		h.fail(w, r, "plato", err)
		return
	}

	h.succeed(w, r, "plato", newCalculationResponse(value, gravity.FormatPlato))
}

// HopOunces handles GET /api/hops/ounces?aau=&aa=
func (h *CalcHandler) HopOunces(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	req := HopsRequest{AAU: q.Get("aau"), AA: q.Get("aa")}

	value, err := hops.ParseAAUToOuncesAA(req.AAU, req.AA)
	if err != nil {
		h.fail(w, r, "hop_ounces", err)
		return
	}

	h.succeed(w, r, "hop_ounces", newCalculationResponse(value, hops.FormatOunces))
}

// validate checks the query struct and writes a 400 response on failure.
func (h *CalcHandler) validate(w http.ResponseWriter, r *http.Request, req interface{}) bool {
	if err := shared.ValidateRequest(req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}
	return true
}

func (h *CalcHandler) fail(w http.ResponseWriter, r *http.Request, operation string, err error) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Debug("calculation rejected",
		slog.String("operation", operation),
		slog.String("error", err.Error()))

	shared.RespondWithErrorAndLog(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
}

func (h *CalcHandler) succeed(
	w http.ResponseWriter,
	r *http.Request,
	operation string,
	resp CalculationResponse,
) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Debug("calculation completed",
		slog.String("operation", operation),
		slog.String("result", resp.Formatted))

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
