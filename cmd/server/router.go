package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/brewcalc/internal/api"
	apiMiddleware "github.com/phrazzld/brewcalc/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.NewTraceMiddleware(app.logger))

	calcHandler := api.NewCalcHandler(app.calculator, app.logger)

	r.Route("/api", func(r chi.Router) {
		r.Get("/temperature/fahrenheit", calcHandler.CelsiusToFahrenheit)
		r.Get("/temperature/celsius", calcHandler.FahrenheitToCelsius)

		r.Get("/gravity/abv", calcHandler.ABV)
		r.Get("/gravity/correct", calcHandler.CorrectGravity)
		r.Get("/gravity/plato", calcHandler.Plato)

		r.Get("/hops/ounces", calcHandler.HopOunces)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
