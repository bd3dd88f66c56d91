package api

import (
	"airport-distance-service/internal/api/handlers"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(service handlers.DistanceCalculator) http.Handler {
	r := chi.NewRouter()
	r.Use(
		requestIDMiddleware,
		middleware.RealIP,
		loggingMiddleware,
		middleware.Recoverer,
	)
	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	distanceHandler := &handlers.DistanceHandler{Service: service}

	r.Get("/health", handlers.Health)
	r.Get("/swagger/v1/swagger.json", handlers.OpenAPI)
	r.Get("/api/AirportDistance/{code1}/{code2}", distanceHandler.Get)

	return r
}
