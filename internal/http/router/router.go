// Package router wires middleware and handlers into the service's
// http.Handler.
package router

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aanand-mishra/student-service/internal/http/handlers/health"
	"github.com/aanand-mishra/student-service/internal/http/handlers/student"
	"github.com/aanand-mishra/student-service/internal/http/middleware"
	"github.com/aanand-mishra/student-service/internal/metrics"
	"github.com/aanand-mishra/student-service/internal/storage"
)

// Deps groups everything New needs.
type Deps struct {
	Storage      storage.Storage
	Logger       *slog.Logger
	Collector    *metrics.Collector
	Gatherer     prometheus.Gatherer
	MaxBodyBytes int64
}

// New returns the router for the service.
//
// Middleware order, outermost first:
//
//	Logging → Metrics → Recovery → CORS → BodyLimit
//
// so a recovered panic is still logged and counted as a 500.
//
// Routes:
//
//	GET  /               liveness
//	POST /students       create a student
//	GET  /students       list all students
//	GET  /students/{id}  fetch one student
//	GET  /metrics        Prometheus scrape
func New(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.NewLoggingMiddleware(deps.Logger))
	r.Use(middleware.NewMetricsMiddleware(deps.Collector))
	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewCORSMiddleware())
	r.Use(middleware.NewBodyLimitMiddleware(deps.MaxBodyBytes))

	r.Get("/", health.Liveness())

	r.Route("/students", func(r chi.Router) {
		r.Post("/", student.New(deps.Storage))
		r.Get("/", student.GetList(deps.Storage))
		r.Get("/{id}", student.GetByID(deps.Storage))
	})

	r.Method(http.MethodGet, "/metrics", metrics.Handler(deps.Gatherer))

	return r
}
