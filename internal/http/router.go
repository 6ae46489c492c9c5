package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shark-ai/internal/handlers"
	"shark-ai/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	RelayService service.RelayService
	// CallStore serves /api/calls; nil disables the endpoint.
	CallStore handlers.CallLister
	// MetricsGatherer serves /metrics; nil disables the endpoint.
	MetricsGatherer prometheus.Gatherer
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(CORS)
	r.Use(LoggerMiddleware)
	r.Use(RequestLogger)

	relayHandler := handlers.NewRelayHandler(deps.RelayService)
	healthHandler := handlers.NewHealthHandler()

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodGet, "/health", healthHandler)
		r.Method(http.MethodPost, "/ai", relayHandler)
		if deps.CallStore != nil {
			r.Method(http.MethodGet, "/calls", handlers.NewCallsHandler(deps.CallStore))
		}
	})

	if deps.MetricsGatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(deps.MetricsGatherer, promhttp.HandlerOpts{}))
	}

	return r
}
