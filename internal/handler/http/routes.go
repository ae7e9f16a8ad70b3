package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Route patterns. They double as metric handler IDs.
const (
	routeServiceInfo      = "/api/"
	routeVersion          = "/api/version/"
	routeGenerate         = "/api/generate"
	routeGeneratePassword = "/api/generate/{pepper}/{word}"
	routeMetrics          = "/metrics"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withCORS())
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(middleware.Compress(5, "application/json", "text/plain"))

	router.With(h.instrument(routeServiceInfo)).Get(routeServiceInfo, h.getServiceInfo)
	router.With(h.instrument(routeVersion)).Get(routeVersion, h.getServerVersion)
	router.With(h.instrument(routeGenerate)).Post(routeGenerate, h.generate)
	router.With(h.instrument(routeGeneratePassword)).Get(routeGeneratePassword, h.generatePassword)

	if h.metrics != nil {
		router.Method(http.MethodGet, routeMetrics, h.metrics.ExpositionHandler())
	}

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}

func (h *Handler) instrument(handlerID string) func(http.Handler) http.Handler {
	if h.metrics == nil {
		return func(next http.Handler) http.Handler { return next }
	}

	return h.metrics.HandlerID(handlerID)
}
