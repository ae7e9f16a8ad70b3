package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-pass-gen/internal/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// withLogging writes one access log line per request. It logs the matched
// route pattern, never the request URI.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		start := time.Now()
		method := r.Method

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		duration := time.Since(start)

		log.Info().
			Str("route", routePattern(r)).
			Str("method", method).
			Int("status", ww.Status()).
			Dur("duration", duration).
			Int("size", ww.BytesWritten()).
			Send()
	})
}

// routePattern returns the pattern chi matched for r, or "unmatched".
func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return "unmatched"
	}

	if pattern := rctx.RoutePattern(); pattern != "" {
		return pattern
	}

	return "unmatched"
}
