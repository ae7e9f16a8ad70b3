package http

import (
	"net/http"

	"github.com/rs/cors"
)

// withCORS allows the configured origins (all origins when none are set) to
// call the API from a browser.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	origins := h.cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         3600,
	}).Handler
}
