package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-photo-gate/internal/logger"
	"github.com/go-chi/chi/v5"
)

// unmatchedRoute labels requests that did not match any route so that
// arbitrary paths never become metric label values.
const unmatchedRoute = "unmatched"

// withLogging writes one access log line per request and records its
// duration under the matched route pattern.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}
		duration := time.Since(start)

		route := unmatchedRoute
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		h.metrics.ObserveRequest(r.Method, route, status, duration)

		logger.FromRequest(r).Info().
			Str("uri", r.RequestURI).
			Str("method", r.Method).
			Str("route", route).
			Int("status", status).
			Dur("duration", duration).
			Int("size", lw.size).
			Send()
	})
}
