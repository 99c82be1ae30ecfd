package http

import (
	"net/http"

	"github.com/google/uuid"
)

const (
	traceIDHeader    = "X-Trace-ID"
	maxTraceIDLength = 128
)

// withTraceID accepts the caller's X-Trace-ID when it is present and short
// enough, otherwise mints one. The id is echoed back and stamped on every
// log entry of the request.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" || len(traceID) > maxTraceIDLength {
			traceID = uuid.NewString()
		}

		w.Header().Set(traceIDHeader, traceID)
		ctx := h.logger.WithTraceID(traceID).WithContext(r.Context())
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
