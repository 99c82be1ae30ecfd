package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Get("/api/version/", h.getServerVersion)
	router.Method("GET", "/metrics", h.metrics.Handler())

	// photo routes need the submitter and the reason session
	router.Group(func(r chi.Router) {
		r.Use(h.identify, h.withSession)

		r.Post("/api/photos/submit", h.submit)
		r.Get("/api/photos/notice", h.notice)
		r.Get("/api/photos/eligibility", h.eligibility)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
