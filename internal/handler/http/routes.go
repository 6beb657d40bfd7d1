package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// proxy collaborator
	router.Post("/api/bluebook", h.proxy)

	// tools
	router.Group(func(r chi.Router) {
		r.Post("/api/value", h.deriveValue)
		r.Post("/api/value/analyze", h.analyzeValue)
		r.Post("/api/decrypt", h.decrypt)
		r.Get("/api/decrypt/hypotheses", h.listHypotheses)
		r.Get("/api/version", h.getServerVersion)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
