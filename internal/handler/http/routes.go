package http

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID, h.withLogging, withGZip, h.withRecovery)

	router.Get("/api/version/", h.getServerVersion)

	// /<bucket>/<folder>/.../<image>
	router.Get("/*", h.render)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
