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
	router.Use(withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/passwords/policies", h.policies)
	})

	// routes keyed by the chat user from the bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/passwords/generate", h.generate)

		r.Route("/api/credentials", func(r chi.Router) {
			r.Post("/", h.saveCredential)
			r.Get("/", h.listCredentials)
			r.Delete("/", h.deleteCredentials)
			r.Get("/exists", h.credentialExists)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
