package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withRequestID, h.withLogging, withGZip)

	// client id only
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/V3/Authenticate", h.authenticate)
		r.Get("/ParseRussianAddress", h.parseRussianAddress)
	})

	// client id and user token
	router.Group(func(r chi.Router) {
		r.Use(h.auth, h.requireToken)
		r.Post("/GenerateTitleXml", h.generateTitleXml)
		r.Post("/V3/PostMessage", h.postMessage)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
