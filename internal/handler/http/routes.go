package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RealIP)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)
	router.Use(withGZip)

	// routes without authorization
	router.Get("/api/version", h.getServerVersion)

	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/notes", h.createNote)
		r.Get("/api/notes/search", h.searchNotes)
		r.Get("/api/notes/suggest", h.suggest)
		r.Get("/api/notes/tags/popular", h.popularTags)

		r.Get("/api/notes/{id}", h.getNote)
		r.Patch("/api/notes/{id}", h.updateNote)
		r.Delete("/api/notes/{id}", h.deleteNote)
		r.Post("/api/notes/{id}/share", h.shareNote)
		r.Post("/api/notes/{id}/unshare", h.unshareNote)
		r.Get("/api/notes/{id}/audit", h.auditTrail)

		r.Get("/api/sessions/{id}/notes", h.listSessionNotes)
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	return router
}
