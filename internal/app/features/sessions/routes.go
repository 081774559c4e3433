// internal/app/features/sessions/routes.go
package sessions

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the sessions API. Typically:
// r.Mount("/api/sessions", sessions.Routes(h, createLimit))
func Routes(h *Handler, createLimit func(http.Handler) http.Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeView)

	r.Group(func(wr chi.Router) {
		if createLimit != nil {
			wr.Use(createLimit)
		}
		wr.Post("/", h.HandleCreate)
	})

	return r
}
