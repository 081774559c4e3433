// internal/app/features/users/routes.go
package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// Routes mounts the users API under the path where the caller mounts it.
// Typically: r.Mount("/api/users", users.Routes(h, createLimit))
//
// createLimit wraps POST only; pass nil for no limiting.
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
