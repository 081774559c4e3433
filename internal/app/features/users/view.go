// internal/app/features/users/view.go
package users

import (
	"errors"
	"net/http"

	userstore "github.com/dalemusser/pokerhub/internal/app/store/users"
	"github.com/dalemusser/pokerhub/internal/app/system/apierr"
	"github.com/dalemusser/pokerhub/internal/app/system/normalize"
	"github.com/go-chi/chi/v5"
)

// ServeView handles GET /api/users/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, ok := normalize.ObjectID(raw)
	if !ok {
		apierr.Write(w, r, h.Log, "users.view", apierr.Invalid("Invalid user ID: %s", raw))
		return
	}

	ctx, cancel := h.Timeouts.ShortCtx(r.Context())
	defer cancel()

	u, err := h.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, userstore.ErrNotFound) {
			err = apierr.NotFoundf("User not found")
		} else {
			err = apierr.StoreFailure(err, "Failed to load user")
		}
		apierr.Write(w, r, h.Log, "users.view", err)
		return
	}
	apierr.WriteJSON(w, http.StatusOK, u)
}
