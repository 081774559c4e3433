// internal/app/features/sessions/view.go
package sessions

import (
	"errors"
	"net/http"

	sessionstore "github.com/dalemusser/pokerhub/internal/app/store/sessions"
	"github.com/dalemusser/pokerhub/internal/app/system/apierr"
	"github.com/dalemusser/pokerhub/internal/app/system/normalize"
	"github.com/go-chi/chi/v5"
)

// ServeView handles GET /api/sessions/{id}.
func (h *Handler) ServeView(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	id, ok := normalize.ObjectID(raw)
	if !ok {
		apierr.Write(w, r, h.Log, "sessions.view", apierr.Invalid("Invalid session ID: %s", raw))
		return
	}

	ctx, cancel := h.Timeouts.ShortCtx(r.Context())
	defer cancel()

	sess, err := h.Sessions.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sessionstore.ErrNotFound) {
			err = apierr.NotFoundf("Session not found")
		} else {
			err = apierr.StoreFailure(err, "Failed to load session")
		}
		apierr.Write(w, r, h.Log, "sessions.view", err)
		return
	}
	apierr.WriteJSON(w, http.StatusOK, sess)
}
