// internal/app/features/sessions/create.go
package sessions

import (
	"net/http"

	"github.com/dalemusser/pokerhub/internal/app/system/apierr"
	"github.com/dalemusser/pokerhub/internal/app/system/jsonbody"
	"go.uber.org/zap"
)

// HandleCreate handles POST /api/sessions. The session and all of its
// stories and votes are written as one document.
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in sessionInput
	if err := jsonbody.Decode(w, r, h.MaxBody, &in); err != nil {
		apierr.Write(w, r, h.Log, "sessions.create", err)
		return
	}
	if err := validateSession(in); err != nil {
		apierr.Write(w, r, h.Log, "sessions.create", err)
		return
	}
	sess := normalizeSession(in, h.Now())

	ctx, cancel := h.Timeouts.ShortCtx(r.Context())
	defer cancel()

	created, err := h.Sessions.Create(ctx, sess)
	if err != nil {
		apierr.Write(w, r, h.Log, "sessions.create", apierr.StoreFailure(err, "Failed to create session"))
		return
	}

	h.Log.Info("session created",
		zap.String("id", created.ID.Hex()),
		zap.String("estimation_type", created.EstimationType),
		zap.Int("stories", len(created.UserStories)))
	apierr.WriteJSON(w, http.StatusOK, created)
}
