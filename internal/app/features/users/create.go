// internal/app/features/users/create.go
package users

import (
	"errors"
	"net/http"

	userstore "github.com/dalemusser/pokerhub/internal/app/store/users"
	"github.com/dalemusser/pokerhub/internal/app/system/apierr"
	"github.com/dalemusser/pokerhub/internal/app/system/jsonbody"
	"go.uber.org/zap"
)

// HandleCreate handles POST /api/users.
//
// On success: 200 and the stored user (password and token are never
// serialized).
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var in userInput
	if err := jsonbody.Decode(w, r, h.MaxBody, &in); err != nil {
		apierr.Write(w, r, h.Log, "users.create", err)
		return
	}
	if err := validateUser(in); err != nil {
		apierr.Write(w, r, h.Log, "users.create", err)
		return
	}
	u, err := normalizeUser(in, h.Now(), h.HashCost)
	if err != nil {
		apierr.Write(w, r, h.Log, "users.create", err)
		return
	}

	ctx, cancel := h.Timeouts.ShortCtx(r.Context())
	defer cancel()

	created, err := h.Users.Create(ctx, u)
	if err != nil {
		if errors.Is(err, userstore.ErrDuplicateEmail) {
			err = apierr.Conflictf(err, "email already registered: %s", u.Email)
		} else {
			err = apierr.StoreFailure(err, "Failed to create user")
		}
		apierr.Write(w, r, h.Log, "users.create", err)
		return
	}

	h.Log.Info("user created", zap.String("id", created.ID.Hex()), zap.Strings("roles", created.Roles))
	apierr.WriteJSON(w, http.StatusOK, created)
}
