// internal/app/features/sessions/list.go
package sessions

import (
	"net/http"

	sessionstore "github.com/dalemusser/pokerhub/internal/app/store/sessions"
	"github.com/dalemusser/pokerhub/internal/app/system/apierr"
	"github.com/dalemusser/pokerhub/internal/app/system/inputval"
	"github.com/dalemusser/pokerhub/internal/app/system/normalize"
	"github.com/dalemusser/pokerhub/internal/app/system/paging"
	"github.com/dalemusser/pokerhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

// listFilter reads the list query. Malformed facilitator ids and values
// outside the allowed sets are ignored rather than rejected.
func listFilter(r *http.Request) sessionstore.Filter {
	var f sessionstore.Filter
	if id, ok := normalize.ObjectID(query.Get(r, "facilitator")); ok {
		f.Facilitator = &id
	}
	if s := query.Get(r, "status"); inputval.OneOf(s, models.SessionStatuses) {
		f.Status = s
	}
	if v := query.Get(r, "visibility"); inputval.OneOf(v, models.Visibilities) {
		f.Visibility = v
	}
	f.AccessCode = query.Get(r, "accessCode")
	return f
}

// ServeList handles GET /api/sessions. Facilitator and participant
// references are returned as ids.
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := listFilter(r)
	pg := paging.Parse(r)

	ctx, cancel := h.Timeouts.MediumCtx(r.Context())
	defer cancel()

	list, total, err := h.Sessions.List(ctx, f, pg)
	if err != nil {
		apierr.Write(w, r, h.Log, "sessions.list", apierr.StoreFailure(err, "Failed to list sessions"))
		return
	}
	if list == nil {
		list = []models.Session{}
	}
	apierr.WriteJSON(w, http.StatusOK, listResponse{Sessions: list, Pagination: pg.Of(total)})
}
