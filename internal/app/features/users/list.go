// internal/app/features/users/list.go
package users

import (
	"net/http"

	userstore "github.com/dalemusser/pokerhub/internal/app/store/users"
	"github.com/dalemusser/pokerhub/internal/app/system/apierr"
	"github.com/dalemusser/pokerhub/internal/app/system/inputval"
	"github.com/dalemusser/pokerhub/internal/app/system/paging"
	"github.com/dalemusser/pokerhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/query"
)

// listFilter reads ?role and ?isActive. A role outside the allowed set
// is ignored. isActive filters whenever present: only "true" is true.
func listFilter(r *http.Request) userstore.Filter {
	var f userstore.Filter
	if role := query.Get(r, "role"); inputval.OneOf(role, models.UserRoles) {
		f.Role = role
	}
	if _, ok := r.URL.Query()["isActive"]; ok {
		active := query.Get(r, "isActive") == "true"
		f.IsActive = &active
	}
	return f
}

// ServeList handles GET /api/users.
//
//	{ "users":[...], "pagination":{"total":15,"page":2,"limit":10,"pages":2} }
func (h *Handler) ServeList(w http.ResponseWriter, r *http.Request) {
	f := listFilter(r)
	pg := paging.Parse(r)

	ctx, cancel := h.Timeouts.MediumCtx(r.Context())
	defer cancel()

	users, total, err := h.Users.List(ctx, f, pg)
	if err != nil {
		apierr.Write(w, r, h.Log, "users.list", apierr.StoreFailure(err, "Failed to list users"))
		return
	}
	if users == nil {
		users = []models.User{}
	}
	apierr.WriteJSON(w, http.StatusOK, listResponse{Users: users, Pagination: pg.Of(total)})
}
