package health

import (
	"net/http"

	"github.com/dalemusser/pokerhub/internal/app/system/apierr"
	"github.com/dalemusser/pokerhub/internal/app/system/dbconn"
	"github.com/dalemusser/pokerhub/internal/app/system/timeouts"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	DB       dbconn.Connector
	Timeouts timeouts.Config
	Log      *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(db dbconn.Connector, to timeouts.Config, logger *zap.Logger) *Handler {
	return &Handler{
		DB:       db,
		Timeouts: to.WithDefaults(),
		Log:      logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected" }
//
// On DB failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…"}
//
// A failed check does not poison the connection; the next request
// redials.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := h.Timeouts.PingCtx(r.Context())
	defer cancel()

	db, err := h.DB.Connect(ctx)
	if err == nil {
		err = db.Client().Ping(ctx, readpref.Primary())
	}
	if err != nil {
		h.Log.Error("health-check: mongo ping failed", zap.Error(err))
		apierr.WriteJSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:   "error",
			Database: "disconnected",
			Message:  "Database unavailable",
			Error:    err.Error(),
		})
		return
	}

	apierr.WriteJSON(w, http.StatusOK, healthResponse{Status: "ok", Database: "connected"})
}
