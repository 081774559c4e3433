package metricsstore

import (
	"context"

	"github.com/dalemusser/pokerhub/internal/app/system/dbconn"
	"github.com/dalemusser/pokerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
)

// Counts is the set of document totals exported as gauges.
type Counts struct {
	Users            int64
	ActiveUsers      int64
	Sessions         int64
	SessionsByStatus map[string]int64
}

// FetchCounts returns the document totals.
// Intentionally tolerant: on error it returns 0 for that counter. The
// error returned is the connection error, if any.
func FetchCounts(ctx context.Context, conn dbconn.Connector) (Counts, error) {
	out := Counts{SessionsByStatus: make(map[string]int64, len(models.SessionStatuses))}

	db, err := conn.Connect(ctx)
	if err != nil {
		return out, err
	}

	users := db.Collection("users")
	if n, err := users.CountDocuments(ctx, bson.M{}); err == nil {
		out.Users = n
	}
	if n, err := users.CountDocuments(ctx, bson.M{"is_active": true}); err == nil {
		out.ActiveUsers = n
	}

	sessions := db.Collection("sessions")
	for _, status := range models.SessionStatuses {
		if n, err := sessions.CountDocuments(ctx, bson.M{"status": status}); err == nil {
			out.SessionsByStatus[status] = n
			out.Sessions += n
		}
	}

	return out, nil
}
