// internal/app/features/sessions/handler.go
package sessions

import (
	"context"
	"time"

	sessionstore "github.com/dalemusser/pokerhub/internal/app/store/sessions"
	"github.com/dalemusser/pokerhub/internal/app/system/paging"
	"github.com/dalemusser/pokerhub/internal/app/system/timeouts"
	"github.com/dalemusser/pokerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Store is the persistence the sessions handlers need.
type Store interface {
	Create(ctx context.Context, s models.Session) (models.Session, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Session, error)
	List(ctx context.Context, f sessionstore.Filter, pg paging.Page) ([]models.Session, int64, error)
}

// Handler is the feature-level handler for the sessions API.
type Handler struct {
	Sessions Store
	Log      *zap.Logger
	Timeouts timeouts.Config
	MaxBody  int64
	Now      func() time.Time
}

func NewHandler(sessions Store, to timeouts.Config, maxBody int64, logger *zap.Logger) *Handler {
	return &Handler{
		Sessions: sessions,
		Log:      logger,
		Timeouts: to.WithDefaults(),
		MaxBody:  maxBody,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}
