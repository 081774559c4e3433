// internal/app/features/users/handler.go
package users

import (
	"context"
	"time"

	userstore "github.com/dalemusser/pokerhub/internal/app/store/users"
	"github.com/dalemusser/pokerhub/internal/app/system/paging"
	"github.com/dalemusser/pokerhub/internal/app/system/timeouts"
	"github.com/dalemusser/pokerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// DefaultHashCost is the bcrypt cost applied to new passwords.
const DefaultHashCost = 12

// Store is the persistence the users handlers need. *userstore.Store
// satisfies it.
type Store interface {
	Create(ctx context.Context, u models.User) (models.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	List(ctx context.Context, f userstore.Filter, pg paging.Page) ([]models.User, int64, error)
}

// Handler is the feature-level handler for the users API.
type Handler struct {
	Users    Store
	Log      *zap.Logger
	Timeouts timeouts.Config
	MaxBody  int64 // request body cap; <= 0 uses limits.DefaultMaxJSONBody
	HashCost int
	Now      func() time.Time
}

func NewHandler(users Store, to timeouts.Config, maxBody int64, logger *zap.Logger) *Handler {
	return &Handler{
		Users:    users,
		Log:      logger,
		Timeouts: to.WithDefaults(),
		MaxBody:  maxBody,
		HashCost: DefaultHashCost,
		Now:      func() time.Time { return time.Now().UTC() },
	}
}
