// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"

	"github.com/dalemusser/pokerhub/internal/app/system/dbconn"
	"github.com/dalemusser/pokerhub/internal/app/system/indexes"
	"github.com/dalemusser/pokerhub/internal/app/system/ratelimit"
	"github.com/dalemusser/pokerhub/internal/app/system/validators"
	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// ConnectDB builds the shared Mongo connection and opens it once so a
// bad URI or unreachable server fails startup. Later failures are
// retried by the next request that needs the database.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	conn := dbconn.New(dbconn.Options{
		URI:            appCfg.MongoURI,
		Database:       appCfg.MongoDatabase,
		AppName:        "pokerhub",
		MaxPoolSize:    appCfg.MongoMaxPoolSize,
		MinPoolSize:    appCfg.MongoMinPoolSize,
		ConnectTimeout: appCfg.MongoConnectTimeout,
	}, logger)

	if _, err := conn.Connect(ctx); err != nil {
		logger.Error("MongoDB connect failed", zap.String("database", appCfg.MongoDatabase), zap.Error(err))
		return DBDeps{}, fmt.Errorf("connect mongo: %w", err)
	}
	logger.Info("connected to MongoDB", zap.String("database", appCfg.MongoDatabase))

	deps := DBDeps{Mongo: conn}
	if appCfg.CreateRatePerMin > 0 {
		deps.CreateLimiter = ratelimit.New(float64(appCfg.CreateRatePerMin), appCfg.CreateBurst)
	}
	return deps, nil
}

// EnsureSchema sets up indexes and collection validators.
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	db, err := deps.Mongo.Connect(ctx)
	if err != nil {
		return err
	}
	if err := validators.EnsureAll(ctx, db); err != nil {
		logger.Error("ensure validators failed", zap.Error(err))
		return err
	}
	if err := indexes.EnsureAll(ctx, db); err != nil {
		logger.Error("ensure indexes failed", zap.Error(err))
		return err
	}
	return nil
}
