// internal/app/bootstrap/startup.go
package bootstrap

import (
	"context"

	"github.com/dalemusser/waffle/config"
	"go.uber.org/zap"
)

// Startup runs one-time application initialization after DB connections and
// schema setup are complete, but before the HTTP handler is built.
func Startup(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	to := appCfg.timeouts()
	logger.Info("pokerhub starting",
		zap.String("database", appCfg.MongoDatabase),
		zap.Duration("timeout_short", to.Short),
		zap.Duration("timeout_medium", to.Medium),
		zap.Int("create_rate_per_min", appCfg.CreateRatePerMin),
		zap.Int64("max_body_bytes", appCfg.MaxBodyBytes))
	return nil
}
