// internal/app/bootstrap/config.go
package bootstrap

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dalemusser/pokerhub/internal/app/system/limits"
	"github.com/dalemusser/pokerhub/internal/app/system/timeouts"
	"github.com/dalemusser/waffle/config"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.uber.org/zap"
)

// appConfigKeys defines the configuration keys for pokerhub.
// These are loaded via WAFFLE's config system with support for:
//   - Config files: mongo_uri, mongo_database, etc.
//   - Environment variables: POKERHUB_MONGO_URI, POKERHUB_MONGO_DATABASE, etc.
//   - Command-line flags: --mongo_uri, --mongo_database, etc.
var appConfigKeys = []config.AppKey{
	{Name: "mongo_uri", Default: "", Desc: "MongoDB connection URI (required)"},
	{Name: "mongo_database", Default: "pokerhub", Desc: "MongoDB database name"},
	{Name: "mongo_max_pool_size", Default: 100, Desc: "MongoDB max connection pool size (default: 100)"},
	{Name: "mongo_min_pool_size", Default: 0, Desc: "MongoDB min connection pool size (default: 0)"},
	{Name: "mongo_connect_timeout", Default: "10s", Desc: "Bound on a single MongoDB connection attempt"},

	{Name: "timeout_short", Default: "5s", Desc: "Deadline for single-document store calls"},
	{Name: "timeout_medium", Default: "10s", Desc: "Deadline for paginated list store calls"},

	{Name: "create_rate_per_min", Default: 60, Desc: "POST requests allowed per client IP per minute (0 disables)"},
	{Name: "create_burst", Default: 20, Desc: "POST burst size per client IP"},
	{Name: "trust_proxy_headers", Default: false, Desc: "Take the client IP from X-Forwarded-For/X-Real-IP (enable only behind a trusted proxy)"},

	{Name: "max_body_bytes", Default: limits.DefaultMaxJSONBody, Desc: "Maximum JSON request body size in bytes"},
}

// LoadConfig loads WAFFLE core config and app-specific config.
//
// WAFFLE's config.LoadWithAppConfig handles:
//   - Loading from .env files
//   - Loading from config.yaml/json/toml files
//   - Reading environment variables (WAFFLE_* for core, POKERHUB_* for app)
//   - Parsing command-line flags
//   - Merging with precedence: flags > env > files > defaults
func LoadConfig(logger *zap.Logger) (*config.CoreConfig, AppConfig, error) {
	coreCfg, appValues, err := config.LoadWithAppConfig(logger, "POKERHUB", appConfigKeys)
	if err != nil {
		return nil, AppConfig{}, err
	}

	appCfg := AppConfig{
		MongoURI:            strings.TrimSpace(appValues.String("mongo_uri")),
		MongoDatabase:       appValues.String("mongo_database"),
		MongoMaxPoolSize:    uint64(appValues.Int("mongo_max_pool_size")),
		MongoMinPoolSize:    uint64(appValues.Int("mongo_min_pool_size")),
		MongoConnectTimeout: appValues.Duration("mongo_connect_timeout", 10*time.Second),

		TimeoutShort:  appValues.Duration("timeout_short", timeouts.DefaultShort),
		TimeoutMedium: appValues.Duration("timeout_medium", timeouts.DefaultMedium),

		CreateRatePerMin: appValues.Int("create_rate_per_min"),
		CreateBurst:      appValues.Int("create_burst"),

		TrustProxyHeaders: appValues.Bool("trust_proxy_headers"),

		MaxBodyBytes: int64(appValues.Int("max_body_bytes")),
	}

	return coreCfg, appCfg, nil
}

// ValidateConfig performs app-specific config validation.
//
// The MongoDB URI is required and must be well formed; startup aborts
// before any connection is attempted otherwise.
func ValidateConfig(coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) error {
	if appCfg.MongoURI == "" {
		logger.Error("missing MongoDB URI; set POKERHUB_MONGO_URI or --mongo_uri")
		return errors.New("mongo_uri is required")
	}
	if err := wafflemongo.ValidateURI(appCfg.MongoURI); err != nil {
		logger.Error("invalid MongoDB URI", zap.Error(err))
		return fmt.Errorf("invalid MongoDB URI: %w", err)
	}
	if strings.TrimSpace(appCfg.MongoDatabase) == "" {
		return errors.New("mongo_database must not be empty")
	}
	if appCfg.MongoMaxPoolSize > 0 && appCfg.MongoMinPoolSize > appCfg.MongoMaxPoolSize {
		return fmt.Errorf("mongo_min_pool_size (%d) exceeds mongo_max_pool_size (%d)",
			appCfg.MongoMinPoolSize, appCfg.MongoMaxPoolSize)
	}
	if appCfg.CreateRatePerMin < 0 || appCfg.CreateBurst < 0 {
		return errors.New("create_rate_per_min and create_burst must not be negative")
	}
	if appCfg.MaxBodyBytes < 0 {
		return errors.New("max_body_bytes must not be negative")
	}
	return nil
}

func (c AppConfig) timeouts() timeouts.Config {
	return timeouts.Config{Short: c.TimeoutShort, Medium: c.TimeoutMedium}.WithDefaults()
}
