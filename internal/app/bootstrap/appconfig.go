// internal/app/bootstrap/appconfig.go
package bootstrap

import "time"

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// These values come from environment variables, configuration files, or
// command-line flags (loaded in LoadConfig). WAFFLE's CoreConfig handles
// framework-level settings like ports, TLS and logging; everything
// pokerhub needs lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI            string // required; there is no built-in default
	MongoDatabase       string
	MongoMaxPoolSize    uint64
	MongoMinPoolSize    uint64
	MongoConnectTimeout time.Duration

	// Per-request store deadlines
	TimeoutShort  time.Duration // single inserts and lookups
	TimeoutMedium time.Duration // paginated lists

	// POST /api/* rate limiting, per client IP
	CreateRatePerMin int
	CreateBurst      int

	// Read the client address from X-Forwarded-For / X-Real-IP. Only
	// enable behind a proxy that sets those headers itself.
	TrustProxyHeaders bool

	MaxBodyBytes int64 // JSON request body cap
}
