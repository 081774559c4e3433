// internal/app/bootstrap/dbdeps.go
package bootstrap

import (
	"github.com/dalemusser/pokerhub/internal/app/system/dbconn"
	"github.com/dalemusser/pokerhub/internal/app/system/ratelimit"
)

// DBDeps holds database/back-end dependencies for the app.
type DBDeps struct {
	Mongo *dbconn.Conn

	// CreateLimiter throttles POST requests; nil when disabled.
	CreateLimiter *ratelimit.Limiter
}
