// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	healthfeature "github.com/dalemusser/pokerhub/internal/app/features/health"
	sessionsfeature "github.com/dalemusser/pokerhub/internal/app/features/sessions"
	usersfeature "github.com/dalemusser/pokerhub/internal/app/features/users"
	sessionstore "github.com/dalemusser/pokerhub/internal/app/store/sessions"
	userstore "github.com/dalemusser/pokerhub/internal/app/store/users"
	"github.com/dalemusser/pokerhub/internal/app/system/apierr"
	"github.com/dalemusser/pokerhub/internal/app/system/metrics"
	"github.com/dalemusser/pokerhub/internal/app/system/reqlog"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed. pokerhub mounts:
//
//	/api/users     create, list, view
//	/api/sessions  create, list, view
//	/health        Mongo ping
//	/metrics       Prometheus scrape
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := metrics.NewCollector(reg)

	to := appCfg.timeouts()
	reg.MustRegister(metrics.NewDocumentCollector(deps.Mongo, to.Medium, logger))

	var createLimit func(http.Handler) http.Handler
	if deps.CreateLimiter != nil {
		limiter := deps.CreateLimiter
		createLimit = limiter.Middleware(logger)
		reg.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
			Name: "pokerhub_ratelimit_tracked_clients",
			Help: "Client IPs currently tracked by the create rate limiter.",
		}, func() float64 { return float64(limiter.Len()) }))
	}

	r := chi.NewRouter()
	useMiddleware(r, appCfg, collector, logger)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		apierr.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "Not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		apierr.WriteJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "Method not allowed"})
	})

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.Mongo, to, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	r.Handle("/metrics", metrics.Handler(reg))

	usersHandler := usersfeature.NewHandler(userstore.New(deps.Mongo), to, appCfg.MaxBodyBytes, logger)
	r.Mount("/api/users", usersfeature.Routes(usersHandler, createLimit))

	sessionsHandler := sessionsfeature.NewHandler(sessionstore.New(deps.Mongo), to, appCfg.MaxBodyBytes, logger)
	r.Mount("/api/sessions", sessionsfeature.Routes(sessionsHandler, createLimit))

	return r, nil
}

// useMiddleware installs the chain shared by every route. The access log
// sits outside Recoverer so a recovered panic still gets its 500 logged.
func useMiddleware(r chi.Router, appCfg AppConfig, collector *metrics.Collector, logger *zap.Logger) {
	if appCfg.TrustProxyHeaders {
		r.Use(middleware.RealIP)
	}
	r.Use(middleware.RequestID)
	r.Use(reqlog.Middleware(logger))
	r.Use(reqlog.Recoverer(logger))
	r.Use(collector.Middleware)
}
