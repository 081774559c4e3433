package bootstrap

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/dalemusser/pokerhub/internal/app/system/dbconn"
	"github.com/dalemusser/pokerhub/internal/app/system/metrics"
	"github.com/dalemusser/pokerhub/internal/app/system/ratelimit"
	"github.com/dalemusser/waffle/config"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func testLogger() *zap.Logger {
	return zap.NewNop()
}

func validAppConfig() AppConfig {
	return AppConfig{
		MongoURI:         "mongodb://localhost:27017",
		MongoDatabase:    "pokerhub",
		MongoMaxPoolSize: 100,
		CreateRatePerMin: 60,
		CreateBurst:      10,
		MaxBodyBytes:     1 << 20,
	}
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *AppConfig)
		wantErr string
	}{
		{"valid", func(c *AppConfig) {}, ""},
		{"missing uri", func(c *AppConfig) { c.MongoURI = "" }, "mongo_uri is required"},
		{"malformed uri", func(c *AppConfig) { c.MongoURI = "http://localhost:27017" }, "invalid MongoDB URI"},
		{"empty database", func(c *AppConfig) { c.MongoDatabase = " " }, "mongo_database"},
		{"pool sizes inverted", func(c *AppConfig) { c.MongoMinPoolSize = 200 }, "exceeds"},
		{"negative rate", func(c *AppConfig) { c.CreateRatePerMin = -1 }, "must not be negative"},
		{"negative body", func(c *AppConfig) { c.MaxBodyBytes = -1 }, "max_body_bytes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validAppConfig()
			tt.mutate(&cfg)
			err := ValidateConfig(&config.CoreConfig{}, cfg, testLogger())
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

// unreachableDeps returns deps whose Mongo connection always fails to dial.
func unreachableDeps() DBDeps {
	conn := dbconn.New(dbconn.Options{URI: "mongodb://127.0.0.1:1", Database: "pokerhub"}, testLogger()).
		WithDialer(func(context.Context, dbconn.Options) (*mongo.Client, error) {
			return nil, errors.New("no reachable servers")
		})
	return DBDeps{Mongo: conn, CreateLimiter: ratelimit.New(60, 1)}
}

func TestBuildHandler_Routes(t *testing.T) {
	deps := unreachableDeps()
	defer deps.CreateLimiter.Stop()

	h, err := BuildHandler(&config.CoreConfig{}, validAppConfig(), deps, testLogger())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{"GET", "/health", "", http.StatusServiceUnavailable},
		{"GET", "/metrics", "", http.StatusOK},
		{"GET", "/api/users", "", http.StatusInternalServerError},
		{"GET", "/api/sessions", "", http.StatusInternalServerError},
		{"GET", "/api/users/not-an-id", "", http.StatusBadRequest},
		{"POST", "/api/sessions", `{"name":""}`, http.StatusBadRequest},
		{"GET", "/nope", "", http.StatusNotFound},
		{"DELETE", "/api/users", "", http.StatusMethodNotAllowed},
	}
	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.ServeHTTP(rec, req)
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d (body: %s)", rec.Code, tt.want, rec.Body.String())
			}
			if rec.Header().Get("X-Request-ID") == "" {
				t.Error("missing X-Request-ID")
			}
		})
	}
}

func TestBuildHandler_ErrorEnvelopeAndRateLimit(t *testing.T) {
	deps := unreachableDeps()
	defer deps.CreateLimiter.Stop()

	h, err := BuildHandler(&config.CoreConfig{}, validAppConfig(), deps, testLogger())
	if err != nil {
		t.Fatalf("BuildHandler: %v", err)
	}

	post := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest("POST", "/api/users", strings.NewReader(`{}`))
		req.RemoteAddr = "192.0.2.1:1234"
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec
	}

	rec := post()
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("first POST status = %d, want 400", rec.Code)
	}
	var env map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if env["error"] != "first name is required" {
		t.Errorf("error = %q", env["error"])
	}

	// Burst of 1: the second POST from the same client is throttled.
	if rec := post(); rec.Code != http.StatusTooManyRequests {
		t.Errorf("second POST status = %d, want 429", rec.Code)
	}
}

func TestBuildHandler_RateLimitKeysOnRemoteAddr(t *testing.T) {
	tests := []struct {
		name      string
		trust     bool
		wantCodes []int
	}{
		{"forwarding headers ignored", false, []int{http.StatusBadRequest, http.StatusTooManyRequests}},
		{"forwarding headers trusted", true, []int{http.StatusBadRequest, http.StatusBadRequest}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			deps := unreachableDeps()
			defer deps.CreateLimiter.Stop()

			cfg := validAppConfig()
			cfg.TrustProxyHeaders = tt.trust
			h, err := BuildHandler(&config.CoreConfig{}, cfg, deps, testLogger())
			if err != nil {
				t.Fatalf("BuildHandler: %v", err)
			}

			for i, forwarded := range []string{"203.0.113.1", "203.0.113.2"} {
				req := httptest.NewRequest("POST", "/api/users", strings.NewReader(`{}`))
				req.RemoteAddr = "192.0.2.1:1234"
				req.Header.Set("X-Forwarded-For", forwarded)
				rec := httptest.NewRecorder()
				h.ServeHTTP(rec, req)
				if rec.Code != tt.wantCodes[i] {
					t.Errorf("POST %d (X-Forwarded-For %s) status = %d, want %d", i+1, forwarded, rec.Code, tt.wantCodes[i])
				}
			}
		})
	}
}

func TestMiddleware_PanicIsAccessLogged(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	r := chi.NewRouter()
	useMiddleware(r, validAppConfig(), metrics.NewCollector(prometheus.NewRegistry()), logger)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) { panic("boom") })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/boom", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
	access := logs.FilterMessage("http_request").All()
	if len(access) != 1 {
		t.Fatalf("got %d http_request entries, want 1", len(access))
	}
	if got := access[0].ContextMap()["status"]; got != int64(http.StatusInternalServerError) {
		t.Errorf("logged status = %v, want 500", got)
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Error("expected the panic itself to be logged")
	}
}

func TestShutdown_StopsAndCloses(t *testing.T) {
	deps := unreachableDeps()
	if err := Shutdown(context.Background(), &config.CoreConfig{}, validAppConfig(), deps, testLogger()); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if _, err := deps.Mongo.Connect(context.Background()); !errors.Is(err, dbconn.ErrClosed) {
		t.Errorf("Connect after Shutdown = %v, want ErrClosed", err)
	}
}

func TestAppConfigTimeoutsDefault(t *testing.T) {
	to := AppConfig{}.timeouts()
	if to.Short <= 0 || to.Medium <= 0 || to.Ping <= 0 {
		t.Errorf("timeouts not defaulted: %+v", to)
	}
}
