package reqlog

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMiddleware_LevelByStatus(t *testing.T) {
	tests := []struct {
		status int
		level  zapcore.Level
	}{
		{http.StatusOK, zapcore.InfoLevel},
		{http.StatusNotFound, zapcore.WarnLevel},
		{http.StatusInternalServerError, zapcore.ErrorLevel},
	}
	for _, tt := range tests {
		core, logs := observer.New(zapcore.DebugLevel)
		h := Middleware(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
		}))

		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest("GET", "/api/sessions", nil))

		entries := logs.All()
		if len(entries) != 1 {
			t.Fatalf("status %d: got %d log entries", tt.status, len(entries))
		}
		e := entries[0]
		if e.Level != tt.level {
			t.Errorf("status %d: level = %s, want %s", tt.status, e.Level, tt.level)
		}
		fields := e.ContextMap()
		if fields["path"] != "/api/sessions" || fields["status"] != int64(tt.status) {
			t.Errorf("fields = %v", fields)
		}
		if rec.Header().Get(HeaderRequestID) == "" {
			t.Error("expected request id header")
		}
	}
}

func TestRequestID_PrefersChi(t *testing.T) {
	var got string
	h := middleware.RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = RequestID(r)
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))
	if got == "" {
		t.Fatal("no request id")
	}

	// Without chi's middleware a UUID is generated.
	r := httptest.NewRequest("GET", "/", nil)
	if id := RequestID(r); len(id) != 36 {
		t.Errorf("fallback id = %q, want a UUID", id)
	}
}

func TestRecoverer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	h := Recoverer(zap.New(core))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest("POST", "/api/users", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if logs.FilterMessage("panic recovered").Len() != 1 {
		t.Error("expected panic to be logged")
	}
}
