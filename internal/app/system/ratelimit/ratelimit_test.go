package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestLimiter_BurstThenReject(t *testing.T) {
	l := New(60, 3)
	defer l.Stop()

	for i := 0; i < 3; i++ {
		if !l.Allow("1.2.3.4") {
			t.Fatalf("request %d rejected within burst", i+1)
		}
	}
	if l.Allow("1.2.3.4") {
		t.Error("expected request beyond burst to be rejected")
	}
	if !l.Allow("5.6.7.8") {
		t.Error("other clients must have their own bucket")
	}
	if l.Len() != 2 {
		t.Errorf("Len = %d, want 2", l.Len())
	}

	l.Reset("1.2.3.4")
	if !l.Allow("1.2.3.4") {
		t.Error("expected allow after Reset")
	}
}

func TestLimiter_SweepDropsIdleKeys(t *testing.T) {
	l := New(60, 1)
	defer l.Stop()

	l.Allow("idle")
	l.sweep(time.Now().Add(l.ttl + time.Second))
	if l.Len() != 0 {
		t.Errorf("Len = %d after sweep, want 0", l.Len())
	}
}

func TestLimiter_StopTwice(t *testing.T) {
	l := New(60, 1)
	l.Stop()
	l.Stop()
}

func TestMiddleware(t *testing.T) {
	l := New(1, 1)
	defer l.Stop()

	h := l.Middleware(zap.NewNop())(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest("POST", "/api/users", nil)
	req.RemoteAddr = "10.0.0.1:5555"

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("first request status = %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusTooManyRequests {
		t.Fatalf("second request status = %d, want 429", rec.Code)
	}
	if rec.Header().Get("Retry-After") != "60" {
		t.Errorf("Retry-After = %q, want 60", rec.Header().Get("Retry-After"))
	}
}

func TestClientIP(t *testing.T) {
	tests := []struct {
		name   string
		xff    string
		xri    string
		remote string
		want   string
	}{
		{"forwarded header ignored", "203.0.113.7, 10.0.0.1", "", "10.0.0.2:80", "10.0.0.2"},
		{"real ip header ignored", "", " 198.51.100.4 ", "10.0.0.2:80", "10.0.0.2"},
		{"remote addr", "", "", "192.0.2.9:4000", "192.0.2.9"},
		{"remote without port", "", "", "192.0.2.9", "192.0.2.9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			r.RemoteAddr = tt.remote
			if tt.xff != "" {
				r.Header.Set("X-Forwarded-For", tt.xff)
			}
			if tt.xri != "" {
				r.Header.Set("X-Real-IP", tt.xri)
			}
			if got := ClientIP(r); got != tt.want {
				t.Errorf("ClientIP = %q, want %q", got, tt.want)
			}
		})
	}
}
