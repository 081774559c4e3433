// Package reqlog provides request-scoped logging and panic recovery
// middleware built on zap.
package reqlog

import (
	"net/http"
	"runtime/debug"
	"time"

	"github.com/dalemusser/pokerhub/internal/app/system/apierr"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// HeaderRequestID is echoed on every response.
const HeaderRequestID = "X-Request-ID"

// RequestID returns the id chi's RequestID middleware assigned to r, or
// a fresh UUID when none is set.
func RequestID(r *http.Request) string {
	if id := middleware.GetReqID(r.Context()); id != "" {
		return id
	}
	return uuid.NewString()
}

// Middleware logs one line per request: method, path, status,
// duration_ms and request_id. 5xx logs at error, 4xx at warn.
func Middleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			reqID := RequestID(r)
			w.Header().Set(HeaderRequestID, reqID)

			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			level := zapcore.InfoLevel
			switch {
			case status >= 500:
				level = zapcore.ErrorLevel
			case status >= 400:
				level = zapcore.WarnLevel
			}
			if ce := logger.Check(level, "http_request"); ce != nil {
				ce.Write(
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.Int("status", status),
					zap.Int("bytes", ww.BytesWritten()),
					zap.Float64("duration_ms", float64(time.Since(start).Microseconds())/1000),
					zap.String("request_id", reqID),
				)
			}
		})
	}
}

// Recoverer turns a handler panic into a logged 500 with the JSON error
// envelope. http.ErrAbortHandler is re-panicked.
func Recoverer(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				logger.Error("panic recovered",
					zap.Any("panic", rec),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path),
					zap.String("request_id", middleware.GetReqID(r.Context())),
					zap.ByteString("stack", debug.Stack()))
				apierr.WriteJSON(w, http.StatusInternalServerError, map[string]string{
					"error": "Internal server error",
				})
			}()
			next.ServeHTTP(w, r)
		})
	}
}
