// internal/app/system/ratelimit/ratelimit.go
package ratelimit

import (
	"math"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/dalemusser/pokerhub/internal/app/system/apierr"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Limiter is a per-key token bucket limiter. It is safe for concurrent use.
type Limiter struct {
	mu      sync.Mutex
	buckets map[string]*bucket
	rate    rate.Limit
	burst   int
	ttl     time.Duration // idle buckets older than this are dropped
	stopCh  chan struct{}
	once    sync.Once
}

type bucket struct {
	limiter    *rate.Limiter
	lastAccess time.Time
}

// New creates a limiter allowing perMinute requests per key per minute
// with bursts of up to burst. A background loop drops idle keys until
// Stop is called.
func New(perMinute float64, burst int) *Limiter {
	if burst < 1 {
		burst = 1
	}
	l := &Limiter{
		buckets: make(map[string]*bucket),
		rate:    rate.Limit(perMinute / 60.0),
		burst:   burst,
		ttl:     10 * time.Minute,
		stopCh:  make(chan struct{}),
	}
	go l.cleanupLoop(l.ttl / 2)
	return l
}

// Allow reports whether a request for key may proceed now.
func (l *Limiter) Allow(key string) bool {
	return l.get(key).Allow()
}

func (l *Limiter) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	b, ok := l.buckets[key]
	if !ok {
		b = &bucket{limiter: rate.NewLimiter(l.rate, l.burst)}
		l.buckets[key] = b
	}
	b.lastAccess = time.Now()
	return b.limiter
}

// Len returns the number of tracked keys.
func (l *Limiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.buckets)
}

// Reset forgets key.
func (l *Limiter) Reset(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.buckets, key)
}

// Stop ends the cleanup loop. Safe to call more than once.
func (l *Limiter) Stop() {
	l.once.Do(func() { close(l.stopCh) })
}

func (l *Limiter) cleanupLoop(every time.Duration) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l.sweep(time.Now())
		case <-l.stopCh:
			return
		}
	}
}

func (l *Limiter) sweep(now time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for key, b := range l.buckets {
		if now.Sub(b.lastAccess) > l.ttl {
			delete(l.buckets, key)
		}
	}
}

// retryAfter is the whole number of seconds until one token refills.
func (l *Limiter) retryAfter() int {
	if l.rate <= 0 {
		return 60
	}
	s := int(math.Ceil(1.0 / float64(l.rate)))
	if s < 1 {
		s = 1
	}
	return s
}

// Middleware rejects requests over the per-client limit with 429 and
// the standard {"error": ...} envelope. Clients are keyed by ClientIP.
func (l *Limiter) Middleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ip := ClientIP(r)
			if !l.Allow(ip) {
				logger.Warn("rate limit exceeded",
					zap.String("ip", ip),
					zap.String("method", r.Method),
					zap.String("path", r.URL.Path))
				w.Header().Set("Retry-After", strconv.Itoa(l.retryAfter()))
				apierr.WriteJSON(w, http.StatusTooManyRequests, map[string]string{
					"error": "Too many requests, please try again later",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ClientIP returns the host part of r.RemoteAddr. Forwarding headers are
// not read here; behind a trusted proxy, mount chi's middleware.RealIP
// ahead of the limiter so RemoteAddr already holds the client address.
func ClientIP(r *http.Request) string {
	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		// RemoteAddr might not have a port
		return r.RemoteAddr
	}
	return ip
}
