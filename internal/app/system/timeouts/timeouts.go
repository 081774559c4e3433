// Package timeouts provides the deadlines applied to store calls made
// while serving a request.
//
// Guidelines for choosing a timeout:
//   - Ping: health checks and connectivity verification
//   - Short: single-document inserts and lookups
//   - Medium: paginated lists (count + find)
package timeouts

import (
	"context"
	"time"
)

// Default timeout values, used for any zero field of Config.
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
)

// Config holds timeout values. Zero values fall back to the defaults.
type Config struct {
	Ping   time.Duration
	Short  time.Duration
	Medium time.Duration
}

// Defaults returns a Config with every default applied.
func Defaults() Config {
	return Config{Ping: DefaultPing, Short: DefaultShort, Medium: DefaultMedium}
}

// WithDefaults returns c with zero fields replaced by defaults.
func (c Config) WithDefaults() Config {
	if c.Ping <= 0 {
		c.Ping = DefaultPing
	}
	if c.Short <= 0 {
		c.Short = DefaultShort
	}
	if c.Medium <= 0 {
		c.Medium = DefaultMedium
	}
	return c
}

// PingCtx derives a context bounded by the ping timeout.
func (c Config) PingCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, c.WithDefaults().Ping)
}

// ShortCtx derives a context bounded by the short timeout.
func (c Config) ShortCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, c.WithDefaults().Short)
}

// MediumCtx derives a context bounded by the medium timeout.
func (c Config) MediumCtx(parent context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, c.WithDefaults().Medium)
}
