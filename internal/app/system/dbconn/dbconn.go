// Package dbconn holds the process-wide MongoDB handle.
//
// A Conn is created once during startup and injected into stores. The
// connection is opened lazily by the first Connect call; callers that
// arrive while that attempt is running wait for it instead of dialing
// again. A failed attempt is forgotten so the next Connect retries.
package dbconn

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// DefaultConnectTimeout bounds a single connection attempt.
const DefaultConnectTimeout = 10 * time.Second

// ErrClosed is returned by Connect after Close.
var ErrClosed = errors.New("dbconn: connection closed")

// Options configures the client. Zero values leave driver defaults.
type Options struct {
	URI            string
	Database       string
	AppName        string
	MaxPoolSize    uint64
	MinPoolSize    uint64
	ConnectTimeout time.Duration
}

// Dialer opens and verifies a client. The default dialer connects and
// pings the primary.
type Dialer func(ctx context.Context, opts Options) (*mongo.Client, error)

// Conn is a lazily-opened, shared MongoDB database handle.
// It is safe for concurrent use.
type Conn struct {
	opts Options
	dial Dialer
	log  *zap.Logger

	mu       sync.Mutex
	client   *mongo.Client
	db       *mongo.Database
	inflight *attempt
	closed   bool
}

type attempt struct {
	done chan struct{}
	db   *mongo.Database
	err  error
}

// New returns an unconnected Conn.
func New(opts Options, logger *zap.Logger) *Conn {
	if opts.ConnectTimeout <= 0 {
		opts.ConnectTimeout = DefaultConnectTimeout
	}
	return &Conn{opts: opts, dial: Dial, log: logger}
}

// WithDialer replaces the dialer. Tests use it to count or fail attempts.
func (c *Conn) WithDialer(d Dialer) *Conn {
	c.mu.Lock()
	c.dial = d
	c.mu.Unlock()
	return c
}

// Connect returns the shared database handle, opening it on first use.
//
// ctx only bounds how long this caller waits. The attempt itself runs
// under the connect timeout so that one impatient caller cannot fail it
// for everyone waiting on it.
func (c *Conn) Connect(ctx context.Context) (*mongo.Database, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	if c.db != nil {
		db := c.db
		c.mu.Unlock()
		return db, nil
	}
	a := c.inflight
	if a == nil {
		a = &attempt{done: make(chan struct{})}
		c.inflight = a
		go c.open(a)
	}
	c.mu.Unlock()

	select {
	case <-a.done:
		return a.db, a.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Conn) open(a *attempt) {
	ctx, cancel := context.WithTimeout(context.Background(), c.opts.ConnectTimeout)
	defer cancel()

	start := time.Now()
	client, err := c.dial(ctx, c.opts)

	c.mu.Lock()
	switch {
	case err != nil:
		c.inflight = nil
		a.err = fmt.Errorf("connect to mongo: %w", err)
		c.log.Error("mongo connect failed", zap.Error(err), zap.Duration("took", time.Since(start)))
	case c.closed:
		c.inflight = nil
		a.err = ErrClosed
		_ = client.Disconnect(ctx)
	default:
		c.client = client
		c.db = client.Database(c.opts.Database)
		c.inflight = nil
		a.db = c.db
		c.log.Info("mongo connected",
			zap.String("database", c.opts.Database),
			zap.Duration("took", time.Since(start)))
	}
	c.mu.Unlock()
	close(a.done)
}

// Client returns the underlying client, or nil if not yet connected.
func (c *Conn) Client() *mongo.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client
}

// Close disconnects the client and marks the Conn closed.
func (c *Conn) Close(ctx context.Context) error {
	c.mu.Lock()
	client := c.client
	c.client, c.db, c.closed = nil, nil, true
	c.mu.Unlock()

	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// Reset disconnects and returns the Conn to its unconnected state so the
// next Connect dials again. Test teardown uses it between cases.
func (c *Conn) Reset(ctx context.Context) error {
	c.mu.Lock()
	client := c.client
	c.client, c.db, c.closed = nil, nil, false
	c.mu.Unlock()

	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}

// Dial is the default Dialer.
func Dial(ctx context.Context, opts Options) (*mongo.Client, error) {
	co := options.Client().ApplyURI(opts.URI)
	if opts.AppName != "" {
		co.SetAppName(opts.AppName)
	}
	if opts.MaxPoolSize > 0 {
		co.SetMaxPoolSize(opts.MaxPoolSize)
	}
	if opts.MinPoolSize > 0 {
		co.SetMinPoolSize(opts.MinPoolSize)
	}

	client, err := mongo.Connect(ctx, co)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// Connector yields a ready database handle. *Conn implements it; stores
// depend on this interface.
type Connector interface {
	Connect(ctx context.Context) (*mongo.Database, error)
}

// Static returns a Connector that always yields db.
func Static(db *mongo.Database) Connector { return staticConn{db} }

type staticConn struct{ db *mongo.Database }

func (s staticConn) Connect(context.Context) (*mongo.Database, error) { return s.db, nil }
