// internal/app/store/sessions/store.go
package sessions

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/pokerhub/internal/app/system/dbconn"
	"github.com/dalemusser/pokerhub/internal/app/system/paging"
	"github.com/dalemusser/pokerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the sessions collection name.
const Collection = "sessions"

// ErrNotFound is returned when no session has the requested id.
var ErrNotFound = errors.New("session not found")

// Store persists estimation sessions. Each session, with its stories and
// votes, is a single document, so Create is atomic.
type Store struct {
	conn dbconn.Connector
}

// New creates a new sessions Store.
func New(conn dbconn.Connector) *Store {
	return &Store{conn: conn}
}

func (s *Store) coll(ctx context.Context) (*mongo.Collection, error) {
	db, err := s.conn.Connect(ctx)
	if err != nil {
		return nil, err
	}
	return db.Collection(Collection), nil
}

// Create inserts sess. An unset ID is generated.
func (s *Store) Create(ctx context.Context, sess models.Session) (models.Session, error) {
	c, err := s.coll(ctx)
	if err != nil {
		return models.Session{}, err
	}
	if sess.ID.IsZero() {
		sess.ID = primitive.NewObjectID()
	}
	if _, err := c.InsertOne(ctx, sess); err != nil {
		return models.Session{}, fmt.Errorf("insert session: %w", err)
	}
	return sess, nil
}

// GetByID loads a session by ObjectID. Returns ErrNotFound if absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Session, error) {
	c, err := s.coll(ctx)
	if err != nil {
		return models.Session{}, err
	}
	var sess models.Session
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&sess); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.Session{}, ErrNotFound
		}
		return models.Session{}, fmt.Errorf("find session: %w", err)
	}
	return sess, nil
}

// Filter narrows List. Zero fields do not filter.
type Filter struct {
	Facilitator *primitive.ObjectID
	Status      string
	Visibility  string
	AccessCode  string
}

// BSON returns the query document for f.
func (f Filter) BSON() bson.M {
	q := bson.M{}
	if f.Facilitator != nil {
		q["facilitator"] = *f.Facilitator
	}
	if f.Status != "" {
		q["status"] = f.Status
	}
	if f.Visibility != "" {
		q["visibility"] = f.Visibility
	}
	if f.AccessCode != "" {
		q["access_code"] = f.AccessCode
	}
	return q
}

// List returns one page of sessions matching f, latest start date first,
// and the total number of matches. References are returned as ids.
func (s *Store) List(ctx context.Context, f Filter, pg paging.Page) ([]models.Session, int64, error) {
	c, err := s.coll(ctx)
	if err != nil {
		return nil, 0, err
	}
	q := f.BSON()

	total, err := c.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("count sessions: %w", err)
	}

	cur, err := c.Find(ctx, q, pg.FindOptions("start_date"))
	if err != nil {
		return nil, 0, fmt.Errorf("find sessions: %w", err)
	}
	defer cur.Close(ctx)

	out := make([]models.Session, 0, pg.Limit)
	if err := cur.All(ctx, &out); err != nil {
		return nil, 0, fmt.Errorf("decode sessions: %w", err)
	}
	return out, total, nil
}
