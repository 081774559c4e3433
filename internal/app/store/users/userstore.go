// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"
	"fmt"

	"github.com/dalemusser/pokerhub/internal/app/system/dbconn"
	"github.com/dalemusser/pokerhub/internal/app/system/paging"
	"github.com/dalemusser/pokerhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Collection is the users collection name.
const Collection = "users"

var (
	// ErrDuplicateEmail is returned when attempting to create a user with an email that already exists.
	ErrDuplicateEmail = errors.New("a user with this email already exists")
	// ErrNotFound is returned when no user has the requested id.
	ErrNotFound = errors.New("user not found")
)

type Store struct {
	conn dbconn.Connector
}

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

// Create inserts u as given. Callers normalize and validate first.
// An unset ID is generated.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	c, err := s.coll(ctx)
	if err != nil {
		return models.User{}, err
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	if _, err := c.InsertOne(ctx, u); err != nil {
		if wafflemongo.IsDup(err) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// GetByID loads a user by ObjectID. Returns ErrNotFound if absent.
func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	c, err := s.coll(ctx)
	if err != nil {
		return models.User{}, err
	}
	var u models.User
	if err := c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.User{}, ErrNotFound
		}
		return models.User{}, fmt.Errorf("find user: %w", err)
	}
	return u, nil
}

// Filter narrows List. Zero fields do not filter.
type Filter struct {
	Role     string // matches users holding this role
	IsActive *bool
}

// BSON returns the query document for f.
func (f Filter) BSON() bson.M {
	q := bson.M{}
	if f.Role != "" {
		q["roles"] = f.Role
	}
	if f.IsActive != nil {
		q["is_active"] = *f.IsActive
	}
	return q
}

// List returns one page of users matching f, newest first, and the
// total number of matches.
func (s *Store) List(ctx context.Context, f Filter, pg paging.Page) ([]models.User, int64, error) {
	c, err := s.coll(ctx)
	if err != nil {
		return nil, 0, err
	}
	q := f.BSON()

	total, err := c.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("count users: %w", err)
	}

	cur, err := c.Find(ctx, q, pg.FindOptions("created_at"))
	if err != nil {
		return nil, 0, fmt.Errorf("find users: %w", err)
	}
	defer cur.Close(ctx)

	users := make([]models.User, 0, pg.Limit)
	if err := cur.All(ctx, &users); err != nil {
		return nil, 0, fmt.Errorf("decode users: %w", err)
	}
	return users, total, nil
}
