package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/pokerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a new Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts an active user with the given roles.
// createdAt controls list ordering.
func (f *Fixtures) CreateUser(ctx context.Context, firstName, email string, createdAt time.Time, roles ...string) models.User {
	f.t.Helper()

	if len(roles) == 0 {
		roles = []string{models.RoleParticipant}
	}
	user := models.User{
		ID:               primitive.NewObjectID(),
		FirstName:        firstName,
		LastName:         "Tester",
		DateOfBirth:      time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		RegistrationDate: createdAt,
		Email:            email,
		Password:         "not-a-real-hash",
		Roles:            roles,
		IsActive:         true,
		CreatedAt:        createdAt,
		UpdatedAt:        createdAt,
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, user); err != nil {
		f.t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateSession inserts a minimal session with the given status.
func (f *Fixtures) CreateSession(ctx context.Context, name, status string, start time.Time, facilitator primitive.ObjectID) models.Session {
	f.t.Helper()

	now := time.Now().UTC()
	sess := models.Session{
		ID:             primitive.NewObjectID(),
		Name:           name,
		StartDate:      start,
		Duration:       60,
		Status:         status,
		Facilitator:    facilitator,
		Participants:   []primitive.ObjectID{},
		EstimationType: models.EstimationFibonacci,
		Visibility:     models.VisibilityPrivate,
		UserStories:    []models.UserStory{},
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if _, err := f.db.Collection("sessions").InsertOne(ctx, sess); err != nil {
		f.t.Fatalf("failed to create test session: %v", err)
	}
	return sess
}
