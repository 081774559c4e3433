package metricsstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	metricsstore "github.com/dalemusser/pokerhub/internal/app/store/metrics"
	"github.com/dalemusser/pokerhub/internal/app/system/dbconn"
	"github.com/dalemusser/pokerhub/internal/domain/models"
	"github.com/dalemusser/pokerhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestFetchCounts_Empty(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	counts, err := metricsstore.FetchCounts(ctx, dbconn.Static(db))
	if err != nil {
		t.Fatalf("FetchCounts: %v", err)
	}
	if counts.Users != 0 || counts.Sessions != 0 {
		t.Errorf("got %+v, want zeros", counts)
	}
}

func TestFetchCounts_WithData(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	now := time.Now().UTC()
	fixtures.CreateUser(ctx, "One", "one@example.com", now)
	fixtures.CreateUser(ctx, "Two", "two@example.com", now)
	inactive := fixtures.CreateUser(ctx, "Three", "three@example.com", now)
	if _, err := db.Collection("users").UpdateOne(ctx, bson.M{"_id": inactive.ID}, bson.M{"$set": bson.M{"is_active": false}}); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	fac := primitive.NewObjectID()
	fixtures.CreateSession(ctx, "a", models.SessionActive, now, fac)
	fixtures.CreateSession(ctx, "b", models.SessionActive, now, fac)
	fixtures.CreateSession(ctx, "c", models.SessionCompleted, now, fac)

	counts, err := metricsstore.FetchCounts(ctx, dbconn.Static(db))
	if err != nil {
		t.Fatalf("FetchCounts: %v", err)
	}
	if counts.Users != 3 || counts.ActiveUsers != 2 {
		t.Errorf("users = %d active = %d, want 3 and 2", counts.Users, counts.ActiveUsers)
	}
	if counts.Sessions != 3 {
		t.Errorf("sessions = %d, want 3", counts.Sessions)
	}
	if counts.SessionsByStatus[models.SessionActive] != 2 || counts.SessionsByStatus[models.SessionScheduled] != 0 {
		t.Errorf("by status = %v", counts.SessionsByStatus)
	}
}

type downConn struct{}

func (downConn) Connect(context.Context) (*mongo.Database, error) {
	return nil, errors.New("no reachable servers")
}

func TestFetchCounts_ConnectError(t *testing.T) {
	counts, err := metricsstore.FetchCounts(context.Background(), downConn{})
	if err == nil {
		t.Fatal("expected error")
	}
	if counts.SessionsByStatus == nil {
		t.Error("expected non-nil status map")
	}
}
