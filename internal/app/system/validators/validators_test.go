package validators_test

import (
	"testing"
	"time"

	"github.com/dalemusser/pokerhub/internal/app/system/validators"
	"github.com/dalemusser/pokerhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestEnsureAll_Idempotent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("First EnsureAll failed: %v", err)
	}
	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("Second EnsureAll failed: %v", err)
	}

	names, err := db.ListCollectionNames(ctx, bson.M{})
	if err != nil {
		t.Fatalf("ListCollectionNames failed: %v", err)
	}
	have := map[string]bool{}
	for _, n := range names {
		have[n] = true
	}
	for _, want := range []string{"users", "sessions"} {
		if !have[want] {
			t.Errorf("expected collection %q to exist", want)
		}
	}
}

func validUser() bson.M {
	now := time.Now().UTC()
	return bson.M{
		"first_name": "Ada",
		"last_name":  "Lovelace",
		"email":      "ada@example.com",
		"password":   "$2a$12$hash",
		"roles":      bson.A{"participant"},
		"is_active":  true,
		"created_at": now,
		"updated_at": now,
	}
}

func TestUsersValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	users := db.Collection("users")

	if _, err := users.InsertOne(ctx, validUser()); err != nil {
		t.Fatalf("insert valid user: %v", err)
	}

	if _, err := users.InsertOne(ctx, bson.M{"email": "x@example.com"}); err == nil {
		t.Error("expected missing required fields to be rejected")
	}

	bad := validUser()
	bad["email"] = "ada2@example.com"
	bad["roles"] = bson.A{"superuser"}
	if _, err := users.InsertOne(ctx, bad); err == nil {
		t.Error("expected unknown role to be rejected")
	}
}

func TestSessionsValidator(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := validators.EnsureAll(ctx, db); err != nil {
		t.Fatalf("EnsureAll failed: %v", err)
	}
	sessions := db.Collection("sessions")

	session := func() bson.M {
		return bson.M{
			"name":            "Sprint 1",
			"start_date":      time.Now().UTC(),
			"duration":        int32(30),
			"status":          "scheduled",
			"facilitator":     primitive.NewObjectID(),
			"participants":    bson.A{},
			"estimation_type": "fibonacci",
			"visibility":      "private",
			"user_stories": bson.A{bson.M{
				"title":       "Login",
				"description": "As a user I can log in",
				"priority":    "medium",
				"status":      "pending",
				"votes": bson.A{bson.M{
					"user_id": primitive.NewObjectID(),
					"value":   "XL",
				}},
				"final_estimation": nil,
			}},
		}
	}

	if _, err := sessions.InsertOne(ctx, session()); err != nil {
		t.Fatalf("insert valid session: %v", err)
	}

	bad := session()
	bad["duration"] = int32(0)
	if _, err := sessions.InsertOne(ctx, bad); err == nil {
		t.Error("expected duration 0 to be rejected")
	}

	bad = session()
	bad["estimation_type"] = "planets"
	if _, err := sessions.InsertOne(ctx, bad); err == nil {
		t.Error("expected unknown estimation type to be rejected")
	}
}
