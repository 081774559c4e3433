package sessions_test

import (
	"errors"
	"testing"
	"time"

	"github.com/dalemusser/pokerhub/internal/app/store/sessions"
	"github.com/dalemusser/pokerhub/internal/app/system/dbconn"
	"github.com/dalemusser/pokerhub/internal/app/system/paging"
	"github.com/dalemusser/pokerhub/internal/domain/models"
	"github.com/dalemusser/pokerhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_CreateGetRoundTrip(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	store := sessions.New(dbconn.Static(db))
	now := time.Now().UTC().Truncate(time.Millisecond)
	voter := primitive.NewObjectID()
	final := models.NumberEstimate(8)

	created, err := store.Create(ctx, models.Session{
		Name:           "Sprint 3",
		StartDate:      now,
		Duration:       45,
		Status:         models.SessionScheduled,
		Facilitator:    primitive.NewObjectID(),
		Participants:   []primitive.ObjectID{voter},
		EstimationType: models.EstimationCustom,
		CustomEstimationValues: []models.Estimate{
			models.NumberEstimate(1), models.LabelEstimate("big"),
		},
		Visibility: models.VisibilityPrivate,
		UserStories: []models.UserStory{{
			Title:           "Search",
			Description:     "Find things",
			Priority:        models.PriorityHigh,
			Status:          models.StoryCompleted,
			Votes:           []models.Vote{{UserID: voter, Value: models.LabelEstimate("big"), Timestamp: now}},
			FinalEstimation: &final,
			CreatedAt:       now,
			UpdatedAt:       now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(got.UserStories) != 1 || len(got.UserStories[0].Votes) != 1 {
		t.Fatalf("stories not embedded: %+v", got.UserStories)
	}
	st := got.UserStories[0]
	if st.Votes[0].UserID != voter {
		t.Errorf("voter = %s, want %s", st.Votes[0].UserID.Hex(), voter.Hex())
	}
	if l, ok := st.Votes[0].Value.Label(); !ok || l != "big" {
		t.Errorf("vote value = %v", st.Votes[0].Value)
	}
	if st.FinalEstimation == nil || st.FinalEstimation.String() != "8" {
		t.Errorf("final estimation = %v", st.FinalEstimation)
	}
	if len(got.CustomEstimationValues) != 2 || got.CustomEstimationValues[1].String() != "big" {
		t.Errorf("custom values = %v", got.CustomEstimationValues)
	}

	if _, err := store.GetByID(ctx, primitive.NewObjectID()); !errors.Is(err, sessions.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_ListFilters(t *testing.T) {
	db := testutil.SetupTestDB(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	fixtures := testutil.NewFixtures(t, db)
	fac := primitive.NewObjectID()
	base := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)
	fixtures.CreateSession(ctx, "a", models.SessionActive, base, fac)
	fixtures.CreateSession(ctx, "b", models.SessionActive, base.Add(time.Hour), primitive.NewObjectID())
	fixtures.CreateSession(ctx, "c", models.SessionCompleted, base.Add(2*time.Hour), fac)

	store := sessions.New(dbconn.Static(db))
	pg := paging.Page{Page: 1, Limit: 10}

	all, total, err := store.List(ctx, sessions.Filter{}, pg)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 || all[0].Name != "c" {
		t.Errorf("total=%d first=%q, want 3 and latest start first", total, all[0].Name)
	}

	_, total, err = store.List(ctx, sessions.Filter{Status: models.SessionActive}, pg)
	if err != nil {
		t.Fatalf("List by status: %v", err)
	}
	if total != 2 {
		t.Errorf("active total = %d, want 2", total)
	}

	_, total, err = store.List(ctx, sessions.Filter{Facilitator: &fac, Status: models.SessionCompleted}, pg)
	if err != nil {
		t.Fatalf("List by facilitator: %v", err)
	}
	if total != 1 {
		t.Errorf("facilitator+completed total = %d, want 1", total)
	}
}
