// internal/app/features/sessions/normalize.go
package sessions

import (
	"time"

	"github.com/dalemusser/pokerhub/internal/app/system/inputval"
	"github.com/dalemusser/pokerhub/internal/app/system/normalize"
	"github.com/dalemusser/pokerhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// normalizeSession converts validated input into the stored document.
// Call validateSession first; unparseable fields are not re-checked.
func normalizeSession(in sessionInput, now time.Time) models.Session {
	start, _ := normalize.Date(in.StartDate)

	s := models.Session{
		Name:           normalize.Name(in.Name),
		StartDate:      start,
		Duration:       int(in.Duration),
		Status:         orDefault(in.Status, models.SessionScheduled),
		EstimationType: in.EstimationType,
		Visibility:     orDefault(in.Visibility, models.VisibilityPrivate),
		Participants:   make([]primitive.ObjectID, 0, len(in.Participants)),
		UserStories:    make([]models.UserStory, 0, len(in.UserStories)),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if end, ok := normalize.Date(in.EndDate); ok {
		s.EndDate = &end
	}
	s.Facilitator, _ = normalize.ObjectID(in.Facilitator)
	for _, raw := range in.Participants {
		id, _ := normalize.ObjectID(raw)
		s.Participants = append(s.Participants, id)
	}
	if in.EstimationType == models.EstimationCustom {
		s.CustomEstimationValues = append([]models.Estimate{}, in.CustomEstimationValues...)
	} else {
		s.CustomEstimationValues = []models.Estimate{}
	}
	if !inputval.IsBlank(in.AccessCode) {
		code := in.AccessCode
		s.AccessCode = &code
	}
	for _, st := range in.UserStories {
		s.UserStories = append(s.UserStories, normalizeStory(st, now))
	}
	return s
}

func normalizeStory(st storyInput, now time.Time) models.UserStory {
	story := models.UserStory{
		Title:       normalize.Name(st.Title),
		Description: st.Description,
		Priority:    orDefault(st.Priority, models.PriorityMedium),
		Status:      orDefault(st.Status, models.StoryPending),
		Votes:       make([]models.Vote, 0, len(st.Votes)),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if st.FinalEstimation != nil && !st.FinalEstimation.IsZero() {
		fe := *st.FinalEstimation
		story.FinalEstimation = &fe
	}
	for _, v := range st.Votes {
		voter, _ := normalize.ObjectID(v.UserID)
		ts, ok := normalize.Date(v.Timestamp)
		if !ok {
			ts = now
		}
		story.Votes = append(story.Votes, models.Vote{UserID: voter, Value: v.Value, Timestamp: ts})
	}
	return story
}

func orDefault(s, def string) string {
	if inputval.IsBlank(s) {
		return def
	}
	return s
}
