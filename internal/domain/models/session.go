// internal/domain/models/session.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session statuses.
const (
	SessionScheduled = "scheduled"
	SessionActive    = "active"
	SessionCompleted = "completed"
)

// Estimation scales.
const (
	EstimationFibonacci = "fibonacci"
	EstimationTShirt    = "tshirt"
	EstimationCustom    = "custom"
)

// Session visibility.
const (
	VisibilityPrivate = "private"
	VisibilityPublic  = "public"
)

// User story priorities.
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// User story statuses.
const (
	StoryPending   = "pending"
	StoryVoting    = "voting"
	StoryCompleted = "completed"
)

var (
	SessionStatuses = []string{SessionScheduled, SessionActive, SessionCompleted}
	EstimationTypes = []string{EstimationFibonacci, EstimationTShirt, EstimationCustom}
	Visibilities    = []string{VisibilityPrivate, VisibilityPublic}
	StoryPriorities = []string{PriorityHigh, PriorityMedium, PriorityLow}
	StoryStatuses   = []string{StoryPending, StoryVoting, StoryCompleted}
)

// Session is an estimation meeting. User stories and their votes are
// embedded and saved together with the session as one document.
//
// Facilitator, Participants and Vote.UserID reference users but are not
// checked for existence.
type Session struct {
	ID                     primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name                   string               `bson:"name" json:"name"`
	StartDate              time.Time            `bson:"start_date" json:"startDate"`
	EndDate                *time.Time           `bson:"end_date,omitempty" json:"endDate,omitempty"`
	Duration               int                  `bson:"duration" json:"duration"` // minutes
	Status                 string               `bson:"status" json:"status"`
	Facilitator            primitive.ObjectID   `bson:"facilitator" json:"facilitator"`
	Participants           []primitive.ObjectID `bson:"participants" json:"participants"`
	EstimationType         string               `bson:"estimation_type" json:"estimationType"`
	CustomEstimationValues []Estimate           `bson:"custom_estimation_values" json:"customEstimationValues"`
	Visibility             string               `bson:"visibility" json:"visibility"`
	AccessCode             *string              `bson:"access_code,omitempty" json:"accessCode,omitempty"`
	UserStories            []UserStory          `bson:"user_stories" json:"userStories"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// UserStory is a unit of work estimated within a session.
type UserStory struct {
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description" json:"description"`
	Priority        string    `bson:"priority" json:"priority"`
	Status          string    `bson:"status" json:"status"`
	Votes           []Vote    `bson:"votes" json:"votes"`
	FinalEstimation *Estimate `bson:"final_estimation" json:"finalEstimation"`

	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
	UpdatedAt time.Time `bson:"updated_at" json:"updatedAt"`
}

// Vote is one participant's estimate for a user story.
type Vote struct {
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Value     Estimate           `bson:"value" json:"value"`
	Timestamp time.Time          `bson:"timestamp" json:"timestamp"`
}
