// internal/app/features/sessions/types.go
package sessions

import (
	"github.com/dalemusser/pokerhub/internal/app/system/paging"
	"github.com/dalemusser/pokerhub/internal/domain/models"
)

// sessionInput is the POST /api/sessions body. References and dates
// arrive as strings.
type sessionInput struct {
	Name                   string            `json:"name"`
	StartDate              string            `json:"startDate"`
	EndDate                string            `json:"endDate"`
	Duration               float64           `json:"duration"` // minutes
	Status                 string            `json:"status"`
	Facilitator            string            `json:"facilitator"`
	Participants           []string          `json:"participants"`
	EstimationType         string            `json:"estimationType"`
	CustomEstimationValues []models.Estimate `json:"customEstimationValues"`
	Visibility             string            `json:"visibility"`
	AccessCode             string            `json:"accessCode"`
	UserStories            []storyInput      `json:"userStories"`
}

type storyInput struct {
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Priority        string           `json:"priority"`
	Status          string           `json:"status"`
	Votes           []voteInput      `json:"votes"`
	FinalEstimation *models.Estimate `json:"finalEstimation"`
}

type voteInput struct {
	UserID    string          `json:"userId"`
	Value     models.Estimate `json:"value"`
	Timestamp string          `json:"timestamp"`
}

type listResponse struct {
	Sessions   []models.Session  `json:"sessions"`
	Pagination paging.Pagination `json:"pagination"`
}
