// internal/app/features/sessions/validate.go
package sessions

import (
	"strings"

	"github.com/dalemusser/pokerhub/internal/app/system/apierr"
	"github.com/dalemusser/pokerhub/internal/app/system/inputval"
	"github.com/dalemusser/pokerhub/internal/app/system/limits"
	"github.com/dalemusser/pokerhub/internal/app/system/normalize"
	"github.com/dalemusser/pokerhub/internal/domain/models"
)

// validateSession checks in field by field and returns the first
// failure. Status, visibility, priority and story status are optional;
// when present they must be in their allowed set.
func validateSession(in sessionInput) error {
	if inputval.IsBlank(in.Name) {
		return apierr.Invalid("Session name is required")
	}
	if _, ok := normalize.Date(in.StartDate); !ok {
		return apierr.Invalid("Valid start date is required")
	}
	if !inputval.IsBlank(in.EndDate) {
		if _, ok := normalize.Date(in.EndDate); !ok {
			return apierr.Invalid("Invalid end date format")
		}
	}
	if in.Duration < 1 {
		return apierr.Invalid("Duration must be at least 1 minute")
	}
	if in.Duration > limits.MaxDurationMinutes {
		return apierr.Invalid("Duration must be at most %d minutes", limits.MaxDurationMinutes)
	}
	if !inputval.IsValidObjectID(strings.TrimSpace(in.Facilitator)) {
		return apierr.Invalid("Valid facilitator ID is required")
	}
	for _, id := range in.Participants {
		if !inputval.IsValidObjectID(strings.TrimSpace(id)) {
			return apierr.Invalid("Invalid participant ID: %s", id)
		}
	}
	if !inputval.OneOf(in.EstimationType, models.EstimationTypes) {
		return apierr.Invalid("Invalid estimation type")
	}
	if in.EstimationType == models.EstimationCustom && !validCustomValues(in.CustomEstimationValues) {
		return apierr.Invalid("Custom estimation type requires valid estimation values")
	}
	if in.Status != "" && !inputval.OneOf(in.Status, models.SessionStatuses) {
		return apierr.Invalid("Invalid session status")
	}
	if in.Visibility != "" && !inputval.OneOf(in.Visibility, models.Visibilities) {
		return apierr.Invalid("Invalid session visibility")
	}
	if len(in.UserStories) > limits.MaxUserStories {
		return apierr.Invalid("A session may hold at most %d user stories", limits.MaxUserStories)
	}
	for i, st := range in.UserStories {
		if err := validateStory(i, st); err != nil {
			return err
		}
	}
	return nil
}

func validateStory(index int, st storyInput) error {
	if inputval.IsBlank(st.Title) {
		return apierr.Invalid("User story at index %d requires a title", index)
	}
	if inputval.IsBlank(st.Description) {
		return apierr.Invalid("User story at index %d requires a description", index)
	}
	if st.Priority != "" && !inputval.OneOf(st.Priority, models.StoryPriorities) {
		return apierr.Invalid("Invalid priority for user story: %s", st.Title)
	}
	if st.Status != "" && !inputval.OneOf(st.Status, models.StoryStatuses) {
		return apierr.Invalid("Invalid status for user story: %s", st.Title)
	}
	if len(st.Votes) > limits.MaxVotesPerStory {
		return apierr.Invalid("User story %s may hold at most %d votes", st.Title, limits.MaxVotesPerStory)
	}
	for _, v := range st.Votes {
		if !inputval.IsValidObjectID(strings.TrimSpace(v.UserID)) {
			return apierr.Invalid("Invalid voter ID for user story: %s", st.Title)
		}
		if !hasValue(v.Value) {
			return apierr.Invalid("Vote value is required for user story: %s", st.Title)
		}
		if !inputval.IsBlank(v.Timestamp) {
			if _, ok := normalize.Date(v.Timestamp); !ok {
				return apierr.Invalid("Invalid vote timestamp for user story: %s", st.Title)
			}
		}
	}
	return nil
}

// hasValue reports whether e is a number or a non-blank label.
func hasValue(e models.Estimate) bool {
	if e.IsNumber() {
		return true
	}
	label, ok := e.Label()
	return ok && !inputval.IsBlank(label)
}

func validCustomValues(vals []models.Estimate) bool {
	if len(vals) == 0 {
		return false
	}
	for _, v := range vals {
		if !hasValue(v) {
			return false
		}
	}
	return true
}
