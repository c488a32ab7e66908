package dto

import (
	"main/model"
	"time"
)

type AchievementResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	Unlocked    bool       `json:"unlocked"`
	UnlockedAt  *time.Time `json:"unlocked_at,omitempty"`
}

// ToAchievementResponses merges the full rule table with the user's
// unlocked set so locked achievements still show up in the list.
func ToAchievementResponses(all []model.Achievement, unlocked []*model.Achievement) []AchievementResponse {
	unlockedAt := make(map[string]time.Time, len(unlocked))
	for _, a := range unlocked {
		unlockedAt[a.AchievementID] = a.UnlockedAt
	}

	responses := make([]AchievementResponse, len(all))
	for i, a := range all {
		response := AchievementResponse{
			ID:          a.AchievementID,
			Name:        a.Name,
			Description: a.Description,
			Icon:        a.Icon,
		}
		if at, ok := unlockedAt[a.AchievementID]; ok {
			response.Unlocked = true
			response.UnlockedAt = &at
		}
		responses[i] = response
	}
	return responses
}
