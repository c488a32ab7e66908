package dto

import (
	"main/model"
	"time"
)

type MissionResponse struct {
	ID          string              `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	XPReward    int                 `json:"xp_reward"`
	Frequency   model.Frequency     `json:"frequency"`
	Path        model.CharacterPath `json:"path,omitempty"`
	IsCompleted bool                `json:"is_completed"`
	CompletedAt *time.Time          `json:"completed_at,omitempty"`
	ResetTime   time.Time           `json:"reset_time"`
	TimeToReset string              `json:"time_to_reset,omitempty"` // Computed field
}

type MissionSetResponse struct {
	State  string            `json:"state"`
	Daily  []MissionResponse `json:"daily"`
	Weekly []MissionResponse `json:"weekly"`
}

// Convert model.Mission to MissionResponse
func ToMissionResponse(mission *model.Mission) MissionResponse {
	response := MissionResponse{
		ID:          mission.MissionID,
		Title:       mission.Title,
		Description: mission.Description,
		XPReward:    mission.XPReward,
		Frequency:   mission.Frequency,
		Path:        mission.Path,
		IsCompleted: mission.IsCompleted,
		ResetTime:   mission.ResetTime,
	}

	// Handle nullable time fields
	if !mission.CompletedAt.IsZero() {
		completedAt := mission.CompletedAt
		response.CompletedAt = &completedAt
	}

	if !mission.ResetTime.IsZero() {
		if mission.ShouldReset(time.Now()) {
			response.TimeToReset = "Expired"
		} else {
			response.TimeToReset = time.Until(mission.ResetTime).Round(time.Minute).String()
		}
	}

	return response
}

// Convert slice of model.Mission to slice of MissionResponse
func ToMissionResponses(missions []*model.Mission) []MissionResponse {
	responses := make([]MissionResponse, len(missions))
	for i, mission := range missions {
		responses[i] = ToMissionResponse(mission)
	}
	return responses
}
