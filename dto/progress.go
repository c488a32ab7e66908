package dto

import (
	"main/model"
	"time"
)

type ProgressResponse struct {
	UserID                 string              `json:"user_id"`
	Path                   model.CharacterPath `json:"path,omitempty"`
	XP                     int                 `json:"xp"`
	Level                  int                 `json:"level"`
	Rank                   model.Rank          `json:"rank"`
	Streak                 int                 `json:"streak"`
	CompletedMissions      int                 `json:"completed_missions"`
	TotalMissionsCompleted int                 `json:"total_missions_completed"`
	HasMoodSubmittedToday  bool                `json:"has_mood_submitted_today"`
	XPToNextLevel          int                 `json:"xp_to_next_level"` // Computed field
}

// Convert model.UserProgress to ProgressResponse
func ToProgressResponse(progress *model.UserProgress) ProgressResponse {
	return ProgressResponse{
		UserID:                 progress.UserID,
		Path:                   progress.Path,
		XP:                     progress.XP,
		Level:                  progress.Level,
		Rank:                   progress.Rank,
		Streak:                 progress.Streak,
		CompletedMissions:      progress.CompletedMissions,
		TotalMissionsCompleted: progress.TotalMissionsCompleted,
		HasMoodSubmittedToday:  progress.HasMoodSubmittedToday(time.Now()),
		XPToNextLevel:          100 - progress.XP%100,
	}
}
