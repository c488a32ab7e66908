package dto

import (
	"main/model"
	"time"
)

type MoodEntryResponse struct {
	ID      string     `json:"id"`
	Mood    model.Mood `json:"mood"`
	Date    time.Time  `json:"date"`
	BonusXP int        `json:"bonus_xp"`
}

type MoodSubmissionResponse struct {
	Entry        MoodEntryResponse `json:"entry"`
	BonusApplied bool              `json:"bonus_applied"`
	Progress     ProgressResponse  `json:"progress"`
}

// Convert model.MoodEntry to MoodEntryResponse
func ToMoodEntryResponse(entry *model.MoodEntry) MoodEntryResponse {
	return MoodEntryResponse{
		ID:      entry.EntryID,
		Mood:    entry.Mood,
		Date:    entry.Date,
		BonusXP: entry.BonusXP,
	}
}

// Convert slice of model.MoodEntry to slice of MoodEntryResponse
func ToMoodEntryResponses(entries []*model.MoodEntry) []MoodEntryResponse {
	responses := make([]MoodEntryResponse, len(entries))
	for i, entry := range entries {
		responses[i] = ToMoodEntryResponse(entry)
	}
	return responses
}
