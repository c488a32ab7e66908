package usecase

import (
	"main/model"
	"time"

	"github.com/google/uuid"
)

type weeklyTemplate struct {
	Title       string
	Description string
	XPReward    int
}

// Fixed weekly mission table keyed by character path. Weekly regeneration
// never touches the generator: the swap is synchronous and deterministic.
var weeklyTable = map[model.CharacterPath][]weeklyTemplate{
	model.PathNaruto: {
		{"Never Give Up", "Finish a task you abandoned earlier this month", 200},
		{"Shadow Clone Focus", "Complete five deep-work sessions this week", 250},
		{"Ramen Budget", "Track every expense for seven days straight", 150},
	},
	model.PathSasuke: {
		{"Lone Training", "Exercise alone four times this week", 200},
		{"Sharingan Study", "Review your notes from the last seven days", 250},
		{"Rivalry Check", "Beat one of last week's personal records", 300},
	},
	model.PathSakura: {
		{"Inner Strength", "Journal your mood every evening this week", 200},
		{"Precise Chakra", "Plan all meals for the coming week", 150},
		{"Medical Study", "Read three long-form articles on one topic", 250},
	},
	model.PathKakashi: {
		{"Thousand Pages", "Finish reading a book this week", 250},
		{"Copy Ninja", "Learn one technique from someone you admire", 200},
		{"Never Late Twice", "Arrive early to everything for three days", 150},
	},
}

// WeeklyMissions builds a fresh weekly set for the given path with reset
// times at the upcoming Monday midnight.
func WeeklyMissions(userID string, path model.CharacterPath, now time.Time) []*model.Mission {
	templates, ok := weeklyTable[path]
	if !ok {
		return nil
	}

	reset := model.NextWeeklyReset(now)
	missions := make([]*model.Mission, len(templates))
	for i, t := range templates {
		missions[i] = &model.Mission{
			MissionID:   uuid.New().String(),
			UserID:      userID,
			Title:       t.Title,
			Description: t.Description,
			XPReward:    t.XPReward,
			Frequency:   model.FrequencyWeekly,
			Path:        path,
			ResetTime:   reset,
			CreatedAt:   now,
		}
	}
	return missions
}
