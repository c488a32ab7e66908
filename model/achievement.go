package model

import "time"

type Achievement struct {
	AchievementID string    `bson:"achievement_id" json:"achievement_id"`
	UserID        string    `bson:"user_id" json:"user_id"`
	Name          string    `bson:"name" json:"name"`
	Description   string    `bson:"description" json:"description"`
	Icon          string    `bson:"icon" json:"icon"`
	UnlockedAt    time.Time `bson:"unlocked_at" json:"unlocked_at"`
}

type UserStats struct {
	MissionStats struct {
		DailyTotal      int `json:"daily_total"`
		DailyCompleted  int `json:"daily_completed"`
		WeeklyTotal     int `json:"weekly_total"`
		WeeklyCompleted int `json:"weekly_completed"`
	} `json:"mission_stats"`
	ProgressStats struct {
		XP                     int  `json:"xp"`
		Level                  int  `json:"level"`
		Rank                   Rank `json:"rank"`
		Streak                 int  `json:"streak"`
		TotalMissionsCompleted int  `json:"total_missions_completed"`
		AchievementsTotal      int  `json:"achievements_total"`
	} `json:"progress_stats"`
	MoodStats struct {
		TotalEntries   int  `json:"total_entries"`
		SubmittedToday bool `json:"submitted_today"`
		BonusXPAccrued int  `json:"bonus_xp_accrued"`
	} `json:"mood_stats"`
	SystemStats struct {
		CPUUsage         float64 `json:"cpu_usage"`
		MongoConnections int64   `json:"mongo_connections"`
	} `json:"system_stats"`
}
