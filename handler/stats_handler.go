package handler

import (
	"log"
	"main/model"
	"main/repository"
	"main/usecase"
	"main/utils"
	"time"

	"github.com/gin-gonic/gin"
)

type StatsHandler struct {
	store       *usecase.MissionStore
	progression *usecase.ProgressionEngine
	moodsRepo   *repository.MoodsRepo
}

func NewStatsHandler(
	store *usecase.MissionStore,
	progression *usecase.ProgressionEngine,
	moodsRepo *repository.MoodsRepo,
) *StatsHandler {
	return &StatsHandler{
		store:       store,
		progression: progression,
		moodsRepo:   moodsRepo,
	}
}

func (h *StatsHandler) GetUserStats(c *gin.Context) {
	ctx := c.Request.Context()
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	progress, err := h.progression.GetProgress(ctx, userID.(string))
	if err != nil {
		log.Printf("Error fetching progress for %s: %v", userID, err)
		utils.InternalError(c, "Failed to fetch progress")
		return
	}

	var stats model.UserStats

	daily, weekly, _ := h.store.Missions(userID.(string))
	stats.MissionStats.DailyTotal = len(daily)
	stats.MissionStats.WeeklyTotal = len(weekly)
	for _, m := range daily {
		if m.IsCompleted {
			stats.MissionStats.DailyCompleted++
		}
	}
	for _, m := range weekly {
		if m.IsCompleted {
			stats.MissionStats.WeeklyCompleted++
		}
	}

	stats.ProgressStats.XP = progress.XP
	stats.ProgressStats.Level = progress.Level
	stats.ProgressStats.Rank = progress.Rank
	stats.ProgressStats.Streak = progress.Streak
	stats.ProgressStats.TotalMissionsCompleted = progress.TotalMissionsCompleted
	stats.ProgressStats.AchievementsTotal = len(usecase.ListRules())

	entries, err := h.moodsRepo.GetUserMoods(ctx, userID.(string), 0)
	if err != nil {
		log.Printf("Error fetching moods: %v", err)
		utils.InternalError(c, "Failed to fetch moods")
		return
	}
	stats.MoodStats.TotalEntries = len(entries)
	stats.MoodStats.SubmittedToday = progress.HasMoodSubmittedToday(time.Now())
	for _, entry := range entries {
		stats.MoodStats.BonusXPAccrued += entry.BonusXP
	}

	stats.SystemStats.CPUUsage = utils.GetCPUUsage()
	stats.SystemStats.MongoConnections = utils.GetMongoMetrics().ActiveConnections

	utils.Success(c, stats)
}
