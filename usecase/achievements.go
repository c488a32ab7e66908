package usecase

import (
	"context"
	"log"
	"main/model"
	"main/utils"
	"time"
)

type achievementRule struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      func(progress *model.UserProgress, moodCount int) bool
}

// The fixed achievement table. Rules read only aggregate progress, so a
// re-check after every XP mutation stays cheap.
var achievementRules = []achievementRule{
	{
		ID: "first_mission", Name: "First Mission", Description: "Complete your first mission", Icon: "✓",
		Earned: func(p *model.UserProgress, _ int) bool { return p.TotalMissionsCompleted >= 1 },
	},
	{
		ID: "ten_missions", Name: "Dedicated Shinobi", Description: "Complete 10 missions", Icon: "📋",
		Earned: func(p *model.UserProgress, _ int) bool { return p.TotalMissionsCompleted >= 10 },
	},
	{
		ID: "fifty_missions", Name: "Mission Veteran", Description: "Complete 50 missions", Icon: "🏅",
		Earned: func(p *model.UserProgress, _ int) bool { return p.TotalMissionsCompleted >= 50 },
	},
	{
		ID: "reach_chunin", Name: "Chunin Exams", Description: "Reach the chunin rank", Icon: "🥋",
		Earned: func(p *model.UserProgress, _ int) bool { return p.XP >= model.ChuninXP },
	},
	{
		ID: "reach_jounin", Name: "Elite Jounin", Description: "Reach the jounin rank", Icon: "🎖",
		Earned: func(p *model.UserProgress, _ int) bool { return p.XP >= model.JouninXP },
	},
	{
		ID: "reach_hokage", Name: "Hokage", Description: "Reach the hokage rank", Icon: "🏆",
		Earned: func(p *model.UserProgress, _ int) bool { return p.XP >= model.HokageXP },
	},
	{
		ID: "week_streak", Name: "Seven Days Strong", Description: "Keep a 7-day streak", Icon: "🔥",
		Earned: func(p *model.UserProgress, _ int) bool { return p.Streak >= 7 },
	},
	{
		ID: "first_mood", Name: "Know Thyself", Description: "Log your first mood", Icon: "🧘",
		Earned: func(_ *model.UserProgress, moodCount int) bool { return moodCount >= 1 },
	},
}

// AchievementStore is the persistence boundary for unlocked achievements.
type AchievementStore interface {
	InsertAchievement(ctx context.Context, achievement *model.Achievement) error
	HasAchievement(ctx context.Context, userID string, achievementID string) (bool, error)
}

// MoodCounter exposes the mood history size achievement rules consume.
type MoodCounter interface {
	CountUserMoods(ctx context.Context, userID string) (int, error)
}

// AchievementEvaluator re-reads progress and unlocks any newly earned
// achievements. Side-effect only: errors are logged, never propagated.
type AchievementEvaluator struct {
	progressRepo     ProgressStore
	achievementsRepo AchievementStore
	moodsRepo        MoodCounter
}

func NewAchievementEvaluator(progressRepo ProgressStore, achievementsRepo AchievementStore, moodsRepo MoodCounter) *AchievementEvaluator {
	return &AchievementEvaluator{
		progressRepo:     progressRepo,
		achievementsRepo: achievementsRepo,
		moodsRepo:        moodsRepo,
	}
}

func (e *AchievementEvaluator) Check(ctx context.Context, userID string) {
	progress, err := e.progressRepo.GetProgress(ctx, userID)
	if err != nil {
		log.Printf("achievement check skipped for %s: %v", userID, err)
		return
	}
	if progress == nil {
		return
	}

	moodCount, err := e.moodsRepo.CountUserMoods(ctx, userID)
	if err != nil {
		log.Printf("achievement mood count failed for %s: %v", userID, err)
		moodCount = 0
	}

	for _, rule := range achievementRules {
		if !rule.Earned(progress, moodCount) {
			continue
		}

		unlocked, err := e.achievementsRepo.HasAchievement(ctx, userID, rule.ID)
		if err != nil {
			log.Printf("achievement lookup failed for %s/%s: %v", userID, rule.ID, err)
			continue
		}
		if unlocked {
			continue
		}

		achievement := &model.Achievement{
			AchievementID: rule.ID,
			UserID:        userID,
			Name:          rule.Name,
			Description:   rule.Description,
			Icon:          rule.Icon,
			UnlockedAt:    time.Now(),
		}
		if err := e.achievementsRepo.InsertAchievement(ctx, achievement); err != nil {
			log.Printf("achievement unlock failed for %s/%s: %v", userID, rule.ID, err)
			continue
		}

		utils.AchievementsUnlockedTotal.Inc()
		log.Printf("achievement unlocked for %s: %s", userID, rule.Name)
	}
}

// ListRules exposes the full table for the achievements endpoint.
func ListRules() []model.Achievement {
	out := make([]model.Achievement, len(achievementRules))
	for i, rule := range achievementRules {
		out[i] = model.Achievement{
			AchievementID: rule.ID,
			Name:          rule.Name,
			Description:   rule.Description,
			Icon:          rule.Icon,
		}
	}
	return out
}
