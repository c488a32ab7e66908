package usecase

import (
	"context"
	"log"
	"main/model"
	"time"

	"github.com/google/uuid"
)

// MoodStore is the persistence boundary for mood entries.
type MoodStore interface {
	InsertMood(ctx context.Context, entry *model.MoodEntry) error
	GetUserMoods(ctx context.Context, userID string, limit int) ([]*model.MoodEntry, error)
	CountUserMoods(ctx context.Context, userID string) (int, error)
}

type MoodService struct {
	repo        MoodStore
	progression *ProgressionEngine
}

func NewMoodService(repo MoodStore, progression *ProgressionEngine) *MoodService {
	return &MoodService{repo: repo, progression: progression}
}

// SubmitMood records a mood entry and grants the daily bonus through the
// progression engine. The entry is kept even when the bonus was already
// granted today; bonus_xp records what this submission actually earned.
func (svc *MoodService) SubmitMood(ctx context.Context, userID string, mood model.Mood) (*model.UserProgress, *model.MoodEntry, bool, error) {
	progress, applied, err := svc.progression.ApplyMoodBonus(ctx, userID)
	if err != nil {
		return nil, nil, false, err
	}

	bonus := 0
	if applied {
		bonus = model.MoodBonusXP
	}

	now := time.Now()
	entry := &model.MoodEntry{
		EntryID:   uuid.New().String(),
		UserID:    userID,
		Mood:      mood,
		Date:      now,
		BonusXP:   bonus,
		CreatedAt: now,
	}
	if err := svc.repo.InsertMood(ctx, entry); err != nil {
		log.Printf("mood entry persistence failed for %s: %v", userID, err)
	}

	return progress, entry, applied, nil
}

// GetUserMoods returns the most recent mood entries, newest first.
func (svc *MoodService) GetUserMoods(ctx context.Context, userID string, limit int) ([]*model.MoodEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 30
	}
	return svc.repo.GetUserMoods(ctx, userID, limit)
}
