package usecase

import (
	"context"
	"main/model"
	"testing"
)

type fakeAchievementStore struct {
	unlocked map[string]bool
	inserts  int
}

func newFakeAchievementStore() *fakeAchievementStore {
	return &fakeAchievementStore{unlocked: make(map[string]bool)}
}

func (f *fakeAchievementStore) InsertAchievement(ctx context.Context, achievement *model.Achievement) error {
	f.unlocked[achievement.AchievementID] = true
	f.inserts++
	return nil
}

func (f *fakeAchievementStore) HasAchievement(ctx context.Context, userID string, achievementID string) (bool, error) {
	return f.unlocked[achievementID], nil
}

type fakeMoodCounter struct {
	count int
}

func (f *fakeMoodCounter) CountUserMoods(ctx context.Context, userID string) (int, error) {
	return f.count, nil
}

func TestEvaluatorUnlocksEarnedAchievements(t *testing.T) {
	progressStore := newFakeProgressStore()
	achievements := newFakeAchievementStore()
	moods := &fakeMoodCounter{}
	evaluator := NewAchievementEvaluator(progressStore, achievements, moods)
	ctx := context.Background()
	userID := "user-1"

	progressStore.progress[userID] = &model.UserProgress{
		UserID:                 userID,
		XP:                     520,
		Level:                  6,
		Rank:                   model.RankChunin,
		TotalMissionsCompleted: 12,
	}

	evaluator.Check(ctx, userID)

	for _, want := range []string{"first_mission", "ten_missions", "reach_chunin"} {
		if !achievements.unlocked[want] {
			t.Errorf("%s not unlocked", want)
		}
	}
	for _, dontWant := range []string{"fifty_missions", "reach_jounin", "reach_hokage", "week_streak", "first_mood"} {
		if achievements.unlocked[dontWant] {
			t.Errorf("%s unlocked without being earned", dontWant)
		}
	}
}

func TestEvaluatorIsIdempotent(t *testing.T) {
	progressStore := newFakeProgressStore()
	achievements := newFakeAchievementStore()
	evaluator := NewAchievementEvaluator(progressStore, achievements, &fakeMoodCounter{})
	ctx := context.Background()
	userID := "user-1"

	progressStore.progress[userID] = &model.UserProgress{
		UserID:                 userID,
		TotalMissionsCompleted: 1,
	}

	evaluator.Check(ctx, userID)
	evaluator.Check(ctx, userID)

	if achievements.inserts != 1 {
		t.Errorf("InsertAchievement called %d times, want 1", achievements.inserts)
	}
}

func TestEvaluatorSkipsUnknownUser(t *testing.T) {
	achievements := newFakeAchievementStore()
	evaluator := NewAchievementEvaluator(newFakeProgressStore(), achievements, &fakeMoodCounter{})

	evaluator.Check(context.Background(), "nobody")

	if achievements.inserts != 0 {
		t.Errorf("InsertAchievement called %d times for unknown user", achievements.inserts)
	}
}

func TestEvaluatorMoodAchievement(t *testing.T) {
	progressStore := newFakeProgressStore()
	achievements := newFakeAchievementStore()
	moods := &fakeMoodCounter{count: 1}
	evaluator := NewAchievementEvaluator(progressStore, achievements, moods)
	userID := "user-1"

	progressStore.progress[userID] = &model.UserProgress{UserID: userID}

	evaluator.Check(context.Background(), userID)

	if !achievements.unlocked["first_mood"] {
		t.Error("first_mood not unlocked with one mood entry")
	}
}

func TestListRules(t *testing.T) {
	rules := ListRules()
	if len(rules) != len(achievementRules) {
		t.Fatalf("ListRules returned %d rules, want %d", len(rules), len(achievementRules))
	}
	seen := make(map[string]bool)
	for _, r := range rules {
		if r.AchievementID == "" || r.Name == "" {
			t.Errorf("rule missing id or name: %+v", r)
		}
		if seen[r.AchievementID] {
			t.Errorf("duplicate achievement id %s", r.AchievementID)
		}
		seen[r.AchievementID] = true
	}
}
