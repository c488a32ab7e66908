package usecase

import (
	"context"
	"main/model"
	"testing"
	"time"
)

type fakeProgressStore struct {
	progress map[string]*model.UserProgress
	saves    int
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{progress: make(map[string]*model.UserProgress)}
}

func (f *fakeProgressStore) GetProgress(ctx context.Context, userID string) (*model.UserProgress, error) {
	p, ok := f.progress[userID]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProgressStore) SaveProgress(ctx context.Context, progress *model.UserProgress) error {
	clone := *progress
	f.progress[progress.UserID] = &clone
	f.saves++
	return nil
}

type recordingChecker struct {
	calls int
}

func (r *recordingChecker) Check(ctx context.Context, userID string) {
	r.calls++
}

func newTestEngine() (*ProgressionEngine, *fakeProgressStore, *recordingChecker) {
	store := newFakeProgressStore()
	checker := &recordingChecker{}
	return NewProgressionEngine(store, nil, checker), store, checker
}

func TestLevel(t *testing.T) {
	tests := []struct {
		xp   int
		want int
	}{
		{0, 1},
		{50, 1},
		{99, 1},
		{100, 2},
		{550, 6},
		{2000, 21},
	}

	for _, tt := range tests {
		if got := Level(tt.xp); got != tt.want {
			t.Errorf("Level(%d) = %d, want %d", tt.xp, got, tt.want)
		}
	}
}

func TestRankBoundaries(t *testing.T) {
	tests := []struct {
		xp   int
		want model.Rank
	}{
		{0, model.RankGenin},
		{499, model.RankGenin},
		{500, model.RankChunin},
		{999, model.RankChunin},
		{1000, model.RankJounin},
		{1999, model.RankJounin},
		{2000, model.RankHokage},
	}

	for _, tt := range tests {
		if got := RankForXP(tt.xp); got != tt.want {
			t.Errorf("RankForXP(%d) = %s, want %s", tt.xp, got, tt.want)
		}
	}
}

func TestApplyMissionReward(t *testing.T) {
	engine, _, checker := newTestEngine()
	ctx := context.Background()
	userID := "user-1"

	// Start at xp=0, complete a 50 XP mission
	progress, err := engine.ApplyMissionReward(ctx, userID, 50, false)
	if err != nil {
		t.Fatalf("ApplyMissionReward failed: %v", err)
	}
	if progress.XP != 50 || progress.Level != 1 || progress.Rank != model.RankGenin {
		t.Errorf("got xp=%d level=%d rank=%s, want 50/1/genin", progress.XP, progress.Level, progress.Rank)
	}
	if progress.CompletedMissions != 1 || progress.TotalMissionsCompleted != 1 {
		t.Errorf("mission counters not incremented: %+v", progress)
	}

	// Complete a 500 XP mission
	progress, err = engine.ApplyMissionReward(ctx, userID, 500, false)
	if err != nil {
		t.Fatalf("ApplyMissionReward failed: %v", err)
	}
	if progress.XP != 550 || progress.Level != 6 || progress.Rank != model.RankChunin {
		t.Errorf("got xp=%d level=%d rank=%s, want 550/6/chunin", progress.XP, progress.Level, progress.Rank)
	}

	if checker.calls != 2 {
		t.Errorf("achievement evaluator called %d times, want 2", checker.calls)
	}
}

func TestApplyMissionRewardStreak(t *testing.T) {
	engine, _, _ := newTestEngine()
	ctx := context.Background()
	userID := "user-1"

	progress, err := engine.ApplyMissionReward(ctx, userID, 10, true)
	if err != nil {
		t.Fatalf("ApplyMissionReward failed: %v", err)
	}
	if progress.Streak != 1 {
		t.Errorf("streak = %d, want 1", progress.Streak)
	}

	// A non-clearing completion leaves the streak where it is
	progress, err = engine.ApplyMissionReward(ctx, userID, 10, false)
	if err != nil {
		t.Fatalf("ApplyMissionReward failed: %v", err)
	}
	if progress.Streak != 1 {
		t.Errorf("streak = %d, want 1", progress.Streak)
	}
}

func TestApplyMoodBonus(t *testing.T) {
	engine, _, checker := newTestEngine()
	ctx := context.Background()
	userID := "user-1"

	progress, applied, err := engine.ApplyMoodBonus(ctx, userID)
	if err != nil {
		t.Fatalf("ApplyMoodBonus failed: %v", err)
	}
	if !applied {
		t.Fatal("first mood bonus was not applied")
	}
	if progress.XP != model.MoodBonusXP {
		t.Errorf("xp = %d, want %d", progress.XP, model.MoodBonusXP)
	}
	if !progress.HasMoodSubmittedToday(time.Now()) {
		t.Error("mood flag not set after bonus")
	}

	// Same-day replay is a silent no-op
	progress, applied, err = engine.ApplyMoodBonus(ctx, userID)
	if err != nil {
		t.Fatalf("ApplyMoodBonus replay failed: %v", err)
	}
	if applied {
		t.Error("second same-day bonus was applied")
	}
	if progress.XP != model.MoodBonusXP {
		t.Errorf("xp changed on replay: %d", progress.XP)
	}

	if checker.calls != 1 {
		t.Errorf("achievement evaluator called %d times, want 1", checker.calls)
	}
}

func TestResetStreak(t *testing.T) {
	engine, store, _ := newTestEngine()
	ctx := context.Background()
	userID := "user-1"

	if _, err := engine.ApplyMissionReward(ctx, userID, 10, true); err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := engine.ResetStreak(ctx, userID); err != nil {
		t.Fatalf("ResetStreak failed: %v", err)
	}
	if store.progress[userID].Streak != 0 {
		t.Errorf("streak = %d after reset, want 0", store.progress[userID].Streak)
	}
}
