package usecase

import (
	"context"
	"main/model"
	"testing"
)

type fakeMoodStore struct {
	entries []*model.MoodEntry
}

func (f *fakeMoodStore) InsertMood(ctx context.Context, entry *model.MoodEntry) error {
	f.entries = append(f.entries, entry)
	return nil
}

func (f *fakeMoodStore) GetUserMoods(ctx context.Context, userID string, limit int) ([]*model.MoodEntry, error) {
	if limit > len(f.entries) {
		limit = len(f.entries)
	}
	return f.entries[:limit], nil
}

func (f *fakeMoodStore) CountUserMoods(ctx context.Context, userID string) (int, error) {
	return len(f.entries), nil
}

func TestSubmitMood(t *testing.T) {
	moodStore := &fakeMoodStore{}
	engine, _, _ := newTestEngine()
	svc := NewMoodService(moodStore, engine)
	ctx := context.Background()
	userID := "user-1"

	progress, entry, applied, err := svc.SubmitMood(ctx, userID, model.MoodMotivated)
	if err != nil {
		t.Fatalf("SubmitMood failed: %v", err)
	}
	if !applied {
		t.Fatal("first submission did not earn the bonus")
	}
	if progress.XP != model.MoodBonusXP {
		t.Errorf("xp = %d, want %d", progress.XP, model.MoodBonusXP)
	}
	if entry.Mood != model.MoodMotivated || entry.BonusXP != model.MoodBonusXP {
		t.Errorf("entry not recorded correctly: %+v", entry)
	}

	// A second same-day submission is still recorded, but earns nothing.
	progress, entry, applied, err = svc.SubmitMood(ctx, userID, model.MoodTired)
	if err != nil {
		t.Fatalf("second SubmitMood failed: %v", err)
	}
	if applied {
		t.Error("second same-day submission earned the bonus")
	}
	if progress.XP != model.MoodBonusXP {
		t.Errorf("xp = %d after replay, want %d", progress.XP, model.MoodBonusXP)
	}
	if entry.BonusXP != 0 {
		t.Errorf("replay entry bonus = %d, want 0", entry.BonusXP)
	}
	if len(moodStore.entries) != 2 {
		t.Errorf("stored %d entries, want 2", len(moodStore.entries))
	}
}

func TestGetUserMoodsLimit(t *testing.T) {
	moodStore := &fakeMoodStore{}
	engine, _, _ := newTestEngine()
	svc := NewMoodService(moodStore, engine)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		moodStore.entries = append(moodStore.entries, &model.MoodEntry{UserID: "user-1", Mood: model.MoodNeutral})
	}

	moods, err := svc.GetUserMoods(ctx, "user-1", 3)
	if err != nil {
		t.Fatalf("GetUserMoods failed: %v", err)
	}
	if len(moods) != 3 {
		t.Errorf("got %d entries, want 3", len(moods))
	}

	// Out-of-range limits fall back to the default.
	if _, err := svc.GetUserMoods(ctx, "user-1", -1); err != nil {
		t.Errorf("negative limit rejected: %v", err)
	}
	if _, err := svc.GetUserMoods(ctx, "user-1", 500); err != nil {
		t.Errorf("oversized limit rejected: %v", err)
	}
}
