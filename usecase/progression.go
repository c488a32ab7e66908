package usecase

import (
	"context"
	"log"
	"main/model"
	"time"
)

// AchievementChecker is re-run after every XP-affecting mutation. It reads
// current progress itself; the engine passes no state.
type AchievementChecker interface {
	Check(ctx context.Context, userID string)
}

// ProgressCache holds hot progress snapshots in front of the repository.
type ProgressCache interface {
	GetProgress(ctx context.Context, userID string) (*model.UserProgress, error)
	SetProgress(ctx context.Context, progress *model.UserProgress) error
	InvalidateProgress(ctx context.Context, userID string) error
}

// ProgressStore is the persistence boundary for progress documents.
type ProgressStore interface {
	GetProgress(ctx context.Context, userID string) (*model.UserProgress, error)
	SaveProgress(ctx context.Context, progress *model.UserProgress) error
}

type ProgressionEngine struct {
	repo      ProgressStore
	cache     ProgressCache
	evaluator AchievementChecker
}

func NewProgressionEngine(repo ProgressStore, cache ProgressCache, evaluator AchievementChecker) *ProgressionEngine {
	return &ProgressionEngine{repo: repo, cache: cache, evaluator: evaluator}
}

// Level is a pure function of cumulative XP.
func Level(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/100 + 1
}

// RankForXP maps cumulative XP to a rank. Thresholds are closed-open
// intervals; a boundary value belongs to the higher rank.
func RankForXP(xp int) model.Rank {
	switch {
	case xp >= model.HokageXP:
		return model.RankHokage
	case xp >= model.JouninXP:
		return model.RankJounin
	case xp >= model.ChuninXP:
		return model.RankChunin
	default:
		return model.RankGenin
	}
}

// GetProgress returns the user's progress, creating a zeroed record on
// first use. The cache is consulted before the repository.
func (e *ProgressionEngine) GetProgress(ctx context.Context, userID string) (*model.UserProgress, error) {
	if e.cache != nil {
		if cached, err := e.cache.GetProgress(ctx, userID); err != nil {
			log.Printf("progress cache read failed for %s: %v", userID, err)
		} else if cached != nil {
			return cached, nil
		}
	}

	progress, err := e.repo.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}
	if progress == nil {
		progress = &model.UserProgress{
			UserID: userID,
			Level:  Level(0),
			Rank:   RankForXP(0),
		}
		if err := e.repo.SaveProgress(ctx, progress); err != nil {
			return nil, err
		}
	}

	e.refreshCache(ctx, progress)
	return progress, nil
}

// ApplyMissionReward folds a completion reward into the user's progress:
// xp grows by reward, level and rank are recomputed, the mission counters
// advance, and clearedDaily bumps the streak for the cycle that was just
// fully completed. The achievement evaluator runs before returning.
func (e *ProgressionEngine) ApplyMissionReward(ctx context.Context, userID string, reward int, clearedDaily bool) (*model.UserProgress, error) {
	progress, err := e.GetProgress(ctx, userID)
	if err != nil {
		return nil, err
	}

	if reward < 0 {
		reward = 0
	}

	progress.XP += reward
	progress.Level = Level(progress.XP)
	progress.Rank = RankForXP(progress.XP)
	progress.CompletedMissions++
	progress.TotalMissionsCompleted++
	if clearedDaily {
		progress.Streak++
	}

	if err := e.save(ctx, progress); err != nil {
		return nil, err
	}

	e.evaluator.Check(ctx, userID)
	return progress, nil
}

// ApplyMoodBonus grants the fixed daily mood bonus at most once per
// calendar day. The second return value reports whether the bonus was
// applied; a same-day replay is a silent no-op.
func (e *ProgressionEngine) ApplyMoodBonus(ctx context.Context, userID string) (*model.UserProgress, bool, error) {
	progress, err := e.GetProgress(ctx, userID)
	if err != nil {
		return nil, false, err
	}

	now := time.Now()
	if progress.HasMoodSubmittedToday(now) {
		log.Printf("mood bonus replay ignored for %s", userID)
		return progress, false, nil
	}

	progress.XP += model.MoodBonusXP
	progress.Level = Level(progress.XP)
	progress.Rank = RankForXP(progress.XP)
	progress.LastMoodDate = now

	if err := e.save(ctx, progress); err != nil {
		return nil, false, err
	}

	e.evaluator.Check(ctx, userID)
	return progress, true, nil
}

// SetPath records the selected character path on the progress document.
func (e *ProgressionEngine) SetPath(ctx context.Context, userID string, path model.CharacterPath) error {
	progress, err := e.GetProgress(ctx, userID)
	if err != nil {
		return err
	}
	progress.Path = path
	return e.save(ctx, progress)
}

// ResetStreak zeroes the streak counter. Called when a daily cycle expires
// without every mission in the set completed.
func (e *ProgressionEngine) ResetStreak(ctx context.Context, userID string) error {
	progress, err := e.GetProgress(ctx, userID)
	if err != nil {
		return err
	}
	if progress.Streak == 0 {
		return nil
	}
	progress.Streak = 0
	return e.save(ctx, progress)
}

func (e *ProgressionEngine) save(ctx context.Context, progress *model.UserProgress) error {
	if err := e.repo.SaveProgress(ctx, progress); err != nil {
		return err
	}
	e.refreshCache(ctx, progress)
	return nil
}

func (e *ProgressionEngine) refreshCache(ctx context.Context, progress *model.UserProgress) {
	if e.cache == nil {
		return
	}
	if err := e.cache.SetProgress(ctx, progress); err != nil {
		log.Printf("progress cache write failed for %s: %v", progress.UserID, err)
	}
}
