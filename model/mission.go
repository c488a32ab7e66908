package model

import "time"

type Frequency string
type CharacterPath string

const (
	FrequencyDaily  Frequency = "DAILY"
	FrequencyWeekly Frequency = "WEEKLY"

	PathNaruto  CharacterPath = "naruto"
	PathSasuke  CharacterPath = "sasuke"
	PathSakura  CharacterPath = "sakura"
	PathKakashi CharacterPath = "kakashi"
)

func (f Frequency) IsValid() bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly:
		return true
	default:
		return false
	}
}

func (p CharacterPath) IsValid() bool {
	switch p {
	case PathNaruto, PathSasuke, PathSakura, PathKakashi:
		return true
	default:
		return false
	}
}

type Mission struct {
	MissionID   string        `bson:"_id,omitempty" json:"id"`
	UserID      string        `bson:"user_id" json:"user_id"`
	Title       string        `bson:"title" json:"title" binding:"required"`
	Description string        `bson:"description" json:"description"`
	XPReward    int           `bson:"xp_reward" json:"xp_reward"`
	Frequency   Frequency     `bson:"frequency" json:"frequency"`
	Path        CharacterPath `bson:"path,omitempty" json:"path,omitempty"`
	IsCompleted bool          `bson:"is_completed" json:"is_completed"`
	CompletedAt time.Time     `bson:"completed_at,omitempty" json:"completed_at,omitempty"`
	ResetTime   time.Time     `bson:"reset_time" json:"reset_time"`
	CreatedAt   time.Time     `bson:"created_at" json:"created_at"`
}

// ShouldReset reports whether this mission's cycle has expired.
func (m *Mission) ShouldReset(now time.Time) bool {
	return !m.ResetTime.IsZero() && !now.Before(m.ResetTime)
}

// NextDailyReset returns the upcoming local midnight after now.
func NextDailyReset(now time.Time) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
}

// NextWeeklyReset returns the upcoming Monday midnight after now.
func NextWeeklyReset(now time.Time) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := (int(time.Monday) - int(now.Weekday()) + 7) % 7
	if days == 0 {
		days = 7
	}
	return midnight.AddDate(0, 0, days)
}
