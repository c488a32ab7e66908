package model

import "time"

type Mood string

const (
	MoodHappy     Mood = "HAPPY"
	MoodMotivated Mood = "MOTIVATED"
	MoodNeutral   Mood = "NEUTRAL"
	MoodTired     Mood = "TIRED"
	MoodStressed  Mood = "STRESSED"
	MoodSad       Mood = "SAD"
)

func (m Mood) IsValid() bool {
	switch m {
	case MoodHappy, MoodMotivated, MoodNeutral, MoodTired, MoodStressed, MoodSad:
		return true
	default:
		return false
	}
}

// MoodBonusXP is granted at most once per calendar day.
const MoodBonusXP = 20

type MoodEntry struct {
	EntryID   string    `bson:"_id,omitempty" json:"id"`
	UserID    string    `bson:"user_id" json:"user_id"`
	Mood      Mood      `bson:"mood" json:"mood" binding:"required"`
	Date      time.Time `bson:"date" json:"date"`
	BonusXP   int       `bson:"bonus_xp" json:"bonus_xp"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
