package model

import "time"

type Rank string

const (
	RankGenin  Rank = "genin"
	RankChunin Rank = "chunin"
	RankJounin Rank = "jounin"
	RankHokage Rank = "hokage"
)

// Rank thresholds. Boundary values belong to the higher rank.
const (
	ChuninXP = 500
	JouninXP = 1000
	HokageXP = 2000
)

type UserProgress struct {
	UserID                 string        `bson:"user_id" json:"user_id"`
	Path                   CharacterPath `bson:"path,omitempty" json:"path,omitempty"`
	XP                     int           `bson:"xp" json:"xp"`
	Level                  int           `bson:"level" json:"level"`
	Rank                   Rank          `bson:"rank" json:"rank"`
	Streak                 int           `bson:"streak" json:"streak"`
	CompletedMissions      int           `bson:"completed_missions" json:"completed_missions"`
	TotalMissionsCompleted int           `bson:"total_missions_completed" json:"total_missions_completed"`
	LastMoodDate           time.Time     `bson:"last_mood_date,omitempty" json:"last_mood_date,omitempty"`
	CreatedAt              time.Time     `bson:"created_at" json:"created_at"`
	UpdatedAt              time.Time     `bson:"updated_at" json:"updated_at"`
}

// HasMoodSubmittedToday reports whether the daily mood bonus was already
// granted on the calendar day containing now.
func (p *UserProgress) HasMoodSubmittedToday(now time.Time) bool {
	if p.LastMoodDate.IsZero() {
		return false
	}
	y1, m1, d1 := p.LastMoodDate.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
