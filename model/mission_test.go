package model

import (
	"testing"
	"time"
)

func TestShouldReset(t *testing.T) {
	now := time.Date(2025, time.March, 12, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		reset time.Time
		want  bool
	}{
		{"future reset", now.Add(time.Hour), false},
		{"exactly at reset", now, true},
		{"past reset", now.Add(-time.Hour), true},
		{"zero reset time", time.Time{}, false},
	}

	for _, tt := range tests {
		m := &Mission{ResetTime: tt.reset}
		if got := m.ShouldReset(now); got != tt.want {
			t.Errorf("%s: ShouldReset = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestNextDailyReset(t *testing.T) {
	// Wednesday afternoon
	now := time.Date(2025, time.March, 12, 15, 30, 45, 0, time.UTC)
	want := time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC)
	if got := NextDailyReset(now); !got.Equal(want) {
		t.Errorf("NextDailyReset(%v) = %v, want %v", now, got, want)
	}

	// Exactly at midnight rolls to the next day
	midnight := time.Date(2025, time.March, 12, 0, 0, 0, 0, time.UTC)
	want = time.Date(2025, time.March, 13, 0, 0, 0, 0, time.UTC)
	if got := NextDailyReset(midnight); !got.Equal(want) {
		t.Errorf("NextDailyReset(midnight) = %v, want %v", got, want)
	}

	// Month boundary
	eom := time.Date(2025, time.March, 31, 23, 59, 0, 0, time.UTC)
	want = time.Date(2025, time.April, 1, 0, 0, 0, 0, time.UTC)
	if got := NextDailyReset(eom); !got.Equal(want) {
		t.Errorf("NextDailyReset(end of month) = %v, want %v", got, want)
	}
}

func TestNextWeeklyReset(t *testing.T) {
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"midweek",
			time.Date(2025, time.March, 12, 15, 0, 0, 0, time.UTC), // Wednesday
			time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			"sunday evening",
			time.Date(2025, time.March, 16, 22, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 17, 0, 0, 0, 0, time.UTC),
		},
		{
			"monday rolls a full week",
			time.Date(2025, time.March, 17, 10, 0, 0, 0, time.UTC),
			time.Date(2025, time.March, 24, 0, 0, 0, 0, time.UTC),
		},
	}

	for _, tt := range tests {
		if got := NextWeeklyReset(tt.now); !got.Equal(tt.want) {
			t.Errorf("%s: NextWeeklyReset = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestHasMoodSubmittedToday(t *testing.T) {
	now := time.Date(2025, time.March, 12, 18, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		last time.Time
		want bool
	}{
		{"never submitted", time.Time{}, false},
		{"earlier today", time.Date(2025, time.March, 12, 8, 0, 0, 0, time.UTC), true},
		{"yesterday", time.Date(2025, time.March, 11, 23, 59, 0, 0, time.UTC), false},
		{"same hour yesterday", now.AddDate(0, 0, -1), false},
	}

	for _, tt := range tests {
		p := &UserProgress{LastMoodDate: tt.last}
		if got := p.HasMoodSubmittedToday(now); got != tt.want {
			t.Errorf("%s: HasMoodSubmittedToday = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestEnumValidation(t *testing.T) {
	for _, p := range []CharacterPath{PathNaruto, PathSasuke, PathSakura, PathKakashi} {
		if !p.IsValid() {
			t.Errorf("path %s reported invalid", p)
		}
	}
	if CharacterPath("orochimaru").IsValid() {
		t.Error("unknown path reported valid")
	}

	for _, f := range []Frequency{FrequencyDaily, FrequencyWeekly} {
		if !f.IsValid() {
			t.Errorf("frequency %s reported invalid", f)
		}
	}
	if Frequency("MONTHLY").IsValid() {
		t.Error("unknown frequency reported valid")
	}

	for _, m := range []Mood{MoodHappy, MoodMotivated, MoodNeutral, MoodTired, MoodStressed, MoodSad} {
		if !m.IsValid() {
			t.Errorf("mood %s reported invalid", m)
		}
	}
	if Mood("ECSTATIC").IsValid() {
		t.Error("unknown mood reported valid")
	}
}
