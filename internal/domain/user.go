package domain

import "time"

// SurveyResponse is one raw answer from the onboarding survey.
type SurveyResponse struct {
	QuestionID string    `json:"question_id"`
	Value      string    `json:"value"`
	Timestamp  time.Time `json:"timestamp"`
}

// AchievementUnlock records when a user unlocked an achievement.
type AchievementUnlock struct {
	AchievementID string    `json:"achievement_id"`
	UnlockedAt    time.Time `json:"unlocked_at"`
}

// Progress is the mutable per-user gamification record. All ledger side
// effects are confined to one Progress value.
type Progress struct {
	Level int `json:"level"`
	XP    int `json:"xp"`
	Coins int `json:"coins"`

	Streaks        map[Category]int `json:"streaks"`
	CategoryCounts map[Category]int `json:"category_counts"`

	CompletedMissionIDs []string            `json:"completed_mission_ids"`
	Unlocked            []AchievementUnlock `json:"unlocked"`

	LastActive time.Time `json:"last_active"`
}

// NewProgress returns a zeroed progress record at level 1.
func NewProgress() Progress {
	return Progress{
		Level:          1,
		Streaks:        make(map[Category]int),
		CategoryCounts: make(map[Category]int),
	}
}

// HasUnlocked reports whether the achievement id is already in the unlocked set.
func (p Progress) HasUnlocked(achievementID string) bool {
	for _, u := range p.Unlocked {
		if u.AchievementID == achievementID {
			return true
		}
	}
	return false
}

// TotalCompleted is the number of logged mission completions.
func (p Progress) TotalCompleted() int {
	return len(p.CompletedMissionIDs)
}

// User aggregates one baseline, one goals record, the mutable progress
// record, and the raw survey log. Owned exclusively by the user store;
// lifetime equals process lifetime.
type User struct {
	ID   string `json:"id"`
	Name string `json:"name"`

	Baseline Baseline `json:"baseline"`
	Goals    Goals    `json:"goals"`
	Progress Progress `json:"progress"`

	Responses      []SurveyResponse `json:"responses,omitempty"`
	TodaysMissions []Mission        `json:"todays_missions"`

	CreatedAt time.Time `json:"created_at"`
}
