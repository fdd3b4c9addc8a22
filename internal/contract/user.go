package contract

import (
	"time"

	"github.com/dkarlsen/fitquest/internal/domain"
)

// CreateUserResult is the outcome of survey submission: a stored user and
// their initial daily missions.
type CreateUserResult struct {
	UserID   string           `json:"user_id"`
	Name     string           `json:"name"`
	Missions []domain.Mission `json:"missions"`
}

// ProgressReport summarizes a user's gamification state.
type ProgressReport struct {
	Level          int `json:"level"`
	XP             int `json:"xp"`
	XPIntoLevel    int `json:"xp_into_level"`
	XPToNextLevel  int `json:"xp_to_next_level"`
	Coins          int `json:"coins"`
	TotalCompleted int `json:"total_completed"`
	Achievements   int `json:"achievements"`
}

// Dashboard is the per-user view: summary, today's missions, and progress.
type Dashboard struct {
	UserID         string           `json:"user_id"`
	Name           string           `json:"name"`
	MemberSince    time.Time        `json:"member_since"`
	PrimaryGoal    domain.PrimaryGoal `json:"primary_goal"`
	TodaysMissions []domain.Mission `json:"todays_missions"`
	Report         ProgressReport   `json:"progress_report"`
}

// CompletionOutcome reports what one mission completion changed.
type CompletionOutcome struct {
	MissionID       string               `json:"mission_id"`
	XPAwarded       int                  `json:"xp_awarded"`
	CoinsAwarded    int                  `json:"coins_awarded"`
	LevelsGained    int                  `json:"levels_gained"`
	NewAchievements []domain.Achievement `json:"new_achievements"`
	Report          ProgressReport       `json:"progress_report"`
}
