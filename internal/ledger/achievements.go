package ledger

import (
	"fmt"

	"github.com/dkarlsen/fitquest/internal/domain"
)

// DefaultAchievements is the static achievement catalog. Definitions are
// read-only; only the per-user unlocked relation mutates.
func DefaultAchievements() []domain.Achievement {
	return []domain.Achievement{
		{
			ID:          "first_mission",
			Title:       "First Steps",
			Description: "Complete your first mission",
			XPReward:    25,
			CoinReward:  10,
			Requirements: []domain.Requirement{
				{Kind: domain.ReqTotalMissions, Threshold: 1},
			},
		},
		{
			ID:          "getting_started",
			Title:       "Getting Started",
			Description: "Complete 5 missions",
			XPReward:    50,
			CoinReward:  20,
			Requirements: []domain.Requirement{
				{Kind: domain.ReqTotalMissions, Threshold: 5},
			},
		},
		{
			ID:          "dedicated",
			Title:       "Dedicated",
			Description: "Complete 25 missions",
			XPReward:    150,
			CoinReward:  60,
			Requirements: []domain.Requirement{
				{Kind: domain.ReqTotalMissions, Threshold: 25},
			},
		},
		{
			ID:          "iron_streak",
			Title:       "Iron Streak",
			Description: "Keep a 5-mission strength streak",
			XPReward:    75,
			CoinReward:  30,
			Requirements: []domain.Requirement{
				{Kind: domain.ReqStreak, Threshold: 5, Category: domain.CategoryStrength},
			},
		},
		{
			ID:          "road_runner",
			Title:       "Road Runner",
			Description: "Keep a 5-mission cardio streak",
			XPReward:    75,
			CoinReward:  30,
			Requirements: []domain.Requirement{
				{Kind: domain.ReqStreak, Threshold: 5, Category: domain.CategoryCardio},
			},
		},
		{
			ID:          "well_rounded",
			Title:       "Well Rounded",
			Description: "Complete 3 recovery missions",
			XPReward:    40,
			CoinReward:  15,
			Requirements: []domain.Requirement{
				{Kind: domain.ReqCategoryProgress, Threshold: 3, Category: domain.CategoryRecovery},
			},
		},
		{
			ID:          "level_5",
			Title:       "Seasoned",
			Description: "Reach level 5",
			XPReward:    100,
			CoinReward:  50,
			Requirements: []domain.Requirement{
				{Kind: domain.ReqLevelReached, Threshold: 5},
			},
		},
	}
}

// meetsRequirement evaluates one requirement predicate against a progress
// record. The switch is exhaustive over the declared requirement kinds; an
// unknown kind is an error so a new kind can never silently pass.
func meetsRequirement(p domain.Progress, r domain.Requirement) (bool, error) {
	switch r.Kind {
	case domain.ReqTotalMissions:
		return p.TotalCompleted() >= r.Threshold, nil
	case domain.ReqStreak:
		return p.Streaks[r.Category] >= r.Threshold, nil
	case domain.ReqCategoryProgress:
		return p.CategoryCounts[r.Category] >= r.Threshold, nil
	case domain.ReqLevelReached:
		return p.Level >= r.Threshold, nil
	default:
		return false, fmt.Errorf("unknown achievement requirement kind %q", r.Kind)
	}
}

// meetsAll reports whether every requirement of the achievement passes.
func meetsAll(p domain.Progress, a domain.Achievement) (bool, error) {
	for _, r := range a.Requirements {
		ok, err := meetsRequirement(p, r)
		if err != nil {
			return false, fmt.Errorf("achievement %s: %w", a.ID, err)
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}
