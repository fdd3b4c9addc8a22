package planner

import (
	"errors"
	"fmt"
	"math"
	"math/rand"

	"github.com/dkarlsen/fitquest/internal/domain"
)

// ErrOutOfRange signals a collector contract violation: a scale value or
// time budget outside its declared range reached the generator.
var ErrOutOfRange = errors.New("value outside declared range")

const (
	maxStrengthMin = 45
	maxCardioMin   = 30

	// GenerateDaily tops a short plan up with variety missions until this
	// many missions exist.
	minDailyMissions = 3
)

// Generate emits candidate missions for a baseline/goals pair. It is a pure
// function of its inputs: the same pair always yields the same missions.
// Each rule fires independently and contributes at most one mission.
func Generate(b domain.Baseline, g domain.Goals) ([]domain.Mission, error) {
	if err := validateInputs(b, g); err != nil {
		return nil, err
	}

	gaps := domain.ComputeGaps(b, g)
	var missions []domain.Mission

	if gaps.Strength > 0 {
		missions = append(missions, strengthMission(b))
	}
	if gaps.Endurance > 0 || g.PrimaryGoal == domain.GoalWeightLoss {
		missions = append(missions, cardioMission(b))
	}
	if gaps.Flexibility > 0 {
		missions = append(missions, flexibilityMission())
	}
	if b.Experience == domain.ExperienceBeginner || len(missions) > 1 {
		missions = append(missions, recoveryMission())
	}

	assignIDs(missions)
	return missions, nil
}

// GenerateDaily extends Generate with the gamified wellness rules: one
// mission per wellness dimension whose gap is positive, a variety filler up
// to minDailyMissions, and XP/coin rewards on every mission. Flavor-text
// selection draws from rng so plans are reproducible under a fixed seed.
func GenerateDaily(b domain.Baseline, g domain.Goals, rng *rand.Rand) ([]domain.Mission, error) {
	missions, err := Generate(b, g)
	if err != nil {
		return nil, err
	}

	gaps := domain.ComputeGaps(b, g)
	wellness := []struct {
		category domain.Category
		gap      int
	}{
		{domain.CategoryEnergy, gaps.Energy},
		{domain.CategoryNutrition, gaps.Nutrition},
		{domain.CategorySleep, gaps.Sleep},
		{domain.CategoryStress, gaps.Stress},
	}
	for _, w := range wellness {
		if w.gap <= 0 {
			continue
		}
		missions = append(missions, flavorMission(w.category, wellnessDifficulty(w.gap), rng))
	}

	// Variety filler: unlike the other rules this one repeats until the
	// plan reaches the daily minimum; duplicate categories are allowed.
	for len(missions) < minDailyMissions {
		missions = append(missions, flavorMission(domain.CategoryVariety, domain.DifficultyEasy, rng))
	}

	for i := range missions {
		if missions[i].XPReward == 0 {
			xp, coins := rollReward(missions[i].Category, missions[i].Difficulty, rng)
			missions[i].XPReward = xp
			missions[i].CoinReward = coins
		}
	}

	assignIDs(missions)
	return missions, nil
}

func validateInputs(b domain.Baseline, g domain.Goals) error {
	scales := []struct {
		field string
		value int
	}{
		{"baseline strength", b.Strength},
		{"baseline endurance", b.Endurance},
		{"baseline flexibility", b.Flexibility},
		{"baseline energy", b.Energy},
		{"baseline fitness", b.Fitness},
		{"baseline nutrition", b.Nutrition},
		{"baseline sleep", b.Sleep},
		{"baseline stress", b.Stress},
		{"target strength", g.TargetStrength},
		{"target endurance", g.TargetEndurance},
		{"target flexibility", g.TargetFlexibility},
		{"target energy", g.TargetEnergy},
		{"target fitness", g.TargetFitness},
		{"target nutrition", g.TargetNutrition},
		{"target sleep", g.TargetSleep},
		{"target stress", g.TargetStress},
	}
	for _, s := range scales {
		if s.value < domain.ScaleMin || s.value > domain.ScaleMax {
			return fmt.Errorf("%s is %d, want %d-%d: %w",
				s.field, s.value, domain.ScaleMin, domain.ScaleMax, ErrOutOfRange)
		}
	}
	if b.TimeAvailableMin < 0 {
		return fmt.Errorf("time available is %d minutes: %w", b.TimeAvailableMin, ErrOutOfRange)
	}
	return nil
}

func strengthMission(b domain.Baseline) domain.Mission {
	if b.HasEquipment(domain.EquipmentGym) || b.HasEquipment(domain.EquipmentHome) {
		equipment := domain.EquipmentHome
		location := "home setup"
		if b.HasEquipment(domain.EquipmentGym) {
			equipment = domain.EquipmentGym
			location = "gym"
		}

		difficulty := domain.DifficultyMedium
		if b.Experience == domain.ExperienceBeginner {
			difficulty = domain.DifficultyEasy
		}

		return domain.Mission{
			Title:        "Strength Training",
			Description:  fmt.Sprintf("Compound lifting session at your %s", location),
			Category:     domain.CategoryStrength,
			Difficulty:   difficulty,
			EstimatedMin: scaledMinutes(b.TimeAvailableMin, 0.7, maxStrengthMin),
			Equipment:    []domain.Equipment{equipment},
			Instructions: []string{
				"Warm up 5 minutes with light movement",
				fmt.Sprintf("3 sets of squats using your %s", location),
				fmt.Sprintf("3 sets of presses using your %s", location),
				"3 sets of rows or pulldowns",
				"Rest 60-90 seconds between sets",
			},
		}
	}

	return domain.Mission{
		Title:        "Bodyweight Circuit",
		Description:  "No-equipment strength circuit",
		Category:     domain.CategoryStrength,
		Difficulty:   domain.DifficultyEasy,
		EstimatedMin: 20,
		Equipment:    []domain.Equipment{domain.EquipmentBodyweight},
		Instructions: []string{
			"3 rounds of 10 push-ups",
			"3 rounds of 15 air squats",
			"3 rounds of 30-second plank",
			"Rest 60 seconds between rounds",
		},
	}
}

func cardioMission(b domain.Baseline) domain.Mission {
	difficulty := domain.DifficultyMedium
	if b.Endurance < 5 {
		difficulty = domain.DifficultyEasy
	}

	var instructions []string
	if b.Endurance < 4 {
		instructions = []string{
			"Walk briskly for 5 minutes",
			"Alternate 1 minute fast walk / 2 minutes easy walk",
			"Repeat until time is up, finish with an easy 3 minutes",
		}
	} else {
		instructions = []string{
			"Warm up 5 minutes at an easy pace",
			"6 rounds of 1 minute hard / 1 minute easy",
			"Cool down until time is up",
		}
	}

	return domain.Mission{
		Title:        "Cardio Session",
		Description:  "Endurance work scaled to your current level",
		Category:     domain.CategoryCardio,
		Difficulty:   difficulty,
		EstimatedMin: scaledMinutes(b.TimeAvailableMin, 0.6, maxCardioMin),
		Instructions: instructions,
	}
}

func flexibilityMission() domain.Mission {
	return domain.Mission{
		Title:        "Flexibility Flow",
		Description:  "Full-body stretching routine",
		Category:     domain.CategoryFlexibility,
		Difficulty:   domain.DifficultyEasy,
		EstimatedMin: 15,
		Instructions: []string{
			"Hold each stretch 30 seconds, no bouncing",
			"Hamstrings, hips, shoulders, chest",
			"Finish with 2 minutes of deep breathing",
		},
	}
}

func recoveryMission() domain.Mission {
	return domain.Mission{
		Title:        "Active Recovery",
		Description:  "Low-intensity movement and mobility",
		Category:     domain.CategoryRecovery,
		Difficulty:   domain.DifficultyEasy,
		EstimatedMin: 10,
		Instructions: []string{
			"5 minutes of easy walking",
			"Gentle neck, shoulder and hip circles",
			"Finish with a minute of slow breathing",
		},
	}
}

// wellnessDifficulty maps a wellness gap size onto a difficulty tier.
func wellnessDifficulty(gap int) domain.Difficulty {
	switch {
	case gap >= 5:
		return domain.DifficultyHard
	case gap >= 3:
		return domain.DifficultyMedium
	default:
		return domain.DifficultyEasy
	}
}

// scaledMinutes computes fraction*available capped at max, never negative.
func scaledMinutes(availableMin int, fraction float64, maxMin int) int {
	scaled := int(math.Min(fraction*float64(availableMin), float64(maxMin)))
	if scaled < 0 {
		return 0
	}
	return scaled
}

// assignIDs gives each mission a deterministic position-based identifier.
func assignIDs(missions []domain.Mission) {
	for i := range missions {
		missions[i].ID = fmt.Sprintf("m%d-%s", i+1, missions[i].Category)
	}
}
