package testutil

import "github.com/dkarlsen/fitquest/internal/domain"

// Baseline returns a mid-scale baseline with no gaps and a generous time
// budget. Override fields per test.
func Baseline() domain.Baseline {
	return domain.Baseline{
		Strength:    5,
		Endurance:   5,
		Flexibility: 5,
		Energy:      5,
		Fitness:     5,
		Nutrition:   5,
		Sleep:       5,
		Stress:      5,

		WeightKg: 70,
		HeightCm: 175,
		Age:      30,

		Activity:   domain.ActivityModerate,
		Experience: domain.ExperienceIntermediate,
		Budget:     "medium",

		TimeAvailableMin: 120,
		Equipment:        []domain.Equipment{domain.EquipmentBodyweight},
	}
}

// Goals returns goals matching the fixture baseline exactly: no dimension
// gap is positive, so no generation rule fires until a test opens one.
func Goals() domain.Goals {
	return domain.Goals{
		TargetStrength:    5,
		TargetEndurance:   5,
		TargetFlexibility: 5,
		TargetEnergy:      5,
		TargetFitness:     5,
		TargetNutrition:   5,
		TargetSleep:       5,
		TargetStress:      5,

		PrimaryGoal:    domain.GoalGeneralFitness,
		TimeframeWeeks: 12,
		Priority:       "medium",
	}
}
