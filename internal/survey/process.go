// Package survey turns raw survey responses into a validated baseline and
// goals pair. It is the collector side of the planning contract: every value
// leaving this package is clamped to its declared range, so the planner can
// assume valid input.
package survey

import (
	"strconv"
	"strings"

	"github.com/dkarlsen/fitquest/internal/domain"
)

// Per-field fallbacks used when a question is missing, unknown, or fails to
// parse. Scale fields default to the midpoint so no gap fires spuriously in
// either direction.
const (
	defaultScale      = 5
	defaultWeightKg   = 70
	defaultHeightCm   = 170
	defaultAge        = 30
	defaultTimeMin    = 30
	defaultTimeframe  = 12
	defaultBudget     = "medium"
	defaultPriority   = "medium"
	defaultActivity   = domain.ActivityLight
	defaultExperience = domain.ExperienceBeginner
	defaultGoal       = domain.GoalGeneralFitness
)

// ProcessBaseline builds a Baseline from survey responses, applying the
// default table for anything missing and clamping scales to their range.
func ProcessBaseline(responses []domain.SurveyResponse) domain.Baseline {
	answers := indexAnswers(responses)

	b := domain.Baseline{
		Strength:    scaleAnswer(answers, QCurrentStrength),
		Endurance:   scaleAnswer(answers, QCurrentEndurance),
		Flexibility: scaleAnswer(answers, QCurrentFlexibility),
		Energy:      scaleAnswer(answers, QCurrentEnergy),
		Fitness:     scaleAnswer(answers, QCurrentFitness),
		Nutrition:   scaleAnswer(answers, QCurrentNutrition),
		Sleep:       scaleAnswer(answers, QCurrentSleep),
		Stress:      scaleAnswer(answers, QCurrentStress),

		WeightKg: floatAnswer(answers, QWeightKg, defaultWeightKg),
		HeightCm: floatAnswer(answers, QHeightCm, defaultHeightCm),
		Age:      intAnswer(answers, QAge, defaultAge, 1, 120),

		Activity:   activityAnswer(answers),
		Experience: experienceAnswer(answers),
		Budget:     stringAnswer(answers, QBudget, defaultBudget),

		TimeAvailableMin: intAnswer(answers, QTimeAvailable, defaultTimeMin, 0, 24*60),
		Equipment:        equipmentAnswer(answers),
		Limitations:      listAnswer(answers, QLimitations),
	}
	return b
}

// ProcessGoals builds a Goals record from survey responses with the same
// default-and-clamp policy as ProcessBaseline.
func ProcessGoals(responses []domain.SurveyResponse) domain.Goals {
	answers := indexAnswers(responses)

	return domain.Goals{
		TargetStrength:    scaleAnswer(answers, QTargetStrength),
		TargetEndurance:   scaleAnswer(answers, QTargetEndurance),
		TargetFlexibility: scaleAnswer(answers, QTargetFlexibility),
		TargetEnergy:      scaleAnswer(answers, QTargetEnergy),
		TargetFitness:     scaleAnswer(answers, QTargetFitness),
		TargetNutrition:   scaleAnswer(answers, QTargetNutrition),
		TargetSleep:       scaleAnswer(answers, QTargetSleep),
		TargetStress:      scaleAnswer(answers, QTargetStress),

		PrimaryGoal:    goalAnswer(answers),
		TimeframeWeeks: intAnswer(answers, QTimeframeWeeks, defaultTimeframe, 1, 104),
		Priority:       stringAnswer(answers, QPriority, defaultPriority),
	}
}

// indexAnswers keeps the last answer per question id. Responses arrive
// ordered, so a re-answered question overrides its earlier value.
func indexAnswers(responses []domain.SurveyResponse) map[string]string {
	answers := make(map[string]string, len(responses))
	for _, r := range responses {
		answers[r.QuestionID] = strings.TrimSpace(r.Value)
	}
	return answers
}

func scaleAnswer(answers map[string]string, id string) int {
	return intAnswer(answers, id, defaultScale, domain.ScaleMin, domain.ScaleMax)
}

func intAnswer(answers map[string]string, id string, fallback, lo, hi int) int {
	raw, ok := answers[id]
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return clamp(v, lo, hi)
}

func floatAnswer(answers map[string]string, id string, fallback float64) float64 {
	raw, ok := answers[id]
	if !ok || raw == "" {
		return fallback
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func stringAnswer(answers map[string]string, id, fallback string) string {
	if v, ok := answers[id]; ok && v != "" {
		return v
	}
	return fallback
}

func activityAnswer(answers map[string]string) domain.ActivityLevel {
	raw := strings.ToLower(answers[QActivityLevel])
	if domain.ValidActivityLevels[raw] {
		return domain.ActivityLevel(raw)
	}
	return defaultActivity
}

func experienceAnswer(answers map[string]string) domain.Experience {
	raw := strings.ToLower(answers[QExperience])
	if domain.ValidExperienceLevels[raw] {
		return domain.Experience(raw)
	}
	return defaultExperience
}

func goalAnswer(answers map[string]string) domain.PrimaryGoal {
	raw := strings.ToLower(answers[QPrimaryGoal])
	if domain.ValidPrimaryGoals[raw] {
		return domain.PrimaryGoal(raw)
	}
	return defaultGoal
}

// equipmentAnswer parses a comma-separated equipment list, dropping
// unrecognized entries. An empty or missing answer means bodyweight only.
func equipmentAnswer(answers map[string]string) []domain.Equipment {
	raw := answers[QEquipment]
	if raw == "" {
		return []domain.Equipment{domain.EquipmentBodyweight}
	}
	var out []domain.Equipment
	for _, part := range strings.Split(raw, ",") {
		p := strings.ToLower(strings.TrimSpace(part))
		if domain.ValidEquipment[p] {
			out = append(out, domain.Equipment(p))
		}
	}
	if len(out) == 0 {
		return []domain.Equipment{domain.EquipmentBodyweight}
	}
	return out
}

func listAnswer(answers map[string]string, id string) []string {
	raw := answers[id]
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
