package planner

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkarlsen/fitquest/internal/domain"
	"github.com/dkarlsen/fitquest/internal/testutil"
)

func categories(missions []domain.Mission) []domain.Category {
	out := make([]domain.Category, 0, len(missions))
	for _, m := range missions {
		out = append(out, m.Category)
	}
	return out
}

func findCategory(t *testing.T, missions []domain.Mission, c domain.Category) domain.Mission {
	t.Helper()
	for _, m := range missions {
		if m.Category == c {
			return m
		}
	}
	t.Fatalf("no %s mission in %v", c, categories(missions))
	return domain.Mission{}
}

func TestGenerate_NoGaps_NoMissions(t *testing.T) {
	missions, err := Generate(testutil.Baseline(), testutil.Goals())

	require.NoError(t, err)
	assert.Empty(t, missions)
}

func TestGenerate_StrengthGap_BodyweightCircuit(t *testing.T) {
	b := testutil.Baseline()
	g := testutil.Goals()
	g.TargetStrength = 8

	missions, err := Generate(b, g)

	require.NoError(t, err)
	require.Len(t, missions, 1)
	m := missions[0]
	assert.Equal(t, domain.CategoryStrength, m.Category)
	assert.Equal(t, domain.DifficultyEasy, m.Difficulty)
	assert.Equal(t, 20, m.EstimatedMin, "bodyweight circuit is fixed at 20 minutes")
	assert.Equal(t, []domain.Equipment{domain.EquipmentBodyweight}, m.Equipment)
}

func TestGenerate_StrengthGap_WithGymAccess(t *testing.T) {
	b := testutil.Baseline()
	b.Equipment = []domain.Equipment{domain.EquipmentGym}
	b.TimeAvailableMin = 120
	g := testutil.Goals()
	g.TargetStrength = 8

	missions, err := Generate(b, g)

	require.NoError(t, err)
	m := findCategory(t, missions, domain.CategoryStrength)
	assert.Equal(t, domain.DifficultyMedium, m.Difficulty, "non-beginner gets medium")
	assert.Equal(t, 45, m.EstimatedMin, "0.7*120 capped at 45")
	assert.Equal(t, []domain.Equipment{domain.EquipmentGym}, m.Equipment)
}

func TestGenerate_StrengthGap_BeginnerWithEquipmentIsEasy(t *testing.T) {
	b := testutil.Baseline()
	b.Experience = domain.ExperienceBeginner
	b.Equipment = []domain.Equipment{domain.EquipmentHome}
	b.TimeAvailableMin = 40
	g := testutil.Goals()
	g.TargetStrength = 8

	missions, err := Generate(b, g)

	require.NoError(t, err)
	m := findCategory(t, missions, domain.CategoryStrength)
	assert.Equal(t, domain.DifficultyEasy, m.Difficulty)
	assert.Equal(t, 28, m.EstimatedMin, "0.7*40 under the 45 cap")
}

func TestGenerate_CardioTriggeredByEnduranceGap(t *testing.T) {
	b := testutil.Baseline()
	b.Endurance = 6
	b.TimeAvailableMin = 60
	g := testutil.Goals()
	g.TargetEndurance = 8

	missions, err := Generate(b, g)

	require.NoError(t, err)
	m := findCategory(t, missions, domain.CategoryCardio)
	assert.Equal(t, domain.DifficultyMedium, m.Difficulty, "endurance >= 5 gets medium")
	assert.Equal(t, 30, m.EstimatedMin, "0.6*60 capped at 30")
}

func TestGenerate_CardioTriggeredByWeightLossWithoutGap(t *testing.T) {
	b := testutil.Baseline()
	g := testutil.Goals()
	g.PrimaryGoal = domain.GoalWeightLoss
	g.TargetEndurance = 3 // negative gap

	missions, err := Generate(b, g)

	require.NoError(t, err)
	findCategory(t, missions, domain.CategoryCardio)
}

func TestGenerate_CardioInstructionsByEnduranceTier(t *testing.T) {
	low := testutil.Baseline()
	low.Endurance = 2
	high := testutil.Baseline()
	high.Endurance = 4
	g := testutil.Goals()
	g.TargetEndurance = 9

	lowMissions, err := Generate(low, g)
	require.NoError(t, err)
	highMissions, err := Generate(high, g)
	require.NoError(t, err)

	lowCardio := findCategory(t, lowMissions, domain.CategoryCardio)
	highCardio := findCategory(t, highMissions, domain.CategoryCardio)
	assert.Equal(t, domain.DifficultyEasy, lowCardio.Difficulty)
	assert.NotEqual(t, lowCardio.Instructions, highCardio.Instructions,
		"walking plan below tier 4, interval plan at tier 4 and above")
}

func TestGenerate_FlexibilityGap(t *testing.T) {
	b := testutil.Baseline()
	g := testutil.Goals()
	g.TargetFlexibility = 7

	missions, err := Generate(b, g)

	require.NoError(t, err)
	m := findCategory(t, missions, domain.CategoryFlexibility)
	assert.Equal(t, 15, m.EstimatedMin)
	assert.Equal(t, domain.DifficultyEasy, m.Difficulty)
}

func TestGenerate_RecoveryForBeginner(t *testing.T) {
	b := testutil.Baseline()
	b.Experience = domain.ExperienceBeginner

	missions, err := Generate(b, testutil.Goals())

	require.NoError(t, err)
	require.Len(t, missions, 1, "beginner rule fires even with no other missions")
	assert.Equal(t, domain.CategoryRecovery, missions[0].Category)
	assert.Equal(t, 10, missions[0].EstimatedMin)
}

func TestGenerate_RecoveryWhenMultipleMissionsQueued(t *testing.T) {
	b := testutil.Baseline()
	g := testutil.Goals()
	g.TargetStrength = 8
	g.TargetEndurance = 8

	missions, err := Generate(b, g)

	require.NoError(t, err)
	assert.Equal(t,
		[]domain.Category{domain.CategoryStrength, domain.CategoryCardio, domain.CategoryRecovery},
		categories(missions))
}

func TestGenerate_EachRuleAtMostOnce(t *testing.T) {
	b := testutil.Baseline()
	b.Experience = domain.ExperienceBeginner
	g := testutil.Goals()
	g.TargetStrength = 10
	g.TargetEndurance = 10
	g.TargetFlexibility = 10
	g.PrimaryGoal = domain.GoalWeightLoss

	missions, err := Generate(b, g)

	require.NoError(t, err)
	seen := make(map[domain.Category]int)
	for _, m := range missions {
		seen[m.Category]++
	}
	for c, n := range seen {
		assert.Equal(t, 1, n, "category %s emitted more than once", c)
	}
	assert.Len(t, missions, 4)
}

func TestGenerate_Deterministic(t *testing.T) {
	b := testutil.Baseline()
	g := testutil.Goals()
	g.TargetStrength = 8
	g.TargetEndurance = 8

	first, err := Generate(b, g)
	require.NoError(t, err)
	second, err := Generate(b, g)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerate_OutOfRangeFailsLoudly(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Baseline, *domain.Goals)
	}{
		{"strength below scale", func(b *domain.Baseline, g *domain.Goals) { b.Strength = 0 }},
		{"strength above scale", func(b *domain.Baseline, g *domain.Goals) { b.Strength = 11 }},
		{"target endurance above scale", func(b *domain.Baseline, g *domain.Goals) { g.TargetEndurance = 42 }},
		{"negative time budget", func(b *domain.Baseline, g *domain.Goals) { b.TimeAvailableMin = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := testutil.Baseline()
			g := testutil.Goals()
			tt.mutate(&b, &g)

			_, err := Generate(b, g)

			assert.ErrorIs(t, err, ErrOutOfRange)
		})
	}
}

func TestGenerateDaily_WellnessRulesFireOnPositiveGaps(t *testing.T) {
	b := testutil.Baseline()
	b.Nutrition = 3
	b.Sleep = 2
	g := testutil.Goals()
	g.TargetNutrition = 6
	g.TargetSleep = 8

	missions, err := GenerateDaily(b, g, rand.New(rand.NewSource(1)))

	require.NoError(t, err)
	nutrition := findCategory(t, missions, domain.CategoryNutrition)
	sleep := findCategory(t, missions, domain.CategorySleep)
	assert.Equal(t, domain.DifficultyMedium, nutrition.Difficulty, "gap 3 is medium")
	assert.Equal(t, domain.DifficultyHard, sleep.Difficulty, "gap 6 is hard")
}

func TestGenerateDaily_StressGapIsInverted(t *testing.T) {
	b := testutil.Baseline()
	b.Stress = 8
	g := testutil.Goals()
	g.TargetStress = 4 // wants less stress

	missions, err := GenerateDaily(b, g, rand.New(rand.NewSource(1)))

	require.NoError(t, err)
	findCategory(t, missions, domain.CategoryStress)
}

func TestGenerateDaily_VarietyFillerReachesMinimum(t *testing.T) {
	missions, err := GenerateDaily(testutil.Baseline(), testutil.Goals(), rand.New(rand.NewSource(7)))

	require.NoError(t, err)
	require.Len(t, missions, minDailyMissions)
	for _, m := range missions {
		assert.Equal(t, domain.CategoryVariety, m.Category)
	}
}

func TestGenerateDaily_EveryMissionHasRewards(t *testing.T) {
	b := testutil.Baseline()
	b.Experience = domain.ExperienceBeginner
	g := testutil.Goals()
	g.TargetStrength = 9
	g.TargetNutrition = 8

	missions, err := GenerateDaily(b, g, rand.New(rand.NewSource(3)))

	require.NoError(t, err)
	for _, m := range missions {
		assert.Greater(t, m.XPReward, 0, "%s mission has no XP reward", m.Category)
		assert.Greater(t, m.CoinReward, 0, "%s mission has no coin reward", m.Category)
	}
}

func TestGenerateDaily_SameSeedSamePlan(t *testing.T) {
	b := testutil.Baseline()
	b.Energy = 2
	g := testutil.Goals()
	g.TargetEnergy = 8

	first, err := GenerateDaily(b, g, rand.New(rand.NewSource(99)))
	require.NoError(t, err)
	second, err := GenerateDaily(b, g, rand.New(rand.NewSource(99)))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateDaily_UniqueIDs(t *testing.T) {
	missions, err := GenerateDaily(testutil.Baseline(), testutil.Goals(), rand.New(rand.NewSource(5)))

	require.NoError(t, err)
	seen := make(map[string]bool)
	for _, m := range missions {
		require.NotEmpty(t, m.ID)
		assert.False(t, seen[m.ID], "duplicate id %s", m.ID)
		seen[m.ID] = true
	}
}

func TestGenerate_EstimatedTimeNeverNegative(t *testing.T) {
	b := testutil.Baseline()
	b.TimeAvailableMin = 0
	b.Experience = domain.ExperienceBeginner
	g := testutil.Goals()
	g.TargetStrength = 8
	g.TargetEndurance = 8
	g.TargetFlexibility = 8

	missions, err := Generate(b, g)

	require.NoError(t, err)
	for _, m := range missions {
		assert.GreaterOrEqual(t, m.EstimatedMin, 0)
	}
}
