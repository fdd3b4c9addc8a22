package planner

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkarlsen/fitquest/internal/domain"
)

func TestRollReward_StaysInTierRange(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	tests := []struct {
		difficulty       domain.Difficulty
		xpMin, xpMax     int
		coinMin, coinMax int
	}{
		{domain.DifficultyEasy, 8, 15, 4, 8},
		{domain.DifficultyMedium, 15, 25, 7, 12},
		{domain.DifficultyHard, 25, 35, 12, 18},
	}

	for _, tt := range tests {
		t.Run(string(tt.difficulty), func(t *testing.T) {
			for i := 0; i < 200; i++ {
				xp, coins := rollReward(domain.CategoryVariety, tt.difficulty, rng)

				assert.GreaterOrEqual(t, xp, tt.xpMin)
				assert.LessOrEqual(t, xp, tt.xpMax)
				assert.GreaterOrEqual(t, coins, tt.coinMin)
				assert.LessOrEqual(t, coins, tt.coinMax)
			}
		})
	}
}

func TestRollReward_CategoryOffsetsApply(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 200; i++ {
		xp, coins := rollReward(domain.CategoryStrength, domain.DifficultyEasy, rng)

		assert.GreaterOrEqual(t, xp, 8+3)
		assert.LessOrEqual(t, xp, 15+3)
		assert.GreaterOrEqual(t, coins, 4+2)
		assert.LessOrEqual(t, coins, 8+2)
	}
}

func TestRollReward_UnknownDifficultyFallsBackToEasy(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	xp, coins := rollReward(domain.CategoryVariety, domain.Difficulty("nightmare"), rng)

	assert.GreaterOrEqual(t, xp, 8)
	assert.LessOrEqual(t, xp, 15)
	assert.GreaterOrEqual(t, coins, 4)
	assert.LessOrEqual(t, coins, 8)
}

func TestFlavorMission_DrawsFromPool(t *testing.T) {
	rng := rand.New(rand.NewSource(2))

	m := flavorMission(domain.CategoryEnergy, domain.DifficultyMedium, rng)

	assert.Equal(t, domain.CategoryEnergy, m.Category)
	assert.Equal(t, domain.DifficultyMedium, m.Difficulty)
	assert.NotEmpty(t, m.Title)
	assert.NotEmpty(t, m.Instructions)
	assert.Greater(t, m.EstimatedMin, 0)
}

func TestFlavorPools_CoverEveryWellnessCategory(t *testing.T) {
	for _, c := range []domain.Category{
		domain.CategoryEnergy,
		domain.CategoryNutrition,
		domain.CategorySleep,
		domain.CategoryStress,
		domain.CategoryVariety,
	} {
		variants, ok := flavorPools[c]
		assert.True(t, ok, "no flavor pool for %s", c)
		assert.NotEmpty(t, variants, "empty flavor pool for %s", c)
	}
}
