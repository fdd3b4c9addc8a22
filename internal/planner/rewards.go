package planner

import (
	"math/rand"

	"github.com/dkarlsen/fitquest/internal/domain"
)

// rewardRange bounds the random base reward per difficulty tier.
type rewardRange struct {
	xpMin, xpMax     int
	coinMin, coinMax int
}

var rewardByDifficulty = map[domain.Difficulty]rewardRange{
	domain.DifficultyEasy:   {xpMin: 8, xpMax: 15, coinMin: 4, coinMax: 8},
	domain.DifficultyMedium: {xpMin: 15, xpMax: 25, coinMin: 7, coinMax: 12},
	domain.DifficultyHard:   {xpMin: 25, xpMax: 35, coinMin: 12, coinMax: 18},
}

// categoryXPOffset biases rewards toward the physically demanding categories.
var categoryXPOffset = map[domain.Category]int{
	domain.CategoryStrength: 3,
	domain.CategoryCardio:   3,
	domain.CategoryStress:   2,
	domain.CategorySleep:    2,
	domain.CategoryNutrition: 1,
	domain.CategoryEnergy:    1,
	domain.CategoryFlexibility: 1,
}

var categoryCoinOffset = map[domain.Category]int{
	domain.CategoryStrength: 2,
	domain.CategoryCardio:   2,
	domain.CategoryStress:   1,
	domain.CategorySleep:    1,
}

// rollReward draws reward values for a mission: a random base in the
// difficulty tier's range plus the category's fixed offset.
func rollReward(category domain.Category, difficulty domain.Difficulty, rng *rand.Rand) (xp, coins int) {
	r, ok := rewardByDifficulty[difficulty]
	if !ok {
		r = rewardByDifficulty[domain.DifficultyEasy]
	}
	xp = r.xpMin + rng.Intn(r.xpMax-r.xpMin+1) + categoryXPOffset[category]
	coins = r.coinMin + rng.Intn(r.coinMax-r.coinMin+1) + categoryCoinOffset[category]
	return xp, coins
}
