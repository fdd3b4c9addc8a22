package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dkarlsen/fitquest/internal/domain"
)

func TestValidateScale(t *testing.T) {
	assert.NoError(t, validateScale("1"))
	assert.NoError(t, validateScale("10"))
	assert.NoError(t, validateScale(" 7 "))
	assert.Error(t, validateScale("0"))
	assert.Error(t, validateScale("11"))
	assert.Error(t, validateScale("seven"))
	assert.Error(t, validateScale(""))
}

func TestValidatePositiveInt(t *testing.T) {
	assert.NoError(t, validatePositiveInt("30"))
	assert.Error(t, validatePositiveInt("0"))
	assert.Error(t, validatePositiveInt("-5"))
	assert.Error(t, validatePositiveInt("abc"))
}

func TestValidateOptionalInputs(t *testing.T) {
	assert.NoError(t, validateOptionalPositiveInt(""))
	assert.NoError(t, validateOptionalPositiveInt("44"))
	assert.Error(t, validateOptionalPositiveInt("-1"))

	assert.NoError(t, validateOptionalPositiveNumber(""))
	assert.NoError(t, validateOptionalPositiveNumber("82.5"))
	assert.Error(t, validateOptionalPositiveNumber("-3"))
	assert.Error(t, validateOptionalPositiveNumber("heavy"))
}

func TestWizardAnswers_ToBaseline(t *testing.T) {
	a := wizardAnswers{
		strength:      "3",
		endurance:     "6",
		flexibility:   "4",
		weightKg:      "82.5",
		age:           "44",
		activity:      "moderate",
		experience:    "intermediate",
		budget:        "low",
		timeAvailable: "45",
		gymAccess:     true,
		limitations:   "bad knee, lower back",
	}

	b := a.toBaseline()

	assert.Equal(t, 3, b.Strength)
	assert.Equal(t, 6, b.Endurance)
	assert.Equal(t, 5, b.Nutrition, "wellness dimensions sit at the midpoint")
	assert.Equal(t, 5, b.Stress)
	assert.Equal(t, 82.5, b.WeightKg)
	assert.Equal(t, 170.0, b.HeightCm, "blank height falls back")
	assert.Equal(t, domain.ActivityModerate, b.Activity)
	assert.Equal(t, 45, b.TimeAvailableMin)
	assert.Equal(t, []domain.Equipment{domain.EquipmentBodyweight, domain.EquipmentGym}, b.Equipment)
	assert.Equal(t, []string{"bad knee", "lower back"}, b.Limitations)
}

func TestWizardAnswers_ToBaselineDefaults(t *testing.T) {
	var a wizardAnswers

	b := a.toBaseline()

	assert.Equal(t, 5, b.Strength)
	assert.Equal(t, 30, b.TimeAvailableMin)
	assert.Equal(t, []domain.Equipment{domain.EquipmentBodyweight}, b.Equipment)
	assert.Nil(t, b.Limitations)
}

func TestWizardAnswers_ToGoals(t *testing.T) {
	a := wizardAnswers{
		primaryGoal:     "weight_loss",
		targetStrength:  "8",
		targetEndurance: "7",
		timeframeWeeks:  "6",
		priority:        "high",
	}

	g := a.toGoals()

	assert.Equal(t, domain.GoalWeightLoss, g.PrimaryGoal)
	assert.Equal(t, 8, g.TargetStrength)
	assert.Equal(t, 7, g.TargetEndurance)
	assert.Equal(t, 5, g.TargetFlexibility, "unanswered scales default to the midpoint")
	assert.Equal(t, 5, g.TargetStress)
	assert.Equal(t, 6, g.TimeframeWeeks)
	assert.Equal(t, "high", g.Priority)
}

func TestSplitList(t *testing.T) {
	assert.Nil(t, splitList(""))
	assert.Nil(t, splitList("  ,  "))
	assert.Equal(t, []string{"a", "b"}, splitList(" a , b "))
}
