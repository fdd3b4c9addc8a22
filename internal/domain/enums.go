package domain

type Category string

const (
	CategoryStrength    Category = "strength"
	CategoryCardio      Category = "cardio"
	CategoryFlexibility Category = "flexibility"
	CategoryRecovery    Category = "recovery"
	CategoryNutrition   Category = "nutrition"
	CategoryEnergy      Category = "energy"
	CategorySleep       Category = "sleep"
	CategoryStress      Category = "stress"
	CategoryVariety     Category = "variety"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

type PrimaryGoal string

const (
	GoalWeightLoss     PrimaryGoal = "weight_loss"
	GoalMuscleGain     PrimaryGoal = "muscle_gain"
	GoalEndurance      PrimaryGoal = "endurance"
	GoalStrength       PrimaryGoal = "strength"
	GoalFlexibility    PrimaryGoal = "flexibility"
	GoalGeneralFitness PrimaryGoal = "general_fitness"
)

type Experience string

const (
	ExperienceBeginner     Experience = "beginner"
	ExperienceIntermediate Experience = "intermediate"
	ExperienceAdvanced     Experience = "advanced"
)

type ActivityLevel string

const (
	ActivitySedentary ActivityLevel = "sedentary"
	ActivityLight     ActivityLevel = "light"
	ActivityModerate  ActivityLevel = "moderate"
	ActivityActive    ActivityLevel = "active"
)

type Equipment string

const (
	EquipmentBodyweight Equipment = "bodyweight_only"
	EquipmentHome       Equipment = "home_equipment"
	EquipmentGym        Equipment = "gym_access"
)

// ValidPrimaryGoals is the canonical set of accepted primary goal strings.
var ValidPrimaryGoals = map[string]bool{
	"weight_loss": true, "muscle_gain": true, "endurance": true,
	"strength": true, "flexibility": true, "general_fitness": true,
}

// ValidExperienceLevels is the canonical set of accepted experience strings.
var ValidExperienceLevels = map[string]bool{
	"beginner": true, "intermediate": true, "advanced": true,
}

// ValidActivityLevels is the canonical set of accepted activity level strings.
var ValidActivityLevels = map[string]bool{
	"sedentary": true, "light": true, "moderate": true, "active": true,
}

// ValidEquipment is the canonical set of accepted equipment strings.
var ValidEquipment = map[string]bool{
	"bodyweight_only": true, "home_equipment": true, "gym_access": true,
}
