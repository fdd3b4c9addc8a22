package survey

// Question ids recognized by the response processor. Unknown or missing ids
// fall back to the per-field defaults in process.go.
const (
	QCurrentStrength    = "current_strength"
	QCurrentEndurance   = "current_endurance"
	QCurrentFlexibility = "current_flexibility"
	QCurrentEnergy      = "current_energy"
	QCurrentFitness     = "current_fitness"
	QCurrentNutrition   = "current_nutrition"
	QCurrentSleep       = "current_sleep"
	QCurrentStress      = "current_stress"

	QWeightKg      = "weight_kg"
	QHeightCm      = "height_cm"
	QAge           = "age"
	QActivityLevel = "activity_level"
	QExperience    = "experience"
	QBudget        = "budget"
	QTimeAvailable = "time_available"
	QEquipment     = "equipment"
	QLimitations   = "limitations"

	QPrimaryGoal       = "primary_goal"
	QTargetStrength    = "target_strength"
	QTargetEndurance   = "target_endurance"
	QTargetFlexibility = "target_flexibility"
	QTargetEnergy      = "target_energy"
	QTargetFitness     = "target_fitness"
	QTargetNutrition   = "target_nutrition"
	QTargetSleep       = "target_sleep"
	QTargetStress      = "target_stress"
	QTimeframeWeeks    = "timeframe_weeks"
	QPriority          = "priority"
)
