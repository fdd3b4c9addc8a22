package domain

// ScaleMin and ScaleMax bound every self-assessed dimension. The collector
// clamps input to this range before it reaches the planner; the planner
// treats a value outside it as a contract violation.
const (
	ScaleMin = 1
	ScaleMax = 10
)

// Baseline is a snapshot of the user's current state for one planning
// session. It is collected once and never mutated in place.
type Baseline struct {
	// 1-10 self-assessed dimensions
	Strength    int `json:"strength"`
	Endurance   int `json:"endurance"`
	Flexibility int `json:"flexibility"`
	Energy      int `json:"energy"`
	Fitness     int `json:"fitness"`
	Nutrition   int `json:"nutrition"`
	Sleep       int `json:"sleep"`
	Stress      int `json:"stress"`

	// Physical stats
	WeightKg float64 `json:"weight_kg"`
	HeightCm float64 `json:"height_cm"`
	Age      int     `json:"age"`

	Activity   ActivityLevel `json:"activity"`
	Experience Experience    `json:"experience"`
	Budget     string        `json:"budget"`

	// Resource constraints
	TimeAvailableMin int         `json:"time_available_min"`
	Equipment        []Equipment `json:"equipment"`
	Limitations      []string    `json:"limitations,omitempty"`
}

// HasEquipment reports whether the baseline equipment set contains e.
func (b Baseline) HasEquipment(e Equipment) bool {
	for _, have := range b.Equipment {
		if have == e {
			return true
		}
	}
	return false
}

// Goals holds the target values for the same dimensions Baseline tracks,
// paired 1:1 with a Baseline per planning session.
type Goals struct {
	TargetStrength    int `json:"target_strength"`
	TargetEndurance   int `json:"target_endurance"`
	TargetFlexibility int `json:"target_flexibility"`
	TargetEnergy      int `json:"target_energy"`
	TargetFitness     int `json:"target_fitness"`
	TargetNutrition   int `json:"target_nutrition"`
	TargetSleep       int `json:"target_sleep"`
	TargetStress      int `json:"target_stress"`

	PrimaryGoal    PrimaryGoal `json:"primary_goal"`
	TimeframeWeeks int         `json:"timeframe_weeks"`
	Priority       string      `json:"priority"`
}

// Gaps is the derived target-minus-current delta per dimension. It is
// recomputed on every generation call, never stored.
type Gaps struct {
	Strength    int
	Endurance   int
	Flexibility int
	Energy      int
	Nutrition   int
	Sleep       int
	Stress      int
}

// ComputeGaps derives the per-dimension gaps for a baseline/goals pair.
func ComputeGaps(b Baseline, g Goals) Gaps {
	return Gaps{
		Strength:    g.TargetStrength - b.Strength,
		Endurance:   g.TargetEndurance - b.Endurance,
		Flexibility: g.TargetFlexibility - b.Flexibility,
		Energy:      g.TargetEnergy - b.Energy,
		Nutrition:   g.TargetNutrition - b.Nutrition,
		Sleep:       g.TargetSleep - b.Sleep,
		// A stress target below the current level is the improvement
		// direction, so the gap is inverted.
		Stress: b.Stress - g.TargetStress,
	}
}
