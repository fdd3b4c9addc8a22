package domain

// Mission is one recommended daily activity. Missions are created fresh on
// every generation call; only their IDs survive a session via the progress
// record's completed-mission log.
type Mission struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Description  string      `json:"description"`
	Category     Category    `json:"category"`
	Difficulty   Difficulty  `json:"difficulty"`
	EstimatedMin int         `json:"estimated_min"`
	Equipment    []Equipment `json:"equipment,omitempty"`
	Instructions []string    `json:"instructions"`

	// Gamified rewards. Zero for plain CLI plans.
	XPReward   int  `json:"xp_reward,omitempty"`
	CoinReward int  `json:"coin_reward,omitempty"`
	Completed  bool `json:"completed"`
}

// TotalMinutes sums the estimated time across missions.
func TotalMinutes(missions []Mission) int {
	total := 0
	for _, m := range missions {
		total += m.EstimatedMin
	}
	return total
}
