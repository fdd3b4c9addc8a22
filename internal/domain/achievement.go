package domain

// RequirementKind is the closed set of achievement requirement predicates.
// Evaluation must match exhaustively on this set; an unknown kind is an
// error, never vacuously satisfied.
type RequirementKind string

const (
	ReqTotalMissions    RequirementKind = "total_missions"
	ReqStreak           RequirementKind = "streak"
	ReqCategoryProgress RequirementKind = "category_progress"
	ReqLevelReached     RequirementKind = "level_reached"
)

// Requirement is one threshold predicate over a progress record. Category is
// only meaningful for streak and category_progress kinds.
type Requirement struct {
	Kind      RequirementKind `json:"kind"`
	Threshold int             `json:"threshold"`
	Category  Category        `json:"category,omitempty"`
}

// Achievement is a static, read-only definition. Only the unlocked relation
// (user to achievement id plus timestamp) ever mutates.
type Achievement struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	XPReward    int    `json:"xp_reward"`
	CoinReward  int    `json:"coin_reward"`

	Requirements []Requirement `json:"requirements"`
}
