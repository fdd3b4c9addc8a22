package contract

import "github.com/dkarlsen/fitquest/internal/domain"

// Plan is a generated daily plan fitted to the user's time budget.
type Plan struct {
	Baseline domain.Baseline  `json:"baseline"`
	Goals    domain.Goals     `json:"goals"`
	Missions []domain.Mission `json:"missions"`

	// Candidate count before the prioritizer truncated to the budget.
	CandidateCount int `json:"candidate_count"`
	TotalMin       int `json:"total_min"`
}
