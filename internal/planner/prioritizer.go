package planner

import (
	"sort"

	"github.com/dkarlsen/fitquest/internal/domain"
)

// categoryOrders maps each primary goal onto its fixed category priority.
// Lower index means kept first when the plan exceeds the time budget.
var categoryOrders = map[domain.PrimaryGoal][4]domain.Category{
	domain.GoalWeightLoss:     {domain.CategoryCardio, domain.CategoryStrength, domain.CategoryRecovery, domain.CategoryFlexibility},
	domain.GoalMuscleGain:     {domain.CategoryStrength, domain.CategoryRecovery, domain.CategoryCardio, domain.CategoryFlexibility},
	domain.GoalEndurance:      {domain.CategoryCardio, domain.CategoryFlexibility, domain.CategoryStrength, domain.CategoryRecovery},
	domain.GoalStrength:       {domain.CategoryStrength, domain.CategoryCardio, domain.CategoryRecovery, domain.CategoryFlexibility},
	domain.GoalFlexibility:    {domain.CategoryFlexibility, domain.CategoryRecovery, domain.CategoryStrength, domain.CategoryCardio},
	domain.GoalGeneralFitness: {domain.CategoryStrength, domain.CategoryCardio, domain.CategoryFlexibility, domain.CategoryRecovery},
}

// categoryRank returns the priority index of a category under the goal's
// ordering. Categories outside the ordering rank after everything in it,
// keeping their original relative order through the stable sort.
func categoryRank(goal domain.PrimaryGoal, c domain.Category) int {
	order, ok := categoryOrders[goal]
	if !ok {
		order = categoryOrders[domain.GoalGeneralFitness]
	}
	for i, oc := range order {
		if oc == c {
			return i
		}
	}
	return len(order)
}

// Prioritize fits candidate missions into the baseline's daily time budget.
// Under budget the list passes through unchanged. Over budget, missions are
// stably sorted by the goal's category ordering and then greedily kept while
// the running total stays within the budget; the first mission that would
// overflow is dropped together with every mission after it. This is a plain
// greedy truncation, not a knapsack fit, and a later smaller mission is
// never pulled forward past a dropped one.
func Prioritize(missions []domain.Mission, b domain.Baseline, g domain.Goals) []domain.Mission {
	out := make([]domain.Mission, len(missions))
	copy(out, missions)

	if domain.TotalMinutes(out) <= b.TimeAvailableMin {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		return categoryRank(g.PrimaryGoal, out[i].Category) < categoryRank(g.PrimaryGoal, out[j].Category)
	})

	kept := make([]domain.Mission, 0, len(out))
	remaining := b.TimeAvailableMin
	for _, m := range out {
		if m.EstimatedMin > remaining {
			break
		}
		kept = append(kept, m)
		remaining -= m.EstimatedMin
	}
	return kept
}
