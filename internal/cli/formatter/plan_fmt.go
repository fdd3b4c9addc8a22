package formatter

import (
	"fmt"
	"strings"

	"github.com/dkarlsen/fitquest/internal/contract"
	"github.com/dkarlsen/fitquest/internal/domain"
)

// FormatPlan renders a generated plan as the final CLI report: summary
// block, target deltas, enumerated missions with instructions, total time,
// and a closing tip.
func FormatPlan(plan *contract.Plan) string {
	var b strings.Builder

	b.WriteString(formatSummary(plan))
	b.WriteString("\n\n")

	deltas := formatDeltas(plan.Baseline, plan.Goals)
	if deltas != "" {
		b.WriteString(Header("Target Improvements"))
		b.WriteString("\n")
		b.WriteString(deltas)
		b.WriteString("\n")
	}

	b.WriteString(Header("Today's Missions"))
	b.WriteString("\n\n")

	if len(plan.Missions) == 0 {
		b.WriteString(Dim("No missions today — you're already on target."))
		b.WriteString("\n")
	} else {
		for i, m := range plan.Missions {
			b.WriteString(formatMission(i+1, m))
			if i < len(plan.Missions)-1 {
				b.WriteString("\n")
			}
		}
	}

	b.WriteString("\n")
	b.WriteString(StyleGreen.Render(fmt.Sprintf("Total time: %s", FormatMinutes(plan.TotalMin))))
	if budget := plan.Baseline.TimeAvailableMin; budget > 0 {
		b.WriteString(fmt.Sprintf("  %s %s",
			ProgressBar(plan.TotalMin, budget, 20),
			Dim(fmt.Sprintf("of %s", FormatMinutes(budget)))))
	}
	if dropped := plan.CandidateCount - len(plan.Missions); dropped > 0 {
		b.WriteString(Dim(fmt.Sprintf("  (%d mission(s) deferred to fit your %s budget)",
			dropped, FormatMinutes(plan.Baseline.TimeAvailableMin))))
	}
	b.WriteString("\n\n")
	b.WriteString(StyleBlue.Render("TIP: ") + StyleFg.Render(closingTip(plan.Goals.PrimaryGoal)))
	b.WriteString("\n")

	return b.String()
}

func formatSummary(plan *contract.Plan) string {
	lines := []string{
		fmt.Sprintf("%s %s", Dim("Primary goal:"), StyleFg.Render(goalLabel(plan.Goals.PrimaryGoal))),
		fmt.Sprintf("%s %s", Dim("Experience:"), StyleFg.Render(string(plan.Baseline.Experience))),
		fmt.Sprintf("%s %s/day", Dim("Time budget:"), StyleFg.Render(FormatMinutes(plan.Baseline.TimeAvailableMin))),
		fmt.Sprintf("%s %d weeks", Dim("Timeframe:"), plan.Goals.TimeframeWeeks),
	}
	return RenderBox("Your Plan", strings.Join(lines, "\n"))
}

func formatDeltas(b domain.Baseline, g domain.Goals) string {
	type delta struct {
		label            string
		current, target int
	}
	deltas := []delta{
		{"Strength", b.Strength, g.TargetStrength},
		{"Endurance", b.Endurance, g.TargetEndurance},
		{"Flexibility", b.Flexibility, g.TargetFlexibility},
	}

	var out strings.Builder
	for _, d := range deltas {
		if d.target <= d.current {
			continue
		}
		out.WriteString(fmt.Sprintf("  %s %s\n",
			StyleFg.Render(fmt.Sprintf("%-12s", d.label)),
			StyleYellow.Render(fmt.Sprintf("%d → %d", d.current, d.target)),
		))
	}
	return out.String()
}

func formatMission(num int, m domain.Mission) string {
	var b strings.Builder

	title := fmt.Sprintf("%s %s  %s  %s",
		Bold(fmt.Sprintf("%d.", num)),
		CategoryStyle(m.Category).Render(m.Title),
		StyleBlue.Render(fmt.Sprintf("(%s)", FormatMinutes(m.EstimatedMin))),
		DifficultyBadge(m.Difficulty),
	)
	b.WriteString(title + "\n")
	b.WriteString(fmt.Sprintf("   %s\n", Dim(m.Description)))
	for _, step := range m.Instructions {
		b.WriteString(fmt.Sprintf("   %s %s\n", StyleDim.Render("·"), StyleFg.Render(step)))
	}
	return b.String()
}

func goalLabel(g domain.PrimaryGoal) string {
	return strings.ReplaceAll(string(g), "_", " ")
}

// closingTip returns the goal-specific sign-off line.
func closingTip(g domain.PrimaryGoal) string {
	switch g {
	case domain.GoalWeightLoss:
		return "Consistency beats intensity — a short session today is worth more than a perfect one someday."
	case domain.GoalMuscleGain:
		return "Strength grows in recovery. Eat enough and protect your sleep."
	case domain.GoalEndurance:
		return "Keep most sessions easy; the hard ones only work when the easy ones stay easy."
	case domain.GoalFlexibility:
		return "Little and often wins — two relaxed minutes of stretching daily beats a weekly hour."
	case domain.GoalStrength:
		return "Add a little load or a rep each week; small jumps compound."
	default:
		return "Show up today. Tomorrow's plan will meet you where you are."
	}
}
