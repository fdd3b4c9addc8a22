package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkarlsen/fitquest/internal/cli/formatter"
)

func newPlanCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Answer the questionnaire and get today's workout plan",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive != nil && !app.IsInteractive() {
				return fmt.Errorf("plan needs an interactive terminal")
			}

			var answers wizardAnswers
			if err := baselineForm(&answers).Run(); err != nil {
				return fmt.Errorf("collecting baseline: %w", err)
			}
			if err := goalsForm(&answers).Run(); err != nil {
				return fmt.Errorf("collecting goals: %w", err)
			}

			plan, err := app.Plan.BuildPlan(context.Background(), answers.toBaseline(), answers.toGoals())
			if err != nil {
				return err
			}

			fmt.Print(formatter.FormatPlan(plan))
			return nil
		},
	}
}
