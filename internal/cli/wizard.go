package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/dkarlsen/fitquest/internal/cli/formatter"
	"github.com/dkarlsen/fitquest/internal/domain"
)

// fitquestHuhTheme returns a custom huh theme using the existing palette.
func fitquestHuhTheme() *huh.Theme {
	t := huh.ThemeBase()

	// Focused state: orange accent
	t.Focused.Title = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorGreen)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.FocusedButton = lipgloss.NewStyle().Foreground(formatter.ColorFg).Background(formatter.ColorHeader).Padding(0, 1)
	t.Focused.BlurredButton = lipgloss.NewStyle().Foreground(formatter.ColorDim).Padding(0, 1)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorHeader)
	t.Focused.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorFg)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Focused.Description = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	// Blurred state: dimmed
	t.Blurred.Title = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectSelector = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.SelectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.UnselectedOption = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Prompt = lipgloss.NewStyle().Foreground(formatter.ColorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(formatter.ColorDim)

	return t
}

// wizardAnswers collects the raw form values before conversion into domain
// types. Numeric fields stay strings until the forms validate them.
type wizardAnswers struct {
	strength    string
	endurance   string
	flexibility string

	weightKg string
	heightCm string
	age      string

	activity   string
	experience string
	budget     string

	timeAvailable string
	gymAccess     bool
	homeEquipment bool
	limitations   string

	primaryGoal       string
	targetStrength    string
	targetEndurance   string
	targetFlexibility string
	timeframeWeeks    string
	priority          string
}

// baselineForm builds the questionnaire for the user's current state.
func baselineForm(a *wizardAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			scaleInput("Current strength (1-10)", &a.strength),
			scaleInput("Current endurance (1-10)", &a.endurance),
			scaleInput("Current flexibility (1-10)", &a.flexibility),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Weight (kg)").
				Placeholder("70").
				Value(&a.weightKg).
				Validate(validateOptionalPositiveNumber),
			huh.NewInput().
				Title("Height (cm)").
				Placeholder("170").
				Value(&a.heightCm).
				Validate(validateOptionalPositiveNumber),
			huh.NewInput().
				Title("Age").
				Placeholder("30").
				Value(&a.age).
				Validate(validateOptionalPositiveInt),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Activity Level").
				Options(
					huh.NewOption("Sedentary", "sedentary"),
					huh.NewOption("Lightly active", "light"),
					huh.NewOption("Moderately active", "moderate"),
					huh.NewOption("Very active", "active"),
				).
				Value(&a.activity),
			huh.NewSelect[string]().
				Title("Training Experience").
				Options(
					huh.NewOption("Beginner", "beginner"),
					huh.NewOption("Intermediate", "intermediate"),
					huh.NewOption("Advanced", "advanced"),
				).
				Value(&a.experience),
			huh.NewSelect[string]().
				Title("Budget").
				Options(
					huh.NewOption("Low", "low"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("High", "high"),
				).
				Value(&a.budget),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Minutes available per day").
				Placeholder("30").
				Value(&a.timeAvailable).
				Validate(validatePositiveInt),
			huh.NewConfirm().
				Title("Do you have gym access?").
				Affirmative("Yes").
				Negative("No").
				Value(&a.gymAccess),
			huh.NewConfirm().
				Title("Do you have home equipment?").
				Affirmative("Yes").
				Negative("No").
				Value(&a.homeEquipment),
			huh.NewInput().
				Title("Limitations (comma-separated, blank for none)").
				Placeholder("knee pain, ...").
				Value(&a.limitations),
		),
	).WithTheme(fitquestHuhTheme()).WithShowHelp(false)
}

// goalsForm builds the questionnaire for the user's targets.
func goalsForm(a *wizardAnswers) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Primary Goal").
				Options(
					huh.NewOption("Lose weight", "weight_loss"),
					huh.NewOption("Build muscle", "muscle_gain"),
					huh.NewOption("Improve endurance", "endurance"),
					huh.NewOption("Get stronger", "strength"),
					huh.NewOption("Improve flexibility", "flexibility"),
					huh.NewOption("General fitness", "general_fitness"),
				).
				Value(&a.primaryGoal),
		),
		huh.NewGroup(
			scaleInput("Target strength (1-10)", &a.targetStrength),
			scaleInput("Target endurance (1-10)", &a.targetEndurance),
			scaleInput("Target flexibility (1-10)", &a.targetFlexibility),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Timeframe (weeks)").
				Placeholder("12").
				Value(&a.timeframeWeeks).
				Validate(validateOptionalPositiveInt),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Low", "low"),
					huh.NewOption("Medium", "medium"),
					huh.NewOption("High", "high"),
				).
				Value(&a.priority),
		),
	).WithTheme(fitquestHuhTheme()).WithShowHelp(false)
}

// toBaseline converts validated answers into a Baseline. The wellness
// dimensions are not part of the CLI questionnaire and sit at the scale
// midpoint so no wellness rule fires.
func (a *wizardAnswers) toBaseline() domain.Baseline {
	equipment := []domain.Equipment{domain.EquipmentBodyweight}
	if a.gymAccess {
		equipment = append(equipment, domain.EquipmentGym)
	}
	if a.homeEquipment {
		equipment = append(equipment, domain.EquipmentHome)
	}

	const midScale = (domain.ScaleMin + domain.ScaleMax) / 2
	return domain.Baseline{
		Strength:    parseIntOr(a.strength, midScale),
		Endurance:   parseIntOr(a.endurance, midScale),
		Flexibility: parseIntOr(a.flexibility, midScale),
		Energy:      midScale,
		Fitness:     midScale,
		Nutrition:   midScale,
		Sleep:       midScale,
		Stress:      midScale,

		WeightKg: parseFloatOr(a.weightKg, 70),
		HeightCm: parseFloatOr(a.heightCm, 170),
		Age:      parseIntOr(a.age, 30),

		Activity:   domain.ActivityLevel(a.activity),
		Experience: domain.Experience(a.experience),
		Budget:     a.budget,

		TimeAvailableMin: parseIntOr(a.timeAvailable, 30),
		Equipment:        equipment,
		Limitations:      splitList(a.limitations),
	}
}

func (a *wizardAnswers) toGoals() domain.Goals {
	const midScale = (domain.ScaleMin + domain.ScaleMax) / 2
	return domain.Goals{
		TargetStrength:    parseIntOr(a.targetStrength, midScale),
		TargetEndurance:   parseIntOr(a.targetEndurance, midScale),
		TargetFlexibility: parseIntOr(a.targetFlexibility, midScale),
		TargetEnergy:      midScale,
		TargetFitness:     midScale,
		TargetNutrition:   midScale,
		TargetSleep:       midScale,
		TargetStress:      midScale,

		PrimaryGoal:    domain.PrimaryGoal(a.primaryGoal),
		TimeframeWeeks: parseIntOr(a.timeframeWeeks, 12),
		Priority:       a.priority,
	}
}

// scaleInput builds a 1-10 numeric input with range validation.
func scaleInput(title string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder("5").
		Value(value).
		Validate(validateScale)
}

// validateScale accepts an integer within the declared 1-10 scale.
func validateScale(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v < domain.ScaleMin || v > domain.ScaleMax {
		return fmt.Errorf("enter a number between %d and %d", domain.ScaleMin, domain.ScaleMax)
	}
	return nil
}

// validatePositiveInt accepts a positive integer.
func validatePositiveInt(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// validateOptionalPositiveInt accepts empty or a positive integer.
func validateOptionalPositiveInt(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return validatePositiveInt(s)
}

// validateOptionalPositiveNumber accepts empty or a positive number.
func validateOptionalPositiveNumber(s string) error {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || v <= 0 {
		return fmt.Errorf("enter a positive number")
	}
	return nil
}

// parseIntOr parses s as an integer, returning fallback on empty or invalid
// input. Used after form validation, so this is a safe conversion.
func parseIntOr(s string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fallback
	}
	return v
}

func parseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
