package formatter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/dkarlsen/fitquest/internal/domain"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

// Predefined lipgloss styles.
var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// Header renders an uppercase section header.
func Header(text string) string {
	return StyleHeader.Render(strings.ToUpper(text))
}

// Dim renders dimmed secondary text.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders bold foreground text.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// CategoryStyle returns the style for a mission category.
func CategoryStyle(c domain.Category) lipgloss.Style {
	switch c {
	case domain.CategoryStrength:
		return StyleRed
	case domain.CategoryCardio:
		return StyleBlue
	case domain.CategoryFlexibility:
		return StylePurple
	case domain.CategoryRecovery:
		return StyleGreen
	case domain.CategoryNutrition, domain.CategoryEnergy:
		return StyleYellow
	default:
		return StyleFg
	}
}

// DifficultyBadge returns a colored difficulty indicator such as "● HARD".
func DifficultyBadge(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyHard:
		return StyleRed.Render("● HARD")
	case domain.DifficultyMedium:
		return StyleYellow.Render("● MEDIUM")
	case domain.DifficultyEasy:
		return StyleGreen.Render("● EASY")
	default:
		return StyleDim.Render("● UNKNOWN")
	}
}
