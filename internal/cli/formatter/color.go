package formatter

import (
	"fmt"
	"strings"

	"github.com/Silvia-9/taskflow-canvas/internal/domain"
	"github.com/charmbracelet/lipgloss"
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

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

// Dim renders text in the muted/dim color.
func Dim(text string) string {
	return StyleDim.Render(text)
}

// Bold renders text in bold with the foreground color.
func Bold(text string) string {
	return StyleBold.Render(text)
}

// TaskStatusStyle returns the style for a schedule task status, matching
// the color tags the schedule report compiler assigns.
func TaskStatusStyle(s domain.TaskStatus) lipgloss.Style {
	switch s {
	case domain.TaskCompleted:
		return StyleGreen
	case domain.TaskInProgress:
		return StyleBlue
	case domain.TaskBlocked:
		return StyleRed
	case domain.TaskNotStarted:
		return StyleDim
	default:
		return StyleDim
	}
}

// CardStatusPill returns a colored indicator for a kanban card status.
func CardStatusPill(s domain.CardStatus) string {
	switch s {
	case domain.CardNotStarted:
		return StyleDim.Render("○ Not Started")
	case domain.CardInProgress:
		return StyleBlue.Render("● In Progress")
	case domain.CardReview:
		return StyleYellow.Render("◐ Review")
	case domain.CardDone:
		return StyleGreen.Render("✔ Done")
	default:
		return StyleDim.Render(string(s))
	}
}

// HealthPill returns a colored indicator for a budget health classification.
func HealthPill(h domain.BudgetHealth) string {
	switch h {
	case domain.BudgetOnTrack:
		return StyleGreen.Render("● ON TRACK")
	case domain.BudgetBehindSchedule:
		return StyleYellow.Render("● BEHIND SCHEDULE")
	case domain.BudgetOverBudget:
		return StyleYellow.Render("● OVER BUDGET")
	case domain.BudgetCritical:
		return StyleRed.Render("● CRITICAL")
	default:
		return StyleDim.Render(string(h))
	}
}

// LevelPill returns a colored indicator for a derived risk level.
func LevelPill(level domain.RiskRating) string {
	switch level {
	case domain.RatingHigh:
		return StyleRed.Render("▲ High")
	case domain.RatingMedium:
		return StyleYellow.Render("■ Medium")
	case domain.RatingLow:
		return StyleGreen.Render("▼ Low")
	default:
		return StyleDim.Render(string(level))
	}
}
