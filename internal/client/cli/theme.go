package cli

import "github.com/charmbracelet/lipgloss"

// Theme holds the styles used by the screens.
type Theme struct {
	Primary   lipgloss.Color
	Error     lipgloss.Color
	Secondary lipgloss.Color

	Title   lipgloss.Style
	Label   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Fail    lipgloss.Style
	Avatar  lipgloss.Style
	Card    lipgloss.Style
}

// NewTheme derives the styles from three colors.
func NewTheme(primary, errColor, secondary lipgloss.Color) Theme {
	return Theme{
		Primary:   primary,
		Error:     errColor,
		Secondary: secondary,

		Title:   lipgloss.NewStyle().Foreground(primary).Bold(true),
		Label:   lipgloss.NewStyle().Foreground(secondary),
		Muted:   lipgloss.NewStyle().Foreground(secondary).Italic(true),
		Success: lipgloss.NewStyle().Foreground(primary),
		Fail:    lipgloss.NewStyle().Foreground(errColor),
		Avatar:  lipgloss.NewStyle().Foreground(lipgloss.Color("#000000")).Background(primary).Bold(true).Padding(0, 1),
		Card:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1),
	}
}

var DefaultTheme = NewTheme(
	lipgloss.Color("#89eb43"), // brand green
	lipgloss.Color("#ff4757"), // red
	lipgloss.Color("#999999"), // gray
)
