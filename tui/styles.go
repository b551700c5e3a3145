package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent  = lipgloss.AdaptiveColor{Light: "#1e40af", Dark: "#89b4fa"}
	colorMuted   = lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#7f849c"}
	colorWarning = lipgloss.AdaptiveColor{Light: "#b91c1c", Dark: "#f38ba8"}
	colorBorder  = lipgloss.AdaptiveColor{Light: "#cbd5e1", Dark: "#45475a"}
)

// Styles holds the lipgloss styles used by the form.
type Styles struct {
	Title        lipgloss.Style
	Label        lipgloss.Style
	LabelFocused lipgloss.Style
	Panel        lipgloss.Style
	EndTime      lipgloss.Style
	DayLabel     lipgloss.Style
	Muted        lipgloss.Style
	Warning      lipgloss.Style
	Status       lipgloss.Style
}

func NewStyles() Styles {
	return Styles{
		Title:        lipgloss.NewStyle().Bold(true).Foreground(colorAccent).MarginBottom(1),
		Label:        lipgloss.NewStyle().Width(14).Foreground(colorMuted),
		LabelFocused: lipgloss.NewStyle().Width(14).Bold(true).Foreground(colorAccent),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 2).
			MarginTop(1),
		EndTime:  lipgloss.NewStyle().Bold(true),
		DayLabel: lipgloss.NewStyle().Foreground(colorMuted).MarginLeft(1),
		Muted:    lipgloss.NewStyle().Foreground(colorMuted),
		Warning:  lipgloss.NewStyle().Foreground(colorWarning),
		Status:   lipgloss.NewStyle().Italic(true).Foreground(colorMuted),
	}
}
