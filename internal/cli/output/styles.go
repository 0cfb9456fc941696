package output

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.AdaptiveColor{Light: "25", Dark: "75"}   // blue
	colorError  = lipgloss.AdaptiveColor{Light: "160", Dark: "196"} // red
	colorMuted  = lipgloss.AdaptiveColor{Light: "245", Dark: "244"} // light gray

	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
)
