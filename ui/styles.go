package ui

import "github.com/charmbracelet/lipgloss"

// Base style configurations
var (
	Bold = lipgloss.NewStyle().Bold(true)

	palette = DefaultPalette()

	Success = Bold.Foreground(palette.Success)
	Error   = Bold.Foreground(palette.Error)
	Warning = Bold.Foreground(palette.Warning)
	Info    = Bold.Foreground(palette.Info)
	Muted   = lipgloss.NewStyle().Foreground(palette.Muted)

	Header = Bold.Foreground(palette.Emphasis)
	Label  = lipgloss.NewStyle().Foreground(palette.Muted)
	Value  = lipgloss.NewStyle().Foreground(palette.Data)
)

// StatusColor picks the style for a status keyword
func StatusColor(status string) lipgloss.Style {
	switch status {
	case "success":
		return Success
	case "error":
		return Error
	case "warning":
		return Warning
	case "info":
		return Info
	default:
		return Muted
	}
}
