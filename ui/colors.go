package ui

import "github.com/charmbracelet/lipgloss"

var (
	Green  = lipgloss.Color("10")
	Red    = lipgloss.Color("9")
	Gray   = lipgloss.Color("8")
	Purple = lipgloss.Color("99")
	Cyan   = lipgloss.Color("14")
	Blue   = lipgloss.Color("12")
	Yellow = lipgloss.Color("11")
)

// Palette maps message roles to colors
type Palette struct {
	Success  lipgloss.Color
	Error    lipgloss.Color
	Warning  lipgloss.Color
	Info     lipgloss.Color
	Muted    lipgloss.Color
	Emphasis lipgloss.Color
	Data     lipgloss.Color
}

// DefaultPalette returns the standard gridline colors
func DefaultPalette() Palette {
	return Palette{
		Success:  Green,
		Error:    Red,
		Warning:  Yellow,
		Info:     Blue,
		Muted:    Gray,
		Emphasis: Purple,
		Data:     Cyan,
	}
}
