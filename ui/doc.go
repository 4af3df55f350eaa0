// Package ui provides the styled building blocks gridline's commands use
// for their own messages.
//
// Styling is done with charmbracelet/lipgloss. Rendered tables never pass
// through this package: they are plain text so they can be piped and
// diffed. Only the surrounding chrome (headings, status lines, the theme
// catalog) is colored.
//
// Usage:
//
//	fmt.Println(ui.NewHeader("Available Themes").WithMargin().Render())
//	fmt.Println(ui.NewStatus("error", err.Error()).WithIcon("✗").Render())
//
// The package follows semantic color usage:
//   - Green: Success
//   - Red: Errors
//   - Yellow: Warnings
//   - Blue: Information
//   - Purple: Headers
//   - Cyan: Data values such as theme names
//   - Gray: Muted text, glyph samples
package ui
