// Package styles centralizes the lipgloss styles shared by the CLI and
// the REPL.
package styles

import "github.com/charmbracelet/lipgloss"

// Colors.
var (
	ColorGray  = lipgloss.Color("240")
	ColorRed   = lipgloss.Color("196")
	ColorGreen = lipgloss.Color("42")
	ColorBlue  = lipgloss.Color("39")
)

// Shared styles.
var (
	BoldStyle   = lipgloss.NewStyle().Bold(true)
	DimStyle    = lipgloss.NewStyle().Foreground(ColorGray)
	AlertStyle  = lipgloss.NewStyle().Foreground(ColorRed).Bold(true)
	ErrorStyle  = lipgloss.NewStyle().Foreground(ColorRed)
	ResultStyle = lipgloss.NewStyle().Foreground(ColorGreen)
	PromptStyle = lipgloss.NewStyle().Foreground(ColorBlue)
)

// Icons.
const (
	IconAlert = "▲"
)

// RenderDim renders s in the dim style.
func RenderDim(s string) string {
	return DimStyle.Render(s)
}

// RenderAlert renders s in the alert style.
func RenderAlert(s string) string {
	return AlertStyle.Render(s)
}

// RenderError renders s in the error style.
func RenderError(s string) string {
	return ErrorStyle.Render(s)
}

// RenderResult renders s in the result style.
func RenderResult(s string) string {
	return ResultStyle.Render(s)
}
