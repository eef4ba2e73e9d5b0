// Package tui provides terminal output components for the todo CLI.
//
// All colors use AdaptiveColor for light/dark terminal support, and
// CheckNoColor() disables styling when the NO_COLOR environment
// variable is set or the terminal is dumb.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

//nolint:gochecknoglobals // Intentional package-level constants for styling API
var (
	// ColorPrimary is blue, used for ids, links and informational text.
	ColorPrimary = lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#00D7FF"}

	// ColorSuccess is green, used for success states and completed tasks.
	ColorSuccess = lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"}

	// ColorWarning is yellow, used for due-soon dates.
	ColorWarning = lipgloss.AdaptiveColor{Light: "#AF8700", Dark: "#FFD700"}

	// ColorError is red, used for errors and overdue tasks.
	ColorError = lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"}

	// ColorMuted is gray, used for dim/secondary text.
	ColorMuted = lipgloss.AdaptiveColor{Light: "#585858", Dark: "#6C6C6C"}

	// ColorTag is bright cyan, used for tag labels.
	ColorTag = lipgloss.AdaptiveColor{Light: "#00AFAF", Dark: "#5FFFFF"}
)

// OutputStyles holds common output styles.
type OutputStyles struct {
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
}

// NewOutputStyles creates common output styles using AdaptiveColor for
// light/dark terminal support.
func NewOutputStyles() *OutputStyles {
	return &OutputStyles{
		Success: lipgloss.NewStyle().
			Foreground(ColorSuccess).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),
		Warning: lipgloss.NewStyle().
			Foreground(ColorWarning),
		Info: lipgloss.NewStyle().
			Foreground(ColorPrimary),
		Dim: lipgloss.NewStyle().
			Foreground(ColorMuted),
	}
}

// PriorityStyle returns the style for a priority badge.
// Priority 1 is the highest urgency and gets the hottest color.
func PriorityStyle(priority int) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch priority {
	case 1:
		return style.Foreground(ColorError)
	case 2:
		return style.Foreground(ColorWarning)
	case 3:
		return style.Foreground(ColorPrimary)
	case 4:
		return style.Foreground(ColorSuccess)
	default:
		return style.Foreground(ColorMuted)
	}
}

// CheckNoColor respects the NO_COLOR environment variable.
// Call this at the start of commands that output styled text.
func CheckNoColor() {
	if !HasColorSupport() {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

// HasColorSupport reports whether styled output should be emitted.
// Colors are disabled when NO_COLOR is set or TERM is dumb.
func HasColorSupport() bool {
	return os.Getenv("NO_COLOR") == "" && os.Getenv("TERM") != "dumb"
}
