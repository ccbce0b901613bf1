package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette — named constants for the ANSI 256 colors used in the CLI.
// These are the single source of truth; never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: mod ids, namespaces, file paths.
	ColorCyan = lipgloss.Color("14")

	// ColorGreen is used for the "completed" step status.
	ColorGreen = lipgloss.Color("82")

	// ColorYellow is used for the "skipped" and "already-applied" step statuses.
	ColorYellow = lipgloss.Color("220")

	// ColorBoldRed is used for the "failed" step status (matches ERROR level).
	ColorBoldRed = lipgloss.Color("204")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")
)

// Semantic styles — map domain concepts to visual presentation.
var (
	// StyleNoun styles identifiable nouns (mod ids, namespaces, paths).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (descriptions, separators).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles completion and summary lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// Scaffold step status constants.
const (
	StatusCompleted      = "completed"
	StatusSkipped        = "skipped"
	StatusAlreadyApplied = "already applied"
	StatusFailed         = "failed"
)

// StatusStyle returns the lipgloss style for a scaffold step status string.
// Unknown statuses return an unstyled default.
func StatusStyle(status string) lipgloss.Style {
	switch status {
	case StatusCompleted:
		return lipgloss.NewStyle().Foreground(ColorGreen)
	case StatusSkipped, StatusAlreadyApplied:
		return lipgloss.NewStyle().Foreground(ColorYellow)
	case StatusFailed:
		return lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed)
	default:
		return lipgloss.NewStyle()
	}
}

// minStepColumnWidth is the minimum width for the step name column before the
// status suffix, so status words align consistently.
const minStepColumnWidth = 32

// FormatStepLine renders a scaffold step with a right-aligned, color-coded
// status suffix.
//
// Format: s:<step>  <status>
func FormatStepLine(step, status string) string {
	padding := minStepColumnWidth - len(step)
	if padding < 2 {
		padding = 2
	}

	prefix := StyleDim.Render("s:")
	styledStep := StyleNoun.Render(step)
	styledStatus := StatusStyle(status).Render(status)

	return prefix + styledStep + strings.Repeat(" ", padding) + styledStatus
}

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}
