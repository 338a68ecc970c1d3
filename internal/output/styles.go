package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. These are the single source of truth; never use inline
// lipgloss.Color literals elsewhere.
var (
	// ColorCyan is used for identifiable nouns: project names, paths, image tags.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark.
	ColorGreenCheck = lipgloss.Color("10")

	// ColorYellow is used for warnings such as the overwrite prompt.
	ColorYellow = lipgloss.Color("220")

	// ColorDimGray is used for descriptions and structural chrome.
	ColorDimGray = lipgloss.Color("240")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleBold styles headings and the root of file trees.
	StyleBold = lipgloss.NewStyle().Bold(true)

	// StyleDim styles descriptions in file trees.
	StyleDim = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleWarning styles confirmation prompts.
	StyleWarning = lipgloss.NewStyle().Foreground(ColorYellow)
)

// FormatCheckmark renders a green checkmark with a message for stdout output.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatNoun renders s in the noun style.
func FormatNoun(s string) string {
	return StyleNoun.Render(s)
}
