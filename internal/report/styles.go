package report

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Summary styles. All colors use AdaptiveColor for light/dark terminals.
//
//nolint:gochecknoglobals // Intentional package-level styling constants
var (
	// styleCategory renders category headings.
	styleCategory = lipgloss.NewStyle().Bold(true)

	// styleUp renders UP lines in green.
	styleUp = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#008700", Dark: "#00FF87"})

	// styleDown renders DOWN lines in red.
	styleDown = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#AF0000", Dark: "#FF5F5F"})

	// styleError renders the indented error detail dimmed.
	styleError = lipgloss.NewStyle().Faint(true)
)

// CheckNoColor disables colored summary output when the NO_COLOR environment
// variable is set or the terminal is dumb. Call once before printing.
func CheckNoColor() {
	if os.Getenv("NO_COLOR") != "" || strings.EqualFold(os.Getenv("TERM"), "dumb") {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}
