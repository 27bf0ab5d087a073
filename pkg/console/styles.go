// Package console provides consistent formatting and interactive prompts for
// all user-facing CLI output.
//
// Styled messages (info, success, warning, error) are written by callers to
// stderr so that stdout stays reserved for machine-readable output. Prompts
// are built on huh and refuse to run without a terminal attached.
package console

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "2", Dark: "10"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "1", Dark: "9"})
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "3", Dark: "11"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "4", Dark: "12"})
	verboseStyle = lipgloss.NewStyle().Faint(true)
)

// IsAccessibleMode reports whether accessible output is requested. In
// accessible mode decorative symbols are dropped so screen readers do not
// read them aloud.
func IsAccessibleMode() bool {
	return os.Getenv("ACCESSIBLE") != ""
}

func prefix(symbol string) string {
	if IsAccessibleMode() {
		return ""
	}
	return symbol + " "
}

// FormatSuccessMessage formats a message indicating a completed operation.
func FormatSuccessMessage(msg string) string {
	return successStyle.Render(prefix("✓") + msg)
}

// FormatErrorMessage formats an error message.
func FormatErrorMessage(msg string) string {
	return errorStyle.Render(prefix("✗") + msg)
}

// FormatError formats an error value for terminal display.
func FormatError(err error) string {
	return FormatErrorMessage(err.Error())
}

// FormatErrorWithSuggestions formats an error followed by an indented list of
// suggested next steps.
func FormatErrorWithSuggestions(msg string, suggestions []string) string {
	var b strings.Builder
	b.WriteString(FormatErrorMessage(msg))
	for _, s := range suggestions {
		b.WriteString("\n")
		b.WriteString(verboseStyle.Render("  • " + s))
	}
	return b.String()
}

// FormatWarningMessage formats a warning message.
func FormatWarningMessage(msg string) string {
	return warningStyle.Render(prefix("⚠") + msg)
}

// FormatInfoMessage formats an informational message.
func FormatInfoMessage(msg string) string {
	return infoStyle.Render(prefix("ℹ") + msg)
}

// FormatProgressMessage formats a message about an operation in flight.
func FormatProgressMessage(msg string) string {
	return infoStyle.Render(prefix("→") + msg)
}

// FormatVerboseMessage formats low-priority diagnostic output.
func FormatVerboseMessage(msg string) string {
	return verboseStyle.Render(msg)
}

// LogVerbose writes a verbose message to stderr when verbose mode is on.
func LogVerbose(verbose bool, msg string) {
	if verbose {
		fmt.Fprintln(os.Stderr, FormatVerboseMessage(msg))
	}
}
