package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/matzehuels/releasedeck/pkg/browser"
	apperr "github.com/matzehuels/releasedeck/pkg/errors"
)

// =============================================================================
// Public Styles
// =============================================================================

// StyleDim for secondary/muted text.
var StyleDim = lipgloss.NewStyle().Foreground(browser.ColorDim)

// =============================================================================
// Internal Styles
// =============================================================================

var (
	styleIconSuccess = lipgloss.NewStyle().Foreground(browser.ColorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(browser.ColorRed)
	styleIconInfo    = lipgloss.NewStyle().Foreground(browser.ColorGray)
	styleIconSpinner = lipgloss.NewStyle().Foreground(browser.ColorCyan)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconInfo    = "›"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// PrintError prints err to w with the error icon. Coded errors lose
// their code prefix.
func PrintError(w io.Writer, err error) {
	fmt.Fprintln(w, styleIconError.Render(iconError)+" "+apperr.UserMessage(err))
}

// printInfo prints an info/status message.
func printInfo(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconInfo.Render(iconInfo) + " " + msg)
}

// printDetail prints a detail line (indented).
func printDetail(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println("  " + StyleDim.Render(msg))
}
