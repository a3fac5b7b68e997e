package browser

import "github.com/charmbracelet/lipgloss"

// Palette shared by the rendered views and the CLI output.
var (
	ColorCyan  = lipgloss.Color("36")  // Teal - primary actions
	ColorGreen = lipgloss.Color("35")  // Green - success
	ColorRed   = lipgloss.Color("167") // Soft red - errors
	ColorBlue  = lipgloss.Color("75")  // Light blue - links
	ColorWhite = lipgloss.Color("255") // Bright white - values
	ColorGray  = lipgloss.Color("245") // Gray - secondary text
	ColorDim   = lipgloss.Color("240") // Dim gray - muted text
)
