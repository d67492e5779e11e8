package cli

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// styleTitle for main headings.
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleDim for secondary/muted text.
	styleDim = lipgloss.NewStyle().Foreground(colorDim)

	// styleSelected for the highlighted list row.
	styleSelected = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// styleNormal for plain list rows.
	styleNormal = lipgloss.NewStyle().Foreground(colorWhite)

	// styleSuccess for confirmation messages.
	styleSuccess = lipgloss.NewStyle().Foreground(colorGreen)

	// styleWarning for non-fatal problems.
	styleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	// styleError for failures.
	styleError = lipgloss.NewStyle().Foreground(colorRed)
)
