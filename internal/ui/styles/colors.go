// Package styles provides centralized Lipgloss styling for the scribe UI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette for the scribe UI
var (
	// Bars
	ColorBarFg      = lipgloss.Color("15")  // White text on bars
	ColorBarBg      = lipgloss.Color("57")  // Purple status bar
	ColorBarLightFg = lipgloss.Color("0")   // Black text on light bars
	ColorBarLightBg = lipgloss.Color("252") // Light gray status bar

	// UI element colors
	ColorAccent = lipgloss.Color("6") // Cyan - captions, highlights
	ColorMuted  = lipgloss.Color("8") // Dark gray - secondary text
	ColorError  = lipgloss.Color("9") // Red - error messages
)
