package styles

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Themes lists the accepted ui.theme values.
var Themes = []string{"dark", "light", "mono"}

var (
	// StatusLine is the reverse-video bar under the edit area
	StatusLine = lipgloss.NewStyle().Reverse(true)

	// PromptCaption is the question shown on the prompt line
	PromptCaption = lipgloss.NewStyle().Bold(true)

	// DebugPanel is the coordinate overlay enabled by --debug
	DebugPanel = lipgloss.NewStyle().Foreground(ColorMuted)

	// Cursor marks the cell under the cursor
	Cursor = lipgloss.NewStyle().Reverse(true)
)

// ApplyTheme switches the package styles to the named theme.
func ApplyTheme(name string) error {
	switch name {
	case "dark":
		StatusLine = lipgloss.NewStyle().
			Foreground(ColorBarFg).
			Background(ColorBarBg).
			Bold(true)
		PromptCaption = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)
		DebugPanel = lipgloss.NewStyle().Foreground(ColorMuted)
	case "light":
		StatusLine = lipgloss.NewStyle().
			Foreground(ColorBarLightFg).
			Background(ColorBarLightBg)
		PromptCaption = lipgloss.NewStyle().Bold(true)
		DebugPanel = lipgloss.NewStyle().Foreground(ColorMuted)
	case "mono":
		StatusLine = lipgloss.NewStyle().Reverse(true)
		PromptCaption = lipgloss.NewStyle().Bold(true)
		DebugPanel = lipgloss.NewStyle()
	default:
		return fmt.Errorf("unknown theme %q, expected one of %v", name, Themes)
	}
	return nil
}
