// Package terminal provides the screen-cell painting primitives used by the
// editor widgets: an in-memory cell grid rendered by the bubbletea program and
// an ANSI writer for plain output streams.
package terminal

// Style selects how painted text is rendered.
type Style int

const (
	StyleNormal Style = iota
	StyleStatus
	StylePrompt
	StyleDebug
)

// String returns the style name.
func (s Style) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleStatus:
		return "status"
	case StylePrompt:
		return "prompt"
	case StyleDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// Painter is the set of output primitives widgets paint through.
// Rows and columns are 1-indexed screen coordinates.
type Painter interface {
	// Clear erases the whole screen and homes the cursor.
	Clear()
	// MoveTo places the cursor at (row, col).
	MoveTo(row, col int)
	// Write paints s at the cursor and advances it by the display width of s.
	Write(s string)
	// SetStyle changes the style used by subsequent writes.
	SetStyle(style Style)
	ShowCursor()
	HideCursor()
	// Flush pushes pending output to the terminal.
	Flush() error
}

// Discard is a Painter that drops everything.
var Discard Painter = discard{}

type discard struct{}

func (discard) Clear()          {}
func (discard) MoveTo(int, int) {}
func (discard) Write(string)    {}
func (discard) SetStyle(Style)  {}
func (discard) ShowCursor()     {}
func (discard) HideCursor()     {}
func (discard) Flush() error    { return nil }
