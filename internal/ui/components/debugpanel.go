package components

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/willibrandon/scribe/internal/editor"
	"github.com/willibrandon/scribe/internal/ui/terminal"
)

const (
	debugPanelCol   = 60
	debugPanelWidth = 30
)

// DebugStats is the data shown by the debug panel.
type DebugStats struct {
	Screen terminal.Screen
	Buffer editor.Params
	Warn   int
	Err    int
}

// DebugPanel overlays raw buffer and window coordinates on the top-right of
// the edit area.
type DebugPanel struct {
	col     int
	width   int
	rows    int
	visible bool
}

// NewDebugPanel places the panel at column 60, or flush right on screens too
// narrow for that. It never paints below the edit area, which ends two rows
// above the bottom of the screen.
func NewDebugPanel(screen terminal.Screen) *DebugPanel {
	width := min(debugPanelWidth, screen.Width)
	col := debugPanelCol
	if col+width-1 > screen.Width {
		col = screen.Width - width + 1
	}
	return &DebugPanel{col: col, width: width, rows: max(0, screen.Height-2)}
}

func (d *DebugPanel) SetVisible(visible bool) { d.visible = visible }
func (d *DebugPanel) Visible() bool           { return d.visible }

// Col returns the 1-indexed screen column of the panel.
func (d *DebugPanel) Col() int { return d.col }

// Lines formats the panel rows.
func (d *DebugPanel) Lines(s DebugStats) []string {
	b := s.Buffer
	return []string{
		fmt.Sprintf("screen(%d,%d)", s.Screen.Width, s.Screen.Height),
		fmt.Sprintf("win cur(%d,%d)", b.WindowX, b.WindowY),
		fmt.Sprintf("buf cur(%d,%d) begin=%d", b.CursorX, b.CursorY, b.ScrollTop),
		fmt.Sprintf("lines=%d %s w=%d e=%d", b.Lines, humanize.Bytes(uint64(b.Bytes)), s.Warn, s.Err),
	}
}

// Redraw paints the panel when visible.
func (d *DebugPanel) Redraw(p terminal.Painter, s DebugStats) {
	if !d.visible {
		return
	}
	p.SetStyle(terminal.StyleDebug)
	for i, line := range d.Lines(s) {
		if i >= d.rows {
			break
		}
		p.MoveTo(i+1, d.col)
		p.Write(terminal.Fit(line, d.width))
	}
	p.SetStyle(terminal.StyleNormal)
}
