package editor

import "github.com/willibrandon/scribe/internal/ui/terminal"

// Redraw repaints every row of the viewport and places the cursor.
func (b *TextBuffer) Redraw() {
	w, h := b.view.Width(), b.view.Height()
	b.painter.SetStyle(terminal.StyleNormal)
	for y := 0; y < h; y++ {
		line := ""
		if i := b.top + y; i < len(b.lines) {
			line = b.lines[i]
		}
		b.painter.MoveTo(b.view.ToScreen(0, y))
		b.painter.Write(terminal.Fit(line, w))
	}
	b.RedrawCursor()
}

// RedrawCursor moves the terminal cursor to the buffer cursor.
func (b *TextBuffer) RedrawCursor() {
	b.painter.MoveTo(b.view.ScreenCursor())
}
