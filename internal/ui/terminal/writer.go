package terminal

import (
	"bufio"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

var sgr = map[Style]string{
	StyleNormal: ansi.ResetStyle,
	StyleStatus: ansi.Style{}.Reverse().String(),
	StylePrompt: ansi.Style{}.Bold().String(),
	StyleDebug:  ansi.ResetStyle,
}

// Writer is a Painter that emits ANSI escape sequences to an io.Writer.
// Output is buffered until Flush.
type Writer struct {
	out   *bufio.Writer
	style Style
	err   error
}

// NewWriter creates a Writer painting onto w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{out: bufio.NewWriter(w)}
}

func (w *Writer) emit(s string) {
	if w.err != nil {
		return
	}
	_, w.err = w.out.WriteString(s)
}

func (w *Writer) Clear() {
	w.emit(ansi.EraseEntireScreen + ansi.CursorHomePosition)
}

func (w *Writer) MoveTo(row, col int) {
	w.emit(ansi.CursorPosition(col, row))
}

func (w *Writer) Write(s string) {
	w.emit(strings.Map(Printable, s))
}

func (w *Writer) SetStyle(style Style) {
	if style == w.style {
		return
	}
	w.style = style
	if style != StyleNormal {
		w.emit(ansi.ResetStyle)
	}
	w.emit(sgr[style])
}

func (w *Writer) ShowCursor() { w.emit(ansi.ShowCursor) }
func (w *Writer) HideCursor() { w.emit(ansi.HideCursor) }

// Flush writes buffered output and returns the first error seen since the
// previous Flush.
func (w *Writer) Flush() error {
	if w.err == nil {
		w.err = w.out.Flush()
	}
	err := w.err
	w.err = nil
	return err
}
