// Package editor implements the text buffer: line storage, the buffer cursor,
// the scroll offset and the translation of buffer coordinates into the
// coordinates of the viewport the buffer is drawn in.
//
// Three units are kept apart. Cursor positions and line lengths count
// characters (runes). Screen columns are sums of display widths, which are 0,
// 1 or 2 per character. File sizes count bytes. The width and size caches hold
// the latter two for the current line only.
package editor

import (
	"unicode/utf8"

	"github.com/willibrandon/scribe/internal/ui/terminal"
	"github.com/willibrandon/scribe/internal/ui/window"
)

// TextBuffer holds the lines of one file and the cursor within them. It paints
// its own viewport through a terminal.Painter after every operation.
type TextBuffer struct {
	lines []string
	curX  int // character index into lines[curY]
	curY  int
	top   int // first line shown in the viewport
	path  string

	view    *window.Viewport
	painter terminal.Painter

	// Per-character display widths and UTF-8 sizes of lines[curY], followed
	// by a zero sentinel for the line terminator.
	widths []int
	sizes  []int
}

// New creates a buffer holding one empty line, drawn in view. A nil painter
// discards output.
func New(view *window.Viewport, painter terminal.Painter) *TextBuffer {
	if painter == nil {
		painter = terminal.Discard
	}
	b := &TextBuffer{
		lines:   []string{""},
		view:    view,
		painter: painter,
	}
	b.calcLine()
	return b
}

// Lines returns a copy of the buffer contents.
func (b *TextBuffer) Lines() []string {
	return append([]string(nil), b.lines...)
}

// Line returns line i, or "" when i is out of range.
func (b *TextBuffer) Line(i int) string {
	if i < 0 || i >= len(b.lines) {
		return ""
	}
	return b.lines[i]
}

func (b *TextBuffer) LineCount() int { return len(b.lines) }
func (b *TextBuffer) CursorX() int   { return b.curX }
func (b *TextBuffer) CursorY() int   { return b.curY }

// ScrollTop returns the index of the first visible line.
func (b *TextBuffer) ScrollTop() int { return b.top }

// FilePath returns the associated file, or "" for an unnamed buffer.
func (b *TextBuffer) FilePath() string { return b.path }

// SetFilePath associates the buffer with path without touching the disk.
func (b *TextBuffer) SetFilePath(path string) { b.path = path }

func (b *TextBuffer) Viewport() *window.Viewport { return b.view }

// Widths returns a copy of the width cache of the current line.
func (b *TextBuffer) Widths() []int { return append([]int(nil), b.widths...) }

// Sizes returns a copy of the byte-size cache of the current line.
func (b *TextBuffer) Sizes() []int { return append([]int(nil), b.sizes...) }

// CurrentLineLen returns the number of characters in the current line.
func (b *TextBuffer) CurrentLineLen() int {
	return utf8.RuneCountInString(b.lines[b.curY])
}

// Size returns the number of bytes a save would write.
func (b *TextBuffer) Size() int {
	n := 0
	for _, l := range b.lines {
		n += len(l) + 1
	}
	return n
}

func (b *TextBuffer) calcLine() {
	b.widths = b.widths[:0]
	b.sizes = b.sizes[:0]
	for _, r := range b.lines[b.curY] {
		b.widths = append(b.widths, terminal.RuneWidth(r))
		b.sizes = append(b.sizes, utf8.RuneLen(r))
	}
	b.widths = append(b.widths, 0)
	b.sizes = append(b.sizes, 0)
}

// SetCursorX moves the cursor to character x of the current line, clamped
// to the line length.
func (b *TextBuffer) SetCursorX(x int) {
	n := b.CurrentLineLen()
	switch {
	case x < 0:
		x = 0
	case x > n:
		x = n
	}
	b.curX = x
}

// SetCursorY moves the cursor to line y. Invalid indexes are ignored. Callers
// re-apply SetCursorX afterwards since the new line may be shorter.
func (b *TextBuffer) SetCursorY(y int) {
	if y >= 0 && y < len(b.lines) {
		b.curY = y
	}
	b.calcLine()
}

// UpdateWindowCursor recomputes the caches and places the viewport cursor on
// the buffer cursor.
func (b *TextBuffer) UpdateWindowCursor() {
	b.calcLine()
	b.SetCursorX(b.curX)
	x, y := b.windowPos()
	b.view.SetCursorX(x)
	if y >= 0 {
		b.view.SetCursorY(y)
	}
}

// windowPos converts the buffer cursor into window coordinates.
func (b *TextBuffer) windowPos() (x, y int) {
	return window.Column(b.widths, b.curX), b.curY - b.top
}

// Params is a snapshot of the coordinates shown by the debug panel.
type Params struct {
	WindowX, WindowY int
	CursorX, CursorY int
	ScrollTop        int
	Lines            int
	Bytes            int
}

func (b *TextBuffer) Params() Params {
	return Params{
		WindowX:   b.view.CursorX(),
		WindowY:   b.view.CursorY(),
		CursorX:   b.curX,
		CursorY:   b.curY,
		ScrollTop: b.top,
		Lines:     len(b.lines),
		Bytes:     b.Size(),
	}
}
