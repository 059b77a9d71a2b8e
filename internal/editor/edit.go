package editor

import "slices"

// InsertChar inserts ch before the cursor and advances the cursor. A line
// break inserts a new line instead.
func (b *TextBuffer) InsertChar(ch rune) {
	if ch == '\n' || ch == '\r' {
		b.InsertNewline()
		return
	}
	b.SetCursorX(b.curX)
	line := []rune(b.lines[b.curY])
	line = slices.Insert(line, b.curX, ch)
	b.lines[b.curY] = string(line)
	b.curX++
	b.UpdateWindowCursor()
	b.Redraw()
}

// ReplaceChar overwrites the character under the cursor without moving it.
// It reports false on an empty line or at the end of a line.
func (b *TextBuffer) ReplaceChar(ch rune) bool {
	if ch == '\n' || ch == '\r' {
		return false
	}
	b.SetCursorX(b.curX)
	line := []rune(b.lines[b.curY])
	if b.curX >= len(line) {
		return false
	}
	line[b.curX] = ch
	b.lines[b.curY] = string(line)
	b.UpdateWindowCursor()
	b.Redraw()
	return true
}

// InsertNewline splits the current line at the cursor and moves to the start
// of the new line.
func (b *TextBuffer) InsertNewline() {
	b.SetCursorX(b.curX)
	line := []rune(b.lines[b.curY])
	head, tail := string(line[:b.curX]), string(line[b.curX:])

	b.lines[b.curY] = head
	b.lines = slices.Insert(b.lines, b.curY+1, tail)
	b.curY++
	b.curX = 0
	b.keepCursorVisible()
	b.UpdateWindowCursor()
	b.Redraw()
}

// DeleteChar deletes forward: the character under the cursor, an empty
// current line, or the line break joining the next line. It reports whether
// anything changed.
func (b *TextBuffer) DeleteChar() bool {
	b.SetCursorX(b.curX)
	line := []rune(b.lines[b.curY])

	switch {
	case b.curX < len(line):
		b.lines[b.curY] = string(slices.Delete(line, b.curX, b.curX+1))
	case len(line) == 0:
		if len(b.lines) == 1 {
			return false
		}
		b.lines = slices.Delete(b.lines, b.curY, b.curY+1)
		if b.curY >= len(b.lines) {
			b.curY = len(b.lines) - 1
		}
		b.curX = 0
		b.keepCursorVisible()
	case b.curY+1 < len(b.lines):
		b.lines[b.curY] += b.lines[b.curY+1]
		b.lines = slices.Delete(b.lines, b.curY+1, b.curY+2)
		b.keepCursorVisible()
	default:
		return false
	}

	b.UpdateWindowCursor()
	b.Redraw()
	return true
}

// DeleteBackward deletes the character before the cursor, joining with the
// previous line at the start of a line.
func (b *TextBuffer) DeleteBackward() bool {
	if b.curX == 0 && b.curY == 0 {
		return false
	}
	if b.curX > 0 {
		b.curX--
		return b.DeleteChar()
	}
	if b.curY == b.top {
		b.scrollDown(1)
	} else {
		b.SetCursorY(b.curY - 1)
	}
	b.SetCursorX(b.CurrentLineLen())
	return b.DeleteChar()
}

// NewFile resets the buffer to a single empty, unnamed line.
func (b *TextBuffer) NewFile() {
	b.lines = []string{""}
	b.path = ""
	b.curX, b.curY, b.top = 0, 0, 0
	b.UpdateWindowCursor()
	b.Redraw()
}
