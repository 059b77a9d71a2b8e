package editor

// maxTop is the largest scroll offset that keeps the viewport full.
func (b *TextBuffer) maxTop() int {
	return max(0, len(b.lines)-b.view.Height())
}

func (b *TextBuffer) scrollUp(n int) bool {
	if n <= 0 || b.top+n > len(b.lines)-b.view.Height() {
		return false
	}
	b.top += n
	b.SetCursorY(b.curY + n)
	return true
}

func (b *TextBuffer) scrollDown(n int) bool {
	if n <= 0 || b.top < n {
		return false
	}
	b.top -= n
	if b.curY >= n {
		b.SetCursorY(b.curY - n)
	}
	return true
}

// ScrollUp moves the content up by n lines, the cursor following the text.
// It is a no-op unless ScrollTop()+n <= LineCount()-height.
func (b *TextBuffer) ScrollUp(n int) bool {
	if !b.scrollUp(n) {
		return false
	}
	b.UpdateWindowCursor()
	b.Redraw()
	return true
}

// ScrollDown moves the content down by n lines. It is a no-op unless
// ScrollTop() >= n.
func (b *TextBuffer) ScrollDown(n int) bool {
	if !b.scrollDown(n) {
		return false
	}
	b.UpdateWindowCursor()
	b.Redraw()
	return true
}

// present repaints the viewport if it scrolled since top was prevTop, and
// otherwise only moves the cursor.
func (b *TextBuffer) present(prevTop int) {
	b.UpdateWindowCursor()
	if b.top != prevTop {
		b.Redraw()
		return
	}
	b.RedrawCursor()
}

func (b *TextBuffer) CursorUp() {
	prev := b.top
	if b.curY > b.top {
		b.SetCursorY(b.curY - 1)
	} else {
		b.scrollDown(1)
	}
	b.present(prev)
}

func (b *TextBuffer) CursorDown() {
	prev := b.top
	if b.curY >= b.top+b.view.Height()-1 {
		b.scrollUp(1)
	} else {
		b.SetCursorY(b.curY + 1)
	}
	b.present(prev)
}

// CursorLeft moves one character left, wrapping to the end of the previous
// line.
func (b *TextBuffer) CursorLeft() {
	prev := b.top
	switch {
	case b.curX > 0:
		b.SetCursorX(b.curX - 1)
	case b.curY > 0:
		if b.curY == b.top {
			b.scrollDown(1)
		} else {
			b.SetCursorY(b.curY - 1)
		}
		b.SetCursorX(b.CurrentLineLen())
	}
	b.present(prev)
}

// CursorRight moves one character right, wrapping to the start of the next
// line.
func (b *TextBuffer) CursorRight() {
	prev := b.top
	switch {
	case b.curX < b.CurrentLineLen():
		b.SetCursorX(b.curX + 1)
	case b.curY < len(b.lines)-1:
		if b.curY >= b.top+b.view.Height()-1 {
			b.scrollUp(1)
		} else {
			b.SetCursorY(b.curY + 1)
		}
		b.SetCursorX(0)
	}
	b.present(prev)
}

func (b *TextBuffer) CursorHome() {
	b.SetCursorX(0)
	b.present(b.top)
}

func (b *TextBuffer) CursorEnd() {
	b.SetCursorX(b.CurrentLineLen())
	b.present(b.top)
}

// PageDown scrolls up to n lines towards the end of the buffer.
func (b *TextBuffer) PageDown(n int) {
	prev := b.top
	for i := 0; i < n && b.scrollUp(1); i++ {
	}
	b.present(prev)
}

// PageUp scrolls up to n lines towards the start of the buffer.
func (b *TextBuffer) PageUp(n int) {
	prev := b.top
	for i := 0; i < n && b.scrollDown(1); i++ {
	}
	b.present(prev)
}

// keepCursorVisible adjusts the scroll offset after the line count changed.
func (b *TextBuffer) keepCursorVisible() {
	h := b.view.Height()
	if b.top > b.maxTop() {
		b.top = b.maxTop()
	}
	if b.curY < b.top {
		b.top = b.curY
	}
	if b.curY >= b.top+h {
		b.top = b.curY - h + 1
	}
}
