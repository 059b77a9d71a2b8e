package components

import (
	"unicode/utf8"

	"github.com/willibrandon/scribe/internal/ui/terminal"
	"github.com/willibrandon/scribe/internal/ui/window"
)

// PromptLine asks a question and collects a one-line answer.
type PromptLine struct {
	view    *window.Viewport
	caption string
	input   []rune
}

func NewPromptLine(view *window.Viewport) *PromptLine {
	return &PromptLine{view: view}
}

// SetCaption opens the prompt with a new question and an empty answer.
func (p *PromptLine) SetCaption(caption string) {
	p.caption = caption
	p.input = p.input[:0]
}

func (p *PromptLine) Caption() string { return p.caption }

// Active reports whether a question is shown.
func (p *PromptLine) Active() bool { return p.caption != "" }

// Push appends r to the answer.
func (p *PromptLine) Push(r rune) {
	if r == utf8.RuneError || r == '\n' || r == '\r' {
		return
	}
	p.input = append(p.input, r)
}

// Backspace removes the last character of the answer.
func (p *PromptLine) Backspace() bool {
	if len(p.input) == 0 {
		return false
	}
	p.input = p.input[:len(p.input)-1]
	return true
}

// Clear closes the prompt.
func (p *PromptLine) Clear() {
	p.caption = ""
	p.input = p.input[:0]
}

// Result returns the answer typed so far.
func (p *PromptLine) Result() string {
	return string(p.input)
}

// Redraw paints the caption and the answer and leaves the cursor after the
// answer.
func (p *PromptLine) Redraw(pt terminal.Painter) {
	w := p.view.Width()
	caption := terminal.Truncate(p.caption, w)

	pt.MoveTo(p.view.ToScreen(0, 0))
	pt.SetStyle(terminal.StylePrompt)
	pt.Write(caption)
	pt.SetStyle(terminal.StyleNormal)
	pt.Write(terminal.Fit(string(p.input), w-terminal.StringWidth(caption)))
	p.FocusCursor(pt)
}

// FocusCursor moves the terminal cursor to the end of the answer.
func (p *PromptLine) FocusCursor(pt terminal.Painter) {
	x := terminal.StringWidth(p.caption) + terminal.StringWidth(string(p.input))
	p.view.SetCursorX(min(x, p.view.Width()-1))
	pt.MoveTo(p.view.ScreenCursor())
}
