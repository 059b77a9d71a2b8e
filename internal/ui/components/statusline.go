// Package components provides the single-line widgets drawn around the edit
// area.
package components

import (
	"github.com/willibrandon/scribe/internal/ui/terminal"
	"github.com/willibrandon/scribe/internal/ui/window"
)

// NoName is displayed for a buffer without a file.
const NoName = "[No Name]"

// StatusLine shows the file name, the modified marker and the insert mode.
type StatusLine struct {
	view *window.Viewport

	fileName   string
	insertMode bool
	changed    bool
	message    string
}

// NewStatusLine creates a status line in insert mode.
func NewStatusLine(view *window.Viewport) *StatusLine {
	return &StatusLine{view: view, insertMode: true}
}

func (s *StatusLine) SetFileName(name string) { s.fileName = name }
func (s *StatusLine) FileName() string        { return s.fileName }

func (s *StatusLine) SetInsertMode(on bool) { s.insertMode = on }
func (s *StatusLine) InsertMode() bool      { return s.insertMode }

// ToggleInsertMode switches between insert and overwrite.
func (s *StatusLine) ToggleInsertMode() {
	s.insertMode = !s.insertMode
}

// SetChanged sets the unsaved-changes marker.
func (s *StatusLine) SetChanged(changed bool) { s.changed = changed }
func (s *StatusLine) Changed() bool           { return s.changed }

// SetMessage shows a transient message after the file name. An empty
// message clears it.
func (s *StatusLine) SetMessage(msg string) { s.message = msg }
func (s *StatusLine) Message() string       { return s.message }

// Text returns the content of the line, exactly as wide as the viewport.
// The marker sits five cells from the right edge and the mode in the last
// three.
func (s *StatusLine) Text() string {
	w := s.view.Width()
	mode := "Ovr"
	if s.insertMode {
		mode = "Ins"
	}
	if w < 6 {
		return terminal.Fit(mode, w)
	}

	left := s.fileName
	if left == "" {
		left = NoName
	}
	if s.message != "" {
		left += "  " + s.message
	}
	mark := " "
	if s.changed {
		mark = "*"
	}
	return terminal.Fit(left, w-5) + mark + " " + mode
}

// Redraw paints the line. The terminal cursor is left at its end.
func (s *StatusLine) Redraw(p terminal.Painter) {
	p.SetStyle(terminal.StyleStatus)
	p.MoveTo(s.view.ToScreen(0, 0))
	p.Write(s.Text())
	p.SetStyle(terminal.StyleNormal)
}
