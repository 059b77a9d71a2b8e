package app

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"
	"github.com/willibrandon/scribe/internal/editor"
	"github.com/willibrandon/scribe/internal/logger"
	"github.com/willibrandon/scribe/internal/ui"
	"github.com/willibrandon/scribe/internal/ui/components"
	"github.com/willibrandon/scribe/internal/ui/terminal"
	"github.com/willibrandon/scribe/internal/ui/window"
)

// Mode is the input state of the controller.
type Mode int

const (
	ModeEditing Mode = iota
	ModePrompting
	ModeAwaitingAnswer
)

func (m Mode) String() string {
	switch m {
	case ModeEditing:
		return "editing"
	case ModePrompting:
		return "prompting"
	case ModeAwaitingAnswer:
		return "awaiting answer"
	default:
		return "unknown"
	}
}

// Purpose is what happens when the open prompt is answered.
type Purpose int

const (
	PurposeNone Purpose = iota
	PurposeSaveAs
	PurposeConfirmExit
)

const (
	captionSaveAs      = "Save as: "
	captionConfirmExit = "Buffer modified. Exit without saving? (y/n) "

	minScreenWidth  = 8
	minScreenHeight = 3
)

// Controller routes key events to the buffer, the status line and the prompt.
type Controller struct {
	screen      terminal.Screen
	painter     terminal.Painter
	keys        ui.KeyMap
	pageOverlap int

	buf    *editor.TextBuffer
	status *components.StatusLine
	prompt *components.PromptLine
	debug  *components.DebugPanel

	mode    Mode
	purpose Purpose
	msgSeq  int
}

// Option configures a Controller.
type Option func(*Controller)

// WithKeyMap replaces the default key bindings.
func WithKeyMap(km ui.KeyMap) Option {
	return func(c *Controller) { c.keys = km }
}

// WithPageOverlap sets how many lines stay visible when paging.
func WithPageOverlap(n int) Option {
	return func(c *Controller) { c.pageOverlap = n }
}

// WithInsertMode selects insert (true) or overwrite (false) at startup.
func WithInsertMode(on bool) Option {
	return func(c *Controller) { c.status.SetInsertMode(on) }
}

// WithDebug shows the debug panel.
func WithDebug(on bool) Option {
	return func(c *Controller) { c.debug.SetVisible(on) }
}

// NewController lays out the screen: the edit area on top, the status line
// below it and the prompt line on the last row. It paints the initial screen.
func NewController(screen terminal.Screen, painter terminal.Painter, opts ...Option) (*Controller, error) {
	if screen.Width < minScreenWidth || screen.Height < minScreenHeight {
		return nil, fmt.Errorf("screen %s too small, need at least %dx%d", screen, minScreenWidth, minScreenHeight)
	}
	if painter == nil {
		painter = terminal.Discard
	}

	w, h := screen.Width, screen.Height
	c := &Controller{
		screen:      screen,
		painter:     painter,
		keys:        ui.DefaultKeyMap(),
		pageOverlap: 1,
		buf:         editor.New(window.New(1, 1, w, h-2), painter),
		status:      components.NewStatusLine(window.New(h-1, 1, w, 1)),
		prompt:      components.NewPromptLine(window.New(h, 1, w, 1)),
		debug:       components.NewDebugPanel(screen),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.painter.Clear()
	c.buf.Redraw()
	c.Refresh()
	return c, nil
}

func (c *Controller) Buffer() *editor.TextBuffer         { return c.buf }
func (c *Controller) Status() *components.StatusLine     { return c.status }
func (c *Controller) Prompt() *components.PromptLine     { return c.prompt }
func (c *Controller) Screen() terminal.Screen            { return c.screen }
func (c *Controller) Mode() Mode                         { return c.mode }
func (c *Controller) Purpose() Purpose                   { return c.purpose }
func (c *Controller) Changed() bool                      { return c.status.Changed() }
func (c *Controller) DebugPanel() *components.DebugPanel { return c.debug }

// MessageSeq identifies the current status message. It changes every time a
// message is set.
func (c *Controller) MessageSeq() int { return c.msgSeq }

// ExpireMessage clears the status message if it is still message seq.
func (c *Controller) ExpireMessage(seq int) {
	if seq != c.msgSeq || c.status.Message() == "" {
		return
	}
	c.status.SetMessage("")
	c.Refresh()
}

func (c *Controller) setMessage(msg string) {
	c.status.SetMessage(msg)
	c.msgSeq++
}

// ShowHelp puts the main key bindings on the status line.
func (c *Controller) ShowHelp() {
	c.setMessage(c.keys.HelpLine())
	c.Refresh()
}

// Report shows a failed file operation on the status line.
func (c *Controller) Report(err error) {
	c.setMessage(FormatFileError(err))
}

func (c *Controller) setChanged(changed bool) {
	c.status.SetChanged(changed)
}

// Open loads path. A file that does not exist yet starts an empty buffer
// that will be saved under path; other failures start an unnamed buffer.
func (c *Controller) Open(path string) {
	err := c.buf.Load(path)
	switch {
	case err == nil:
		c.setMessage(fmt.Sprintf("%d lines, %s", c.buf.LineCount(), humanize.Bytes(uint64(c.buf.Size()))))
	case errors.Is(err, editor.ErrFileNotFound):
		c.buf.NewFile()
		c.buf.SetFilePath(path)
		c.setMessage("New file")
	default:
		c.buf.NewFile()
		c.setMessage(FormatFileError(err))
	}
	c.status.SetFileName(c.buf.FilePath())
	c.setChanged(false)
	c.Refresh()
}

// NewBuffer discards the buffer and starts an empty unnamed one.
func (c *Controller) NewBuffer() {
	c.buf.NewFile()
	c.status.SetFileName("")
	c.setChanged(false)
	c.Refresh()
}

// HandleKey processes one key event and reports whether the editor should
// exit.
func (c *Controller) HandleKey(msg tea.KeyMsg) (quit bool) {
	switch c.mode {
	case ModeEditing:
		quit = c.handleEditing(msg)
	case ModePrompting:
		c.handlePrompting(msg)
	case ModeAwaitingAnswer:
		quit = c.handleAnswer(msg)
	}
	if quit {
		logger.Debug("quit", "changed", c.Changed())
		return true
	}
	c.Refresh()
	return false
}

// Refresh repaints the status line and the debug panel, focuses the cursor
// and flushes the painter.
func (c *Controller) Refresh() {
	c.status.Redraw(c.painter)
	if c.debug.Visible() {
		c.debug.Redraw(c.painter, c.stats())
	}
	if c.mode == ModeEditing {
		c.buf.RedrawCursor()
	} else {
		c.prompt.FocusCursor(c.painter)
	}
	if err := c.painter.Flush(); err != nil {
		logger.Warn("flush failed", "error", err)
	}
}

func (c *Controller) stats() components.DebugStats {
	warn, errs := logger.Counts()
	return components.DebugStats{
		Screen: c.screen,
		Buffer: c.buf.Params(),
		Warn:   warn,
		Err:    errs,
	}
}

// runes returns the characters typed by msg, or nil for a non-character key.
func runes(msg tea.KeyMsg) []rune {
	switch msg.Type {
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return msg.Runes
	case tea.KeySpace:
		return []rune{' '}
	case tea.KeyTab:
		return []rune{'\t'}
	}
	return nil
}

func (c *Controller) handleEditing(msg tea.KeyMsg) bool {
	page := max(1, c.buf.Viewport().Height()-c.pageOverlap)

	switch {
	case key.Matches(msg, c.keys.Quit):
		if !c.Changed() {
			return true
		}
		c.ask(ModeAwaitingAnswer, PurposeConfirmExit, captionConfirmExit)
	case key.Matches(msg, c.keys.Save):
		c.save()
	case key.Matches(msg, c.keys.SaveAs):
		c.ask(ModePrompting, PurposeSaveAs, captionSaveAs)
	case key.Matches(msg, c.keys.Cancel):
		c.setMessage("")
	case key.Matches(msg, c.keys.ToggleInsert):
		c.status.ToggleInsertMode()
	case key.Matches(msg, c.keys.Up):
		c.buf.CursorUp()
	case key.Matches(msg, c.keys.Down):
		c.buf.CursorDown()
	case key.Matches(msg, c.keys.Left):
		c.buf.CursorLeft()
	case key.Matches(msg, c.keys.Right):
		c.buf.CursorRight()
	case key.Matches(msg, c.keys.PageUp):
		c.buf.PageUp(page)
	case key.Matches(msg, c.keys.PageDown):
		c.buf.PageDown(page)
	case key.Matches(msg, c.keys.Home):
		c.buf.CursorHome()
	case key.Matches(msg, c.keys.End):
		c.buf.CursorEnd()
	case key.Matches(msg, c.keys.Delete):
		if c.buf.DeleteChar() {
			c.setChanged(true)
		}
	case key.Matches(msg, c.keys.Backspace):
		if c.buf.DeleteBackward() {
			c.setChanged(true)
		}
	case key.Matches(msg, c.keys.Newline):
		c.buf.InsertNewline()
		c.setChanged(true)
	default:
		for _, r := range runes(msg) {
			c.typeRune(r)
		}
	}
	return false
}

// typeRune inserts r, or in overwrite mode replaces the character under the
// cursor and moves past it.
func (c *Controller) typeRune(r rune) {
	switch {
	case r == '\n' || r == '\r':
		c.buf.InsertNewline()
	case !c.status.InsertMode() && c.buf.ReplaceChar(r):
		c.buf.CursorRight()
	default:
		c.buf.InsertChar(r)
	}
	c.setChanged(true)
}

func (c *Controller) save() {
	err := c.buf.Save()
	switch {
	case err == nil:
		c.saved()
	case errors.Is(err, editor.ErrNoFileName):
		c.ask(ModePrompting, PurposeSaveAs, captionSaveAs)
	default:
		c.setMessage(FormatFileError(err))
	}
}

func (c *Controller) saved() {
	c.setChanged(false)
	c.status.SetFileName(c.buf.FilePath())
	c.setMessage(fmt.Sprintf("Wrote %d lines, %s", c.buf.LineCount(), humanize.Bytes(uint64(c.buf.Size()))))
}

// ask opens the prompt line with a question.
func (c *Controller) ask(mode Mode, purpose Purpose, caption string) {
	c.mode = mode
	c.purpose = purpose
	c.prompt.SetCaption(caption)
	c.prompt.Redraw(c.painter)
}

// closePrompt blanks the prompt line and returns to editing.
func (c *Controller) closePrompt() {
	c.mode = ModeEditing
	c.purpose = PurposeNone
	c.prompt.Clear()
	c.prompt.Redraw(c.painter)
}

func (c *Controller) handlePrompting(msg tea.KeyMsg) {
	if rs := runes(msg); rs != nil {
		for _, r := range rs {
			c.prompt.Push(r)
		}
		c.prompt.Redraw(c.painter)
		return
	}

	switch {
	case key.Matches(msg, c.keys.Backspace):
		c.prompt.Backspace()
		c.prompt.Redraw(c.painter)
	case key.Matches(msg, c.keys.Newline):
		c.commit()
	case key.Matches(msg, c.keys.Cancel):
		c.closePrompt()
		c.setMessage("Cancelled")
	}
}

// commit closes the prompt and runs its purpose with the answer. An empty
// answer cancels.
func (c *Controller) commit() {
	result := c.prompt.Result()
	purpose := c.purpose
	c.closePrompt()

	if result == "" {
		c.setMessage("Cancelled")
		return
	}

	switch purpose {
	case PurposeSaveAs:
		if err := c.buf.SaveAs(result); err != nil {
			c.setMessage(FormatFileError(err))
			return
		}
		c.saved()
	}
}

func (c *Controller) handleAnswer(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, c.keys.Cancel):
		c.closePrompt()
	case key.Matches(msg, c.keys.Newline):
		return c.purpose == PurposeConfirmExit
	default:
		rs := runes(msg)
		if rs == nil {
			return false
		}
		if len(rs) == 1 && rs[0] == 'y' && c.purpose == PurposeConfirmExit {
			return true
		}
		c.closePrompt()
	}
	return false
}
