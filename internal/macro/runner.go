package macro

import (
	"context"

	"github.com/willibrandon/scribe/internal/editor"
	"github.com/willibrandon/scribe/internal/logger"
	"github.com/willibrandon/scribe/internal/ui/components"
	"github.com/willibrandon/scribe/internal/ui/terminal"
)

// Runner executes commands against a buffer and its status line.
type Runner struct {
	buf     *editor.TextBuffer
	status  *components.StatusLine
	painter terminal.Painter

	refresh func()
	report  func(error)
}

// Option configures a Runner.
type Option func(*Runner)

// WithRefresh replaces the repaint done after every command.
func WithRefresh(fn func()) Option {
	return func(r *Runner) { r.refresh = fn }
}

// WithReporter replaces how failed file commands are shown to the user.
func WithReporter(fn func(error)) Option {
	return func(r *Runner) { r.report = fn }
}

// NewRunner creates a runner. By default failures are shown on the status
// line and each command ends by repainting the status line and the cursor.
func NewRunner(buf *editor.TextBuffer, status *components.StatusLine, painter terminal.Painter, opts ...Option) *Runner {
	if painter == nil {
		painter = terminal.Discard
	}
	r := &Runner{buf: buf, status: status, painter: painter}
	r.refresh = r.repaint
	r.report = func(err error) { r.status.SetMessage(err.Error()) }
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runner) repaint() {
	r.status.Redraw(r.painter)
	r.buf.RedrawCursor()
	if err := r.painter.Flush(); err != nil {
		logger.Warn("macro: flush failed", "error", err)
	}
}

// Run executes cmds in order until a break command, the end of the list or
// the cancellation of ctx.
func (r *Runner) Run(ctx context.Context, cmds []Command) error {
	for i, c := range cmds {
		if err := ctx.Err(); err != nil {
			return err
		}
		if c.Kind() == KindBreak {
			logger.Debug("macro: break", "step", i+1)
			return nil
		}
		r.Exec(c)
		r.refresh()
	}
	return nil
}

// Exec runs a single command without repainting. Unknown commands are
// skipped.
func (r *Runner) Exec(c Command) {
	switch c.Kind() {
	case KindNewBuffer:
		r.buf.NewFile()
		r.status.SetFileName("")
		r.status.SetChanged(false)
	case KindOpenFile:
		if err := r.buf.Load(c.ArgStr); err != nil {
			r.report(err)
			return
		}
		r.status.SetFileName(r.buf.FilePath())
		r.status.SetChanged(false)
	case KindSaveFile:
		r.saved(r.buf.Save())
	case KindSaveFileAs:
		r.saved(r.buf.SaveAs(c.ArgStr))
	case KindCursorUp:
		r.buf.CursorUp()
	case KindCursorDown:
		r.buf.CursorDown()
	case KindCursorLeft:
		r.buf.CursorLeft()
	case KindCursorRight:
		r.buf.CursorRight()
	case KindInsertChar:
		if c.ArgStr == "" {
			return
		}
		for _, ch := range c.ArgStr {
			r.buf.InsertChar(ch)
		}
		r.status.SetChanged(true)
	case KindInsertNewline:
		r.buf.InsertNewline()
		r.status.SetChanged(true)
	case KindDeleteChar:
		if r.buf.DeleteChar() {
			r.status.SetChanged(true)
		}
	default:
		logger.Debug("macro: unknown command ignored", "name", c.Name)
	}
}

func (r *Runner) saved(err error) {
	if err != nil {
		r.report(err)
		return
	}
	r.status.SetFileName(r.buf.FilePath())
	r.status.SetChanged(false)
}
