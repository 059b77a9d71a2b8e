package app

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/willibrandon/scribe/internal/config"
	"github.com/willibrandon/scribe/internal/logger"
	"github.com/willibrandon/scribe/internal/macro"
	"github.com/willibrandon/scribe/internal/ui/styles"
	"github.com/willibrandon/scribe/internal/ui/terminal"
)

// Options describes one editor session.
type Options struct {
	// Config is the loaded configuration; nil selects config.Default().
	Config *config.Config
	Screen terminal.Screen
	// File is opened at startup when not empty.
	File  string
	Debug bool

	Input  io.Reader
	Output io.Writer
}

func (o Options) config() *config.Config {
	if o.Config == nil {
		return config.Default()
	}
	return o.Config
}

func (o Options) output() io.Writer {
	if o.Output == nil {
		return os.Stdout
	}
	return o.Output
}

// newController creates a controller painting to p, configured from opts,
// with opts.File loaded.
func newController(opts Options, p terminal.Painter) (*Controller, error) {
	cfg := opts.config()
	km, err := cfg.KeyMap()
	if err != nil {
		return nil, fmt.Errorf("key bindings: %w", err)
	}

	ctrl, err := NewController(opts.Screen, p,
		WithKeyMap(km),
		WithInsertMode(cfg.Editor.InsertMode),
		WithPageOverlap(cfg.Editor.PageOverlap),
		WithDebug(opts.Debug || cfg.Debug),
	)
	if err != nil {
		return nil, err
	}
	if opts.File != "" {
		ctrl.Open(opts.File)
	}
	return ctrl, nil
}

// Run starts the interactive editor and blocks until it exits. The terminal
// is restored on every exit path.
func Run(ctx context.Context, opts Options) error {
	log := logger.With("session", uuid.NewString())

	if err := styles.ApplyTheme(opts.config().UI.Theme); err != nil {
		return err
	}

	grid := terminal.NewGrid(opts.Screen)
	ctrl, err := newController(opts, grid)
	if err != nil {
		return err
	}
	if opts.File == "" {
		ctrl.ShowHelp()
	}
	model := NewModel(ctrl, grid)

	programOpts := []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithContext(ctx),
		tea.WithOutput(opts.output()),
	}
	if opts.Input != nil {
		programOpts = append(programOpts, tea.WithInput(opts.Input))
	}

	log.Info("session started", "file", opts.File, "screen", opts.Screen.String())
	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		log.Error("session failed", "error", err)
		return fmt.Errorf("error running editor: %w", err)
	}
	log.Info("session ended", "changed", ctrl.Changed())
	return nil
}

// RunScript replays cmds against a fresh editor, painting with plain ANSI
// sequences to opts.Output. No input is read.
func RunScript(ctx context.Context, opts Options, cmds []macro.Command) error {
	log := logger.With("session", uuid.NewString())

	w := terminal.NewWriter(opts.output())
	ctrl, err := newController(opts, w)
	if err != nil {
		return err
	}

	log.Info("script started", "commands", len(cmds), "screen", opts.Screen.String())
	runner := macro.NewRunner(ctrl.Buffer(), ctrl.Status(), w,
		macro.WithRefresh(ctrl.Refresh),
		macro.WithReporter(ctrl.Report),
	)
	runErr := runner.Run(ctx, cmds)

	w.MoveTo(opts.Screen.Height, 1)
	w.ShowCursor()
	if err := w.Flush(); err != nil {
		return fmt.Errorf("write screen: %w", err)
	}
	if runErr != nil {
		return runErr
	}
	log.Info("script finished", "lines", ctrl.Buffer().LineCount())
	return nil
}
