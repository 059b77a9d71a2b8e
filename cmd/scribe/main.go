package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/willibrandon/scribe/internal/app"
	"github.com/willibrandon/scribe/internal/config"
	"github.com/willibrandon/scribe/internal/logger"
	"github.com/willibrandon/scribe/internal/macro"
	"github.com/willibrandon/scribe/internal/ui/terminal"
)

var (
	// Version info (set by ldflags)
	version = "dev"

	errorFormat = color.New(color.FgHiRed, color.Bold).SprintFunc()
	hintFormat  = color.New(color.FgHiBlack).SprintFunc()
)

// options holds the command-line flags
type options struct {
	debug      bool
	script     string
	configPath string
}

func main() {
	os.Exit(execute(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code.
func execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "%s %s\n", errorFormat("Error:"), err)
		fmt.Fprintln(stderr, hintFormat("Run 'scribe --help' for usage."))
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "scribe [flags] [FILE]",
		Short: "A small modal terminal text editor",
		Long: heredoc.Doc(`
			scribe edits one text file in the terminal.

			A FILE that exists is opened, one that does not exist is created on
			the first save, and without FILE an unnamed buffer is started.

			Keys:
			  ^S save         ^O save as       ^Q quit
			  ins             toggle insert/overwrite
			  home/end, pgup/pgdn, arrows      move

			Key bindings, the theme and logging are read from
			~/.config/scribe/config.yaml or SCRIBE_* environment variables.
		`),
		Example: heredoc.Doc(`
			scribe notes.txt
			scribe --debug notes.txt
			scribe --script edit.json notes.txt > screen.txt
		`),
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.debug, "debug", "d", false, "show the debug panel and log at debug level")
	cmd.Flags().StringVarP(&opts.script, "script", "s", "", "replay the macro script `FILE` instead of reading keys")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file path (default ~/.config/scribe/config.yaml)")

	return cmd
}

func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.LoadConfigFromPath(path)
	}
	return config.LoadConfig()
}

func run(cmd *cobra.Command, args []string, opts options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.debug {
		cfg.Debug = true
	}

	logger.InitLogger(cfg.LogLevel(), cfg.Log.File)
	defer logger.Close()
	if cfg.Debug {
		fmt.Fprintf(cmd.ErrOrStderr(), "Debug mode: Logs written to %s\n", logger.LogPath)
	}
	logger.Debug("scribe starting", "version", version, "args", args, "script", opts.script)

	var cmds []macro.Command
	if opts.script != "" {
		// A bad script is fatal before anything is painted.
		cmds, err = macro.Load(opts.script)
		if err != nil {
			logger.Error("script load failed", "path", opts.script, "error", err)
			return errors.New(app.FormatScriptError(err, opts.script))
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	appOpts := app.Options{
		Config: cfg,
		Screen: terminal.DetectScreen(os.Stdout.Fd()),
		Debug:  cfg.Debug,
		Output: cmd.OutOrStdout(),
	}
	if len(args) == 1 {
		appOpts.File = args[0]
	}

	if opts.script != "" {
		return app.RunScript(ctx, appOpts, cmds)
	}
	return app.Run(ctx, appOpts)
}
