// Package logger provides the process-wide structured logger. Records are
// written as JSON to a rotating file, and recent warnings and errors are kept
// in memory for the debug panel.
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogLevel is the minimum level written to the log file.
type LogLevel int

const (
	LevelDebug LogLevel = iota
	LevelInfo
	LevelWarn
	LevelError
)

func (l LogLevel) slog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ParseLevel converts a config value such as "warn" into a LogLevel.
func ParseLevel(s string) (LogLevel, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}

var (
	// Log is the global structured logger
	Log *slog.Logger
	// LogPath is the path of the current log file
	LogPath string

	logWriter    io.WriteCloser
	recent       *ring
	debugEnabled bool
)

// DefaultPath returns ~/.config/scribe/scribe.log, creating the directory.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = os.TempDir()
	}
	dir := filepath.Join(home, ".config", "scribe")
	_ = os.MkdirAll(dir, 0o755)
	return filepath.Join(dir, "scribe.log")
}

// InitLogger installs the global logger. An empty path selects DefaultPath.
func InitLogger(level LogLevel, path string) {
	if path == "" {
		path = DefaultPath()
	}
	LogPath = path
	logWriter = &lumberjack.Logger{
		Filename:   path,
		MaxSize:    5, // MB
		MaxBackups: 3,
		MaxAge:     14, // days
		Compress:   true,
	}
	install(level, logWriter)
}

// InitWriter installs the global logger writing to w. Used by tests.
func InitWriter(level LogLevel, w io.Writer) {
	LogPath = ""
	logWriter = nil
	install(level, w)
}

func install(level LogLevel, w io.Writer) {
	debugEnabled = level == LevelDebug
	recent = newRing(100)
	handler := &captureHandler{
		inner: slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level.slog()}),
		ring:  recent,
	}
	Log = slog.New(handler)
	slog.SetDefault(Log)
}

// Close closes the log file.
func Close() {
	if logWriter != nil {
		logWriter.Close()
		logWriter = nil
	}
}

func get() *slog.Logger {
	if Log != nil {
		return Log
	}
	return slog.Default()
}

func Debug(msg string, args ...any) { get().Debug(msg, args...) }
func Info(msg string, args ...any)  { get().Info(msg, args...) }
func Warn(msg string, args ...any)  { get().Warn(msg, args...) }
func Error(msg string, args ...any) { get().Error(msg, args...) }

// With returns a logger carrying the given attributes.
func With(args ...any) *slog.Logger {
	return get().With(args...)
}

// Counts returns how many warnings and errors were logged.
func Counts() (warn, err int) {
	if recent == nil {
		return 0, 0
	}
	return recent.counts()
}

// Entries returns the recent warnings and errors, oldest first.
func Entries() []Entry {
	if recent == nil {
		return nil
	}
	return recent.snapshot()
}

// IsDebugEnabled reports whether the logger runs at debug level.
func IsDebugEnabled() bool {
	return debugEnabled
}
