package app

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/willibrandon/scribe/internal/editor"
)

// FormatFileError formats a load or save failure for the status line
func FormatFileError(err error) string {
	var ferr *editor.FileError
	if !errors.As(err, &ferr) {
		return fmt.Sprintf("Error: %v", err)
	}

	switch ferr.Kind {
	case editor.KindFileNotFound:
		return fmt.Sprintf("Not found: %s", ferr.Path)
	case editor.KindNoFileName:
		return "No file name"
	case editor.KindDecode:
		return fmt.Sprintf("Invalid UTF-8 in %s line %d", ferr.Path, ferr.Line)
	}

	if errors.Is(ferr.Err, fs.ErrPermission) {
		return fmt.Sprintf("Permission denied: %s", ferr.Path)
	}
	if errors.Is(ferr.Err, fs.ErrNotExist) {
		return fmt.Sprintf("No such directory: %s", ferr.Path)
	}
	return fmt.Sprintf("I/O error: %s: %v", ferr.Path, errors.Unwrap(ferr))
}

// FormatScriptError formats a macro script that could not be loaded
func FormatScriptError(err error, path string) string {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Sprintf(
			"Macro script not found.\n\n"+
				"Script: %s\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Check the path passed to --script\n"+
				"  2. Relative paths are resolved from the current directory\n"+
				"\nOriginal error: %s", path, err)
	}

	if errors.Is(err, fs.ErrPermission) {
		return fmt.Sprintf(
			"Macro script is not readable.\n\n"+
				"Script: %s\n\n"+
				"Troubleshooting steps:\n"+
				"  1. Check the file permissions\n"+
				"\nOriginal error: %s", path, err)
	}

	return fmt.Sprintf(
		"Macro script is malformed.\n\n"+
			"Script: %s\n\n"+
			"Troubleshooting steps:\n"+
			"  1. A script is a list of {name, arg, argstr} commands\n"+
			"  2. Use .json, .yaml/.yml or .toml to select the format\n"+
			"  3. Every command needs a name\n"+
			"\nOriginal error: %s", path, err)
}
