// Package ptytest runs commands in a pseudo terminal and renders their output
// with a terminal emulator, on Unix (creack/pty) and Windows (ConPTY).
package ptytest

import (
	"io"
	"os/exec"
)

// Winsize describes the terminal size.
type Winsize struct {
	Rows uint16
	Cols uint16
}

// PTY represents a pseudo-terminal that can be used to run commands.
type PTY interface {
	io.ReadWriteCloser

	// Setsize sets the terminal size.
	Setsize(size *Winsize) error

	// Wait waits for the command to exit.
	Wait() error
}

// Start starts a command in a new 80x24 PTY and returns the PTY.
// The caller is responsible for closing the PTY and waiting for the command.
func Start(cmd *exec.Cmd) (PTY, error) {
	return startPTY(cmd, &Winsize{Rows: 24, Cols: 80})
}

// StartWithSize starts a command in a new PTY with the given size. The size is
// in place before the command starts.
func StartWithSize(cmd *exec.Cmd, size *Winsize) (PTY, error) {
	return startPTY(cmd, size)
}
