package ptytest

import (
	"errors"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/hinshun/vt10x"
)

// ErrTimeout is returned by Wait when the command does not exit in time.
var ErrTimeout = errors.New("ptytest: timed out waiting for exit")

// Session is a command running in a PTY whose output is fed to a vt10x
// emulator of the same size.
type Session struct {
	pty PTY

	mu   sync.Mutex
	term vt10x.Terminal
	done chan struct{}
}

// NewSession starts cmd in a cols x rows PTY.
func NewSession(cmd *exec.Cmd, cols, rows int) (*Session, error) {
	p, err := StartWithSize(cmd, &Winsize{Rows: uint16(rows), Cols: uint16(cols)})
	if err != nil {
		return nil, err
	}
	s := &Session{
		pty:  p,
		term: vt10x.New(vt10x.WithSize(cols, rows)),
		done: make(chan struct{}),
	}
	go s.readLoop()
	return s, nil
}

func (s *Session) readLoop() {
	defer close(s.done)
	buf := make([]byte, 4096)
	for {
		n, err := s.pty.Read(buf)
		if n > 0 {
			s.mu.Lock()
			s.term.Write(buf[:n])
			s.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Send writes keys to the terminal input.
func (s *Session) Send(keys string) error {
	_, err := s.pty.Write([]byte(keys))
	return err
}

// Screen returns the emulator contents, one line per row.
func (s *Session) Screen() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.term.String()
}

// Lines returns the emulator rows with trailing blanks removed.
func (s *Session) Lines() []string {
	lines := strings.Split(strings.TrimSuffix(s.Screen(), "\n"), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimRight(l, " \x00")
	}
	return lines
}

// Cursor returns the 0-indexed cursor cell.
func (s *Session) Cursor() (x, y int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.term.Cursor()
	return c.X, c.Y
}

// Reversed reports whether the cell at (x, y) is drawn in reverse video.
func (s *Session) Reversed(x, y int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.term.Cell(x, y).BG == vt10x.DefaultFG
}

// WaitFor polls the screen until it contains text or timeout passes.
func (s *Session) WaitFor(text string, timeout time.Duration) bool {
	return s.WaitUntil(func(screen string) bool {
		return strings.Contains(screen, text)
	}, timeout)
}

// WaitUntil polls the screen until cond holds or timeout passes.
func (s *Session) WaitUntil(cond func(screen string) bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond(s.Screen()) {
			return true
		}
		time.Sleep(50 * time.Millisecond)
	}
	return cond(s.Screen())
}

// Wait waits for the command to exit and for its output to be drained.
func (s *Session) Wait(timeout time.Duration) error {
	errc := make(chan error, 1)
	go func() { errc <- s.pty.Wait() }()

	var err error
	select {
	case err = <-errc:
	case <-time.After(timeout):
		return ErrTimeout
	}

	select {
	case <-s.done:
	case <-time.After(time.Second):
	}
	return err
}

// Close closes the PTY.
func (s *Session) Close() error {
	return s.pty.Close()
}
