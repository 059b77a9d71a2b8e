package terminal

import (
	"fmt"

	"golang.org/x/term"
)

// DefaultScreen is used when the output is not a terminal.
var DefaultScreen = Screen{Width: 80, Height: 24}

// Screen holds the terminal dimensions in cells.
type Screen struct {
	Width  int
	Height int
}

func (s Screen) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// DetectScreen reads the size of the terminal behind fd, falling back to
// DefaultScreen.
func DetectScreen(fd uintptr) Screen {
	if !term.IsTerminal(int(fd)) {
		return DefaultScreen
	}
	w, h, err := term.GetSize(int(fd))
	if err != nil || w <= 0 || h <= 0 {
		return DefaultScreen
	}
	return Screen{Width: w, Height: h}
}
