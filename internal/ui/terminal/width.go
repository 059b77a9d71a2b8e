package terminal

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// widthCondition fixes ambiguous-width characters to one column so layout does
// not depend on the locale of the process.
var widthCondition = &runewidth.Condition{EastAsianWidth: false}

func isControl(r rune) bool {
	return r < 0x20 || (r >= 0x7f && r <= 0x9f)
}

// RuneWidth returns the number of cells r occupies when painted: 0, 1 or 2.
// Control characters occupy one cell.
func RuneWidth(r rune) int {
	if isControl(r) {
		return 1
	}
	return widthCondition.RuneWidth(r)
}

// Printable returns the rune actually painted for r.
func Printable(r rune) rune {
	switch {
	case r == '\t':
		return ' '
	case isControl(r):
		return '?'
	default:
		return r
	}
}

// StringWidth returns the painted width of s.
func StringWidth(s string) int {
	w := 0
	for _, r := range s {
		w += RuneWidth(r)
	}
	return w
}

// Truncate returns the longest prefix of s whose painted width is at most w.
func Truncate(s string, w int) string {
	used := 0
	for i, r := range s {
		rw := RuneWidth(r)
		if used+rw > w {
			return s[:i]
		}
		used += rw
	}
	return s
}

// Fit truncates s to w cells and pads it with spaces to exactly w cells.
func Fit(s string, w int) string {
	if w <= 0 {
		return ""
	}
	s = Truncate(s, w)
	if pad := w - StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}
