// Package window maps rectangular regions of the screen to display
// coordinates.
//
// Three coordinate spaces are kept apart: buffer coordinates (line index,
// character index) belong to the editor, window coordinates are 0-indexed cell
// offsets inside a Viewport, and screen coordinates are 1-indexed terminal
// rows and columns.
package window

import "fmt"

// Viewport is a rectangular sub-region of the screen with its own cursor.
type Viewport struct {
	row, col      int // 1-indexed screen origin
	width, height int
	curX, curY    int
}

// New creates a viewport whose top-left cell is at screen (row, col).
func New(row, col, width, height int) *Viewport {
	return &Viewport{row: row, col: col, width: width, height: height}
}

func (v *Viewport) Row() int    { return v.row }
func (v *Viewport) Col() int    { return v.col }
func (v *Viewport) Width() int  { return v.width }
func (v *Viewport) Height() int { return v.height }

// CursorX returns the window-local cursor column.
func (v *Viewport) CursorX() int { return v.curX }

// CursorY returns the window-local cursor row.
func (v *Viewport) CursorY() int { return v.curY }

// SetCursorX moves the local cursor to column x. Values outside
// [0, width) are ignored.
func (v *Viewport) SetCursorX(x int) {
	if x >= 0 && x < v.width {
		v.curX = x
	}
}

// SetCursorY moves the local cursor to row y. Values outside [0, height) are
// ignored.
func (v *Viewport) SetCursorY(y int) {
	if y >= 0 && y < v.height {
		v.curY = y
	}
}

// ToScreen converts window coordinates to 1-indexed screen coordinates.
func (v *Viewport) ToScreen(x, y int) (row, col int) {
	return v.row + y, v.col + x
}

// ScreenCursor returns the screen position of the local cursor.
func (v *Viewport) ScreenCursor() (row, col int) {
	return v.ToScreen(v.curX, v.curY)
}

func (v *Viewport) String() string {
	return fmt.Sprintf("window(%d,%d %dx%d cur %d,%d)", v.row, v.col, v.width, v.height, v.curX, v.curY)
}

// Column converts a character index into a window column by summing the
// display widths of the characters before it.
func Column(widths []int, x int) int {
	col := 0
	for i := 0; i < x && i < len(widths); i++ {
		col += widths[i]
	}
	return col
}
