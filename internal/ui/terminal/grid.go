package terminal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/willibrandon/scribe/internal/ui/styles"
)

type cell struct {
	// text is empty for the right half of a wide character.
	text  string
	width int
	style Style
}

var blank = cell{text: " ", width: 1}

// Grid is an in-memory Painter. The bubbletea model renders it with View.
type Grid struct {
	screen        Screen
	cells         [][]cell
	row, col      int
	style         Style
	cursorVisible bool
}

// NewGrid creates a blank grid covering the screen.
func NewGrid(screen Screen) *Grid {
	g := &Grid{screen: screen, cursorVisible: true}
	g.cells = make([][]cell, screen.Height)
	for i := range g.cells {
		g.cells[i] = make([]cell, screen.Width)
	}
	g.Clear()
	return g
}

// Screen returns the grid dimensions.
func (g *Grid) Screen() Screen {
	return g.screen
}

func (g *Grid) Clear() {
	for _, row := range g.cells {
		for i := range row {
			row[i] = blank
		}
	}
	g.row, g.col = 0, 0
}

func (g *Grid) MoveTo(row, col int) {
	g.row, g.col = row-1, col-1
}

func (g *Grid) Write(s string) {
	for _, r := range s {
		w := RuneWidth(r)
		if !g.inside(g.row, g.col) && w > 0 {
			g.col += w
			continue
		}
		if w == 0 {
			g.attach(r)
			continue
		}
		if g.col+w > g.screen.Width {
			g.col += w
			continue
		}
		g.unsplit(g.row, g.col)
		if w == 2 {
			g.unsplit(g.row, g.col+1)
		}
		g.cells[g.row][g.col] = cell{text: string(Printable(r)), width: w, style: g.style}
		if w == 2 {
			g.cells[g.row][g.col+1] = cell{style: g.style}
		}
		g.col += w
	}
}

// attach appends a zero-width rune to the cell left of the cursor.
func (g *Grid) attach(r rune) {
	c := g.col - 1
	if !g.inside(g.row, c) {
		return
	}
	if g.cells[g.row][c].width == 0 && c > 0 {
		c--
	}
	g.cells[g.row][c].text += string(r)
}

// unsplit blanks the other half of a wide character about to be overwritten.
func (g *Grid) unsplit(row, col int) {
	switch g.cells[row][col].width {
	case 0:
		if col > 0 {
			g.cells[row][col-1] = blank
		}
	case 2:
		if col+1 < g.screen.Width {
			g.cells[row][col+1] = blank
		}
	}
}

func (g *Grid) inside(row, col int) bool {
	return row >= 0 && row < g.screen.Height && col >= 0 && col < g.screen.Width
}

func (g *Grid) SetStyle(style Style) { g.style = style }
func (g *Grid) ShowCursor()          { g.cursorVisible = true }
func (g *Grid) HideCursor()          { g.cursorVisible = false }
func (g *Grid) Flush() error         { return nil }

// Cursor returns the 1-indexed cursor position.
func (g *Grid) Cursor() (row, col int) {
	return g.row + 1, g.col + 1
}

// CursorVisible reports whether the cursor is shown.
func (g *Grid) CursorVisible() bool {
	return g.cursorVisible
}

// Row returns the text of the 1-indexed row without styling.
func (g *Grid) Row(row int) string {
	if row < 1 || row > g.screen.Height {
		return ""
	}
	var sb strings.Builder
	for _, c := range g.cells[row-1] {
		sb.WriteString(c.text)
	}
	return sb.String()
}

// String returns all rows without styling, separated by newlines.
func (g *Grid) String() string {
	rows := make([]string, g.screen.Height)
	for i := range rows {
		rows[i] = g.Row(i + 1)
	}
	return strings.Join(rows, "\n")
}

// View renders the grid with styles applied and the cursor cell highlighted.
func (g *Grid) View() string {
	cursorRow, cursorCol := -1, -1
	if g.cursorVisible && g.inside(g.row, g.col) {
		cursorRow, cursorCol = g.row, g.col
		if g.cells[g.row][g.col].width == 0 && g.col > 0 {
			cursorCol--
		}
	}

	rows := make([]string, g.screen.Height)
	for i, row := range g.cells {
		var sb strings.Builder
		var run strings.Builder
		runStyle := StyleNormal
		flush := func() {
			if run.Len() == 0 {
				return
			}
			sb.WriteString(render(runStyle, run.String()))
			run.Reset()
		}
		for j, c := range row {
			if i == cursorRow && j == cursorCol {
				flush()
				sb.WriteString(styles.Cursor.Render(c.text))
				continue
			}
			if c.style != runStyle {
				flush()
				runStyle = c.style
			}
			run.WriteString(c.text)
		}
		flush()
		rows[i] = sb.String()
	}
	return strings.Join(rows, "\n")
}

func render(style Style, text string) string {
	var s lipgloss.Style
	switch style {
	case StyleStatus:
		s = styles.StatusLine
	case StylePrompt:
		s = styles.PromptCaption
	case StyleDebug:
		s = styles.DebugPanel
	default:
		return text
	}
	return s.Render(text)
}
