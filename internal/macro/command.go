// Package macro replays recorded editor commands against a text buffer.
package macro

// Command is one step of a macro script. ArgStr carries the text to insert or
// the file name to open or save to. Arg is read from scripts but never used.
type Command struct {
	Name   string `json:"name" yaml:"name" toml:"name"`
	Arg    int    `json:"arg" yaml:"arg" toml:"arg"`
	ArgStr string `json:"argstr" yaml:"argstr" toml:"argstr"`
}

// Kind identifies the operation a command runs.
type Kind int

const (
	KindUnknown Kind = iota
	KindNewBuffer
	KindOpenFile
	KindSaveFile
	KindSaveFileAs
	KindCursorUp
	KindCursorDown
	KindCursorLeft
	KindCursorRight
	KindInsertChar
	KindInsertNewline
	KindDeleteChar
	KindBreak
)

var kindNames = map[string]Kind{
	"new_buffer":     KindNewBuffer,
	"open_file":      KindOpenFile,
	"save_file":      KindSaveFile,
	"save_file_as":   KindSaveFileAs,
	"cursor_up":      KindCursorUp,
	"cursor_down":    KindCursorDown,
	"cursor_left":    KindCursorLeft,
	"cursor_right":   KindCursorRight,
	"insert_char":    KindInsertChar,
	"insert_newline": KindInsertNewline,
	"delete_char":    KindDeleteChar,
	"break":          KindBreak,
}

// ParseKind returns the kind named by name, or KindUnknown.
func ParseKind(name string) Kind {
	return kindNames[name]
}

func (k Kind) String() string {
	switch k {
	case KindNewBuffer:
		return "new_buffer"
	case KindOpenFile:
		return "open_file"
	case KindSaveFile:
		return "save_file"
	case KindSaveFileAs:
		return "save_file_as"
	case KindCursorUp:
		return "cursor_up"
	case KindCursorDown:
		return "cursor_down"
	case KindCursorLeft:
		return "cursor_left"
	case KindCursorRight:
		return "cursor_right"
	case KindInsertChar:
		return "insert_char"
	case KindInsertNewline:
		return "insert_newline"
	case KindDeleteChar:
		return "delete_char"
	case KindBreak:
		return "break"
	default:
		return "unknown"
	}
}

// Kind returns the operation c runs.
func (c Command) Kind() Kind {
	return ParseKind(c.Name)
}
