package editor

import (
	"errors"
	"fmt"
)

// ErrorKind classifies file errors.
type ErrorKind int

const (
	KindFileNotFound ErrorKind = iota
	KindIO
	KindNoFileName
	KindDecode
)

func (k ErrorKind) String() string {
	switch k {
	case KindFileNotFound:
		return "file not found"
	case KindIO:
		return "i/o error"
	case KindNoFileName:
		return "no file name"
	case KindDecode:
		return "decode error"
	default:
		return "unknown error"
	}
}

// Sentinels matched by errors.Is against a *FileError of the same kind.
var (
	ErrFileNotFound = errors.New("file not found")
	ErrIO           = errors.New("i/o error")
	ErrNoFileName   = errors.New("no file name")
	ErrDecode       = errors.New("decode error")
)

// FileError reports a failed load or save.
type FileError struct {
	Kind ErrorKind
	Path string
	// Line is the 1-indexed line of a decode error.
	Line int
	Err  error
}

func (e *FileError) Error() string {
	switch {
	case e.Kind == KindNoFileName:
		return "no file name"
	case e.Kind == KindDecode:
		return fmt.Sprintf("%s:%d: invalid UTF-8", e.Path, e.Line)
	case e.Err != nil:
		return fmt.Sprintf("%s: %s: %v", e.Path, e.Kind, e.Err)
	default:
		return fmt.Sprintf("%s: %s", e.Path, e.Kind)
	}
}

func (e *FileError) Unwrap() error {
	return e.Err
}

func (e *FileError) Is(target error) bool {
	switch target {
	case ErrFileNotFound:
		return e.Kind == KindFileNotFound
	case ErrIO:
		return e.Kind == KindIO
	case ErrNoFileName:
		return e.Kind == KindNoFileName
	case ErrDecode:
		return e.Kind == KindDecode
	}
	return false
}
