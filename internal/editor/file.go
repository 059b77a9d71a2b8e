package editor

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/willibrandon/scribe/internal/logger"
)

func openError(path string, err error) *FileError {
	kind := KindIO
	if errors.Is(err, fs.ErrNotExist) {
		kind = KindFileNotFound
	}
	return &FileError{Kind: kind, Path: path, Err: err}
}

// readLines splits r into lines without their terminators. Lines that are not
// valid UTF-8 come back empty and are reported as decode errors.
func readLines(r io.Reader, path string) ([]string, []*FileError, error) {
	var lines []string
	var bad []*FileError

	br := bufio.NewReader(r)
	for n := 1; ; n++ {
		s, err := br.ReadString('\n')
		if len(s) > 0 {
			s = strings.TrimSuffix(s, "\n")
			s = strings.TrimSuffix(s, "\r")
			if !utf8.ValidString(s) {
				bad = append(bad, &FileError{Kind: KindDecode, Path: path, Line: n})
				s = ""
			}
			lines = append(lines, s)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, err
		}
	}

	if len(lines) == 0 {
		lines = []string{""}
	}
	return lines, bad, nil
}

// Load replaces the buffer contents with the file at path and associates the
// buffer with it. On failure the buffer is left unchanged.
func (b *TextBuffer) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		ferr := openError(path, err)
		logger.Warn("open failed", "path", path, "kind", ferr.Kind.String(), "error", err)
		return ferr
	}
	defer f.Close()

	lines, bad, err := readLines(f, path)
	if err != nil {
		logger.Warn("read failed", "path", path, "error", err)
		return &FileError{Kind: KindIO, Path: path, Err: err}
	}
	for _, d := range bad {
		logger.Warn("line replaced by empty line", "path", path, "line", d.Line, "error", d.Error())
	}

	b.lines = lines
	b.path = path
	b.curX, b.curY, b.top = 0, 0, 0
	b.UpdateWindowCursor()
	b.Redraw()

	logger.Info("file loaded", "path", path, "lines", len(lines), "decode_errors", len(bad))
	return nil
}

// Save writes the buffer to its associated file.
func (b *TextBuffer) Save() error {
	if b.path == "" {
		return &FileError{Kind: KindNoFileName}
	}
	if err := b.write(b.path); err != nil {
		logger.Error("save failed", "path", b.path, "error", err)
		return err
	}
	return nil
}

// SaveAs writes the buffer to path and, on success, associates the buffer
// with it.
func (b *TextBuffer) SaveAs(path string) error {
	if err := b.write(path); err != nil {
		logger.Error("save as failed", "path", path, "error", err)
		return err
	}
	b.path = path
	return nil
}

func (b *TextBuffer) write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return &FileError{Kind: KindIO, Path: path, Err: err}
	}

	w := bufio.NewWriter(f)
	for _, l := range b.lines {
		w.WriteString(l)
		w.WriteByte('\n')
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return &FileError{Kind: KindIO, Path: path, Err: fmt.Errorf("write: %w", err)}
	}
	if err := f.Close(); err != nil {
		return &FileError{Kind: KindIO, Path: path, Err: fmt.Errorf("close: %w", err)}
	}

	logger.Info("file saved", "path", path, "lines", len(b.lines), "bytes", b.Size())
	return nil
}
