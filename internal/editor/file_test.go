package editor

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want []string
	}{
		{"lf terminated", []byte("one\ntwo\n"), []string{"one", "two"}},
		{"no final newline", []byte("one\ntwo"), []string{"one", "two"}},
		{"crlf", []byte("one\r\ntwo\r\n"), []string{"one", "two"}},
		{"blank lines", []byte("\n\nx\n"), []string{"", "", "x"}},
		{"empty file", []byte{}, []string{""}},
		{"wide characters", []byte("あいう\n😀\n"), []string{"あいう", "😀"}},
		{"invalid utf-8 line", []byte("ok\n\xff\xfe\nafter\n"), []string{"ok", "", "after"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, "in.txt", tt.data)
			b, _ := newBuffer(t, 20, 5)

			require.NoError(t, b.Load(path))

			assert.Equal(t, tt.want, b.Lines())
			assert.Equal(t, path, b.FilePath())
			assert.Equal(t, 0, b.CursorX())
			assert.Equal(t, 0, b.CursorY())
		})
	}
}

func TestLoadResetsCursorAndScroll(t *testing.T) {
	path := writeFile(t, "in.txt", []byte("a\nb\nc\n"))
	b, _ := newBuffer(t, 20, 2, numbered(10)...)
	b.ScrollUp(3)
	b.CursorRight()

	require.NoError(t, b.Load(path))

	assert.Equal(t, 0, b.ScrollTop())
	assert.Equal(t, 0, b.CursorY())
	assert.Equal(t, []int{1, 0}, b.Widths())
}

func TestLoadFailureLeavesBufferUnchanged(t *testing.T) {
	b, _ := newBuffer(t, 20, 5, "keep", "me")
	b.SetFilePath("original.txt")

	err := b.Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotFound))

	var ferr *FileError
	require.ErrorAs(t, err, &ferr)
	assert.Equal(t, KindFileNotFound, ferr.Kind)

	err = b.Load(t.TempDir())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))

	assert.Equal(t, []string{"keep", "me"}, b.Lines())
	assert.Equal(t, "original.txt", b.FilePath())
}

func TestSaveWithoutNameThenSaveAs(t *testing.T) {
	dir := t.TempDir()
	b, _ := newBuffer(t, 20, 5, "hello", "あ")

	err := b.Save()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoFileName))
	assert.False(t, errors.Is(err, ErrIO))

	path := filepath.Join(dir, "foo.txt")
	require.NoError(t, b.SaveAs(path))
	assert.Equal(t, path, b.FilePath())

	b.SetCursorY(1)
	b.CursorEnd()
	b.InsertChar('!')
	require.NoError(t, b.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "hello\nあ!\n", string(data))
}

func TestSaveAsFailureKeepsPath(t *testing.T) {
	b, _ := newBuffer(t, 20, 5, "x")
	b.SetFilePath("kept.txt")

	err := b.SaveAs(filepath.Join(t.TempDir(), "no", "such", "dir", "f.txt"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIO))
	assert.Equal(t, "kept.txt", b.FilePath())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "round.txt")
	b, _ := newBuffer(t, 20, 5, "", "two", "", "あいうえお")
	require.NoError(t, b.SaveAs(path))

	other, _ := newBuffer(t, 20, 5)
	require.NoError(t, other.Load(path))

	assert.Equal(t, b.Lines(), other.Lines())
	assert.Equal(t, b.Size(), other.Size())
}

func TestFileErrorMessages(t *testing.T) {
	assert.Equal(t, "no file name", (&FileError{Kind: KindNoFileName}).Error())
	assert.Equal(t, "a.txt:3: invalid UTF-8", (&FileError{Kind: KindDecode, Path: "a.txt", Line: 3}).Error())
	assert.Equal(t, "a.txt: i/o error: boom", (&FileError{Kind: KindIO, Path: "a.txt", Err: errors.New("boom")}).Error())
	assert.True(t, errors.Is(&FileError{Kind: KindDecode}, ErrDecode))
}
