package macro

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	udiff "github.com/aymanbagabas/go-udiff"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willibrandon/scribe/internal/editor"
	"github.com/willibrandon/scribe/internal/ui/components"
	"github.com/willibrandon/scribe/internal/ui/terminal"
	"github.com/willibrandon/scribe/internal/ui/window"
)

type target struct {
	buf    *editor.TextBuffer
	status *components.StatusLine
	grid   *terminal.Grid
}

// newTarget lays out a 20x6 screen: four edit rows, a status row and an
// unused prompt row.
func newTarget(t *testing.T) target {
	t.Helper()
	grid := terminal.NewGrid(terminal.Screen{Width: 20, Height: 6})
	buf := editor.New(window.New(1, 1, 20, 4), grid)
	status := components.NewStatusLine(window.New(5, 1, 20, 1))
	return target{buf: buf, status: status, grid: grid}
}

func (tg target) runner(opts ...Option) *Runner {
	return NewRunner(tg.buf, tg.status, tg.grid, opts...)
}

// screenText returns the grid with trailing blanks removed from every row.
func screenText(g *terminal.Grid) string {
	rows := strings.Split(g.String(), "\n")
	for i, r := range rows {
		rows[i] = strings.TrimRight(r, " ")
	}
	return strings.Join(rows, "\n") + "\n"
}

func TestScriptsMatchGolden(t *testing.T) {
	scripts, err := filepath.Glob(filepath.Join("testdata", "*.*"))
	require.NoError(t, err)

	ran := 0
	for _, path := range scripts {
		if filepath.Ext(path) == ".golden" {
			continue
		}
		name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		t.Run(name, func(t *testing.T) {
			cmds, err := Load(path)
			require.NoError(t, err)

			tg := newTarget(t)
			require.NoError(t, tg.runner().Run(context.Background(), cmds))

			want, err := os.ReadFile(strings.TrimSuffix(path, filepath.Ext(path)) + ".golden")
			require.NoError(t, err)

			got := screenText(tg.grid)
			if got != string(want) {
				t.Errorf("screen mismatch:\n%s", udiff.Unified("want", "got", string(want), got))
			}
		})
		ran++
	}
	assert.Equal(t, 5, ran)
}

func TestRunnerEditsBuffer(t *testing.T) {
	tg := newTarget(t)
	cmds := []Command{
		{Name: "new_buffer"},
		{Name: "insert_char", ArgStr: "a"},
		{Name: "insert_char", ArgStr: "b"},
		{Name: "cursor_left"},
		{Name: "insert_char", ArgStr: "X"},
	}

	require.NoError(t, tg.runner().Run(context.Background(), cmds))

	assert.Equal(t, []string{"aXb"}, tg.buf.Lines())
	assert.Equal(t, 2, tg.buf.CursorX())
	assert.True(t, tg.status.Changed())
}

func TestRunnerIgnoresArg(t *testing.T) {
	tg := newTarget(t)
	cmds := []Command{
		{Name: "insert_char", ArgStr: "abcd"},
		{Name: "cursor_left", Arg: 3},
		{Name: "insert_char", Arg: 'A'},
	}

	require.NoError(t, tg.runner().Run(context.Background(), cmds))

	assert.Equal(t, []string{"abcd"}, tg.buf.Lines())
	assert.Equal(t, 3, tg.buf.CursorX())
}

func TestRunnerEmptyInsertLeavesBufferUnchanged(t *testing.T) {
	tg := newTarget(t)
	require.NoError(t, tg.runner().Run(context.Background(), []Command{{Name: "insert_char"}}))

	assert.Equal(t, []string{""}, tg.buf.Lines())
	assert.False(t, tg.status.Changed())
}

func TestRunnerFiles(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "in.txt")
	dst := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(src, []byte("one\ntwo\n"), 0o644))

	tg := newTarget(t)
	cmds := []Command{
		{Name: "open_file", ArgStr: src},
		{Name: "cursor_down"},
		{Name: "insert_char", ArgStr: ">"},
		{Name: "save_file_as", ArgStr: dst},
		{Name: "insert_char", ArgStr: ">"},
		{Name: "save_file"},
	}
	require.NoError(t, tg.runner().Run(context.Background(), cmds))

	data, err := os.ReadFile(dst)
	require.NoError(t, err)
	assert.Equal(t, "one\n>>two\n", string(data))

	orig, err := os.ReadFile(src)
	require.NoError(t, err)
	assert.Equal(t, "one\ntwo\n", string(orig))

	assert.Equal(t, dst, tg.status.FileName())
	assert.False(t, tg.status.Changed())
}

func TestRunnerReportsFailures(t *testing.T) {
	tg := newTarget(t)
	var reported []error

	cmds := []Command{
		{Name: "insert_char", ArgStr: "keep"},
		{Name: "open_file", ArgStr: filepath.Join(t.TempDir(), "missing.txt")},
		{Name: "save_file"},
	}
	r := tg.runner(WithReporter(func(err error) { reported = append(reported, err) }))
	require.NoError(t, r.Run(context.Background(), cmds))

	require.Len(t, reported, 2)
	assert.ErrorIs(t, reported[0], editor.ErrFileNotFound)
	assert.ErrorIs(t, reported[1], editor.ErrNoFileName)
	assert.Equal(t, []string{"keep"}, tg.buf.Lines(), "failed open leaves the buffer alone")
	assert.True(t, tg.status.Changed())
}

func TestRunnerDefaultReporterUsesStatusLine(t *testing.T) {
	tg := newTarget(t)
	require.NoError(t, tg.runner().Run(context.Background(), []Command{{Name: "save_file"}}))

	assert.Equal(t, "no file name", tg.status.Message())
	assert.Equal(t, "[No Name]  no f  Ins", tg.grid.Row(5))
}

func TestRunnerRefreshesAfterEachCommand(t *testing.T) {
	tg := newTarget(t)
	calls := 0
	cmds := []Command{{Name: "insert_char", ArgStr: "a"}, {Name: "bogus"}, {Name: "break"}, {Name: "cursor_left"}}

	require.NoError(t, tg.runner(WithRefresh(func() { calls++ })).Run(context.Background(), cmds))

	assert.Equal(t, 2, calls)
	assert.Equal(t, 1, tg.buf.CursorX(), "commands after break do not run")
}

func TestRunnerStopsOnCancel(t *testing.T) {
	tg := newTarget(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := tg.runner().Run(ctx, []Command{{Name: "insert_char", ArgStr: "a"}})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, "", tg.buf.Line(0))
}

func TestRunnerLeavesCursorInEditArea(t *testing.T) {
	tg := newTarget(t)
	require.NoError(t, tg.runner().Run(context.Background(), []Command{{Name: "insert_char", ArgStr: "abc"}}))

	row, col := tg.grid.Cursor()
	assert.Equal(t, 1, row)
	assert.Equal(t, 4, col)
}

func TestParseKind(t *testing.T) {
	assert.Equal(t, KindCursorLeft, ParseKind("cursor_left"))
	assert.Equal(t, KindBreak, ParseKind("break"))
	assert.Equal(t, KindUnknown, ParseKind("Cursor_Left"))
	assert.Equal(t, "save_file_as", KindSaveFileAs.String())
	assert.Equal(t, "unknown", KindUnknown.String())
	assert.Equal(t, "unknown", Kind(99).String())
}

func TestKindNamesRoundTrip(t *testing.T) {
	for name, kind := range kindNames {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, name, kind.String())
			assert.Equal(t, kind, ParseKind(kind.String()))
		})
	}
	assert.Len(t, kindNames, int(KindBreak))
}
