package macro

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormats(t *testing.T) {
	want := []Command{
		{Name: "insert_char", ArgStr: "hi"},
		{Name: "cursor_left", Arg: 2},
	}

	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{
			name:   "json",
			format: FormatJSON,
			data:   `[{"name":"insert_char","arg":0,"argstr":"hi"},{"name":"cursor_left","arg":2,"argstr":""}]`,
		},
		{
			name:   "yaml",
			format: FormatYAML,
			data: heredoc.Doc(`
				- name: insert_char
				  argstr: hi
				- name: cursor_left
				  arg: 2
			`),
		},
		{
			name:   "toml",
			format: FormatTOML,
			data: heredoc.Doc(`
				[[commands]]
				name = "insert_char"
				argstr = "hi"

				[[commands]]
				name = "cursor_left"
				arg = 2
			`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestParseRejectsBadScripts(t *testing.T) {
	tests := []struct {
		name    string
		format  Format
		data    string
		wantErr string
	}{
		{"not json", FormatJSON, `{"name": `, ""},
		{"object instead of array", FormatJSON, `{"name":"break"}`, ""},
		{"wrong type", FormatJSON, `[{"name":"cursor_up","arg":"two"}]`, ""},
		{"missing name", FormatJSON, `[{"name":"break"},{"arg":1}]`, "command 2 has no name"},
		{"bad yaml", FormatYAML, "- name: [\n", ""},
		{"bad toml", FormatTOML, "[[commands]\n", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), tt.format)
			require.Error(t, err)
			if tt.wantErr != "" {
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestFormatFor(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFor("a.yaml"))
	assert.Equal(t, FormatYAML, FormatFor("dir/a.YML"))
	assert.Equal(t, FormatTOML, FormatFor("a.toml"))
	assert.Equal(t, FormatJSON, FormatFor("a.json"))
	assert.Equal(t, FormatJSON, FormatFor("script"))
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "m.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"name":"new_buffer","arg":0,"argstr":""}]`), 0o644))

	cmds, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []Command{{Name: "new_buffer"}}, cmds)

	_, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, fs.ErrNotExist)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("nope"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse script")
}
