package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/MakeNowJust/heredoc"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/willibrandon/scribe/internal/logger"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFromPath(t *testing.T) {
	path := writeConfig(t, heredoc.Doc(`
		editor:
		  insert_mode: false
		  page_overlap: 3
		keys:
		  save: ["f2"]
		  quit: ["ctrl+x", "ctrl+q"]
		ui:
		  theme: light
		log:
		  level: warn
	`))

	cfg, err := LoadConfigFromPath(path)
	require.NoError(t, err)

	assert.False(t, cfg.Editor.InsertMode)
	assert.Equal(t, 3, cfg.Editor.PageOverlap)
	assert.Equal(t, "light", cfg.UI.Theme)
	assert.Equal(t, logger.LevelWarn, cfg.LogLevel())

	km, err := cfg.KeyMap()
	require.NoError(t, err)
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyF2}, km.Save))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlX}, km.Quit))
	assert.True(t, key.Matches(tea.KeyMsg{Type: tea.KeyCtrlO}, km.SaveAs), "untouched bindings keep defaults")
}

func TestDefaultsApplyToMissingKeys(t *testing.T) {
	path := writeConfig(t, "debug: true\n")

	cfg, err := LoadConfigFromPath(path)
	require.NoError(t, err)

	assert.True(t, cfg.Editor.InsertMode)
	assert.Equal(t, 1, cfg.Editor.PageOverlap)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, logger.LevelDebug, cfg.LogLevel(), "debug raises the level")
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("SCRIBE_UI_THEME", "mono")
	t.Setenv("SCRIBE_EDITOR_PAGE_OVERLAP", "0")
	path := writeConfig(t, "ui:\n  theme: light\n")

	cfg, err := LoadConfigFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "mono", cfg.UI.Theme)
	assert.Equal(t, 0, cfg.Editor.PageOverlap)
}

func TestLoadConfigWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SCRIBE_EDITOR_INSERT_MODE", "false")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.False(t, cfg.Editor.InsertMode)
	assert.Equal(t, "dark", cfg.UI.Theme)
	assert.Empty(t, cfg.Keys)
}

func TestLoadConfigFromMissingPath(t *testing.T) {
	_, err := LoadConfigFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Editor: EditorConfig{InsertMode: true, PageOverlap: 1},
			UI:     UIConfig{Theme: "dark"},
			Log:    LogConfig{Level: "info"},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"negative overlap", func(c *Config) { c.Editor.PageOverlap = -1 }, "editor.page_overlap"},
		{"unknown theme", func(c *Config) { c.UI.Theme = "neon" }, "ui.theme"},
		{"unknown level", func(c *Config) { c.Log.Level = "loud" }, "log.level"},
		{"unknown action", func(c *Config) { c.Keys = map[string][]string{"fly": {"f9"}} }, "keys: unknown key action"},
		{"empty binding", func(c *Config) { c.Keys = map[string][]string{"save": nil} }, "has no keys"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := ValidateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
