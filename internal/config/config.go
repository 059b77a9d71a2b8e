// Package config loads editor settings from config.yaml and SCRIBE_*
// environment variables.
package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"
	"github.com/willibrandon/scribe/internal/logger"
	"github.com/willibrandon/scribe/internal/ui"
	"github.com/willibrandon/scribe/internal/ui/styles"
)

// Config represents the root configuration structure
type Config struct {
	Editor EditorConfig        `mapstructure:"editor"`
	Keys   map[string][]string `mapstructure:"keys"`
	UI     UIConfig            `mapstructure:"ui"`
	Log    LogConfig           `mapstructure:"log"`
	Debug  bool                `mapstructure:"debug"`
}

// EditorConfig holds editing behaviour
type EditorConfig struct {
	InsertMode  bool `mapstructure:"insert_mode"`
	PageOverlap int  `mapstructure:"page_overlap"`
}

// UIConfig holds user interface preferences
type UIConfig struct {
	Theme string `mapstructure:"theme"`
}

// LogConfig holds log file settings
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// LoadConfig loads configuration from YAML file and environment variables
func LoadConfig() (*Config, error) {
	v := newViper()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.config/scribe")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			// Config file not found, use defaults and environment
			return createDefaultConfig(v)
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}
	return unmarshal(v)
}

// LoadConfigFromPath loads the configuration file at path. Unlike LoadConfig a
// missing file is an error.
func LoadConfigFromPath(path string) (*Config, error) {
	v := newViper()
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}
	return unmarshal(v)
}

func newViper() *viper.Viper {
	v := viper.New()

	// Environment variable support
	v.SetEnvPrefix("SCRIBE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	applyDefaults(v)
	return v
}

func unmarshal(v *viper.Viper) (*Config, error) {
	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := ValidateConfig(&config); err != nil {
		return nil, err
	}

	logger.Debug("config loaded", "file", v.ConfigFileUsed())
	return &config, nil
}

// Default returns the configuration used when nothing is configured.
func Default() *Config {
	cfg, _ := createDefaultConfig(newViperWithoutEnv())
	return cfg
}

func newViperWithoutEnv() *viper.Viper {
	v := viper.New()
	applyDefaults(v)
	return v
}

// createDefaultConfig creates a default configuration when no config file exists
func createDefaultConfig(v *viper.Viper) (*Config, error) {
	config := &Config{
		Editor: EditorConfig{
			InsertMode:  v.GetBool("editor.insert_mode"),
			PageOverlap: v.GetInt("editor.page_overlap"),
		},
		UI: UIConfig{
			Theme: v.GetString("ui.theme"),
		},
		Log: LogConfig{
			File:  v.GetString("log.file"),
			Level: v.GetString("log.level"),
		},
		Debug: v.GetBool("debug"),
	}

	if err := ValidateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// ValidateConfig validates the configuration values
func ValidateConfig(cfg *Config) error {
	if cfg.Editor.PageOverlap < 0 {
		return fmt.Errorf("editor.page_overlap must be >= 0, got %d", cfg.Editor.PageOverlap)
	}

	if !slices.Contains(styles.Themes, cfg.UI.Theme) {
		return fmt.Errorf("ui.theme must be one of: %v, got %s", styles.Themes, cfg.UI.Theme)
	}

	if _, err := logger.ParseLevel(cfg.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}

	if _, err := cfg.KeyMap(); err != nil {
		return fmt.Errorf("keys: %w", err)
	}

	return nil
}

// KeyMap returns the default key bindings with the configured overrides
// applied.
func (c *Config) KeyMap() (ui.KeyMap, error) {
	km := ui.DefaultKeyMap()
	if err := km.Apply(c.Keys); err != nil {
		return ui.KeyMap{}, err
	}
	return km, nil
}

// LogLevel returns the configured level, raised to debug when Debug is set.
func (c *Config) LogLevel() logger.LogLevel {
	if c.Debug {
		return logger.LevelDebug
	}
	level, _ := logger.ParseLevel(c.Log.Level)
	return level
}

// applyDefaults sets default configuration values
func applyDefaults(v *viper.Viper) {
	// Editor defaults
	v.SetDefault("editor.insert_mode", true)
	v.SetDefault("editor.page_overlap", 1)

	// UI defaults
	v.SetDefault("ui.theme", "dark")

	// Log defaults
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	// Debug default
	v.SetDefault("debug", false)
}
