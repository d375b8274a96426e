// Package config loads and validates scrollgate configuration via viper.
package config

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the complete scrollgate configuration
type Config struct {
	Logging LoggingConfig `mapstructure:"logging"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Trace   TraceConfig   `mapstructure:"trace"`
}

// LoggingConfig controls structured log output
type LoggingConfig struct {
	// Level is the minimum level to log: "debug", "info", "warn", "error"
	Level string `mapstructure:"level"`
	// Dir is the directory for the JSON log file; empty logs to stderr
	Dir string `mapstructure:"dir"`
}

// TUIConfig controls the demo TUI behavior
type TUIConfig struct {
	// ContentLines is the number of generated content lines in the viewport
	ContentLines int `mapstructure:"content_lines"`
	// ScrollbarWidth is the width of the page scrollbar in columns
	ScrollbarWidth int `mapstructure:"scrollbar_width"`
	// ShowStatusBar toggles the lock-state status bar
	ShowStatusBar bool `mapstructure:"show_status_bar"`
}

// TraceConfig controls the trace subcommand
type TraceConfig struct {
	// Holders is the number of concurrent consumers to interleave
	Holders int `mapstructure:"holders"`
}

// Default returns the built-in configuration values
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level: "info",
			Dir:   "",
		},
		TUI: TUIConfig{
			ContentLines:   400,
			ScrollbarWidth: 1,
			ShowStatusBar:  true,
		},
		Trace: TraceConfig{
			Holders: 3,
		},
	}
}

// SetDefaults registers the built-in values with viper so they apply even
// without a config file
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.dir", defaults.Logging.Dir)

	viper.SetDefault("tui.content_lines", defaults.TUI.ContentLines)
	viper.SetDefault("tui.scrollbar_width", defaults.TUI.ScrollbarWidth)
	viper.SetDefault("tui.show_status_bar", defaults.TUI.ShowStatusBar)

	viper.SetDefault("trace.holders", defaults.Trace.Holders)
}

// Load unmarshals and validates the current viper state
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the path to the user's config directory
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "scrollgate")
	}
	// Fall back to ~/.config/scrollgate
	home, err := os.UserHomeDir()
	if err != nil {
		return ".scrollgate"
	}
	return filepath.Join(home, ".config", "scrollgate")
}

// ConfigFile returns the path to the config file
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}
