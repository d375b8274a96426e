package config

import (
	"strings"
	"testing"

	"github.com/spf13/viper"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()

	if errs := cfg.Validate(); len(errs) != 0 {
		t.Errorf("Default() config has validation errors: %v", ValidationErrors(errs))
	}
}

func TestLoadUsesDefaults(t *testing.T) {
	resetViper(t)
	SetDefaults()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	want := Default()
	if cfg.Logging.Level != want.Logging.Level {
		t.Errorf("logging.level = %q, want %q", cfg.Logging.Level, want.Logging.Level)
	}
	if cfg.TUI.ContentLines != want.TUI.ContentLines {
		t.Errorf("tui.content_lines = %d, want %d", cfg.TUI.ContentLines, want.TUI.ContentLines)
	}
	if cfg.Trace.Holders != want.Trace.Holders {
		t.Errorf("trace.holders = %d, want %d", cfg.Trace.Holders, want.Trace.Holders)
	}
}

func TestLoadOverride(t *testing.T) {
	resetViper(t)
	SetDefaults()
	viper.Set("logging.level", "debug")
	viper.Set("tui.scrollbar_width", 2)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("logging.level = %q, want %q", cfg.Logging.Level, "debug")
	}
	if cfg.TUI.ScrollbarWidth != 2 {
		t.Errorf("tui.scrollbar_width = %d, want 2", cfg.TUI.ScrollbarWidth)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	resetViper(t)
	SetDefaults()
	viper.Set("logging.level", "loud")
	viper.Set("trace.holders", 0)

	_, err := Load()
	if err == nil {
		t.Fatal("Load() accepted invalid config")
	}
	if !strings.Contains(err.Error(), "logging.level") {
		t.Errorf("error %q does not mention logging.level", err)
	}
	if !strings.Contains(err.Error(), "trace.holders") {
		t.Errorf("error %q does not mention trace.holders", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *Config)
		wantField string
	}{
		{
			name:      "bad log level",
			mutate:    func(c *Config) { c.Logging.Level = "verbose" },
			wantField: "logging.level",
		},
		{
			name:      "zero content lines",
			mutate:    func(c *Config) { c.TUI.ContentLines = 0 },
			wantField: "tui.content_lines",
		},
		{
			name:      "negative scrollbar width",
			mutate:    func(c *Config) { c.TUI.ScrollbarWidth = -1 },
			wantField: "tui.scrollbar_width",
		},
		{
			name:      "too many trace holders",
			mutate:    func(c *Config) { c.Trace.Holders = 7 },
			wantField: "trace.holders",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			errs := cfg.Validate()
			if len(errs) != 1 {
				t.Fatalf("got %d validation errors, want 1: %v", len(errs), ValidationErrors(errs))
			}
			if errs[0].Field != tt.wantField {
				t.Errorf("error field = %q, want %q", errs[0].Field, tt.wantField)
			}
		})
	}
}

func TestValidationErrorsFormatting(t *testing.T) {
	errs := ValidationErrors{
		{Field: "a", Value: 1, Message: "bad"},
		{Field: "b", Value: 2, Message: "worse"},
	}

	msg := errs.Error()
	if !strings.Contains(msg, "2 validation errors") {
		t.Errorf("message %q missing error count", msg)
	}
	if !strings.Contains(msg, "a: bad") || !strings.Contains(msg, "b: worse") {
		t.Errorf("message %q missing individual errors", msg)
	}
}
