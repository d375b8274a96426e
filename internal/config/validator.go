package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "tui.scrollbar_width")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the list of valid log levels
func ValidLogLevels() []string {
	return []string{"debug", "info", "warn", "error"}
}

// Validate checks the Config for invalid values and returns all validation
// errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	if !slices.Contains(ValidLogLevels(), strings.ToLower(c.Logging.Level)) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.TUI.ContentLines < 1 {
		errors = append(errors, ValidationError{
			Field:   "tui.content_lines",
			Value:   c.TUI.ContentLines,
			Message: "must be at least 1",
		})
	}

	if c.TUI.ScrollbarWidth < 0 {
		errors = append(errors, ValidationError{
			Field:   "tui.scrollbar_width",
			Value:   c.TUI.ScrollbarWidth,
			Message: "must not be negative",
		})
	}

	if c.Trace.Holders < 1 || c.Trace.Holders > 6 {
		errors = append(errors, ValidationError{
			Field:   "trace.holders",
			Value:   c.Trace.Holders,
			Message: "must be between 1 and 6 (the trace enumerates every teardown order)",
		})
	}

	return errors
}
