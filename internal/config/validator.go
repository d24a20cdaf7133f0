package config

import (
	"fmt"
	"slices"
	"strings"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "feed.tick_ms")
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

// Card width bounds. These must match what the dashboard grid can lay
// out without wrapping borders.
const (
	minCardWidthLimit = 20
	maxCardWidthLimit = 80
)

// Validate checks the Config for invalid values and returns all validation errors found
func (c *Config) Validate() []ValidationError {
	var errors []ValidationError

	errors = append(errors, c.validateTUI()...)
	errors = append(errors, c.validateMap()...)
	errors = append(errors, c.validateFeed()...)
	errors = append(errors, c.validateLogging()...)

	return errors
}

// validateTUI validates the TUIConfig
func (c *Config) validateTUI() []ValidationError {
	var errors []ValidationError

	if c.TUI.Theme == "" {
		errors = append(errors, ValidationError{
			Field:   "tui.theme",
			Value:   c.TUI.Theme,
			Message: "must not be empty",
		})
	}

	// 0 means use default, which is valid.
	if c.TUI.MinCardWidth != 0 {
		if c.TUI.MinCardWidth < minCardWidthLimit {
			errors = append(errors, ValidationError{
				Field:   "tui.min_card_width",
				Value:   c.TUI.MinCardWidth,
				Message: fmt.Sprintf("must be at least %d", minCardWidthLimit),
			})
		}
		if c.TUI.MinCardWidth > maxCardWidthLimit {
			errors = append(errors, ValidationError{
				Field:   "tui.min_card_width",
				Value:   c.TUI.MinCardWidth,
				Message: fmt.Sprintf("must be at most %d", maxCardWidthLimit),
			})
		}
	}

	return errors
}

// validateMap validates the MapConfig
func (c *Config) validateMap() []ValidationError {
	var errors []ValidationError

	if c.Map.Provider != "" && !IsValidMapProvider(c.Map.Provider) {
		errors = append(errors, ValidationError{
			Field:   "map.provider",
			Value:   c.Map.Provider,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidMapProviders(), ", ")),
		})
	}

	if c.Map.MinWidth < 0 {
		errors = append(errors, ValidationError{
			Field:   "map.min_width",
			Value:   c.Map.MinWidth,
			Message: "must be non-negative",
		})
	}
	if c.Map.MinHeight < 0 {
		errors = append(errors, ValidationError{
			Field:   "map.min_height",
			Value:   c.Map.MinHeight,
			Message: "must be non-negative",
		})
	}

	return errors
}

// validateFeed validates the FeedConfig
func (c *Config) validateFeed() []ValidationError {
	var errors []ValidationError

	if c.Feed.SnapshotPath == "" {
		errors = append(errors, ValidationError{
			Field:   "feed.snapshot_path",
			Value:   c.Feed.SnapshotPath,
			Message: "must not be empty",
		})
	}

	if c.Feed.TickMs < 0 {
		errors = append(errors, ValidationError{
			Field:   "feed.tick_ms",
			Value:   c.Feed.TickMs,
			Message: "must be non-negative",
		})
	}

	// Ticks above ten seconds make the demo look broken rather than slow.
	const maxTickMs = 10000
	if c.Feed.TickMs > maxTickMs {
		errors = append(errors, ValidationError{
			Field:   "feed.tick_ms",
			Value:   c.Feed.TickMs,
			Message: fmt.Sprintf("exceeds maximum of %d", maxTickMs),
		})
	}

	return errors
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errors []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), c.Logging.Level) {
		errors = append(errors, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	return errors
}
