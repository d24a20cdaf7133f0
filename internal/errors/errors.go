// Package errors provides centralized error definitions and error handling
// utilities for loom. It defines domain-specific errors for the subsystems
// that can fail (configuration, the progress feed, widget payload decoding,
// the map provider), semantic error types for common conditions, and
// classification helpers that decide whether an error is rendered inline in
// the UI or only logged.
//
// Creating errors:
//
//	// Domain-specific error
//	err := errors.NewMapError("provider init failed", base)
//
//	// Semantic error
//	err := errors.NewNotFoundError("widget type", "calendar-card")
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrMapTokenMissing) { ... }
//
//	var payloadErr *errors.PayloadError
//	if errors.As(err, &payloadErr) { ... }
//
//	if errors.IsUserFacing(err) { ... }
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Sentinel errors for well-known failure conditions.
var (
	// ErrMapTokenMissing indicates the map provider access token is not
	// configured. Rendered inline in the map card, never fatal.
	ErrMapTokenMissing = errors.New("mapbox token not configured")

	// ErrMapViewportTooSmall indicates the host viewport cannot fit the
	// map widget yet.
	ErrMapViewportTooSmall = errors.New("viewport too small for map")

	// ErrFeedClosed indicates the progress feed has been closed.
	ErrFeedClosed = errors.New("progress feed closed")

	// ErrSnapshotNotFound indicates the progress snapshot file does not exist.
	ErrSnapshotNotFound = errors.New("progress snapshot not found")

	// ErrUnknownStage indicates a stage identifier outside the fixed list.
	ErrUnknownStage = errors.New("unknown stage identifier")

	// ErrUnknownWidgetType indicates a widget type with no registered renderer.
	ErrUnknownWidgetType = errors.New("unknown widget type")
)

// ConfigError represents an error in loom's configuration.
type ConfigError struct {
	Key     string // Configuration key that failed validation, if known
	Message string
	Err     error
}

// NewConfigError creates a ConfigError wrapping an underlying error.
func NewConfigError(message string, err error) *ConfigError {
	return &ConfigError{Message: message, Err: err}
}

// WithKey attaches the offending configuration key.
func (e *ConfigError) WithKey(key string) *ConfigError {
	e.Key = key
	return e
}

func (e *ConfigError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("config %s: %s", e.Key, e.Message)
	}
	return fmt.Sprintf("config: %s", e.Message)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// FeedError represents an error from a progress feed source.
type FeedError struct {
	Source  string // "simulator" or "watcher"
	Message string
	Err     error
}

// NewFeedError creates a FeedError wrapping an underlying error.
func NewFeedError(source, message string, err error) *FeedError {
	return &FeedError{Source: source, Message: message, Err: err}
}

func (e *FeedError) Error() string {
	return fmt.Sprintf("feed %s: %s", e.Source, e.Message)
}

func (e *FeedError) Unwrap() error { return e.Err }

// PayloadError represents a widget or stage payload that could not be
// decoded into its expected shape. It is user-facing: cards render it as
// inline error text instead of crashing the dashboard.
type PayloadError struct {
	Kind    string // Widget type or stage identifier the payload belongs to
	Message string
	Err     error
}

// NewPayloadError creates a PayloadError for the given payload kind.
func NewPayloadError(kind, message string, err error) *PayloadError {
	return &PayloadError{Kind: kind, Message: message, Err: err}
}

func (e *PayloadError) Error() string {
	return fmt.Sprintf("payload %s: %s", e.Kind, e.Message)
}

func (e *PayloadError) Unwrap() error { return e.Err }

// MapError represents a failure in the external map widget lifecycle.
// It is user-facing: the map card surfaces it as inline text, no retry.
type MapError struct {
	Message string
	Err     error
}

// NewMapError creates a MapError wrapping an underlying error.
func NewMapError(message string, err error) *MapError {
	return &MapError{Message: message, Err: err}
}

func (e *MapError) Error() string {
	return fmt.Sprintf("map: %s", e.Message)
}

func (e *MapError) Unwrap() error { return e.Err }

// NotFoundError indicates a requested resource does not exist.
type NotFoundError struct {
	Resource string // Type of resource (e.g., "widget type", "stage")
	ID       string // Identifier that was looked up
}

// NewNotFoundError creates a NotFoundError for the given resource and ID.
func NewNotFoundError(resource, id string) *NotFoundError {
	return &NotFoundError{Resource: resource, ID: id}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError indicates invalid input or state.
type ValidationError struct {
	Field   string
	Message string
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation %s: %s", e.Field, e.Message)
}

// IsUserFacing reports whether an error is safe and useful to surface in the
// UI. Payload and map errors become inline card text; configuration errors
// are shown on startup; everything else is internal and only logged.
func IsUserFacing(err error) bool {
	var payloadErr *PayloadError
	var mapErr *MapError
	var configErr *ConfigError
	var validationErr *ValidationError

	switch {
	case errors.As(err, &payloadErr),
		errors.As(err, &mapErr),
		errors.As(err, &configErr),
		errors.As(err, &validationErr):
		return true
	}

	return errors.Is(err, ErrMapTokenMissing) ||
		errors.Is(err, ErrUnknownWidgetType) ||
		errors.Is(err, ErrUnknownStage)
}

// IsNotFound reports whether an error indicates a missing resource.
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr) ||
		errors.Is(err, ErrSnapshotNotFound) ||
		errors.Is(err, ErrUnknownWidgetType) ||
		errors.Is(err, ErrUnknownStage)
}

// UserMessage returns a short message suitable for inline UI display.
// For non-user-facing errors it returns a generic message so internal
// details never leak into rendered cards.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if !IsUserFacing(err) {
		return "internal error"
	}
	if errors.Is(err, ErrMapTokenMissing) {
		return "Mapbox token not configured"
	}
	return err.Error()
}
