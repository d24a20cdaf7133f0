// Package feed provides the progress sources the TUI consumes. A Source
// emits the generation's progress as events on a channel: either a
// scripted simulation (loom demo) or a backend-written snapshot file,
// optionally followed live via fsnotify (loom view --follow).
package feed

import (
	"context"

	"github.com/mglynnhenley/loom/internal/event"
	"github.com/mglynnhenley/loom/internal/widget"
)

// Source is a stream of generation progress events.
type Source interface {
	// Run produces events until the generation finishes, the context is
	// canceled, or Close is called. The events channel is closed when
	// Run returns.
	Run(ctx context.Context) error

	// Events returns the channel Run publishes to.
	Events() <-chan event.Event

	// Manifest returns the assembled widget manifest once the source
	// has seen one. The second return is false until then.
	Manifest() (*widget.Manifest, bool)

	// Close stops the source. Safe to call more than once.
	Close() error
}
