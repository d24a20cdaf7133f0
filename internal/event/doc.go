// Package event defines the progress feed events for loom.
//
// The dashboard generation pipeline runs in the fabric backend; loom only
// observes it. Every observable fact about a running generation is
// expressed as an event here: a stage changing status, the overall percent
// moving, stage detail data arriving. Feed sources (the demo simulator,
// the snapshot watcher) emit events on a channel; the TUI folds them into
// a progress.State snapshot.
//
// Events are identified by "category.action" type strings, e.g.
// "generation.started" or "stage.status".
package event
