package feed

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/mglynnhenley/loom/internal/errors"
	"github.com/mglynnhenley/loom/internal/event"
	"github.com/mglynnhenley/loom/internal/widget"
)

// debounceWindow coalesces bursts of filesystem events. Backends and
// editors commonly produce several events for one atomic write.
const debounceWindow = 50 * time.Millisecond

// Watcher follows a snapshot file with fsnotify and emits the event
// delta every time the backend rewrites it. The file's directory is
// watched rather than the file itself so atomic rename-replace writes
// keep working.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher
	events  chan event.Event
	stopCh  chan struct{}

	mu     sync.Mutex
	prev   *Snapshot
	closed bool
}

// NewWatcher creates a watcher for a snapshot file path. The file does
// not need to exist yet; the first write will produce the full event
// set.
func NewWatcher(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.NewFeedError("watcher", "creating filesystem watcher", err)
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		_ = fsw.Close()
		return nil, errors.NewFeedError("watcher", "watching snapshot directory", err)
	}

	return &Watcher{
		path:    path,
		watcher: fsw,
		events:  make(chan event.Event),
		stopCh:  make(chan struct{}),
	}, nil
}

// Events implements Source.
func (w *Watcher) Events() <-chan event.Event { return w.events }

// Manifest implements Source, returning the manifest from the most
// recent snapshot that carried one.
func (w *Watcher) Manifest() (*widget.Manifest, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.prev == nil || w.prev.Widgets == nil {
		return nil, false
	}
	return w.prev.Widgets, true
}

// Close implements Source.
func (w *Watcher) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return nil
	}
	w.closed = true
	close(w.stopCh)
	return w.watcher.Close()
}

// Run implements Source. It emits the current snapshot state first,
// then the delta after every rewrite, until the context is canceled or
// Close is called.
func (w *Watcher) Run(ctx context.Context) error {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return errors.NewFeedError("watcher", "run on closed feed", errors.ErrFeedClosed)
	}
	w.mu.Unlock()
	defer close(w.events)

	// Initial state. A missing file is fine in follow mode; the backend
	// may not have started writing yet.
	if snap, err := ReadSnapshot(w.path); err == nil {
		if err := w.emitDiff(ctx, snap); err != nil {
			return err
		}
	} else if !errors.Is(err, errors.ErrSnapshotNotFound) {
		return err
	}

	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil

		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = true
			debounce.Reset(debounceWindow)

		case <-debounce.C:
			if !pending {
				continue
			}
			pending = false

			snap, err := ReadSnapshot(w.path)
			if err != nil {
				// Partial writes parse as garbage; wait for the next
				// event rather than failing the stream.
				continue
			}
			if err := w.emitDiff(ctx, snap); err != nil {
				return err
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return errors.NewFeedError("watcher", "filesystem watcher failed", err)
		}
	}
}

// emitDiff publishes the delta between the previous snapshot and snap.
func (w *Watcher) emitDiff(ctx context.Context, snap *Snapshot) error {
	w.mu.Lock()
	prev := w.prev
	w.prev = snap
	w.mu.Unlock()

	for _, ev := range snap.Diff(prev) {
		select {
		case w.events <- ev:
		case <-ctx.Done():
			return ctx.Err()
		case <-w.stopCh:
			return nil
		}
	}
	return nil
}
