package feed

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/mglynnhenley/loom/internal/errors"
	"github.com/mglynnhenley/loom/internal/event"
)

func writeSnapshotTo(t *testing.T, path string, snap *Snapshot) {
	t.Helper()
	data, err := json.Marshal(snap)
	if err != nil {
		t.Fatal(err)
	}
	// Atomic rename-replace, the way a backend writes the snapshot.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.Rename(tmp, path); err != nil {
		t.Fatal(err)
	}
}

func nextEvent(t *testing.T, ch <-chan event.Event) event.Event {
	t.Helper()
	select {
	case ev, ok := <-ch:
		if !ok {
			t.Fatal("events channel closed")
		}
		return ev
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for event")
		return nil
	}
}

func TestWatcherFollowsSnapshot(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progress.json")

	writeSnapshotTo(t, path, &Snapshot{
		GenerationID: "gen-1",
		Percent:      10,
		Message:      "Collecting your activity...",
		Stages:       map[string]string{"data": "active"},
	})

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() = %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// Initial state comes out as the full event set.
	if ev := nextEvent(t, w.Events()); ev.EventType() != "generation.started" {
		t.Errorf("first event = %q, want generation.started", ev.EventType())
	}
	if ev := nextEvent(t, w.Events()); ev.EventType() != "stage.status" {
		t.Errorf("second event = %q, want stage.status", ev.EventType())
	}
	if ev := nextEvent(t, w.Events()); ev.EventType() != "progress.updated" {
		t.Errorf("third event = %q, want progress.updated", ev.EventType())
	}

	// Rewrite advances the generation; only the delta comes out.
	writeSnapshotTo(t, path, &Snapshot{
		GenerationID: "gen-1",
		Step:         1,
		Percent:      30,
		Message:      "Detecting patterns...",
		Stages:       map[string]string{"data": "complete", "patterns": "active"},
	})

	types := map[string]int{}
	for i := 0; i < 3; i++ {
		types[nextEvent(t, w.Events()).EventType()]++
	}
	if types["stage.status"] != 2 || types["progress.updated"] != 1 {
		t.Errorf("delta event types = %v", types)
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after Close")
	}
}

func TestWatcherMissingFileWaits(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progress.json")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() = %v", err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// No file yet: nothing should be emitted.
	select {
	case ev := <-w.Events():
		t.Fatalf("unexpected event before file exists: %v", ev)
	case <-time.After(200 * time.Millisecond):
	}

	writeSnapshotTo(t, path, &Snapshot{
		GenerationID: "gen-1",
		Stages:       map[string]string{"data": "active"},
	})

	if ev := nextEvent(t, w.Events()); ev.EventType() != "generation.started" {
		t.Errorf("first event = %q, want generation.started", ev.EventType())
	}

	w.Close()
	<-done
}

func TestWatcherRunAfterClose(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progress.json")

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close() = %v", err)
	}

	err = w.Run(context.Background())
	if !errors.Is(err, errors.ErrFeedClosed) {
		t.Errorf("Run() after Close = %v, want ErrFeedClosed", err)
	}
	var feedErr *errors.FeedError
	if !errors.As(err, &feedErr) {
		t.Errorf("Run() after Close = %T, want *FeedError", err)
	}
}

func TestWatcherManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "progress.json")

	writeSnapshotTo(t, path, &Snapshot{
		GenerationID: "gen-1",
		Percent:      100,
		Completed:    true,
		Success:      true,
		Widgets:      DemoManifest("gen-1"),
	})

	w, err := NewWatcher(path)
	if err != nil {
		t.Fatalf("NewWatcher() = %v", err)
	}
	defer w.Close()

	if _, ok := w.Manifest(); ok {
		t.Error("Manifest() available before Run")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = w.Run(ctx) }()

	// Drain the initial event set; afterwards the manifest is available.
	for {
		ev := nextEvent(t, w.Events())
		if ev.EventType() == "generation.completed" {
			break
		}
	}

	manifest, ok := w.Manifest()
	if !ok {
		t.Fatal("Manifest() unavailable after completed snapshot")
	}
	if manifest.GenerationID != "gen-1" {
		t.Errorf("GenerationID = %q, want gen-1", manifest.GenerationID)
	}
}
