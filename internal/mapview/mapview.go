// Package mapview manages the lifecycle of the external map widget shown
// by the map card. Tile rendering itself is delegated to a Provider; this
// package owns the part the dashboard is responsible for: acquiring a map
// handle once the host viewport is big enough, surfacing configuration and
// initialization failures as recoverable errors, and releasing the handle
// deterministically on every exit path.
//
// The lifecycle is a small one-way state machine:
//
//	uninitialized → loading → loaded
//	                       ↘ error
//
// There is no retry: an error is terminal for the hosting view's lifetime,
// and the card renders it as inline text.
package mapview

import (
	"fmt"
	"sync"

	"github.com/mglynnhenley/loom/internal/errors"
)

// Phase is the lifecycle state of the map widget.
type Phase int

// Lifecycle phases.
const (
	PhaseUninitialized Phase = iota
	PhaseLoading
	PhaseLoaded
	PhaseError
)

// String returns the phase name for logs and tests.
func (p Phase) String() string {
	switch p {
	case PhaseUninitialized:
		return "uninitialized"
	case PhaseLoading:
		return "loading"
	case PhaseLoaded:
		return "loaded"
	case PhaseError:
		return "error"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Config carries what a provider needs to construct a map widget.
type Config struct {
	// Token is the map provider access token. Its absence is a
	// recoverable, user-visible error, never a crash.
	Token string

	// MinWidth and MinHeight are the smallest viewport (in cells) the
	// map will initialize into. Zero values fall back to defaults.
	MinWidth  int
	MinHeight int

	// Center, Zoom and Markers describe the view to construct.
	CenterLat float64
	CenterLng float64
	Zoom      int
	Markers   []MarkerSpec
}

// MarkerSpec is a labeled point handed to the provider.
type MarkerSpec struct {
	Label string
	Lat   float64
	Lng   float64
}

// Default minimum viewport for map initialization.
const (
	DefaultMinWidth  = 20
	DefaultMinHeight = 6
)

// Viewport is the size the hosting card observed for its map area.
type Viewport struct {
	Width  int
	Height int
}

// fits reports whether the viewport can host a map under cfg's minimums.
func (v Viewport) fits(cfg Config) bool {
	minW := cfg.MinWidth
	if minW <= 0 {
		minW = DefaultMinWidth
	}
	minH := cfg.MinHeight
	if minH <= 0 {
		minH = DefaultMinHeight
	}
	return v.Width >= minW && v.Height >= minH
}

// Handle is an acquired map widget instance.
type Handle interface {
	// Render draws the map at the given size.
	Render(width, height int) string

	// Release tears the instance down. Safe to call more than once.
	Release() error
}

// Provider constructs map widget instances. Implementations wrap the
// actual mapping library; the bundled ASCII provider stands in for it.
type Provider interface {
	// Name identifies the provider in logs and config.
	Name() string

	// Acquire constructs a map for the viewport. It must validate cfg
	// (in particular the token) and fail with a user-facing error
	// rather than panicking.
	Acquire(vp Viewport, cfg Config) (Handle, error)
}

// Lifecycle drives the uninitialized → loading → (loaded | error) state
// machine for one hosting card. Safe for concurrent use; the TUI calls
// Observe from its update loop and Release from its teardown path.
type Lifecycle struct {
	mu       sync.Mutex
	provider Provider
	phase    Phase
	handle   Handle
	err      error
}

// NewLifecycle creates a lifecycle in the uninitialized phase.
func NewLifecycle(provider Provider) *Lifecycle {
	return &Lifecycle{provider: provider}
}

// Observe reports the current viewport for the hosting card. The first
// observation large enough to host the map moves the lifecycle to loading
// and acquires a handle; failures move it to error permanently. Later
// observations in a terminal phase are no-ops.
func (l *Lifecycle) Observe(vp Viewport, cfg Config) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.phase != PhaseUninitialized {
		return
	}
	if !vp.fits(cfg) {
		return
	}

	l.phase = PhaseLoading

	handle, err := l.acquire(vp, cfg)
	if err != nil {
		l.phase = PhaseError
		l.err = err
		return
	}
	l.handle = handle
	l.phase = PhaseLoaded
}

// acquire calls the provider, converting panics during construction into
// errors. The external library is not trusted across this boundary.
func (l *Lifecycle) acquire(vp Viewport, cfg Config) (handle Handle, err error) {
	defer func() {
		if r := recover(); r != nil {
			handle = nil
			err = errors.NewMapError(fmt.Sprintf("provider panicked: %v", r), nil)
		}
	}()

	if l.provider == nil {
		return nil, errors.NewMapError("no provider configured", nil)
	}
	handle, err = l.provider.Acquire(vp, cfg)
	if err != nil {
		return nil, errors.NewMapError("initialization failed", err)
	}
	return handle, nil
}

// Phase returns the current lifecycle phase.
func (l *Lifecycle) Phase() Phase {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.phase
}

// Handle returns the acquired handle when the lifecycle is loaded.
func (l *Lifecycle) Handle() (Handle, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.phase != PhaseLoaded {
		return nil, false
	}
	return l.handle, true
}

// Err returns the terminal error when the lifecycle is in the error phase.
func (l *Lifecycle) Err() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.err
}

// Release tears down the acquired handle, if any. Idempotent: it runs on
// every exit path of the hosting view, so double release must be safe.
func (l *Lifecycle) Release() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.handle == nil {
		return nil
	}
	handle := l.handle
	l.handle = nil
	l.phase = PhaseUninitialized
	return handle.Release()
}
