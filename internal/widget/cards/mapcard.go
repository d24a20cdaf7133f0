package cards

import (
	"sync"

	"github.com/mglynnhenley/loom/internal/errors"
	"github.com/mglynnhenley/loom/internal/mapview"
	"github.com/mglynnhenley/loom/internal/tui/styles"
	"github.com/mglynnhenley/loom/internal/widget"
)

// MapRenderer renders the map card. Unlike the other cards it owns a
// side effect: constructing the external map widget once the card's
// viewport is large enough, via a mapview.Lifecycle per card instance.
// ReleaseAll must run on the hosting view's exit path.
type MapRenderer struct {
	mu         sync.Mutex
	provider   mapview.Provider
	token      string
	lifecycles map[string]*mapview.Lifecycle // card ID -> lifecycle
}

// NewMapRenderer creates a map renderer using the configured provider.
// A nil provider falls back to the bundled ASCII provider.
func NewMapRenderer(opts MapOptions) *MapRenderer {
	provider := opts.Provider
	if provider == nil {
		provider = mapview.NewASCIIProvider()
	}
	return &MapRenderer{
		provider:   provider,
		token:      opts.Token,
		lifecycles: make(map[string]*mapview.Lifecycle),
	}
}

// Kind implements widget.Renderer.
func (*MapRenderer) Kind() string { return widget.TypeMap }

// Render implements widget.Renderer.
func (r *MapRenderer) Render(state *widget.RenderState) string {
	payload, ok := state.Payload.(widget.MapPayload)
	if !ok {
		return errorCard("Map Error", "unexpected payload shape", state.Width, state.Focused)
	}

	lc := r.lifecycle(state.Card.ID)

	width := state.Width - 4
	height := BodyHeight(state.Card.Size)

	markers := make([]mapview.MarkerSpec, 0, len(payload.Markers))
	for _, m := range payload.Markers {
		markers = append(markers, mapview.MarkerSpec{Label: m.Label, Lat: m.Lat, Lng: m.Lng})
	}
	cfg := mapview.Config{
		Token:     r.token,
		CenterLat: payload.Center.Lat,
		CenterLng: payload.Center.Lng,
		Zoom:      payload.Zoom,
		Markers:   markers,
	}

	// The render pass doubles as the size observation: the map widget is
	// constructed the first time the card sees a viewport it fits in.
	lc.Observe(mapview.Viewport{Width: width, Height: height}, cfg)

	switch lc.Phase() {
	case mapview.PhaseError:
		return errorCard("Map Error", errors.UserMessage(lc.Err()), state.Width, state.Focused)
	case mapview.PhaseLoaded:
		handle, ok := lc.Handle()
		if !ok {
			return errorCard("Map Error", "map released", state.Width, state.Focused)
		}
		return frame(payload.Title, handle.Render(width, height), state.Width, state.Focused)
	default:
		body := styles.Muted.Render("Loading map…")
		return frame(payload.Title, body, state.Width, state.Focused)
	}
}

// lifecycle returns the lifecycle for a card instance, creating it on
// first use.
func (r *MapRenderer) lifecycle(cardID string) *mapview.Lifecycle {
	r.mu.Lock()
	defer r.mu.Unlock()

	lc, ok := r.lifecycles[cardID]
	if !ok {
		lc = mapview.NewLifecycle(r.provider)
		r.lifecycles[cardID] = lc
	}
	return lc
}

// ReleaseAll tears down every acquired map handle. Called on the
// dashboard view's exit path; idempotent.
func (r *MapRenderer) ReleaseAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for id, lc := range r.lifecycles {
		if err := lc.Release(); err != nil {
			errs = append(errs, err)
		}
		delete(r.lifecycles, id)
	}
	return errors.Join(errs...)
}
