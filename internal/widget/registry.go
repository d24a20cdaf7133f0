package widget

import "sync"

// Registry maps widget type keys to renderers. It is an explicit,
// constructed object: the rendering root builds one, registers the card
// set, and passes it down. There is no removal operation; a registry
// lives as long as the process that built it.
//
// Registration is last-writer-wins with no duplicate detection: the most
// recent Register call for a key is the one Get returns. Types() returns
// keys in first-registration order; that order is an implementation
// convenience, not a contract.
type Registry struct {
	mu        sync.RWMutex
	order     []string
	renderers map[string]Renderer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		renderers: make(map[string]Renderer),
	}
}

// Register stores the association from a type key to a renderer,
// silently overwriting any prior entry for the same key.
func (r *Registry) Register(kind string, renderer Renderer) {
	if kind == "" || renderer == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.renderers[kind]; !exists {
		r.order = append(r.order, kind)
	}
	r.renderers[kind] = renderer
}

// Get returns the renderer for a type key. The boolean is false for
// unregistered types; callers render nothing or a fallback, never crash.
func (r *Registry) Get(kind string) (Renderer, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	renderer, ok := r.renderers[kind]
	return renderer, ok
}

// Types returns the currently registered type keys in first-registration
// order.
func (r *Registry) Types() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Len returns the number of distinct registered types.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.renderers)
}
