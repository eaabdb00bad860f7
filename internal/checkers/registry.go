package checkers

import (
	"fmt"
	"sync"

	"bennypowers.dev/checkbridge/internal/collections"
	"bennypowers.dev/checkbridge/internal/documents"
	"bennypowers.dev/checkbridge/internal/log"
)

// Registry owns the framework's checker state: the ordered registration
// list, the disabled-checker exclusion set, per-document checker selection,
// per-document display-mode flags, and the deferred re-check queue.
type Registry struct {
	mu       sync.RWMutex
	checkers map[string]Checker
	order    *collections.OrderedSet[string]
	disabled *collections.OrderedSet[string]
	selected map[string][]string
	display  collections.Set[string]
	pending  *collections.OrderedSet[string]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		checkers: make(map[string]Checker),
		order:    collections.NewOrderedSet[string](),
		disabled: collections.NewOrderedSet[string](),
		selected: make(map[string][]string),
		display:  collections.NewSet[string](),
		pending:  collections.NewOrderedSet[string](),
	}
}

// Teardown drops all registrations, selections, display flags and queued
// checks, returning the registry to its initial state
func (r *Registry) Teardown() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers = make(map[string]Checker)
	r.order.Clear()
	r.disabled.Clear()
	r.selected = make(map[string][]string)
	r.display = collections.NewSet[string]()
	r.pending.Clear()
}

// Register adds a checker to the registration list. Re-registering a name
// replaces the checker but keeps its position.
func (r *Registry) Register(c Checker) error {
	if c == nil || c.Name() == "" {
		return fmt.Errorf("checker must have a name")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checkers[c.Name()] = c
	r.order.Add(c.Name())
	return nil
}

// Unregister removes a checker from the registration list entirely, along
// with any selections that reference it
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.checkers, name)
	r.order.Remove(name)
	r.disabled.Remove(name)
	for uri, chain := range r.selected {
		r.selected[uri] = removeName(chain, name)
		if len(r.selected[uri]) == 0 {
			delete(r.selected, uri)
		}
	}
}

// Registered reports whether a checker name is in the registration list
func (r *Registry) Registered(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.order.Has(name)
}

// Names returns the registered checker names in registration order
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.order.Members()
}

// Disable adds a checker to the exclusion list; disabled checkers never run
func (r *Registry) Disable(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disabled.Add(name)
}

// Enable removes a checker from the exclusion list
func (r *Registry) Enable(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.disabled.Remove(name)
}

// Disabled reports whether a checker is on the exclusion list
func (r *Registry) Disabled(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.disabled.Has(name)
}

// Select sets the checker chain for a document. The chain runs in order on
// each check. An empty call clears the selection.
func (r *Registry) Select(uri string, names ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(names) == 0 {
		delete(r.selected, uri)
		return
	}
	r.selected[uri] = append([]string(nil), names...)
}

// Selection returns the checker chain selected for a document, or nil when
// no explicit selection exists
func (r *Registry) Selection(uri string) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	chain := r.selected[uri]
	if chain == nil {
		return nil
	}
	return append([]string(nil), chain...)
}

// ClearSelection removes the document's checker selection
func (r *Registry) ClearSelection(uri string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.selected, uri)
}

// SetDisplayMode turns the framework's display mode on or off for a document
func (r *Registry) SetDisplayMode(uri string, on bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if on {
		r.display.Add(uri)
	} else {
		r.display.Remove(uri)
	}
}

// DisplayMode reports whether the display mode is active for a document
func (r *Registry) DisplayMode(uri string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.display.Has(uri)
}

// Run executes the document's checker chain synchronously and returns the
// collected results. With no explicit selection every registered, enabled,
// applicable checker runs in registration order.
func (r *Registry) Run(doc *documents.Document) []Result {
	if doc == nil {
		return nil
	}

	var results []Result
	for _, c := range r.chainFor(doc) {
		c.Start(doc, func(status Status, rs []Result) {
			if status != StatusFinished {
				log.Warn("checker %q reported status %q for %s", c.Name(), status, doc.URI())
				return
			}
			results = append(results, rs...)
		})
	}
	return results
}

// RequestDeferredCheck queues a re-check for the document. Queued checks run
// when Flush is called, so stale results clear on the next scheduling pass
// rather than mid-event.
func (r *Registry) RequestDeferredCheck(uri string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending.Add(uri)
}

// PendingChecks returns the queued re-check URIs in request order
func (r *Registry) PendingChecks() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.pending.Members()
}

// Flush runs every queued re-check, resolving documents through resolve, and
// returns the results keyed by URI. URIs that no longer resolve flush to an
// empty result list.
func (r *Registry) Flush(resolve func(uri string) *documents.Document) map[string][]Result {
	r.mu.Lock()
	uris := r.pending.Members()
	r.pending.Clear()
	r.mu.Unlock()

	out := make(map[string][]Result, len(uris))
	for _, uri := range uris {
		if doc := resolve(uri); doc != nil {
			out[uri] = r.Run(doc)
		} else {
			out[uri] = nil
		}
	}
	return out
}

func (r *Registry) chainFor(doc *documents.Document) []Checker {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.selected[doc.URI()]
	if names == nil {
		names = r.order.Members()
	}

	chain := make([]Checker, 0, len(names))
	for _, name := range names {
		c, ok := r.checkers[name]
		if !ok || r.disabled.Has(name) {
			continue
		}
		if !ModeMatches(c.Modes(), doc) || !c.IsApplicable(doc) {
			continue
		}
		chain = append(chain, c)
	}
	return chain
}

func removeName(names []string, name string) []string {
	out := names[:0]
	for _, n := range names {
		if n != name {
			out = append(out, n)
		}
	}
	return out
}
